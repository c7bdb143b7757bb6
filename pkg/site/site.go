// Package site recognizes directories that already hold a generated site
// and guards generation targets.
package site

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/json"
	"github.com/muffin-cms/muffin/pkg/errors"
	"github.com/muffin-cms/muffin/pkg/logging"
	"github.com/muffin-cms/muffin/pkg/paths"
	"github.com/muffin-cms/muffin/pkg/types"
)

const (
	// ManifestFile is the package manifest of a generated site.
	ManifestFile = "package.json"

	// FrameworkPackage is the dependency every generated site declares.
	FrameworkPackage = "muffin"
)

var dependencySections = []string{"dependencies", "devDependencies"}

// IsSite reports whether dir holds a muffin site: a package.json that
// depends on the muffin package next to a .env file. Unreadable or
// malformed manifests count as "not a site".
func IsSite(fsys types.FS, dir string) bool {
	logger := logging.GetLogger("site")

	if _, err := fsys.Stat(filepath.Join(dir, paths.EnvFileName)); err != nil {
		return false
	}

	data, err := fsys.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return false
	}

	manifest, err := json.Parser().Unmarshal(data)
	if err != nil {
		logger.Debug().Err(err).Str("dir", dir).Msg("Ignoring malformed package.json")
		return false
	}

	for _, section := range dependencySections {
		deps, ok := manifest[section].(map[string]interface{})
		if !ok {
			continue
		}
		if _, ok := deps[FrameworkPackage]; ok {
			return true
		}
	}
	return false
}

// CheckTarget validates dir as a generation target. A missing directory
// is fine. An existing site is always refused; any other non-empty
// directory is refused unless force is set.
func CheckTarget(fsys types.FS, dir string, force bool) error {
	info, err := fsys.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", dir)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "%s exists and is not a directory", dir)
	}

	if IsSite(fsys, dir) {
		return errors.Newf(errors.ErrInvalidInput, "%s already contains a muffin site", dir).
			WithDetail("dir", dir)
	}

	if force {
		return nil
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", dir)
	}
	if len(entries) > 0 {
		return errors.Newf(errors.ErrInvalidInput, "%s is not empty (use --force to generate anyway)", dir).
			WithDetail("dir", dir)
	}
	return nil
}
