package blueprint

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/muffin-cms/muffin/pkg/errors"
	"github.com/muffin-cms/muffin/pkg/logging"
	"github.com/muffin-cms/muffin/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultIgnore lists the directory names excluded from discovery: build
// output, dependency cache and scratch space.
var DefaultIgnore = []string{"dist", "node_modules", "tmp"}

// Discoverer enumerates the blueprints of a template tree.
type Discoverer struct {
	fs     types.FS
	ignore []string
	logger zerolog.Logger
}

// NewDiscoverer creates a Discoverer. A nil ignore list selects DefaultIgnore.
func NewDiscoverer(fsys types.FS, ignore []string) *Discoverer {
	if ignore == nil {
		ignore = DefaultIgnore
	}
	return &Discoverer{
		fs:     fsys,
		ignore: ignore,
		logger: logging.GetLogger("blueprint.discover"),
	}
}

// Ignored reports whether a template-relative path falls under an ignored
// name. Matching is a case-sensitive substring test.
func (d *Discoverer) Ignored(rel string) bool {
	slashed := filepath.ToSlash(rel)
	for _, name := range d.ignore {
		if name != "" && strings.Contains(slashed, name) {
			return true
		}
	}
	return false
}

// Discover walks root and returns a descriptor for every entry below it.
// The root itself is not part of the result. An empty template yields an
// empty, non-nil slice.
func (d *Discoverer) Discover(root string) ([]types.Blueprint, error) {
	done := logging.LogOperationStart(d.logger, "discover")
	defer done()

	blueprints := []types.Blueprint{}

	err := d.fs.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		bp, err := types.NewBlueprint(root, path, info)
		if err != nil {
			return err
		}

		if d.Ignored(bp.RelPath) {
			d.logger.Trace().Str("path", bp.RelPath).Msg("Ignoring template entry")
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		blueprints = append(blueprints, bp)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTraversal, "failed to walk template %s", root).
			WithDetail("root", root)
	}

	d.logger.Info().
		Str("root", root).
		Int("blueprints", len(blueprints)).
		Msg("Discovered blueprints")

	return blueprints, nil
}
