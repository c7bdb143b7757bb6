package paths

import (
	"path/filepath"
	"strings"

	"github.com/muffin-cms/muffin/pkg/errors"
)

const (
	hiddenMarker = "_"
	hiddenPrefix = "."
)

// dotLeading replaces a single leading underscore with a dot.
func dotLeading(segment string) string {
	if strings.HasPrefix(segment, hiddenMarker) {
		return hiddenPrefix + segment[len(hiddenMarker):]
	}
	return segment
}

// TransformBase applies the dotfile naming convention to a file name.
// The name part and, independently, the extension part (without its dot)
// each lose a leading underscore in favour of a dot.
func TransformBase(base string) string {
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext)

	if ext != "" && name != "" {
		ext = "." + dotLeading(ext[1:])
	}
	return dotLeading(name) + ext
}

// Transform maps a template-relative path to its destination-relative path.
// Directory segments are left untouched.
func Transform(rel string) string {
	dir, base := filepath.Split(rel)
	return dir + TransformBase(base)
}

// Destination returns where the template entry at source ends up below
// targetDir. source must live below templateRoot.
func Destination(templateRoot, targetDir, source string) (string, error) {
	rel, err := filepath.Rel(templateRoot, source)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot relate %s to template root", source)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrInvalidInput, "%s is outside template root %s", source, templateRoot)
	}
	return filepath.Join(targetDir, Transform(rel)), nil
}
