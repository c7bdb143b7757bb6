package types

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Blueprint describes one entry of the template tree slated for copying
// or transformation into the target project.
type Blueprint struct {
	// SourcePath is the absolute path of the entry inside the template.
	SourcePath string
	// RelPath is SourcePath relative to the template root.
	RelPath string

	Dir  string // directory part of RelPath, "." at the top level
	Base string // file name including extension
	Name string // file name without extension
	Ext  string // extension including the leading dot, may be empty

	IsDir bool
	Mode  fs.FileMode
}

// NewBlueprint builds a descriptor for source found below root.
func NewBlueprint(root, source string, info fs.FileInfo) (Blueprint, error) {
	rel, err := filepath.Rel(root, source)
	if err != nil {
		return Blueprint{}, err
	}
	base := filepath.Base(rel)
	ext := filepath.Ext(base)

	return Blueprint{
		SourcePath: source,
		RelPath:    rel,
		Dir:        filepath.Dir(rel),
		Base:       base,
		Name:       strings.TrimSuffix(base, ext),
		Ext:        ext,
		IsDir:      info.IsDir(),
		Mode:       info.Mode().Perm(),
	}, nil
}
