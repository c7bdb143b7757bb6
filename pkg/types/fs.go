package types

import (
	"io/fs"
	"path/filepath"
)

// FS is the filesystem interface required for generation
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Walk visits root and everything below it in lexical order.
	// Returning filepath.SkipDir from fn on a directory skips its contents.
	Walk(root string, fn filepath.WalkFunc) error
}
