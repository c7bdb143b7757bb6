package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/muffin-cms/muffin/pkg/filesystem"
	"github.com/muffin-cms/muffin/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkAll(t *testing.T, fsys types.FS, root string) []string {
	t.Helper()
	var seen []string
	err := fsys.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		seen = append(seen, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	return seen
}

func exercise(t *testing.T, fsys types.FS, root string) {
	require.NoError(t, fsys.MkdirAll(filepath.Join(root, "b", "c"), 0755))
	require.NoError(t, fsys.MkdirAll(filepath.Join(root, "a"), 0755))
	require.NoError(t, fsys.WriteFile(filepath.Join(root, "b", "c", "z.txt"), []byte("z"), 0644))
	require.NoError(t, fsys.WriteFile(filepath.Join(root, "a", "y.txt"), []byte("y"), 0644))

	data, err := fsys.ReadFile(filepath.Join(root, "a", "y.txt"))
	require.NoError(t, err)
	assert.Equal(t, "y", string(data))

	_, err = fsys.ReadFile(filepath.Join(root, "a"))
	assert.Error(t, err, "reading a directory must fail")

	entries, err := fsys.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Name())

	assert.Equal(t, []string{".", "a", "a/y.txt", "b", "b/c", "b/c/z.txt"}, walkAll(t, fsys, root))
}

func TestOSFS(t *testing.T) {
	exercise(t, filesystem.NewOS(), t.TempDir())
}

func TestAferoFS(t *testing.T) {
	exercise(t, filesystem.NewAferoFS(afero.NewMemMapFs()), "/work")
}
