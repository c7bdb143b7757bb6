package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/muffin-cms/muffin/pkg/errors"
	"github.com/muffin-cms/muffin/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoots(t *testing.T) {
	t.Run("explicit roots are made absolute", func(t *testing.T) {
		roots, err := NewRoots("/srv/template", "/srv/data")
		require.NoError(t, err)
		assert.Equal(t, filepath.FromSlash("/srv/template"), roots.Template)
		assert.Equal(t, filepath.FromSlash("/srv/data"), roots.Data)
	})

	t.Run("defaults fall back to the data home", func(t *testing.T) {
		roots, err := NewRoots("", "")
		require.NoError(t, err)
		assert.Equal(t, DefaultTemplateRoot(), roots.Template)
		assert.Equal(t, DefaultDataRoot(), roots.Data)
		assert.Equal(t, TemplateDirName, filepath.Base(roots.Template))
	})

	t.Run("tilde is expanded", func(t *testing.T) {
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		roots, err := NewRoots("~/tpl", "~")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, "tpl"), roots.Template)
		assert.Equal(t, home, roots.Data)
	})
}

func TestValidateTemplate(t *testing.T) {
	dir := t.TempDir()
	fsys := filesystem.NewOS()

	require.NoError(t, ValidateTemplate(fsys, dir))

	err := ValidateTemplate(fsys, filepath.Join(dir, "missing"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigurationAbsent))

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	err = ValidateTemplate(fsys, file)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigurationAbsent))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", ExpandHome(""))
	assert.Equal(t, "/abs", ExpandHome("/abs"))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "x"), ExpandHome("~/x"))
	assert.Equal(t, "~other", ExpandHome("~other"))
}
