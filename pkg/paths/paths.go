package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/muffin-cms/muffin/pkg/errors"
	"github.com/muffin-cms/muffin/pkg/types"
)

// Default directories and files
const (
	// AppDirName is the directory name for muffin-specific files
	AppDirName = "muffin"

	// TemplateDirName is the default template directory below the data home
	TemplateDirName = "template"

	// DataDirName is the default sample data directory below the data home
	DataDirName = "data"

	// ProjectConfigFile is the name of the per-project configuration file
	ProjectConfigFile = ".muffin.toml"

	// EnvFileName is the hidden environment file name inside a site
	EnvFileName = ".env"
)

// Roots holds the resolved, absolute roots a generation run reads from.
type Roots struct {
	Template string
	Data     string
}

// DefaultTemplateRoot returns $XDG_DATA_HOME/muffin/template.
func DefaultTemplateRoot() string {
	return filepath.Join(xdg.DataHome, AppDirName, TemplateDirName)
}

// DefaultDataRoot returns $XDG_DATA_HOME/muffin/data.
func DefaultDataRoot() string {
	return filepath.Join(xdg.DataHome, AppDirName, DataDirName)
}

// UserConfigFile returns $XDG_CONFIG_HOME/muffin/config.toml.
func UserConfigFile() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, "config.toml")
}

// NewRoots resolves the template and data roots. Empty values fall back to
// the XDG defaults; a leading ~ is expanded.
func NewRoots(template, data string) (Roots, error) {
	if template == "" {
		template = DefaultTemplateRoot()
	}
	if data == "" {
		data = DefaultDataRoot()
	}

	absTemplate, err := filepath.Abs(ExpandHome(template))
	if err != nil {
		return Roots{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for template root")
	}
	absData, err := filepath.Abs(ExpandHome(data))
	if err != nil {
		return Roots{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for data root")
	}

	return Roots{Template: absTemplate, Data: absData}, nil
}

// ValidateTemplate checks that the template root is an existing directory.
func ValidateTemplate(fsys types.FS, root string) error {
	info, err := fsys.Stat(root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigurationAbsent, "no template found at %s", root).
			WithDetail("template", root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrConfigurationAbsent, "template root %s is not a directory", root).
			WithDetail("template", root)
	}
	return nil
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv("HOME")
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
