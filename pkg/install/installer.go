package install

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"os/exec"

	"github.com/muffin-cms/muffin/pkg/errors"
	"github.com/muffin-cms/muffin/pkg/logging"
	"github.com/muffin-cms/muffin/pkg/types"
	"github.com/rs/zerolog"
)

// Installer installs the dependencies of the site in dir.
// A returned error means the installer could not be run at all; a process
// that ran and failed reports through InstallResult.ExitErr.
type Installer interface {
	Install(ctx context.Context, dir string) (types.InstallResult, error)
}

// CommandInstaller runs an external package manager in the site directory.
type CommandInstaller struct {
	Command string
	Args    []string

	logger zerolog.Logger
}

// NewCommandInstaller creates a CommandInstaller; an empty command selects
// "npm install".
func NewCommandInstaller(command string, args []string) *CommandInstaller {
	if command == "" {
		command = "npm"
		args = []string{"install"}
	}
	return &CommandInstaller{
		Command: command,
		Args:    args,
		logger:  logging.GetLogger("install.command"),
	}
}

// Install runs the command with dir as working directory and captures its
// output.
func (c *CommandInstaller) Install(ctx context.Context, dir string) (types.InstallResult, error) {
	if _, err := os.Stat(dir); err != nil {
		return types.InstallResult{}, errors.Wrapf(err, errors.ErrFileAccess,
			"working directory does not exist: %s", dir)
	}

	c.logger.Info().
		Str("command", c.Command).
		Strs("args", c.Args).
		Str("workingDir", dir).
		Msg("Executing installer")

	cmd := exec.CommandContext(ctx, c.Command, c.Args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	result := types.InstallResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !stderrors.As(runErr, &exitErr) {
			return result, errors.Wrapf(runErr, errors.ErrInstallation, "failed to start %s", c.Command)
		}
		result.ExitErr = runErr
	}

	c.logger.Debug().
		Str("stdout", result.Stdout).
		Str("stderr", result.Stderr).
		Err(result.ExitErr).
		Msg("Installer finished")

	return result, nil
}
