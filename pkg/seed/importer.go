package seed

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/muffin-cms/muffin/pkg/errors"
	"github.com/muffin-cms/muffin/pkg/logging"
	"github.com/muffin-cms/muffin/pkg/types"
	"github.com/rs/zerolog"
)

// Placeholders expanded in CommandImporter arguments.
const (
	PlaceholderFile       = "{file}"
	PlaceholderCollection = "{collection}"
)

// CommandImporter imports each sample data file by running an external
// command, one invocation per file. Arguments may reference {file} and
// {collection} (the file name without extension) as well as $DB_* style
// variables, which are expanded from the overrides and then the process
// environment. Variables are expanded before placeholders, so a "$" in a
// file name is passed through untouched.
type CommandImporter struct {
	Command string
	Args    []string

	logger zerolog.Logger
}

// NewCommandImporter creates a CommandImporter.
func NewCommandImporter(command string, args []string) *CommandImporter {
	return &CommandImporter{
		Command: command,
		Args:    args,
		logger:  logging.GetLogger("seed.importer"),
	}
}

// Import runs the command for every file in order and stops at the first
// failure.
func (c *CommandImporter) Import(ctx context.Context, files []string, env types.Overrides) error {
	if c.Command == "" {
		return errors.New(errors.ErrInvalidInput, "import command is not configured")
	}

	for _, file := range files {
		args := c.expand(file, env)

		c.logger.Debug().
			Str("command", c.Command).
			Strs("args", args).
			Msg("Importing sample data file")

		cmd := exec.CommandContext(ctx, c.Command, args...)
		cmd.Env = os.Environ()
		for k, v := range env {
			cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
		}

		var stderr bytes.Buffer
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			return errors.Wrapf(err, errors.ErrSeed, "failed to import %s", file).
				WithDetail("stderr", stderr.String())
		}
	}
	return nil
}

func (c *CommandImporter) expand(file string, env types.Overrides) []string {
	collection := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	lookup := func(key string) string {
		if v, ok := env[key]; ok && v != "" {
			return v
		}
		return os.Getenv(key)
	}

	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		arg = os.Expand(arg, lookup)
		arg = strings.ReplaceAll(arg, PlaceholderFile, file)
		args[i] = strings.ReplaceAll(arg, PlaceholderCollection, collection)
	}
	return args
}

// NopImporter accepts the files without importing anything.
type NopImporter struct{}

// Import does nothing.
func (NopImporter) Import(context.Context, []string, types.Overrides) error { return nil }
