package blueprint

import (
	"io/fs"
	"path/filepath"

	"github.com/muffin-cms/muffin/pkg/envfile"
	"github.com/muffin-cms/muffin/pkg/errors"
	"github.com/muffin-cms/muffin/pkg/logging"
	"github.com/muffin-cms/muffin/pkg/paths"
	"github.com/muffin-cms/muffin/pkg/types"
	"github.com/rs/zerolog"
)

// Materializer writes discovered blueprints into a target directory.
type Materializer struct {
	fs           types.FS
	templateRoot string
	targetDir    string
	envFileName  string
	logger       zerolog.Logger
}

// MaterializerOptions configures a Materializer.
type MaterializerOptions struct {
	FS           types.FS
	TemplateRoot string
	TargetDir    string

	// EnvFileName is the destination base name routed through the
	// environment merger. Defaults to ".env".
	EnvFileName string
}

// NewMaterializer creates a Materializer.
func NewMaterializer(opts MaterializerOptions) *Materializer {
	envFile := opts.EnvFileName
	if envFile == "" {
		envFile = paths.EnvFileName
	}
	return &Materializer{
		fs:           opts.FS,
		templateRoot: opts.TemplateRoot,
		targetDir:    opts.TargetDir,
		envFileName:  envFile,
		logger:       logging.GetLogger("blueprint.materialize"),
	}
}

// Materialize processes blueprints in order. Each entry's parent directory
// is created, then the entry is either merged (the environment file) or
// copied verbatim. The first failure aborts the run; the returned slice
// lists every destination written up to that point and nothing is rolled
// back.
func (m *Materializer) Materialize(blueprints []types.Blueprint, overrides types.Overrides) ([]string, error) {
	done := logging.LogOperationStart(m.logger, "materialize")
	defer done()

	written := make([]string, 0, len(blueprints))

	for i, bp := range blueprints {
		dest, err := paths.Destination(m.templateRoot, m.targetDir, bp.SourcePath)
		if err != nil {
			return written, materializationError(err, bp, i, "failed to compute destination")
		}

		if err := m.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return written, materializationError(err, bp, i, "failed to create directory").
				WithDetail("destination", dest)
		}

		if bp.IsDir {
			if err := m.fs.MkdirAll(dest, dirMode(bp)); err != nil {
				return written, materializationError(err, bp, i, "failed to create directory").
					WithDetail("destination", dest)
			}
			continue
		}

		if filepath.Base(dest) == m.envFileName {
			err = m.writeEnv(bp, dest, overrides)
		} else {
			err = m.copy(bp, dest)
		}
		if err != nil {
			return written, materializationError(err, bp, i, "failed to materialize blueprint").
				WithDetail("destination", dest)
		}

		written = append(written, dest)
		m.logger.Debug().
			Str("source", bp.RelPath).
			Str("destination", dest).
			Msg("Materialized blueprint")
	}

	m.logger.Info().
		Str("target", m.targetDir).
		Int("files", len(written)).
		Msg("Materialization completed")

	return written, nil
}

func (m *Materializer) copy(bp types.Blueprint, dest string) error {
	data, err := m.fs.ReadFile(bp.SourcePath)
	if err != nil {
		return err
	}
	return m.fs.WriteFile(dest, data, fileMode(bp))
}

func (m *Materializer) writeEnv(bp types.Blueprint, dest string, overrides types.Overrides) error {
	data, err := m.fs.ReadFile(bp.SourcePath)
	if err != nil {
		return err
	}

	merged, replaced, err := envfile.Merge(string(data), overrides)
	if err != nil {
		return err
	}

	m.logger.Debug().
		Strs("keys", replaced).
		Str("destination", dest).
		Msg("Merged environment file")

	return m.fs.WriteFile(dest, []byte(merged), fileMode(bp))
}

func materializationError(err error, bp types.Blueprint, index int, msg string) *errors.MuffinError {
	return errors.Wrap(err, errors.ErrMaterialization, msg).
		WithDetail("source", bp.SourcePath).
		WithDetail("index", index)
}

func fileMode(bp types.Blueprint) fs.FileMode {
	if bp.Mode == 0 {
		return 0644
	}
	return bp.Mode
}

// dirMode keeps the template's permissions but always grants the owner rwx.
func dirMode(bp types.Blueprint) fs.FileMode {
	if bp.Mode == 0 {
		return 0755
	}
	return bp.Mode | 0700
}
