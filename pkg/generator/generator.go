package generator

import (
	"context"

	"github.com/muffin-cms/muffin/pkg/blueprint"
	"github.com/muffin-cms/muffin/pkg/envfile"
	"github.com/muffin-cms/muffin/pkg/errors"
	"github.com/muffin-cms/muffin/pkg/install"
	"github.com/muffin-cms/muffin/pkg/logging"
	"github.com/muffin-cms/muffin/pkg/paths"
	"github.com/muffin-cms/muffin/pkg/seed"
	"github.com/muffin-cms/muffin/pkg/types"
	"github.com/muffin-cms/muffin/pkg/ui/output"
	"github.com/rs/zerolog"
)

// SecretFunc produces the session secret for a run.
type SecretFunc func(length int) (string, error)

// Options wires a Generator to its collaborators.
type Options struct {
	FS    types.FS
	Roots paths.Roots

	// Ignore lists the names excluded from discovery. Nil selects
	// blueprint.DefaultIgnore.
	Ignore []string

	// EnvFileName is the destination name routed through the merger.
	EnvFileName string

	// SecretKey receives the generated secret. Defaults to SESSION_SECRET.
	SecretKey    string
	SecretLength int
	Secret       SecretFunc

	Importer      seed.Importer
	Installer     install.Installer
	BenignPattern string
	UI            output.UI

	// OnPhase, when set, is called on every phase change.
	OnPhase func(Phase)
}

// Generator runs the generation pipeline. A Generator is not safe for
// concurrent runs.
type Generator struct {
	opts   Options
	phase  Phase
	logger zerolog.Logger
}

// New validates opts and returns a Generator.
func New(opts Options) (*Generator, error) {
	if opts.FS == nil {
		return nil, errors.New(errors.ErrInvalidInput, "generator requires a filesystem")
	}
	if opts.Installer == nil {
		return nil, errors.New(errors.ErrInvalidInput, "generator requires an installer")
	}
	if opts.UI == nil {
		return nil, errors.New(errors.ErrInvalidInput, "generator requires an output")
	}
	if opts.Importer == nil {
		opts.Importer = seed.NopImporter{}
	}
	if opts.SecretKey == "" {
		opts.SecretKey = envfile.SessionSecretKey
	}
	if opts.Secret == nil {
		opts.Secret = envfile.NewSecret
	}

	return &Generator{
		opts:   opts,
		phase:  PhasePending,
		logger: logging.GetLogger("generator"),
	}, nil
}

// Phase returns the phase the generator is currently in.
func (g *Generator) Phase() Phase {
	return g.phase
}

func (g *Generator) enter(next Phase) error {
	if !g.phase.CanTransition(next) {
		return errors.Newf(errors.ErrInternal, "invalid phase transition %s -> %s", g.phase, next)
	}
	g.logger.Debug().Str("from", string(g.phase)).Str("to", string(next)).Msg("Phase change")
	g.phase = next
	if g.opts.OnPhase != nil {
		g.opts.OnPhase(next)
	}
	return nil
}

// Run generates a site into targetDir. The answers are copied on entry.
// The returned outcome is always populated; err is its Err.
func (g *Generator) Run(ctx context.Context, answers types.Answers, targetDir string) (types.Outcome, error) {
	done := logging.LogOperationStart(g.logger, "generate")
	defer done()

	answers = answers.Clone()
	outcome := types.Outcome{TargetDir: targetDir}

	fail := func(err error) (types.Outcome, error) {
		if g.phase != PhaseFailed {
			_ = g.enter(PhaseFailed)
		}
		outcome.Phase = string(g.phase)
		outcome.Err = err
		g.logger.Error().Err(err).Str("target", targetDir).Msg("Generation failed")
		return outcome, err
	}

	if g.phase != PhasePending {
		return outcome, errors.Newf(errors.ErrInternal, "generator already ran (phase %s)", g.phase)
	}

	if err := paths.ValidateTemplate(g.opts.FS, g.opts.Roots.Template); err != nil {
		return fail(err)
	}

	g.logger.Info().
		Str("template", g.opts.Roots.Template).
		Str("target", targetDir).
		Bool("skipData", answers.SkipData()).
		Bool("skipNpm", answers.SkipNpm()).
		Msg("Starting generation")

	overrides := types.Overrides{}

	if !answers.SkipData() {
		if err := g.enter(PhaseSeeding); err != nil {
			return fail(err)
		}
		seeded, err := seed.NewSeeder(g.opts.FS, g.opts.Roots.Data, g.opts.Importer).Seed(ctx, answers)
		if err != nil {
			return fail(err)
		}
		overrides = overrides.Merge(seeded)
	}

	secret, err := g.opts.Secret(g.opts.SecretLength)
	if err != nil {
		return fail(err)
	}
	overrides = overrides.Merge(types.Overrides{g.opts.SecretKey: secret})

	if err := g.enter(PhaseDiscovering); err != nil {
		return fail(err)
	}
	blueprints, err := blueprint.NewDiscoverer(g.opts.FS, g.opts.Ignore).Discover(g.opts.Roots.Template)
	if err != nil {
		return fail(err)
	}

	if err := g.enter(PhaseMaterializing); err != nil {
		return fail(err)
	}
	if err := g.opts.FS.MkdirAll(targetDir, 0755); err != nil {
		return fail(errors.Wrapf(err, errors.ErrMaterialization, "failed to create %s", targetDir))
	}
	materializer := blueprint.NewMaterializer(blueprint.MaterializerOptions{
		FS:           g.opts.FS,
		TemplateRoot: g.opts.Roots.Template,
		TargetDir:    targetDir,
		EnvFileName:  g.opts.EnvFileName,
	})
	written, err := materializer.Materialize(blueprints, overrides)
	outcome.Written = written
	if err != nil {
		return fail(err)
	}
	outcome.Generated = true

	if err := g.enter(PhaseInstalling); err != nil {
		return fail(err)
	}
	reporter := install.NewReporter(g.opts.Installer, g.opts.BenignPattern, g.opts.UI)
	res, err := reporter.Complete(ctx, targetDir, answers.SkipNpm())
	outcome.InstallSkipped = answers.SkipNpm()
	outcome.InstallOutput = res.Stdout
	if err != nil {
		return fail(err)
	}

	if err := g.enter(PhaseDone); err != nil {
		return fail(err)
	}
	outcome.Phase = string(g.phase)
	outcome.Success = true
	return outcome, nil
}
