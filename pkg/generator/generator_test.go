package generator

import (
	"bytes"
	"context"
	stderrors "errors"
	"testing"

	"github.com/muffin-cms/muffin/pkg/errors"
	"github.com/muffin-cms/muffin/pkg/paths"
	"github.com/muffin-cms/muffin/pkg/testutil"
	"github.com/muffin-cms/muffin/pkg/types"
	"github.com/muffin-cms/muffin/pkg/ui/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const envTemplate = "# site settings\nSESSION_SECRET=changeme\nDB_HOST=localhost\nDB_NAME=muffin\nPORT=3000\n"

type fixture struct {
	fs        types.FS
	importer  *testutil.MockImporter
	installer *testutil.MockInstaller
	out       *bytes.Buffer
	phases    []Phase
	opts      Options
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		fs:        testutil.NewTestFS(),
		importer:  &testutil.MockImporter{},
		installer: &testutil.MockInstaller{},
		out:       &bytes.Buffer{},
	}

	testutil.WriteTree(t, f.fs, "/tpl", map[string]string{
		"_env":                envTemplate,
		"_gitignore":          "node_modules\n",
		"package.json":        `{"dependencies":{"muffin":"4"}}`,
		"views/index._hbs":    "<h1>{{title}}</h1>",
		"node_modules/x/x.js": "ignored",
		"dist/bundle.js":      "ignored",
	})
	testutil.WriteTree(t, f.fs, "/data", map[string]string{
		"posts.json": "[]",
		"users.json": "[]",
	})

	f.opts = Options{
		FS:        f.fs,
		Roots:     paths.Roots{Template: "/tpl", Data: "/data"},
		Importer:  f.importer,
		Installer: f.installer,
		UI:        output.New(f.out, false),
		Secret:    func(int) (string, error) { return "xyz123", nil },
		OnPhase:   func(p Phase) { f.phases = append(f.phases, p) },
	}
	return f
}

func (f *fixture) run(t *testing.T, answers types.Answers) (types.Outcome, error) {
	t.Helper()
	g, err := New(f.opts)
	require.NoError(t, err)
	return g.Run(context.Background(), answers, "/site")
}

func TestRunFullPipeline(t *testing.T) {
	f := newFixture(t)

	outcome, err := f.run(t, types.Answers{
		types.AnswerDBHost: "myhost",
		types.AnswerDBName: "blog",
	})
	require.NoError(t, err)

	assert.True(t, outcome.Success)
	assert.True(t, outcome.Generated)
	assert.Equal(t, string(PhaseDone), outcome.Phase)
	assert.Equal(t, []Phase{PhaseSeeding, PhaseDiscovering, PhaseMaterializing, PhaseInstalling, PhaseDone}, f.phases)

	assert.Equal(t,
		"# site settings\nSESSION_SECRET=xyz123\nDB_HOST=myhost\nDB_NAME=blog\nPORT=3000\n",
		testutil.ReadFS(t, f.fs, "/site/.env"))
	assert.Equal(t, "node_modules\n", testutil.ReadFS(t, f.fs, "/site/.gitignore"))
	assert.Equal(t, "<h1>{{title}}</h1>", testutil.ReadFS(t, f.fs, "/site/views/index.hbs"))
	assert.False(t, testutil.ExistsFS(f.fs, "/site/node_modules"))
	assert.False(t, testutil.ExistsFS(f.fs, "/site/dist"))

	require.Len(t, f.importer.Calls, 1)
	assert.Equal(t, []string{"/data/posts.json", "/data/users.json"}, f.importer.Calls[0].Files)
	assert.Equal(t, types.Overrides{"DB_HOST": "myhost", "DB_NAME": "blog"}, f.importer.Calls[0].Env)

	assert.Equal(t, []string{"/site"}, f.installer.Dirs)
	assert.Contains(t, f.out.String(), "Generated new site in /site")
}

func TestRunSkipDataKeepsDefaults(t *testing.T) {
	f := newFixture(t)

	outcome, err := f.run(t, types.Answers{
		types.AnswerSkipData: true,
		types.AnswerDBHost:   "myhost",
	})
	require.NoError(t, err)
	assert.True(t, outcome.Success)

	assert.Empty(t, f.importer.Calls)
	assert.NotContains(t, f.phases, PhaseSeeding)
	assert.Equal(t,
		"# site settings\nSESSION_SECRET=xyz123\nDB_HOST=localhost\nDB_NAME=muffin\nPORT=3000\n",
		testutil.ReadFS(t, f.fs, "/site/.env"))
}

func TestRunSkipNpm(t *testing.T) {
	f := newFixture(t)

	outcome, err := f.run(t, types.Answers{types.AnswerSkipData: "true", types.AnswerSkipNpm: true})
	require.NoError(t, err)

	assert.True(t, outcome.Success)
	assert.True(t, outcome.InstallSkipped)
	assert.Empty(t, f.installer.Dirs)
	assert.Contains(t, f.out.String(), "Generated new site in /site")
}

func TestRunSeedsBeforeMaterializing(t *testing.T) {
	f := newFixture(t)
	f.importer.ImportFunc = func(ctx context.Context, files []string, env types.Overrides) error {
		assert.False(t, testutil.ExistsFS(f.fs, "/site/.env"), "materialization must wait for the import")
		return nil
	}

	_, err := f.run(t, types.Answers{types.AnswerDBHost: "myhost", types.AnswerSkipNpm: true})
	require.NoError(t, err)
	assert.Contains(t, testutil.ReadFS(t, f.fs, "/site/.env"), "DB_HOST=myhost\n")
}

func TestRunSeedFailureStops(t *testing.T) {
	f := newFixture(t)
	f.importer.ImportFunc = func(context.Context, []string, types.Overrides) error {
		return stderrors.New("connection refused")
	}

	outcome, err := f.run(t, types.Answers{})
	require.Error(t, err)

	assert.True(t, errors.IsErrorCode(err, errors.ErrSeed))
	assert.False(t, outcome.Success)
	assert.False(t, outcome.Generated)
	assert.Equal(t, string(PhaseFailed), outcome.Phase)
	assert.Equal(t, []Phase{PhaseSeeding, PhaseFailed}, f.phases)
	assert.False(t, testutil.ExistsFS(f.fs, "/site"))
}

func TestRunMissingTemplate(t *testing.T) {
	f := newFixture(t)
	f.opts.Roots.Template = "/nowhere"

	outcome, err := f.run(t, types.Answers{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigurationAbsent))
	assert.Equal(t, []Phase{PhaseFailed}, f.phases)
	assert.Empty(t, f.importer.Calls)
	assert.Equal(t, err, outcome.Err)
}

func TestRunMissingDataRoot(t *testing.T) {
	f := newFixture(t)
	f.opts.Roots.Data = "/nodata"

	_, err := f.run(t, types.Answers{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrTraversal))
	assert.Empty(t, f.importer.Calls)
}

func TestRunMaterializationFailure(t *testing.T) {
	f := newFixture(t)
	failing := testutil.NewFailingFS(f.fs)
	failing.FailWrite["/site/package.json"] = stderrors.New("disk full")
	f.opts.FS = failing

	outcome, err := f.run(t, types.Answers{types.AnswerSkipData: true})
	assert.True(t, errors.IsErrorCode(err, errors.ErrMaterialization))
	assert.False(t, outcome.Generated)
	assert.Equal(t, []string{"/site/.env", "/site/.gitignore"}, outcome.Written)
	assert.NotContains(t, f.phases, PhaseInstalling)
	assert.Empty(t, f.installer.Dirs)
}

func TestRunInstallFailureKeepsGeneratedSite(t *testing.T) {
	f := newFixture(t)
	f.installer.Result = types.InstallResult{
		Stderr:  "npm ERR! 404 not found",
		ExitErr: stderrors.New("exit status 1"),
	}

	outcome, err := f.run(t, types.Answers{types.AnswerSkipData: true})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInstallation))
	assert.False(t, outcome.Success)
	assert.True(t, outcome.Generated)
	assert.True(t, testutil.ExistsFS(f.fs, "/site/.env"))
	assert.Contains(t, f.out.String(), "Not able to install dependencies!")
}

func TestRunBenignInstallFailure(t *testing.T) {
	f := newFixture(t)
	f.installer.Result = types.InstallResult{
		Stdout:  "example@1.0.0 postinstall failed",
		ExitErr: stderrors.New("exit status 1"),
	}

	outcome, err := f.run(t, types.Answers{types.AnswerSkipData: true})
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, "example@1.0.0 postinstall failed", outcome.InstallOutput)
}

func TestRunCopiesAnswers(t *testing.T) {
	f := newFixture(t)
	answers := types.Answers{types.AnswerDBHost: "myhost", types.AnswerSkipNpm: true}
	f.importer.ImportFunc = func(context.Context, []string, types.Overrides) error {
		answers[types.AnswerDBHost] = "changed"
		return nil
	}

	_, err := f.run(t, answers)
	require.NoError(t, err)
	assert.Contains(t, testutil.ReadFS(t, f.fs, "/site/.env"), "DB_HOST=myhost\n")
}

func TestGeneratorRunsOnce(t *testing.T) {
	f := newFixture(t)
	g, err := New(f.opts)
	require.NoError(t, err)

	_, err = g.Run(context.Background(), types.Answers{types.AnswerSkipData: true}, "/site")
	require.NoError(t, err)

	_, err = g.Run(context.Background(), types.Answers{}, "/other")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
	assert.Equal(t, PhaseDone, g.Phase())
}

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := New(Options{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestPhaseTransitions(t *testing.T) {
	assert.True(t, PhasePending.CanTransition(PhaseSeeding))
	assert.True(t, PhasePending.CanTransition(PhaseDiscovering))
	assert.False(t, PhasePending.CanTransition(PhaseMaterializing))
	assert.False(t, PhaseDiscovering.CanTransition(PhaseSeeding))
	assert.True(t, PhaseMaterializing.CanTransition(PhaseFailed))
	assert.False(t, PhaseDone.CanTransition(PhaseFailed))
	assert.False(t, PhaseFailed.CanTransition(PhaseDiscovering))
	assert.True(t, PhaseDone.Terminal())
}
