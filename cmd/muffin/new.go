package muffin

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/muffin-cms/muffin/pkg/answers"
	"github.com/muffin-cms/muffin/pkg/filesystem"
	"github.com/muffin-cms/muffin/pkg/generator"
	"github.com/muffin-cms/muffin/pkg/install"
	"github.com/muffin-cms/muffin/pkg/logging"
	"github.com/muffin-cms/muffin/pkg/paths"
	"github.com/muffin-cms/muffin/pkg/seed"
	"github.com/muffin-cms/muffin/pkg/site"
	"github.com/muffin-cms/muffin/pkg/types"
	"github.com/muffin-cms/muffin/pkg/ui/output"
	"github.com/spf13/cobra"
)

type newFlags struct {
	template    string
	data        string
	answersFile string
	assignments []string
	skipData    bool
	skipNpm     bool
	force       bool
}

func newNewCmd(global *globalFlags) *cobra.Command {
	flags := &newFlags{}

	cmd := &cobra.Command{
		Use:     "new <dir>",
		Short:   MsgNewShort,
		Long:    MsgNewLong,
		Example: MsgNewExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, global, flags, args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.template, "template", "t", "", MsgFlagTemplate)
	cmd.Flags().StringVar(&flags.data, "data", "", MsgFlagData)
	cmd.Flags().StringVarP(&flags.answersFile, "answers", "a", "", MsgFlagAnswers)
	cmd.Flags().StringArrayVar(&flags.assignments, "answer", nil, MsgFlagAnswer)
	cmd.Flags().BoolVar(&flags.skipData, "skip-data", false, MsgFlagSkipData)
	cmd.Flags().BoolVar(&flags.skipNpm, "skip-npm", false, MsgFlagSkipNpm)
	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, MsgFlagForce)

	return cmd
}

func runNew(cmd *cobra.Command, global *globalFlags, flags *newFlags, dir string) error {
	logger := logging.GetLogger("cmd.new")

	overrides := map[string]interface{}{}
	if flags.template != "" {
		overrides["template.root"] = flags.template
	}
	if flags.data != "" {
		overrides["data.root"] = flags.data
	}

	cfg, err := loadConfig(global, overrides)
	if err != nil {
		return err
	}

	roots, err := paths.NewRoots(cfg.Template.Root, cfg.Data.Root)
	if err != nil {
		return fmt.Errorf(MsgErrResolveDirs, err)
	}

	target, err := filepath.Abs(paths.ExpandHome(dir))
	if err != nil {
		return fmt.Errorf(MsgErrResolveDirs, err)
	}

	collected, err := collectAnswers(cmd, flags)
	if err != nil {
		return fmt.Errorf(MsgErrAnswers, err)
	}

	fsys := filesystem.NewOS()
	if err := site.CheckTarget(fsys, target, flags.force); err != nil {
		return err
	}

	ui := uiFor(cmd.OutOrStdout())

	logger.Info().
		Str("template", roots.Template).
		Str("data", roots.Data).
		Str("target", target).
		Msg("Generating site")
	ui.Info(fmt.Sprintf(MsgUsingTemplate, roots.Template))

	gen, err := generator.New(generator.Options{
		FS:            fsys,
		Roots:         roots,
		Ignore:        cfg.Template.Ignore,
		EnvFileName:   cfg.Template.EnvFile,
		SecretKey:     cfg.Secret.Key,
		SecretLength:  cfg.Secret.Length,
		Importer:      seed.NewCommandImporter(cfg.Seed.Command, cfg.Seed.Args),
		Installer:     install.NewCommandInstaller(cfg.Install.Command, cfg.Install.Args),
		BenignPattern: cfg.Install.Benign,
		UI:            ui,
	})
	if err != nil {
		return err
	}

	outcome, err := gen.Run(cmd.Context(), collected, target)
	if len(outcome.Written) > 0 && global.verbosity > 0 {
		ui.List(MsgWrittenFiles, relativeTo(target, outcome.Written))
	}
	return err
}

// collectAnswers layers the answers file, --answer flags and the skip
// flags, in that order.
func collectAnswers(cmd *cobra.Command, flags *newFlags) (types.Answers, error) {
	var sets []types.Answers

	if flags.answersFile != "" {
		fromFile, err := answers.Load(paths.ExpandHome(flags.answersFile))
		if err != nil {
			return nil, err
		}
		sets = append(sets, fromFile)
	}

	assigned, err := answers.ParseAssignments(flags.assignments)
	if err != nil {
		return nil, err
	}
	sets = append(sets, assigned)

	fromFlags := types.Answers{}
	if cmd.Flags().Changed("skip-data") {
		fromFlags[types.AnswerSkipData] = flags.skipData
	}
	if cmd.Flags().Changed("skip-npm") {
		fromFlags[types.AnswerSkipNpm] = flags.skipNpm
	}
	sets = append(sets, fromFlags)

	return answers.Merge(sets...), nil
}

func uiFor(w io.Writer) output.UI {
	if f, ok := w.(*os.File); ok {
		return output.Detect(f)
	}
	return output.New(w, false)
}

func relativeTo(base string, files []string) []string {
	out := make([]string, len(files))
	for i, f := range files {
		rel, err := filepath.Rel(base, f)
		if err != nil {
			rel = f
		}
		out[i] = rel
	}
	return out
}
