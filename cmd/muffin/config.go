package muffin

import (
	"fmt"
	"os"

	"github.com/muffin-cms/muffin/pkg/config"
	"github.com/spf13/cobra"
)

// loadConfig loads the layered configuration for the current directory.
func loadConfig(flags *globalFlags, overrides map[string]interface{}) (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	cfg, err := config.Load(config.LoadOptions{
		UserConfig: flags.configFile,
		ProjectDir: cwd,
		Overrides:  overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			cfg, err := loadConfig(flags, nil)
			if err != nil {
				return err
			}
			out, err := config.Render(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}
