package muffin

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Scaffold new muffin sites from a template"
	MsgNewShort        = "Generate a new site"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgWrittenFiles  = "Files written:"
	MsgVersionFormat = "muffin version %s\n  commit: %s\n  built:  %s\n"
	MsgNoSubcommand  = "no command specified"
	MsgUsingTemplate = "Using template %s"

	// Error messages
	MsgErrLoadConfig  = "failed to load configuration: %w"
	MsgErrResolveDirs = "failed to resolve directories: %w"
	MsgErrAnswers     = "failed to read answers: %w"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "User configuration file (default $XDG_CONFIG_HOME/muffin/config.toml)"
	MsgFlagTemplate = "Template directory (overrides template.root)"
	MsgFlagData     = "Sample data directory (overrides data.root)"
	MsgFlagAnswers  = "Answers file (.yaml, .yml, .toml or .json)"
	MsgFlagAnswer   = "Answer as key=value, may be repeated"
	MsgFlagSkipData = "Do not import sample data"
	MsgFlagSkipNpm  = "Do not install dependencies"
	MsgFlagForce    = "Generate into a non-empty directory"
	MsgFlagDefaults = "Print the built-in defaults instead of the effective configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/new-long.txt
	msgNewLongRaw string
	MsgNewLong    = strings.TrimSpace(msgNewLongRaw)

	//go:embed msgs/new-example.txt
	msgNewExampleRaw string
	MsgNewExample    = strings.TrimRight(msgNewExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
