// Package config handles configuration management for muffin.
// It layers embedded defaults, a user config file, a project .muffin.toml,
// MUFFIN_* environment variables and command-line overrides, in that
// order, using koanf.
package config
