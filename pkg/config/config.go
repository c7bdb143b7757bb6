package config

// Template holds where templates come from and how they are read
type Template struct {
	Root    string   `koanf:"root" toml:"root"`
	Ignore  []string `koanf:"ignore" toml:"ignore"`
	EnvFile string   `koanf:"env_file" toml:"env_file"`
}

// Data holds the sample data location
type Data struct {
	Root string `koanf:"root" toml:"root"`
}

// Secret configures the generated session secret
type Secret struct {
	Key    string `koanf:"key" toml:"key"`
	Length int    `koanf:"length" toml:"length"`
}

// Install configures the dependency installer
type Install struct {
	Command string   `koanf:"command" toml:"command"`
	Args    []string `koanf:"args" toml:"args"`
	// Benign is installer output that is not treated as a failure.
	Benign string `koanf:"benign" toml:"benign"`
}

// Seed configures the sample data importer
type Seed struct {
	Command string   `koanf:"command" toml:"command"`
	Args    []string `koanf:"args" toml:"args"`
}

// Config is the main configuration structure
type Config struct {
	Template Template `koanf:"template" toml:"template"`
	Data     Data     `koanf:"data" toml:"data"`
	Secret   Secret   `koanf:"secret" toml:"secret"`
	Install  Install  `koanf:"install" toml:"install"`
	Seed     Seed     `koanf:"seed" toml:"seed"`
}
