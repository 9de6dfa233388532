package config

// Config is the complete dotsync configuration.
type Config struct {
	Sync       Sync              `koanf:"sync" toml:"sync"`
	Bootstrap  Bootstrap         `koanf:"bootstrap" toml:"bootstrap"`
	Profile    Profile           `koanf:"profile" toml:"profile"`
	Editors    map[string]Editor `koanf:"editors" toml:"editors"`
	Extensions Extensions        `koanf:"extensions" toml:"extensions"`
	Output     Output            `koanf:"output" toml:"output"`
}

// Sync holds settings for the synchronization engine.
type Sync struct {
	SourceRoot   string `koanf:"source_root" toml:"source_root"`
	BackupPrefix string `koanf:"backup_prefix" toml:"backup_prefix"`
	WorkMarker   string `koanf:"work_marker" toml:"work_marker"`
	RulesFile    string `koanf:"rules_file" toml:"rules_file"`
}

// Bootstrap holds the system dependency steps run before syncing.
type Bootstrap struct {
	Enabled         bool     `koanf:"enabled" toml:"enabled"`
	HomebrewInstall string   `koanf:"homebrew_install" toml:"homebrew_install"`
	BrewPaths       []string `koanf:"brew_paths" toml:"brew_paths"`
	Rbenv           bool     `koanf:"rbenv" toml:"rbenv"`
	Packages        []string `koanf:"packages" toml:"packages"`
	OhMyZshInstall  string   `koanf:"oh_my_zsh_install" toml:"oh_my_zsh_install"`
	ChangeShell     bool     `koanf:"change_shell" toml:"change_shell"`
	Shell           string   `koanf:"shell" toml:"shell"`
	Vim             Vim      `koanf:"vim" toml:"vim"`
}

// Vim holds the plugin manager setup.
type Vim struct {
	Enabled     bool   `koanf:"enabled" toml:"enabled"`
	PathogenURL string `koanf:"pathogen_url" toml:"pathogen_url"`
	VundleRepo  string `koanf:"vundle_repo" toml:"vundle_repo"`
}

// Profile configures the generated shell-profile stub.
type Profile struct {
	Target   string `koanf:"target" toml:"target"`
	Personal string `koanf:"personal" toml:"personal"`
	Work     string `koanf:"work" toml:"work"`
}

// Editor describes one editor whose extensions are managed.
type Editor struct {
	CLI            string `koanf:"cli" toml:"cli"`
	Source         string `koanf:"source" toml:"source"`
	ExtensionsFile string `koanf:"extensions_file" toml:"extensions_file"`
}

// Extensions configures install outcome classification.
type Extensions struct {
	Benign []string `koanf:"benign" toml:"benign"`
}

// Output configures operator-facing output.
type Output struct {
	Format string `koanf:"format" toml:"format"`
}
