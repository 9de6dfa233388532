// Package config loads dotsync configuration.
//
// Values are layered with koanf, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/dotsync/config.toml
//  3. DOTSYNC_ environment variables, with "__" separating sections
//  4. explicit overrides from command line flags
package config
