// Package rules turns the declarative rule table into the ordered list of
// sync directives for a run.
//
// The table is TOML. The built-in table is embedded in the binary; a
// dotsync.rules.toml at the root of the source repository replaces it
// entirely.
//
//	[[rule]]
//	source = "configs/ssh/config"
//	target = "~/.ssh/config"
//	category = "ssh-config"
//	personal_only = true
//
//	[[rule]]
//	source_dir = "configs/fonts"
//	patterns = ["*.ttf", "*.otf"]
//	target_dir = "~/Library/Fonts"
//	category = "font"
//	preserve_existing = true
//
// Glob rules are expanded against the source tree when directives are
// built; matches are taken in lexical order. Rules marked personal_only are
// dropped in work mode.
package rules
