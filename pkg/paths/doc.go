// Package paths provides centralized path handling for dotsync.
//
// It handles:
//
//   - Source repository root discovery
//   - XDG directory structure (config, state)
//   - Home directory expansion
//
// # Environment Variables
//
// The package respects the following environment variables:
//
//   - DOTFILES_ROOT: location of the source repository
//   - DOTSYNC_CONFIG_DIR: override the XDG config directory (default: $XDG_CONFIG_HOME/dotsync)
//   - XDG_STATE_HOME: base for the log file (default: ~/.local/state)
//
// # Source Root Discovery
//
// The source root is resolved in this order: an explicit path (from the
// --source flag or the sync.source_root setting), DOTFILES_ROOT, the
// top level of the enclosing git repository, and finally the current
// working directory. The last case is flagged via UsedFallback so the CLI
// can warn about it.
package paths
