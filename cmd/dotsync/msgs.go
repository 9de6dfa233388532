package dotsync

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Sync a workstation from a dotfiles repository"
	MsgSyncShort       = "Bootstrap tools and sync every managed file"
	MsgStatusShort     = "Show which managed files differ from the source"
	MsgExtensionsShort = "Install editor extensions only"
	MsgExtensionsLong  = "Install the extensions listed in configs/editors/<editor>/extensions.txt for the named editors, or for every configured editor when none is given."
	MsgRulesShort      = "List the files that would be synced on this machine"
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigLong      = "Print the configuration after defaults, the user file, DOTSYNC_* environment variables and flags have been applied.\n\nWith --init, print a commented template for $XDG_CONFIG_HOME/dotsync/config.toml instead."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Failure boundary
	MsgSyncFailed    = "Sync failed: %s"
	MsgCommandFailed = "%s failed: %s"
	MsgVerboseHint   = "Run with --verbose for more details"
	MsgErrorCode     = "   code: %s"
	MsgFailedCommand = "   command: %s"

	// Error messages
	MsgErrInitPaths = "failed to initialize paths"
	MsgErrFormat    = "invalid output format %q"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun         = "Show what would happen without changing anything"
	MsgFlagForce          = "Replace fonts and themes that already exist"
	MsgFlagBackupDir      = "Directory for backups of overwritten files (default ~/.dotfiles_backup_<timestamp>)"
	MsgFlagSource         = "Source repository (default: DOTFILES_ROOT, then the enclosing git repository)"
	MsgFlagConfig         = "Configuration file (default $XDG_CONFIG_HOME/dotsync/config.toml)"
	MsgFlagFormat         = "Output format: auto, term, text or json"
	MsgFlagSkipBootstrap  = "Skip installing system tools"
	MsgFlagSkipExtensions = "Skip installing editor extensions"
	MsgFlagInit           = "Print a commented configuration template"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/sync-example.txt
	msgSyncExampleRaw string
	MsgSyncExample    = strings.TrimRight(msgSyncExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/fallback-warning.txt
	msgFallbackWarningRaw string
	MsgFallbackWarning    = strings.TrimSpace(msgFallbackWarningRaw) + "\n"

	//go:embed msgs/usage-template.txt
	MsgUsageTemplate string
)
