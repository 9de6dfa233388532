package dotsync

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/dotsync/internal/version"
	"github.com/arthur-debert/dotsync/pkg/cobrax/topics"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// globalFlags are shared by every command.
type globalFlags struct {
	verbosity      int
	dryRun         bool
	force          bool
	backupDir      string
	source         string
	configFile     string
	format         string
	skipBootstrap  bool
	skipExtensions bool
}

// NewRootCmd creates and returns the root command. Run without a command,
// it behaves like "dotsync sync".
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "dotsync",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity, flags.dryRun)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, flags)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.BoolVar(&flags.dryRun, "dry-run", false, MsgFlagDryRun)
	pf.BoolVar(&flags.force, "force", false, MsgFlagForce)
	pf.StringVar(&flags.backupDir, "backup-dir", "", MsgFlagBackupDir)
	pf.StringVar(&flags.source, "source", "", MsgFlagSource)
	pf.StringVar(&flags.configFile, "config", "", MsgFlagConfig)
	pf.StringVar(&flags.format, "format", "", MsgFlagFormat)

	rootCmd.Flags().BoolVar(&flags.skipBootstrap, "skip-bootstrap", false, MsgFlagSkipBootstrap)
	rootCmd.Flags().BoolVar(&flags.skipExtensions, "skip-extensions", false, MsgFlagSkipExtensions)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newSyncCmd(flags))
	rootCmd.AddCommand(newStatusCmd(flags))
	rootCmd.AddCommand(newExtensionsCmd(flags))
	rootCmd.AddCommand(newRulesCmd(flags))
	rootCmd.AddCommand(newConfigCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	sub, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		err = topics.InitializeWithOptions(rootCmd, sub, topics.Options{
			Renderer: topicRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func topicRenderer() topics.Renderer {
	if !styledHelp() {
		return &topics.PlainRenderer{}
	}
	return topics.NewGlamourRenderer()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "dotsync version %s\n", version.Version)
			_, _ = fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			_, _ = fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
