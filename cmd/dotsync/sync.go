package dotsync

import (
	"github.com/arthur-debert/dotsync/pkg/core"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/spf13/cobra"
)

func newSyncCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sync",
		Short:   MsgSyncShort,
		Long:    MsgSyncLong,
		Example: MsgSyncExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, flags)
		},
	}
	cmd.Flags().BoolVar(&flags.skipBootstrap, "skip-bootstrap", false, MsgFlagSkipBootstrap)
	cmd.Flags().BoolVar(&flags.skipExtensions, "skip-extensions", false, MsgFlagSkipExtensions)
	return cmd
}

func runSync(cmd *cobra.Command, flags *globalFlags) error {
	logger := logging.GetLogger("cmd.sync")

	rt, err := newRuntime(cmd, flags)
	if err != nil {
		return err
	}

	report, err := core.Sync(cmd.Context(), core.SyncOptions{
		Context:        rt.context,
		Config:         rt.config,
		FileSystem:     rt.fs,
		Runner:         rt.runner,
		Printer:        rt.printer,
		SkipBootstrap:  flags.skipBootstrap,
		SkipExtensions: flags.skipExtensions,
	})
	if err != nil {
		return err
	}

	logger.Info().
		Str("mode", string(report.Mode)).
		Int("directives", len(report.Directives)).
		Int("extensions", len(report.Extensions)).
		Dur("elapsed", report.EndTime.Sub(report.StartTime)).
		Msg("Sync finished")
	return nil
}
