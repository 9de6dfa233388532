package dotsync

import (
	"github.com/arthur-debert/dotsync/pkg/core"
	"github.com/arthur-debert/dotsync/pkg/status"
	"github.com/spf13/cobra"
)

var stateIcons = map[status.State]string{
	status.StateInSync:        "✅",
	status.StateDiffers:       "✏️",
	status.StateMissingTarget: "➕",
	status.StateMissingSource: "⏭️",
}

func newStatusCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd, flags)
			if err != nil {
				return err
			}

			report, err := core.Status(core.PlanOptions{
				Context:    rt.context,
				Config:     rt.config,
				FileSystem: rt.fs,
			})
			if err != nil {
				return err
			}

			p := rt.printer
			p.Section("🧭", "Mode: "+string(report.Mode))
			for _, e := range report.Entries {
				if e.State == status.StateMissingSource && !rt.context.Verbose {
					continue
				}
				p.Item(stateIcons[e.State], "%-15s %s", e.State, e.Directive.Target)
			}

			counts := report.Counts()
			if report.InSync() {
				p.Success("%d file(s) in sync", counts[status.StateInSync])
			} else {
				p.Warn("%d differ, %d not installed; run dotsync sync to update",
					counts[status.StateDiffers], counts[status.StateMissingTarget])
			}
			return p.Encode(report)
		},
	}
}
