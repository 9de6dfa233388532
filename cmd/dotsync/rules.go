package dotsync

import (
	"github.com/arthur-debert/dotsync/pkg/core"
	"github.com/arthur-debert/dotsync/pkg/ui/format"
	"github.com/spf13/cobra"
)

func newRulesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd, flags)
			if err != nil {
				return err
			}

			plan, err := core.BuildPlan(core.PlanOptions{
				Context:    rt.context,
				Config:     rt.config,
				FileSystem: rt.fs,
			})
			if err != nil {
				return err
			}

			p := rt.printer
			p.Section("🧭", "Mode: "+string(plan.Mode))
			for _, d := range plan.Directives {
				line := d.Source + " -> " + d.Target
				if m, ok := d.EffectiveMode(); ok {
					line += " (" + format.Mode(m) + ")"
				}
				if d.PreserveExisting {
					line += " [preserve]"
				}
				p.Item(format.CategoryEmoji(d.Category), "%s", line)
			}
			return p.Encode(plan)
		},
	}
}
