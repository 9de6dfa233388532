package dotsync

import (
	"sort"

	"github.com/arthur-debert/dotsync/pkg/config"
	"github.com/arthur-debert/dotsync/pkg/core"
	"github.com/spf13/cobra"
)

func newExtensionsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:               "extensions [editor...]",
		Short:             MsgExtensionsShort,
		Long:              MsgExtensionsLong,
		GroupID:           "core",
		ValidArgsFunction: editorNamesCompletion(flags),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd, flags)
			if err != nil {
				return err
			}

			report, err := core.InstallExtensions(cmd.Context(), core.ExtensionsOptions{
				Context:    rt.context,
				Config:     rt.config,
				FileSystem: rt.fs,
				Runner:     rt.runner,
				Printer:    rt.printer,
				Editors:    args,
			})
			if err != nil {
				return err
			}

			for _, o := range report.Extensions {
				if o.Failed() {
					rt.printer.Hint("Some extensions failed; see the reasons above")
					break
				}
			}
			return rt.printer.Encode(report.Extensions)
		},
	}
}

// editorNamesCompletion completes the editors named in the configuration.
func editorNamesCompletion(flags *globalFlags) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := config.Load(flags.configFile, nil)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		names := make([]string, 0, len(cfg.Editors))
		for name := range cfg.Editors {
			names = append(names, name)
		}
		sort.Strings(names)
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}
