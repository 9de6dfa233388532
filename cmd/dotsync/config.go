package dotsync

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dotsync/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(flags *globalFlags) *cobra.Command {
	var initTemplate bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if initTemplate {
				_, err := fmt.Fprint(out, config.GenerateConfigContent())
				return err
			}

			rt, err := newRuntime(cmd, flags)
			if err != nil {
				return err
			}

			if strings.EqualFold(rt.config.Output.Format, "json") {
				return rt.printer.Encode(rt.config)
			}
			content, err := config.Dump(rt.config)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, content)
			return err
		},
	}
	cmd.Flags().BoolVar(&initTemplate, "init", false, MsgFlagInit)
	return cmd
}
