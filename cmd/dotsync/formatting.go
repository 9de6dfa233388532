package dotsync

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/dotsync/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// styledHelp reports whether help output may carry escape sequences. It
// follows the same rules as the operator output: a color terminal and no
// NO_COLOR.
func styledHelp() bool {
	return ui.DetectFormat(os.Stdout) == ui.FormatTerminal
}

func formatBold(s string) string {
	if !styledHelp() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting registers the functions used by the usage template.
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}
