package dotsync

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/ui/output/styles"
)

// ReportFailure prints a failed command the way the operator expects to see
// it. command is the path of the command that failed ("dotsync status");
// the root command and sync report a failed sync. Without verbose output a
// hint about -v follows; with it, the error code and the external command
// that failed, if any.
func ReportFailure(w io.Writer, command string, err error, verbose bool) {
	_, _ = fmt.Fprintln(w, styles.Render("Error", "❌ "+failureMessage(command, err)))
	if !verbose {
		_, _ = fmt.Fprintln(w, styles.Render("Hint", "💡 "+MsgVerboseHint))
		return
	}
	_, _ = fmt.Fprintln(w, styles.Render("Muted", fmt.Sprintf(MsgErrorCode, errors.GetErrorCode(err))))
	if cmdline, ok := errors.FailedCommand(err); ok {
		_, _ = fmt.Fprintln(w, styles.Render("Muted", fmt.Sprintf(MsgFailedCommand, cmdline)))
	}
}

func failureMessage(command string, err error) string {
	switch command {
	case "", "dotsync", "dotsync sync":
		return fmt.Sprintf(MsgSyncFailed, errors.Describe(err))
	default:
		return fmt.Sprintf(MsgCommandFailed, command, errors.Describe(err))
	}
}
