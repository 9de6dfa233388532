// Package text renders human readable output, optionally styled with
// lipgloss for terminals that support it.
package text

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/arthur-debert/dotsync/pkg/ui/format"
	"github.com/arthur-debert/dotsync/pkg/ui/output/styles"
)

// Printer writes progress lines and the final summary.
type Printer struct {
	out    io.Writer
	styled bool
}

// New creates a printer. When styled is false no escape sequences are
// emitted, which is what pipes and NO_COLOR want.
func New(out io.Writer, styled bool) *Printer {
	return &Printer{out: out, styled: styled}
}

func (p *Printer) render(style, s string) string {
	if !p.styled {
		return s
	}
	return styles.Render(style, s)
}

func (p *Printer) println(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

func (p *Printer) Banner(title, subtitle string) {
	p.println(p.render("Header", title))
	if subtitle != "" {
		p.println(p.render("Muted", subtitle))
	}
	p.println("")
}

func (p *Printer) Section(icon, title string) {
	p.println("")
	p.println(p.render("Section", icon+" "+title))
}

func (p *Printer) Item(icon, format string, args ...interface{}) {
	p.println("  " + icon + " " + fmt.Sprintf(format, args...))
}

func (p *Printer) Warn(format string, args ...interface{}) {
	p.println(p.render("Warning", "⚠️  "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Hint(format string, args ...interface{}) {
	p.println(p.render("Hint", "💡 "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Success(format string, args ...interface{}) {
	p.println(p.render("Success", "✅ "+fmt.Sprintf(format, args...)))
}

func (p *Printer) Failure(format string, args ...interface{}) {
	p.println(p.render("Error", "❌ "+fmt.Sprintf(format, args...)))
}

// Encode is a no-op; text output is produced line by line.
func (p *Printer) Encode(v interface{}) error {
	return nil
}

// RenderReport prints the end-of-run summary.
func (p *Printer) RenderReport(report *types.RunReport) error {
	p.Section("📊", "Summary")

	counts := report.CountActions()
	p.Item(format.ActionEmoji(types.ActionCopied), "%d copied", counts[types.ActionCopied])
	if n := counts[types.ActionPlanned]; n > 0 {
		p.Item(format.ActionEmoji(types.ActionPlanned), "%d planned", n)
	}
	if n := counts[types.ActionPreserved]; n > 0 {
		p.Item(format.ActionEmoji(types.ActionPreserved), "%d preserved (use --force to overwrite)", n)
	}
	if n := counts[types.ActionSkippedMissingSource]; n > 0 {
		p.Item(format.ActionEmoji(types.ActionSkippedMissingSource), "%d skipped, source missing", n)
	}

	if len(report.Extensions) > 0 {
		p.Item("🧩", "extensions: %s", summarizeOutcomes(report.CountOutcomes()))
		for _, o := range report.Extensions {
			if o.Failed() {
				p.Item(format.OutcomeEmoji(o.Kind), "%s %s: %s", o.Editor, o.Extension, o.Reason)
			}
		}
	}

	if backups := report.BackedUp(); len(backups) > 0 {
		p.Item("💾", "%d file(s) backed up to %s", len(backups), p.render("FilePath", report.BackupDir))
	}

	p.println("")
	if report.DryRun {
		p.println(p.render("DryRunBanner", "🔍 Dry run: no changes were made"))
		return nil
	}

	elapsed := report.EndTime.Sub(report.StartTime).Round(time.Millisecond)
	p.Success("Sync completed in %s", elapsed)
	return nil
}

func summarizeOutcomes(counts map[types.OutcomeKind]int) string {
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%d %s", counts[types.OutcomeKind(k)], k))
	}
	return strings.Join(parts, ", ")
}
