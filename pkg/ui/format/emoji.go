// Package format provides formatting utilities for UI presentation.
package format

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotsync/pkg/types"
)

// CategoryEmoji returns an emoji representation for a directive category.
func CategoryEmoji(c types.Category) string {
	switch c {
	case types.CategoryDotfile:
		return "📄"
	case types.CategoryFont:
		return "🔤"
	case types.CategoryTheme:
		return "🎨"
	case types.CategoryProfile:
		return "🐚"
	case types.CategorySSHConfig:
		return "🔐"
	case types.CategoryKeybinding:
		return "⌨️"
	default:
		return "⚙️"
	}
}

// ActionEmoji returns the marker printed next to a directive result.
func ActionEmoji(a types.SyncAction) string {
	switch a {
	case types.ActionCopied:
		return "✅"
	case types.ActionPlanned:
		return "📝"
	case types.ActionSkippedMissingSource:
		return "⏭️"
	case types.ActionPreserved:
		return "🛡️"
	default:
		return "•"
	}
}

// OutcomeEmoji returns the marker printed next to an extension outcome.
func OutcomeEmoji(k types.OutcomeKind) string {
	switch k {
	case types.OutcomeAlreadyInstalled:
		return "✓"
	case types.OutcomeInstalled:
		return "✅"
	case types.OutcomeSoftFailure:
		return "⚠️"
	case types.OutcomeHardFailure:
		return "❌"
	case types.OutcomePlanned:
		return "📝"
	default:
		return "•"
	}
}

// Mode renders a file mode as a four digit octal string.
func Mode(m os.FileMode) string {
	return fmt.Sprintf("%04o", m.Perm())
}
