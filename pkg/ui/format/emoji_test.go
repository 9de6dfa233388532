package format

import (
	"os"
	"testing"

	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestCategoryEmoji(t *testing.T) {
	tests := []struct {
		category types.Category
		want     string
	}{
		{types.CategoryDotfile, "📄"},
		{types.CategorySSHConfig, "🔐"},
		{types.CategoryFont, "🔤"},
		{types.Category("bogus"), "⚙️"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryEmoji(tt.category))
		})
	}
}

func TestActionAndOutcomeEmoji(t *testing.T) {
	assert.Equal(t, "✅", ActionEmoji(types.ActionCopied))
	assert.Equal(t, "📝", ActionEmoji(types.ActionPlanned))
	assert.Equal(t, "•", ActionEmoji(types.SyncAction("other")))
	assert.Equal(t, "❌", OutcomeEmoji(types.OutcomeHardFailure))
	assert.Equal(t, "⚠️", OutcomeEmoji(types.OutcomeSoftFailure))
}

func TestMode(t *testing.T) {
	assert.Equal(t, "0600", Mode(0600))
	assert.Equal(t, "0700", Mode(os.ModeDir|0700))
}
