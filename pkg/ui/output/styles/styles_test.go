package styles_test

import (
	"testing"

	"github.com/arthur-debert/dotsync/pkg/ui/output/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := styles.Default()
	for _, name := range []string{
		"Header", "Section", "Success", "Error", "Warning",
		"Muted", "Hint", "FilePath", "DryRunBanner", "Bold",
	} {
		assert.True(t, theme.Has(name), "style %s should be defined", name)
	}
}

func TestRender_UnknownStyle(t *testing.T) {
	assert.Equal(t, "plain", styles.Default().Render("DoesNotExist", "plain"))
}

func TestParse(t *testing.T) {
	theme, err := styles.Parse([]byte(`
colors:
  accent:
    light: "#000000"
    dark: "#FFFFFF"
styles:
  Custom:
    bold: true
    foreground: accent
  Orphan:
    foreground: nosuchcolor
`))
	require.NoError(t, err)

	assert.True(t, theme.Has("Custom"))
	assert.True(t, theme.Has("Orphan"))
	assert.False(t, theme.Has("Header"))
	assert.True(t, theme.Style("Custom").GetBold())
}

func TestParse_Invalid(t *testing.T) {
	_, err := styles.Parse([]byte("colors: [unterminated"))
	assert.Error(t, err)
}
