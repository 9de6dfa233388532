// Package styles holds the lipgloss styles used by styled output.
//
// Styles have semantic names (Header, Success, FilePath, ...) and adaptive
// colours that follow the terminal background. The built-in theme is
// styles.yaml, embedded at build time.
package styles

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

type styleDef struct {
	Bold        bool   `yaml:"bold,omitempty"`
	Italic      bool   `yaml:"italic,omitempty"`
	Underline   bool   `yaml:"underline,omitempty"`
	Foreground  string `yaml:"foreground,omitempty"`
	Background  string `yaml:"background,omitempty"`
	MarginLeft  int    `yaml:"marginLeft,omitempty"`
	PaddingLeft int    `yaml:"paddingLeft,omitempty"`
}

type themeFile struct {
	Colors map[string]colorDef `yaml:"colors"`
	Styles map[string]styleDef `yaml:"styles"`
}

// Theme maps style names to lipgloss styles.
type Theme struct {
	styles map[string]lipgloss.Style
}

//go:embed styles.yaml
var embedded []byte

var (
	defaultOnce  sync.Once
	defaultTheme *Theme
)

// Default returns the embedded theme. A broken styles.yaml yields an empty
// theme, which renders everything unstyled.
func Default() *Theme {
	defaultOnce.Do(func() {
		t, err := Parse(embedded)
		if err != nil {
			t = &Theme{styles: map[string]lipgloss.Style{}}
		}
		defaultTheme = t
	})
	return defaultTheme
}

// Parse builds a theme from YAML. Style foregrounds and backgrounds name
// entries of the colors table; unknown colour names are ignored.
func Parse(data []byte) (*Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(file.Colors))
	for name, def := range file.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	t := &Theme{styles: make(map[string]lipgloss.Style, len(file.Styles))}
	for name, def := range file.Styles {
		t.styles[name] = def.build(colors)
	}
	return t, nil
}

func (d styleDef) build(colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle().
		Bold(d.Bold).
		Italic(d.Italic).
		Underline(d.Underline)

	if c, ok := colors[d.Foreground]; ok {
		style = style.Foreground(c)
	}
	if c, ok := colors[d.Background]; ok {
		style = style.Background(c)
	}
	if d.MarginLeft > 0 {
		style = style.MarginLeft(d.MarginLeft)
	}
	if d.PaddingLeft > 0 {
		style = style.PaddingLeft(d.PaddingLeft)
	}
	return style
}

// Has reports whether the theme defines name.
func (t *Theme) Has(name string) bool {
	_, ok := t.styles[name]
	return ok
}

// Style returns the named style, or an empty style.
func (t *Theme) Style(name string) lipgloss.Style {
	if s, ok := t.styles[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Render applies the named style to s.
func (t *Theme) Render(name, s string) string {
	return t.Style(name).Render(s)
}

// Render applies a style of the default theme to s.
func Render(name, s string) string {
	return Default().Render(name, s)
}
