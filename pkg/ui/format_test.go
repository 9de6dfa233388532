package ui

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/types"
	uijson "github.com/arthur-debert/dotsync/pkg/ui/json"
	"github.com/arthur-debert/dotsync/pkg/ui/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"term", FormatTerminal, false},
		{"TERMINAL", FormatTerminal, false},
		{"text", FormatText, false},
		{"plain", FormatText, false},
		{"json", FormatJSON, false},
		{"yaml", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "term", FormatTerminal.String())
	assert.Equal(t, "unknown", Format(42).String())
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatText, DetectFormat(os.Stdout))
}

func TestDetectFormat_NotAFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, FormatText, DetectFormat(&bytes.Buffer{}))
}

func TestParseFormat_ErrorCode(t *testing.T) {
	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDetectFormat_Pipe(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer func() { _ = r.Close() }()
	defer func() { _ = w.Close() }()

	assert.Equal(t, FormatText, DetectFormat(w))
}

func TestNewPrinter(t *testing.T) {
	var buf bytes.Buffer

	p, err := NewPrinter(FormatJSON, &buf)
	require.NoError(t, err)
	assert.IsType(t, &uijson.Renderer{}, p)

	p, err = NewPrinter(FormatAuto, &buf)
	require.NoError(t, err)
	assert.IsType(t, &text.Printer{}, p)

	_, err = NewPrinter(Format(42), &buf)
	assert.Error(t, err)
}

func TestJSONPrinter_OnlyReport(t *testing.T) {
	var buf bytes.Buffer
	p, err := NewPrinter(FormatJSON, &buf)
	require.NoError(t, err)

	p.Banner("dotsync", "ignored")
	p.Item("✅", "ignored")
	require.NoError(t, p.RenderReport(&types.RunReport{
		Mode:       types.ModeWork,
		DryRun:     true,
		Directives: []types.SyncResult{{Action: types.ActionPlanned}},
	}))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "work", decoded["mode"])
	assert.Equal(t, true, decoded["dryRun"])
}
