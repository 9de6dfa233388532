// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/dotsync/pkg/types"
)

// Renderer provides JSON output for machine consumption. Progress lines are
// dropped so stdout carries exactly one JSON document per command.
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

func (r *Renderer) Banner(title, subtitle string) {}
func (r *Renderer) Section(icon, title string) {}
func (r *Renderer) Item(icon, format string, args ...interface{}) {}
func (r *Renderer) Warn(format string, args ...interface{}) {}
func (r *Renderer) Hint(format string, args ...interface{}) {}
func (r *Renderer) Success(format string, args ...interface{}) {}
func (r *Renderer) Failure(format string, args ...interface{}) {}

// RenderReport encodes the whole run report.
func (r *Renderer) RenderReport(report *types.RunReport) error {
	return r.encoder.Encode(report)
}

// Encode writes v as indented JSON.
func (r *Renderer) Encode(v interface{}) error {
	return r.encoder.Encode(v)
}
