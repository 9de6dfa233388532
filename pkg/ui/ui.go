// Package ui provides a unified interface for operator-facing output.
// It supports terminal (rich), text (plain), and JSON output formats.
//
// Logging goes through pkg/logging; everything the operator is meant to
// read while a run progresses goes through a Printer.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotsync/pkg/types"
	"github.com/arthur-debert/dotsync/pkg/ui/json"
	"github.com/arthur-debert/dotsync/pkg/ui/text"
)

// Printer is the common interface for all output renderers.
type Printer interface {
	// Banner prints the run header.
	Banner(title, subtitle string)

	// Section starts a named group of items.
	Section(icon, title string)

	// Item prints one line inside the current section.
	Item(icon, format string, args ...interface{})

	Warn(format string, args ...interface{})
	Hint(format string, args ...interface{})
	Success(format string, args ...interface{})
	Failure(format string, args ...interface{})

	// RenderReport prints the end-of-run summary.
	RenderReport(report *types.RunReport) error

	// Encode emits a machine-readable value. Human printers ignore it.
	Encode(v interface{}) error
}

// NewPrinter creates a new printer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewPrinter(format Format, output io.Writer) (Printer, error) {
	switch format {
	case FormatAuto:
		return NewPrinter(DetectFormat(output), output)
	case FormatTerminal:
		return text.New(output, true), nil
	case FormatText:
		return text.New(output, false), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
