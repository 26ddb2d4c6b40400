// Package pipeline provides the core sort pipeline for spinesort.
//
// This package implements the complete parse → arrange → render pipeline used
// by the CLI, the browser UI and the terminal UI. Centralizing it keeps all
// entry points consistent.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Extract color records from "title rgb(r,g,b)" lines
//  2. Arrange: Sort by the chosen method and bucket by luminosity
//  3. Render: Generate output in various formats (text, HTML, SVG, JSON, terminal)
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Method:  arrange.HSV,
//	    Groups:  3,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, input, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/spinesort/pkg/arrange"
	"github.com/matzehuels/spinesort/pkg/errors"
	"github.com/matzehuels/spinesort/pkg/palette"
	"github.com/matzehuels/spinesort/pkg/render"
	"github.com/matzehuels/spinesort/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, Server, and TUI
// =============================================================================

const (
	// DefaultWidth is the default image width in pixels (SVG and HTML).
	DefaultWidth = sink.DefaultSVGWidth

	// DefaultStripeHeight is the default SVG stripe height in pixels.
	DefaultStripeHeight = sink.DefaultSVGStripeHeight

	// DefaultTerminalWidth is the default terminal stripe width in cells.
	DefaultTerminalWidth = sink.DefaultTerminalWidth
)

// Format constants for output formats.
const (
	FormatText     = "text"
	FormatHTML     = "html"
	FormatSVG      = "svg"
	FormatJSON     = "json"
	FormatTerminal = "terminal"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText:     true,
	FormatHTML:     true,
	FormatSVG:      true,
	FormatJSON:     true,
	FormatTerminal: true,
}

// FormatNames lists the supported formats in display order.
var FormatNames = []string{FormatText, FormatHTML, FormatSVG, FormatJSON, FormatTerminal}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Arrange options
	Method arrange.Method `json:"method"`
	Groups int            `json:"groups,omitempty"`

	// Render options
	Formats       []string `json:"formats,omitempty"`
	Width         float64  `json:"width,omitempty"`
	StripeHeight  float64  `json:"stripe_height,omitempty"`
	TerminalWidth int      `json:"terminal_width,omitempty"`
	Swatch        bool     `json:"swatch,omitempty"` // Show rgb() values in terminal output

	// Runtime options (not serialized)
	Logger   *log.Logger        `json:"-"`
	Terminal *lipgloss.Renderer `json:"-"` // Renderer for the terminal format; defaults to stdout

}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Records are the parsed records in input order.
	Records []palette.Record

	// Groups are the sorted, bucketed records.
	Groups arrange.Groups

	// Elements is the flat stripe/divider list derived from Groups.
	Elements []render.Element

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and count information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Lines       int
	Records     int
	Skipped     int
	ParseTime   time.Duration
	ArrangeTime time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: text, html, svg, json, terminal)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateGroups checks that a group count is within the supported range.
func ValidateGroups(n int) error {
	return errors.ValidateGroupCount(n, arrange.MinGroups, arrange.MaxGroups)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if !o.Method.Valid() {
		return errors.New(errors.ErrCodeInvalidMethod, "invalid method %d", int(o.Method))
	}
	if o.Groups == 0 {
		o.Groups = arrange.DefaultGroups
	}
	if err := ValidateGroups(o.Groups); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidateDimension("width", o.Width); err != nil {
		return err
	}
	return errors.ValidateDimension("stripe_height", o.StripeHeight)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatText}
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.StripeHeight == 0 {
		o.StripeHeight = DefaultStripeHeight
	}
	if o.TerminalWidth == 0 {
		o.TerminalWidth = DefaultTerminalWidth
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
