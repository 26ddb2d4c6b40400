package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Record is a titled RGB color parsed from one input line.
type Record struct {
	Title string `json:"title"`
	R     int    `json:"r"`
	G     int    `json:"g"`
	B     int    `json:"b"`
}

// NewRecord returns a Record for the given title and channels.
func NewRecord(title string, r, g, b int) Record {
	return Record{Title: title, R: r, G: g, B: b}
}

// Luminosity returns the record's luminosity sort key.
func (rec Record) Luminosity() float64 { return Luminosity(rec.R, rec.G, rec.B) }

// HSV returns the record's hue, saturation and value.
func (rec Record) HSV() HSV { return ToHSV(rec.R, rec.G, rec.B) }

// HLS returns the record's hue, lightness and saturation.
func (rec Record) HLS() HLS { return ToHLS(rec.R, rec.G, rec.B) }

// Step returns the record's step-sort key with [DefaultRepetitions].
func (rec Record) Step() StepKey { return Step(rec.R, rec.G, rec.B, DefaultRepetitions) }

// CSS returns the literal rgb(r,g,b) color, channels unclamped.
func (rec Record) CSS() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", rec.R, rec.G, rec.B)
}

// Hex returns the color as #rrggbb with channels clamped to [0,255].
// Use it only where a sink needs an in-gamut color (terminals); HTML and SVG
// output keep the literal [Record.CSS] value.
func (rec Record) Hex() string {
	c := colorful.Color{R: float64(rec.R) / 255, G: float64(rec.G) / 255, B: float64(rec.B) / 255}
	return c.Clamped().Hex()
}

// String formats the record the way it is written in input text.
func (rec Record) String() string {
	return rec.Title + " " + rec.CSS()
}
