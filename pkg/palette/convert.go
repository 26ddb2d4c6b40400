package palette

import (
	"math"
	"strconv"
)

// DefaultRepetitions is the number of discrete levels used by [Step].
const DefaultRepetitions = 8

// HSV is a hue/saturation/value triple, each component in [0,1] for in-gamut
// input.
type HSV struct {
	H, S, V float64
}

// HLS is a hue/lightness/saturation triple. Lightness precedes saturation.
type HLS struct {
	H, L, S float64
}

// StepKey is the step-sort key (hue bucket, luminosity bucket, value bucket).
type StepKey [3]int

// String joins the buckets with commas, e.g. "3,5,2". Step ordering compares
// these strings byte-wise, not the integers.
func (k StepKey) String() string {
	b := make([]byte, 0, 12)
	for i, v := range k {
		if i > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
	}
	return string(b)
}

// Luminosity returns sqrt(0.241r + 0.691g + 0.068b).
// Negative weighted sums yield NaN.
func Luminosity(r, g, b int) float64 {
	return math.Sqrt(0.241*float64(r) + 0.691*float64(g) + 0.068*float64(b))
}

// ToHSV converts RGB channels (nominally 0-255) to HSV.
func ToHSV(r, g, b int) HSV {
	rf, gf, bf := normalize(r, g, b)
	hi, lo := max3(rf, gf, bf), min3(rf, gf, bf)
	d := hi - lo

	s := 0.0
	if hi != 0 {
		s = d / hi
	}
	h := 0.0
	if hi != lo {
		h = hue(rf, gf, bf, hi, d)
	}
	return HSV{H: h, S: s, V: hi}
}

// ToHLS converts RGB channels (nominally 0-255) to HLS.
func ToHLS(r, g, b int) HLS {
	rf, gf, bf := normalize(r, g, b)
	hi, lo := max3(rf, gf, bf), min3(rf, gf, bf)
	l := (hi + lo) / 2

	if hi == lo {
		return HLS{L: l}
	}
	d := hi - lo
	s := d / (hi + lo)
	if l > 0.5 {
		s = d / (2 - hi - lo)
	}
	return HLS{H: hue(rf, gf, bf, hi, d), L: l, S: s}
}

// Step computes the step-sort key: hue, luminosity and value are each
// quantized into repetitions levels, and on odd hue sectors the luminosity
// and value levels are inverted so adjacent sectors sweep in opposite
// directions.
func Step(r, g, b, repetitions int) StepKey {
	lum := Luminosity(r, g, b)
	hsv := ToHSV(r, g, b)
	rep := float64(repetitions)

	h2 := floorInt(hsv.H * rep)
	v2 := floorInt(hsv.V * rep)
	lum2 := floorInt(lum * rep)
	if h2%2 == 1 {
		v2 = repetitions - v2
		lum2 = repetitions - lum2
	}
	return StepKey{h2, lum2, v2}
}

func normalize(r, g, b int) (float64, float64, float64) {
	return float64(r) / 255, float64(g) / 255, float64(b) / 255
}

// hue returns the six-sector hue in [0,1) for hi != lo.
func hue(r, g, b, hi, d float64) float64 {
	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	return h / 6
}

// floorInt floors x to an int; NaN maps to 0.
func floorInt(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	return int(math.Floor(x))
}

func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
