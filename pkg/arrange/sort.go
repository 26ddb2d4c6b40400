package arrange

import (
	"slices"
	"strings"

	"github.com/matzehuels/spinesort/pkg/palette"
)

// Sort returns a sorted copy of records. The sort is stable: records that
// compare equal keep their input order. An invalid method sorts by
// luminosity.
func Sort(records []palette.Record, m Method) []palette.Record {
	out := slices.Clone(records)
	if len(out) < 2 {
		return out
	}
	slices.SortStableFunc(out, comparator(m))
	return out
}

// comparator dispatches a method to its comparison function.
func comparator(m Method) func(a, b palette.Record) int {
	switch m {
	case HSV:
		return byHSVHue
	case HLS:
		return byHLSHue
	case Step:
		return byStep
	case InvertedStep:
		return byStepDesc
	default:
		return byLuminosity
	}
}

func byLuminosity(a, b palette.Record) int {
	return compareFloat(a.Luminosity(), b.Luminosity())
}

func byHSVHue(a, b palette.Record) int {
	return compareFloat(a.HSV().H, b.HSV().H)
}

func byHLSHue(a, b palette.Record) int {
	return compareFloat(a.HLS().H, b.HLS().H)
}

func byStep(a, b palette.Record) int {
	return strings.Compare(a.Step().String(), b.Step().String())
}

func byStepDesc(a, b palette.Record) int {
	return strings.Compare(b.Step().String(), a.Step().String())
}

// compareFloat orders a and b ascending. Pairs involving NaN compare equal,
// so such records keep their relative order.
func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
