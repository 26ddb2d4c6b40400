package sink

import (
	"encoding/json"
	"math"

	"github.com/matzehuels/spinesort/pkg/render"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	method string
}

// WithJSONMethod records the sort method name in the output.
func WithJSONMethod(name string) JSONOption { return func(r *jsonRenderer) { r.method = name } }

// JSONOutput is the document written by [RenderJSON].
type JSONOutput struct {
	Method     string        `json:"method,omitempty"`
	GroupCount int           `json:"group_count"`
	Count      int           `json:"count"`
	Groups     [][]JSONColor `json:"groups"`
}

// JSONColor is one record in [JSONOutput].
type JSONColor struct {
	Title      string  `json:"title"`
	R          int     `json:"r"`
	G          int     `json:"g"`
	B          int     `json:"b"`
	CSS        string  `json:"css"`
	Luminosity float64 `json:"luminosity"`
}

// RenderJSON encodes the stripe list as grouped records.
func RenderJSON(elems []render.Element, opts ...JSONOption) ([]byte, error) {
	return json.MarshalIndent(BuildJSON(elems, opts...), "", "  ")
}

// BuildJSON returns the document [RenderJSON] encodes. Luminosity is omitted
// (zero) for records whose luminosity is NaN, since JSON has no NaN.
func BuildJSON(elems []render.Element, opts ...JSONOption) JSONOutput {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	groups := render.Regroup(elems)
	out := JSONOutput{
		Method:     r.method,
		GroupCount: len(groups),
		Groups:     make([][]JSONColor, len(groups)),
	}
	for i, grp := range groups {
		colors := make([]JSONColor, 0, len(grp))
		for _, rec := range grp {
			lum := rec.Luminosity()
			if math.IsNaN(lum) {
				lum = 0
			}
			colors = append(colors, JSONColor{
				Title: rec.Title,
				R:     rec.R, G: rec.G, B: rec.B,
				CSS:        rec.CSS(),
				Luminosity: lum,
			})
		}
		out.Groups[i] = colors
		out.Count += len(colors)
	}
	return out
}
