package sink

import (
	"bytes"

	"github.com/matzehuels/spinesort/pkg/render"
)

// TextDivider is the line written between groups by [RenderText]. It does not
// parse as a color line, so the output can be fed back as input.
const TextDivider = "---"

// RenderText writes one "title rgb(r,g,b)" line per stripe.
func RenderText(elems []render.Element) []byte {
	var buf bytes.Buffer
	for _, e := range elems {
		if e.IsDivider() {
			buf.WriteString(TextDivider)
		} else {
			buf.WriteString(e.Record.String())
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
