package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/spinesort/pkg/render"
)

// Default SVG geometry in pixels.
const (
	DefaultSVGWidth        = 480.0
	DefaultSVGStripeHeight = 40.0
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width        float64
	stripeHeight float64
	fontSize     float64
}

// WithSVGWidth sets the image width.
func WithSVGWidth(w float64) SVGOption { return func(r *svgRenderer) { r.width = w } }

// WithSVGStripeHeight sets the height of each stripe. Dividers stay 5px.
func WithSVGStripeHeight(h float64) SVGOption { return func(r *svgRenderer) { r.stripeHeight = h } }

// RenderSVG draws the stripe list top to bottom as a single SVG image.
func RenderSVG(elems []render.Element, opts ...SVGOption) []byte {
	r := svgRenderer{width: DefaultSVGWidth, stripeHeight: DefaultSVGStripeHeight}
	for _, opt := range opts {
		opt(&r)
	}
	if r.fontSize == 0 {
		r.fontSize = r.stripeHeight * 0.4
	}

	height := r.totalHeight(elems)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, height, r.width, height)

	y := 0.0
	for _, e := range elems {
		if e.IsDivider() {
			fmt.Fprintf(&buf, `  <rect class="divider" x="0" y="%.1f" width="%.1f" height="%d" fill="%s"/>`+"\n",
				y, r.width, dividerHeight, dividerColor)
			y += dividerHeight
			continue
		}
		r.renderStripe(&buf, e, y)
		y += r.stripeHeight
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r svgRenderer) totalHeight(elems []render.Element) float64 {
	c := render.Count(elems)
	return float64(c.Stripes)*r.stripeHeight + float64(c.Dividers*dividerHeight)
}

func (r svgRenderer) renderStripe(buf *bytes.Buffer, e render.Element, y float64) {
	fmt.Fprintf(buf, `  <rect class="stripe" x="0" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		y, r.width, r.stripeHeight, e.Record.CSS())
	fmt.Fprintf(buf, `  <text x="16" y="%.1f" dominant-baseline="middle" font-family="Segoe UI, sans-serif" font-size="%.1f" font-weight="bold" fill="white">%s</text>`+"\n",
		y+r.stripeHeight/2, r.fontSize, html.EscapeString(e.Record.Title))
}
