package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/spinesort/pkg/render"
)

const (
	dividerHeight = 5 // px
	dividerColor  = "#000"
)

const htmlStripeStyle = "background-color:%s;color:white;font-weight:bold;padding:10px 16px"

const htmlDocumentHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
  body { margin: 0; font-family: "Segoe UI", sans-serif; }
  .stripes { max-width: %dpx; }
</style>
</head>
<body>
<div class="stripes">
`

const htmlDocumentTail = `</div>
</body>
</html>
`

// HTMLOption configures HTML rendering via [RenderHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	document bool
	title    string
	width    int
}

// WithHTMLDocument wraps the stripes in a complete HTML page.
func WithHTMLDocument() HTMLOption { return func(r *htmlRenderer) { r.document = true } }

// WithHTMLTitle sets the page title used by [WithHTMLDocument].
func WithHTMLTitle(title string) HTMLOption { return func(r *htmlRenderer) { r.title = title } }

// WithHTMLWidth sets the maximum stripe width in pixels for full pages.
func WithHTMLWidth(px int) HTMLOption { return func(r *htmlRenderer) { r.width = px } }

// RenderHTML renders the stripe list as a sequence of <div> elements. Each
// stripe has the record's color as background and its title as white bold
// text; dividers are thin black bars.
func RenderHTML(elems []render.Element, opts ...HTMLOption) ([]byte, error) {
	r := htmlRenderer{title: "spinesort", width: 480}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	if r.document {
		fmt.Fprintf(&buf, htmlDocumentHead, html.EscapeString(r.title), r.width)
	}
	WriteHTMLStripes(&buf, elems)
	if r.document {
		buf.WriteString(htmlDocumentTail)
	}
	return buf.Bytes(), nil
}

// WriteHTMLStripes writes the bare stripe <div>s to buf. The server embeds
// this fragment in its own page.
func WriteHTMLStripes(buf *bytes.Buffer, elems []render.Element) {
	for _, e := range elems {
		if e.IsDivider() {
			fmt.Fprintf(buf, `<div class="divider" data-group="%d" style="height:%dpx;background-color:%s"></div>`+"\n",
				e.Group, dividerHeight, dividerColor)
			continue
		}
		style := fmt.Sprintf(htmlStripeStyle, e.Record.CSS())
		fmt.Fprintf(buf, `<div class="stripe" data-group="%d" style="%s">%s</div>`+"\n",
			e.Group, style, html.EscapeString(e.Record.Title))
	}
}
