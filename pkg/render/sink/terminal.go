package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/spinesort/pkg/render"
)

// DefaultTerminalWidth is the stripe width in cells.
const DefaultTerminalWidth = 48

// TerminalOption configures console rendering via [RenderTerminal].
type TerminalOption func(*terminalRenderer)

type terminalRenderer struct {
	width    int
	renderer *lipgloss.Renderer
	swatch   bool
}

// WithTerminalWidth sets the stripe width in cells.
func WithTerminalWidth(w int) TerminalOption { return func(r *terminalRenderer) { r.width = w } }

// WithTerminalRenderer renders through a specific lipgloss renderer, e.g. one
// bound to a writer other than stdout.
func WithTerminalRenderer(lr *lipgloss.Renderer) TerminalOption {
	return func(r *terminalRenderer) { r.renderer = lr }
}

// WithTerminalSwatch appends the rgb(r,g,b) value after each title.
func WithTerminalSwatch() TerminalOption { return func(r *terminalRenderer) { r.swatch = true } }

// RenderTerminal renders stripes as full-width colored rows with white bold
// titles and a heavy rule between groups.
func RenderTerminal(elems []render.Element, opts ...TerminalOption) string {
	r := terminalRenderer{width: DefaultTerminalWidth}
	for _, opt := range opts {
		opt(&r)
	}
	if r.renderer == nil {
		r.renderer = lipgloss.DefaultRenderer()
	}

	divider := r.renderer.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(strings.Repeat("━", r.width))

	var b strings.Builder
	for _, e := range elems {
		if e.IsDivider() {
			b.WriteString(divider)
			b.WriteString("\n")
			continue
		}
		label := e.Record.Title
		if r.swatch {
			label += "  " + e.Record.CSS()
		}
		style := r.renderer.NewStyle().
			Background(lipgloss.Color(e.Record.Hex())).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 2).
			Width(r.width).
			MaxWidth(r.width)
		b.WriteString(style.Render(label))
		b.WriteString("\n")
	}
	return b.String()
}
