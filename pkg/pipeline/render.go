package pipeline

import (
	"fmt"

	"github.com/matzehuels/spinesort/pkg/render"
	"github.com/matzehuels/spinesort/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(elems []render.Element, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(elems, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(elems []render.Element, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatText:
		return sink.RenderText(elems), nil
	case FormatHTML:
		return sink.RenderHTML(elems,
			sink.WithHTMLDocument(),
			sink.WithHTMLTitle("spinesort: "+opts.Method.Label()),
			sink.WithHTMLWidth(int(opts.Width)))
	case FormatSVG:
		return sink.RenderSVG(elems,
			sink.WithSVGWidth(opts.Width),
			sink.WithSVGStripeHeight(opts.StripeHeight)), nil
	case FormatJSON:
		return sink.RenderJSON(elems, sink.WithJSONMethod(opts.Method.String()))
	case FormatTerminal:
		return []byte(sink.RenderTerminal(elems, buildTerminalOptions(opts)...)), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func buildTerminalOptions(opts Options) []sink.TerminalOption {
	topts := []sink.TerminalOption{sink.WithTerminalWidth(opts.TerminalWidth)}
	if opts.Terminal != nil {
		topts = append(topts, sink.WithTerminalRenderer(opts.Terminal))
	}
	if opts.Swatch {
		topts = append(topts, sink.WithTerminalSwatch())
	}
	return topts
}
