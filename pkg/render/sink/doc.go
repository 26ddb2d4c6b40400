// Package sink renders stripe lists to output formats.
//
// Every sink takes the flat element list produced by [render.Build] and a set
// of functional options:
//
//   - [RenderHTML]: <div> stripes for the browser UI, or a full page
//   - [RenderSVG]: a standalone vertical stripe image
//   - [RenderJSON]: groups and stripes for programmatic use
//   - [RenderTerminal]: lipgloss blocks for the console
//   - [RenderText]: the input line format with "---" between groups
//
// HTML, SVG and JSON keep each record's literal rgb(r,g,b) value, including
// out-of-range channels. The terminal sink clamps to #rrggbb because
// terminals need an in-gamut color.
//
// [render.Build]: github.com/matzehuels/spinesort/pkg/render.Build
package sink
