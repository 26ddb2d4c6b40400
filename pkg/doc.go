// Package pkg provides the core libraries for spinesort.
//
// # Overview
//
// spinesort turns a pasted list of book spines (or any named colors) into an
// ordered stripe list split into luminosity groups. The pkg directory is
// organized as:
//
//  1. [palette] - Records, line parsing, color-space conversions
//  2. [arrange] - Sort methods and luminosity bucketing
//  3. [render] - The stripe/divider list and its output sinks
//  4. [pipeline] - Orchestration (parse → arrange → render)
//  5. [server] - Browser UI and JSON API
//  6. [config], [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
//	"title rgb(r,g,b)" lines
//	         ↓
//	    [palette] (parse, drop malformed lines)
//	         ↓
//	    [arrange] (sort by method, bucket by luminosity)
//	         ↓
//	    [render] (stripes + dividers)
//	         ↓
//	    text / HTML / SVG / JSON / terminal
//
// # Quick Start
//
//	records := palette.Parse(input)
//	groups, err := arrange.Arrange(records, arrange.Step, 3)
//	if err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(render.Build(groups))
//
// Or run all stages with logging and hooks:
//
//	result, err := pipeline.NewRunner(logger).Execute(ctx, input, pipeline.Options{
//	    Method:  arrange.HSV,
//	    Groups:  2,
//	    Formats: []string{pipeline.FormatJSON},
//	})
//
// # Testing
//
//	go test ./...
//
// [palette]: https://pkg.go.dev/github.com/matzehuels/spinesort/pkg/palette
// [arrange]: https://pkg.go.dev/github.com/matzehuels/spinesort/pkg/arrange
// [render]: https://pkg.go.dev/github.com/matzehuels/spinesort/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/spinesort/pkg/pipeline
// [server]: https://pkg.go.dev/github.com/matzehuels/spinesort/pkg/server
// [config]: https://pkg.go.dev/github.com/matzehuels/spinesort/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/spinesort/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/spinesort/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/spinesort/pkg/buildinfo
package pkg
