package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/spinesort/pkg/arrange"
	"github.com/matzehuels/spinesort/pkg/errors"
	"github.com/matzehuels/spinesort/pkg/observability"
	"github.com/matzehuels/spinesort/pkg/palette"
	"github.com/matzehuels/spinesort/pkg/render"
)

// Runner executes the pipeline. It holds no per-run state, so multiple
// goroutines can share one Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → arrange → render pipeline on input.
func (r *Runner) Execute(ctx context.Context, input string, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := errors.ValidateInput(input); err != nil {
		return nil, err
	}

	result := &Result{Artifacts: make(map[string][]byte)}

	// Stage 1: Parse
	parseStart := time.Now()
	records, stats := r.Parse(ctx, input)
	result.Records = records
	result.Stats.Lines = stats.Lines
	result.Stats.Records = stats.Records
	result.Stats.Skipped = stats.Skipped
	result.Stats.ParseTime = time.Since(parseStart)

	opts.Logger.Info("parsed colors",
		"records", stats.Records,
		"skipped", stats.Skipped,
		"duration", result.Stats.ParseTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Arrange
	arrangeStart := time.Now()
	groups, err := r.Arrange(ctx, records, opts)
	if err != nil {
		return nil, fmt.Errorf("arrange: %w", err)
	}
	result.Groups = groups
	result.Elements = render.Build(groups)
	result.Stats.ArrangeTime = time.Since(arrangeStart)

	opts.Logger.Info("arranged colors",
		"method", opts.Method,
		"groups", len(groups),
		"non_empty", groups.NonEmpty(),
		"duration", result.Stats.ArrangeTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, result.Elements, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Parse extracts records from input. Malformed lines are counted, never
// reported as errors.
func (r *Runner) Parse(ctx context.Context, input string) ([]palette.Record, palette.ParseStats) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, len(input))

	start := time.Now()
	records, stats := palette.ParseWithStats(input)
	hooks.OnParseComplete(ctx, stats.Records, stats.Skipped, time.Since(start), nil)
	return records, stats
}

// Arrange sorts and buckets records according to opts.
func (r *Runner) Arrange(ctx context.Context, records []palette.Record, opts Options) (arrange.Groups, error) {
	hooks := observability.Pipeline()
	method := opts.Method.String()
	hooks.OnArrangeStart(ctx, method, opts.Groups)

	start := time.Now()
	groups, err := arrange.Arrange(records, opts.Method, opts.Groups)
	hooks.OnArrangeComplete(ctx, method, opts.Groups, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// Render generates artifacts for every format in opts.Formats.
func (r *Runner) Render(ctx context.Context, elems []render.Element, opts Options) (map[string][]byte, error) {
	opts.SetRenderDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)

	start := time.Now()
	artifacts, err := Render(elems, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
