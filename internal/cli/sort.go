package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spinesort/pkg/arrange"
	"github.com/matzehuels/spinesort/pkg/pipeline"
)

// formatExt maps output formats to file extensions.
var formatExt = map[string]string{
	pipeline.FormatText:     ".txt",
	pipeline.FormatHTML:     ".html",
	pipeline.FormatSVG:      ".svg",
	pipeline.FormatJSON:     ".json",
	pipeline.FormatTerminal: ".ans",
}

type sortFlags struct {
	method       string
	groups       int
	formats      []string
	output       string
	width        float64
	stripeHeight float64
	swatch       bool
}

// sortCommand creates the sort command.
func (c *CLI) sortCommand() *cobra.Command {
	var flags sortFlags

	cmd := &cobra.Command{
		Use:   "sort [file|-]",
		Short: "Sort a color list and render it",
		Long: `Sort reads "title rgb(r,g,b)" lines from a file or stdin, sorts them and
buckets them into luminosity groups.

Methods: ` + strings.Join(arrange.MethodNames(), ", ") + `
Formats: ` + strings.Join(pipeline.FormatNames, ", ") + `

Without --format the output is terminal stripes when stdout is a console
and plain text otherwise.`,
		Example: `  spinesort sort books.txt
  spinesort sort -m hsv -g 3 books.txt
  cat books.txt | spinesort sort -f svg,json -o shelf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSort(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.method, "method", "m", "", "sort method: "+strings.Join(arrange.MethodNames(), ", "))
	cmd.Flags().IntVarP(&flags.groups, "groups", "g", 0, fmt.Sprintf("luminosity groups (%d-%d)", arrange.MinGroups, arrange.MaxGroups))
	cmd.Flags().StringSliceVarP(&flags.formats, "format", "f", nil, "output formats, comma-separated: "+strings.Join(pipeline.FormatNames, ", "))
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file, or base path when writing several formats")
	cmd.Flags().Float64Var(&flags.width, "width", 0, "image width in pixels (svg, html)")
	cmd.Flags().Float64Var(&flags.stripeHeight, "stripe-height", 0, "stripe height in pixels (svg)")
	cmd.Flags().BoolVar(&flags.swatch, "swatch", false, "show rgb() values in terminal output")

	_ = cmd.RegisterFlagCompletionFunc("method", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return arrange.MethodNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return pipeline.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runSort(cmd *cobra.Command, args []string, flags sortFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	input, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	opts, err := c.sortOptions(cmd, flags)
	if err != nil {
		return err
	}
	if len(opts.Formats) == 0 {
		if flags.output == "" && isTerminal(stdout) {
			opts.Formats = []string{pipeline.FormatTerminal}
		} else {
			opts.Formats = []string{pipeline.FormatText}
		}
	}
	opts.Logger = logger
	opts.Terminal = outputRenderer(stdout, flags.output)

	prog := newProgress(logger)
	logger.Debug("sorting", "source", source, "method", opts.Method, "groups", opts.Groups, "formats", opts.Formats)

	result, err := pipeline.NewRunner(logger).Execute(ctx, input, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("sorted %d colors", result.Stats.Records))

	if flags.output == "" {
		for _, f := range opts.Formats {
			if _, err := stdout.Write(result.Artifacts[f]); err != nil {
				return err
			}
		}
	} else {
		paths, err := writeArtifacts(flags.output, opts.Formats, result.Artifacts)
		if err != nil {
			return err
		}
		printSuccess(stderr, "Sorted %s by %s", source, opts.Method.Label())
		for _, p := range paths {
			printFile(stderr, p)
		}
	}

	printStats(stderr, result.Stats.Records, result.Stats.Skipped, len(result.Groups))
	if result.Stats.Records == 0 {
		printWarning(stderr, "no color lines found in %s", source)
	}
	return nil
}

// sortOptions seeds options from the config file and applies explicitly set flags.
func (c *CLI) sortOptions(cmd *cobra.Command, flags sortFlags) (pipeline.Options, error) {
	opts := c.cfg.PipelineOptions()
	fs := cmd.Flags()

	if fs.Changed("method") {
		m, err := arrange.ParseMethod(flags.method)
		if err != nil {
			return opts, err
		}
		opts.Method = m
	}
	if fs.Changed("groups") {
		if err := pipeline.ValidateGroups(flags.groups); err != nil {
			return opts, err
		}
		opts.Groups = flags.groups
	}
	if fs.Changed("format") {
		formats := make([]string, 0, len(flags.formats))
		for _, f := range flags.formats {
			f = strings.ToLower(strings.TrimSpace(f))
			if f != "" {
				formats = append(formats, f)
			}
		}
		if err := pipeline.ValidateFormats(formats); err != nil {
			return opts, err
		}
		opts.Formats = formats
	}
	if fs.Changed("width") {
		opts.Width = flags.width
	}
	if fs.Changed("stripe-height") {
		opts.StripeHeight = flags.stripeHeight
	}
	opts.Swatch = flags.swatch
	return opts, nil
}

// writeArtifacts writes a single format to output as given, or each of
// several formats to output's base path plus the format extension.
func writeArtifacts(output string, formats []string, artifacts map[string][]byte) ([]string, error) {
	if len(formats) == 1 {
		if err := os.WriteFile(output, artifacts[formats[0]], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", output, err)
		}
		return []string{output}, nil
	}

	base := strings.TrimSuffix(output, filepath.Ext(output))
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := base + formatExt[f]
		if err := os.WriteFile(path, artifacts[f], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputRenderer styles for stdout when printing there. Files get true
// color since there is no terminal to detect a profile from.
func outputRenderer(stdout io.Writer, output string) *lipgloss.Renderer {
	if output == "" {
		return lipgloss.NewRenderer(stdout)
	}
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}
