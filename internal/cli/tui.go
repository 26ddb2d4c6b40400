package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spinesort/pkg/arrange"
	"github.com/matzehuels/spinesort/pkg/palette"
	"github.com/matzehuels/spinesort/pkg/render"
	"github.com/matzehuels/spinesort/pkg/render/sink"
)

const (
	tuiChromeLines = 5 // title, help, blank, blank, footer
	tuiMinWidth    = 20
)

var (
	tuiHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	tuiLabelStyle = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
)

// =============================================================================
// SortModel - Interactive re-sorting
// =============================================================================

// SortModel is the bubbletea model for live re-sorting of a color list.
type SortModel struct {
	Records []palette.Record
	Method  arrange.Method
	Groups  int
	Swatch  bool
	Width   int
	Height  int
	Offset  int

	renderer *lipgloss.Renderer
	lines    []string
}

// NewSortModel creates a model showing records sorted by method into groups.
// A nil renderer uses the default lipgloss renderer.
func NewSortModel(records []palette.Record, method arrange.Method, groups int, r *lipgloss.Renderer) SortModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	m := SortModel{
		Records:  records,
		Method:   method,
		Groups:   clampGroups(groups),
		Width:    sink.DefaultTerminalWidth,
		Height:   24,
		renderer: r,
	}
	m.rebuild()
	return m
}

func clampGroups(n int) int {
	return max(arrange.MinGroups, min(arrange.MaxGroups, n))
}

// rebuild re-sorts the records and re-renders the stripe lines.
func (m *SortModel) rebuild() {
	groups, err := arrange.Arrange(m.Records, m.Method, m.Groups)
	if err != nil {
		m.lines = []string{err.Error()}
		return
	}

	opts := []sink.TerminalOption{sink.WithTerminalWidth(m.Width), sink.WithTerminalRenderer(m.renderer)}
	if m.Swatch {
		opts = append(opts, sink.WithTerminalSwatch())
	}
	out := strings.TrimSuffix(sink.RenderTerminal(render.Build(groups), opts...), "\n")
	m.lines = strings.Split(out, "\n")
	m.Offset = min(m.Offset, m.maxOffset())
}

func (m SortModel) visibleLines() int {
	return max(1, m.Height-tuiChromeLines)
}

func (m SortModel) maxOffset() int {
	return max(0, len(m.lines)-m.visibleLines())
}

func (m SortModel) Init() tea.Cmd {
	return nil
}

func (m SortModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "m", "tab":
			m.Method = nextMethod(m.Method, 1)
		case "M", "shift+tab":
			m.Method = nextMethod(m.Method, -1)
		case "1", "2", "3", "4":
			m.Groups = clampGroups(int(key[0] - '0'))
		case "+", "=":
			m.Groups = clampGroups(m.Groups + 1)
		case "-", "_":
			m.Groups = clampGroups(m.Groups - 1)
		case "s":
			m.Swatch = !m.Swatch
		case "up", "k":
			if m.Offset > 0 {
				m.Offset--
			}
			return m, nil
		case "down", "j":
			if m.Offset < m.maxOffset() {
				m.Offset++
			}
			return m, nil
		default:
			return m, nil
		}
		m.rebuild()
	case tea.WindowSizeMsg:
		m.Width = max(tuiMinWidth, msg.Width-2)
		m.Height = msg.Height
		m.rebuild()
	}
	return m, nil
}

func (m SortModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName))
	b.WriteString("  ")
	b.WriteString(tuiLabelStyle.Render(m.Method.Label()))
	b.WriteString(StyleDim.Render(fmt.Sprintf(" · %d groups · %d colors", m.Groups, len(m.Records))))
	b.WriteString("\n")
	b.WriteString(tuiHelpStyle.Render("m/tab method  1-4/+/- groups  s swatch  ↑/↓ scroll  q quit"))
	b.WriteString("\n\n")

	if len(m.Records) == 0 {
		b.WriteString(StyleWarning.Render("no color lines found"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(len(m.lines), m.Offset+m.visibleLines())
	b.WriteString(strings.Join(m.lines[m.Offset:end], "\n"))
	b.WriteString("\n\n")
	b.WriteString(tuiHelpStyle.Render(fmt.Sprintf("  [%d-%d/%d]", m.Offset+1, end, len(m.lines))))

	return b.String()
}

// nextMethod cycles through the methods in display order.
func nextMethod(m arrange.Method, step int) arrange.Method {
	all := arrange.Methods()
	for i, candidate := range all {
		if candidate == m {
			return all[(i+step+len(all))%len(all)]
		}
	}
	return arrange.DefaultMethod
}

// =============================================================================
// Command
// =============================================================================

// tuiCommand creates the interactive terminal UI command.
func (c *CLI) tuiCommand() *cobra.Command {
	var flags sortFlags

	cmd := &cobra.Command{
		Use:   "tui [file|-]",
		Short: "Re-sort a color list interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			input, source, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			opts, err := c.sortOptions(cmd, flags)
			if err != nil {
				return err
			}
			records, stats := palette.ParseWithStats(input)
			logger.Debug("loaded colors", "source", source, "records", stats.Records, "skipped", stats.Skipped)

			model := NewSortModel(records, opts.Method, opts.Groups, nil)
			progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
			if source == "stdin" {
				progOpts = append(progOpts, tea.WithInputTTY())
			}
			if _, err := tea.NewProgram(model, progOpts...).Run(); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				printError(cmd.ErrOrStderr(), "tui: %v", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.method, "method", "m", "", "initial sort method")
	cmd.Flags().IntVarP(&flags.groups, "groups", "g", 0, "initial group count")
	return cmd
}
