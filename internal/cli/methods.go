package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spinesort/pkg/arrange"
)

var methodDescriptions = map[arrange.Method]string{
	arrange.Luminosity:   "perceived brightness, dark to light",
	arrange.HSV:          "HSV hue angle",
	arrange.HLS:          "HLS hue angle",
	arrange.Step:         "hue buckets with alternating brightness",
	arrange.InvertedStep: "step order, reversed",
}

// methodsCommand lists the available sort methods.
func (c *CLI) methodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List sort methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), methodsTable(c.cfg.Sort.Method))
			return err
		},
	}
}

// methodsTable renders the method list, marking current as the default.
func methodsTable(current arrange.Method) string {
	methods := arrange.Methods()
	rows := make([][]string, 0, len(methods))
	for _, m := range methods {
		mark := ""
		if m == current {
			mark = "*"
		}
		rows = append(rows, []string{mark, m.String(), m.Label(), methodDescriptions[m]})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "Label", "Orders by").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if row >= 0 && row < len(methods) && methods[row] == current {
				return base.Foreground(colorGreen).Bold(true)
			}
			return base
		}).
		Render()
}
