package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/windbarb/pkg/barb"
	"github.com/matzehuels/windbarb/pkg/config"
)

func (c *CLI) decomposeCommand() *cobra.Command {
	var unit string
	var factor float64

	cmd := &cobra.Command{
		Use:     "decompose SPEED...",
		Short:   "Show how speeds split into pennants and bars",
		Example: "  windbarb decompose 5 23 85 160\n  windbarb decompose 40 --unit ms",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := config.DefaultConversionFactor
			switch {
			case cmd.Flags().Changed("factor"):
				f = factor
			case unit != "":
				var err error
				if f, err = config.ParseUnit(unit); err != nil {
					return err
				}
			}

			rows := make([][]string, 0, len(args))
			for _, a := range args {
				speed, err := parseNumberArg("speed", a)
				if err != nil {
					return err
				}
				d, err := barb.DecomposeSpeed(speed, f)
				if err != nil {
					return err
				}
				rows = append(rows, decompositionRow(a, d))
			}
			fmt.Println(decompositionTable(rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&unit, "unit", "u", "", "speed unit: knots, ms, kmh, mph")
	cmd.Flags().Float64Var(&factor, "factor", 1, "conversion factor into knots (overrides --unit)")
	return cmd
}

func decompositionRow(input string, d barb.Decomposition) []string {
	c := d.Counts()
	itoa := strconv.Itoa
	if d.IsCalm() {
		return []string{input, itoa(d.Knots()), "-", "-", "-", itoa(d.Dropped()), symCalm}
	}
	return []string{
		input,
		itoa(d.Knots()),
		itoa(c.Pennants),
		itoa(c.Full),
		itoa(c.Half),
		itoa(d.Dropped()),
		segmentSymbols(d),
	}
}

func decompositionTable(rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Speed", "Knots", "50", "10", "5", "Dropped", "Barb").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case col == 6:
				return cell.Foreground(colorCyan)
			case col == 5:
				return cell.Foreground(colorDim)
			}
			return cell.Foreground(colorWhite)
		}).
		Render()
}
