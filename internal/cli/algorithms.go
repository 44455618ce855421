package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepsearch/search"
)

var headerCell = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var bodyCell = lipgloss.NewStyle().Padding(0, 1)

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the supported search algorithms",
		Long:  longAlgorithms,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), catalogueTable())
			return err
		},
	}
}

// catalogueTable renders search.ListAlgorithms as a bordered table.
func catalogueTable() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ALGORITHM", "PARAM", "DEFAULT", "WEIGHTED", "DESCRIPTION").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			return bodyCell
		})
	for _, info := range search.ListAlgorithms() {
		def := "-"
		if info.Param != "" {
			def = strconv.Itoa(info.Default)
		}
		param := info.Param
		if param == "" {
			param = "-"
		}
		t.Row(string(info.Name), param, def, strconv.FormatBool(info.Weighted), info.Description)
	}

	return t.Render()
}

var longAlgorithms = `
List the supported search algorithms with their parameter and default.

Aliases accepted by --algorithm: bfs, dfs, dls, depth-limit, ids, ucs, a*, astar.
`
