package cli

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/stepsearch/internal/tui"
)

func newTUICmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Watch a search step by step in the terminal",
		Long:  longTUI,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			g, err := s.graph()
			if err != nil {
				return err
			}
			m, err := tui.New(g, tui.Config{
				Algorithm: s.Algorithm,
				Params:    s.params(),
				Interval:  s.Interval,
				Title:     fmt.Sprintf("%s: %s", projectName, filepath.Base(s.Scenario)),
			})
			if err != nil {
				return err
			}

			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()

			return err
		},
	}
}

var longTUI = `
Watch a search in the terminal. The search advances every --interval
(default 250ms when unset).

Keys:
  space  pause / resume
  n      single step
  r      restart the search
  q      quit
`
