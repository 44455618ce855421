package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepsearch/scenario"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check scenario files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var failed int
			for _, path := range args {
				f, err := scenario.Load(path)
				if err == nil {
					_, _, err = scenario.Build(f)
				}
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %v\n", err)
					continue
				}
				fmt.Fprintf(out, "ok   %s: %d nodes, %d edges, directed=%t\n",
					path, len(f.Nodes), len(f.Edges), f.Directed)
			}
			if failed > 0 {
				return fmt.Errorf("cli: %d of %d scenario files invalid", failed, len(args))
			}

			return nil
		},
	}
}
