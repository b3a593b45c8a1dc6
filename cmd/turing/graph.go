package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <program>",
	Short: "Export the state diagram",
	Long:  `Outputs a Mermaid flowchart (graph LR) with one edge per rule, labelled read/write,move.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cli.LoadProgram(args[0])
		if err != nil {
			return err
		}

		var overlay *graph.GraphOverlay
		if current, _ := cmd.Flags().GetString("current"); current != "" {
			overlay = &graph.GraphOverlay{CurrentState: current}
		}
		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(p, overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().String("current", "", "Highlight this state")
}
