package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/presentation/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <program>",
	Short: "Describe a program as a rule table",
	Long:  `Prints the initial and halting states, the alphabet and every rule. Markdown is rendered when stdout is a terminal.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cli.LoadProgram(args[0])
		if err != nil {
			return err
		}

		md := tui.RuleTable(p)
		if raw, _ := cmd.Flags().GetBool("raw"); raw || !cli.IsTerminal(os.Stdout) {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		tui.PrintBanner(cmd.OutOrStdout())
		out, err := tui.NewRenderer()(md)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("raw", false, "Print plain Markdown")
}
