package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/turing/internal/cli"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a program between JSON, YAML and .tm",
	Long:  `Reads the input program and writes it in the format chosen by the output extension.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cli.LoadProgram(args[0])
		if err != nil {
			return err
		}
		if err := cli.SaveProgram(args[1], p); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rules to %s\n", p.Len(), args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
