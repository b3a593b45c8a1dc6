package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/turing/internal/cli"
	"github.com/aretw0/turing/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate <program>",
	Short: "Check the rule table for consistency",
	Long:  `Crawls the rule graph from the initial state and reports dead ends, unreachable states and rules that never fire.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := cli.LoadProgram(args[0])
		if err != nil {
			return err
		}

		report := validator.Validate(p)
		for _, w := range report.Warnings() {
			fmt.Fprintln(cmd.ErrOrStderr(), w)
		}
		if err := report.Err(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Program is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
