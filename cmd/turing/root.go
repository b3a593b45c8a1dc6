package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/turing/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "turing",
	Short: "Turing is a deterministic single-tape Turing machine simulator",
	Long: `Turing runs rule tables written as JSON, YAML or the compact .tm text format
against bounded or sparse tapes, and can inspect, validate, convert and serve them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "off", "Log level: debug, info, warn, error or off")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
}

// loggerFor builds the logger selected by the persistent flags.
func loggerFor(cmd *cobra.Command) (*slog.Logger, error) {
	level, _ := cmd.Flags().GetString("log-level")
	json, _ := cmd.Flags().GetBool("log-json")
	return cli.NewLogger(level, json)
}
