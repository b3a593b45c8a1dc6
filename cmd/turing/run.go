package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/turing/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <program>",
	Short: "Run a program on a tape",
	Long: `Loads the program, places the head on the tape and steps until a halting state
is reached. Without --max-steps or --timeout a non-halting program runs forever.`,
	Example: `  turing run increment.tm --tape 1011
  turing run busy-beaver.yaml --sparse --blank 0 --trace`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFor(cmd)
		if err != nil {
			return err
		}

		opts := cli.RunOptions{ProgramPath: args[0], Logger: logger}
		opts.Tape, _ = cmd.Flags().GetString("tape")
		opts.State, _ = cmd.Flags().GetString("state")
		opts.Position, _ = cmd.Flags().GetInt("position")
		opts.Sparse, _ = cmd.Flags().GetBool("sparse")
		opts.Blank, _ = cmd.Flags().GetString("blank")
		opts.BlankSet = cmd.Flags().Changed("blank")
		opts.MaxSteps, _ = cmd.Flags().GetInt("max-steps")
		opts.Timeout, _ = cmd.Flags().GetDuration("timeout")
		opts.Trace, _ = cmd.Flags().GetBool("trace")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Profile = cli.ColorProfile(os.Stdout)

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.Execute(ctx, opts, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("tape", "t", "", "Initial tape: comma separated symbols, or one symbol per character")
	runCmd.Flags().StringP("state", "s", "", "Start state (defaults to the program's initial state)")
	runCmd.Flags().IntP("position", "p", 0, "Initial head position")
	runCmd.Flags().Bool("sparse", false, "Use an infinite sparse tape instead of a bounded one")
	runCmd.Flags().String("blank", cli.DefaultBlank, "Blank symbol; lets a bounded tape grow at its ends")
	runCmd.Flags().Int("max-steps", 0, "Stop after this many transitions (0 = no limit)")
	runCmd.Flags().Duration("timeout", 0, "Stop after this much wall time (0 = no limit)")
	runCmd.Flags().Bool("trace", false, "Print the tape after every transition")
	runCmd.Flags().Bool("json", false, "Print the result as JSON")
}
