package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/diploma/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Play the simulator interactively",
	Long: `Loads the session stored in the slot, or starts a new one when the slot is empty
or --new is given. Enter 0 at the menu to save and exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.RunOptions{
			In:  cmd.InOrStdin(),
			Out: cmd.OutOrStdout(),
			Err: cmd.ErrOrStderr(),
		}
		opts.ConfigPath, _ = cmd.Flags().GetString("config")
		opts.SavesDir, _ = cmd.Flags().GetString("saves")
		opts.Slot, _ = cmd.Flags().GetInt("slot")
		opts.New, _ = cmd.Flags().GetBool("new")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.MetricsFile, _ = cmd.Flags().GetString("metrics-file")
		opts.Ephemeral, _ = cmd.Flags().GetBool("ephemeral")
		opts.NoBanner, _ = cmd.Flags().GetBool("no-banner")

		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			opts.Seed = &seed
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		sigCtx := cli.NewSignalContext(ctx)
		defer sigCtx.Cancel()

		err := cli.Run(sigCtx, opts)
		if sig := sigCtx.Signal(); sig != nil {
			cmd.PrintErrf("Interrupted by %s.\n", sig)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("slot", "s", 1, "Save slot number (>= 1)")
	runCmd.Flags().Bool("new", false, "Start a new session even if the slot has a save")
	runCmd.Flags().Int64("seed", 0, "Seed for generating a new session (random if omitted)")
	runCmd.Flags().Bool("debug", false, "Log every action and stage change to stderr")
	runCmd.Flags().String("metrics-file", "", "Write Prometheus metrics to this file on exit")
	runCmd.Flags().Bool("ephemeral", false, "Keep saves in memory only")
	runCmd.Flags().Bool("no-banner", false, "Do not print the banner")

	// 'run' is the default command
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
