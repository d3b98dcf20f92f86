package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/diploma/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "diploma",
	Short: "Diploma is a turn-based diploma defense simulator",
	Long: `Diploma puts you in the shoes of a student with 25 days left before the defense.
Write the thesis, pass the checkpoints, rehearse and face the commission.
Progress is saved to numbered slots after every action.`,
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
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "Path to the config file (YAML or JSON)")
	rootCmd.PersistentFlags().String("saves", "", "Directory holding the save slots (overrides saves_dir)")
}
