package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/diploma"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of diploma",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "diploma version %s\n", strings.TrimSpace(diploma.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
