package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/diploma/internal/presentation/graph"
	"github.com/aretw0/diploma/pkg/domain"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the stage machine visualization",
	Long: `Outputs a Mermaid diagram (graph TD) of the defense stages and their actions.
With --slot, the stage of that save is highlighted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var overlay *graph.Overlay

		if cmd.Flags().Changed("slot") {
			slot, _ := cmd.Flags().GetInt("slot")
			store, err := getStore(cmd)
			if err != nil {
				return err
			}
			save, err := store.Load(cmd.Context(), slot)
			if err != nil {
				return fmt.Errorf("error loading slot %d: %w", slot, err)
			}
			stage, err := domain.ParseStage(save.Process.Stage)
			if err != nil {
				return fmt.Errorf("error reading slot %d: %w", slot, err)
			}
			overlay = &graph.Overlay{Current: stage, Day: save.Process.Today}
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().IntP("slot", "s", 0, "Highlight the stage of this save slot")
}
