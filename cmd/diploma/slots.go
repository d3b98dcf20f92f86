package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/diploma/internal/cli"
	"github.com/aretw0/diploma/pkg/adapters/file"
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Manage save slots",
	Long:  `List, inspect, and remove the save slots stored in the saves directory.`,
}

var slotsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all save slots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := getStore(cmd)
		if err != nil {
			return err
		}
		slots, err := store.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("error listing slots: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(slots) == 0 {
			fmt.Fprintln(out, "No saved sessions found.")
			return nil
		}

		fmt.Fprintln(out, "Save Slots:")
		for _, slot := range slots {
			save, err := store.Load(cmd.Context(), slot)
			if err != nil {
				fmt.Fprintf(out, "- %d: unreadable (%v)\n", slot, err)
				continue
			}
			p := save.Process
			fmt.Fprintf(out, "- %d: %s, day %d, %s\n", slot, p.Student.Name, p.Today, p.Stage)
		}
		return nil
	},
}

var slotsInspectCmd = &cobra.Command{
	Use:   "inspect <slot>",
	Short: "Print the save file of a slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := parseSlotArg(args[0])
		if err != nil {
			return err
		}
		store, err := getStore(cmd)
		if err != nil {
			return err
		}

		save, err := store.Load(cmd.Context(), slot)
		if err != nil {
			return fmt.Errorf("error loading slot %d: %w", slot, err)
		}

		data, err := json.MarshalIndent(save, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling save: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var slotsRmCmd = &cobra.Command{
	Use:   "rm <slot>...",
	Short: "Remove one or more save slots",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := getStore(cmd)
		if err != nil {
			return err
		}

		var errs []error
		for _, arg := range args {
			slot, err := parseSlotArg(arg)
			if err == nil {
				err = store.Delete(cmd.Context(), slot)
			}
			if err != nil {
				errs = append(errs, fmt.Errorf("error removing %q: %w", arg, err))
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed slot %d\n", slot)
		}
		return errors.Join(errs...)
	},
}

func init() {
	rootCmd.AddCommand(slotsCmd)
	slotsCmd.AddCommand(slotsLsCmd)
	slotsCmd.AddCommand(slotsInspectCmd)
	slotsCmd.AddCommand(slotsRmCmd)
}

func getStore(cmd *cobra.Command) (*file.Store, error) {
	configPath, _ := cmd.Flags().GetString("config")
	savesDir, _ := cmd.Flags().GetString("saves")
	dir, err := cli.ResolveSavesDir(configPath, savesDir)
	if err != nil {
		return nil, err
	}
	return file.New(dir), nil
}

func parseSlotArg(arg string) (int, error) {
	slot, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid slot %q: not a number", arg)
	}
	return slot, nil
}
