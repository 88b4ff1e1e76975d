package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dicekit/dice/config"
	"github.com/dicekit/dice/history"
)

// NewHistoryCmd creates the "history" subcommand and its "clear" child.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent rolls",
		Args:  cobra.NoArgs,
		RunE:  runHistoryList,
	}

	cmd.PersistentFlags().String("store-path", "", "Path to the history database (default: ~/.dice/dice.db)")
	cmd.Flags().Int("limit", 20, "Maximum number of entries to show")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded rolls",
		Args:  cobra.NoArgs,
		RunE:  runHistoryClear,
	})

	return cmd
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	store, err := openHistoryStore(cmd)
	if err != nil {
		return exitError(exitEval, "opening history: %v", err)
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.Recent(cmd.Context(), limit)
	if err != nil {
		return exitError(exitEval, "listing history: %v", err)
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No recorded rolls.")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %s = %d\n", e.RolledAt.Format("2006-01-02 15:04:05"), e.Expression, e.Result)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	store, err := openHistoryStore(cmd)
	if err != nil {
		return exitError(exitEval, "opening history: %v", err)
	}
	defer store.Close()

	if err := store.Clear(cmd.Context()); err != nil {
		return exitError(exitEval, "clearing history: %v", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Roll history cleared.")
	return nil
}

// openHistoryStore resolves the store path from the --store-path flag, the
// config file, or the default location, in that order.
func openHistoryStore(cmd *cobra.Command) (*history.Store, error) {
	if path, _ := cmd.Flags().GetString("store-path"); strings.TrimSpace(path) != "" {
		return history.Open(path)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.History.Path != "" {
		return history.Open(cfg.History.Path)
	}
	return history.OpenDefault()
}
