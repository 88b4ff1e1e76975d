package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dicekit/dice"
	"github.com/dicekit/dice/config"
	"github.com/dicekit/dice/history"
	"github.com/dicekit/dice/rng"
)

// NewRollCmd creates the "roll" subcommand.
func NewRollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roll <expression>...",
		Short: "Evaluate dice expressions",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRoll,
	}

	cmd.Flags().Int64("seed", 0, "Seed the random source for reproducible rolls")
	cmd.Flags().Bool("no-history", false, "Do not record results in the roll history")

	return cmd
}

func runRoll(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return exitError(exitUsage, "loading config: %v", err)
	}
	verbosity := resolveVerbosity(cmd, cfg)

	src, err := resolveSource(cmd)
	if err != nil {
		return exitError(exitEval, "seeding random source: %v", err)
	}

	store := openRollHistory(cmd, cfg)
	if store != nil {
		defer store.Close()
	}

	record := func(expression string, result int) {
		if store == nil {
			return
		}
		entry := history.Entry{Expression: expression, Result: result}
		if err := store.Append(cmd.Context(), entry); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
	}

	ok := runExpressions(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, src, verbosity, record)
	if !ok {
		return exitError(exitEval, "one or more rolls failed")
	}
	return nil
}

// resolveSource returns a deterministic source when --seed was given, and a
// crypto-seeded one otherwise.
func resolveSource(cmd *cobra.Command) (dice.Source, error) {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		return rng.NewSeeded(seed), nil
	}
	return rng.New()
}

// openRollHistory opens the configured history store. History is best-effort:
// a store that cannot be opened degrades to no recording with a warning.
func openRollHistory(cmd *cobra.Command, cfg config.Config) *history.Store {
	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		return nil
	}
	if !cfg.HistoryEnabled() {
		return nil
	}

	var (
		store *history.Store
		err   error
	)
	if cfg.History.Path != "" {
		store, err = history.Open(cfg.History.Path)
	} else {
		store, err = history.OpenDefault()
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		return nil
	}
	return store
}
