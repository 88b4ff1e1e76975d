package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dicekit/dice/cli"
)

// Overridden via ldflags on release builds.
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dice",
	Short: "Command-line dice roller",
	Long: `dice evaluates dice-roll expressions such as "2d6+3" or "4d6c3".

A roll takes the form XdY: roll X dice of Y sides each. Rolls compose with
infix arithmetic (+, -, *, /), integer constants, and parentheses
(ex. (1d4+4)*2).

Die modifiers append to the end of a roll:
  c (XdYcZ): keep only the Z highest of the X dice rolled
  w (XdYwZ): keep only the Z lowest of the X dice rolled
  b (XdYbZ): reroll any die at or below Z until it lands above it
  v (XdYvZ): exploding dice; a die at or above Z rolls an extra die of the
             same sides into the total, and extra dice can themselves explode`,
	// Errors are reported by the commands themselves; don't echo usage too.
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print every individual die rolled")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Print bare totals only, one per line")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("dice version %s\n", version))

	rootCmd.AddCommand(cli.NewRollCmd())
	rootCmd.AddCommand(cli.NewReplCmd())
	rootCmd.AddCommand(cli.NewHistoryCmd())
}
