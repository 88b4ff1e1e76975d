package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/dicekit/dice/config"
	"github.com/dicekit/dice/history"
)

const (
	replPrompt      = ">>> "
	replHistoryDir  = ".dice"
	replHistoryFile = "repl_history"
)

// NewReplCmd creates the "repl" subcommand.
func NewReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Roll dice at an interactive prompt",
		Long: `Roll dice at an interactive prompt.

Each input line is a space-separated list of expressions, rolled in order.
"set verbosity verbose|normal|quiet" adjusts output for the session.
Type q or exit (or press Ctrl+D) to leave.`,
		Args: cobra.NoArgs,
		RunE: runRepl,
	}

	cmd.Flags().Int64("seed", 0, "Seed the random source for reproducible rolls")
	cmd.Flags().Bool("no-history", false, "Do not record results in the roll history")

	return cmd
}

func runRepl(cmd *cobra.Command, _ []string) error {
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

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := replHistoryPath()
	loadLineHistory(ln, histPath)
	defer saveLineHistory(ln, histPath)

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	fmt.Fprintln(out, "dice, interactive mode:")

	record := func(expression string, result int) {
		if store == nil {
			return
		}
		entry := history.Entry{Expression: expression, Result: result}
		if err := store.Append(cmd.Context(), entry); err != nil {
			fmt.Fprintf(errOut, "warning: %v\n", err)
		}
	}

	for {
		line, err := ln.Prompt(replPrompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return exitError(exitEval, "reading input: %v", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if input == "q" || input == "exit" {
			return nil
		}
		ln.AppendHistory(line)

		if rest, ok := strings.CutPrefix(input, "set "); ok {
			verbosity = applySet(out, errOut, strings.TrimSpace(rest), verbosity)
			continue
		}

		runExpressions(out, errOut, strings.Fields(input), src, verbosity, record)
	}
}

// applySet handles "set verbosity <level>", returning the session's new
// verbosity (unchanged on unrecognized input).
func applySet(out, errOut io.Writer, args string, current config.Verbosity) config.Verbosity {
	rest, ok := strings.CutPrefix(args, "verbosity ")
	if !ok {
		fmt.Fprintln(errOut, "ERROR: Unrecognized setting.")
		return current
	}

	switch strings.TrimSpace(rest) {
	case "verbose", "v", "-v":
		fmt.Fprintln(out, "Verbosity set to verbose (-v)")
		return config.VerbosityVerbose
	case "normal", "default":
		fmt.Fprintln(out, "Verbosity set to default (normal)")
		return config.VerbosityNormal
	case "quiet", "q", "-q":
		fmt.Fprintln(out, "Verbosity set to quiet (-q)")
		return config.VerbosityQuiet
	default:
		fmt.Fprintln(errOut, "ERROR: Unrecognized verbosity setting.")
		return current
	}
}

func replHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, replHistoryDir, replHistoryFile)
}

func loadLineHistory(ln *liner.State, path string) {
	if path == "" {
		return
	}
	if f, err := os.Open(path); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
}

func saveLineHistory(ln *liner.State, path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return
	}
	if f, err := os.Create(path); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
}
