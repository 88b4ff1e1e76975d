package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dicekit/dice"
	"github.com/dicekit/dice/config"
)

const separator = "----------------------------"

// resolveVerbosity combines the config file's verbosity with the root
// command's --verbose and --quiet flags. Flags override config; setting both
// cancels back to normal.
func resolveVerbosity(cmd *cobra.Command, cfg config.Config) config.Verbosity {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	switch {
	case verbose && quiet:
		return config.VerbosityNormal
	case verbose:
		return config.VerbosityVerbose
	case quiet:
		return config.VerbosityQuiet
	default:
		return cfg.Verbosity
	}
}

// runExpressions parses and evaluates each expression in order, printing
// results per the verbosity level and handing each successful result to
// record. It reports whether every expression succeeded; failures print to
// errOut and do not stop the remaining expressions.
func runExpressions(
	out, errOut io.Writer,
	exprs []string,
	src dice.Source,
	verbosity config.Verbosity,
	record func(expression string, result int),
) bool {
	verbose := verbosity == config.VerbosityVerbose
	quiet := verbosity == config.VerbosityQuiet

	if verbose {
		fmt.Fprintln(out, separator)
	}

	ok := true
	for i, raw := range exprs {
		if !quiet {
			fmt.Fprintf(out, "Roll %d:", i+1)
			if verbose {
				fmt.Fprintf(out, "\n%s\n", separator)
			} else {
				fmt.Fprint(out, " ")
			}
		}

		total, err := rollOne(out, raw, src, verbose)
		if err != nil {
			if !quiet && !verbose {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(errOut, "ERROR: %v\n", err)
			ok = false
			continue
		}

		if verbose {
			fmt.Fprint(out, "Total: ")
		}
		fmt.Fprintf(out, "%d\n", total)
		if verbose {
			fmt.Fprintln(out, separator)
		}

		if record != nil {
			record(raw, total)
		}
	}
	return ok
}

func rollOne(out io.Writer, raw string, src dice.Source, verbose bool) (int, error) {
	tree, err := dice.Parse(raw)
	if err != nil {
		return 0, err
	}

	opts := dice.DefaultEvalOptions()
	if verbose {
		opts.Narrator = printNarrator(out)
	}
	return dice.Eval(tree, src, opts)
}

// printNarrator renders narration events as indented per-draw lines.
func printNarrator(w io.Writer) dice.Narrator {
	return func(e dice.Event) {
		switch e.Kind {
		case dice.EventRollStarted:
			fmt.Fprintf(w, "%s:\n", e.Roll.String())
		case dice.EventDrew:
			fmt.Fprintf(w, "  %d\n", e.Value)
		case dice.EventRerolled:
			fmt.Fprintf(w, "  %d * Rerolled\n", e.Value)
		case dice.EventExploded:
			fmt.Fprintf(w, "    %d * Exploded\n", e.Value)
		case dice.EventChose:
			var sb strings.Builder
			sb.WriteString("Chosen:")
			for _, v := range e.Kept {
				fmt.Fprintf(&sb, " %d", v)
			}
			fmt.Fprintln(w, sb.String())
		}
	}
}
