package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/advisor"
	"github.com/google/subcommands"
)

// classifyCmd holds the flags for the 'classify' subcommand.
type classifyCmd struct {
	holdingsFile string
	match        string
	set          string
	write        bool
}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "show or correct holding classifications" }
func (*classifyCmd) Usage() string {
	return `pha classify [-f <holdings>] [-match <pattern> -set <type>] [-w]

  Without flags, prints each holding with its asset class. With -match and
  -set, reassigns the given type to every holding whose name contains the
  pattern, and prints the corrected holdings in the canonical JSONL format.
  With -w the holdings file is rewritten in place instead.

Usage Examples:
# An advisor fixes a misclassified product once for the whole statement.
$ pha classify -match "FUNDO VERDE" -set Fund -w
`
}

func (c *classifyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holdingsFile, "f", defaultHoldingsFile, "Holdings file to classify (JSONL format).")
	f.StringVar(&c.match, "match", "", "Case-insensitive name pattern selecting the holdings to reassign.")
	f.StringVar(&c.set, "set", "", "Asset class to assign to the matched holdings.")
	f.BoolVar(&c.write, "w", false, "Rewrite the holdings file instead of printing to stdout.")
}

func (c *classifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	holdings, err := decodeHoldingsFile(c.holdingsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.match == "" && c.set == "" {
		for _, h := range holdings {
			fmt.Printf("%s\t%s\n", h.Name, h.Type)
		}
		return subcommands.ExitSuccess
	}
	if c.match == "" || c.set == "" {
		fmt.Fprintln(os.Stderr, "Error: -match and -set must be used together")
		return subcommands.ExitUsageError
	}

	t, err := advisor.ParseHoldingType(c.set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	corrected := advisor.ApplyTypeToSimilar(holdings, c.match, t)

	if !c.write {
		if err := advisor.EncodeHoldings(os.Stdout, corrected); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	out, err := os.Create(c.holdingsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rewriting holdings file %q: %v\n", c.holdingsFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := advisor.EncodeHoldings(out, corrected); err != nil {
		fmt.Fprintf(os.Stderr, "Error rewriting holdings file %q: %v\n", c.holdingsFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Reassigned matching holdings in %s\n", c.holdingsFile)
	return subcommands.ExitSuccess
}
