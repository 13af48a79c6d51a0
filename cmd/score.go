package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/advisor"
	"github.com/google/subcommands"
)

// scoreCmd holds the flags for the 'score' subcommand.
type scoreCmd struct {
	holdingsFile string
	policyFile   string
	profileFile  string
	verbose      bool
}

func (*scoreCmd) Name() string     { return "score" }
func (*scoreCmd) Synopsis() string { return "print the 0-100 health score of a portfolio" }
func (*scoreCmd) Usage() string {
	return `pha score [-f <holdings>] [-policy <policy>] [-profile <profile>] [-v]

  Prints the health score alone, suitable for scripting. With -v the raised
  risk flags are printed too, one per line on stderr.
`
}

func (c *scoreCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holdingsFile, "f", defaultHoldingsFile, "Holdings file to score (JSONL format).")
	f.StringVar(&c.policyFile, "policy", "", "Policy profile file. Defaults to the balanced policy.")
	f.StringVar(&c.profileFile, "profile", "", "Investor profile file. Defaults to a medium-risk growth investor.")
	f.BoolVar(&c.verbose, "v", false, "Also print the raised risk flags.")
}

func (c *scoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	holdings, err := decodeHoldingsFile(c.holdingsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	policy, err := decodePolicyFile(c.policyFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	user, err := decodeUserFile(c.profileFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	a := advisor.NewAnalytics(holdings, user, policy)
	fmt.Println(a.Score(policy))

	if c.verbose {
		for _, raised := range a.Flags {
			fmt.Fprintln(os.Stderr, raised)
		}
	}
	return subcommands.ExitSuccess
}
