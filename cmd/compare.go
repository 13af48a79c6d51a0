package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/advisor"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	policyFile  string
	profileFile string
}

// comparison is one row of the comparison table.
type comparison struct {
	File     string
	Score    int
	Top5     advisor.Percent
	Exterior advisor.Percent
	Flags    []advisor.Flag
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the health of several portfolios" }
func (*compareCmd) Usage() string {
	return `pha compare [-policy <policy>] [-profile <profile>] <holdings>...

  Analyzes each holdings file against the same policy and prints a side by
  side table of scores and key metrics. Useful to compare a portfolio before
  and after a proposed rebalancing, or across a family of accounts.

Usage Examples:
$ pha compare current.jsonl proposed.jsonl
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.policyFile, "policy", "", "Policy profile file. Defaults to the balanced policy.")
	f.StringVar(&c.profileFile, "profile", "", "Investor profile file. Defaults to a medium-risk growth investor.")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Error: compare needs at least two holdings files")
		return subcommands.ExitUsageError
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

	rows, err := compareFiles(f.Args(), user, policy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# Portfolio Comparison (%s policy)\n\n", policy.Name)
	fmt.Fprintln(&buf, "| Portfolio | Score | Top 5 | International | Flags |")
	fmt.Fprintln(&buf, "|:---|---:|---:|---:|---:|")
	for _, row := range rows {
		fmt.Fprintf(&buf, "| %s | %d | %s | %s | %d |\n", row.File, row.Score, row.Top5, row.Exterior, len(row.Flags))
	}
	printMarkdown(buf.String())
	return subcommands.ExitSuccess
}

// compareFiles analyzes every holdings file concurrently, one result per file
// in the input order.
func compareFiles(files []string, user advisor.UserProfile, policy advisor.PolicyProfile) ([]comparison, error) {
	rows := make([]comparison, len(files))
	var g errgroup.Group
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			holdings, err := decodeHoldingsFile(file)
			if err != nil {
				return err
			}
			a := advisor.NewAnalytics(holdings, user, policy)
			rows[i] = comparison{
				File:     file,
				Score:    a.Score(policy),
				Top5:     a.ConcentrationTop5,
				Exterior: a.BRvsExterior.Exterior,
				Flags:    a.Flags,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}
