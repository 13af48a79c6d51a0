package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	holdingsFile string
	policyFile   string
	profileFile  string
	json         bool
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze a portfolio and print the full health report" }
func (*analyzeCmd) Usage() string {
	return `pha analyze [-f <holdings>] [-policy <policy>] [-profile <profile>] [-json]

  Computes the allocation, exposure, concentration and liquidity metrics of
  the portfolio, scores it against the policy, runs the what-if simulations
  and prints the full health report.

Usage Examples:
# Report on the default holdings file with the balanced policy.
$ pha analyze

# Machine-readable analysis for a custom policy.
$ pha analyze -policy conservative.json -json
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holdingsFile, "f", defaultHoldingsFile, "Holdings file to analyze (JSONL format).")
	f.StringVar(&c.policyFile, "policy", "", "Policy profile file. Defaults to the balanced policy.")
	f.StringVar(&c.profileFile, "profile", "", "Investor profile file. Defaults to a medium-risk growth investor.")
	f.BoolVar(&c.json, "json", false, "Emit the analysis payload as JSON instead of the report.")
}

func (c *analyzeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, user, policy, err := c.analyze()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := advisor.EncodeAnalysisPayload(os.Stdout, a, user, policy); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println()
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.AnalysisMarkdown(a, user, policy))
	return subcommands.ExitSuccess
}

func (c *analyzeCmd) analyze() (*advisor.Analytics, advisor.UserProfile, advisor.PolicyProfile, error) {
	holdings, err := decodeHoldingsFile(c.holdingsFile)
	if err != nil {
		return nil, advisor.UserProfile{}, advisor.PolicyProfile{}, err
	}
	policy, err := decodePolicyFile(c.policyFile)
	if err != nil {
		return nil, advisor.UserProfile{}, advisor.PolicyProfile{}, err
	}
	user, err := decodeUserFile(c.profileFile)
	if err != nil {
		return nil, advisor.UserProfile{}, advisor.PolicyProfile{}, err
	}

	a := advisor.NewAnalytics(holdings, user, policy)
	a.WhatIf = advisor.GenerateWhatIf(a, policy)
	return a, user, policy, nil
}
