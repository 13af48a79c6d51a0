package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/renderer"
	"github.com/google/subcommands"
)

// whatifCmd holds the flags for the 'whatif' subcommand.
type whatifCmd struct {
	holdingsFile string
	policyFile   string
	profileFile  string
	json         bool
}

func (*whatifCmd) Name() string     { return "whatif" }
func (*whatifCmd) Synopsis() string { return "simulate the fixed rebalancing actions" }
func (*whatifCmd) Usage() string {
	return `pha whatif [-f <holdings>] [-policy <policy>] [-profile <profile>] [-json]

  Runs every rebalancing simulation and prints the score each action would
  reach. Simulations are independent of each other, not cumulative.
`
}

func (c *whatifCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holdingsFile, "f", defaultHoldingsFile, "Holdings file to simulate on (JSONL format).")
	f.StringVar(&c.policyFile, "policy", "", "Policy profile file. Defaults to the balanced policy.")
	f.StringVar(&c.profileFile, "profile", "", "Investor profile file. Defaults to a medium-risk growth investor.")
	f.BoolVar(&c.json, "json", false, "Emit the simulations as JSON instead of the table.")
}

func (c *whatifCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	sims := advisor.GenerateWhatIf(a, policy)

	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(sims); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SimulationsMarkdown(sims))
	return subcommands.ExitSuccess
}
