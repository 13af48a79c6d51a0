// Package cmd implements the CLI application to analyze client portfolios.
package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/advisor"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application.
// A main package registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&analyzeCmd{},
	&scoreCmd{},
	&whatifCmd{},
	&classifyCmd{},
	&importCmd{},
	&compareCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so reading the
// input files eagerly on each command is fine.

const defaultHoldingsFile = "holdings.jsonl"

// decodeHoldingsFile loads the classified positions from a JSONL file.
func decodeHoldingsFile(path string) ([]advisor.ValuedHolding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open holdings file %q: %w", path, err)
	}
	defer f.Close()
	return advisor.DecodeHoldings(f)
}

// decodePolicyFile loads a policy profile, falling back to the balanced
// default policy when no file is given.
func decodePolicyFile(path string) (advisor.PolicyProfile, error) {
	if path == "" {
		return advisor.DefaultPolicy(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return advisor.PolicyProfile{}, fmt.Errorf("cannot open policy file %q: %w", path, err)
	}
	defer f.Close()
	return advisor.DecodePolicy(f)
}

// decodeUserFile loads the investor profile, falling back to a balanced
// medium-risk investor when no file is given.
func decodeUserFile(path string) (advisor.UserProfile, error) {
	if path == "" {
		return advisor.UserProfile{PrimaryObjective: "growth", HorizonYears: 10, RiskTolerance: "medium"}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return advisor.UserProfile{}, fmt.Errorf("cannot open profile file %q: %w", path, err)
	}
	defer f.Close()
	return advisor.DecodeUserProfile(f)
}
