package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/advisor/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: when invoked by the shell completion hook this call
	// prints the candidates and exits.
	files := map[string]complete.Predictor{
		"f":       predict.Files("*.jsonl"),
		"policy":  predict.Files("*.json"),
		"profile": predict.Files("*.json"),
	}
	completer := &complete.Command{
		Sub: map[string]*complete.Command{
			"analyze":  {Flags: files},
			"score":    {Flags: files},
			"whatif":   {Flags: files},
			"classify": {Flags: files},
			"import":   {Args: predict.Files("*.json")},
			"compare":  {Args: predict.Files("*.jsonl")},
			"topic":    {Args: predict.Set{"readme", "classification", "scoring", "whatif"}},
		},
	}
	completer.Complete("pha")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
