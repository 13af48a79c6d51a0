package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/advisor"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	mappingFile string
	currency    string
	outputFile  string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import holdings from a broker JSON export" }
func (*importCmd) Usage() string {
	return `pha import -mapping <mapping> [-currency <code>] [-o <holdings>] <export.json>

  Extracts positions from a broker JSON export using the JSONPath mapping,
  classifies them, and writes them in the canonical JSONL holdings format.

  The mapping file locates the position fields inside the export, e.g.:

    {"rows": "$.positions", "name": "$.ticker", "value": "$.marketValue"}

Usage Examples:
# Convert an XP export into the default holdings file.
$ pha import -mapping xp.json -o holdings.jsonl export.json
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.mappingFile, "mapping", "", "JSONPath mapping file describing the broker export shape.")
	f.StringVar(&c.currency, "currency", "BRL", "Currency of the imported values.")
	f.StringVar(&c.outputFile, "o", "", "Output holdings file. Defaults to stdout.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.mappingFile == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import needs -mapping and exactly one export file")
		return subcommands.ExitUsageError
	}

	mf, err := os.Open(c.mappingFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open mapping file %q: %v\n", c.mappingFile, err)
		return subcommands.ExitFailure
	}
	defer mf.Close()
	var mapping advisor.ImportMapping
	if err := json.NewDecoder(mf).Decode(&mapping); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot parse mapping file %q: %v\n", c.mappingFile, err)
		return subcommands.ExitFailure
	}

	export, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open export file %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer export.Close()

	raws, err := advisor.ImportHoldings(export, mapping)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	holdings := make([]advisor.ValuedHolding, 0, len(raws))
	for _, raw := range raws {
		holdings = append(holdings, raw.Valued(c.currency))
	}

	out := os.Stdout
	if c.outputFile != "" {
		out, err = os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot create %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}
	if err := advisor.EncodeHoldings(out, holdings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.outputFile != "" {
		fmt.Fprintf(os.Stderr, "Imported %d holdings into %s\n", len(holdings), c.outputFile)
	}
	return subcommands.ExitSuccess
}
