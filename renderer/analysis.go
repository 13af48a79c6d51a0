// Package renderer turns the advisory analytics into markdown reports. The
// markdown is the single source for every surface: printed to the terminal,
// converted to HTML, or attached to a client email.
package renderer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/etnz/advisor"
)

// flagText translates each risk flag into the sentence shown in the report.
var flagText = map[advisor.Flag]string{
	advisor.HighConcentrationTop5:    "The five largest positions hold a large share of the portfolio.",
	advisor.LowGlobalDiversification: "International exposure is below the policy target.",
	advisor.HighComplexityFunds:      "Too much value sits in funds whose composition cannot be verified.",
	advisor.LowLiquidityBucket:       "Too little of the portfolio can be converted to cash quickly.",
	advisor.RiskMismatchObjective:    "Equity exposure is high for a short-horizon, low-risk investor.",
}

// AnalysisMarkdown renders the full health report to a markdown string.
func AnalysisMarkdown(a *advisor.Analytics, user advisor.UserProfile, policy advisor.PolicyProfile) string {
	var buf bytes.Buffer
	RenderAnalysis(&buf, a, user, policy)
	return buf.String()
}

// RenderAnalysis writes the full health report: score, allocation, exposure,
// largest positions, risk flags, subscores, and the what-if simulations when
// the analytics carries them.
func RenderAnalysis(w io.Writer, a *advisor.Analytics, user advisor.UserProfile, policy advisor.PolicyProfile) {
	fmt.Fprintf(w, "# Portfolio Health Report (%s policy)\n\n", policy.Name)
	fmt.Fprintf(w, "**Health Score: %d/100**\n\n", a.Score(policy))

	fmt.Fprint(w, "## Allocation\n\n")
	fmt.Fprintln(w, "| Asset Class | Share |")
	fmt.Fprintln(w, "|:---|---:|")
	for _, t := range advisor.HoldingTypes() {
		share, ok := a.AllocationByClass[t]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "| %s | %s |\n", t, share)
	}
	fmt.Fprintln(w, "")

	fmt.Fprint(w, "## Exposure\n\n")
	fmt.Fprintf(w, "- Brazil: %s\n", a.BRvsExterior.BR)
	fmt.Fprintf(w, "- International: %s (policy target: at least %.0f%%)\n\n",
		a.BRvsExterior.Exterior, policy.Config.TargetExteriorMin)

	if len(a.TopHoldings) > 0 {
		fmt.Fprint(w, "## Largest Positions\n\n")
		fmt.Fprintln(w, "| # | Holding | Type | Share |")
		fmt.Fprintln(w, "|---:|:---|:---|---:|")
		for i, h := range a.TopHoldings {
			fmt.Fprintf(w, "| %d | %s | %s | %s |\n", i+1, h.Name, h.Type, h.Percentual)
		}
		fmt.Fprintf(w, "\nTop 5 concentration: %s. Top 10: %s.\n\n", a.ConcentrationTop5, a.ConcentrationTop10)
	}

	fmt.Fprint(w, "## Risk Flags\n\n")
	if len(a.Flags) == 0 {
		fmt.Fprint(w, "None raised.\n\n")
	} else {
		for _, f := range a.Flags {
			text, ok := flagText[f]
			if !ok {
				text = string(f)
			}
			fmt.Fprintf(w, "- **%s**: %s\n", f, text)
		}
		fmt.Fprintln(w, "")
	}

	fmt.Fprint(w, "## Subscores\n\n")
	fmt.Fprintln(w, "| Dimension | Score |")
	fmt.Fprintln(w, "|:---|---:|")
	fmt.Fprintf(w, "| Global diversification | %d |\n", a.Subscores.GlobalDiversification)
	fmt.Fprintf(w, "| Concentration | %d |\n", a.Subscores.Concentration)
	fmt.Fprintf(w, "| Liquidity | %d |\n", a.Subscores.Liquidity)
	fmt.Fprintf(w, "| Complexity | %d |\n", a.Subscores.Complexity)
	fmt.Fprintf(w, "| Cost efficiency | %d |\n", a.Subscores.CostEfficiency)
	fmt.Fprintln(w, "")

	if len(a.WhatIf) > 0 {
		fmt.Fprint(w, "## What-If Simulations\n\n")
		RenderSimulations(w, a.WhatIf)
	}
}

// RenderSimulations writes the what-if table alone, used both inside the full
// report and by the standalone whatif command.
func RenderSimulations(w io.Writer, sims []advisor.Simulation) {
	fmt.Fprintln(w, "| Action | Before | After | Note |")
	fmt.Fprintln(w, "|:---|---:|---:|:---|")
	for _, s := range sims {
		fmt.Fprintf(w, "| %s | %d | %d | %s |\n", s.Label, s.ScoreBefore, s.ScoreAfter, s.Note)
	}
	fmt.Fprintln(w, "")
}

// SimulationsMarkdown renders the what-if table to a markdown string.
func SimulationsMarkdown(sims []advisor.Simulation) string {
	var buf bytes.Buffer
	fmt.Fprint(&buf, "# What-If Simulations\n\n")
	RenderSimulations(&buf, sims)
	return buf.String()
}
