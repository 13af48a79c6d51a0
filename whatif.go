package advisor

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
)

// AdjustmentType identifies one of the fixed rebalancing actions the what-if
// simulator knows how to apply. It is a closed enumeration: an out-of-range
// value is a programmer error, not a runtime condition.
type AdjustmentType int

const (
	// AddExterior10 shifts 10% of the portfolio from domestic to
	// international assets.
	AddExterior10 AdjustmentType = iota
	// ReduceTop5To45 caps the five largest positions at 45% of the portfolio.
	ReduceTop5To45
	// IncreaseLiquidityTo60 raises the high-liquidity share to the policy
	// target.
	IncreaseLiquidityTo60
)

// adjustmentTypes is the stable order in which WhatIf runs the simulations.
var adjustmentTypes = []AdjustmentType{AddExterior10, ReduceTop5To45, IncreaseLiquidityTo60}

func (t AdjustmentType) String() string {
	switch t {
	case AddExterior10:
		return "ADD_EXTERIOR_10"
	case ReduceTop5To45:
		return "REDUCE_TOP5_TO_45"
	case IncreaseLiquidityTo60:
		return "INCREASE_LIQUIDITY_TO_60"
	}
	return "UNKNOWN"
}

// MarshalJSON serializes the adjustment type under its wire name.
func (t AdjustmentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Simulation is the outcome of one hypothetical rebalancing action: the
// health score before and after applying it. Simulations are ephemeral
// presentation material, never persisted.
type Simulation struct {
	Label       string         `json:"label"`
	ScoreBefore int            `json:"score_before"`
	ScoreAfter  int            `json:"score_after"`
	Note        string         `json:"note"`
	Adjustment  AdjustmentType `json:"adjustment_type"`
}

// clone returns an independent copy of the analytics, safe to mutate without
// affecting the original. Simulations are not carried into the copy.
func (a *Analytics) clone() *Analytics {
	c := *a
	c.AllocationByClass = make(map[HoldingType]Percent, len(a.AllocationByClass))
	for t, p := range a.AllocationByClass {
		c.AllocationByClass[t] = p
	}
	c.TopHoldings = slices.Clone(a.TopHoldings)
	c.Flags = slices.Clone(a.Flags)
	c.WhatIf = nil
	return &c
}

func removeFlag(flags []Flag, f Flag) []Flag {
	out := make([]Flag, 0, len(flags))
	for _, g := range flags {
		if g != f {
			out = append(out, g)
		}
	}
	return out
}

// nudge applies the fixed heuristic bonus the simulator grants an improved
// subscore. This is an approximation, not a re-derivation of the subscore
// formula from the mutated metric: what-if output is presentational, and the
// advisory narrative is tuned to these deltas.
func nudge(subscore, bonus int) int {
	if subscore+bonus > 100 {
		return 100
	}
	return subscore + bonus
}

// Simulate applies one rebalancing action to an independent copy of the
// analytics and reports the health score before and after. The caller's
// analytics is never modified.
func Simulate(a *Analytics, policy PolicyProfile, adj AdjustmentType) Simulation {
	before := a.Score(policy)
	sim := a.clone()
	cfg := policy.Config

	var label, note string
	switch adj {
	case AddExterior10:
		label = "+10% Exterior"
		exterior := math.Min(float64(sim.BRvsExterior.Exterior)+10, 100)
		delta := exterior - float64(sim.BRvsExterior.Exterior)
		br := math.Max(float64(sim.BRvsExterior.BR)-delta, 0)
		sim.BRvsExterior = Exposure{BR: Percent(br), Exterior: Percent(exterior)}
		if exterior >= cfg.TargetExteriorMin {
			sim.Flags = removeFlag(sim.Flags, LowGlobalDiversification)
		}
		sim.Subscores.GlobalDiversification = nudge(sim.Subscores.GlobalDiversification, 15)
		note = "Moves 10% of the portfolio from domestic to international assets."

	case ReduceTop5To45:
		label = "Reduce Top5 to 45%"
		if sim.ConcentrationTop5 > 45 {
			sim.ConcentrationTop5 = 45
			sim.Flags = removeFlag(sim.Flags, HighConcentrationTop5)
			sim.Subscores.Concentration = nudge(sim.Subscores.Concentration, 20)
			note = "Caps the five largest positions at 45% of the portfolio."
		} else {
			note = "Top 5 concentration is already at or below 45%; no change needed."
		}

	case IncreaseLiquidityTo60:
		label = "Increase Liquidity to Score 60"
		if float64(sim.LiquidityScore) < cfg.MinLiquidityHigh {
			sim.LiquidityScore = Percent(cfg.MinLiquidityHigh)
			sim.Flags = removeFlag(sim.Flags, LowLiquidityBucket)
			sim.Subscores.Liquidity = nudge(sim.Subscores.Liquidity, 15)
			note = fmt.Sprintf("Raises the high-liquidity share to the %v%% policy target.", cfg.MinLiquidityHigh)
		} else {
			note = "Liquidity already meets the policy target; no change needed."
		}
	}

	return Simulation{
		Label:       label,
		ScoreBefore: before,
		ScoreAfter:  sim.Score(policy),
		Note:        note,
		Adjustment:  adj,
	}
}

// GenerateWhatIf runs every rebalancing simulation in a stable order.
func GenerateWhatIf(a *Analytics, policy PolicyProfile) []Simulation {
	sims := make([]Simulation, 0, len(adjustmentTypes))
	for _, adj := range adjustmentTypes {
		sims = append(sims, Simulate(a, policy, adj))
	}
	return sims
}
