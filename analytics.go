package advisor

import (
	"math"
	"sort"
)

// Exposure is the split of the portfolio between domestic and international
// assets. Only Foreign holdings count as international; any type the engine
// does not recognize is treated as domestic.
type Exposure struct {
	BR       Percent `json:"br"`
	Exterior Percent `json:"exterior"`
}

// TopHolding is one of the largest positions of the portfolio, expressed as a
// share of the total value.
type TopHolding struct {
	Name       string      `json:"name"`
	Percentual Percent     `json:"percentual"`
	Type       HoldingType `json:"type"`
}

// Subscores rates each portfolio-health dimension on a 0-100 scale. A
// subscore is target-relative, not a linear percentage: 100 means the policy
// target is met, and the slope below or above the target is specific to each
// dimension.
type Subscores struct {
	GlobalDiversification int `json:"global_diversification"`
	Concentration         int `json:"concentration"`
	Liquidity             int `json:"liquidity"`
	Complexity            int `json:"complexity"`
	CostEfficiency        int `json:"cost_efficiency"`
}

// Analytics is the descriptive analysis of a portfolio snapshot. It is built
// once per analysis request and is immutable to callers: the what-if
// simulator works on its own independent copy.
type Analytics struct {
	AllocationByClass  map[HoldingType]Percent `json:"allocation_by_class"`
	BRvsExterior       Exposure                `json:"br_vs_exterior"`
	TopHoldings        []TopHolding            `json:"top_holdings"`
	ConcentrationTop5  Percent                 `json:"concentration_top5"`
	ConcentrationTop10 Percent                 `json:"concentration_top10"`
	ComplexityScore    Percent                 `json:"complexity_score"`
	LiquidityScore     Percent                 `json:"liquidity_score"`
	Flags              []Flag                  `json:"flags"`
	Subscores          Subscores               `json:"subscores"`
	WhatIf             []Simulation            `json:"what_if,omitempty"`
}

// isHighLiquidity reports whether a holding counts toward the liquidity
// score: either its type is quickly convertible to cash, or the statement
// explicitly tagged it as high liquidity.
func isHighLiquidity(h ValuedHolding) bool {
	if h.LiquidityBucket == LiquidityHigh {
		return true
	}
	switch h.Type {
	case EquityBR, ETFBR, REITFII, Foreign, Cash:
		return true
	}
	return false
}

// NewAnalytics aggregates a classified, valued holding list into the full
// descriptive analysis: allocation, concentration, liquidity, complexity,
// risk flags and subscores.
//
// A portfolio with zero total value (empty list, or all zero-value holdings)
// is a valid degenerate input and yields the canonical zeroed analytics
// rather than an error.
func NewAnalytics(holdings []ValuedHolding, user UserProfile, policy PolicyProfile) *Analytics {
	var total Money
	for _, h := range holdings {
		total = total.Add(h.Value)
	}
	if !total.IsPositive() {
		return &Analytics{
			AllocationByClass: map[HoldingType]Percent{},
			Flags:             []Flag{},
		}
	}

	a := &Analytics{
		AllocationByClass: make(map[HoldingType]Percent),
		Flags:             []Flag{},
	}

	// Allocation by asset class.
	byClass := make(map[HoldingType]Money)
	for _, h := range holdings {
		byClass[h.Type] = byClass[h.Type].Add(h.Value)
	}
	for t, v := range byClass {
		a.AllocationByClass[t] = v.PercentOf(total)
	}

	// Domestic vs international split.
	var exterior Money
	for _, h := range holdings {
		if h.Type == Foreign {
			exterior = exterior.Add(h.Value)
		}
	}
	a.BRvsExterior = Exposure{
		BR:       total.Sub(exterior).PercentOf(total),
		Exterior: exterior.PercentOf(total),
	}

	// Largest positions, by descending value. The sort is stable so holdings
	// of equal value keep their statement order.
	sorted := make([]ValuedHolding, len(holdings))
	copy(sorted, holdings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value.GreaterThan(sorted[j].Value)
	})
	for i, h := range sorted {
		if i == 10 {
			break
		}
		a.TopHoldings = append(a.TopHoldings, TopHolding{
			Name:       h.Name,
			Percentual: h.Value.PercentOf(total),
			Type:       h.Type,
		})
	}
	a.ConcentrationTop5 = sumTop(sorted, 5).PercentOf(total)
	a.ConcentrationTop10 = sumTop(sorted, 10).PercentOf(total)

	// Complexity: share of the value locked in opaque pooled vehicles.
	var opaque Money
	for _, h := range holdings {
		if h.Type == Fund || h.Type == Pension {
			opaque = opaque.Add(h.Value)
		}
	}
	a.ComplexityScore = opaque.PercentOf(total)

	// Liquidity: share of the value convertible to cash quickly.
	var liquid Money
	for _, h := range holdings {
		if isHighLiquidity(h) {
			liquid = liquid.Add(h.Value)
		}
	}
	a.LiquidityScore = liquid.PercentOf(total)

	// Equity-like exposure, used only by the risk mismatch check.
	var equityLike Money
	for _, h := range holdings {
		switch h.Type {
		case EquityBR, ETFBR, REITFII, Foreign:
			equityLike = equityLike.Add(h.Value)
		}
	}
	equityPct := equityLike.PercentOf(total)

	cfg := policy.Config

	// Flags are independent conditions, appended in a fixed order so that two
	// identical portfolios always produce identical analytics.
	if a.ConcentrationTop5 > 45 {
		a.Flags = append(a.Flags, HighConcentrationTop5)
	}
	if float64(a.BRvsExterior.Exterior) < cfg.TargetExteriorMin {
		a.Flags = append(a.Flags, LowGlobalDiversification)
	}
	if float64(a.ComplexityScore) > cfg.MaxOpaqueFunds {
		a.Flags = append(a.Flags, HighComplexityFunds)
	}
	if float64(a.LiquidityScore) < cfg.MinLiquidityHigh {
		a.Flags = append(a.Flags, LowLiquidityBucket)
	}
	if user.RiskTolerance == "low" && user.HorizonYears < 5 && equityPct > 50 {
		a.Flags = append(a.Flags, RiskMismatchObjective)
	}

	// Cost partition: funds carry management fees, pension wrappers carry the
	// heaviest fee stack, everything else (unknown types included) is assumed
	// low cost.
	var medium, high Money
	for _, h := range holdings {
		switch h.Type {
		case Fund:
			medium = medium.Add(h.Value)
		case Pension:
			high = high.Add(h.Value)
		}
	}

	a.Subscores = Subscores{
		GlobalDiversification: diversificationSubscore(float64(a.BRvsExterior.Exterior), cfg.TargetExteriorMin),
		Concentration:         concentrationSubscore(float64(a.ConcentrationTop5)),
		Liquidity:             liquiditySubscore(float64(a.LiquidityScore), cfg.MinLiquidityHigh),
		Complexity:            complexitySubscore(float64(a.ComplexityScore), cfg.MaxOpaqueFunds),
		CostEfficiency:        costEfficiencySubscore(float64(medium.PercentOf(total)), float64(high.PercentOf(total))),
	}

	return a
}

// sumTop adds up the n largest values of an already sorted holding list.
func sumTop(sorted []ValuedHolding, n int) Money {
	var sum Money
	for i, h := range sorted {
		if i == n {
			break
		}
		sum = sum.Add(h.Value)
	}
	return sum
}

// clampScore rounds a raw score to the nearest integer within [0, 100].
func clampScore(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return int(math.Round(v))
}

// diversificationSubscore rates the international exposure against the
// [targetMin, max(targetMin+10, 25)] band: inside the band is perfect, below
// it degrades toward 0, and far above it degrades gently but never under 60.
func diversificationSubscore(exterior, targetMin float64) int {
	bandMax := math.Max(targetMin+10, 25)
	switch {
	case exterior < targetMin:
		return clampScore(exterior / targetMin * 60)
	case exterior > bandMax:
		return clampScore(math.Max(60, 100-(exterior-bandMax)*2))
	default:
		return 100
	}
}

// concentrationSubscore rates the top-5 concentration against the fixed 45%
// ceiling; the slope reaches 0 around 75%.
func concentrationSubscore(top5 float64) int {
	if top5 <= 45 {
		return 100
	}
	return clampScore(100 - (top5-45)*3.33)
}

func liquiditySubscore(liquidity, target float64) int {
	if liquidity >= target {
		return 100
	}
	return clampScore(liquidity / target * 80)
}

func complexitySubscore(complexity, max float64) int {
	if complexity <= max {
		return 100
	}
	return clampScore(100 - (complexity-max)*2)
}

func costEfficiencySubscore(mediumPct, highPct float64) int {
	return clampScore(100 - 0.5*mediumPct - 1.5*highPct)
}
