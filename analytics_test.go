package advisor

import (
	"slices"
	"testing"
)

func TestNewAnalytics_EmptyPortfolio(t *testing.T) {
	a := NewAnalytics(nil, balancedUser(), strictPolicy())

	if len(a.AllocationByClass) != 0 {
		t.Errorf("AllocationByClass = %v, want empty", a.AllocationByClass)
	}
	if !a.BRvsExterior.BR.Equal(0) || !a.BRvsExterior.Exterior.Equal(0) {
		t.Errorf("BRvsExterior = %+v, want zeroes", a.BRvsExterior)
	}
	if len(a.TopHoldings) != 0 {
		t.Errorf("TopHoldings = %v, want empty", a.TopHoldings)
	}
	if !a.ConcentrationTop5.Equal(0) {
		t.Errorf("ConcentrationTop5 = %v, want 0", a.ConcentrationTop5)
	}
	if len(a.Flags) != 0 {
		t.Errorf("Flags = %v, want empty", a.Flags)
	}
	if got, want := a.Score(strictPolicy()), 100; got != want {
		t.Errorf("Score() = %v, want %v", got, want)
	}
}

func TestNewAnalytics_ZeroValueHoldings(t *testing.T) {
	holdings := []ValuedHolding{pos("PETR4", EquityBR, 0), pos("VALE3", EquityBR, 0)}
	a := NewAnalytics(holdings, balancedUser(), strictPolicy())

	if len(a.AllocationByClass) != 0 || len(a.Flags) != 0 {
		t.Errorf("zero-value portfolio should yield the canonical zeroed analytics, got %+v", a)
	}
}

// TestNewAnalytics_SingleHolding covers the documented single-holding
// scenario: everything in one Brazilian equity.
func TestNewAnalytics_SingleHolding(t *testing.T) {
	policy := strictPolicy()
	holdings := []ValuedHolding{pos("PETR4", EquityBR, 100000)}
	a := NewAnalytics(holdings, balancedUser(), policy)

	if got := a.AllocationByClass[EquityBR]; !got.Equal(100) {
		t.Errorf("AllocationByClass[EquityBR] = %v, want 100%%", got)
	}
	if !a.ConcentrationTop5.Equal(100) {
		t.Errorf("ConcentrationTop5 = %v, want 100%%", a.ConcentrationTop5)
	}
	if !a.BRvsExterior.Exterior.Equal(0) {
		t.Errorf("Exterior = %v, want 0%%", a.BRvsExterior.Exterior)
	}
	// a single equity is fully liquid, so only concentration and
	// diversification are flagged.
	want := []Flag{HighConcentrationTop5, LowGlobalDiversification}
	if !slices.Equal(a.Flags, want) {
		t.Errorf("Flags = %v, want %v", a.Flags, want)
	}
	// 100 - 20 (concentration) - 15 (diversification) - 10 (top5 above 60 escalation)
	if got, want := a.Score(policy), 55; got != want {
		t.Errorf("Score() = %v, want %v", got, want)
	}
}

func sample() []ValuedHolding {
	return []ValuedHolding{
		pos("PETR4", EquityBR, 20000),
		pos("VALE3", EquityBR, 15000),
		pos("XPLG11", REITFII, 10000),
		pos("BOVA11", REITFII, 5000),
		pos("AAPL", Foreign, 10000),
		pos("TESOURO IPCA+ 2035", FixedIncomeInflation, 15000),
		pos("FUNDO VERDE FIC FIM", Fund, 10000),
		pos("XP PREV VGBL", Pension, 5000),
		pos("CDB BANCO INTER", Cash, 10000),
	}
}

func TestNewAnalytics_Invariants(t *testing.T) {
	a := NewAnalytics(sample(), balancedUser(), strictPolicy())

	var sum Percent
	for _, p := range a.AllocationByClass {
		sum += p
	}
	if !sum.Equal(100) {
		t.Errorf("sum of AllocationByClass = %v, want 100%%", sum)
	}

	if got := a.BRvsExterior.BR + a.BRvsExterior.Exterior; !got.Equal(100) {
		t.Errorf("BR + Exterior = %v, want 100%%", got)
	}

	if a.ConcentrationTop5 > a.ConcentrationTop10 {
		t.Errorf("ConcentrationTop5 %v > ConcentrationTop10 %v", a.ConcentrationTop5, a.ConcentrationTop10)
	}

	for name, s := range map[string]int{
		"global_diversification": a.Subscores.GlobalDiversification,
		"concentration":          a.Subscores.Concentration,
		"liquidity":              a.Subscores.Liquidity,
		"complexity":             a.Subscores.Complexity,
		"cost_efficiency":        a.Subscores.CostEfficiency,
	} {
		if s < 0 || s > 100 {
			t.Errorf("subscore %s = %v, want within [0,100]", name, s)
		}
	}
}

func TestNewAnalytics_Metrics(t *testing.T) {
	a := NewAnalytics(sample(), balancedUser(), strictPolicy())

	// total is 100000, so values read directly as percentages.
	if !a.BRvsExterior.Exterior.Equal(10) {
		t.Errorf("Exterior = %v, want 10%%", a.BRvsExterior.Exterior)
	}
	// top 5: 20000+15000+15000+10000+10000 (stable order on ties)
	if !a.ConcentrationTop5.Equal(70) {
		t.Errorf("ConcentrationTop5 = %v, want 70%%", a.ConcentrationTop5)
	}
	if !a.ConcentrationTop10.Equal(100) {
		t.Errorf("ConcentrationTop10 = %v, want 100%%", a.ConcentrationTop10)
	}
	// funds + pension
	if !a.ComplexityScore.Equal(15) {
		t.Errorf("ComplexityScore = %v, want 15%%", a.ComplexityScore)
	}
	// equities + FIIs + foreign + cash
	if !a.LiquidityScore.Equal(70) {
		t.Errorf("LiquidityScore = %v, want 70%%", a.LiquidityScore)
	}
	if got, want := len(a.TopHoldings), 9; got != want {
		t.Errorf("len(TopHoldings) = %v, want %v", got, want)
	}
	if a.TopHoldings[0].Name != "PETR4" || !a.TopHoldings[0].Percentual.Equal(20) {
		t.Errorf("TopHoldings[0] = %+v, want PETR4 at 20%%", a.TopHoldings[0])
	}
}

func TestNewAnalytics_LiquidityBucketOverride(t *testing.T) {
	// a fund is not a high-liquidity type, unless the statement says so.
	h := pos("FUNDO D+1", Fund, 1000)
	h.LiquidityBucket = LiquidityHigh
	a := NewAnalytics([]ValuedHolding{h}, balancedUser(), strictPolicy())

	if !a.LiquidityScore.Equal(100) {
		t.Errorf("LiquidityScore = %v, want 100%% via explicit bucket", a.LiquidityScore)
	}
}

func TestNewAnalytics_UnknownTypeDefaultsDomestic(t *testing.T) {
	holdings := []ValuedHolding{
		pos("SOMETHING NEW", HoldingType("Crypto"), 5000),
		pos("AAPL", Foreign, 5000),
	}
	a := NewAnalytics(holdings, balancedUser(), strictPolicy())

	if !a.BRvsExterior.BR.Equal(50) || !a.BRvsExterior.Exterior.Equal(50) {
		t.Errorf("BRvsExterior = %+v, want 50/50", a.BRvsExterior)
	}
}

func TestNewAnalytics_RiskMismatchFlag(t *testing.T) {
	holdings := []ValuedHolding{
		pos("PETR4", EquityBR, 60000),
		pos("TESOURO SELIC 2027", FixedIncomePost, 40000),
	}
	conservative := UserProfile{PrimaryObjective: "preservation", HorizonYears: 3, RiskTolerance: "low"}

	a := NewAnalytics(holdings, conservative, strictPolicy())
	if !slices.Contains(a.Flags, RiskMismatchObjective) {
		t.Errorf("Flags = %v, want RISK_MISMATCH_OBJECTIVE raised", a.Flags)
	}

	// same portfolio, longer horizon: no mismatch.
	patient := UserProfile{PrimaryObjective: "preservation", HorizonYears: 10, RiskTolerance: "low"}
	a = NewAnalytics(holdings, patient, strictPolicy())
	if slices.Contains(a.Flags, RiskMismatchObjective) {
		t.Errorf("Flags = %v, want no RISK_MISMATCH_OBJECTIVE", a.Flags)
	}
}

func TestSubscores(t *testing.T) {
	t.Run("global diversification", func(t *testing.T) {
		cases := []struct {
			exterior, target float64
			want             int
		}{
			{20, 15, 100}, // inside the band
			{15, 15, 100}, // at the lower bound
			{7.5, 15, 30}, // below: (7.5/15)*60
			{0, 15, 0},
			{40, 15, 70},  // above max(25, 25): 100 - 15*2
			{100, 15, 60}, // far above, floored at 60
		}
		for _, c := range cases {
			if got := diversificationSubscore(c.exterior, c.target); got != c.want {
				t.Errorf("diversificationSubscore(%v, %v) = %v, want %v", c.exterior, c.target, got, c.want)
			}
		}
	})

	t.Run("concentration", func(t *testing.T) {
		cases := []struct {
			top5 float64
			want int
		}{
			{30, 100},
			{45, 100},
			{60, 50}, // 100 - 15*3.33
			{75, 0},  // slope hits the floor around 75
			{100, 0},
		}
		for _, c := range cases {
			if got := concentrationSubscore(c.top5); got != c.want {
				t.Errorf("concentrationSubscore(%v) = %v, want %v", c.top5, got, c.want)
			}
		}
	})

	t.Run("liquidity", func(t *testing.T) {
		if got := liquiditySubscore(60, 60); got != 100 {
			t.Errorf("liquiditySubscore(60, 60) = %v, want 100", got)
		}
		if got := liquiditySubscore(30, 60); got != 40 {
			t.Errorf("liquiditySubscore(30, 60) = %v, want 40", got)
		}
	})

	t.Run("complexity", func(t *testing.T) {
		if got := complexitySubscore(30, 30); got != 100 {
			t.Errorf("complexitySubscore(30, 30) = %v, want 100", got)
		}
		if got := complexitySubscore(50, 30); got != 60 {
			t.Errorf("complexitySubscore(50, 30) = %v, want 60", got)
		}
	})

	t.Run("cost efficiency", func(t *testing.T) {
		if got := costEfficiencySubscore(50, 0); got != 75 {
			t.Errorf("costEfficiencySubscore(50, 0) = %v, want 75", got)
		}
		if got := costEfficiencySubscore(0, 100); got != 0 {
			t.Errorf("costEfficiencySubscore(0, 100) = %v, want 0", got)
		}
	})
}
