package advisor

// Flag is a named risk condition raised when a metric breaches a policy
// threshold. Flags drive both score penalties and the risk callouts of the
// advisory report.
type Flag string

const (
	HighConcentrationTop5    Flag = "HIGH_CONCENTRATION_TOP5"
	LowGlobalDiversification Flag = "LOW_GLOBAL_DIVERSIFICATION"
	HighComplexityFunds      Flag = "HIGH_COMPLEXITY_FUNDS"
	LowLiquidityBucket       Flag = "LOW_LIQUIDITY_BUCKET"
	RiskMismatchObjective    Flag = "RISK_MISMATCH_OBJECTIVE"
)

// UserProfile describes the investor. It is an immutable input: the engine
// reads it and never writes it.
type UserProfile struct {
	PrimaryObjective string `json:"primary_objective"`
	HorizonYears     int    `json:"horizon_years"`
	RiskTolerance    string `json:"risk_tolerance"` // "low", "medium" or "high"
}

// PolicyConfig holds every business threshold of the engine. There are no
// hard-coded thresholds outside this record, except the two fixed score
// escalations documented on Analytics.Score.
type PolicyConfig struct {
	// TargetExteriorMin is the minimum desired international exposure, in percent.
	TargetExteriorMin float64 `json:"target_exterior_min"`
	// MaxOpaqueFunds caps the share of the portfolio held in funds and
	// pension wrappers whose composition cannot be decomposed.
	MaxOpaqueFunds float64 `json:"max_fundos_caixa_preta"`
	// MinLiquidityHigh is the minimum desired share of quickly-convertible value.
	MinLiquidityHigh float64 `json:"min_liquidity_high"`
	// Penalties maps each flag to the points it costs on the health score.
	// A flag with no entry costs nothing.
	Penalties map[Flag]float64 `json:"penalties"`
}

// PolicyProfile is a named policy configuration, loaded from the advisory
// configuration storage. The engine treats it as a read-only value.
type PolicyProfile struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Config PolicyConfig `json:"config"`
}

// Penalty returns the score cost of a flag, zero when the policy does not
// configure one.
func (p PolicyProfile) Penalty(f Flag) float64 {
	return p.Config.Penalties[f]
}

// DefaultPolicy returns the balanced advisory policy used when no custom
// profile is configured.
func DefaultPolicy() PolicyProfile {
	return PolicyProfile{
		ID:   "default",
		Name: "Balanced",
		Config: PolicyConfig{
			TargetExteriorMin: 15,
			MaxOpaqueFunds:    30,
			MinLiquidityHigh:  60,
			Penalties: map[Flag]float64{
				HighConcentrationTop5:    20,
				LowGlobalDiversification: 15,
				HighComplexityFunds:      10,
				LowLiquidityBucket:       10,
				RiskMismatchObjective:    15,
			},
		},
	}
}
