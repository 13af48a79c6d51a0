package advisor

// BRL is a helper for tests to create Brazilian real money from const
func BRL(v float64) Money { return M(v, "BRL") }

// pos is a helper for tests to build a valued holding in one line.
func pos(name string, t HoldingType, value float64) ValuedHolding {
	return ValuedHolding{Name: name, Type: t, Value: BRL(value)}
}

// strictPolicy is the policy used by most engine tests: the thresholds and
// penalties of the documented single-holding scenario.
func strictPolicy() PolicyProfile {
	return PolicyProfile{
		ID:   "strict",
		Name: "Strict",
		Config: PolicyConfig{
			TargetExteriorMin: 15,
			MaxOpaqueFunds:    30,
			MinLiquidityHigh:  60,
			Penalties: map[Flag]float64{
				HighConcentrationTop5:    20,
				LowGlobalDiversification: 15,
			},
		},
	}
}

// balancedUser is an investor profile that raises no risk mismatch on its own.
func balancedUser() UserProfile {
	return UserProfile{PrimaryObjective: "growth", HorizonYears: 10, RiskTolerance: "medium"}
}
