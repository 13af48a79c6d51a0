package advisor

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		want HoldingType
	}{
		// real-estate fund tickers
		{"XPLG11", REITFII},
		{"HGLG11", REITFII},
		// treasury bonds
		{"TESOURO IPCA+ 2035", FixedIncomeInflation},
		{"NTN-B PRINCIPAL 2030", FixedIncomeInflation},
		{"TESOURO SELIC 2027", FixedIncomePost},
		{"LFT 2029", FixedIncomePost},
		// pension wrappers
		{"VGBL BRADESCO PREV", Pension},
		{"XP PREVIDENCIA FIM", Pension},
		// pooled funds
		{"FUNDO VERDE FIC FIM", Fund},
		{"ABSOLUTO FIA", Fund},
		// foreign tickers and keywords
		{"AAPL", Foreign},
		{"SPY", Foreign},
		{"WESTERN ASSET GLOBAL", Foreign},
		// cash-like
		{"CDB BANCO INTER", Cash},
		{"POUPANCA ITAU", Cash},
		// plain B3 equity tickers
		{"PETR4", EquityBR},
		{"VALE3", EquityBR},
		{"MGLU3", EquityBR},
		// no rule matches
		{"BITCOIN", Other},
		{"", Other},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Classify(RawHolding{NameOrCode: c.name}); got != c.want {
				t.Errorf("Classify(%q) = %v, want %v", c.name, got, c.want)
			}
		})
	}
}

// TestClassify_Precedence pins the rule order down: BOVA11 and SMAL11 carry a
// known ETF prefix, but the real-estate ticker pattern runs first, so the
// digit-pattern wins. This is a real ambiguity of the heuristic and the order
// is part of the contract.
func TestClassify_Precedence(t *testing.T) {
	cases := []struct {
		name string
		want HoldingType
	}{
		{"BOVA11", REITFII},
		{"SMAL11", REITFII},
		{"IVVB11", REITFII},
		// without the trailing 11, the ETF prefixes apply
		{"ETF BOVA", ETFBR},
		{"IVVB39", ETFBR},
		// the fund keywords run before the foreign ones
		{"FUNDO GLOBAL MACRO", Fund},
		// the treasury rule runs before the cash rule even for mixed names
		{"TESOURO SELIC CAIXA", FixedIncomePost},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Classify(RawHolding{NameOrCode: c.name}); got != c.want {
				t.Errorf("Classify(%q) = %v, want %v", c.name, got, c.want)
			}
		})
	}
}

func TestClassify_IsCaseInsensitive(t *testing.T) {
	if got := Classify(RawHolding{NameOrCode: "tesouro ipca+ 2035"}); got != FixedIncomeInflation {
		t.Errorf("Classify(lowercase) = %v, want %v", got, FixedIncomeInflation)
	}
}

func TestParseHoldingType(t *testing.T) {
	if got, err := ParseHoldingType("reit(fii)"); err != nil || got != REITFII {
		t.Errorf("ParseHoldingType(reit(fii)) = %v, %v, want %v", got, err, REITFII)
	}
	if got, err := ParseHoldingType("Fund"); err != nil || got != Fund {
		t.Errorf("ParseHoldingType(Fund) = %v, %v, want %v", got, err, Fund)
	}
	if _, err := ParseHoldingType("Stocks"); err == nil {
		t.Error("ParseHoldingType(Stocks) error = nil, want an error")
	}
}

func TestApplyTypeToSimilar(t *testing.T) {
	holdings := []ValuedHolding{
		{Name: "FUNDO XP MACRO", Type: Fund, Value: BRL(100), LiquidityBucket: LiquidityHigh},
		{Name: "PETR4", Type: EquityBR, Value: BRL(200)},
		{Name: "XP PREV VGBL", Type: Pension, Value: BRL(300)},
	}

	got := ApplyTypeToSimilar(holdings, "xp", Fund)

	if got[0].Type != Fund || got[2].Type != Fund {
		t.Errorf("matching holdings not overridden: %v, %v", got[0].Type, got[2].Type)
	}
	if got[1].Type != EquityBR {
		t.Errorf("non-matching holding type = %v, want %v", got[1].Type, EquityBR)
	}

	// every other field is preserved
	if !got[0].Value.Equal(BRL(100)) || got[0].LiquidityBucket != LiquidityHigh {
		t.Errorf("other fields not preserved: %+v", got[0])
	}

	// the input slice is untouched
	if holdings[2].Type != Pension {
		t.Errorf("input slice mutated: %v", holdings[2].Type)
	}
}
