package advisor

import (
	"regexp"
	"strings"
)

// The classifier is a fixed, ordered heuristic over the uppercased holding
// name. Order matters: several patterns overlap (a FII ticker like BOVA11
// would also match the ETF prefixes), and the first matching rule wins, so
// the precedence is encoded once in the rule table below and nowhere else.

var (
	// Brazilian real-estate funds trade under a four-letter ticker ending in "11".
	fiiTicker = regexp.MustCompile(`[A-Z]{4}11$`)
	// Plain B3 equity tickers: exactly four letters and one or two digits.
	b3Ticker = regexp.MustCompile(`^[A-Z]{4}[0-9]{1,2}$`)
)

type classificationRule struct {
	apply func(name string) (HoldingType, bool)
}

func containsAny(name string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}

func keywordRule(t HoldingType, keywords ...string) classificationRule {
	return classificationRule{apply: func(name string) (HoldingType, bool) {
		if containsAny(name, keywords...) {
			return t, true
		}
		return Other, false
	}}
}

func patternRule(t HoldingType, pattern *regexp.Regexp) classificationRule {
	return classificationRule{apply: func(name string) (HoldingType, bool) {
		if pattern.MatchString(name) {
			return t, true
		}
		return Other, false
	}}
}

// treasuryRule distinguishes inflation-linked treasury bonds from
// floating-rate ones: both families share the same issuer keywords.
var treasuryRule = classificationRule{apply: func(name string) (HoldingType, bool) {
	if !containsAny(name, "TESOURO", "NTN", "LTN", "LFT") {
		return Other, false
	}
	if containsAny(name, "IPCA", "NTN-B") {
		return FixedIncomeInflation, true
	}
	return FixedIncomePost, true
}}

var classificationRules = []classificationRule{
	patternRule(REITFII, fiiTicker),
	keywordRule(ETFBR, "ETF", "BOVA", "SMAL", "IVVB"),
	treasuryRule,
	keywordRule(Pension, "PREVID", "VGBL", "PGBL"),
	keywordRule(Fund, "FUNDO", "FIA", "FIC", "FIM"),
	keywordRule(Foreign, "SPY", "QQQ", "VTI", "AAPL", "MSFT", "GOOGL", "EXTERIOR", "INTERNACIONAL", "GLOBAL"),
	keywordRule(Cash, "CAIXA", "CDB", "LCI", "LCA", "POUPANCA"),
	patternRule(EquityBR, b3Ticker),
}

// Classify assigns a holding type to a raw holding from its name or ticker
// alone. It is total: any input yields a type, falling back to Other when no
// rule matches.
func Classify(raw RawHolding) HoldingType {
	name := strings.ToUpper(strings.TrimSpace(raw.NameOrCode))
	for _, rule := range classificationRules {
		if t, ok := rule.apply(name); ok {
			return t
		}
	}
	return Other
}

// ApplyTypeToSimilar force-overrides the type of every holding whose name
// contains the given pattern (case-insensitive). It is the manual correction
// step after automatic classification: matching holdings get the new type,
// non-matching holdings keep whatever type they already had, and every other
// field is preserved. The input slice is never modified.
func ApplyTypeToSimilar(holdings []ValuedHolding, pattern string, t HoldingType) []ValuedHolding {
	upper := strings.ToUpper(pattern)
	out := make([]ValuedHolding, len(holdings))
	for i, h := range holdings {
		if strings.Contains(strings.ToUpper(h.Name), upper) {
			h.Type = t
		}
		out[i] = h
	}
	return out
}
