package advisor

import (
	"fmt"
	"strings"
)

// HoldingType is the coarse asset class assigned to a holding. It is a closed
// enumeration: the analytics engine knows how to bucket every one of these
// values, and anything it cannot recognize is tagged Other.
type HoldingType string

const (
	EquityBR             HoldingType = "Equity-BR"
	ETFBR                HoldingType = "ETF-BR"
	REITFII              HoldingType = "REIT(FII)"
	Foreign              HoldingType = "Foreign"
	Fund                 HoldingType = "Fund"
	Pension              HoldingType = "Pension"
	FixedIncomePost      HoldingType = "FixedIncome-Post"
	FixedIncomeInflation HoldingType = "FixedIncome-Inflation"
	Cash                 HoldingType = "Cash"
	Other                HoldingType = "Other"
)

// HoldingTypes lists every holding type in a stable order, used to iterate
// over allocation maps deterministically.
func HoldingTypes() []HoldingType {
	return []HoldingType{
		EquityBR, ETFBR, REITFII, Foreign, Fund, Pension,
		FixedIncomePost, FixedIncomeInflation, Cash, Other,
	}
}

// ParseHoldingType parses an asset class label, matching case-insensitively.
func ParseHoldingType(s string) (HoldingType, error) {
	for _, t := range HoldingTypes() {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return Other, fmt.Errorf("unknown asset class %q", s)
}

// LiquidityHigh marks a holding explicitly known to be convertible to cash
// quickly, whatever its type.
const LiquidityHigh = "high"

// RawHolding is a holding as produced by the statement parsing front-end:
// a free-form name or ticker, and whatever figures the parser could extract.
type RawHolding struct {
	NameOrCode string   `json:"name"`
	Value      float64  `json:"value,omitempty"`
	Quantity   Quantity `json:"quantity,omitzero"`
	Price      float64  `json:"price,omitempty"`
	Type       string   `json:"type,omitempty"`
}

// ValuedHolding is a classified position with a known market value. This is
// the input record of the analytics engine.
type ValuedHolding struct {
	Name            string
	Type            HoldingType
	Value           Money
	LiquidityBucket string
	CostBucket      string
	RiskBucket      string
}

// Valued converts a raw holding into a valued one, deriving the value from
// quantity and price when the statement did not carry it, and classifying the
// name when the parser did not provide a type.
func (r RawHolding) Valued(currency string) ValuedHolding {
	value := M(r.Value, currency)
	if value.IsZero() {
		value = M(r.Price, currency).Mul(r.Quantity)
	}

	t := HoldingType(r.Type)
	if r.Type == "" {
		t = Classify(r)
	}

	return ValuedHolding{
		Name:  r.NameOrCode,
		Type:  t,
		Value: value,
	}
}
