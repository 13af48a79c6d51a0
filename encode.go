package advisor

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// this file handles the persistence formats of the advisory inputs. They
// should remain human readable and easy to diff: holdings are JSONL (one
// position per line), profiles and policies are single JSON objects.

// jholding is the readable JSONL form of a position.
type jholding struct {
	Name      string          `json:"name"`
	Type      string          `json:"type,omitempty"`
	Value     decimal.Decimal `json:"value"`
	Currency  string          `json:"currency,omitempty"`
	Quantity  Quantity        `json:"quantity,omitzero"`
	Price     decimal.Decimal `json:"price,omitempty"`
	Liquidity string          `json:"liquidity,omitempty"`
}

// DecodeHoldings decodes positions from a stream of JSONL data. A line
// without a value derives it from quantity and price, and a line without a
// type gets one from the classifier.
func DecodeHoldings(r io.Reader) ([]ValuedHolding, error) {
	var holdings []ValuedHolding
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jh jholding
		if err := json.Unmarshal(line, &jh); err != nil {
			return nil, fmt.Errorf("cannot parse holding line %q: %w", string(line), err)
		}

		value := M(jh.Value, jh.Currency)
		if value.IsZero() {
			value = M(jh.Price, jh.Currency).Mul(jh.Quantity)
		}
		t := HoldingType(jh.Type)
		if jh.Type == "" {
			t = Classify(RawHolding{NameOrCode: jh.Name})
		}

		holdings = append(holdings, ValuedHolding{
			Name:            jh.Name,
			Type:            t,
			Value:           value,
			LiquidityBucket: jh.Liquidity,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read holdings: %w", err)
	}
	return holdings, nil
}

// EncodeHoldings writes positions in the canonical JSONL format, with a
// stable field order so files can be diffed and merged.
func EncodeHoldings(w io.Writer, holdings []ValuedHolding) error {
	for _, h := range holdings {
		var jw jsonObjectWriter
		jw.Append("name", h.Name)
		jw.Append("type", h.Type)
		jw.Append("value", h.Value.value)
		jw.Optional("currency", h.Value.cur)
		jw.Optional("liquidity", h.LiquidityBucket)
		b, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode holding %q: %w", h.Name, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}

// DecodePolicy decodes a policy profile from a single JSON object.
func DecodePolicy(r io.Reader) (PolicyProfile, error) {
	var p PolicyProfile
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return PolicyProfile{}, fmt.Errorf("cannot parse policy profile: %w", err)
	}
	return p, nil
}

// DecodeUserProfile decodes an investor profile from a single JSON object.
func DecodeUserProfile(r io.Reader) (UserProfile, error) {
	var u UserProfile
	if err := json.NewDecoder(r).Decode(&u); err != nil {
		return UserProfile{}, fmt.Errorf("cannot parse investor profile: %w", err)
	}
	return u, nil
}
