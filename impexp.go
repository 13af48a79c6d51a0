package advisor

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file handles the import of holdings from third-party broker exports.
// Every broker ships a different JSON shape, so instead of one parser per
// broker an ImportMapping describes, with JSONPath expressions, where the
// position fields live. The resulting raw holdings still go through the
// classifier like any other input.

// ImportMapping locates holding fields inside a broker JSON export.
// Rows is resolved against the whole document; the field paths are resolved
// against each row. Name is mandatory, the numeric paths are optional.
type ImportMapping struct {
	Rows     string `json:"rows"`
	Name     string `json:"name"`
	Value    string `json:"value,omitempty"`
	Quantity string `json:"quantity,omitempty"`
	Price    string `json:"price,omitempty"`
	Type     string `json:"type,omitempty"`
}

// ImportHoldings extracts raw holdings from a broker JSON export using the
// given mapping.
func ImportHoldings(r io.Reader, mapping ImportMapping) ([]RawHolding, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse broker export: %w", err)
	}

	jrows, err := jsonpath.Get(mapping.Rows, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot locate positions at %q: %w", mapping.Rows, err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		return nil, fmt.Errorf("positions at %q are not a list", mapping.Rows)
	}

	var holdings []RawHolding
	for i, row := range rows {
		name, err := jstring(row, mapping.Name)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		h := RawHolding{
			NameOrCode: name,
			Value:      jnumber(row, mapping.Value),
			Quantity:   Q(jnumber(row, mapping.Quantity)),
			Price:      jnumber(row, mapping.Price),
		}
		if mapping.Type != "" {
			// a broker-provided type is kept as-is; unknown labels will end
			// up in the Other bucket downstream.
			if s, err := jstring(row, mapping.Type); err == nil {
				h.Type = s
			}
		}
		holdings = append(holdings, h)
	}
	return holdings, nil
}

// jget resolves a JSONPath against a row, unwrapping single-element lists:
// jsonpath is never clear about whether it returns a list of 1 answer or a
// single answer.
func jget(row any, path string) (any, error) {
	jval, err := jsonpath.Get(path, row)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

func jstring(row any, path string) (string, error) {
	jval, err := jget(row, path)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("value at %q is not a string: %v", path, jval)
	}
	return s, nil
}

// jnumber resolves an optional numeric field. Missing paths and unparseable
// values yield 0: broker exports are too inconsistent to make these fatal.
func jnumber(row any, path string) float64 {
	if path == "" {
		return 0
	}
	jval, err := jget(row, path)
	if err != nil {
		return 0
	}
	switch v := jval.(type) {
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		// some brokers format numbers the Brazilian way: 1.234,56
		s := strings.ReplaceAll(v, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return 0
}
