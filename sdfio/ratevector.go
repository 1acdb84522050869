package sdfio

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// RateVector is a production/consumption rate or wcet vector as it appears
// in a loaded document, decoded from whichever of the three accepted JSON
// or YAML shapes was given: a bare integer, a list of integers, or a
// bracketed string expression parsed by ParseRateVector.
type RateVector []int64

var (
	bracketExpr = regexp.MustCompile(`^\[([^]]*)\]$`)
	termExpr    = regexp.MustCompile(`^(\d+)(?:\s*\*\s*(\d+))?$`)
)

// ParseRateVector parses the shared "[e1, e2, ...]" rate-vector string
// grammar: each element is either a bare count (one element valued count)
// or "<count>*<value>" (count repetitions of value).
func ParseRateVector(s string) ([]int64, error) {
	m := bracketExpr.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRateVector, s)
	}

	inner := strings.TrimSpace(m[1])
	if inner == "" {
		return nil, fmt.Errorf("%w: %q has no elements", ErrMalformedRateVector, s)
	}

	var out []int64
	for _, term := range strings.Split(inner, ",") {
		term = strings.TrimSpace(term)
		tm := termExpr.FindStringSubmatch(term)
		if tm == nil {
			return nil, fmt.Errorf("%w: term %q in %q", ErrMalformedRateVector, term, s)
		}

		n, _ := strconv.ParseInt(tm[1], 10, 64)
		if tm[2] != "" {
			value, _ := strconv.ParseInt(tm[2], 10, 64)
			for i := int64(0); i < n; i++ {
				out = append(out, value)
			}
			continue
		}
		out = append(out, n)
	}

	return out, nil
}

// ParseCommaList parses the plain comma-separated integer list SDF3 XML
// uses for rate vectors and execution times (no count*value shorthand).
func ParseCommaList(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedRateVector, s)
		}
		out = append(out, v)
	}

	return out, nil
}

// UnmarshalJSON accepts a bare integer, an array of integers, or a
// bracketed string expression.
func (r *RateVector) UnmarshalJSON(data []byte) error {
	var asInt int64
	if err := json.Unmarshal(data, &asInt); err == nil {
		*r = RateVector{asInt}
		return nil
	}

	var asSlice []int64
	if err := json.Unmarshal(data, &asSlice); err == nil {
		if len(asSlice) == 0 {
			return ErrEmptyRateVector
		}
		*r = asSlice
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parsed, err := ParseRateVector(asString)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}

	return fmt.Errorf("sdfio: rate vector must be an int, a list of ints, or a bracketed string expression")
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML's equivalent scalar,
// sequence, and string node shapes.
func (r *RateVector) UnmarshalYAML(value *yaml.Node) error {
	var asInt int64
	if err := value.Decode(&asInt); err == nil {
		*r = RateVector{asInt}
		return nil
	}

	var asSlice []int64
	if err := value.Decode(&asSlice); err == nil {
		if len(asSlice) == 0 {
			return ErrEmptyRateVector
		}
		*r = asSlice
		return nil
	}

	var asString string
	if err := value.Decode(&asString); err == nil {
		parsed, err := ParseRateVector(asString)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}

	return fmt.Errorf("sdfio: rate vector must be an int, a list of ints, or a bracketed string expression")
}
