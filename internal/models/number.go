package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Count is a non-negative integer metric. It decodes from JSON numbers,
// numeric strings and null; anything else decodes to zero instead of
// failing the whole document.
type Count int64

// maxCount is the largest integer a float64 holds exactly. Larger values
// decode to zero so that sums over a document cannot overflow.
const maxCount = 1 << 53

func (c *Count) UnmarshalJSON(b []byte) error {
	f, ok := parseLenient(b)
	if !ok || f < 0 || f > maxCount {
		*c = 0
		return nil
	}
	*c = Count(math.Round(f))
	return nil
}

func (c Count) Int() int64 { return int64(c) }

func (c Count) Float() float64 { return float64(c) }

// Amount is a currency amount or a percentage. It decodes with the same
// leniency as Count.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	f, ok := parseLenient(b)
	if !ok {
		*a = 0
		return nil
	}
	*a = Amount(f)
	return nil
}

func (a Amount) Float() float64 { return float64(a) }

func parseLenient(b []byte) (float64, bool) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return 0, false
	}

	var raw string
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return 0, false
		}
	} else {
		raw = string(b)
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
