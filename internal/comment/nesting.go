package comment

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseNestingLevel reads a nest_level value from note metadata. Numbers and
// numeric strings are accepted; anything else, including a missing value,
// is top level.
func ParseNestingLevel(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return clampLevel(f)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return clampLevel(f)
}

func clampLevel(f float64) int {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
