package booking

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultDurationMinutes is the fallback when a duration string cannot be parsed.
const DefaultDurationMinutes = 60

var durationNumberRe = regexp.MustCompile(`\d+\.?\d*`)

// ParseDuration converts a human duration string to minutes.
//
//	"45 min"  → 45
//	"1 Std"   → 60
//	"1.5 Std" → 90
//	"90 mins" → 90
//
// The first decimal number in the string is taken; hour markers
// ("Std", "hour", or a standalone "h" token, case-insensitive)
// multiply it by 60. Fractional minutes are truncated. Unparseable
// input returns DefaultDurationMinutes; this function never fails.
func ParseDuration(s string) int {
	match := durationNumberRe.FindString(s)
	if match == "" {
		return DefaultDurationMinutes
	}

	minutes, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return DefaultDurationMinutes
	}

	if hasHourMarker(s) {
		minutes *= 60
	}
	return int(minutes)
}

func hasHourMarker(s string) bool {
	lower := strings.ToLower(s)
	if strings.Contains(lower, "std") || strings.Contains(lower, "hour") {
		return true
	}
	for _, tok := range strings.Fields(lower) {
		if tok == "h" {
			return true
		}
	}
	return false
}
