package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeToMinutes converts an "HH:MM" wall-clock string to minutes from
// midnight ("09:00" → 540). Malformed input returns 0; callers that need
// to reject bad times must validate before converting.
func TimeToMinutes(t string) int {
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return hour*60 + minute
}

// MinutesToTime converts minutes from midnight to "HH:MM" (540 → "09:00").
// Values outside [0, 1440) are not rejected; 1470 formats as "24:30".
// Keeping inputs in range is the caller's responsibility.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
