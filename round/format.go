package round

import (
	"fmt"
	"math"
)

// FormatHMS renders a whole-second clock as HH:MM:SS.
func FormatHMS(seconds float64) string {
	s := wholeSeconds(seconds)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, s/60%60, s%60)
}

// FormatMS renders a countdown as MM:SS. Partial seconds are dropped.
func FormatMS(seconds float64) string {
	s := wholeSeconds(seconds)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// maxSeconds keeps the int conversion defined for absurd clocks.
const maxSeconds = math.MaxInt32

func wholeSeconds(v float64) int {
	if !(v > 0) {
		return 0
	}
	return int(math.Floor(math.Min(v, maxSeconds)))
}
