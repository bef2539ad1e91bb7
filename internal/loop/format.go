package loop

import (
	"fmt"
	"math"
)

// FormatTime renders seconds as "M:SS". Minutes are truncated and never
// padded, so an hour renders as "60:00". Negative and NaN input render as 0:00.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		seconds = 0
	}
	mins := int64(seconds / 60)
	secs := int64(math.Mod(seconds, 60))
	return fmt.Sprintf("%d:%02d", mins, secs)
}
