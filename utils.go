package jukebox

import (
	"fmt"
	"math"
	"time"
)

// Live is the duration reported for streams without an end.
const Live = time.Duration(math.MaxInt64)

// FormatTime renders a track duration as [h:]mm:ss, rounding to the nearest
// second. Live streams render as "LIVE".
func FormatTime(d time.Duration) string {
	if d == Live {
		return "LIVE"
	}

	seconds := int64(math.Round(d.Seconds()))
	hours := seconds / 3600
	seconds %= 3600
	minutes := seconds / 60
	seconds %= 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
