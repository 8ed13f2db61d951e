package settings

import (
	"strconv"
	"strings"
	"time"
)

// Suppressed reports whether desktop presentation is inside the quiet-hours
// window at the given instant. It governs presentation only: suppressed
// notifications are still created and logged.
//
// A window whose start precedes its end covers [start, end] inclusive. A
// window whose start is at or after its end wraps past midnight and covers
// nowMinutes >= start or nowMinutes <= end.
func Suppressed(now time.Time, s Settings) bool {
	if !s.QuietHours.Enabled {
		return false
	}

	start, ok := minuteOfDay(s.QuietHours.Start)
	if !ok {
		return false
	}
	end, ok := minuteOfDay(s.QuietHours.End)
	if !ok {
		return false
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	if start < end {
		return nowMinutes >= start && nowMinutes <= end
	}
	return nowMinutes >= start || nowMinutes <= end
}

func minuteOfDay(value string) (int, bool) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}
