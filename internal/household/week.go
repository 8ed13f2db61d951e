package household

import "time"

// DayFormat is the calendar-date layout used for day-keyed records.
const DayFormat = "2006-01-02"

// WeekOf returns the Monday of t's ISO week, formatted as DayFormat. Both
// check-in records and the weekly reminder keys use it so "this week" means
// the same thing everywhere.
func WeekOf(t time.Time) string {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := t.AddDate(0, 0, 1-weekday)
	return monday.Format(DayFormat)
}
