package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
)

// houseMeetingCountdown lists how many days ahead of the meeting each
// reminder fires. Day-of gets high priority, the rest medium.
var houseMeetingCountdown = []int{3, 1, 0}

// HouseMeetingRule reminds about the recurring monthly house meeting, held
// on the first occurrence of the configured weekday each month. Each
// countdown step deduplicates independently, so a month gets at most three
// reminders.
type HouseMeetingRule struct {
	weekday time.Weekday
}

// NewHouseMeetingRule builds the house meeting rule.
func NewHouseMeetingRule(weekday time.Weekday) *HouseMeetingRule {
	return &HouseMeetingRule{weekday: weekday}
}

func (r *HouseMeetingRule) Name() string { return "house-meeting-reminders" }

func (r *HouseMeetingRule) Evaluate(ctx context.Context, now time.Time) ([]Candidate, error) {
	meeting := firstWeekdayOfMonth(now, r.weekday)
	daysLeft := daysBetween(now, meeting)
	if daysLeft < 0 {
		return nil, nil
	}

	for _, step := range houseMeetingCountdown {
		if daysLeft != step {
			continue
		}
		priority := notifications.PriorityMedium
		message := fmt.Sprintf("House meeting on %s (%d days away).", meeting.Format("Monday, Jan 2"), daysLeft)
		if daysLeft == 0 {
			priority = notifications.PriorityHigh
			message = fmt.Sprintf("House meeting is today, %s.", meeting.Format("Monday, Jan 2"))
		}
		due := meeting
		return []Candidate{{
			Key: fmt.Sprintf("meeting:%s:d%d", now.Format(monthFormat), daysLeft),
			Draft: notifications.Draft{
				Title:    "House meeting reminder",
				Message:  message,
				Kind:     notifications.KindReminder,
				Category: notifications.CategoryMeeting,
				Priority: priority,
				DueDate:  &due,
			},
		}}, nil
	}
	return nil, nil
}

// firstWeekdayOfMonth returns the first date in now's month that falls on
// the given weekday, at midnight in now's location.
func firstWeekdayOfMonth(now time.Time, weekday time.Weekday) time.Time {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset)
}

// daysBetween counts whole calendar days from a to b, negative when b is
// before a's day. The dates are re-anchored in UTC so a daylight-saving
// transition in the local zone cannot shorten a day below the 24h divisor.
func daysBetween(a, b time.Time) int {
	aDay := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bDay := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bDay.Sub(aDay) / (24 * time.Hour))
}
