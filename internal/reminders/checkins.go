package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/landon-studio/Rm8-dash-sub001/internal/household"
	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
)

type checkinSource interface {
	CheckinExists(ctx context.Context, weekOf string) (bool, error)
}

// CheckinRule nudges the house to file its weekly check-in and schedules a
// general monthly review on the first of each month.
type CheckinRule struct {
	source  checkinSource
	weekday time.Weekday
}

// NewCheckinRule builds the check-in rule.
func NewCheckinRule(source checkinSource, weekday time.Weekday) (*CheckinRule, error) {
	if source == nil {
		return nil, fmt.Errorf("checkin source required")
	}
	return &CheckinRule{source: source, weekday: weekday}, nil
}

func (r *CheckinRule) Name() string { return "checkin-reminders" }

func (r *CheckinRule) Evaluate(ctx context.Context, now time.Time) ([]Candidate, error) {
	var out []Candidate

	if now.Weekday() == r.weekday {
		week := household.WeekOf(now)
		filed, err := r.source.CheckinExists(ctx, week)
		if err != nil {
			return nil, fmt.Errorf("check weekly checkin: %w", err)
		}
		if !filed {
			out = append(out, Candidate{
				Key: fmt.Sprintf("checkin:%s", week),
				Draft: notifications.Draft{
					Title:    "Weekly check-in",
					Message:  "Nobody has filed a check-in this week. How is the house doing?",
					Kind:     notifications.KindReminder,
					Category: notifications.CategoryGeneral,
					Priority: notifications.PriorityLow,
				},
			})
		}
	}

	if now.Day() == 1 {
		out = append(out, Candidate{
			Key: fmt.Sprintf("general:%s", now.Format(monthFormat)),
			Draft: notifications.Draft{
				Title:    "Monthly household review",
				Message:  "A new month started. Review chores, expenses, and upcoming events.",
				Kind:     notifications.KindInfo,
				Category: notifications.CategoryGeneral,
				Priority: notifications.PriorityLow,
			},
		})
	}
	return out, nil
}
