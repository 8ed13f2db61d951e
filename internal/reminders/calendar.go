package reminders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/db/models"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/enums"
)

type eventSource interface {
	EventsBetween(ctx context.Context, from, to time.Time) ([]models.CalendarEvent, error)
}

var (
	meetingKeywords = []string{"meeting", "call", "sync", "standup", "appointment"}
	billKeywords    = []string{"bill", "rent", "payment", "utilities", "insurance"}
)

// CalendarRule derives reminders from upcoming calendar events: a one-hour
// look-ahead for meeting-like events and a next-day look-ahead for
// bill-like events. Classification keys off the event kind when set and
// falls back to keywords in the free-text title.
type CalendarRule struct {
	source eventSource
}

// NewCalendarRule builds the calendar-derived reminder rule.
func NewCalendarRule(source eventSource) (*CalendarRule, error) {
	if source == nil {
		return nil, fmt.Errorf("event source required")
	}
	return &CalendarRule{source: source}, nil
}

func (r *CalendarRule) Name() string { return "calendar-reminders" }

func (r *CalendarRule) Evaluate(ctx context.Context, now time.Time) ([]Candidate, error) {
	// Two days covers both look-ahead windows.
	events, err := r.source.EventsBetween(ctx, now, now.AddDate(0, 0, 2))
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}

	tomorrow := now.AddDate(0, 0, 1).Format(dayFormat)
	var out []Candidate
	for _, event := range events {
		start := event.StartAt.In(now.Location())

		if isMeetingLike(event) && start.After(now) && !start.After(now.Add(time.Hour)) {
			due := event.StartAt
			out = append(out, Candidate{
				Key: fmt.Sprintf("cal-meeting:%s:%s", event.ID, start.Format(dayFormat)),
				Draft: notifications.Draft{
					Title:    fmt.Sprintf("Upcoming: %s", event.Title),
					Message:  fmt.Sprintf("%s starts at %s.", event.Title, start.Format("15:04")),
					Kind:     notifications.KindReminder,
					Category: notifications.CategoryMeeting,
					Priority: notifications.PriorityHigh,
					DueDate:  &due,
				},
			})
			continue
		}

		if isBillLike(event) && start.Format(dayFormat) == tomorrow {
			due := event.StartAt
			out = append(out, Candidate{
				Key: fmt.Sprintf("cal-bill:%s:%s", event.ID, start.Format(dayFormat)),
				Draft: notifications.Draft{
					Title:    fmt.Sprintf("Due tomorrow: %s", event.Title),
					Message:  fmt.Sprintf("%s is due tomorrow (%s).", event.Title, start.Format("Jan 2")),
					Kind:     notifications.KindReminder,
					Category: notifications.CategoryExpense,
					Priority: notifications.PriorityMedium,
					DueDate:  &due,
				},
			})
		}
	}
	return out, nil
}

func isMeetingLike(event models.CalendarEvent) bool {
	if event.Kind == enums.EventMeeting {
		return true
	}
	return containsAny(event.Title, meetingKeywords)
}

func isBillLike(event models.CalendarEvent) bool {
	if event.Kind == enums.EventBill {
		return true
	}
	return containsAny(event.Title, billKeywords)
}

func containsAny(text string, keywords []string) bool {
	lowered := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
