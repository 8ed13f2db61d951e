package reminders

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/db/models"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/enums"
)

type fakeEventSource struct {
	events []models.CalendarEvent
	err    error
}

func (f *fakeEventSource) EventsBetween(context.Context, time.Time, time.Time) ([]models.CalendarEvent, error) {
	return f.events, f.err
}

func newCalendarRule(t *testing.T, events ...models.CalendarEvent) *CalendarRule {
	t.Helper()
	rule, err := NewCalendarRule(&fakeEventSource{events: events})
	if err != nil {
		t.Fatalf("construct rule: %v", err)
	}
	return rule
}

func TestCalendarRuleMeetingWithinTheHour(t *testing.T) {
	now := marchNow()
	event := models.CalendarEvent{
		ID:      uuid.New(),
		Title:   "House sync",
		Kind:    enums.EventMeeting,
		StartAt: now.Add(30 * time.Minute),
	}
	rule := newCalendarRule(t, event)

	got, err := rule.Evaluate(context.Background(), now)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	wantKey := fmt.Sprintf("cal-meeting:%s:2025-03-05", event.ID)
	if got[0].Key != wantKey {
		t.Fatalf("key %q, want %q", got[0].Key, wantKey)
	}
	if got[0].Draft.Priority != notifications.PriorityHigh {
		t.Fatalf("imminent meetings are high priority, got %s", got[0].Draft.Priority)
	}
}

func TestCalendarRuleMeetingBeyondTheHourIsQuiet(t *testing.T) {
	now := marchNow()
	rule := newCalendarRule(t, models.CalendarEvent{
		ID:      uuid.New(),
		Title:   "Planning meeting",
		StartAt: now.Add(2 * time.Hour),
	})

	got, err := rule.Evaluate(context.Background(), now)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %d", len(got))
	}
}

func TestCalendarRuleKeywordClassification(t *testing.T) {
	now := marchNow()
	rule := newCalendarRule(t, models.CalendarEvent{
		ID:      uuid.New(),
		Title:   "Dentist appointment",
		Kind:    enums.EventGeneral,
		StartAt: now.Add(45 * time.Minute),
	})

	got, err := rule.Evaluate(context.Background(), now)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("keyword-matched title should classify as meeting-like, got %d", len(got))
	}
}

func TestCalendarRuleBillDueTomorrow(t *testing.T) {
	now := marchNow()
	event := models.CalendarEvent{
		ID:      uuid.New(),
		Title:   "Rent",
		Kind:    enums.EventBill,
		StartAt: now.AddDate(0, 0, 1),
	}
	rule := newCalendarRule(t, event)

	got, err := rule.Evaluate(context.Background(), now)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	wantKey := fmt.Sprintf("cal-bill:%s:2025-03-06", event.ID)
	if got[0].Key != wantKey {
		t.Fatalf("key %q, want %q", got[0].Key, wantKey)
	}
	if got[0].Draft.Category != notifications.CategoryExpense {
		t.Fatalf("bill reminders land in the expense category, got %s", got[0].Draft.Category)
	}
}

func TestCalendarRuleBillTodayIsQuiet(t *testing.T) {
	now := marchNow()
	rule := newCalendarRule(t, models.CalendarEvent{
		ID:      uuid.New(),
		Title:   "Utilities payment",
		Kind:    enums.EventBill,
		StartAt: now.Add(3 * time.Hour),
	})

	got, err := rule.Evaluate(context.Background(), now)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("bills only remind the day before, got %d candidates", len(got))
	}
}
