package reminders

import (
	"context"
	"testing"
	"time"

	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
)

// First Sunday of April 2025 is the 6th.
func aprilDay(day int) time.Time {
	return time.Date(2025, time.April, day, 10, 0, 0, 0, time.UTC)
}

func TestHouseMeetingCountdownSteps(t *testing.T) {
	rule := NewHouseMeetingRule(time.Sunday)

	cases := []struct {
		day      int
		wantKey  string
		wantHigh bool
	}{
		{3, "meeting:2025-04:d3", false},
		{5, "meeting:2025-04:d1", false},
		{6, "meeting:2025-04:d0", true},
	}
	for _, tc := range cases {
		got, err := rule.Evaluate(context.Background(), aprilDay(tc.day))
		if err != nil {
			t.Fatalf("day %d: %v", tc.day, err)
		}
		if len(got) != 1 {
			t.Fatalf("day %d: expected 1 candidate, got %d", tc.day, len(got))
		}
		if got[0].Key != tc.wantKey {
			t.Fatalf("day %d: key %q, want %q", tc.day, got[0].Key, tc.wantKey)
		}
		high := got[0].Draft.Priority == notifications.PriorityHigh
		if high != tc.wantHigh {
			t.Fatalf("day %d: priority %s", tc.day, got[0].Draft.Priority)
		}
	}
}

func TestHouseMeetingQuietOutsideCountdown(t *testing.T) {
	rule := NewHouseMeetingRule(time.Sunday)

	for _, day := range []int{1, 2, 4} {
		got, err := rule.Evaluate(context.Background(), aprilDay(day))
		if err != nil {
			t.Fatalf("day %d: %v", day, err)
		}
		if len(got) != 0 {
			t.Fatalf("day %d: expected no candidates, got %d", day, len(got))
		}
	}
}

func TestHouseMeetingQuietAfterMeetingPassed(t *testing.T) {
	rule := NewHouseMeetingRule(time.Sunday)

	got, err := rule.Evaluate(context.Background(), aprilDay(10))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("past this month's meeting, expected no candidates, got %d", len(got))
	}
}

// Sydney starts daylight saving on the first Sunday of October, so the day
// after that Sunday's meeting is only 23 hours long.
func TestHouseMeetingQuietAcrossDaylightSavingStart(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	rule := NewHouseMeetingRule(time.Sunday)

	monday := time.Date(2025, time.October, 6, 10, 0, 0, 0, loc)
	got, err := rule.Evaluate(context.Background(), monday)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("day after the meeting, expected no candidates, got %+v", got)
	}
}

func TestDaysBetweenIgnoresClockShifts(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}

	meeting := time.Date(2025, time.October, 5, 0, 0, 0, 0, loc)
	cases := []struct {
		day  int
		want int
	}{
		{4, 1},
		{5, 0},
		{6, -1},
	}
	for _, tc := range cases {
		now := time.Date(2025, time.October, tc.day, 10, 0, 0, 0, loc)
		if got := daysBetween(now, meeting); got != tc.want {
			t.Fatalf("Oct %d: daysBetween = %d, want %d", tc.day, got, tc.want)
		}
	}
}
