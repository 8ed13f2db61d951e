package settings

import (
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 5, hour, minute, 0, 0, time.UTC)
}

func quiet(start, end string) Settings {
	s := Defaults()
	s.QuietHours = QuietHours{Enabled: true, Start: start, End: end}
	return s
}

func TestSuppressedDisabled(t *testing.T) {
	s := Defaults()
	if Suppressed(at(23, 30), s) {
		t.Fatalf("disabled quiet hours should never suppress")
	}
}

func TestSuppressedWrappingWindow(t *testing.T) {
	s := quiet("22:00", "08:00")
	cases := []struct {
		hour, minute int
		want         bool
	}{
		{23, 30, true},
		{7, 0, true},
		{9, 0, false},
		{22, 0, true},
		{8, 0, true},
		{8, 1, false},
		{21, 59, false},
	}
	for _, tc := range cases {
		if got := Suppressed(at(tc.hour, tc.minute), s); got != tc.want {
			t.Fatalf("Suppressed at %02d:%02d = %v, want %v", tc.hour, tc.minute, got, tc.want)
		}
	}
}

func TestSuppressedNonWrappingWindowInclusive(t *testing.T) {
	s := quiet("13:00", "15:00")
	cases := []struct {
		hour, minute int
		want         bool
	}{
		{12, 59, false},
		{13, 0, true},
		{14, 0, true},
		{15, 0, true},
		{15, 1, false},
	}
	for _, tc := range cases {
		if got := Suppressed(at(tc.hour, tc.minute), s); got != tc.want {
			t.Fatalf("Suppressed at %02d:%02d = %v, want %v", tc.hour, tc.minute, got, tc.want)
		}
	}
}

func TestSuppressedMalformedWindowNeverSuppresses(t *testing.T) {
	if Suppressed(at(23, 0), quiet("late", "08:00")) {
		t.Fatalf("malformed start should disable suppression")
	}
	if Suppressed(at(23, 0), quiet("22:00", "25:99")) {
		t.Fatalf("malformed end should disable suppression")
	}
}
