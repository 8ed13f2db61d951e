// Package reminders holds the fixed rule catalog and the sweep evaluator
// that turns rule matches into notifications at most once per period.
package reminders

import (
	"context"
	"time"

	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
)

// Candidate pairs a would-be notification with the dedup key for its
// period. The evaluator owns all side effects: a candidate only becomes a
// stored notification when its key has not fired yet.
type Candidate struct {
	Key   string
	Draft notifications.Draft
}

// Rule computes zero or more candidates from the current time and external
// data. Evaluate must stay free of side effects so conditions are testable
// without timers or stores.
type Rule interface {
	Name() string
	Evaluate(ctx context.Context, now time.Time) ([]Candidate, error)
}

const (
	dayFormat   = "2006-01-02"
	monthFormat = "2006-01"
)
