package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/db/models"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/enums"
)

type choreSource interface {
	ListActiveChores(ctx context.Context) ([]models.Chore, error)
}

// ChoreRule reminds about recurring chores that are due today and not yet
// completed. Daily chores are due every day; weekly chores on their due
// weekday. One key per chore per day.
type ChoreRule struct {
	source choreSource
}

// NewChoreRule builds the chore reminder rule.
func NewChoreRule(source choreSource) (*ChoreRule, error) {
	if source == nil {
		return nil, fmt.Errorf("chore source required")
	}
	return &ChoreRule{source: source}, nil
}

func (r *ChoreRule) Name() string { return "chore-reminders" }

func (r *ChoreRule) Evaluate(ctx context.Context, now time.Time) ([]Candidate, error) {
	chores, err := r.source.ListActiveChores(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chores: %w", err)
	}

	var out []Candidate
	for _, chore := range chores {
		if !dueToday(chore, now) || chore.CompletedOn(now) {
			continue
		}
		due := endOfDay(now)
		out = append(out, Candidate{
			Key: fmt.Sprintf("chore:%s:%s", chore.ID, now.Format(dayFormat)),
			Draft: notifications.Draft{
				Title:    fmt.Sprintf("Chore due: %s", chore.Title),
				Message:  fmt.Sprintf("%s is due today and assigned to %s.", chore.Title, chore.AssignedTo),
				Kind:     notifications.KindReminder,
				Category: notifications.CategoryChore,
				Priority: notifications.PriorityMedium,
				DueDate:  &due,
			},
		})
	}
	return out, nil
}

func dueToday(chore models.Chore, now time.Time) bool {
	switch chore.Frequency {
	case enums.ChoreDaily:
		return true
	case enums.ChoreWeekly:
		return now.Weekday() == chore.DueWeekday
	}
	return false
}

func endOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
}
