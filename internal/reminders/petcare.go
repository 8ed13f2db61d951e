package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/enums"
)

type petCareSource interface {
	PetCareDone(ctx context.Context, task enums.PetCareTask, day string) (bool, error)
}

type petCareWindow struct {
	task  enums.PetCareTask
	label string
	// opensAt is the minute of day after which the task counts as overdue.
	opensAt int
}

// PetCareRule nags about the three fixed daily pet-care tasks once each of
// their windows opens. Each task deduplicates independently per day.
type PetCareRule struct {
	source  petCareSource
	windows []petCareWindow
}

// NewPetCareRule builds the pet-care rule. The window values are the
// product's reminder times in HH:MM form.
func NewPetCareRule(source petCareSource, morning, midday, evening string) (*PetCareRule, error) {
	if source == nil {
		return nil, fmt.Errorf("pet care source required")
	}

	specs := []struct {
		task   enums.PetCareTask
		label  string
		window string
	}{
		{enums.PetCareMorningFeeding, "Morning feeding", morning},
		{enums.PetCareMiddayWalk, "Midday walk", midday},
		{enums.PetCareEveningFeeding, "Evening feeding", evening},
	}

	rule := &PetCareRule{source: source}
	for _, spec := range specs {
		parsed, err := time.Parse("15:04", spec.window)
		if err != nil {
			return nil, fmt.Errorf("invalid pet care window %q: %w", spec.window, err)
		}
		rule.windows = append(rule.windows, petCareWindow{
			task:    spec.task,
			label:   spec.label,
			opensAt: parsed.Hour()*60 + parsed.Minute(),
		})
	}
	return rule, nil
}

func (r *PetCareRule) Name() string { return "pet-care-reminders" }

func (r *PetCareRule) Evaluate(ctx context.Context, now time.Time) ([]Candidate, error) {
	day := now.Format(dayFormat)
	nowMinutes := now.Hour()*60 + now.Minute()

	var out []Candidate
	for _, window := range r.windows {
		if nowMinutes < window.opensAt {
			continue
		}
		done, err := r.source.PetCareDone(ctx, window.task, day)
		if err != nil {
			return nil, fmt.Errorf("check pet care %s: %w", window.task, err)
		}
		if done {
			continue
		}
		out = append(out, Candidate{
			Key: fmt.Sprintf("petcare:%s:%s", window.task, day),
			Draft: notifications.Draft{
				Title:    fmt.Sprintf("Pet care: %s", window.label),
				Message:  fmt.Sprintf("%s hasn't been done yet today.", window.label),
				Kind:     notifications.KindReminder,
				Category: notifications.CategoryPetCare,
				Priority: notifications.PriorityMedium,
			},
		})
	}
	return out, nil
}
