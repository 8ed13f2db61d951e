package reminders

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
	"github.com/landon-studio/Rm8-dash-sub001/internal/settings"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/clock"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/metrics"
)

type settingsLoader interface {
	Load(ctx context.Context) settings.Settings
}

type dedupState interface {
	HasFired(key string) bool
	MarkFired(ctx context.Context, key string)
}

type notificationCreator interface {
	Create(ctx context.Context, draft notifications.Draft) notifications.Record
}

type deliverer interface {
	Deliver(ctx context.Context, rec notifications.Record)
}

// EvaluatorParams configure one evaluator job.
type EvaluatorParams struct {
	Name       string
	Logger     *logger.Logger
	Rules      []Rule
	Settings   settingsLoader
	Dedup      dedupState
	Store      notificationCreator
	Dispatcher deliverer
	Metrics    *metrics.SweepMetrics
	Clock      clock.Clock
}

// Evaluator runs a rule catalog as one sweep job. Per candidate it checks
// the category's settings flag and the dedup key, creates the notification,
// marks the key fired, and hands the record to the dispatcher. One failing
// rule never blocks the others; errors aggregate into the job result.
type Evaluator struct {
	name       string
	logg       *logger.Logger
	rules      []Rule
	settings   settingsLoader
	dedup      dedupState
	store      notificationCreator
	dispatcher deliverer
	metrics    *metrics.SweepMetrics
	clock      clock.Clock
}

// NewEvaluator wires an evaluator job.
func NewEvaluator(params EvaluatorParams) (*Evaluator, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("name required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Settings == nil {
		return nil, fmt.Errorf("settings loader required")
	}
	if params.Dedup == nil {
		return nil, fmt.Errorf("dedup state required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("notification store required")
	}
	cl := params.Clock
	if cl == nil {
		cl = clock.System{}
	}
	return &Evaluator{
		name:       params.Name,
		logg:       params.Logger,
		rules:      params.Rules,
		settings:   params.Settings,
		dedup:      params.Dedup,
		store:      params.Store,
		dispatcher: params.Dispatcher,
		metrics:    params.Metrics,
		clock:      cl,
	}, nil
}

func (e *Evaluator) Name() string { return e.name }

// Run executes one full evaluation pass across the catalog.
func (e *Evaluator) Run(ctx context.Context) error {
	now := e.clock.Now()
	cfg := e.settings.Load(ctx)

	var errs error
	for _, rule := range e.rules {
		candidates, err := rule.Evaluate(ctx, now)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", rule.Name(), err))
			continue
		}
		for _, candidate := range candidates {
			e.emit(ctx, cfg, rule, candidate)
		}
	}
	return errs
}

func (e *Evaluator) emit(ctx context.Context, cfg settings.Settings, rule Rule, candidate Candidate) {
	if candidate.Key == "" {
		return
	}
	if !categoryEnabled(cfg, candidate.Draft.Category) {
		return
	}
	if e.dedup.HasFired(candidate.Key) {
		return
	}

	rec := e.store.Create(ctx, candidate.Draft)
	e.dedup.MarkFired(ctx, candidate.Key)
	if e.metrics != nil {
		e.metrics.IncCreated(string(rec.Category))
	}

	logCtx := e.logg.WithFields(ctx, map[string]any{
		"rule":            rule.Name(),
		"dedup_key":       candidate.Key,
		"notification_id": rec.ID,
	})
	e.logg.Info(logCtx, "notification created")

	if e.dispatcher != nil {
		e.dispatcher.Deliver(ctx, rec)
	}
}

func categoryEnabled(cfg settings.Settings, category notifications.Category) bool {
	switch category {
	case notifications.CategoryChore:
		return cfg.ChoreReminders
	case notifications.CategoryExpense:
		return cfg.ExpenseAlerts
	case notifications.CategoryPetCare:
		return cfg.PetCareAlerts
	case notifications.CategoryMeeting:
		return cfg.MeetingReminders
	}
	return true
}
