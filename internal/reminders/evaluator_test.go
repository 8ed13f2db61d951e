package reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/landon-studio/Rm8-dash-sub001/internal/dedup"
	"github.com/landon-studio/Rm8-dash-sub001/internal/notifications"
	"github.com/landon-studio/Rm8-dash-sub001/internal/settings"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/clock"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/kvstore"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

var testLogger = logger.New(logger.Options{ServiceName: "reminders-test"})

type stubSettings struct {
	cfg settings.Settings
}

func (s stubSettings) Load(context.Context) settings.Settings { return s.cfg }

type captureDeliverer struct {
	delivered []notifications.Record
}

func (c *captureDeliverer) Deliver(_ context.Context, rec notifications.Record) {
	c.delivered = append(c.delivered, rec)
}

type staticRule struct {
	name       string
	candidates []Candidate
	err        error
	calls      int
}

func (r *staticRule) Name() string { return r.name }

func (r *staticRule) Evaluate(context.Context, time.Time) ([]Candidate, error) {
	r.calls++
	return r.candidates, r.err
}

type evaluatorFixture struct {
	evaluator  *Evaluator
	store      *notifications.Store
	dedup      *dedup.State
	dispatcher *captureDeliverer
}

func newEvaluatorFixture(t *testing.T, cfg settings.Settings, rules ...Rule) evaluatorFixture {
	t.Helper()
	ctx := context.Background()
	kv := kvstore.NewMemory()

	store, err := notifications.NewStore(ctx, notifications.StoreParams{
		Logger: testLogger,
		KV:     kv,
		Clock:  clock.Fixed{At: time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)},
	})
	if err != nil {
		t.Fatalf("construct store: %v", err)
	}

	state, err := dedup.NewState(ctx, dedup.StateParams{
		Logger: testLogger,
		KV:     kv,
		Key:    "dedupState_reminders",
	})
	if err != nil {
		t.Fatalf("construct dedup state: %v", err)
	}

	dispatcher := &captureDeliverer{}
	evaluator, err := NewEvaluator(EvaluatorParams{
		Name:       "test-sweep",
		Logger:     testLogger,
		Rules:      rules,
		Settings:   stubSettings{cfg: cfg},
		Dedup:      state,
		Store:      store,
		Dispatcher: dispatcher,
		Clock:      clock.Fixed{At: time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)},
	})
	if err != nil {
		t.Fatalf("construct evaluator: %v", err)
	}
	return evaluatorFixture{evaluator: evaluator, store: store, dedup: state, dispatcher: dispatcher}
}

func TestEvaluatorDedupAcrossSweeps(t *testing.T) {
	rule := &staticRule{
		name: "static",
		candidates: []Candidate{{
			Key:   "chore:abc:2025-03-05",
			Draft: notifications.Draft{Title: "Chore due", Category: notifications.CategoryChore},
		}},
	}
	fx := newEvaluatorFixture(t, settings.Defaults(), rule)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := fx.evaluator.Run(ctx); err != nil {
			t.Fatalf("sweep %d: %v", i, err)
		}
	}

	if got := fx.store.List(ctx); len(got) != 1 {
		t.Fatalf("expected exactly 1 notification after 3 sweeps, got %d", len(got))
	}
	if rule.calls != 3 {
		t.Fatalf("rule should be re-evaluated every sweep, ran %d times", rule.calls)
	}
	if len(fx.dispatcher.delivered) != 1 {
		t.Fatalf("expected exactly 1 delivery, got %d", len(fx.dispatcher.delivered))
	}
}

func TestEvaluatorSkipsDisabledCategory(t *testing.T) {
	rule := &staticRule{
		name: "static",
		candidates: []Candidate{{
			Key:   "chore:abc:2025-03-05",
			Draft: notifications.Draft{Title: "Chore due", Category: notifications.CategoryChore},
		}},
	}
	cfg := settings.Defaults()
	cfg.ChoreReminders = false
	fx := newEvaluatorFixture(t, cfg, rule)
	ctx := context.Background()

	if err := fx.evaluator.Run(ctx); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if got := fx.store.List(ctx); len(got) != 0 {
		t.Fatalf("disabled category must never create notifications, got %d", len(got))
	}
	if fx.dedup.HasFired("chore:abc:2025-03-05") {
		t.Fatalf("skipped candidates must not burn their dedup key")
	}
}

func TestEvaluatorGeneralCategoryAlwaysEnabled(t *testing.T) {
	rule := &staticRule{
		name: "static",
		candidates: []Candidate{{
			Key:   "general:2025-03",
			Draft: notifications.Draft{Title: "Review", Category: notifications.CategoryGeneral},
		}},
	}
	cfg := settings.Settings{} // every flag off
	fx := newEvaluatorFixture(t, cfg, rule)

	if err := fx.evaluator.Run(context.Background()); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if got := fx.store.List(context.Background()); len(got) != 1 {
		t.Fatalf("general notifications have no gating flag, got %d", len(got))
	}
}

func TestEvaluatorFailingRuleDoesNotBlockOthers(t *testing.T) {
	failing := &staticRule{name: "broken", err: errors.New("boom")}
	working := &staticRule{
		name: "working",
		candidates: []Candidate{{
			Key:   "checkin:2025-03-03",
			Draft: notifications.Draft{Title: "Check in", Category: notifications.CategoryGeneral},
		}},
	}
	fx := newEvaluatorFixture(t, settings.Defaults(), failing, working)

	err := fx.evaluator.Run(context.Background())
	if err == nil {
		t.Fatalf("sweep should report the failing rule")
	}
	if got := fx.store.List(context.Background()); len(got) != 1 {
		t.Fatalf("working rule should still create its notification, got %d", len(got))
	}
}

func TestEvaluatorIgnoresEmptyKeys(t *testing.T) {
	rule := &staticRule{
		name:       "static",
		candidates: []Candidate{{Draft: notifications.Draft{Title: "keyless"}}},
	}
	fx := newEvaluatorFixture(t, settings.Defaults(), rule)

	if err := fx.evaluator.Run(context.Background()); err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if got := fx.store.List(context.Background()); len(got) != 0 {
		t.Fatalf("candidates without keys must be dropped, got %d", len(got))
	}
}

func TestEvaluatorExpenseThresholdScenario(t *testing.T) {
	// Monthly sum 1200 over the 1000 budget: one medium expense warning,
	// and a second sweep the same day adds nothing.
	source := &fakeExpenseSource{expenses: monthExpenses("alex", "600", "600")}
	rule, err := NewExpenseRule(source, dec("800"), dec("1000"), dec("200"))
	if err != nil {
		t.Fatalf("construct rule: %v", err)
	}
	fx := newEvaluatorFixture(t, settings.Defaults(), rule)
	ctx := context.Background()

	if err := fx.evaluator.Run(ctx); err != nil {
		t.Fatalf("first sweep: %v", err)
	}
	if err := fx.evaluator.Run(ctx); err != nil {
		t.Fatalf("second sweep: %v", err)
	}

	got := fx.store.List(ctx)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 notification, got %d", len(got))
	}
	if got[0].Category != notifications.CategoryExpense || got[0].Priority != notifications.PriorityMedium {
		t.Fatalf("unexpected notification: category=%s priority=%s", got[0].Category, got[0].Priority)
	}
}
