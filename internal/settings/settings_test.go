package settings

import (
	"context"
	"testing"

	"github.com/landon-studio/Rm8-dash-sub001/pkg/kvstore"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

func newTestManager(t *testing.T, kv kvstore.Store) *Manager {
	t.Helper()
	mgr, err := NewManager(ManagerParams{
		Logger: logger.New(logger.Options{ServiceName: "settings-test"}),
		KV:     kv,
	})
	if err != nil {
		t.Fatalf("construct manager: %v", err)
	}
	return mgr
}

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	mgr := newTestManager(t, kvstore.NewMemory())

	got := mgr.Load(context.Background())
	if got != Defaults() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoadReturnsDefaultsWhenUnreadable(t *testing.T) {
	kv := kvstore.NewMemory()
	kv.SetRaw(StorageKey, []byte("{not json"))
	mgr := newTestManager(t, kv)

	got := mgr.Load(context.Background())
	if got != Defaults() {
		t.Fatalf("expected defaults after unreadable doc, got %+v", got)
	}
}

func TestLoadMergesPartialStoredDocument(t *testing.T) {
	kv := kvstore.NewMemory()
	kv.SetRaw(StorageKey, []byte(`{"emailNotifications":true,"quietHours":{"enabled":true}}`))
	mgr := newTestManager(t, kv)

	got := mgr.Load(context.Background())
	if !got.EmailNotifications {
		t.Fatalf("stored emailNotifications not applied")
	}
	if !got.QuietHours.Enabled {
		t.Fatalf("stored quietHours.enabled not applied")
	}
	if got.QuietHours.Start != "22:00" || got.QuietHours.End != "08:00" {
		t.Fatalf("quiet hours window should keep defaults, got %+v", got.QuietHours)
	}
	if !got.DesktopNotifications || !got.ChoreReminders {
		t.Fatalf("unpatched fields should keep defaults, got %+v", got)
	}
}

func TestUpdateMergesAndPersists(t *testing.T) {
	kv := kvstore.NewMemory()
	mgr := newTestManager(t, kv)

	off := false
	start := "21:30"
	got := mgr.Update(context.Background(), Patch{
		ChoreReminders: &off,
		QuietHours:     &QuietHoursPatch{Start: &start},
	})
	if got.ChoreReminders {
		t.Fatalf("choreReminders should be off after patch")
	}
	if got.QuietHours.Start != "21:30" || got.QuietHours.End != "08:00" {
		t.Fatalf("quiet hours should merge sub-fields, got %+v", got.QuietHours)
	}

	// A fresh manager over the same store observes the persisted state.
	reloaded := newTestManager(t, kv).Load(context.Background())
	if reloaded != got {
		t.Fatalf("reloaded settings %+v differ from updated %+v", reloaded, got)
	}
}

func TestLoadObservesAnotherManagersUpdate(t *testing.T) {
	kv := kvstore.NewMemory()
	api := newTestManager(t, kv)
	worker := newTestManager(t, kv)
	ctx := context.Background()

	if worker.Load(ctx).ChoreReminders != true {
		t.Fatalf("expected default choreReminders before the update")
	}

	off := false
	api.Update(ctx, Patch{ChoreReminders: &off})

	if worker.Load(ctx).ChoreReminders {
		t.Fatalf("update through one manager should reach the other's next load")
	}
}

func TestUpdateSwallowsPersistFailure(t *testing.T) {
	kv := kvstore.NewMemory()
	kv.FailSets = true
	mgr := newTestManager(t, kv)

	on := true
	got := mgr.Update(context.Background(), Patch{EmailNotifications: &on})
	if !got.EmailNotifications {
		t.Fatalf("update result should reflect the patch despite persist failure")
	}
	if !mgr.Load(context.Background()).EmailNotifications {
		t.Fatalf("in-memory settings should stay authoritative despite persist failure")
	}
}
