package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/landon-studio/Rm8-dash-sub001/pkg/clock"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/kvstore"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

func newTestStore(t *testing.T, kv kvstore.Store) *Store {
	t.Helper()
	s, err := NewStore(context.Background(), StoreParams{
		Logger: logger.New(logger.Options{ServiceName: "notifications-test"}),
		KV:     kv,
		Clock:  clock.Fixed{At: time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)},
	})
	if err != nil {
		t.Fatalf("construct store: %v", err)
	}
	return s
}

func TestCreateOrdersNewestFirst(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemory())
	ctx := context.Background()

	s.Create(ctx, Draft{Title: "A"})
	s.Create(ctx, Draft{Title: "B"})
	s.Create(ctx, Draft{Title: "C"})

	got := s.List(ctx)
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i, want := range []string{"C", "B", "A"} {
		if got[i].Title != want {
			t.Fatalf("position %d: got %q, want %q", i, got[i].Title, want)
		}
	}
}

func TestCreateNormalizesEmptyFields(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemory())

	rec := s.Create(context.Background(), Draft{Title: "bare"})
	if rec.Kind != KindInfo || rec.Category != CategoryGeneral || rec.Priority != PriorityMedium {
		t.Fatalf("unexpected normalization: %+v", rec)
	}
	if rec.ID == uuid.Nil {
		t.Fatalf("record should get an id")
	}
	if rec.Read {
		t.Fatalf("new records start unread")
	}
}

func TestMarkReadIsIdempotent(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemory())
	ctx := context.Background()

	rec := s.Create(ctx, Draft{Title: "A"})
	s.MarkRead(ctx, rec.ID)
	s.MarkRead(ctx, rec.ID)
	s.MarkRead(ctx, uuid.New()) // unknown id is a no-op

	unread := s.ListUnread(ctx)
	if len(unread) != 0 {
		t.Fatalf("expected no unread records, got %d", len(unread))
	}
	all := s.List(ctx)
	if len(all) != 1 || !all[0].Read {
		t.Fatalf("record should stay present and read: %+v", all)
	}
}

func TestMarkAllRead(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemory())
	ctx := context.Background()

	s.Create(ctx, Draft{Title: "A"})
	s.Create(ctx, Draft{Title: "B"})
	s.MarkAllRead(ctx)

	if unread := s.ListUnread(ctx); len(unread) != 0 {
		t.Fatalf("expected no unread records, got %d", len(unread))
	}
}

func TestDeleteRemovesOnlyTarget(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemory())
	ctx := context.Background()

	s.Create(ctx, Draft{Title: "A"})
	b := s.Create(ctx, Draft{Title: "B"})
	s.Create(ctx, Draft{Title: "C"})

	s.Delete(ctx, b.ID)
	s.Delete(ctx, uuid.New()) // unknown id is a no-op

	got := s.List(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	for _, rec := range got {
		if rec.Title == "B" {
			t.Fatalf("deleted record still listed")
		}
	}
}

func TestClearAll(t *testing.T) {
	s := newTestStore(t, kvstore.NewMemory())
	ctx := context.Background()

	s.Create(ctx, Draft{Title: "A"})
	s.ClearAll(ctx)
	if got := s.List(ctx); len(got) != 0 {
		t.Fatalf("expected empty log, got %d records", len(got))
	}
}

func TestPersistenceAcrossRestart(t *testing.T) {
	kv := kvstore.NewMemory()
	first := newTestStore(t, kv)
	ctx := context.Background()

	rec := first.Create(ctx, Draft{Title: "A", Category: CategoryChore})
	first.MarkRead(ctx, rec.ID)

	second := newTestStore(t, kv)
	got := second.List(ctx)
	if len(got) != 1 {
		t.Fatalf("expected 1 record after reload, got %d", len(got))
	}
	if got[0].ID != rec.ID || !got[0].Read || got[0].Category != CategoryChore {
		t.Fatalf("reloaded record mismatch: %+v", got[0])
	}
}

func TestSecondStoreSeesFirstStoresRecords(t *testing.T) {
	kv := kvstore.NewMemory()
	ctx := context.Background()
	api := newTestStore(t, kv)
	worker := newTestStore(t, kv)

	rec := worker.Create(ctx, Draft{Title: "Chore due", Category: CategoryChore})

	got := api.List(ctx)
	if len(got) != 1 || got[0].ID != rec.ID {
		t.Fatalf("second store should list the first store's record, got %+v", got)
	}
}

func TestMutationThroughOneStoreKeepsOtherStoresRecords(t *testing.T) {
	kv := kvstore.NewMemory()
	ctx := context.Background()
	api := newTestStore(t, kv)
	worker := newTestStore(t, kv)

	reminder := worker.Create(ctx, Draft{Title: "Chore due", Category: CategoryChore})
	api.MarkAllRead(ctx)
	api.Create(ctx, Draft{Title: "From the api"})

	got := worker.List(ctx)
	if len(got) != 2 {
		t.Fatalf("expected both records after cross-store mutations, got %d", len(got))
	}
	var found bool
	for _, rec := range got {
		if rec.ID == reminder.ID {
			found = true
			if !rec.Read {
				t.Fatalf("mark-all through the other store should reach this record")
			}
		}
	}
	if !found {
		t.Fatalf("worker-created record lost after api-side persist: %+v", got)
	}
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	kv := kvstore.NewMemory()
	kv.FailSets = true
	s := newTestStore(t, kv)
	ctx := context.Background()

	rec := s.Create(ctx, Draft{Title: "A"})
	if rec.Title != "A" {
		t.Fatalf("create should succeed despite persist failure")
	}
	if got := s.List(ctx); len(got) != 1 {
		t.Fatalf("in-memory log should stay authoritative, got %d records", len(got))
	}
}

func TestUnreadableLogStartsEmpty(t *testing.T) {
	kv := kvstore.NewMemory()
	kv.SetRaw(StorageKey, []byte("{corrupt"))

	s := newTestStore(t, kv)
	if got := s.List(context.Background()); len(got) != 0 {
		t.Fatalf("expected empty log after corrupt doc, got %d records", len(got))
	}
}
