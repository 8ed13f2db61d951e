package dedup

import (
	"context"
	"testing"
	"time"

	"github.com/landon-studio/Rm8-dash-sub001/pkg/clock"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/kvstore"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

func newTestState(t *testing.T, kv kvstore.Store, key string) *State {
	t.Helper()
	s, err := NewState(context.Background(), StateParams{
		Logger: logger.New(logger.Options{ServiceName: "dedup-test"}),
		KV:     kv,
		Key:    key,
		Clock:  clock.Fixed{At: time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)},
	})
	if err != nil {
		t.Fatalf("construct state: %v", err)
	}
	return s
}

func TestMarkFiredGuardsKey(t *testing.T) {
	s := newTestState(t, kvstore.NewMemory(), "dedupState_reminders")

	if s.HasFired("chore:abc:2025-03-05") {
		t.Fatalf("fresh state should report unfired")
	}
	s.MarkFired(context.Background(), "chore:abc:2025-03-05")
	if !s.HasFired("chore:abc:2025-03-05") {
		t.Fatalf("key should report fired after MarkFired")
	}
	if s.HasFired("chore:abc:2025-03-06") {
		t.Fatalf("a different period key must stay independent")
	}
}

func TestStatePersistsAcrossRestart(t *testing.T) {
	kv := kvstore.NewMemory()
	first := newTestState(t, kv, "dedupState_reminders")
	first.MarkFired(context.Background(), "expense:2025-03")

	second := newTestState(t, kv, "dedupState_reminders")
	if !second.HasFired("expense:2025-03") {
		t.Fatalf("fired marker should survive reload")
	}
}

func TestSeparateDocumentsAreIndependent(t *testing.T) {
	kv := kvstore.NewMemory()
	reminders := newTestState(t, kv, "dedupState_reminders")
	digest := newTestState(t, kv, "dedupState_digest")

	reminders.MarkFired(context.Background(), "checkin:2025-03-03")
	if digest.HasFired("checkin:2025-03-03") {
		t.Fatalf("digest document must not see reminder markers")
	}
}

func TestUnreadableDocumentStartsEmpty(t *testing.T) {
	kv := kvstore.NewMemory()
	kv.SetRaw("dedupState_reminders", []byte("not json"))

	s := newTestState(t, kv, "dedupState_reminders")
	if s.HasFired("anything") {
		t.Fatalf("corrupt document should start empty")
	}
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	kv := kvstore.NewMemory()
	kv.FailSets = true
	s := newTestState(t, kv, "dedupState_reminders")

	s.MarkFired(context.Background(), "petcare:morning-feeding:2025-03-05")
	if !s.HasFired("petcare:morning-feeding:2025-03-05") {
		t.Fatalf("in-memory marker should hold despite persist failure")
	}
}
