package notifications

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/landon-studio/Rm8-dash-sub001/pkg/clock"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/kvstore"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

// StorageKey is the KV document holding the full notification log.
const StorageKey = "notifications"

// StoreParams configure the notification store.
type StoreParams struct {
	Logger *logger.Logger
	KV     kvstore.Store
	Clock  clock.Clock
}

// Store owns the ordered notification log. The newest record sits at the
// front. All mutations serialize on an internal mutex, and every operation
// re-reads the persisted document first, so the api and worker processes see
// each other's records instead of diverging from boot-time snapshots.
//
// Persistence failures are logged and swallowed: when the document cannot be
// read the last good in-memory copy answers instead, and a missed write costs
// at most one restart's worth of history.
type Store struct {
	logg  *logger.Logger
	kv    kvstore.Store
	clock clock.Clock

	mu      sync.Mutex
	records []Record
}

// NewStore loads the persisted log and returns the store. A missing or
// unreadable document starts an empty log rather than failing.
func NewStore(ctx context.Context, params StoreParams) (*Store, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.KV == nil {
		return nil, fmt.Errorf("kv store required")
	}
	cl := params.Clock
	if cl == nil {
		cl = clock.System{}
	}

	s := &Store{
		logg:  params.Logger,
		kv:    params.KV,
		clock: cl,
	}

	var stored []Record
	found, err := params.KV.Get(ctx, StorageKey, &stored)
	if err != nil {
		params.Logger.Error(ctx, "notification log unreadable, starting empty", err)
	} else if found {
		s.records = stored
	}
	return s, nil
}

// Create assigns identity and timestamp to the draft, prepends it to the
// log, persists, and returns the stored record.
func (s *Store) Create(ctx context.Context, draft Draft) Record {
	d := draft.normalized()
	rec := Record{
		ID:        uuid.New(),
		Title:     d.Title,
		Message:   d.Message,
		Kind:      d.Kind,
		Category:  d.Category,
		Priority:  d.Priority,
		CreatedAt: s.clock.Now().UTC(),
		Read:      false,
		DueDate:   d.DueDate,
		ActionURL: d.ActionURL,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked(ctx)
	s.records = append([]Record{rec}, s.records...)
	s.persistLocked(ctx)
	return rec
}

// List returns the log newest-first.
func (s *Store) List(ctx context.Context) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked(ctx)
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// ListUnread returns unread records, newest-first.
func (s *Store) ListUnread(ctx context.Context) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked(ctx)
	var out []Record
	for _, rec := range s.records {
		if !rec.Read {
			out = append(out, rec)
		}
	}
	return out
}

// MarkRead flips one record's read flag. Unknown or already-read ids are
// benign no-ops.
func (s *Store) MarkRead(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked(ctx)
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}
		if s.records[i].Read {
			return
		}
		s.records[i].Read = true
		s.persistLocked(ctx)
		return
	}
}

// MarkAllRead marks every record read with a single persist.
func (s *Store) MarkAllRead(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked(ctx)
	changed := false
	for i := range s.records {
		if !s.records[i].Read {
			s.records[i].Read = true
			changed = true
		}
	}
	if changed {
		s.persistLocked(ctx)
	}
}

// Delete removes a record permanently. Unknown ids are no-ops.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked(ctx)
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.persistLocked(ctx)
			return
		}
	}
}

// ClearAll empties the log. Dedup state lives elsewhere, so clearing history
// does not re-arm fired rules.
func (s *Store) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked(ctx)
	if len(s.records) == 0 {
		return
	}
	s.records = nil
	s.persistLocked(ctx)
}

// refreshLocked replaces the cached log with the persisted document. A
// missing or unreadable document leaves the cached copy in place, so a
// process whose writes are failing keeps answering from what it last knew.
func (s *Store) refreshLocked(ctx context.Context) {
	var stored []Record
	found, err := s.kv.Get(ctx, StorageKey, &stored)
	if err != nil {
		s.logg.Warn(ctx, "notification log unreadable, keeping cached copy")
		return
	}
	if found {
		s.records = stored
	}
}

func (s *Store) persistLocked(ctx context.Context) {
	records := s.records
	if records == nil {
		records = []Record{}
	}
	if err := s.kv.Set(ctx, StorageKey, records); err != nil {
		s.logg.Error(ctx, "failed to persist notification log", err)
	}
}
