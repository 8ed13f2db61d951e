// Package dedup tracks which rule-period pairs have already produced a
// notification. A dedup key encodes rule identity plus its natural period
// (for example "chore:4f0c...:2026-08-26" or "expense:2026-08"), so a rule
// checked every few minutes still fires at most once per period.
package dedup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/landon-studio/Rm8-dash-sub001/pkg/clock"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/kvstore"
	"github.com/landon-studio/Rm8-dash-sub001/pkg/logger"
)

// StateParams configure one dedup state document.
type StateParams struct {
	Logger *logger.Logger
	KV     kvstore.Store
	// Key is the KV document name, e.g. "dedupState_reminders". Separate
	// documents keep independent flows (reminders, email digest) from
	// sharing a persist cadence.
	Key   string
	Clock clock.Clock
}

// State is a persisted map from dedup key to the instant it last fired.
// Entries are created lazily and never deleted; a stale entry is harmless
// because its period suffix can never recur.
type State struct {
	logg  *logger.Logger
	kv    kvstore.Store
	key   string
	clock clock.Clock

	mu    sync.Mutex
	fired map[string]time.Time
}

// NewState loads the persisted markers. A missing or unreadable document
// starts empty; the worst case is one duplicate notification per rule after
// a corrupted store, which the next successful persist repairs.
func NewState(ctx context.Context, params StateParams) (*State, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.KV == nil {
		return nil, fmt.Errorf("kv store required")
	}
	if params.Key == "" {
		return nil, fmt.Errorf("storage key required")
	}
	cl := params.Clock
	if cl == nil {
		cl = clock.System{}
	}

	s := &State{
		logg:  params.Logger,
		kv:    params.KV,
		key:   params.Key,
		clock: cl,
		fired: make(map[string]time.Time),
	}

	var stored map[string]time.Time
	found, err := params.KV.Get(ctx, params.Key, &stored)
	if err != nil {
		params.Logger.Error(ctx, "dedup state unreadable, starting empty", err)
	} else if found && stored != nil {
		s.fired = stored
	}
	return s, nil
}

// HasFired reports whether the exact key has already fired. Unknown keys are
// simply false, never an error.
func (s *State) HasFired(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.fired[key]
	return ok
}

// MarkFired records the key as fired now and persists the full marker map.
// Persistence failures are logged and swallowed; the in-memory marker still
// guards the rest of this process's lifetime.
func (s *State) MarkFired(ctx context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fired[key] = s.clock.Now().UTC()
	if err := s.kv.Set(ctx, s.key, s.fired); err != nil {
		s.logg.Error(ctx, "failed to persist dedup state", err)
	}
}
