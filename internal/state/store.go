package state

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/codemarket/internal/market"
)

// Snapshot represents the session as the UI should render it.
type Snapshot struct {
	State       market.State
	Revision    uint64
	LastAction  string
	LastUpdated time.Time
}

// Store coordinates dispatches and snapshot reads.
type Store struct {
	dispatchMu sync.Mutex

	mu       sync.RWMutex
	snapshot Snapshot

	log zerolog.Logger
}

// NewStore returns a store holding initial.
func NewStore(initial market.State, logger zerolog.Logger) *Store {
	return &Store{
		snapshot: Snapshot{
			State:       initial.Clone(),
			LastUpdated: time.Now(),
		},
		log: logger.With().Str("component", "store").Logger(),
	}
}

// Dispatch applies a to the current state and publishes the result. Calls are
// serialised; a second Dispatch waits until the first, including its dialogs,
// has finished.
func (s *Store) Dispatch(a market.Action, d market.Dialogs) Snapshot {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	current := s.Snapshot()
	next := market.Apply(current.State, a, d)
	changed := !next.Equal(current.State)

	s.mu.Lock()
	if changed {
		s.snapshot.State = next.Clone()
		s.snapshot.Revision++
	}
	s.snapshot.LastAction = market.ActionName(a)
	s.snapshot.LastUpdated = time.Now()
	published := s.copyLocked()
	s.mu.Unlock()

	s.logTransition(a, current.State, published, changed)
	return published
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

func (s *Store) copyLocked() Snapshot {
	snap := s.snapshot
	snap.State = s.snapshot.State.Clone()
	return snap
}

func (s *Store) logTransition(a market.Action, before market.State, after Snapshot, changed bool) {
	level := zerolog.DebugLevel
	if changed {
		level = zerolog.InfoLevel
	}
	evt := s.log.WithLevel(level).
		Str("action", market.ActionName(a)).
		Uint64("revision", after.Revision).
		Bool("changed", changed).
		Int("listings", after.State.Count())

	if id, ok := affectedID(a, before, after.State); ok {
		evt = evt.Int("listing_id", id)
	}
	evt.Msg(transitionMessage(a, changed))
}

// affectedID names the listing an action was about: the one it created, or
// the one selected when it started.
func affectedID(a market.Action, before, after market.State) (int, bool) {
	switch a := a.(type) {
	case market.Select:
		return a.ID, true
	case market.Create:
		if len(after.Listings) > len(before.Listings) {
			return after.Listings[0].ID, true
		}
	}
	return before.Selected.ID()
}

func transitionMessage(a market.Action, changed bool) string {
	if !changed {
		return "no change"
	}
	switch a.(type) {
	case market.Create:
		return "listing created"
	case market.Update:
		return "listing updated"
	case market.Delete:
		return "listing deleted"
	case market.Purchase:
		return "listing purchased"
	case market.Select, market.Deselect:
		return "selection changed"
	default:
		return "view state changed"
	}
}
