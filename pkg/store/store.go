// Package store implements the single source of truth for all workshop data:
// an in-memory, observable state container with per-entity mutation actions,
// synchronous durable persistence of a defined snapshot subset, and the cloud
// synchronization actions layered on top of it.
//
// All mutations go through the store's action methods and are serialized by
// one mutex, so reads observe every prior mutation in call order. Update and
// delete on an id that does not exist are silent no-ops; that soft contract
// is deliberate and consumers rely on it.
package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentmapper/agentmapper/pkg/models"
)

// Store holds the workshop state. Construct it with [New]; the zero value is
// not usable.
type Store struct {
	mu    sync.RWMutex
	state State

	// Transient session fields, never part of the persisted snapshot.
	dirty      bool
	syncStatus SyncStatus
	syncError  string

	storage     Storage
	cloud       CloudSyncer
	log         zerolog.Logger
	subscribers []func()
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithCloud attaches the cloud persistence adapter used by the Connect, Load
// and Sync actions. Without it those actions return [ErrNoCloudSyncer].
func WithCloud(c CloudSyncer) Option {
	return func(s *Store) { s.cloud = c }
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// New creates a store with the initial workshop state. A nil storage falls
// back to in-memory storage.
func New(storage Storage, opts ...Option) *Store {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	s := &Store{
		state:      newState(),
		syncStatus: StatusIdle,
		storage:    storage,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore replaces the current state with the snapshot held in storage, if
// one exists. A missing snapshot leaves the fresh initial state in place.
// The restored state is clean: the dirty flag is off.
func (s *Store) Restore() error {
	data, err := s.storage.Load()
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if data == nil {
		return nil
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	s.mu.Lock()
	s.state = st
	s.dirty = false
	s.mu.Unlock()
	s.notify()
	return nil
}

// Subscribe registers fn to run after every committed mutation. Callbacks
// run outside the store lock, in registration order, on the mutating
// goroutine.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// Snapshot returns a copy of the full workshop state. The copy does not
// alias store internals and is safe to hold indefinitely.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Organization returns a copy of the current organization, or nil before the
// workshop has been started.
func (s *Store) Organization() *models.Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Organization == nil {
		return nil
	}
	org := *s.state.Organization
	return &org
}

// CurrentSession returns the 1-based session cursor.
func (s *Store) CurrentSession() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.CurrentSession
}

// IsDirty reports whether the state has changed since the last MarkSaved or
// successful cloud load.
func (s *Store) IsDirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dirty
}

// LastSaved returns the timestamp of the last explicit save, if any.
func (s *Store) LastSaved() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.LastSaved == nil {
		return nil
	}
	t := *s.state.LastSaved
	return &t
}

// MarkDirty raises the dirty flag without touching any collection.
func (s *Store) MarkDirty() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
	s.notify()
}

// MarkSaved clears the dirty flag and stamps LastSaved with the current
// time.
func (s *Store) MarkSaved() {
	s.mu.Lock()
	now := time.Now().UTC()
	s.state.LastSaved = &now
	s.dirty = false
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// ResetWorkshop atomically replaces the entire state with the initial empty
// state, including the organization and all cloud metadata. It is the one
// multi-collection transaction the store offers; no intermediate state is
// observable.
func (s *Store) ResetWorkshop() {
	s.mu.Lock()
	s.state = newState()
	s.dirty = false
	s.syncStatus = StatusIdle
	s.syncError = ""
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
	s.log.Info().Msg("workshop reset")
}

// StartWorkshop creates the organization record and resets the session
// cursor to the first session. Calling it while an organization exists
// replaces that organization but leaves collections alone; use
// [Store.ResetWorkshop] to start over completely.
func (s *Store) StartWorkshop(name string) models.Organization {
	now := time.Now().UTC()
	org := models.Organization{
		ID:             models.NewID(),
		Name:           name,
		CurrentSession: 1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.mutate(func(st *State) {
		st.Organization = &org
		st.CurrentSession = 1
	})
	return org
}

// OrganizationPatch carries the updatable organization fields; nil fields
// are left unchanged.
type OrganizationPatch struct {
	Name *string `json:"name"`
}

// UpdateOrganization merges the patch into the organization and stamps
// UpdatedAt. No-op when no organization exists.
func (s *Store) UpdateOrganization(patch OrganizationPatch) {
	s.mutate(func(st *State) {
		if st.Organization == nil {
			return
		}
		setIf(&st.Organization.Name, patch.Name)
		st.Organization.UpdatedAt = time.Now().UTC()
	})
}

// AdvanceSession moves the session cursor forward one session, capped at
// [SessionCount], and recomputes the organization's completion percentage.
func (s *Store) AdvanceSession() {
	s.setSession(func(cur int) int { return cur + 1 })
}

// SetCurrentSession jumps the session cursor to n, clamped to the valid
// range.
func (s *Store) SetCurrentSession(n int) {
	s.setSession(func(int) int { return n })
}

func (s *Store) setSession(next func(int) int) {
	s.mutate(func(st *State) {
		n := next(st.CurrentSession)
		if n < 1 {
			n = 1
		}
		if n > SessionCount {
			n = SessionCount
		}
		st.CurrentSession = n
		if st.Organization != nil {
			st.Organization.CurrentSession = n
			st.Organization.CompletionPercent = (n - 1) * 100 / (SessionCount - 1)
			st.Organization.UpdatedAt = time.Now().UTC()
		}
	})
}

// mutate applies fn to the state under the write lock, marks the store
// dirty, persists the snapshot, and then notifies subscribers. Every public
// collection action funnels through here, which is what makes mutations
// synchronous, totally ordered, and immediately durable.
func (s *Store) mutate(fn func(st *State)) {
	s.mu.Lock()
	fn(&s.state)
	s.dirty = true
	s.persistLocked()
	s.mu.Unlock()
	s.notify()
}

// persistLocked writes the snapshot to storage. Persistence failures are
// logged rather than surfaced: the in-memory mutation has already happened
// and there is no rollback, matching the fire-and-forget local storage write
// of the original contract.
func (s *Store) persistLocked() {
	data, err := json.Marshal(s.state)
	if err == nil {
		err = s.storage.Save(data)
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("persist workshop snapshot")
	}
}

func (s *Store) notify() {
	s.mu.RLock()
	subs := append([]func(){}, s.subscribers...)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}

// setIf assigns *src to *dst when src is non-nil. Patch structs use pointer
// fields so "absent" and "zero" stay distinguishable.
func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// updateWhere applies apply to the first element matching match, reporting
// whether a match was found. Public update actions intentionally discard the
// report: updating a missing id is a soft no-op, not an error.
func updateWhere[T any](items []T, match func(*T) bool, apply func(*T)) bool {
	for i := range items {
		if match(&items[i]) {
			apply(&items[i])
			return true
		}
	}
	return false
}

// deleteWhere removes the first element matching match, preserving order.
// Deleting a missing id leaves the slice untouched, which makes deletes
// idempotent.
func deleteWhere[T any](items []T, match func(*T) bool) ([]T, bool) {
	for i := range items {
		if match(&items[i]) {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}
