// Package state owns the canonical in-memory snapshot of applications and
// tags between polls.
//
// Every writer (the poller and the mutation reconciler) goes through the
// Store's methods, which serialize updates behind one mutex. Readers get
// copies, so a snapshot handed out is never mutated underneath them and a
// half-applied update is never observable.
package state

import (
	"sync"
	"time"

	"github.com/rolandbouwer/appdash/internal/remote"
)

// Snapshot is one consistent view of the canonical state.
type Snapshot struct {
	Applications []remote.Application
	Tags         []remote.Tag
	LastChecked  time.Time
	Loading      bool
	Refreshing   bool
	Err          string
}

// Store is the single owned state container for one session.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewStore creates an empty store in the loading state, matching a session
// that has not completed its first poll yet.
func NewStore() *Store {
	return &Store{snap: Snapshot{Loading: true}}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.copy()
}

// BeginRefresh marks a poll cycle as started. Existing data stays visible
// while the cycle runs.
func (s *Store) BeginRefresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Loading = true
	s.snap.Refreshing = true
}

// ApplySnapshot replaces applications and tags wholesale from a completed
// poll cycle, clears any banner error, and stamps the check time.
func (s *Store) ApplySnapshot(apps []remote.Application, tags []remote.Tag, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Applications = apps
	s.snap.Tags = tags
	s.snap.LastChecked = now
	s.snap.Err = ""
	s.snap.Loading = false
	s.snap.Refreshing = false
}

// FailRefresh records a failed poll cycle. Stale applications and tags stay
// in place; a blank dashboard is worse than an old one.
func (s *Store) FailRefresh(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Err = msg
	s.snap.Loading = false
	s.snap.Refreshing = false
}

// AppendApplication adds a server-acknowledged application to the end of the
// list, mirroring the order the next poll will report.
func (s *Store) AppendApplication(app remote.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Applications = append(s.snap.Applications, app)
}

// ReplaceApplication swaps the record with the same identity in place.
// Unknown identities are ignored; the next poll reconciles them.
func (s *Store) ReplaceApplication(app remote.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.snap.Applications {
		if s.snap.Applications[i].ID == app.ID {
			s.snap.Applications[i] = app
			return
		}
	}
}

// RemoveApplication drops the record with the given identity.
func (s *Store) RemoveApplication(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apps := s.snap.Applications
	for i := range apps {
		if apps[i].ID == id {
			s.snap.Applications = append(apps[:i:i], apps[i+1:]...)
			return
		}
	}
}

// AppendTag adds a server-acknowledged tag to the end of the list.
func (s *Store) AppendTag(tag remote.Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Tags = append(s.snap.Tags, tag)
}

// RemoveTag drops the tag with the given identity. Applications that still
// name the tag keep it until the next poll; that staleness window is part
// of the service's eventual-consistency contract.
func (s *Store) RemoveTag(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tags := s.snap.Tags
	for i := range tags {
		if tags[i].ID == id {
			s.snap.Tags = append(tags[:i:i], tags[i+1:]...)
			return
		}
	}
}

// copy deep-copies the slices so callers can't mutate shared backing arrays.
func (snap Snapshot) copy() Snapshot {
	out := snap
	if snap.Applications != nil {
		out.Applications = make([]remote.Application, len(snap.Applications))
		copy(out.Applications, snap.Applications)
	}
	if snap.Tags != nil {
		out.Tags = make([]remote.Tag, len(snap.Tags))
		copy(out.Tags, snap.Tags)
	}
	return out
}
