package roster

import (
	"slices"
	"sync"
)

// Store keeps the activity registry in memory only (no persistence).
// All access is serialized by a mutex; concurrent signups for the last
// open slot cannot both succeed.
type Store struct {
	activities map[string]Activity
	mu         sync.Mutex
}

// NewStore creates a store populated with the seed activities.
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset restores the registry to the seed state. Tests call this
// between cases instead of rebuilding the store.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities = Seed()
}

// List returns a copy of every activity keyed by name. It never
// mutates the store, and mutating the result has no effect on it.
func (s *Store) List() map[string]Activity {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string]Activity, len(s.activities))
	for name, activity := range s.activities {
		result[name] = activity.clone()
	}
	return result
}

// Signup adds email to the named activity's roster, preserving signup
// order. Returns ErrActivityNotFound, ErrAlreadySignedUp or
// ErrActivityFull; on any error the roster is unchanged.
func (s *Store) Signup(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	if slices.Contains(activity.Participants, email) {
		return ErrAlreadySignedUp
	}
	if activity.IsFull() {
		return ErrActivityFull
	}

	activity.Participants = append(activity.Participants, email)
	s.activities[name] = activity
	return nil
}

// Remove takes email off the named activity's roster. Returns
// ErrActivityNotFound or ErrParticipantNotFound; on any error the
// roster is unchanged.
func (s *Store) Remove(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return ErrActivityNotFound
	}
	i := slices.Index(activity.Participants, email)
	if i < 0 {
		return ErrParticipantNotFound
	}

	activity.Participants = slices.Delete(slices.Clone(activity.Participants), i, i+1)
	s.activities[name] = activity
	return nil
}
