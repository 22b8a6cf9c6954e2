package catalog

import (
	"errors"
	"strings"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// Snapshot is an immutable in-memory view of the exercise catalog.
// It is built once (at boot, from the repo) and can be shared across
// arbitrarily many concurrent readers without synchronization.
type Snapshot struct {
	byID    map[string]*Exercise // key: lowercased exercise id
	ordered []Exercise
}

func NewSnapshot(exercises []Exercise) *Snapshot {
	s := &Snapshot{
		byID:    make(map[string]*Exercise, len(exercises)),
		ordered: make([]Exercise, len(exercises)),
	}
	copy(s.ordered, exercises)
	for i := range s.ordered {
		s.byID[strings.ToLower(s.ordered[i].ID)] = &s.ordered[i]
	}
	return s
}

// Resolve looks up an exercise by id, case-insensitively.
func (s *Snapshot) Resolve(exerciseID string) (*Exercise, bool) {
	e, ok := s.byID[strings.ToLower(exerciseID)]
	return e, ok
}

// Get is Resolve with an error instead of a bool, for callers that
// treat a miss as a failure.
func (s *Snapshot) Get(exerciseID string) (*Exercise, error) {
	e, ok := s.Resolve(exerciseID)
	if !ok {
		return nil, ErrExerciseNotFound
	}
	return e, nil
}

func (s *Snapshot) Len() int {
	return len(s.ordered)
}

// List returns the catalog entries in load order. The returned slice
// must not be modified.
func (s *Snapshot) List() []Exercise {
	return s.ordered
}
