package usecase

import (
	"slices"
	"sync"

	"life-admin/internal/task"
)

// snapshot holds the result of the latest applied refetch. Each refetch
// takes a ticket before calling the store; a result is applied only when
// no refetch with a later ticket has been applied already.
type snapshot struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
	tasks   []task.Task
	loaded  bool
}

func (s *snapshot) ticket() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// apply stores tasks fetched under ticket and reports whether they were fresh.
func (s *snapshot) apply(ticket uint64, tasks []task.Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ticket <= s.applied {
		return false
	}
	s.applied = ticket
	s.tasks = tasks
	s.loaded = true
	return true
}

func (s *snapshot) all() ([]task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.tasks), s.loaded
}

func (s *snapshot) find(id string) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// reset drops the cached list. Refetches already in flight are treated as
// stale so they cannot restore it.
func (s *snapshot) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = s.issued
	s.tasks = nil
	s.loaded = false
}
