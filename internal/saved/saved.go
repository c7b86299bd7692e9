// Package saved keeps the membership set of bookmarked jobs.
package saved

import "github.com/spigell/jnt-tracker/internal/store"

const savedKey = "jnt-saved-jobs"

// Set is the persisted collection of saved job ids. Insertion order is
// preserved.
type Set struct {
	store store.Store
}

func New(s store.Store) *Set {
	return &Set{store: s}
}

func (s *Set) IDs() []string {
	var ids []string
	store.GetJSON(s.store, savedKey, &ids)
	return ids
}

func (s *Set) Has(id string) bool {
	for _, saved := range s.IDs() {
		if saved == id {
			return true
		}
	}
	return false
}

// Toggle flips the membership of id and reports the new state.
func (s *Set) Toggle(id string) bool {
	ids := s.IDs()
	for i, saved := range ids {
		if saved == id {
			s.store.Set(savedKey, append(ids[:i], ids[i+1:]...))
			return false
		}
	}
	s.store.Set(savedKey, append(ids, id))
	return true
}
