// Package collision detects cell name problems during blob encoding.
//
// The blob index stores 64-bit xxHash IDs, never the names themselves, so
// two names hashing to the same ID would be indistinguishable at decode
// time. The tracker catches that at encode time, where the names are still
// available.
package collision

import (
	"github.com/arloliu/fixedstr/errs"
)

// Tracker records cell names and their hash IDs during encoding.
type Tracker struct {
	names map[uint64]string
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names: make(map[uint64]string),
	}
}

// Track records one cell name with its hash ID.
//
// Returns errs.ErrInvalidCellName for an empty name,
// errs.ErrCellAlreadyAdded when the same name is tracked twice, and
// errs.ErrHashCollision when a different name maps to an already-tracked
// ID.
func (t *Tracker) Track(name string, id uint64) error {
	if name == "" {
		return errs.ErrInvalidCellName
	}

	if existing, ok := t.names[id]; ok {
		if existing == name {
			return errs.ErrCellAlreadyAdded
		}

		return errs.ErrHashCollision
	}

	t.names[id] = name

	return nil
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.names)
}

// Reset clears all tracked names so the tracker can serve a new blob.
func (t *Tracker) Reset() {
	clear(t.names)
}
