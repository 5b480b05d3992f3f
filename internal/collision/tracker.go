// Package collision tracks column names added to a column set and detects
// duplicate names and xxHash64 collisions between distinct names.
package collision

import (
	"fmt"

	"github.com/arloliu/logintpack/errs"
)

// Tracker remembers the names seen so far, keyed by their hash.
type Tracker struct {
	names map[uint64]string
	order []string
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names: make(map[uint64]string),
		order: make([]string, 0),
	}
}

// Track records name under id.
//
// Columns are looked up by id, so two distinct names sharing an id cannot be
// stored in the same set and produce ErrHashCollision.
func (t *Tracker) Track(name string, id uint64) error {
	if name == "" {
		return errs.ErrInvalidColumnName
	}

	if existing, ok := t.names[id]; ok {
		if existing == name {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateColumn, name)
		}

		return fmt.Errorf("%w: %q and %q share id %#x", errs.ErrHashCollision, existing, name, id)
	}

	t.names[id] = name
	t.order = append(t.order, name)

	return nil
}

// Names returns the tracked names in insertion order.
func (t *Tracker) Names() []string {
	return t.order
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.order)
}

// Reset forgets every tracked name.
func (t *Tracker) Reset() {
	clear(t.names)
	t.order = t.order[:0]
}
