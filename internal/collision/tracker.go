package collision

import (
	"strings"

	"github.com/arloliu/uvcval/errs"
)

// Tracker records entry names by their 64-bit identifier and detects
// duplicates and hash collisions while a snapshot is being encoded.
type Tracker struct {
	names        map[uint64]string // id -> first name seen with that id
	nameList     []string          // insertion order
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:    make(map[uint64]string),
		nameList: make([]string, 0),
	}
}

// Track records name under id.
//
// Returns:
//   - errs.ErrInvalidEntryName if name is empty
//   - errs.ErrDuplicateEntry if name was already tracked (case-insensitive)
//
// Two different names sharing an id are not an error: the collision flag is
// set and both names are kept, so readers must compare names after an id match.
func (t *Tracker) Track(name string, id uint64) error {
	if name == "" {
		return errs.ErrInvalidEntryName
	}

	if existing, ok := t.names[id]; ok {
		if strings.EqualFold(existing, name) {
			return errs.ErrDuplicateEntry
		}
		for _, n := range t.nameList {
			if strings.EqualFold(n, name) {
				return errs.ErrDuplicateEntry
			}
		}
		t.hasCollision = true
	} else {
		t.names[id] = name
	}

	t.nameList = append(t.nameList, name)

	return nil
}

// HasCollision returns true if two tracked names share an id.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in insertion order.
func (t *Tracker) Names() []string {
	return t.nameList
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.nameList)
}

// Reset clears all tracked names and the collision flag.
func (t *Tracker) Reset() {
	clear(t.names)
	t.nameList = t.nameList[:0]
	t.hasCollision = false
}
