package collision

// Tracker maps 64-bit key fingerprints to slot positions.
//
// Fingerprints are not unique: two different keys may share one. The tracker
// therefore keeps every slot registered under a fingerprint and resolves a
// lookup with a caller-supplied equality check, so a collision never merges
// distinct keys. It only records that one happened.
type Tracker struct {
	slots        map[uint64][]int // fingerprint -> slots holding keys with that fingerprint
	count        int
	hasCollision bool
}

// NewTracker creates a tracker sized for capacity keys.
func NewTracker(capacity int) *Tracker {
	return &Tracker{
		slots: make(map[uint64][]int, capacity),
	}
}

// Lookup returns the slot registered under hash for which match reports
// true, or false if there is none.
func (t *Tracker) Lookup(hash uint64, match func(slot int) bool) (int, bool) {
	for _, slot := range t.slots[hash] {
		if match(slot) {
			return slot, true
		}
	}

	return 0, false
}

// Track registers slot under hash. Callers must Lookup first; Track does not
// check whether an equal key is already registered.
func (t *Tracker) Track(hash uint64, slot int) {
	if len(t.slots[hash]) > 0 {
		t.hasCollision = true
	}
	t.slots[hash] = append(t.slots[hash], slot)
	t.count++
}

// HasCollision reports whether two tracked keys shared a fingerprint.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Count returns the number of tracked slots.
func (t *Tracker) Count() int {
	return t.count
}
