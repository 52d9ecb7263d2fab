package xgxstatus

// Incident is one recorded occurrence of a condition.
type Incident struct {
	Message       string
	Location      Location
	PlatformError int
}

// maxCapacity is the number of distinct incident slots a 16-bit field can
// address.
const maxCapacity = fieldMax + 1

// Ring is a fixed-capacity circular store of incidents. Once full, each Put
// overwrites the oldest entry. A Ring is not safe for concurrent use.
type Ring struct {
	next    int
	entries []Incident
}

// NewRing allocates a ring with room for capacity incidents
// (1 <= capacity <= 65536).
func NewRing(capacity int) *Ring {
	r := &Ring{}
	r.init(capacity)
	return r
}

func (r *Ring) init(capacity int) {
	precondition(capacity > 0, "ring capacity is positive")
	precondition(capacity <= maxCapacity, "ring slots fit 16 bits")
	r.entries = make([]Incident, capacity)
	r.next = 0
}

// Put stores in at the write cursor, advances the cursor modulo the capacity
// and returns the slot used.
func (r *Ring) Put(in Incident) uint16 {
	slot := r.next
	r.next++
	if r.next == len(r.entries) {
		r.next = 0
	}
	r.entries[slot] = in
	return uint16(slot)
}

// At returns the incident currently stored in slot.
func (r *Ring) At(slot uint16) Incident {
	precondition(int(slot) < len(r.entries), "incident slot within capacity")
	return r.entries[slot]
}

// Reset empties every slot and rewinds the cursor.
func (r *Ring) Reset() {
	clear(r.entries)
	r.next = 0
}

// Cursor is the slot the next Put will write.
func (r *Ring) Cursor() int { return r.next }

// Cap is the number of slots.
func (r *Ring) Cap() int { return len(r.entries) }
