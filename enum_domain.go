// enum_domain.go: domains backed by a condition enumeration.
//
// An enumeration type describes its own condition table through the Enum
// constraint, so a domain can be built from the type alone. Two variants:
//
//   - EnumKindDomain: condition table only. Mints Kinds; has no incidents.
//   - EnumDomain: the same table plus a Ring of incidents. Mints Statuses.
//
// Neither variant is internally synchronized. Raise mutates the ring; confine
// a domain's raises to one goroutine or use a Local registry.
package xgxstatus

import (
	"fmt"
	"sync/atomic"
)

// ConditionEntry describes one condition of an enumeration.
type ConditionEntry struct {
	Name    string // canonical short name, e.g. "EAGAIN"
	Message string // description; Name is used when empty
}

func (c ConditionEntry) message() string {
	if c.Message != "" {
		return c.Message
	}
	return c.Name
}

// Enum is the constraint for condition enumerations. Conditions returns the
// table indexed by the enumeration's values, starting at zero.
//
// An Enum may also implement:
//
//	DomainName() string   // name of its process-wide domain
//	EquivalentTo(E) bool  // cross-condition equivalence within the domain
type Enum interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	Conditions() []ConditionEntry
}

// EnumKindDomain is a condition-table-only domain.
type EnumKindDomain[E Enum] struct {
	id    uint16
	name  string
	table []ConditionEntry
}

// NewEnumKindDomain builds a kind-only domain for E. An empty name defaults to
// "enum_kind_domain_<id>".
func NewEnumKindDomain[E Enum](name string, opts ...DomainOption) *EnumKindDomain[E] {
	d := &EnumKindDomain[E]{}
	d.init(name, "enum_kind_domain", resolveDomainOptions(opts))
	return d
}

func (d *EnumKindDomain[E]) init(name, fallback string, o domainOptions) {
	var zero E
	table := zero.Conditions()
	precondition(len(table) > 0, "condition table is not empty")
	precondition(len(table) <= maxCapacity, "condition ids fit 16 bits")
	for _, c := range table {
		precondition(c.Name != "", "every condition has a name")
	}
	id := o.id
	if id == 0 {
		id = AllocateDomainID()
	}
	if name == "" {
		name = fmt.Sprintf("%s_%d", fallback, id)
	}
	d.id = id
	d.name = name
	d.table = table
}

func (d *EnumKindDomain[E]) ID() uint16   { return d.id }
func (d *EnumKindDomain[E]) Name() string { return d.name }

// Conditions returns a copy of the condition table.
func (d *EnumKindDomain[E]) Conditions() []ConditionEntry {
	out := make([]ConditionEntry, len(d.table))
	copy(out, d.table)
	return out
}

// index validates cond against the table and returns its condition id.
func (d *EnumKindDomain[E]) index(cond E) uint64 {
	precondition(cond >= 0 && uint64(cond) < uint64(len(d.table)), "condition within domain table")
	return uint64(cond)
}

func (d *EnumKindDomain[E]) entry(c Code) ConditionEntry {
	precondition(c.Domain() == d.id, "code minted by this domain")
	precondition(int(c.Condition()) < len(d.table), "condition within domain table")
	return d.table[c.Condition()]
}

func (d *EnumKindDomain[E]) MakeKindCode(condition uint64) Code {
	return NewCode(uint64(d.id), condition, 0)
}

func (d *EnumKindDomain[E]) KindMessage(k Kind) string {
	return d.entry(k.code).message()
}

// ConditionName returns the canonical name of c's condition.
func (d *EnumKindDomain[E]) ConditionName(c Code) string {
	return d.entry(c).Name
}

// ConditionOf converts c's condition field back into the enumeration.
func (d *EnumKindDomain[E]) ConditionOf(c Code) E {
	d.entry(c)
	return E(c.Condition())
}

// Lookup finds a condition by its canonical name.
func (d *EnumKindDomain[E]) Lookup(name string) (E, bool) {
	for i, c := range d.table {
		if c.Name == name {
			return E(i), true
		}
	}
	var zero E
	return zero, false
}

// Watch returns the Kind for cond. It never touches incident storage.
func (d *EnumKindDomain[E]) Watch(cond E) Kind {
	return Kind{code: d.MakeKindCode(d.index(cond)), domain: d}
}

// EnumDomain is a full domain: the condition table of E plus a ring of
// incidents.
type EnumDomain[E Enum] struct {
	EnumKindDomain[E]
	ring   Ring
	raised atomic.Uint64
}

// NewEnumDomain builds a full domain for E with a ring of DefaultCapacity
// incidents unless WithCapacity says otherwise. An empty name defaults to
// "enum_domain_<id>".
func NewEnumDomain[E Enum](name string, opts ...DomainOption) *EnumDomain[E] {
	o := resolveDomainOptions(opts)
	d := &EnumDomain[E]{}
	d.init(name, "enum_domain", o)
	d.ring.init(o.capacity)
	return d
}

func (d *EnumDomain[E]) MakeBaseCode(condition, incident uint64) Code {
	return NewCode(uint64(d.id), condition, incident)
}

func (d *EnumDomain[E]) incident(s Status) Incident {
	d.entry(s.code)
	return d.ring.At(s.code.Incident())
}

// StatusMessage falls back to the condition's message for incidents raised
// without one, so the result is never empty.
func (d *EnumDomain[E]) StatusMessage(s Status) string {
	if msg := d.incident(s).Message; msg != "" {
		return msg
	}
	return d.table[s.code.Condition()].message()
}

func (d *EnumDomain[E]) StatusLocation(s Status) Location {
	return d.incident(s).Location
}

func (d *EnumDomain[E]) StatusPlatformError(s Status) int {
	return d.incident(s).PlatformError
}

// HasEquivalentCondition consults E's EquivalentTo method, when it has one.
// Codes from other domains are never equivalent.
func (d *EnumDomain[E]) HasEquivalentCondition(a Status, b Code) bool {
	if a.code.Domain() != d.id || b.Domain() != d.id {
		return false
	}
	if int(a.code.Condition()) >= len(d.table) || int(b.Condition()) >= len(d.table) {
		return false
	}
	ca, cb := E(a.code.Condition()), E(b.Condition())
	if eq, ok := any(ca).(interface{ EquivalentTo(E) bool }); ok {
		return eq.EquivalentTo(cb)
	}
	return false
}

// Record stores in and returns the code of the new incident. Domains that
// compose an EnumDomain use it to mint Statuses that refer to themselves:
//
//	code := d.EnumDomain.Record(cond, in)
//	return xgxstatus.NewStatus(code, d)
func (d *EnumDomain[E]) Record(cond E, in Incident) Code {
	condition := d.index(cond)
	slot := d.ring.Put(in)
	d.raised.Add(1)
	return d.MakeBaseCode(condition, uint64(slot))
}

// Raise records an incident of cond with an optional message and no location.
func (d *EnumDomain[E]) Raise(cond E, message string) Status {
	return Status{base{code: d.Record(cond, Incident{Message: message}), domain: d}}
}

// RaiseHere is Raise plus the caller's location.
func (d *EnumDomain[E]) RaiseHere(cond E, message string) Status {
	in := Incident{Message: message, Location: callerLocation(1)}
	return Status{base{code: d.Record(cond, in), domain: d}}
}

// RaiseIncident records a fully specified incident.
func (d *EnumDomain[E]) RaiseIncident(cond E, in Incident) Status {
	return Status{base{code: d.Record(cond, in), domain: d}}
}

// clearIncidents forgets every retained incident. The raised counter keeps
// counting.
func (d *EnumDomain[E]) clearIncidents() { d.ring.Reset() }

// Cursor is the slot the next raise will write.
func (d *EnumDomain[E]) Cursor() int { return d.ring.Cursor() }

// Capacity is the number of incidents retained before overwrite.
func (d *EnumDomain[E]) Capacity() int { return d.ring.Cap() }

// DomainStats is a point-in-time view of a domain, safe to read from any
// goroutine.
type DomainStats struct {
	ID       uint16
	Name     string
	Capacity int
	Raised   uint64 // incidents recorded since construction
}

func (d *EnumDomain[E]) Stats() DomainStats {
	return DomainStats{
		ID:       d.id,
		Name:     d.name,
		Capacity: len(d.ring.entries),
		Raised:   d.raised.Load(),
	}
}
