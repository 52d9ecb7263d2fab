// domain.go: the capabilities that give meaning to a packed Code.
//
// A domain is the sole authority for interpreting the condition and incident
// fields of the codes it mints. Instead of one wide interface, each capability
// is a small interface; a concrete domain implements the subset it needs:
//
//   - a kind-only domain: Named + KindInspector + KindBuilder (KindDomain)
//   - a full domain: all of the above plus BaseInspector, Equivalence and
//     BaseBuilder (Domain)
//
// Domains are expected to outlive every Status and Kind they produce. Status
// and Kind hold a plain interface reference; nothing is refcounted.
package xgxstatus

import (
	"sync/atomic"
)

// Named identifies a domain. IDs are unique per process.
type Named interface {
	ID() uint16
	Name() string
}

// KindInspector resolves the message describing a condition.
type KindInspector interface {
	KindMessage(k Kind) string
}

// BaseInspector resolves incident detail for a Status.
type BaseInspector interface {
	StatusMessage(s Status) string
	StatusLocation(s Status) Location
	StatusPlatformError(s Status) int
}

// Equivalence declares cross-condition matches, e.g. EAGAIN and EWOULDBLOCK.
// b is the code of a Status or of a Kind; only its domain and condition are
// meaningful.
type Equivalence interface {
	HasEquivalentCondition(a Status, b Code) bool
}

// KindBuilder mints condition-scoped codes (incident field zero).
type KindBuilder interface {
	MakeKindCode(condition uint64) Code
}

// BaseBuilder mints incident-scoped codes.
type BaseBuilder interface {
	MakeBaseCode(condition, incident uint64) Code
}

// KindDomain is the capability set of a condition-table-only domain.
type KindDomain interface {
	Named
	KindInspector
	KindBuilder
}

// Domain is the full capability set a Status needs.
type Domain interface {
	KindDomain
	BaseInspector
	Equivalence
	BaseBuilder
}

// Coded is implemented by every value carrying a packed code: Kind, Status
// and Detached.
type Coded interface {
	Code() Code
}

// NoEquivalence is an embeddable Equivalence that declares no cross-condition
// matches.
type NoEquivalence struct{}

func (NoEquivalence) HasEquivalentCondition(Status, Code) bool { return false }

// domainCounter is the only process-wide mutable state of the package.
var domainCounter atomic.Uint32

// AllocateDomainID returns a fresh, process-unique domain id. IDs start at 1;
// 0 is reserved for the zero Code.
func AllocateDomainID() uint16 {
	id := domainCounter.Add(1)
	invariant(id <= fieldMax, "domain ids fit 16 bits")
	return uint16(id)
}

// NewKind wraps a condition-scoped code minted by d. Custom domains use it;
// enum-backed domains call it internally.
func NewKind(code Code, d KindInspector) Kind {
	precondition(d != nil, "kind has a domain")
	precondition(code.Incident() == 0, "kind code has no incident")
	return Kind{code: code, domain: d}
}

// NewStatus wraps an incident-scoped code minted by d.
func NewStatus(code Code, d Domain) Status {
	precondition(d != nil, "status has a domain")
	return Status{base{code: code, domain: d}}
}
