// code.go: the packed 64-bit status code.
//
// Layout (most significant first):
//
//	bits 48..63  reserved, always zero
//	bits 32..47  domain
//	bits 16..31  condition
//	bits  0..15  incident
//
// Because the domain occupies the high bits, the numeric order of two codes is
// the lexicographic order of (domain, condition, incident).
package xgxstatus

import (
	"cmp"
	"fmt"
)

// Code identifies a domain, one of its conditions and, optionally, one
// incident slot. The zero Code is reserved for "no status".
type Code uint64

const (
	fieldBits = 16
	fieldMax  = 1<<fieldBits - 1

	domainShift    = 32
	conditionShift = 16
	incidentShift  = 0

	domainMask    Code = fieldMax << domainShift
	conditionMask Code = fieldMax << conditionShift
	incidentMask  Code = fieldMax << incidentShift

	kindCompareMask = domainMask | conditionMask
	codeCompareMask = domainMask | conditionMask | incidentMask
)

// NewCode packs domain, condition and incident into a Code. Each value must
// fit in 16 bits; anything wider is a contract violation.
func NewCode(domain, condition, incident uint64) Code {
	precondition(domain <= fieldMax, "domain fits 16 bits")
	precondition(condition <= fieldMax, "condition fits 16 bits")
	precondition(incident <= fieldMax, "incident fits 16 bits")
	return Code(domain<<domainShift | condition<<conditionShift | incident<<incidentShift)
}

// Domain returns the domain field.
func (c Code) Domain() uint16 { return uint16((c & domainMask) >> domainShift) }

// Condition returns the condition field.
func (c Code) Condition() uint16 { return uint16((c & conditionMask) >> conditionShift) }

// Incident returns the incident slot field; zero for kind codes.
func (c Code) Incident() uint16 { return uint16((c & incidentMask) >> incidentShift) }

// WithDomain returns c with its domain field replaced.
func (c Code) WithDomain(domain uint64) Code {
	precondition(domain <= fieldMax, "domain fits 16 bits")
	return c&^domainMask | Code(domain)<<domainShift
}

// WithCondition returns c with its condition field replaced.
func (c Code) WithCondition(condition uint64) Code {
	precondition(condition <= fieldMax, "condition fits 16 bits")
	return c&^conditionMask | Code(condition)<<conditionShift
}

// WithIncident returns c with its incident field replaced.
func (c Code) WithIncident(incident uint64) Code {
	precondition(incident <= fieldMax, "incident fits 16 bits")
	return c&^incidentMask | Code(incident)<<incidentShift
}

// KindCode returns c with the incident field cleared.
func (c Code) KindCode() Code { return c & kindCompareMask }

// SameKind reports whether c and o share domain and condition, regardless of
// incident.
func (c Code) SameKind(o Code) bool { return c&kindCompareMask == o&kindCompareMask }

// SameCode reports whether all three fields of c and o match.
func (c Code) SameCode(o Code) bool { return c&codeCompareMask == o&codeCompareMask }

// Compare orders codes by (domain, condition, incident).
// It returns -1, 0 or +1 like cmp.Compare.
func (c Code) Compare(o Code) int { return cmp.Compare(c, o) }

// IsZero reports whether c is the reserved zero code.
func (c Code) IsZero() bool { return c == 0 }

// String renders the three fields as zero-padded hex: "dddd:cccc:iiii".
func (c Code) String() string {
	return fmt.Sprintf("%04x:%04x:%04x", c.Domain(), c.Condition(), c.Incident())
}
