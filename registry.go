// registry.go: process-wide domains keyed by condition enumeration.
//
// StaticDomain[E] returns the one EnumDomain for E, built on first use.
// Construction happens exactly once per enum type: each type gets a slot in a
// sync.Map and the slot's sync.Once guards the build, which gives every caller
// a happens-before edge to the finished domain.
//
// The returned domain is shared by every goroutine that raises E, and raising
// is not synchronized. Keep raises on one goroutine, or use RaiseLocal.
package xgxstatus

import (
	"fmt"
	"reflect"
	"sync"
)

type staticSlot struct {
	once   sync.Once
	domain any
}

var staticDomains sync.Map // reflect.Type -> *staticSlot

// StaticDomain returns the process-wide domain for E. Its name comes from E's
// DomainName method when present, else "static_domain_<id>". Capacity is
// DefaultCapacity.
func StaticDomain[E Enum]() *EnumDomain[E] {
	t := reflect.TypeFor[E]()
	v, ok := staticDomains.Load(t)
	if !ok {
		v, _ = staticDomains.LoadOrStore(t, new(staticSlot))
	}
	slot := v.(*staticSlot)
	slot.once.Do(func() {
		slot.domain = newStaticDomain[E]()
	})
	return slot.domain.(*EnumDomain[E])
}

func newStaticDomain[E Enum]() *EnumDomain[E] {
	id := AllocateDomainID()
	name, ok := enumDomainName[E]()
	if !ok {
		name = fmt.Sprintf("static_domain_%d", id)
	}
	return NewEnumDomain[E](name, WithDomainID(id), WithCapacity(DefaultCapacity))
}

// enumDomainName asks E for its domain name.
func enumDomainName[E Enum]() (string, bool) {
	var zero E
	if n, ok := any(zero).(interface{ DomainName() string }); ok {
		if name := n.DomainName(); name != "" {
			return name, true
		}
	}
	return "", false
}

// Raise records an incident of cond on E's process-wide domain.
func Raise[E Enum](cond E, message string) Status {
	return StaticDomain[E]().Raise(cond, message)
}

// RaiseHere is Raise plus the caller's location.
func RaiseHere[E Enum](cond E, message string) Status {
	in := Incident{Message: message, Location: callerLocation(1)}
	return StaticDomain[E]().RaiseIncident(cond, in)
}

// RaiseIncident records a fully specified incident on E's process-wide
// domain.
func RaiseIncident[E Enum](cond E, in Incident) Status {
	return StaticDomain[E]().RaiseIncident(cond, in)
}

// Watch returns the Kind for cond on E's process-wide domain.
func Watch[E Enum](cond E) Kind {
	return StaticDomain[E]().Watch(cond)
}
