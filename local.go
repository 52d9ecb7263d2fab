// local.go: goroutine-confined domains.
//
// Go has no thread-local storage. The equivalent here is a Local: a registry
// owned by one goroutine and carried through context.Context. Each Local
// builds its own domain per enum type with a ring of LocalCapacity, so only
// the most recent incident per type is kept. Because a Local is never shared,
// nothing is locked.
//
// Every domain takes one of the 65535 process-wide domain ids and ids are
// never freed. Create a Local with NewLocal once per long-lived worker
// goroutine. Short-lived work (one request, one job) borrows one instead:
//
//	l := xgxstatus.AcquireLocal()
//	defer l.Release()
//	ctx = xgxstatus.WithLocal(ctx, l)
//	s := xgxstatus.RaiseLocal(ctx, ErrThing, "a")
//
// Released Locals keep their domains and are handed out again, so the number
// of ids in use follows peak concurrency, not request count.
//
// Sharing a Local between goroutines that raise is a data race.
package xgxstatus

import (
	"context"
	"fmt"
	"reflect"
	"sync"
)

// localDomain is what a Local needs from the domains it owns.
type localDomain interface {
	clearIncidents()
}

// Local is a goroutine-confined registry of capacity-1 domains. The zero
// value is ready to use.
type Local struct {
	domains  map[reflect.Type]localDomain
	released bool
}

// localPool holds released Locals. It is a plain free list rather than a
// sync.Pool: a Local dropped by the garbage collector would take its domain
// ids with it.
var localPool struct {
	mu   sync.Mutex
	free []*Local
}

// AcquireLocal returns a released Local if one is available, else a new one.
// Hand it back with Release when the work that raised on it is done.
func AcquireLocal() *Local {
	localPool.mu.Lock()
	defer localPool.mu.Unlock()
	if n := len(localPool.free); n > 0 {
		l := localPool.free[n-1]
		localPool.free[n-1] = nil
		localPool.free = localPool.free[:n-1]
		l.released = false
		return l
	}
	return NewLocal()
}

// Release clears l's incidents and makes l available to AcquireLocal. l must
// not be used afterwards; Statuses raised on it report their condition's
// message once cleared. Releasing twice is a precondition violation.
func (l *Local) Release() {
	precondition(l != nil, "local registry is not nil")
	precondition(!l.released, "local registry released once")
	for _, d := range l.domains {
		d.clearIncidents()
	}
	l.released = true

	localPool.mu.Lock()
	defer localPool.mu.Unlock()
	localPool.free = append(localPool.free, l)
}

// NewLocal returns an empty Local.
func NewLocal() *Local {
	return &Local{domains: make(map[reflect.Type]localDomain)}
}

// LocalDomain returns l's domain for E, building it on first use. The domain
// gets its own process-unique id, distinct from StaticDomain[E].
func LocalDomain[E Enum](l *Local) *EnumDomain[E] {
	precondition(l != nil, "local registry is not nil")
	precondition(!l.released, "local registry is not released")
	t := reflect.TypeFor[E]()
	if d, ok := l.domains[t]; ok {
		return d.(*EnumDomain[E])
	}
	id := AllocateDomainID()
	name := fmt.Sprintf("local_domain_%d", id)
	if n, ok := enumDomainName[E](); ok {
		name = n + "@local"
	}
	d := NewEnumDomain[E](name, WithDomainID(id), WithCapacity(LocalCapacity))
	if l.domains == nil {
		l.domains = make(map[reflect.Type]localDomain)
	}
	l.domains[t] = d
	return d
}

type localKey struct{}

// WithLocal returns a copy of ctx carrying l.
func WithLocal(ctx context.Context, l *Local) context.Context {
	precondition(l != nil, "local registry is not nil")
	return context.WithValue(ctx, localKey{}, l)
}

// LocalFrom returns the Local carried by ctx.
func LocalFrom(ctx context.Context) (*Local, bool) {
	if ctx == nil {
		return nil, false
	}
	l, ok := ctx.Value(localKey{}).(*Local)
	return l, ok && l != nil
}

func mustLocal(ctx context.Context) *Local {
	l, ok := LocalFrom(ctx)
	precondition(ok, "context carries a local registry")
	return l
}

// RaiseLocal records an incident of cond on the domain for E in ctx's Local.
func RaiseLocal[E Enum](ctx context.Context, cond E, message string) Status {
	return LocalDomain[E](mustLocal(ctx)).Raise(cond, message)
}

// RaiseLocalHere is RaiseLocal plus the caller's location.
func RaiseLocalHere[E Enum](ctx context.Context, cond E, message string) Status {
	in := Incident{Message: message, Location: callerLocation(1)}
	return LocalDomain[E](mustLocal(ctx)).RaiseIncident(cond, in)
}

// RaiseLocalIncident records a fully specified incident on ctx's Local.
func RaiseLocalIncident[E Enum](ctx context.Context, cond E, in Incident) Status {
	return LocalDomain[E](mustLocal(ctx)).RaiseIncident(cond, in)
}

// WatchLocal returns the Kind for cond on ctx's Local. Kinds from a Local
// never match Statuses from StaticDomain[E]: they are different domains.
func WatchLocal[E Enum](ctx context.Context, cond E) Kind {
	return LocalDomain[E](mustLocal(ctx)).Watch(cond)
}
