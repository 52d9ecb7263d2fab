// status.go: live and detached status values.
//
// A Status is a packed code plus its domain. It owns no data: Message,
// Location and PlatformError are resolved through the domain's bounded
// incident store every time they are read. After the domain has recorded
// `capacity` further incidents the slot is reused and the Status silently
// reports the newer incident. That is accepted imprecision, not a crash.
//
// A Detached snapshots the resolved detail once and is immune to reuse.
package xgxstatus

// base is the part shared by Status and Detached.
type base struct {
	code   Code
	domain Domain
}

func (b base) Code() Code     { return b.code }
func (b base) Domain() Domain { return b.domain }
func (b base) IsZero() bool   { return b.domain == nil }

func (b base) mustDomain() {
	precondition(b.domain != nil, "status has a domain")
}

// Kind projects the status onto its condition, dropping the incident.
func (b base) Kind() Kind {
	b.mustDomain()
	return Kind{code: b.code.KindCode(), domain: b.domain}
}

// Equal compares against a Status or Detached by full code, and against a
// Kind by kind.
func (b base) Equal(o Coded) bool {
	switch t := o.(type) {
	case nil:
		return false
	case Kind:
		return b.code.SameKind(t.code)
	default:
		return b.code.SameCode(o.Code())
	}
}

// SameKind reports whether o shares domain and condition with b.
func (b base) SameKind(o Coded) bool {
	return o != nil && b.code.SameKind(o.Code())
}

// HasEquivalentConditionAs reports whether o is of the same kind, or whether
// the domain declares o's condition equivalent.
func (b base) HasEquivalentConditionAs(o Coded) bool {
	if o == nil {
		return false
	}
	if b.code.SameKind(o.Code()) {
		return true
	}
	b.mustDomain()
	return b.domain.HasEquivalentCondition(Status{b}, o.Code())
}

// Is lets errors.Is match a Kind by kind and a Status or Detached by code.
func (b base) Is(target error) bool {
	c, ok := target.(Coded)
	return ok && b.Equal(c)
}

// Status is one occurrence of a failure, resolved lazily through its domain.
// Statuses are produced by a domain's Raise* methods; the zero Status is
// invalid.
type Status struct {
	base
}

// Message returns the incident message, or the condition's message when the
// incident was raised without one.
func (s Status) Message() string {
	s.mustDomain()
	return s.domain.StatusMessage(s)
}

// Location returns where the incident was raised, or the zero Location.
func (s Status) Location() Location {
	s.mustDomain()
	return s.domain.StatusLocation(s)
}

// PlatformError returns the platform error number recorded with the
// incident, or 0.
func (s Status) PlatformError() int {
	s.mustDomain()
	return s.domain.StatusPlatformError(s)
}

func (s Status) Error() string { return s.Message() }

// Detach copies the incident detail out of the domain's store.
func (s Status) Detach() Detached {
	s.mustDomain()
	return Detached{
		base:          s.base,
		message:       s.domain.StatusMessage(s),
		location:      s.domain.StatusLocation(s),
		platformError: s.domain.StatusPlatformError(s),
	}
}

// Detached is a Status whose incident detail was copied at Detach time. It
// stays accurate however many incidents the domain records afterwards.
type Detached struct {
	base
	message       string
	location      Location
	platformError int
}

func (d Detached) Message() string {
	d.mustDomain()
	return d.message
}

func (d Detached) Location() Location { return d.location }
func (d Detached) PlatformError() int { return d.platformError }
func (d Detached) Error() string      { return d.Message() }

// Status returns the live handle for the same code. Its detail may have been
// overwritten since the snapshot.
func (d Detached) Status() Status {
	d.mustDomain()
	return Status{d.base}
}

var (
	_ error = Status{}
	_ error = Detached{}
	_ error = Kind{}
	_ Coded = Status{}
	_ Coded = Detached{}
	_ Coded = Kind{}
)
