package xgxstatus

// Kind is a domain plus a condition, without incident data: the lightweight
// "I expect this class of failure" value. Kinds are produced by Watch and by
// Status.Kind; the zero Kind is invalid.
//
// Kinds compare by bit pattern only. That is sound because domain ids are
// unique for the life of the process.
type Kind struct {
	code   Code
	domain KindInspector
}

func (k Kind) Code() Code            { return k.code }
func (k Kind) Domain() KindInspector { return k.domain }
func (k Kind) IsZero() bool          { return k.domain == nil }
func (k Kind) Condition() uint16     { return k.code.Condition() }

// Message describes the condition. It is never empty for a valid Kind.
func (k Kind) Message() string {
	precondition(k.domain != nil, "kind has a domain")
	return k.domain.KindMessage(k)
}

// Equal reports whether o is of the same kind (domain and condition).
func (k Kind) Equal(o Coded) bool {
	if o == nil {
		return false
	}
	return k.code.SameKind(o.Code())
}

// Error makes a Kind usable as a sentinel error.
func (k Kind) Error() string { return k.Message() }

// Is lets errors.Is match any Kind, Status or Detached of the same kind.
func (k Kind) Is(target error) bool {
	c, ok := target.(Coded)
	return ok && k.code.SameKind(c.Code())
}
