// predicates.go: error-chain helpers for Status, Detached and Kind.
//
// Every helper goes through errors.Is / errors.As, so a status wrapped with
// fmt.Errorf("%w") or joined with errors.Join is still found. Nil errors
// answer "no".
package xgxstatus

import (
	"errors"
)

// StatusOf returns the first Status or Detached in err's chain as a live
// Status. A Detached found this way resolves through its domain again, so
// prefer DetachedOf when the snapshot matters.
func StatusOf(err error) (Status, bool) {
	if err == nil {
		return Status{}, false
	}
	var s Status
	if errors.As(err, &s) && !s.IsZero() {
		return s, true
	}
	var d Detached
	if errors.As(err, &d) && !d.IsZero() {
		return d.Status(), true
	}
	return Status{}, false
}

// DetachedOf returns the first Detached in err's chain, or detaches the first
// Status found.
func DetachedOf(err error) (Detached, bool) {
	if err == nil {
		return Detached{}, false
	}
	var d Detached
	if errors.As(err, &d) && !d.IsZero() {
		return d, true
	}
	var s Status
	if errors.As(err, &s) && !s.IsZero() {
		return s.Detach(), true
	}
	return Detached{}, false
}

// CodeOf returns the code of the first Kind, Status or Detached along err's
// chain, or the zero Code if there is none.
func CodeOf(err error) Code {
	if err == nil {
		return 0
	}
	var c Coded
	if errors.As(err, &c) {
		return c.Code()
	}
	return 0
}

// HasKind reports whether any status in err's chain is of kind k.
func HasKind(err error, k Kind) bool {
	if err == nil || k.IsZero() {
		return false
	}
	return errors.Is(err, k)
}

// HasEquivalentCondition reports whether err carries a status of kind k or of
// a condition its domain declares equivalent to k.
func HasEquivalentCondition(err error, k Kind) bool {
	if k.IsZero() {
		return false
	}
	s, ok := StatusOf(err)
	if !ok {
		return false
	}
	return s.HasEquivalentConditionAs(k)
}
