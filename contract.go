// contract.go: programming-error signalling for xgx-status core.
//
// Two failure tiers exist in this package:
//   - Represented failures: Status/Kind values, returned like any other error.
//   - Programming errors: a broken contract (bit-field overflow, zero-valued
//     Status/Kind, a condition outside its domain's table). These panic with a
//     *ContractError and are never returned as values.
//
// A ContractError always captures a stack at creation, like a defect: the
// point of failing fast is to show where the bug is.
package xgxstatus

import (
	"errors"
	"fmt"
)

// ContractKind names which contract was broken.
type ContractKind uint8

const (
	Precondition ContractKind = iota + 1
	Postcondition
	Invariant
)

func (k ContractKind) String() string {
	switch k {
	case Precondition:
		return "precondition"
	case Postcondition:
		return "postcondition"
	case Invariant:
		return "invariant"
	default:
		return "contract"
	}
}

// ContractError is the panic value raised when a contract check fails.
type ContractError struct {
	Kind   ContractKind
	Expr   string   // the checked condition, as written at the call site
	Origin Location // the function whose contract was broken
	Stack  Stack
}

func (e *ContractError) Error() string {
	if e.Origin.IsZero() {
		return fmt.Sprintf("xgxstatus: %s failed: %s", e.Kind, e.Expr)
	}
	return fmt.Sprintf("xgxstatus: %s failed: %s (%s)", e.Kind, e.Expr, e.Origin.Function())
}

// newContractError builds the panic value. skip counts frames above the
// caller of newContractError (0 = the check helper itself).
func newContractError(kind ContractKind, expr string, skip int) *ContractError {
	// +1 for newContractError; stk[0] is the caller of the check helper.
	stk := captureStackDefault(skip + 1)
	return &ContractError{
		Kind:   kind,
		Expr:   expr,
		Origin: stk.Location(),
		Stack:  stk,
	}
}

// precondition panics with a *ContractError when ok is false. expr should be
// a constant string so the passing path does no work.
func precondition(ok bool, expr string) {
	if !ok {
		panic(newContractError(Precondition, expr, 1))
	}
}

// postcondition panics with a *ContractError when ok is false.
func postcondition(ok bool, expr string) {
	if !ok {
		panic(newContractError(Postcondition, expr, 1))
	}
}

// invariant panics with a *ContractError when ok is false.
func invariant(ok bool, expr string) {
	if !ok {
		panic(newContractError(Invariant, expr, 1))
	}
}

// AsContractError extracts a *ContractError from a recovered panic value or
// an error chain.
func AsContractError(v any) (*ContractError, bool) {
	switch x := v.(type) {
	case *ContractError:
		return x, x != nil
	case error:
		var ce *ContractError
		if errors.As(x, &ce) {
			return ce, true
		}
	}
	return nil, false
}

// IsContractViolation reports whether v (a recovered panic value or an error)
// is, or wraps, a *ContractError.
func IsContractViolation(v any) bool {
	_, ok := AsContractError(v)
	return ok
}

var _ error = (*ContractError)(nil)
