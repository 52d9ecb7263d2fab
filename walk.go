// walk.go: traversal of error trees for every status they carry.
//
// errors.As stops at the first match. A tree built with errors.Join can hold
// several statuses from several domains; Walk and Statuses visit all of them.
// Both handle Unwrap() error and Unwrap() []error and skip nodes already
// visited. Joins may be arbitrarily wide; nesting stops at maxWalkDepth.
package xgxstatus

import (
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

const maxWalkDepth = 1 << 12

// visited guards a traversal against cycles. Comparable errors are keyed by
// value and pointer errors by address; anything else is assumed acyclic and
// bounded by maxWalkDepth.
type visited struct {
	byValue map[error]struct{}
	byAddr  map[uintptr]struct{}
}

func newVisited() visited {
	return visited{
		byValue: make(map[error]struct{}, 8),
		byAddr:  make(map[uintptr]struct{}, 8),
	}
}

// mark returns false if err was seen before.
func (v visited) mark(err error) bool {
	if reflect.TypeOf(err).Comparable() {
		return v.markValue(err)
	}
	if rv := reflect.ValueOf(err); rv.Kind() == reflect.Pointer && !rv.IsNil() {
		addr := rv.Pointer()
		if _, ok := v.byAddr[addr]; ok {
			return false
		}
		v.byAddr[addr] = struct{}{}
	}
	return true
}

// markValue keys err by value. A comparable struct can still hold an
// unhashable value in an interface field; hashing it panics, and such a node
// is treated like any other non-comparable one.
func (v visited) markValue(err error) (fresh bool) {
	defer func() {
		if recover() != nil {
			fresh = true
		}
	}()
	if _, ok := v.byValue[err]; ok {
		return false
	}
	v.byValue[err] = struct{}{}
	return true
}

// Walk visits each distinct node of err's tree in pre-order, left to right.
// Nodes nested deeper than maxWalkDepth are not visited. It stops early when
// visit returns false. A nil err is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	type frame struct {
		err   error
		depth int
	}
	seen := newVisited()
	seen.mark(err)
	stack := make([]frame, 1, 8)
	stack[0] = frame{err: err}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(cur.err) {
			return
		}
		if cur.depth+1 >= maxWalkDepth {
			continue
		}

		switch u := cur.err.(type) {
		case multiUnwrapper:
			kids := u.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if kids[i] != nil && seen.mark(kids[i]) {
					stack = append(stack, frame{err: kids[i], depth: cur.depth + 1})
				}
			}
		case singleUnwrapper:
			if next := u.Unwrap(); next != nil && seen.mark(next) {
				stack = append(stack, frame{err: next, depth: cur.depth + 1})
			}
		}
	}
}

// Statuses returns every Status and Detached in err's tree, in walk order, as
// snapshots. Live statuses are detached as they are found. Kinds are not
// statuses and are skipped.
func Statuses(err error) []Detached {
	var out []Detached
	Walk(err, func(e error) bool {
		switch v := e.(type) {
		case Status:
			if !v.IsZero() {
				out = append(out, v.Detach())
			}
		case Detached:
			if !v.IsZero() {
				out = append(out, v)
			}
		}
		return true
	})
	return out
}

// HasAnyKind reports whether any status in err's tree is of one of kinds.
func HasAnyKind(err error, kinds ...Kind) bool {
	found := false
	Walk(err, func(e error) bool {
		c, ok := e.(Coded)
		if !ok {
			return true
		}
		if _, isKind := e.(Kind); isKind {
			return true
		}
		for _, k := range kinds {
			if !k.IsZero() && k.code.SameKind(c.Code()) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}
