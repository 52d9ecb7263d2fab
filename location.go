// location.go: call-site capture for incidents and contract violations.
//
// Two shapes:
//   - Location: a single call site. Captured as a few program counters into
//     a fixed array (no allocation) and resolved to file/line/function only
//     when read.
//   - Stack: a resolved slice of Frames, captured only for contract
//     violations where the cost does not matter.
//
// Both use runtime.Callers + runtime.CallersFrames so inlined frames resolve
// correctly.
package xgxstatus

import (
	"fmt"
	"runtime"
)

// Location is the source position of an incident. The zero Location means
// "no location recorded".
type Location struct {
	pcs      [locationDepth]uintptr
	npc      int
	file     string
	line     int
	function string
}

// locationDepth is the number of program counters kept per Location. More
// than one lets CallersFrames expand a call site that was inlined.
const locationDepth = 3

// NewLocation builds an explicit Location, e.g. for incidents forwarded from
// another system.
func NewLocation(file string, line int, function string) Location {
	return Location{file: file, line: line, function: function}
}

// Here returns the location of its caller.
func Here() Location {
	return callerLocation(1)
}

// callerLocation captures the caller 'skip' frames above its own caller.
// skip=0 is the function calling callerLocation.
func callerLocation(skip int) Location {
	var l Location
	// +2: runtime.Callers and callerLocation itself.
	l.npc = runtime.Callers(skip+2, l.pcs[:])
	return l
}

func (l Location) resolve() runtime.Frame {
	if l.npc == 0 {
		return runtime.Frame{File: l.file, Line: l.line, Function: l.function}
	}
	fr, _ := runtime.CallersFrames(l.pcs[:l.npc]).Next()
	return fr
}

func (l Location) File() string     { return l.resolve().File }
func (l Location) Line() int        { return l.resolve().Line }
func (l Location) Function() string { return l.resolve().Function }

// IsZero reports whether no location was recorded.
func (l Location) IsZero() bool {
	return l.npc == 0 && l.file == "" && l.line == 0 && l.function == ""
}

// String renders "function file:line", or "" for the zero Location.
func (l Location) String() string {
	if l.IsZero() {
		return ""
	}
	fr := l.resolve()
	return fmt.Sprintf("%s %s:%d", fr.Function, fr.File, fr.Line)
}

// Frame represents a single call site in a stack trace.
type Frame struct {
	PC       uintptr // program counter of the call return
	File     string  // absolute file path (as provided by runtime)
	Line     int     // line number
	Function string  // fully-qualified function name (pkg.Func or method)
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

const (
	// defaultMaxDepth bounds capture for contract violations.
	defaultMaxDepth = 64
)

// captureStackDefault captures a stack skipping 'skip' frames above its
// caller, with the default depth bound.
//
// Skip model:
//
//	precondition → newContractError → captureStackDefault → captureStack → runtime.Callers
//
// captureStack adds +3 (runtime.Callers, captureStack, captureStackDefault);
// any extra 'skip' from callers is applied on top.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack captures up to maxDepth frames, skipping 'skip' initial frames.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// Location returns the innermost frame as a Location, or the zero Location
// for an empty stack.
func (s Stack) Location() Location {
	if len(s) == 0 {
		return Location{}
	}
	return NewLocation(s[0].File, s[0].Line, s[0].Function)
}
