// format.go: fmt.Formatter and slog.LogValuer implementations.
//
// Behavior:
//
//	%s, %v   → the message (Error()).
//	%q       → the quoted message.
//	%+v      → verbose, multi-line:
//	             domain=<name> code=<dddd:cccc:iiii> condition=<NAME> msg="<message>"
//	             platform_error: <n>
//	             location: funcA file.go:123
//
// Zero values format as "<zero status>" / "<zero kind>" instead of tripping
// the contract checks, so a stray zero value can still be logged.
package xgxstatus

import (
	"fmt"
	"io"
	"log/slog"
)

const (
	zeroStatusText = "<zero status>"
	zeroKindText   = "<zero kind>"
)

func domainName(d any) string {
	if n, ok := d.(interface{ Name() string }); ok {
		return n.Name()
	}
	return ""
}

func conditionName(d any, c Code) string {
	if n, ok := d.(interface{ ConditionName(Code) string }); ok {
		return n.ConditionName(c)
	}
	return ""
}

// formatVerbose writes the structured multi-line representation. Empty
// sections are omitted.
func formatVerbose(w io.Writer, d any, code Code, msg string, loc Location, platformErr int) {
	if name := domainName(d); name != "" {
		_, _ = fmt.Fprintf(w, "domain=%s ", name)
	}
	_, _ = fmt.Fprintf(w, "code=%s ", code)
	if name := conditionName(d, code); name != "" {
		_, _ = fmt.Fprintf(w, "condition=%s ", name)
	}
	_, _ = fmt.Fprintf(w, "msg=%q", msg)

	if platformErr != 0 {
		_, _ = fmt.Fprintf(w, "\nplatform_error: %d", platformErr)
	}
	if !loc.IsZero() {
		_, _ = io.WriteString(w, "\nlocation: ")
		_, _ = io.WriteString(w, loc.String())
	}
}

// formatValue implements the verb table shared by every value type.
func formatValue(s fmt.State, verb rune, msg string, verbose func(io.Writer)) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			verbose(s)
			return
		}
		_, _ = io.WriteString(s, msg)
	case 's':
		_, _ = io.WriteString(s, msg)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", msg)
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(%s)", verb, msg)
	}
}

func (s Status) Format(st fmt.State, verb rune) {
	if s.IsZero() {
		formatValue(st, verb, zeroStatusText, func(w io.Writer) { _, _ = io.WriteString(w, zeroStatusText) })
		return
	}
	msg := s.Message()
	formatValue(st, verb, msg, func(w io.Writer) {
		formatVerbose(w, s.domain, s.code, msg, s.Location(), s.PlatformError())
	})
}

func (d Detached) Format(st fmt.State, verb rune) {
	if d.IsZero() {
		formatValue(st, verb, zeroStatusText, func(w io.Writer) { _, _ = io.WriteString(w, zeroStatusText) })
		return
	}
	formatValue(st, verb, d.message, func(w io.Writer) {
		formatVerbose(w, d.domain, d.code, d.message, d.location, d.platformError)
	})
}

func (k Kind) Format(st fmt.State, verb rune) {
	if k.IsZero() {
		formatValue(st, verb, zeroKindText, func(w io.Writer) { _, _ = io.WriteString(w, zeroKindText) })
		return
	}
	msg := k.Message()
	formatValue(st, verb, msg, func(w io.Writer) {
		formatVerbose(w, k.domain, k.code, msg, Location{}, 0)
	})
}

// Format prints the stack for %+v, like a defect.
func (e *ContractError) Format(s fmt.State, verb rune) {
	formatValue(s, verb, e.Error(), func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "kind=%s expr=%q", e.Kind, e.Expr)
		if len(e.Stack) > 0 {
			_, _ = io.WriteString(w, "\nstack:")
			for _, fr := range e.Stack {
				_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
			}
		}
	})
}

// logAttrs builds the structured view shared by the LogValue methods.
func logAttrs(d any, code Code, msg string, loc Location, platformErr int) []slog.Attr {
	attrs := make([]slog.Attr, 0, 6)
	if name := domainName(d); name != "" {
		attrs = append(attrs, slog.String("domain", name))
	}
	attrs = append(attrs, slog.String("code", code.String()))
	if name := conditionName(d, code); name != "" {
		attrs = append(attrs, slog.String("condition", name))
	}
	attrs = append(attrs, slog.String("message", msg))
	if platformErr != 0 {
		attrs = append(attrs, slog.Int("platform_error", platformErr))
	}
	if !loc.IsZero() {
		attrs = append(attrs, slog.String("location", loc.String()))
	}
	return attrs
}

func (s Status) LogValue() slog.Value {
	if s.IsZero() {
		return slog.StringValue(zeroStatusText)
	}
	return slog.GroupValue(logAttrs(s.domain, s.code, s.Message(), s.Location(), s.PlatformError())...)
}

func (d Detached) LogValue() slog.Value {
	if d.IsZero() {
		return slog.StringValue(zeroStatusText)
	}
	return slog.GroupValue(logAttrs(d.domain, d.code, d.message, d.location, d.platformError)...)
}

func (k Kind) LogValue() slog.Value {
	if k.IsZero() {
		return slog.StringValue(zeroKindText)
	}
	return slog.GroupValue(logAttrs(k.domain, k.code, k.Message(), Location{}, 0)...)
}

var (
	_ fmt.Formatter  = Status{}
	_ fmt.Formatter  = Detached{}
	_ fmt.Formatter  = Kind{}
	_ fmt.Formatter  = (*ContractError)(nil)
	_ slog.LogValuer = Status{}
	_ slog.LogValuer = Detached{}
	_ slog.LogValuer = Kind{}
)
