// format_test.go: verification of fmt and slog rendering.
package xgxstatus

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestStatusFormatting_ConciseAndVerbose(t *testing.T) {
	t.Parallel()
	d := NewEnumDomain[quark]("format")

	s := d.RaiseIncident(quarkStrange, Incident{
		Message:       "lookup failed",
		Location:      NewLocation("collider.go", 88, "physics.Run"),
		PlatformError: 11,
	})

	if got := fmt.Sprintf("%v", s); got != "lookup failed" {
		t.Fatalf("%%v: want message only, got=%q", got)
	}
	if got := fmt.Sprintf("%s", s); got != "lookup failed" {
		t.Fatalf("%%s: got=%q", got)
	}
	if got := fmt.Sprintf("%q", s); got != `"lookup failed"` {
		t.Fatalf("%%q: got=%q", got)
	}

	verbose := fmt.Sprintf("%+v", s)
	want := []string{
		"domain=format",
		"code=" + s.Code().String(),
		"condition=STRANGE",
		`msg="lookup failed"`,
		"\nplatform_error: 11",
		"\nlocation: physics.Run collider.go:88",
	}
	if !containsInOrder(verbose, want...) {
		t.Fatalf("%%+v missing sections:\n%s", verbose)
	}
}

func TestStatusFormatting_OmitsEmptySections(t *testing.T) {
	t.Parallel()
	d := NewEnumDomain[quark]("format")

	verbose := fmt.Sprintf("%+v", d.Raise(quarkUp, ""))
	if strings.Contains(verbose, "platform_error") || strings.Contains(verbose, "location:") {
		t.Fatalf("%%+v should omit unrecorded detail:\n%s", verbose)
	}
	if !strings.Contains(verbose, `msg="UP"`) {
		t.Fatalf("%%+v should show the fallback message:\n%s", verbose)
	}
}

func TestDetachedAndKindFormatting(t *testing.T) {
	t.Parallel()
	d := NewEnumDomain[quark]("format")

	det := d.Raise(quarkCharm, "sticky").Detach()
	if got := fmt.Sprint(det); got != "sticky" {
		t.Fatalf("Detached %%v: got=%q", got)
	}
	if !containsInOrder(fmt.Sprintf("%+v", det), "domain=format", "condition=CHARM", `msg="sticky"`) {
		t.Fatalf("Detached %%+v: got=%q", fmt.Sprintf("%+v", det))
	}

	k := d.Watch(quarkCharm)
	if got := fmt.Sprint(k); got != "Charm quark." {
		t.Fatalf("Kind %%v: got=%q", got)
	}
	if !containsInOrder(fmt.Sprintf("%+v", k), "code="+k.Code().String(), "condition=CHARM") {
		t.Fatalf("Kind %%+v: got=%q", fmt.Sprintf("%+v", k))
	}
}

func TestFormatting_ZeroValuesDoNotPanic(t *testing.T) {
	t.Parallel()

	for _, v := range []any{Status{}, Detached{}} {
		if got := fmt.Sprintf("%v|%+v", v, v); got != "<zero status>|<zero status>" {
			t.Fatalf("zero status: got=%q", got)
		}
	}
	if got := fmt.Sprint(Kind{}); got != "<zero kind>" {
		t.Fatalf("zero kind: got=%q", got)
	}
}

func TestFormatting_UnknownVerb(t *testing.T) {
	t.Parallel()
	d := NewEnumDomain[quark]("format")

	if got := fmt.Sprintf("%d", d.Raise(quarkUp, "x")); got != "%!d(x)" {
		t.Fatalf("unknown verb: got=%q", got)
	}
}

func TestLogValue(t *testing.T) {
	t.Parallel()
	d := NewEnumDomain[quark]("format")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	s := d.RaiseIncident(quarkTop, Incident{Message: "disk gone", PlatformError: 5})
	logger.Error("write failed", "status", s, "kind", s.Kind())

	out := buf.String()
	for _, w := range []string{
		"status.domain=format",
		"status.condition=TOP",
		`status.message="disk gone"`,
		"status.platform_error=5",
		"kind.condition=TOP",
		"kind.message=TOP",
	} {
		if !strings.Contains(out, w) {
			t.Fatalf("log output missing %q:\n%s", w, out)
		}
	}
	if strings.Contains(out, "status.location") {
		t.Fatalf("location should be omitted when not recorded:\n%s", out)
	}
}
