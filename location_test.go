// location_test.go: verification of call-site capture and stack metadata.
package xgxstatus

import (
	"strings"
	"testing"
)

// --- Helpers to build a known call chain -------------------------------------

// stackGrab calls captureStackDefault with the provided skipExtra and returns the stack.
func stackGrab(skipExtra int) Stack {
	return captureStackDefault(skipExtra + 1)
}

func stackTestLevel2(skipExtra int) Stack {
	// First recorded frame with skipExtra=0 should be this function.
	return stackGrab(skipExtra)
}

func stackTestLevel1(skipExtra int) Stack {
	return stackTestLevel2(skipExtra)
}

//go:noinline
func hereFromHelper() Location {
	return Here()
}

// --- Location ----------------------------------------------------------------

func TestHere_ReportsCaller(t *testing.T) {
	t.Parallel()

	loc := Here()
	if loc.IsZero() {
		t.Fatalf("Here() returned zero location")
	}
	if !strings.HasSuffix(loc.File(), "location_test.go") {
		t.Fatalf("file: want suffix location_test.go got=%q", loc.File())
	}
	if !strings.HasSuffix(loc.Function(), "TestHere_ReportsCaller") {
		t.Fatalf("function: want TestHere_ReportsCaller got=%q", loc.Function())
	}
	if loc.Line() <= 0 {
		t.Fatalf("line: want >0 got=%d", loc.Line())
	}
}

func TestHere_FromHelperReportsHelper(t *testing.T) {
	t.Parallel()

	loc := hereFromHelper()
	if !strings.HasSuffix(loc.Function(), "hereFromHelper") {
		t.Fatalf("function: want hereFromHelper got=%q", loc.Function())
	}
}

func TestHere_ConsecutiveLinesDiffer(t *testing.T) {
	t.Parallel()

	a := Here()
	b := Here()
	if b.Line()-a.Line() != 1 {
		t.Fatalf("line delta: want=1 got=%d (a=%d b=%d)", b.Line()-a.Line(), a.Line(), b.Line())
	}
}

func TestNewLocation_Explicit(t *testing.T) {
	t.Parallel()

	loc := NewLocation("journal.go", 17, "store.(*Journal).Append")
	if loc.File() != "journal.go" || loc.Line() != 17 || loc.Function() != "store.(*Journal).Append" {
		t.Fatalf("explicit location mismatch: %q %d %q", loc.File(), loc.Line(), loc.Function())
	}
	if got, want := loc.String(), "store.(*Journal).Append journal.go:17"; got != want {
		t.Fatalf("String: want=%q got=%q", want, got)
	}
}

func TestLocation_ZeroValue(t *testing.T) {
	t.Parallel()

	var loc Location
	if !loc.IsZero() {
		t.Fatalf("zero Location should report IsZero")
	}
	if loc.String() != "" || loc.File() != "" || loc.Line() != 0 {
		t.Fatalf("zero Location should resolve to nothing; got %q", loc.String())
	}
	if NewLocation("", 1, "").IsZero() {
		t.Fatalf("a location with only a line is not zero")
	}
}

// --- Stack -------------------------------------------------------------------

func TestCaptureStack_RespectsMaxDepthLimit(t *testing.T) {
	t.Parallel()

	const limit = 3
	s := captureStack(0, limit)
	if len(s) == 0 || len(s) > limit {
		t.Fatalf("expected 1..%d frames; got %d", limit, len(s))
	}
	if s := captureStack(0, 0); len(s) == 0 || len(s) > defaultMaxDepth {
		t.Fatalf("maxDepth<=0 should fall back to default; got %d frames", len(s))
	}
}

func TestCaptureStack_SkipExtraSkipsCorrectFrames(t *testing.T) {
	t.Parallel()

	s0 := stackTestLevel1(0)
	if len(s0) == 0 || !strings.HasSuffix(s0[0].Function, "stackTestLevel2") {
		t.Fatalf("expected first frame to be stackTestLevel2; got %v", s0)
	}
	s1 := stackTestLevel1(1)
	if len(s1) == 0 || !strings.HasSuffix(s1[0].Function, "stackTestLevel1") {
		t.Fatalf("expected first frame to be stackTestLevel1; got %v", s1)
	}
}

func TestCaptureStack_ReturnsNilWhenNoFramesCaptured(t *testing.T) {
	t.Parallel()

	const absurdSkip = 1 << 20
	if s := captureStack(absurdSkip, 16); s != nil {
		t.Fatalf("expected nil stack when skip filters out all frames; got len=%d", len(s))
	}
}

func TestStack_MetadataPresence(t *testing.T) {
	t.Parallel()

	s := stackTestLevel1(0)
	for i := 0; i < min(len(s), 5); i++ {
		fr := s[i]
		if fr.PC == 0 || fr.Function == "" || fr.File == "" || fr.Line <= 0 {
			t.Fatalf("frame %d incomplete: %+v", i, fr)
		}
	}
}

func TestStack_Location(t *testing.T) {
	t.Parallel()

	s := stackTestLevel1(0)
	loc := s.Location()
	if loc.Function() != s[0].Function || loc.Line() != s[0].Line {
		t.Fatalf("Stack.Location: want=%s:%d got=%s", s[0].Function, s[0].Line, loc)
	}
	if !Stack(nil).Location().IsZero() {
		t.Fatalf("empty stack should give zero location")
	}
}
