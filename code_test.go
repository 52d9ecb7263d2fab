// code_test.go: verification of the packed code layout and comparisons.
package xgxstatus

import (
	"slices"
	"testing"
)

func TestNewCode_ZeroValue(t *testing.T) {
	t.Parallel()

	var c Code
	if c.Domain() != 0 || c.Condition() != 0 || c.Incident() != 0 {
		t.Fatalf("zero code should have zero fields; got %s", c)
	}
	if !c.IsZero() {
		t.Fatalf("zero code should report IsZero")
	}
}

func TestNewCode_Fields(t *testing.T) {
	t.Parallel()

	c := NewCode(4, 5, 6)
	if c.Domain() != 4 || c.Condition() != 5 || c.Incident() != 6 {
		t.Fatalf("fields: want=4/5/6 got=%d/%d/%d", c.Domain(), c.Condition(), c.Incident())
	}
	if got, want := uint64(c), uint64(4)<<32|uint64(5)<<16|6; got != want {
		t.Fatalf("bit layout: want=%#x got=%#x", want, got)
	}

	top := NewCode(0xffff, 0xffff, 0xffff)
	if uint64(top)>>48 != 0 {
		t.Fatalf("reserved bits must stay zero; got=%#x", uint64(top))
	}
}

func TestCode_With(t *testing.T) {
	t.Parallel()

	var c Code
	c = c.WithDomain(6).WithCondition(5).WithIncident(4)
	if c != NewCode(6, 5, 4) {
		t.Fatalf("With*: want=%s got=%s", NewCode(6, 5, 4), c)
	}

	t.Run("replaces only its field", func(t *testing.T) {
		d := c.WithCondition(9)
		if d.Domain() != 6 || d.Condition() != 9 || d.Incident() != 4 {
			t.Fatalf("WithCondition leaked into other fields: %s", d)
		}
	})
	t.Run("value semantics", func(t *testing.T) {
		_ = c.WithIncident(7)
		if c.Incident() != 4 {
			t.Fatalf("With* must not mutate the receiver")
		}
	})
}

func TestCode_SameKindAndSameCode(t *testing.T) {
	t.Parallel()

	code := NewCode(6, 5, 4)
	tests := []struct {
		name     string
		other    Code
		sameKind bool
		sameCode bool
	}{
		{"identical", NewCode(6, 5, 4), true, true},
		{"other incident", NewCode(6, 5, 7), true, false},
		{"other condition", NewCode(6, 7, 4), false, false},
		{"other domain", NewCode(7, 5, 4), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := code.SameKind(tt.other); got != tt.sameKind {
				t.Fatalf("SameKind: want=%v got=%v", tt.sameKind, got)
			}
			if got := tt.other.SameKind(code); got != tt.sameKind {
				t.Fatalf("SameKind must be symmetric")
			}
			if got := code.SameCode(tt.other); got != tt.sameCode {
				t.Fatalf("SameCode: want=%v got=%v", tt.sameCode, got)
			}
		})
	}
}

func TestCode_KindCode(t *testing.T) {
	t.Parallel()

	c := NewCode(1, 2, 3)
	if k := c.KindCode(); k != NewCode(1, 2, 0) {
		t.Fatalf("KindCode: want=%s got=%s", NewCode(1, 2, 0), k)
	}
}

func TestCode_CompareIsLexicographic(t *testing.T) {
	t.Parallel()

	ordered := []Code{
		NewCode(1, 0, 0),
		NewCode(1, 0, 9),
		NewCode(1, 2, 0),
		NewCode(2, 0, 0),
		NewCode(2, 0xffff, 0xffff),
		NewCode(3, 0, 1),
	}
	shuffled := []Code{ordered[3], ordered[5], ordered[0], ordered[4], ordered[2], ordered[1]}
	slices.SortFunc(shuffled, Code.Compare)
	if !slices.Equal(shuffled, ordered) {
		t.Fatalf("sort order: want=%v got=%v", ordered, shuffled)
	}

	if NewCode(1, 1, 1).Compare(NewCode(1, 1, 1)) != 0 {
		t.Fatalf("equal codes must compare 0")
	}
	if NewCode(1, 9, 9).Compare(NewCode(2, 0, 0)) != -1 {
		t.Fatalf("domain dominates condition and incident")
	}
}

func TestCode_String(t *testing.T) {
	t.Parallel()

	if got, want := NewCode(0x1, 0x2a, 0xff).String(), "0001:002a:00ff"; got != want {
		t.Fatalf("String: want=%q got=%q", want, got)
	}
}

func TestCode_OverflowIsContractViolation(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"domain":         func() { NewCode(0x10000, 0, 0) },
		"condition":      func() { NewCode(0, 0x10000, 0) },
		"incident":       func() { NewCode(0, 0, 0x10000) },
		"with domain":    func() { Code(0).WithDomain(1 << 20) },
		"with condition": func() { Code(0).WithCondition(1 << 16) },
		"with incident":  func() { Code(0).WithIncident(1 << 17) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			ce := expectContract(t, Precondition, fn)
			if ce.Expr == "" {
				t.Fatalf("contract violation should carry the checked expression")
			}
		})
	}
}

func TestCode_UsableAsMapKey(t *testing.T) {
	t.Parallel()

	seen := map[Code]int{}
	seen[NewCode(1, 2, 3)]++
	seen[NewCode(1, 2, 3)]++
	seen[NewCode(1, 2, 4)]++
	if seen[NewCode(1, 2, 3)] != 2 || len(seen) != 2 {
		t.Fatalf("map key semantics broken: %v", seen)
	}
}
