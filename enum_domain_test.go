// enum_domain_test.go: verification of enum-backed domains and the incident ring.
package xgxstatus

import (
	"strings"
	"testing"
)

func TestDomain_DetailIsResolvedOnDemand(t *testing.T) {
	t.Parallel()
	d := newCountingDomain()

	s := d.raise(quarkUp, "mark")
	if d.statusMessages != 0 || d.statusLocations != 0 {
		t.Fatalf("raising must not resolve detail: messages=%d locations=%d", d.statusMessages, d.statusLocations)
	}

	if msg := s.Message(); msg != "mark" {
		t.Fatalf("Message: want=mark got=%q", msg)
	}
	if d.statusMessages != 1 {
		t.Fatalf("Message should resolve through the domain once; got=%d", d.statusMessages)
	}

	h := d.raiseHere(quarkUp, "")
	if h.Location().Line() <= 0 {
		t.Fatalf("raiseHere should record a line")
	}
	if d.statusLocations != 1 {
		t.Fatalf("Location should resolve through the domain once; got=%d", d.statusLocations)
	}
}

func TestDomain_CustomDomainOwnsItsValues(t *testing.T) {
	t.Parallel()
	d := newCountingDomain()

	s := d.raise(quarkTop, "")
	if s.Domain() != Domain(d) {
		t.Fatalf("status minted via Record+NewStatus should refer to the composing domain")
	}
	if got := s.Kind().Message(); got != "TOP" {
		t.Fatalf("Kind message: want=TOP got=%q", got)
	}
	if d.kindMessages != 1 {
		t.Fatalf("Kind message should go through the composing domain; got=%d", d.kindMessages)
	}

	_ = s.HasEquivalentConditionAs(d.watch(quarkBottom))
	if d.equivalences != 1 {
		t.Fatalf("cross-condition check should consult the domain; got=%d", d.equivalences)
	}
	_ = s.HasEquivalentConditionAs(d.watch(quarkTop))
	if d.equivalences != 1 {
		t.Fatalf("same-kind check must not consult the domain; got=%d", d.equivalences)
	}
}

func TestDomain_RingWrapsAround(t *testing.T) {
	t.Parallel()
	d := NewEnumDomain[quark]("ring", WithCapacity(4))

	if d.Capacity() != 4 || d.Cursor() != 0 {
		t.Fatalf("fresh domain: capacity=%d cursor=%d", d.Capacity(), d.Cursor())
	}

	first := d.Raise(quarkUp, "a")
	snap := first.Detach()
	for i := range 3 {
		s := d.Raise(quarkDown, "")
		if int(s.Code().Incident()) != i+1 {
			t.Fatalf("incident slot: want=%d got=%d", i+1, s.Code().Incident())
		}
	}
	if d.Cursor() != 0 {
		t.Fatalf("cursor should wrap to 0; got=%d", d.Cursor())
	}

	next := d.Raise(quarkCharm, "e")
	if next.Code().Incident() != first.Code().Incident() {
		t.Fatalf("fifth raise should reuse slot 0")
	}
	if first.Message() != "e" {
		t.Fatalf("stale status should read the newer incident; got=%q", first.Message())
	}
	if snap.Message() != "a" {
		t.Fatalf("detached snapshot should be unaffected; got=%q", snap.Message())
	}
	if first.Equal(next) {
		t.Fatalf("different conditions never compare equal, even in the same slot")
	}
}

func TestDomain_WatchDoesNotTouchRing(t *testing.T) {
	t.Parallel()
	d := NewEnumDomain[quark]("watch")

	d.Raise(quarkUp, "")
	before := d.Cursor()
	raised := d.Stats().Raised
	k := d.Watch(quarkDown)
	if d.Cursor() != before || d.Stats().Raised != raised {
		t.Fatalf("Watch must not record an incident")
	}
	if k.Code().Incident() != 0 || k.Code().Domain() != d.ID() || k.Condition() != uint16(quarkDown) {
		t.Fatalf("Watch code: got=%s", k.Code())
	}
}

func TestDomain_EmptyMessageFallsBack(t *testing.T) {
	t.Parallel()
	d := NewEnumDomain[quark]("fallback")

	if got := d.Raise(quarkStrange, "").Message(); got != "Strange quark." {
		t.Fatalf("fallback to condition message: got=%q", got)
	}
	if got := d.Raise(quarkBottom, "").Message(); got != "BOTTOM" {
		t.Fatalf("fallback to condition name: got=%q", got)
	}
}

func TestDomain_IdentityAndNames(t *testing.T) {
	t.Parallel()

	a := NewEnumDomain[quark]("")
	b := NewEnumDomain[quark]("")
	if a.ID() == 0 || a.ID() == b.ID() {
		t.Fatalf("domain ids must be unique and nonzero: a=%d b=%d", a.ID(), b.ID())
	}
	if !strings.HasPrefix(a.Name(), "enum_domain_") {
		t.Fatalf("default name: got=%q", a.Name())
	}
	if k := NewEnumKindDomain[quark](""); !strings.HasPrefix(k.Name(), "enum_kind_domain_") {
		t.Fatalf("default kind-domain name: got=%q", k.Name())
	}
	if a.Raise(quarkUp, "").Equal(b.Raise(quarkUp, "")) {
		t.Fatalf("statuses from different domains never compare equal")
	}
	if a.Watch(quarkUp).Equal(b.Watch(quarkUp)) {
		t.Fatalf("kinds from different domains never compare equal")
	}

	pinned := NewEnumDomain[quark]("pinned", WithDomainID(0xfff0))
	if pinned.ID() != 0xfff0 {
		t.Fatalf("WithDomainID: want=0xfff0 got=%#x", pinned.ID())
	}
}

func TestDomain_ConditionLookup(t *testing.T) {
	t.Parallel()
	d := NewEnumDomain[quark]("lookup")

	c, ok := d.Lookup("CHARM")
	if !ok || c != quarkCharm {
		t.Fatalf("Lookup(CHARM): ok=%v got=%v", ok, c)
	}
	if _, ok := d.Lookup("BEAUTY"); ok {
		t.Fatalf("Lookup of unknown name should fail")
	}

	s := d.Raise(quarkStrange, "")
	if d.ConditionOf(s.Code()) != quarkStrange || d.ConditionName(s.Code()) != "STRANGE" {
		t.Fatalf("ConditionOf/ConditionName mismatch for %s", s.Code())
	}

	conds := d.Conditions()
	conds[0].Name = "mutated"
	if d.Conditions()[0].Name != "UP" {
		t.Fatalf("Conditions must return a copy")
	}
}

func TestKindDomain(t *testing.T) {
	t.Parallel()
	d := NewEnumKindDomain[lepton]("leptons")

	k := d.Watch(leptonTau)
	if k.Message() != "Tau." || d.ConditionName(k.Code()) != "TAU" {
		t.Fatalf("kind-only domain message/name mismatch: %q", k.Message())
	}
	if k.Code().Domain() != d.ID() {
		t.Fatalf("kind code domain mismatch")
	}
	var _ KindDomain = d
}

func TestDomain_Stats(t *testing.T) {
	t.Parallel()
	d := NewEnumDomain[quark]("stats", WithCapacity(3))

	for range 5 {
		d.Raise(quarkUp, "")
	}
	st := d.Stats()
	if st.ID != d.ID() || st.Name != "stats" || st.Capacity != 3 || st.Raised != 5 {
		t.Fatalf("Stats: got=%+v", st)
	}
}

func TestDomain_ContractViolations(t *testing.T) {
	t.Parallel()
	d := NewEnumDomain[quark]("contracts")
	other := NewEnumDomain[quark]("other")

	cases := map[string]func(){
		"condition outside table": func() { d.Raise(quark(42), "") },
		"watch outside table":     func() { d.Watch(quark(6)) },
		"zero capacity":           func() { NewEnumDomain[quark]("", WithCapacity(0)) },
		"capacity too large":      func() { NewEnumDomain[quark]("", WithCapacity(maxCapacity+1)) },
		"zero pinned id":          func() { NewEnumDomain[quark]("", WithDomainID(0)) },
		"zero pinned kind id":     func() { NewEnumKindDomain[quark]("", WithDomainID(0)) },
		"foreign code":            func() { d.ConditionName(other.Watch(quarkUp).Code()) },
		"foreign status":          func() { d.StatusMessage(other.Raise(quarkUp, "")) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			expectContract(t, Precondition, fn)
		})
	}
}

func TestDomain_MaxCapacity(t *testing.T) {
	t.Parallel()
	d := NewEnumDomain[quark]("wide", WithCapacity(maxCapacity))

	if d.Capacity() != 65536 {
		t.Fatalf("capacity: want=65536 got=%d", d.Capacity())
	}
}

type emptyEnum uint8

func (emptyEnum) Conditions() []ConditionEntry { return nil }

type unnamedEnum uint8

func (unnamedEnum) Conditions() []ConditionEntry { return []ConditionEntry{{Message: "no name"}} }

func TestDomain_InvalidTables(t *testing.T) {
	t.Parallel()

	expectContract(t, Precondition, func() { NewEnumDomain[emptyEnum]("") })
	expectContract(t, Precondition, func() { NewEnumKindDomain[unnamedEnum]("") })
}
