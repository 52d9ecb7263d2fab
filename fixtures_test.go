// fixtures_test.go: shared test enumeration, counting domain and helpers.
package xgxstatus

import (
	"strings"
	"testing"
)

// quark is the condition enumeration most package tests raise.
type quark uint8

const (
	quarkUp quark = iota
	quarkDown
	quarkTop
	quarkBottom
	quarkStrange
	quarkCharm
)

var quarkConditions = []ConditionEntry{
	{Name: "UP"},
	{Name: "DOWN"},
	{Name: "TOP"},
	{Name: "BOTTOM"},
	{Name: "STRANGE", Message: "Strange quark."},
	{Name: "CHARM", Message: "Charm quark."},
}

func (quark) Conditions() []ConditionEntry { return quarkConditions }

// lepton carries a DomainName and an equivalence, like the built-in domains.
type lepton uint8

const (
	leptonElectron lepton = iota
	leptonMuon
	leptonTau
)

func (lepton) Conditions() []ConditionEntry {
	return []ConditionEntry{
		{Name: "ELECTRON", Message: "Electron."},
		{Name: "MUON", Message: "Muon."},
		{Name: "TAU", Message: "Tau."},
	}
}

func (lepton) DomainName() string { return "lepton" }

// Muons and taus are both heavy leptons.
func (l lepton) EquivalentTo(o lepton) bool {
	return l == o || (l != leptonElectron && o != leptonElectron)
}

// countingDomain composes an EnumDomain and counts how often detail is
// resolved through it.
type countingDomain struct {
	*EnumDomain[quark]
	kindMessages    int
	statusMessages  int
	statusLocations int
	equivalences    int
}

func newCountingDomain() *countingDomain {
	return &countingDomain{EnumDomain: NewEnumDomain[quark]("test")}
}

func (d *countingDomain) KindMessage(k Kind) string {
	d.kindMessages++
	return d.EnumDomain.KindMessage(k)
}

func (d *countingDomain) StatusMessage(s Status) string {
	d.statusMessages++
	return d.EnumDomain.StatusMessage(s)
}

func (d *countingDomain) StatusLocation(s Status) Location {
	d.statusLocations++
	return d.EnumDomain.StatusLocation(s)
}

func (d *countingDomain) HasEquivalentCondition(a Status, b Code) bool {
	d.equivalences++
	return false
}

func (d *countingDomain) raise(cond quark, message string) Status {
	return NewStatus(d.Record(cond, Incident{Message: message}), d)
}

func (d *countingDomain) raiseHere(cond quark, message string) Status {
	in := Incident{Message: message, Location: callerLocation(1)}
	return NewStatus(d.Record(cond, in), d)
}

func (d *countingDomain) watch(cond quark) Kind {
	return NewKind(d.MakeKindCode(uint64(cond)), d)
}

var _ Domain = (*countingDomain)(nil)

// expectContract runs fn and fails unless it panics with a *ContractError of
// the given kind.
func expectContract(t *testing.T, kind ContractKind, fn func()) *ContractError {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()
	ce, ok := AsContractError(got)
	if !ok {
		t.Fatalf("expected contract violation, got=%v", got)
	}
	if ce.Kind != kind {
		t.Fatalf("contract kind: want=%v got=%v", kind, ce.Kind)
	}
	return ce
}

// containsInOrder reports whether all needles appear in haystack in order.
func containsInOrder(haystack string, needles ...string) bool {
	pos := 0
	for _, n := range needles {
		i := strings.Index(haystack[pos:], n)
		if i < 0 {
			return false
		}
		pos += i + len(n)
	}
	return true
}
