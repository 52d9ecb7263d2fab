// doc.go: package documentation for xgx-status.
//
// Package xgxstatus is a value-based status system. A failure is identified by
// a packed 64-bit Code naming its domain, its condition and, optionally, one
// incident slot in the domain's bounded incident store. The values built on
// top are small, copyable and comparable:
//   - Kind: a domain plus a condition ("I expect this class of failure").
//   - Status: one occurrence, resolved lazily through its domain.
//   - Detached: a Status whose detail was copied out and can no longer go stale.
//
// All three implement error, so they travel through ordinary Go error returns
// and are matched with errors.Is / errors.As.
//
// # Domains
//
// A domain mints codes and is the only authority for interpreting them. The
// capabilities are split into small interfaces (KindInspector, BaseInspector,
// Equivalence, KindBuilder, BaseBuilder, Named). Most code never implements
// them directly: declare a condition enumeration and let EnumDomain do it.
//
//	type DiskError int
//
//	const (
//		DiskFull DiskError = iota
//		DiskGone
//	)
//
//	func (DiskError) Conditions() []xgxstatus.ConditionEntry {
//		return []xgxstatus.ConditionEntry{
//			{Name: "DISK_FULL", Message: "No space left."},
//			{Name: "DISK_GONE", Message: "Device removed."},
//		}
//	}
//
//	s := xgxstatus.RaiseHere(DiskFull, "writing journal")
//	if errors.Is(s, xgxstatus.Watch(DiskFull)) { ... }
//
// # Incident Window
//
// Each full domain keeps a ring of incidents (DefaultCapacity for process-wide
// domains, LocalCapacity for goroutine-confined ones). Once the ring wraps, an
// older Status reports the newer incident in its slot. Call Detach to keep
// detail that must outlive the window.
//
// # Registries
//
//   - StaticDomain[E] / Raise / Watch: one domain per enumeration per process,
//     built exactly once on first use.
//   - Local / RaiseLocal / WatchLocal: one domain per enumeration per Local,
//     carried through context.Context and confined to one goroutine.
//
// Domains are not internally synchronized. Raising on a shared domain from
// several goroutines is a data race; give each long-lived worker goroutine a
// NewLocal, and let short-lived work borrow one with AcquireLocal / Release.
// Domain ids are 16 bits and never freed, so Locals must be recycled rather
// than created per request.
//
// # Error Trees
//
// StatusOf, DetachedOf, CodeOf and HasKind follow errors.As / errors.Is and
// stop at the first match. Walk visits every node of a tree built with
// errors.Join; Statuses and HasAnyKind use it to see all of them.
//
// # Contracts
//
// Misuse (a field wider than 16 bits, a zero Status, a condition outside its
// table) is a programming error, not a status. It panics with a
// *ContractError that carries a stack. IsContractViolation classifies a
// recovered value.
//
// # Formatting
//
// Status, Detached and Kind implement fmt.Formatter and slog.LogValuer:
//   - `%v`, `%s`   → the message
//   - `%+v`        → verbose, multi-line (domain, code, condition, msg, location)
//   - `%q`         → quoted message
//
// # Performance Notes
//
//   - Raise on an enum domain does not allocate; RaiseHere adds one
//     runtime.Callers into a fixed array and resolves file/line only when read.
//   - Comparisons are mask-and-compare on the packed code.
//   - Contract checks take constant strings, so the passing path does no work.
package xgxstatus
