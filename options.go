package xgxstatus

// DefaultCapacity is the incident ring size of process-wide domains.
const DefaultCapacity = 16

// LocalCapacity is the incident ring size of goroutine-confined domains: only
// the most recent incident is retained.
const LocalCapacity = 1

type domainOptions struct {
	id       uint16
	capacity int
}

// DomainOption configures NewEnumDomain and NewEnumKindDomain.
type DomainOption interface {
	applyToDomain(o *domainOptions)
}

type (
	// CapacityOption is returned by WithCapacity.
	CapacityOption struct{ n int }
	// DomainIDOption is returned by WithDomainID.
	DomainIDOption struct{ id uint16 }
)

// WithCapacity sets the incident ring size (1..65536). Ignored by kind-only
// domains.
func WithCapacity(n int) CapacityOption { return CapacityOption{n: n} }

// WithDomainID pins the domain id instead of allocating one. The caller is
// responsible for keeping it unique; 0 is rejected.
func WithDomainID(id uint16) DomainIDOption { return DomainIDOption{id: id} }

func (o CapacityOption) applyToDomain(d *domainOptions) { d.capacity = o.n }

func (o DomainIDOption) applyToDomain(d *domainOptions) {
	precondition(o.id != 0, "pinned domain id is not zero")
	d.id = o.id
}

func resolveDomainOptions(opts []DomainOption) domainOptions {
	o := domainOptions{capacity: DefaultCapacity}
	for _, opt := range opts {
		if opt != nil {
			opt.applyToDomain(&o)
		}
	}
	return o
}
