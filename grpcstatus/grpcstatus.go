// Package grpcstatus maps xgxstatus values onto gRPC status codes.
//
// Only the mapping lives here; nothing dials or serves. The built-in POSIX and
// Win32 domains are mapped out of the box, and custom domains register their
// own function on a Mapper.
package grpcstatus

import (
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	xgxstatus "github.com/xgx-io/xgx-status"
)

// CodeFunc maps a code minted by one domain to a gRPC code.
type CodeFunc func(xgxstatus.Code) codes.Code

// Mapper dispatches on the domain id of a code. It is safe for concurrent use.
type Mapper struct {
	mu       sync.RWMutex
	byDomain map[uint16]CodeFunc
}

// NewMapper returns a Mapper that knows the POSIX and Win32 domains.
func NewMapper() *Mapper {
	m := &Mapper{byDomain: make(map[uint16]CodeFunc)}
	m.Handle(xgxstatus.Posix().ID(), posixCode)
	m.Handle(xgxstatus.Win32().ID(), win32Code)
	return m
}

// Handle registers fn for codes of the given domain, replacing any previous
// registration.
func (m *Mapper) Handle(domainID uint16, fn CodeFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byDomain[domainID] = fn
}

// Code returns the gRPC code for c. Unknown domains map to codes.Unknown.
func (m *Mapper) Code(c xgxstatus.Coded) codes.Code {
	if c == nil {
		return codes.OK
	}
	code := c.Code()
	m.mu.RLock()
	fn, ok := m.byDomain[code.Domain()]
	m.mu.RUnlock()
	if !ok {
		return codes.Unknown
	}
	return fn(code)
}

// GRPCStatus returns the gRPC status for any error: gRPC errors pass through,
// xgxstatus values are mapped, and everything else is Internal.
func (m *Mapper) GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	if st, ok := status.FromError(err); ok {
		return st
	}
	if d, ok := xgxstatus.DetachedOf(err); ok {
		return status.New(m.Code(d), d.Message())
	}
	return status.New(codes.Internal, err.Error())
}

// ToGRPCError converts err to a gRPC status error.
func (m *Mapper) ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return m.GRPCStatus(err).Err()
}

var defaultMapper = sync.OnceValue(NewMapper)

// Default returns the process-wide Mapper used by the package functions.
func Default() *Mapper { return defaultMapper() }

// CodeOf maps c with the default Mapper.
func CodeOf(c xgxstatus.Coded) codes.Code { return Default().Code(c) }

// GRPCStatus converts err with the default Mapper.
func GRPCStatus(err error) *status.Status { return Default().GRPCStatus(err) }

// ToGRPCError converts err with the default Mapper.
func ToGRPCError(err error) error { return Default().ToGRPCError(err) }

// FromGRPCError raises the POSIX condition closest to err's gRPC code,
// keeping the gRPC message. Non-gRPC errors, nil and codes.OK report false.
func FromGRPCError(err error) (xgxstatus.Status, bool) {
	if err == nil {
		return xgxstatus.Status{}, false
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() == codes.OK {
		return xgxstatus.Status{}, false
	}
	cond, ok := posixForCode[st.Code()]
	if !ok {
		cond = xgxstatus.EIO
	}
	return xgxstatus.Posix().Raise(cond, st.Message()), true
}
