// posix_errno.go: bridge from platform errno values to the POSIX domain.
package xgxstatus

import (
	"errors"
	"sync"
	"syscall"
)

type errnoPair struct {
	errno syscall.Errno
	cond  PosixError
}

type errnoTable struct {
	toPosix map[syscall.Errno]PosixError
	toErrno map[PosixError]syscall.Errno
}

var errnoIndex = sync.OnceValue(func() errnoTable {
	pairs := errnoPairs()
	t := errnoTable{
		toPosix: make(map[syscall.Errno]PosixError, len(pairs)),
		toErrno: make(map[PosixError]syscall.Errno, len(pairs)),
	}
	for _, p := range pairs {
		if _, ok := t.toPosix[p.errno]; !ok {
			t.toPosix[p.errno] = p.cond
		}
		if _, ok := t.toErrno[p.cond]; !ok {
			t.toErrno[p.cond] = p.errno
		}
	}
	return t
})

// PosixFromErrno translates a platform errno into its POSIX condition.
func PosixFromErrno(errno syscall.Errno) (PosixError, bool) {
	c, ok := errnoIndex().toPosix[errno]
	return c, ok
}

// ErrnoOf returns the platform errno for cond, if the platform has one.
func ErrnoOf(cond PosixError) (syscall.Errno, bool) {
	e, ok := errnoIndex().toErrno[cond]
	return e, ok
}

// RaiseErrno finds a syscall.Errno in err's chain and raises the matching
// POSIX condition on the process-wide domain. The incident keeps err's text as
// its message, the errno as its platform error and the caller as its location.
func RaiseErrno(err error) (Status, bool) {
	var errno syscall.Errno
	if err == nil || !errors.As(err, &errno) {
		return Status{}, false
	}
	cond, ok := PosixFromErrno(errno)
	if !ok {
		return Status{}, false
	}
	in := Incident{
		Message:       err.Error(),
		Location:      callerLocation(1),
		PlatformError: int(errno),
	}
	return Posix().RaiseIncident(cond, in), true
}
