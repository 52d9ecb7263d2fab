// posix.go: the built-in POSIX condition domain.
//
// PosixError enumerates the error conditions of POSIX.1-2017 <errno.h>. The
// names are the canonical errno macro names; the numeric values are condition
// ids in the "posix" domain, not platform errno values. Use PosixFromErrno to
// translate a platform errno.
package xgxstatus

import "fmt"

// PosixError is a POSIX error condition.
type PosixError uint16

const (
	E2BIG PosixError = iota
	EACCES
	EADDRINUSE
	EADDRNOTAVAIL
	EAFNOSUPPORT
	EAGAIN
	EALREADY
	EBADF
	EBADMSG
	EBUSY
	ECANCELED
	ECHILD
	ECONNABORTED
	ECONNREFUSED
	ECONNRESET
	EDEADLK
	EDESTADDRREQ
	EDOM
	EDQUOT
	EEXIST
	EFAULT
	EFBIG
	EHOSTUNREACH
	EIDRM
	EILSEQ
	EINPROGRESS
	EINTR
	EINVAL
	EIO
	EISCONN
	EISDIR
	ELOOP
	EMFILE
	EMLINK
	EMSGSIZE
	EMULTIHOP
	ENAMETOOLONG
	ENETDOWN
	ENETRESET
	ENETUNREACH
	ENFILE
	ENOBUFS
	ENODATA
	ENODEV
	ENOENT
	ENOEXEC
	ENOLCK
	ENOLINK
	ENOMEM
	ENOMSG
	ENOPROTOOPT
	ENOSPC
	ENOSR
	ENOSTR
	ENOSYS
	ENOTCONN
	ENOTDIR
	ENOTEMPTY
	ENOTRECOVERABLE
	ENOTSOCK
	ENOTSUP
	ENOTTY
	ENXIO
	EOPNOTSUPP
	EOVERFLOW
	EOWNERDEAD
	EPERM
	EPIPE
	EPROTO
	EPROTONOSUPPORT
	EPROTOTYPE
	ERANGE
	EROFS
	ESPIPE
	ESRCH
	ESTALE
	ETIME
	ETIMEDOUT
	ETXTBSY
	EWOULDBLOCK
	EXDEV
)

var posixConditions = [...]ConditionEntry{
	E2BIG:           {"E2BIG", "Argument list too long."},
	EACCES:          {"EACCES", "Permission denied."},
	EADDRINUSE:      {"EADDRINUSE", "Address in use."},
	EADDRNOTAVAIL:   {"EADDRNOTAVAIL", "Address not available."},
	EAFNOSUPPORT:    {"EAFNOSUPPORT", "Address family not supported."},
	EAGAIN:          {"EAGAIN", "Resource unavailable, try again."},
	EALREADY:        {"EALREADY", "Connection already in progress."},
	EBADF:           {"EBADF", "Bad file descriptor."},
	EBADMSG:         {"EBADMSG", "Bad message."},
	EBUSY:           {"EBUSY", "Device or resource busy."},
	ECANCELED:       {"ECANCELED", "Operation canceled."},
	ECHILD:          {"ECHILD", "No child processes."},
	ECONNABORTED:    {"ECONNABORTED", "Connection aborted."},
	ECONNREFUSED:    {"ECONNREFUSED", "Connection refused."},
	ECONNRESET:      {"ECONNRESET", "Connection reset."},
	EDEADLK:         {"EDEADLK", "Resource deadlock would occur."},
	EDESTADDRREQ:    {"EDESTADDRREQ", "Destination address required."},
	EDOM:            {"EDOM", "Mathematics argument out of domain of function."},
	EDQUOT:          {"EDQUOT", "Reserved."},
	EEXIST:          {"EEXIST", "File exists."},
	EFAULT:          {"EFAULT", "Bad address."},
	EFBIG:           {"EFBIG", "File too large."},
	EHOSTUNREACH:    {"EHOSTUNREACH", "Host is unreachable."},
	EIDRM:           {"EIDRM", "Identifier removed."},
	EILSEQ:          {"EILSEQ", "Illegal byte sequence."},
	EINPROGRESS:     {"EINPROGRESS", "Operation in progress."},
	EINTR:           {"EINTR", "Interrupted function."},
	EINVAL:          {"EINVAL", "Invalid argument."},
	EIO:             {"EIO", "I/O error."},
	EISCONN:         {"EISCONN", "Socket is connected."},
	EISDIR:          {"EISDIR", "Is a directory."},
	ELOOP:           {"ELOOP", "Too many levels of symbolic links."},
	EMFILE:          {"EMFILE", "File descriptor value too large."},
	EMLINK:          {"EMLINK", "Too many links."},
	EMSGSIZE:        {"EMSGSIZE", "Message too large."},
	EMULTIHOP:       {"EMULTIHOP", "Reserved."},
	ENAMETOOLONG:    {"ENAMETOOLONG", "Filename too long."},
	ENETDOWN:        {"ENETDOWN", "Network is down."},
	ENETRESET:       {"ENETRESET", "Connection aborted by network."},
	ENETUNREACH:     {"ENETUNREACH", "Network unreachable."},
	ENFILE:          {"ENFILE", "Too many files open in system."},
	ENOBUFS:         {"ENOBUFS", "No buffer space available."},
	ENODATA:         {"ENODATA", "No message is available on the STREAM head read queue."},
	ENODEV:          {"ENODEV", "No such device."},
	ENOENT:          {"ENOENT", "No such file or directory."},
	ENOEXEC:         {"ENOEXEC", "Executable file format error."},
	ENOLCK:          {"ENOLCK", "No locks available."},
	ENOLINK:         {"ENOLINK", "Reserved."},
	ENOMEM:          {"ENOMEM", "Not enough space."},
	ENOMSG:          {"ENOMSG", "No message of the desired type."},
	ENOPROTOOPT:     {"ENOPROTOOPT", "Protocol not available."},
	ENOSPC:          {"ENOSPC", "No space left on device."},
	ENOSR:           {"ENOSR", "No STREAM resources."},
	ENOSTR:          {"ENOSTR", "Not a STREAM."},
	ENOSYS:          {"ENOSYS", "Functionality not supported."},
	ENOTCONN:        {"ENOTCONN", "The socket is not connected."},
	ENOTDIR:         {"ENOTDIR", "Not a directory or a symbolic link to a directory."},
	ENOTEMPTY:       {"ENOTEMPTY", "Directory not empty."},
	ENOTRECOVERABLE: {"ENOTRECOVERABLE", "State not recoverable."},
	ENOTSOCK:        {"ENOTSOCK", "Not a socket."},
	ENOTSUP:         {"ENOTSUP", "Not supported."},
	ENOTTY:          {"ENOTTY", "Inappropriate I/O control operation."},
	ENXIO:           {"ENXIO", "No such device or address."},
	EOPNOTSUPP:      {"EOPNOTSUPP", "Operation not supported on socket."},
	EOVERFLOW:       {"EOVERFLOW", "Value too large to be stored in data type."},
	EOWNERDEAD:      {"EOWNERDEAD", "Previous owner died."},
	EPERM:           {"EPERM", "Operation not permitted."},
	EPIPE:           {"EPIPE", "Broken pipe."},
	EPROTO:          {"EPROTO", "Protocol error."},
	EPROTONOSUPPORT: {"EPROTONOSUPPORT", "Protocol not supported."},
	EPROTOTYPE:      {"EPROTOTYPE", "Protocol wrong type for socket."},
	ERANGE:          {"ERANGE", "Result too large."},
	EROFS:           {"EROFS", "Read-only file system."},
	ESPIPE:          {"ESPIPE", "Invalid seek."},
	ESRCH:           {"ESRCH", "No such process."},
	ESTALE:          {"ESTALE", "Reserved."},
	ETIME:           {"ETIME", "Stream ioctl() timeout."},
	ETIMEDOUT:       {"ETIMEDOUT", "Connection timed out."},
	ETXTBSY:         {"ETXTBSY", "Text file busy."},
	EWOULDBLOCK:     {"EWOULDBLOCK", "Operation would block."},
	EXDEV:           {"EXDEV", "Cross-device link."},
}

// Conditions returns a copy of the condition table.
func (PosixError) Conditions() []ConditionEntry {
	out := make([]ConditionEntry, len(posixConditions))
	copy(out, posixConditions[:])
	return out
}

func (PosixError) DomainName() string { return "posix" }

// EquivalentTo pairs the conditions POSIX allows to share a value:
// EAGAIN with EWOULDBLOCK, and ENOTSUP with EOPNOTSUPP.
func (e PosixError) EquivalentTo(o PosixError) bool {
	switch e {
	case o:
		return true
	case EAGAIN:
		return o == EWOULDBLOCK
	case EWOULDBLOCK:
		return o == EAGAIN
	case ENOTSUP:
		return o == EOPNOTSUPP
	case EOPNOTSUPP:
		return o == ENOTSUP
	default:
		return false
	}
}

func (e PosixError) String() string {
	if int(e) < len(posixConditions) {
		return posixConditions[e].Name
	}
	return fmt.Sprintf("PosixError(%d)", uint16(e))
}

// Posix returns the process-wide POSIX domain.
func Posix() *EnumDomain[PosixError] {
	return StaticDomain[PosixError]()
}

var _ Domain = (*EnumDomain[PosixError])(nil)
