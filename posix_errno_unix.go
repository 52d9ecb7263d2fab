//go:build linux || darwin

package xgxstatus

import "golang.org/x/sys/unix"

// errnoPairs lists platform errnos next to their POSIX conditions. Some
// platforms give two names one value (EAGAIN/EWOULDBLOCK on both, and
// ENOTSUP/EOPNOTSUPP on Linux); the earlier pair wins.
func errnoPairs() []errnoPair {
	return []errnoPair{
		{unix.E2BIG, E2BIG},
		{unix.EACCES, EACCES},
		{unix.EADDRINUSE, EADDRINUSE},
		{unix.EADDRNOTAVAIL, EADDRNOTAVAIL},
		{unix.EAFNOSUPPORT, EAFNOSUPPORT},
		{unix.EAGAIN, EAGAIN},
		{unix.EALREADY, EALREADY},
		{unix.EBADF, EBADF},
		{unix.EBADMSG, EBADMSG},
		{unix.EBUSY, EBUSY},
		{unix.ECANCELED, ECANCELED},
		{unix.ECHILD, ECHILD},
		{unix.ECONNABORTED, ECONNABORTED},
		{unix.ECONNREFUSED, ECONNREFUSED},
		{unix.ECONNRESET, ECONNRESET},
		{unix.EDEADLK, EDEADLK},
		{unix.EDESTADDRREQ, EDESTADDRREQ},
		{unix.EDOM, EDOM},
		{unix.EDQUOT, EDQUOT},
		{unix.EEXIST, EEXIST},
		{unix.EFAULT, EFAULT},
		{unix.EFBIG, EFBIG},
		{unix.EHOSTUNREACH, EHOSTUNREACH},
		{unix.EIDRM, EIDRM},
		{unix.EILSEQ, EILSEQ},
		{unix.EINPROGRESS, EINPROGRESS},
		{unix.EINTR, EINTR},
		{unix.EINVAL, EINVAL},
		{unix.EIO, EIO},
		{unix.EISCONN, EISCONN},
		{unix.EISDIR, EISDIR},
		{unix.ELOOP, ELOOP},
		{unix.EMFILE, EMFILE},
		{unix.EMLINK, EMLINK},
		{unix.EMSGSIZE, EMSGSIZE},
		{unix.EMULTIHOP, EMULTIHOP},
		{unix.ENAMETOOLONG, ENAMETOOLONG},
		{unix.ENETDOWN, ENETDOWN},
		{unix.ENETRESET, ENETRESET},
		{unix.ENETUNREACH, ENETUNREACH},
		{unix.ENFILE, ENFILE},
		{unix.ENOBUFS, ENOBUFS},
		{unix.ENODATA, ENODATA},
		{unix.ENODEV, ENODEV},
		{unix.ENOENT, ENOENT},
		{unix.ENOEXEC, ENOEXEC},
		{unix.ENOLCK, ENOLCK},
		{unix.ENOLINK, ENOLINK},
		{unix.ENOMEM, ENOMEM},
		{unix.ENOMSG, ENOMSG},
		{unix.ENOPROTOOPT, ENOPROTOOPT},
		{unix.ENOSPC, ENOSPC},
		{unix.ENOSR, ENOSR},
		{unix.ENOSTR, ENOSTR},
		{unix.ENOSYS, ENOSYS},
		{unix.ENOTCONN, ENOTCONN},
		{unix.ENOTDIR, ENOTDIR},
		{unix.ENOTEMPTY, ENOTEMPTY},
		{unix.ENOTRECOVERABLE, ENOTRECOVERABLE},
		{unix.ENOTSOCK, ENOTSOCK},
		{unix.ENOTSUP, ENOTSUP},
		{unix.ENOTTY, ENOTTY},
		{unix.ENXIO, ENXIO},
		{unix.EOPNOTSUPP, EOPNOTSUPP},
		{unix.EOVERFLOW, EOVERFLOW},
		{unix.EOWNERDEAD, EOWNERDEAD},
		{unix.EPERM, EPERM},
		{unix.EPIPE, EPIPE},
		{unix.EPROTO, EPROTO},
		{unix.EPROTONOSUPPORT, EPROTONOSUPPORT},
		{unix.EPROTOTYPE, EPROTOTYPE},
		{unix.ERANGE, ERANGE},
		{unix.EROFS, EROFS},
		{unix.ESPIPE, ESPIPE},
		{unix.ESRCH, ESRCH},
		{unix.ESTALE, ESTALE},
		{unix.ETIME, ETIME},
		{unix.ETIMEDOUT, ETIMEDOUT},
		{unix.ETXTBSY, ETXTBSY},
		{unix.EWOULDBLOCK, EWOULDBLOCK},
		{unix.EXDEV, EXDEV},
	}
}
