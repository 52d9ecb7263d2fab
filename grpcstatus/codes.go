package grpcstatus

import (
	"google.golang.org/grpc/codes"

	xgxstatus "github.com/xgx-io/xgx-status"
)

func posixCode(c xgxstatus.Code) codes.Code {
	switch xgxstatus.Posix().ConditionOf(c) {
	case xgxstatus.ECANCELED, xgxstatus.EINTR:
		return codes.Canceled
	case xgxstatus.EINVAL, xgxstatus.E2BIG, xgxstatus.EBADF, xgxstatus.EBADMSG,
		xgxstatus.EDOM, xgxstatus.EFAULT, xgxstatus.EILSEQ, xgxstatus.ENAMETOOLONG,
		xgxstatus.EDESTADDRREQ, xgxstatus.EMSGSIZE, xgxstatus.ENOTDIR, xgxstatus.EISDIR:
		return codes.InvalidArgument
	case xgxstatus.ETIMEDOUT, xgxstatus.ETIME:
		return codes.DeadlineExceeded
	case xgxstatus.ENOENT, xgxstatus.ENODEV, xgxstatus.ENXIO, xgxstatus.ESRCH,
		xgxstatus.ECHILD, xgxstatus.ENODATA, xgxstatus.ENOMSG:
		return codes.NotFound
	case xgxstatus.EEXIST, xgxstatus.EADDRINUSE, xgxstatus.EISCONN, xgxstatus.EALREADY:
		return codes.AlreadyExists
	case xgxstatus.EACCES, xgxstatus.EPERM, xgxstatus.EROFS:
		return codes.PermissionDenied
	case xgxstatus.ENOMEM, xgxstatus.ENOSPC, xgxstatus.EDQUOT, xgxstatus.EMFILE,
		xgxstatus.ENFILE, xgxstatus.ENOBUFS, xgxstatus.ENOLCK, xgxstatus.EMLINK,
		xgxstatus.ENOSR, xgxstatus.EFBIG:
		return codes.ResourceExhausted
	case xgxstatus.ENOTEMPTY, xgxstatus.ENOTCONN, xgxstatus.ETXTBSY, xgxstatus.EXDEV,
		xgxstatus.ENOTTY, xgxstatus.ESPIPE, xgxstatus.ENOTSOCK, xgxstatus.EPROTOTYPE:
		return codes.FailedPrecondition
	case xgxstatus.EDEADLK, xgxstatus.ECONNABORTED, xgxstatus.EOWNERDEAD:
		return codes.Aborted
	case xgxstatus.ERANGE, xgxstatus.EOVERFLOW:
		return codes.OutOfRange
	case xgxstatus.ENOSYS, xgxstatus.ENOTSUP, xgxstatus.EOPNOTSUPP,
		xgxstatus.EAFNOSUPPORT, xgxstatus.EPROTONOSUPPORT, xgxstatus.ENOPROTOOPT:
		return codes.Unimplemented
	case xgxstatus.EAGAIN, xgxstatus.EWOULDBLOCK, xgxstatus.EBUSY, xgxstatus.EINPROGRESS,
		xgxstatus.ECONNREFUSED, xgxstatus.ECONNRESET, xgxstatus.EHOSTUNREACH,
		xgxstatus.ENETDOWN, xgxstatus.ENETRESET, xgxstatus.ENETUNREACH,
		xgxstatus.EPIPE, xgxstatus.EADDRNOTAVAIL:
		return codes.Unavailable
	case xgxstatus.EIO, xgxstatus.ENOTRECOVERABLE, xgxstatus.ESTALE:
		return codes.DataLoss
	default:
		return codes.Internal
	}
}

func win32Code(c xgxstatus.Code) codes.Code {
	switch xgxstatus.Win32().ConditionOf(c) {
	case xgxstatus.ERROR_OPERATION_ABORTED:
		return codes.Canceled
	case xgxstatus.ERROR_INVALID_PARAMETER, xgxstatus.ERROR_INVALID_DATA,
		xgxstatus.ERROR_INVALID_NAME, xgxstatus.ERROR_BAD_PATHNAME,
		xgxstatus.ERROR_INVALID_HANDLE, xgxstatus.ERROR_BAD_ARGUMENTS:
		return codes.InvalidArgument
	case xgxstatus.ERROR_WAIT_TIMEOUT, xgxstatus.ERROR_SEM_TIMEOUT:
		return codes.DeadlineExceeded
	case xgxstatus.ERROR_FILE_NOT_FOUND, xgxstatus.ERROR_PATH_NOT_FOUND,
		xgxstatus.ERROR_MOD_NOT_FOUND, xgxstatus.ERROR_PROC_NOT_FOUND,
		xgxstatus.ERROR_ENVVAR_NOT_FOUND, xgxstatus.ERROR_BAD_NETPATH:
		return codes.NotFound
	case xgxstatus.ERROR_FILE_EXISTS, xgxstatus.ERROR_ALREADY_EXISTS:
		return codes.AlreadyExists
	case xgxstatus.ERROR_ACCESS_DENIED, xgxstatus.ERROR_NETWORK_ACCESS_DENIED,
		xgxstatus.ERROR_WRITE_PROTECT, xgxstatus.ERROR_INVALID_PASSWORD:
		return codes.PermissionDenied
	case xgxstatus.ERROR_NOT_ENOUGH_MEMORY, xgxstatus.ERROR_OUTOFMEMORY,
		xgxstatus.ERROR_DISK_FULL, xgxstatus.ERROR_HANDLE_DISK_FULL,
		xgxstatus.ERROR_TOO_MANY_OPEN_FILES:
		return codes.ResourceExhausted
	case xgxstatus.ERROR_DIR_NOT_EMPTY, xgxstatus.ERROR_NOT_READY:
		return codes.FailedPrecondition
	case xgxstatus.ERROR_SHARING_VIOLATION, xgxstatus.ERROR_LOCK_VIOLATION:
		return codes.Aborted
	case xgxstatus.ERROR_HANDLE_EOF, xgxstatus.ERROR_NEGATIVE_SEEK:
		return codes.OutOfRange
	case xgxstatus.ERROR_NOT_SUPPORTED, xgxstatus.ERROR_CALL_NOT_IMPLEMENTED,
		xgxstatus.ERROR_INVALID_FUNCTION:
		return codes.Unimplemented
	case xgxstatus.ERROR_BUSY, xgxstatus.ERROR_PIPE_BUSY, xgxstatus.ERROR_NETWORK_BUSY,
		xgxstatus.ERROR_REM_NOT_LIST, xgxstatus.ERROR_DEV_NOT_EXIST:
		return codes.Unavailable
	case xgxstatus.ERROR_CRC, xgxstatus.ERROR_READ_FAULT, xgxstatus.ERROR_WRITE_FAULT:
		return codes.DataLoss
	default:
		return codes.Unknown
	}
}

// posixForCode is the reverse direction used by FromGRPCError.
var posixForCode = map[codes.Code]xgxstatus.PosixError{
	codes.Canceled:           xgxstatus.ECANCELED,
	codes.Unknown:            xgxstatus.EIO,
	codes.InvalidArgument:    xgxstatus.EINVAL,
	codes.DeadlineExceeded:   xgxstatus.ETIMEDOUT,
	codes.NotFound:           xgxstatus.ENOENT,
	codes.AlreadyExists:      xgxstatus.EEXIST,
	codes.PermissionDenied:   xgxstatus.EACCES,
	codes.ResourceExhausted:  xgxstatus.ENOSPC,
	codes.FailedPrecondition: xgxstatus.ENOTRECOVERABLE,
	codes.Aborted:            xgxstatus.ECONNABORTED,
	codes.OutOfRange:         xgxstatus.ERANGE,
	codes.Unimplemented:      xgxstatus.ENOSYS,
	codes.Internal:           xgxstatus.EIO,
	codes.Unavailable:        xgxstatus.EAGAIN,
	codes.DataLoss:           xgxstatus.EIO,
	codes.Unauthenticated:    xgxstatus.EPERM,
}
