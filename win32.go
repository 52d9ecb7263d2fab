// win32.go: the built-in Win32 condition domain.
//
// Win32Error enumerates the classic Win32 system error conditions. Names follow
// the ERROR_* constants of winerror.h; the numeric values are condition ids in
// the "win32" domain, not Win32 error numbers. Some messages keep the %1 / %2
// insert markers of the system message table.
package xgxstatus

import "fmt"

// Win32Error is a Win32 error condition.
type Win32Error uint16

const (
	ERROR_INVALID_FUNCTION Win32Error = iota
	ERROR_FILE_NOT_FOUND
	ERROR_PATH_NOT_FOUND
	ERROR_TOO_MANY_OPEN_FILES
	ERROR_ACCESS_DENIED
	ERROR_INVALID_HANDLE
	ERROR_ARENA_TRASHED
	ERROR_NOT_ENOUGH_MEMORY
	ERROR_INVALID_BLOCK
	ERROR_BAD_ENVIRONMENT
	ERROR_BAD_FORMAT
	ERROR_INVALID_ACCESS
	ERROR_INVALID_DATA
	ERROR_OUTOFMEMORY
	ERROR_INVALID_DRIVE
	ERROR_CURRENT_DIRECTORY
	ERROR_NOT_SAME_DEVICE
	ERROR_NO_MORE_FILES
	ERROR_WRITE_PROTECT
	ERROR_BAD_UNIT
	ERROR_NOT_READY
	ERROR_BAD_COMMAND
	ERROR_CRC
	ERROR_BAD_LENGTH
	ERROR_SEEK
	ERROR_NOT_DOS_DISK
	ERROR_SECTOR_NOT_FOUND
	ERROR_OUT_OF_PAPER
	ERROR_WRITE_FAULT
	ERROR_READ_FAULT
	ERROR_GEN_FAILURE
	ERROR_SHARING_VIOLATION
	ERROR_LOCK_VIOLATION
	ERROR_WRONG_DISK
	ERROR_SHARING_BUFFER_EXCEEDED
	ERROR_HANDLE_EOF
	ERROR_HANDLE_DISK_FULL
	ERROR_NOT_SUPPORTED
	ERROR_REM_NOT_LIST
	ERROR_DUP_NAME
	ERROR_BAD_NETPATH
	ERROR_NETWORK_BUSY
	ERROR_DEV_NOT_EXIST
	ERROR_TOO_MANY_CMDS
	ERROR_ADAP_HDW_ERR
	ERROR_BAD_NET_RESP
	ERROR_UNEXP_NET_ERR
	ERROR_BAD_REM_ADAP
	ERROR_PRINTQ_FULL
	ERROR_NO_SPOOL_SPACE
	ERROR_PRINT_CANCELED
	ERROR_NETNAME_DELETED
	ERROR_NETWORK_ACCESS_DENIED
	ERROR_BAD_DEV_TYPE
	ERROR_BAD_NET_NAME
	ERROR_TOO_MANY_NAMES
	ERROR_TOO_MANY_SESS
	ERROR_SHARING_PAUSED
	ERROR_REQ_NOT_ACCEP
	ERROR_REDIR_PAUSED
	ERROR_FILE_EXISTS
	ERROR_CANNOT_MAKE
	ERROR_FAIL_I24
	ERROR_OUT_OF_STRUCTURES
	ERROR_ALREADY_ASSIGNED
	ERROR_INVALID_PASSWORD
	ERROR_INVALID_PARAMETER
	ERROR_NET_WRITE_FAULT
	ERROR_NO_PROC_SLOTS
	ERROR_TOO_MANY_SEMAPHORES
	ERROR_EXCL_SEM_ALREADY_OWNED
	ERROR_SEM_IS_SET
	ERROR_TOO_MANY_SEM_REQUESTS
	ERROR_INVALID_AT_INTERRUPT_TIME
	ERROR_SEM_OWNER_DIED
	ERROR_SEM_USER_LIMIT
	ERROR_DISK_CHANGE
	ERROR_DRIVE_LOCKED
	ERROR_BROKEN_PIPE
	ERROR_OPEN_FAILED
	ERROR_BUFFER_OVERFLOW
	ERROR_DISK_FULL
	ERROR_NO_MORE_SEARCH_HANDLES
	ERROR_INVALID_TARGET_HANDLE
	ERROR_INVALID_CATEGORY
	ERROR_INVALID_VERIFY_SWITCH
	ERROR_BAD_DRIVER_LEVEL
	ERROR_CALL_NOT_IMPLEMENTED
	ERROR_SEM_TIMEOUT
	ERROR_INSUFFICIENT_BUFFER
	ERROR_INVALID_NAME
	ERROR_INVALID_LEVEL
	ERROR_NO_VOLUME_LABEL
	ERROR_MOD_NOT_FOUND
	ERROR_PROC_NOT_FOUND
	ERROR_WAIT_NO_CHILDREN
	ERROR_CHILD_NOT_COMPLETE
	ERROR_DIRECT_ACCESS_HANDLE
	ERROR_NEGATIVE_SEEK
	ERROR_SEEK_ON_DEVICE
	ERROR_IS_JOIN_TARGET
	ERROR_IS_JOINED
	ERROR_IS_SUBSTED
	ERROR_NOT_JOINED
	ERROR_NOT_SUBSTED
	ERROR_JOIN_TO_JOIN
	ERROR_SUBST_TO_SUBST
	ERROR_JOIN_TO_SUBST
	ERROR_SUBST_TO_JOIN
	ERROR_BUSY_DRIVE
	ERROR_SAME_DRIVE
	ERROR_DIR_NOT_ROOT
	ERROR_DIR_NOT_EMPTY
	ERROR_IS_SUBST_PATH
	ERROR_IS_JOIN_PATH
	ERROR_PATH_BUSY
	ERROR_IS_SUBST_TARGET
	ERROR_SYSTEM_TRACE
	ERROR_INVALID_EVENT_COUNT
	ERROR_TOO_MANY_MUXWAITERS
	ERROR_INVALID_LIST_FORMAT
	ERROR_LABEL_TOO_LONG
	ERROR_TOO_MANY_TCBS
	ERROR_SIGNAL_REFUSED
	ERROR_DISCARDED
	ERROR_NOT_LOCKED
	ERROR_BAD_THREADID_ADDR
	ERROR_BAD_ARGUMENTS
	ERROR_BAD_PATHNAME
	ERROR_SIGNAL_PENDING
	ERROR_MAX_THRDS_REACHED
	ERROR_LOCK_FAILED
	ERROR_BUSY
	ERROR_CANCEL_VIOLATION
	ERROR_ATOMIC_LOCKS_NOT_SUPPORTED
	ERROR_INVALID_SEGMENT_NUMBER
	ERROR_INVALID_ORDINAL
	ERROR_ALREADY_EXISTS
	ERROR_INVALID_FLAG_NUMBER
	ERROR_SEM_NOT_FOUND
	ERROR_INVALID_STARTING_CODESEG
	ERROR_INVALID_STACKSEG
	ERROR_INVALID_MODULETYPE
	ERROR_INVALID_EXE_SIGNATURE
	ERROR_EXE_MARKED_INVALID
	ERROR_BAD_EXE_FORMAT
	ERROR_ITERATED_DATA_EXCEEDS_64k
	ERROR_INVALID_MINALLOCSIZE
	ERROR_DYNLINK_FROM_INVALID_RING
	ERROR_IOPL_NOT_ENABLED
	ERROR_INVALID_SEGDPL
	ERROR_AUTODATASEG_EXCEEDS_64k
	ERROR_RING2SEG_MUST_BE_MOVABLE
	ERROR_RELOC_CHAIN_XEEDS_SEGLIM
	ERROR_INFLOOP_IN_RELOC_CHAIN
	ERROR_ENVVAR_NOT_FOUND
	ERROR_NO_SIGNAL_SENT
	ERROR_FILENAME_EXCED_RANGE
	ERROR_RING2_STACK_IN_USE
	ERROR_META_EXPANSION_TOO_LONG
	ERROR_INVALID_SIGNAL_NUMBER
	ERROR_THREAD_1_INACTIVE
	ERROR_LOCKED
	ERROR_TOO_MANY_MODULES
	ERROR_NESTING_NOT_ALLOWED
	ERROR_EXE_MACHINE_TYPE_MISMATCH
	ERROR_BAD_PIPE
	ERROR_PIPE_BUSY
	ERROR_NO_DATA
	ERROR_PIPE_NOT_CONNECTED
	ERROR_MORE_DATA
	ERROR_VC_DISCONNECTED
	ERROR_INVALID_EA_NAME
	ERROR_EA_LIST_INCONSISTENT
	ERROR_WAIT_TIMEOUT
	ERROR_NO_MORE_ITEMS
	ERROR_CANNOT_COPY
	ERROR_DIRECTORY
	ERROR_EAS_DIDNT_FIT
	ERROR_EA_FILE_CORRUPT
	ERROR_EA_TABLE_FULL
	ERROR_INVALID_EA_HANDLE
	ERROR_EAS_NOT_SUPPORTED
	ERROR_NOT_OWNER
	ERROR_TOO_MANY_POSTS
	ERROR_PARTIAL_COPY
	ERROR_OPLOCK_NOT_GRANTED
	ERROR_INVALID_OPLOCK_PROTOCOL
	ERROR_MR_MID_NOT_FOUND
	ERROR_INVALID_ADDRESS
	ERROR_ARITHMETIC_OVERFLOW
	ERROR_PIPE_CONNECTED
	ERROR_PIPE_LISTENING
	ERROR_EA_ACCESS_DENIED
	ERROR_OPERATION_ABORTED
	ERROR_IO_INCOMPLETE
	ERROR_IO_PENDING
	ERROR_NOACCESS
	ERROR_SWAPERROR
)

var win32Conditions = [...]ConditionEntry{
	ERROR_INVALID_FUNCTION:           {"ERROR_INVALID_FUNCTION", "Incorrect function."},
	ERROR_FILE_NOT_FOUND:             {"ERROR_FILE_NOT_FOUND", "The system cannot find the file specified."},
	ERROR_PATH_NOT_FOUND:             {"ERROR_PATH_NOT_FOUND", "The system cannot find the path specified."},
	ERROR_TOO_MANY_OPEN_FILES:        {"ERROR_TOO_MANY_OPEN_FILES", "The system cannot open the file."},
	ERROR_ACCESS_DENIED:              {"ERROR_ACCESS_DENIED", "Access is denied."},
	ERROR_INVALID_HANDLE:             {"ERROR_INVALID_HANDLE", "The handle is invalid."},
	ERROR_ARENA_TRASHED:              {"ERROR_ARENA_TRASHED", "The storage control blocks were destroyed."},
	ERROR_NOT_ENOUGH_MEMORY:          {"ERROR_NOT_ENOUGH_MEMORY", "Not enough memory resources are available to process this command."},
	ERROR_INVALID_BLOCK:              {"ERROR_INVALID_BLOCK", "The storage control block address is invalid."},
	ERROR_BAD_ENVIRONMENT:            {"ERROR_BAD_ENVIRONMENT", "The environment is incorrect."},
	ERROR_BAD_FORMAT:                 {"ERROR_BAD_FORMAT", "An attempt was made to load a program with an incorrect format."},
	ERROR_INVALID_ACCESS:             {"ERROR_INVALID_ACCESS", "The access code is invalid."},
	ERROR_INVALID_DATA:               {"ERROR_INVALID_DATA", "The data is invalid."},
	ERROR_OUTOFMEMORY:                {"ERROR_OUTOFMEMORY", "Not enough memory resources are available to complete this operation."},
	ERROR_INVALID_DRIVE:              {"ERROR_INVALID_DRIVE", "The system cannot find the drive specified."},
	ERROR_CURRENT_DIRECTORY:          {"ERROR_CURRENT_DIRECTORY", "The directory cannot be removed."},
	ERROR_NOT_SAME_DEVICE:            {"ERROR_NOT_SAME_DEVICE", "The system cannot move the file to a different disk drive."},
	ERROR_NO_MORE_FILES:              {"ERROR_NO_MORE_FILES", "There are no more files."},
	ERROR_WRITE_PROTECT:              {"ERROR_WRITE_PROTECT", "The media is write protected."},
	ERROR_BAD_UNIT:                   {"ERROR_BAD_UNIT", "The system cannot find the device specified."},
	ERROR_NOT_READY:                  {"ERROR_NOT_READY", "The device is not ready."},
	ERROR_BAD_COMMAND:                {"ERROR_BAD_COMMAND", "The device does not recognize the command."},
	ERROR_CRC:                        {"ERROR_CRC", "Data error (cyclic redundancy check)."},
	ERROR_BAD_LENGTH:                 {"ERROR_BAD_LENGTH", "The program issued a command but the command length is incorrect."},
	ERROR_SEEK:                       {"ERROR_SEEK", "The drive cannot locate a specific area or track on the disk."},
	ERROR_NOT_DOS_DISK:               {"ERROR_NOT_DOS_DISK", "The specified disk or diskette cannot be accessed."},
	ERROR_SECTOR_NOT_FOUND:           {"ERROR_SECTOR_NOT_FOUND", "The drive cannot find the sector requested."},
	ERROR_OUT_OF_PAPER:               {"ERROR_OUT_OF_PAPER", "The printer is out of paper."},
	ERROR_WRITE_FAULT:                {"ERROR_WRITE_FAULT", "The system cannot write to the specified device."},
	ERROR_READ_FAULT:                 {"ERROR_READ_FAULT", "The system cannot read from the specified device."},
	ERROR_GEN_FAILURE:                {"ERROR_GEN_FAILURE", "A device attached to the system is not functioning."},
	ERROR_SHARING_VIOLATION:          {"ERROR_SHARING_VIOLATION", "The process cannot access the file because it is being used by another process."},
	ERROR_LOCK_VIOLATION:             {"ERROR_LOCK_VIOLATION", "The process cannot access the file because another process has locked a portion of the file."},
	ERROR_WRONG_DISK:                 {"ERROR_WRONG_DISK", "The wrong diskette is in the drive. Insert %2 (Volume Serial Number: %3) into drive %1."},
	ERROR_SHARING_BUFFER_EXCEEDED:    {"ERROR_SHARING_BUFFER_EXCEEDED", "Too many files opened for sharing."},
	ERROR_HANDLE_EOF:                 {"ERROR_HANDLE_EOF", "Reached the end of the file."},
	ERROR_HANDLE_DISK_FULL:           {"ERROR_HANDLE_DISK_FULL", "The disk is full."},
	ERROR_NOT_SUPPORTED:              {"ERROR_NOT_SUPPORTED", "The network request is not supported."},
	ERROR_REM_NOT_LIST:               {"ERROR_REM_NOT_LIST", "The remote computer is not available."},
	ERROR_DUP_NAME:                   {"ERROR_DUP_NAME", "A duplicate name exists on the network."},
	ERROR_BAD_NETPATH:                {"ERROR_BAD_NETPATH", "The network path was not found."},
	ERROR_NETWORK_BUSY:               {"ERROR_NETWORK_BUSY", "The network is busy."},
	ERROR_DEV_NOT_EXIST:              {"ERROR_DEV_NOT_EXIST", "The specified network resource or device is no longer available."},
	ERROR_TOO_MANY_CMDS:              {"ERROR_TOO_MANY_CMDS", "The network BIOS command limit has been reached."},
	ERROR_ADAP_HDW_ERR:               {"ERROR_ADAP_HDW_ERR", "A network adapter hardware error occurred."},
	ERROR_BAD_NET_RESP:               {"ERROR_BAD_NET_RESP", "The specified server cannot perform the requested operation."},
	ERROR_UNEXP_NET_ERR:              {"ERROR_UNEXP_NET_ERR", "An unexpected network error occurred."},
	ERROR_BAD_REM_ADAP:               {"ERROR_BAD_REM_ADAP", "The remote adapter is not compatible."},
	ERROR_PRINTQ_FULL:                {"ERROR_PRINTQ_FULL", "The printer queue is full."},
	ERROR_NO_SPOOL_SPACE:             {"ERROR_NO_SPOOL_SPACE", "Space to store the file waiting to be printed is not available on the server."},
	ERROR_PRINT_CANCELED:             {"ERROR_PRINT_CANCELED", "Your file waiting to be printed was deleted."},
	ERROR_NETNAME_DELETED:            {"ERROR_NETNAME_DELETED", "The specified network name is no longer available."},
	ERROR_NETWORK_ACCESS_DENIED:      {"ERROR_NETWORK_ACCESS_DENIED", "Network access is denied."},
	ERROR_BAD_DEV_TYPE:               {"ERROR_BAD_DEV_TYPE", "The network resource type is not correct."},
	ERROR_BAD_NET_NAME:               {"ERROR_BAD_NET_NAME", "The network name cannot be found."},
	ERROR_TOO_MANY_NAMES:             {"ERROR_TOO_MANY_NAMES", "The name limit for the local computer network adapter card was exceeded."},
	ERROR_TOO_MANY_SESS:              {"ERROR_TOO_MANY_SESS", "The network BIOS session limit was exceeded."},
	ERROR_SHARING_PAUSED:             {"ERROR_SHARING_PAUSED", "The remote server has been paused or is in the process of being started."},
	ERROR_REQ_NOT_ACCEP:              {"ERROR_REQ_NOT_ACCEP", "No more connections can be made to this remote computer at this time because there are already as many connections as the computer can accept."},
	ERROR_REDIR_PAUSED:               {"ERROR_REDIR_PAUSED", "The specified printer or disk device has been paused."},
	ERROR_FILE_EXISTS:                {"ERROR_FILE_EXISTS", "The file exists."},
	ERROR_CANNOT_MAKE:                {"ERROR_CANNOT_MAKE", "The directory or file cannot be created."},
	ERROR_FAIL_I24:                   {"ERROR_FAIL_I24", "Fail on INT 24."},
	ERROR_OUT_OF_STRUCTURES:          {"ERROR_OUT_OF_STRUCTURES", "Storage to process this request is not available."},
	ERROR_ALREADY_ASSIGNED:           {"ERROR_ALREADY_ASSIGNED", "The local device name is already in use."},
	ERROR_INVALID_PASSWORD:           {"ERROR_INVALID_PASSWORD", "The specified network password is not correct."},
	ERROR_INVALID_PARAMETER:          {"ERROR_INVALID_PARAMETER", "The parameter is incorrect."},
	ERROR_NET_WRITE_FAULT:            {"ERROR_NET_WRITE_FAULT", "A write fault occurred on the network."},
	ERROR_NO_PROC_SLOTS:              {"ERROR_NO_PROC_SLOTS", "The system cannot start another process at this time."},
	ERROR_TOO_MANY_SEMAPHORES:        {"ERROR_TOO_MANY_SEMAPHORES", "Cannot create another system semaphore."},
	ERROR_EXCL_SEM_ALREADY_OWNED:     {"ERROR_EXCL_SEM_ALREADY_OWNED", "The exclusive semaphore is owned by another process."},
	ERROR_SEM_IS_SET:                 {"ERROR_SEM_IS_SET", "The semaphore is set and cannot be closed."},
	ERROR_TOO_MANY_SEM_REQUESTS:      {"ERROR_TOO_MANY_SEM_REQUESTS", "The semaphore cannot be set again."},
	ERROR_INVALID_AT_INTERRUPT_TIME:  {"ERROR_INVALID_AT_INTERRUPT_TIME", "Cannot request exclusive semaphores at interrupt time."},
	ERROR_SEM_OWNER_DIED:             {"ERROR_SEM_OWNER_DIED", "The previous ownership of this semaphore has ended."},
	ERROR_SEM_USER_LIMIT:             {"ERROR_SEM_USER_LIMIT", "Insert the diskette for drive %1."},
	ERROR_DISK_CHANGE:                {"ERROR_DISK_CHANGE", "The program stopped because an alternate diskette was not inserted."},
	ERROR_DRIVE_LOCKED:               {"ERROR_DRIVE_LOCKED", "The disk is in use or locked by another process."},
	ERROR_BROKEN_PIPE:                {"ERROR_BROKEN_PIPE", "The pipe has been ended."},
	ERROR_OPEN_FAILED:                {"ERROR_OPEN_FAILED", "The system cannot open the device or file specified."},
	ERROR_BUFFER_OVERFLOW:            {"ERROR_BUFFER_OVERFLOW", "The file name is too long."},
	ERROR_DISK_FULL:                  {"ERROR_DISK_FULL", "There is not enough space on the disk."},
	ERROR_NO_MORE_SEARCH_HANDLES:     {"ERROR_NO_MORE_SEARCH_HANDLES", "No more internal file identifiers are available."},
	ERROR_INVALID_TARGET_HANDLE:      {"ERROR_INVALID_TARGET_HANDLE", "The target internal file identifier is incorrect."},
	ERROR_INVALID_CATEGORY:           {"ERROR_INVALID_CATEGORY", "The IOCTL call made by the application program is not correct."},
	ERROR_INVALID_VERIFY_SWITCH:      {"ERROR_INVALID_VERIFY_SWITCH", "The verify-on-write switch parameter value is not correct."},
	ERROR_BAD_DRIVER_LEVEL:           {"ERROR_BAD_DRIVER_LEVEL", "The system does not support the command requested."},
	ERROR_CALL_NOT_IMPLEMENTED:       {"ERROR_CALL_NOT_IMPLEMENTED", "This function is not supported on this system."},
	ERROR_SEM_TIMEOUT:                {"ERROR_SEM_TIMEOUT", "The semaphore timeout period has expired."},
	ERROR_INSUFFICIENT_BUFFER:        {"ERROR_INSUFFICIENT_BUFFER", "The data area passed to a system call is too small."},
	ERROR_INVALID_NAME:               {"ERROR_INVALID_NAME", "The filename, directory name, or volume label syntax is incorrect."},
	ERROR_INVALID_LEVEL:              {"ERROR_INVALID_LEVEL", "The system call level is not correct."},
	ERROR_NO_VOLUME_LABEL:            {"ERROR_NO_VOLUME_LABEL", "The disk has no volume label."},
	ERROR_MOD_NOT_FOUND:              {"ERROR_MOD_NOT_FOUND", "The specified module could not be found."},
	ERROR_PROC_NOT_FOUND:             {"ERROR_PROC_NOT_FOUND", "The specified procedure could not be found."},
	ERROR_WAIT_NO_CHILDREN:           {"ERROR_WAIT_NO_CHILDREN", "There are no child processes to wait for."},
	ERROR_CHILD_NOT_COMPLETE:         {"ERROR_CHILD_NOT_COMPLETE", "The %1 application cannot be run in Win32 mode."},
	ERROR_DIRECT_ACCESS_HANDLE:       {"ERROR_DIRECT_ACCESS_HANDLE", "Attempt to use a file handle to an open disk partition for an operation other than raw disk I/O."},
	ERROR_NEGATIVE_SEEK:              {"ERROR_NEGATIVE_SEEK", "An attempt was made to move the file pointer before the beginning of the file."},
	ERROR_SEEK_ON_DEVICE:             {"ERROR_SEEK_ON_DEVICE", "The file pointer cannot be set on the specified device or file."},
	ERROR_IS_JOIN_TARGET:             {"ERROR_IS_JOIN_TARGET", "A JOIN or SUBST command cannot be used for a drive that contains previously joined drives."},
	ERROR_IS_JOINED:                  {"ERROR_IS_JOINED", "An attempt was made to use a JOIN or SUBST command on a drive that has already been joined."},
	ERROR_IS_SUBSTED:                 {"ERROR_IS_SUBSTED", "An attempt was made to use a JOIN or SUBST command on a drive that has already been substituted."},
	ERROR_NOT_JOINED:                 {"ERROR_NOT_JOINED", "The system tried to delete the JOIN of a drive that is not joined."},
	ERROR_NOT_SUBSTED:                {"ERROR_NOT_SUBSTED", "The system tried to delete the substitution of a drive that is not substituted."},
	ERROR_JOIN_TO_JOIN:               {"ERROR_JOIN_TO_JOIN", "The system tried to join a drive to a directory on a joined drive."},
	ERROR_SUBST_TO_SUBST:             {"ERROR_SUBST_TO_SUBST", "The system tried to substitute a drive to a directory on a substituted drive."},
	ERROR_JOIN_TO_SUBST:              {"ERROR_JOIN_TO_SUBST", "The system tried to join a drive to a directory on a substituted drive."},
	ERROR_SUBST_TO_JOIN:              {"ERROR_SUBST_TO_JOIN", "The system tried to SUBST a drive to a directory on a joined drive."},
	ERROR_BUSY_DRIVE:                 {"ERROR_BUSY_DRIVE", "The system cannot perform a JOIN or SUBST at this time."},
	ERROR_SAME_DRIVE:                 {"ERROR_SAME_DRIVE", "The system cannot join or substitute a drive to or for a directory on the same drive."},
	ERROR_DIR_NOT_ROOT:               {"ERROR_DIR_NOT_ROOT", "The directory is not a subdirectory of the root directory."},
	ERROR_DIR_NOT_EMPTY:              {"ERROR_DIR_NOT_EMPTY", "The directory is not empty."},
	ERROR_IS_SUBST_PATH:              {"ERROR_IS_SUBST_PATH", "The path specified is being used in a substitute."},
	ERROR_IS_JOIN_PATH:               {"ERROR_IS_JOIN_PATH", "Not enough resources are available to process this command."},
	ERROR_PATH_BUSY:                  {"ERROR_PATH_BUSY", "The path specified cannot be used at this time."},
	ERROR_IS_SUBST_TARGET:            {"ERROR_IS_SUBST_TARGET", "An attempt was made to join or substitute a drive for which a directory on the drive is the target of a previous substitute."},
	ERROR_SYSTEM_TRACE:               {"ERROR_SYSTEM_TRACE", "System trace information was not specified in your CONFIG.SYS file, or tracing is disallowed."},
	ERROR_INVALID_EVENT_COUNT:        {"ERROR_INVALID_EVENT_COUNT", "The number of specified semaphore events for DosMuxSemWait is not correct."},
	ERROR_TOO_MANY_MUXWAITERS:        {"ERROR_TOO_MANY_MUXWAITERS", "DosMuxSemWait did not execute; too many semaphores are already set."},
	ERROR_INVALID_LIST_FORMAT:        {"ERROR_INVALID_LIST_FORMAT", "The DosMuxSemWait list is not correct."},
	ERROR_LABEL_TOO_LONG:             {"ERROR_LABEL_TOO_LONG", "The volume label you entered exceeds the label character limit of the target file system."},
	ERROR_TOO_MANY_TCBS:              {"ERROR_TOO_MANY_TCBS", "Cannot create another thread."},
	ERROR_SIGNAL_REFUSED:             {"ERROR_SIGNAL_REFUSED", "The recipient process has refused the signal."},
	ERROR_DISCARDED:                  {"ERROR_DISCARDED", "The segment is already discarded and cannot be locked."},
	ERROR_NOT_LOCKED:                 {"ERROR_NOT_LOCKED", "The segment is already unlocked."},
	ERROR_BAD_THREADID_ADDR:          {"ERROR_BAD_THREADID_ADDR", "The address for the thread ID is not correct."},
	ERROR_BAD_ARGUMENTS:              {"ERROR_BAD_ARGUMENTS", "The argument string passed to DosExecPgm is not correct."},
	ERROR_BAD_PATHNAME:               {"ERROR_BAD_PATHNAME", "The specified path is invalid."},
	ERROR_SIGNAL_PENDING:             {"ERROR_SIGNAL_PENDING", "A signal is already pending."},
	ERROR_MAX_THRDS_REACHED:          {"ERROR_MAX_THRDS_REACHED", "No more threads can be created in the system."},
	ERROR_LOCK_FAILED:                {"ERROR_LOCK_FAILED", "Unable to lock a region of a file."},
	ERROR_BUSY:                       {"ERROR_BUSY", "The requested resource is in use."},
	ERROR_CANCEL_VIOLATION:           {"ERROR_CANCEL_VIOLATION", "A lock request was not outstanding for the supplied cancel region."},
	ERROR_ATOMIC_LOCKS_NOT_SUPPORTED: {"ERROR_ATOMIC_LOCKS_NOT_SUPPORTED", "The file system does not support atomic changes to the lock type."},
	ERROR_INVALID_SEGMENT_NUMBER:     {"ERROR_INVALID_SEGMENT_NUMBER", "The system detected a segment number that was not correct."},
	ERROR_INVALID_ORDINAL:            {"ERROR_INVALID_ORDINAL", "The operating system cannot run %1."},
	ERROR_ALREADY_EXISTS:             {"ERROR_ALREADY_EXISTS", "Cannot create a file when that file already exists."},
	ERROR_INVALID_FLAG_NUMBER:        {"ERROR_INVALID_FLAG_NUMBER", "The flag passed is not correct."},
	ERROR_SEM_NOT_FOUND:              {"ERROR_SEM_NOT_FOUND", "The specified system semaphore name was not found."},
	ERROR_INVALID_STARTING_CODESEG:   {"ERROR_INVALID_STARTING_CODESEG", "The operating system cannot run %1."},
	ERROR_INVALID_STACKSEG:           {"ERROR_INVALID_STACKSEG", "The operating system cannot run %1."},
	ERROR_INVALID_MODULETYPE:         {"ERROR_INVALID_MODULETYPE", "The operating system cannot run %1."},
	ERROR_INVALID_EXE_SIGNATURE:      {"ERROR_INVALID_EXE_SIGNATURE", "Cannot run %1 in Win32 mode."},
	ERROR_EXE_MARKED_INVALID:         {"ERROR_EXE_MARKED_INVALID", "The operating system cannot run %1."},
	ERROR_BAD_EXE_FORMAT:             {"ERROR_BAD_EXE_FORMAT", "%1 is not a valid Win32 application."},
	ERROR_ITERATED_DATA_EXCEEDS_64k:  {"ERROR_ITERATED_DATA_EXCEEDS_64k", "The operating system cannot run %1."},
	ERROR_INVALID_MINALLOCSIZE:       {"ERROR_INVALID_MINALLOCSIZE", "The operating system cannot run %1."},
	ERROR_DYNLINK_FROM_INVALID_RING:  {"ERROR_DYNLINK_FROM_INVALID_RING", "The operating system cannot run this application program."},
	ERROR_IOPL_NOT_ENABLED:           {"ERROR_IOPL_NOT_ENABLED", "The operating system is not presently configured to run this application."},
	ERROR_INVALID_SEGDPL:             {"ERROR_INVALID_SEGDPL", "The operating system cannot run %1."},
	ERROR_AUTODATASEG_EXCEEDS_64k:    {"ERROR_AUTODATASEG_EXCEEDS_64k", "The operating system cannot run this application program."},
	ERROR_RING2SEG_MUST_BE_MOVABLE:   {"ERROR_RING2SEG_MUST_BE_MOVABLE", "The code segment cannot be greater than or equal to 64K."},
	ERROR_RELOC_CHAIN_XEEDS_SEGLIM:   {"ERROR_RELOC_CHAIN_XEEDS_SEGLIM", "The operating system cannot run %1."},
	ERROR_INFLOOP_IN_RELOC_CHAIN:     {"ERROR_INFLOOP_IN_RELOC_CHAIN", "The operating system cannot run %1."},
	ERROR_ENVVAR_NOT_FOUND:           {"ERROR_ENVVAR_NOT_FOUND", "The system could not find the environment option that was entered."},
	ERROR_NO_SIGNAL_SENT:             {"ERROR_NO_SIGNAL_SENT", "No process in the command subtree has a signal handler."},
	ERROR_FILENAME_EXCED_RANGE:       {"ERROR_FILENAME_EXCED_RANGE", "The filename or extension is too long."},
	ERROR_RING2_STACK_IN_USE:         {"ERROR_RING2_STACK_IN_USE", "The ring 2 stack is in use."},
	ERROR_META_EXPANSION_TOO_LONG:    {"ERROR_META_EXPANSION_TOO_LONG", "The global filename characters, * or ?, are entered incorrectly or too many global filename characters are specified."},
	ERROR_INVALID_SIGNAL_NUMBER:      {"ERROR_INVALID_SIGNAL_NUMBER", "The signal being posted is not correct."},
	ERROR_THREAD_1_INACTIVE:          {"ERROR_THREAD_1_INACTIVE", "The signal handler cannot be set."},
	ERROR_LOCKED:                     {"ERROR_LOCKED", "The segment is locked and cannot be reallocated."},
	ERROR_TOO_MANY_MODULES:           {"ERROR_TOO_MANY_MODULES", "Too many dynamic-link modules are attached to this program or dynamic-link module."},
	ERROR_NESTING_NOT_ALLOWED:        {"ERROR_NESTING_NOT_ALLOWED", "Cannot nest calls to LoadModule."},
	ERROR_EXE_MACHINE_TYPE_MISMATCH:  {"ERROR_EXE_MACHINE_TYPE_MISMATCH", "The image file %1 is valid, but is for a machine type other than the current machine."},
	ERROR_BAD_PIPE:                   {"ERROR_BAD_PIPE", "The pipe state is invalid."},
	ERROR_PIPE_BUSY:                  {"ERROR_PIPE_BUSY", "All pipe instances are busy."},
	ERROR_NO_DATA:                    {"ERROR_NO_DATA", "The pipe is being closed."},
	ERROR_PIPE_NOT_CONNECTED:         {"ERROR_PIPE_NOT_CONNECTED", "No process is on the other end of the pipe."},
	ERROR_MORE_DATA:                  {"ERROR_MORE_DATA", "More data is available."},
	ERROR_VC_DISCONNECTED:            {"ERROR_VC_DISCONNECTED", "The session was canceled."},
	ERROR_INVALID_EA_NAME:            {"ERROR_INVALID_EA_NAME", "The specified extended attribute name was invalid."},
	ERROR_EA_LIST_INCONSISTENT:       {"ERROR_EA_LIST_INCONSISTENT", "The extended attributes are inconsistent."},
	ERROR_WAIT_TIMEOUT:               {"ERROR_WAIT_TIMEOUT", "The wait operation timed out."},
	ERROR_NO_MORE_ITEMS:              {"ERROR_NO_MORE_ITEMS", "No more data is available."},
	ERROR_CANNOT_COPY:                {"ERROR_CANNOT_COPY", "The copy functions cannot be used."},
	ERROR_DIRECTORY:                  {"ERROR_DIRECTORY", "The directory name is invalid."},
	ERROR_EAS_DIDNT_FIT:              {"ERROR_EAS_DIDNT_FIT", "The extended attributes did not fit in the buffer."},
	ERROR_EA_FILE_CORRUPT:            {"ERROR_EA_FILE_CORRUPT", "The extended attribute file on the mounted file system is corrupt."},
	ERROR_EA_TABLE_FULL:              {"ERROR_EA_TABLE_FULL", "The extended attribute table file is full."},
	ERROR_INVALID_EA_HANDLE:          {"ERROR_INVALID_EA_HANDLE", "The specified extended attribute handle is invalid."},
	ERROR_EAS_NOT_SUPPORTED:          {"ERROR_EAS_NOT_SUPPORTED", "The mounted file system does not support extended attributes."},
	ERROR_NOT_OWNER:                  {"ERROR_NOT_OWNER", "Attempt to release mutex not owned by caller."},
	ERROR_TOO_MANY_POSTS:             {"ERROR_TOO_MANY_POSTS", "Too many posts were made to a semaphore."},
	ERROR_PARTIAL_COPY:               {"ERROR_PARTIAL_COPY", "Only part of a ReadProcessMemory or WriteProcessMemory request was completed."},
	ERROR_OPLOCK_NOT_GRANTED:         {"ERROR_OPLOCK_NOT_GRANTED", "The oplock request is denied."},
	ERROR_INVALID_OPLOCK_PROTOCOL:    {"ERROR_INVALID_OPLOCK_PROTOCOL", "An invalid oplock acknowledgment was received by the system."},
	ERROR_MR_MID_NOT_FOUND:           {"ERROR_MR_MID_NOT_FOUND", "The system cannot find message text for message number 0x%1 in the message file for %2."},
	ERROR_INVALID_ADDRESS:            {"ERROR_INVALID_ADDRESS", "Attempt to access invalid address."},
	ERROR_ARITHMETIC_OVERFLOW:        {"ERROR_ARITHMETIC_OVERFLOW", "Arithmetic result exceeded 32 bits."},
	ERROR_PIPE_CONNECTED:             {"ERROR_PIPE_CONNECTED", "There is a process on other end of the pipe."},
	ERROR_PIPE_LISTENING:             {"ERROR_PIPE_LISTENING", "Waiting for a process to open the other end of the pipe."},
	ERROR_EA_ACCESS_DENIED:           {"ERROR_EA_ACCESS_DENIED", "Access to the extended attribute was denied."},
	ERROR_OPERATION_ABORTED:          {"ERROR_OPERATION_ABORTED", "The I/O operation has been aborted because of either a thread exit or an application request."},
	ERROR_IO_INCOMPLETE:              {"ERROR_IO_INCOMPLETE", "Overlapped I/O event is not in a signaled state."},
	ERROR_IO_PENDING:                 {"ERROR_IO_PENDING", "Overlapped I/O operation is in progress."},
	ERROR_NOACCESS:                   {"ERROR_NOACCESS", "Invalid access to memory location."},
	ERROR_SWAPERROR:                  {"ERROR_SWAPERROR", "Error performing inpage operation."},
}

// Conditions returns a copy of the condition table.
func (Win32Error) Conditions() []ConditionEntry {
	out := make([]ConditionEntry, len(win32Conditions))
	copy(out, win32Conditions[:])
	return out
}

func (Win32Error) DomainName() string { return "win32" }

func (e Win32Error) String() string {
	if int(e) < len(win32Conditions) {
		return win32Conditions[e].Name
	}
	return fmt.Sprintf("Win32Error(%d)", uint16(e))
}

// Win32 returns the process-wide Win32 domain.
func Win32() *EnumDomain[Win32Error] {
	return StaticDomain[Win32Error]()
}

var _ Domain = (*EnumDomain[Win32Error])(nil)
