//go:build !linux && !darwin

package xgxstatus

// errnoPairs is empty where errno values are not POSIX-shaped.
func errnoPairs() []errnoPair { return nil }
