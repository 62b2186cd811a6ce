//go:build unix

package launcher

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// HostInfo reads the host identity from uname(2).
func HostInfo() Host {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return Host{}
	}
	return Host{
		Sysname: unix.ByteSliceToString(u.Sysname[:]),
		Release: unix.ByteSliceToString(u.Release[:]),
		Machine: unix.ByteSliceToString(u.Machine[:]),
	}
}

// CheckExecutable reports an error unless path is executable by this process.
func CheckExecutable(path string) error {
	return unix.Access(path, unix.X_OK)
}

// SysExecer replaces the process image with execve(2).
type SysExecer struct{}

func (SysExecer) Exec(path string, argv []string, env []string) error {
	return syscall.Exec(path, argv, env)
}
