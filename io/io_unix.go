//go:build unix

package toolio

import (
	"os"

	"golang.org/x/sys/unix"
)

type unixPlatform struct{}

func newPlatformIO() platformIO { return unixPlatform{} }

func (unixPlatform) isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	if _, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ); err == nil {
		return true
	}
	// fallback: character device check
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
