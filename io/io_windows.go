//go:build windows

package toolio

import (
	"os"

	"golang.org/x/sys/windows"
)

type windowsPlatform struct{}

func newPlatformIO() platformIO { return windowsPlatform{} }

func (windowsPlatform) isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(f.Fd()), &mode) == nil
}
