//go:build !unix && !windows

package toolio

import "os"

type otherPlatform struct{}

func newPlatformIO() platformIO { return otherPlatform{} }

func (otherPlatform) isTerminal(*os.File) bool { return false }
