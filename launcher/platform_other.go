//go:build !unix

package launcher

import (
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// HostInfo derives the host identity from the Go runtime.
func HostInfo() Host {
	name := runtime.GOOS
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return Host{Sysname: name, Machine: runtime.GOARCH}
}

// CheckExecutable reports an error unless path is an existing regular file.
func CheckExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return errors.New(path + " is a directory")
	}
	return nil
}

// SysExecer has no process replacement here, so it runs the child with
// inherited stdio, waits, and exits with the child's status.
type SysExecer struct{}

func (SysExecer) Exec(path string, argv []string, env []string) error {
	cmd := exec.Command(path, argv[1:]...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			os.Exit(ee.ExitCode())
		}
		return err
	}
	os.Exit(0)
	return nil
}
