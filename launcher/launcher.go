// Package launcher starts Chrome in place of the calling process, hiding
// platform differences and working around a quoting bug in the Selenium
// driver.
package launcher

import (
	"fmt"
	"os"
	"strings"

	"github.com/dzonerzy/nacl-tools/driver"
	toolio "github.com/dzonerzy/nacl-tools/io"
)

const (
	// LinuxExe is the only Chrome binary the launcher will run on Linux.
	LinuxExe = "/opt/google/chrome/chrome"
	// UserDataDirPrefix marks the argument Selenium wraps in stray quotes.
	UserDataDirPrefix = "--user-data-dir="
)

// LinuxExtraArgs are appended after the forwarded arguments.
var LinuxExtraArgs = []string{}

// Host identifies the machine the launcher runs on.
type Host struct {
	Sysname string // "Linux", "Darwin", "Windows", ...
	Release string
	Machine string
}

func (h Host) String() string {
	return fmt.Sprintf("(%q, %q, %q)", h.Sysname, h.Release, h.Machine)
}

// Execer replaces the current process with path. On success it does not
// return.
type Execer interface {
	Exec(path string, argv []string, env []string) error
}

// Launcher dispatches on the host platform and execs the browser.
type Launcher struct {
	Host      Host
	Exe       string
	ExtraArgs []string
	// Access reports an error unless path is executable.
	Access  func(path string) error
	Execer  Execer
	Environ func() []string
	Logger  *toolio.Logger
}

// New returns a launcher for the current host with the platform defaults.
func New(logger *toolio.Logger) *Launcher {
	return &Launcher{
		Host:      HostInfo(),
		Exe:       LinuxExe,
		ExtraArgs: LinuxExtraArgs,
		Access:    CheckExecutable,
		Execer:    SysExecer{},
		Environ:   os.Environ,
		Logger:    logger,
	}
}

// Start execs the browser with argv[1:] forwarded. It only returns on
// failure, or after a non-replacing Execer has finished.
func (l *Launcher) Start(argv []string) error {
	l.Logger.Info("chrome wrapper started on %s", l.Host)
	switch l.Host.Sysname {
	case "Linux":
		return l.startLinux(argv)
	default:
		l.Logger.Fatal("unsupported platform %q", l.Host.Sysname)
		return driver.NewError(driver.ErrorTypeUnsupportedPlatform,
			fmt.Sprintf("unsupported platform %q", l.Host.Sysname))
	}
}

func (l *Launcher) startLinux(argv []string) error {
	if err := l.Access(l.Exe); err != nil {
		l.Logger.Fatal("cannot find chrome exe %s", l.Exe)
		return driver.NewError(driver.ErrorTypeMissingExecutable, "cannot find chrome exe "+l.Exe).
			WithCause(err)
	}
	newArgv := BuildArgv(l.Exe, argv, l.ExtraArgs)
	l.Logger.Info("launching linux chrome: %q", newArgv)
	if err := l.Execer.Exec(l.Exe, newArgv, l.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", l.Exe, err)
	}
	return nil
}

// BuildArgv returns exe followed by argv without the program name and then
// extra. Double quotes are stripped from --user-data-dir= arguments.
func BuildArgv(exe string, argv []string, extra []string) []string {
	out := make([]string, 0, len(argv)+len(extra)+1)
	out = append(out, exe)
	if len(argv) > 1 {
		for _, a := range argv[1:] {
			if strings.HasPrefix(a, UserDataDirPrefix) {
				a = strings.ReplaceAll(a, `"`, "")
			}
			out = append(out, a)
		}
	}
	return append(out, extra...)
}
