package driver

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	toolio "github.com/dzonerzy/nacl-tools/io"
)

// Command describes one collaborator invocation.
type Command struct {
	Path string
	Args []string
	Env  []string // appended to the inherited environment
	Dir  string
}

// String renders the command line with arguments quoted where needed.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quoteArg(c.Path))
	for _, a := range c.Args {
		parts = append(parts, quoteArg(a))
	}
	return strings.Join(parts, " ")
}

func quoteArg(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"'\\$") {
		return strconv.Quote(s)
	}
	return s
}

// Runner hands a command to an external collaborator and blocks until it exits.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner runs commands as child processes with stdio passthrough.
// A non-zero child exit becomes an *ExitError carrying the child's code.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Logger, when set together with Verbose, echoes each command before it runs.
	Logger  *toolio.Logger
	Verbose bool
}

// NewExecRunner returns a runner wired to the streams of m.
func NewExecRunner(m *toolio.IOManager, logger *toolio.Logger) *ExecRunner {
	return &ExecRunner{Stdin: m.In(), Stdout: m.Out(), Stderr: m.Err(), Logger: logger}
}

// Run executes cmd. Bare binary names are resolved on PATH.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	bin := cmd.Path
	if bin == "" {
		return NewError(ErrorTypeInternal, "missing collaborator binary")
	}
	if !strings.ContainsRune(bin, filepath.Separator) && !strings.ContainsRune(bin, '/') {
		p, err := exec.LookPath(bin)
		if err != nil {
			return &ExitError{
				Code: ExitNotFound,
				Err:  NewError(ErrorTypeMissingExecutable, "cannot find "+bin).WithCause(err),
			}
		}
		bin = p
	}
	if r.Verbose && r.Logger != nil {
		r.Logger.Info("%s", cmd.String())
	}

	c := exec.CommandContext(ctx, bin, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = append(os.Environ(), cmd.Env...)
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	return toExitError(c.Run())
}

func toExitError(err error) error {
	if err == nil {
		return nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		code := ee.ExitCode()
		if code < 0 {
			// killed by a signal
			code = ExitGeneralError
		}
		return &ExitError{Code: code, Err: err}
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &ExitError{Code: ExitNotFound, Err: err}
	case errors.Is(err, fs.ErrPermission):
		return &ExitError{Code: ExitNotExecutable, Err: err}
	}
	return &ExitError{Code: ExitGeneralError, Err: err}
}
