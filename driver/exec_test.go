package driver

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"

	toolio "github.com/dzonerzy/nacl-tools/io"
)

func TestExecRunner_Passthrough(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	var out, errb bytes.Buffer
	m := toolio.New().WithOut(&out).WithErr(&errb).WithIn(strings.NewReader("piped"))
	r := NewExecRunner(m, nil)

	err := r.Run(context.Background(), Command{
		Path: "/bin/sh",
		Args: []string{"-c", `echo "$1"; cat; echo err >&2`, "sh", "hello"},
	})
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if got := out.String(); got != "hello\npiped" {
		t.Fatalf("unexpected stdout: %q", got)
	}
	if got := strings.TrimSpace(errb.String()); got != "err" {
		t.Fatalf("unexpected stderr: %q", got)
	}
}

func TestExecRunner_ExitCodePropagation(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh -c 'exit 7'")
	}
	r := &ExecRunner{}
	err := r.Run(context.Background(), Command{Path: "/bin/sh", Args: []string{"-c", "exit 7"}})
	if err == nil {
		t.Fatal("expected error")
	}
	var ee *ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("expected ExitError, got %T", err)
	}
	if code := ExitCode(err); code != 7 {
		t.Fatalf("expected exit code 7, got %d", code)
	}
}

func TestExecRunner_Env(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	var out bytes.Buffer
	r := &ExecRunner{Stdout: &out}
	err := r.Run(context.Background(), Command{
		Path: "/bin/sh",
		Args: []string{"-c", "printf %s \"$NACL_TEST_VALUE\""},
		Env:  []string{"NACL_TEST_VALUE=42"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != "42" {
		t.Fatalf("env not forwarded: %q", out.String())
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	r := &ExecRunner{}
	err := r.Run(context.Background(), Command{Path: "definitely-not-a-real-tool-xyz"})
	if code := ExitCode(err); code != ExitNotFound {
		t.Fatalf("expected %d, got %d (%v)", ExitNotFound, code, err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Type != ErrorTypeMissingExecutable {
		t.Fatalf("expected missing executable error, got %v", err)
	}
}

func TestExecRunner_MissingAbsoluteBinary(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix path")
	}
	r := &ExecRunner{}
	err := r.Run(context.Background(), Command{Path: "/nonexistent/dir/opt"})
	if code := ExitCode(err); code != ExitNotFound {
		t.Fatalf("expected %d, got %d (%v)", ExitNotFound, code, err)
	}
}

func TestExecRunner_Verbose(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses /bin/sh")
	}
	var out, logOut bytes.Buffer
	logger := toolio.NewLogger(toolio.New().WithOut(&logOut).NoColor())
	r := &ExecRunner{Stdout: &out, Logger: logger, Verbose: true}
	if err := r.Run(context.Background(), Command{Path: "/bin/sh", Args: []string{"-c", "true", "my arg"}}); err != nil {
		t.Fatal(err)
	}
	if got := logOut.String(); got != "[INFO] /bin/sh -c true \"my arg\"\n" {
		t.Fatalf("unexpected verbose line: %q", got)
	}
}

func TestCommand_String(t *testing.T) {
	c := Command{Path: "opt", Args: []string{"-strip", "a b.bc", ""}}
	if got := c.String(); got != `opt -strip "a b.bc" ""` {
		t.Fatalf("got %q", got)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"exit error", &ExitError{Code: 42}, 42},
		{"wrapped exit error", errors.Join(errors.New("ctx"), &ExitError{Code: 3}), 3},
		{"unknown option", NewError(ErrorTypeUnknownOption, "x"), ExitMisusage},
		{"missing value", NewError(ErrorTypeMissingValue, "x"), ExitMisusage},
		{"input count", NewError(ErrorTypeInvalidInputCount, "x"), ExitMisusage},
		{"missing executable", NewError(ErrorTypeMissingExecutable, "x"), ExitMissingExecutable},
		{"unsupported platform", NewError(ErrorTypeUnsupportedPlatform, "x"), ExitGeneralError},
		{"plain error", errors.New("x"), ExitGeneralError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestError_Format(t *testing.T) {
	cause := errors.New("root")
	err := NewError(ErrorTypeUnknownOption, "Unrecognized option: --x").
		WithSuggestion("Did you mean '--y'?").
		WithCause(cause)
	if got := err.Error(); got != "Unrecognized option: --x\n  Did you mean '--y'?" {
		t.Fatalf("got %q", got)
	}
	if !errors.Is(err, cause) {
		t.Fatal("cause should unwrap")
	}
}
