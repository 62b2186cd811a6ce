// Command pnacl-finalize prepares a PNaCl bitcode application for ABI
// stability.
//
// Usage:
//
//	pnacl-finalize [-o out.pexe] [--no-finalize] in.pexe
//
// The optimizer binary is taken from LLVM_OPT (default pnacl-opt on PATH);
// PNACL_DRIVER_VERBOSE=1 echoes its command line before running it.
package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dzonerzy/nacl-tools/driver"
	"github.com/dzonerzy/nacl-tools/finalize"
	toolio "github.com/dzonerzy/nacl-tools/io"
)

func main() {
	os.Exit(run(context.Background(), os.Args, toolio.New(), os.LookupEnv))
}

// run executes the tool and returns the process exit code.
func run(ctx context.Context, argv []string, m *toolio.IOManager, lookup func(string) (string, bool)) int {
	name := "pnacl-finalize"
	if len(argv) > 0 {
		name = filepath.Base(argv[0])
	}
	logger := toolio.NewLogger(m).ErrorsToStderr(true)

	cmd := newRootCmd(name, m, logger, finalize.LoadEnv(lookup))
	if len(argv) > 1 {
		cmd.SetArgs(argv[1:])
	} else {
		cmd.SetArgs([]string{})
	}

	err := cmd.ExecuteContext(ctx)
	if err != nil && !collaboratorExit(err) {
		logger.Error("%s: %v", name, err)
	}
	return driver.ExitCode(err)
}

func newRootCmd(name string, m *toolio.IOManager, logger *toolio.Logger, env finalize.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   name + " <options> in-file",
		Short: "Prepare a PNaCl bitcode application for ABI stability",
		// every token goes through the finalize rule list, -h/--help included
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		Args:               cobra.ArbitraryArgs,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := finalize.Parse(args)
			if err != nil {
				return err
			}
			runner := driver.NewExecRunner(m, logger)
			runner.Verbose = env.Verbose
			tool := &finalize.Tool{Name: name, Env: env, Runner: runner, Stdout: m.Out()}
			return tool.Run(c.Context(), cfg)
		},
	}
	cmd.SetOut(m.Out())
	cmd.SetErr(m.Err())
	cmd.SetIn(m.In())
	return cmd
}

// collaboratorExit reports whether err only carries the optimizer's own
// exit status, whose diagnostics the optimizer already printed.
func collaboratorExit(err error) bool {
	var exitErr *driver.ExitError
	if !errors.As(err, &exitErr) {
		return false
	}
	var toolErr *driver.Error
	return !errors.As(err, &toolErr)
}
