// Package finalize prepares a PNaCl bitcode file for ABI stability by
// running it through the optimizer with stripping flags, or copies it
// verbatim when finalization is disabled.
package finalize

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dzonerzy/nacl-tools/driver"
)

// Defaults from the toolchain driver environment.
const (
	DefaultOptimizer = "pnacl-opt"
	RunOptTemplate   = "${LLVM_OPT} ${OPT_FLAGS} ${input} -o ${output}"
	BitcodeFormat    = "--bitcode-format=pnacl"
)

// DefaultOptFlags disable optimization passes and strip symbols and metadata.
var DefaultOptFlags = []string{"-disable-opt", "-strip", "-strip-metadata"}

// rules is the ordered option table. Flags are tried before the dash
// catch-all, which is tried before positional capture.
var rules = driver.Rules{
	driver.Flag("-h", driver.SetHelp),
	driver.Flag("--help", driver.SetHelp),
	driver.FlagValue("-o", driver.SetOutput),
	driver.Flag("--no-finalize", driver.SetDisableFinalize),
	driver.Unrecognized(),
	driver.Positional(driver.AppendInput),
}

// Defaults returns the configuration every invocation starts from.
func Defaults() driver.Config {
	return driver.Config{
		OptFlags: append([]string(nil), DefaultOptFlags...),
		RunOpt:   RunOptTemplate,
	}
}

// OptionNames lists the options the tool understands.
func OptionNames() []string { return rules.Names() }

// Parse turns argv (without the program name) into a Config.
func Parse(args []string) (driver.Config, error) {
	return driver.Parse(args, rules, Defaults())
}

// Env holds what the tool takes from its environment.
type Env struct {
	// Optimizer is the collaborator binary, a path or a name looked up on PATH.
	Optimizer string
	// Verbose echoes the collaborator command line before running it.
	Verbose bool
}

// LoadEnv reads LLVM_OPT and PNACL_DRIVER_VERBOSE through lookup
// (os.LookupEnv in main).
func LoadEnv(lookup func(string) (string, bool)) Env {
	var env Env
	if v, ok := lookup("LLVM_OPT"); ok && v != "" {
		env.Optimizer = v
	}
	if v, ok := lookup("PNACL_DRIVER_VERBOSE"); ok {
		env.Verbose = v == "1" || strings.EqualFold(v, "true")
	}
	return env
}

// Tool runs the finalize step against a parsed Config.
type Tool struct {
	Name   string // shown in usage
	Env    Env
	Runner driver.Runner
	Stdout io.Writer
}

// Run validates cfg and either copies or invokes the optimizer. The
// optimizer's exit status comes back as a *driver.ExitError.
func (t *Tool) Run(ctx context.Context, cfg driver.Config) error {
	if cfg.Help {
		_, err := io.WriteString(t.Stdout, Usage(t.Name))
		return err
	}

	input, err := SingleInput(cfg)
	if err != nil {
		return err
	}
	output := ResolveOutput(cfg)

	if cfg.DisableFinalize {
		same, err := SamePath(input, output)
		if err != nil {
			return err
		}
		if same {
			return nil
		}
		return CopyFile(input, output)
	}

	return t.Runner.Run(ctx, t.Command(cfg, input, output))
}

// Command builds the optimizer invocation for input and output.
func (t *Tool) Command(cfg driver.Config, input, output string) driver.Command {
	opt := t.Env.Optimizer
	if opt == "" {
		opt = DefaultOptimizer
	}
	argv := driver.Expand(strings.Join([]string{cfg.RunOpt, BitcodeFormat}, " "), map[string][]string{
		"LLVM_OPT":  {opt},
		"OPT_FLAGS": cfg.OptFlags,
		"input":     {input},
		"output":    {output},
	})
	if len(argv) == 0 {
		return driver.Command{}
	}
	return driver.Command{Path: argv[0], Args: argv[1:]}
}

// SingleInput returns the one input path or an invalid_input_count error.
func SingleInput(cfg driver.Config) (string, error) {
	if len(cfg.Inputs) != 1 {
		return "", driver.NewError(driver.ErrorTypeInvalidInputCount,
			fmt.Sprintf("Can only have one input (got %d)", len(cfg.Inputs)))
	}
	return cfg.Inputs[0], nil
}

// ResolveOutput returns the explicit output, or the first input for an
// in-place transformation.
func ResolveOutput(cfg driver.Config) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	if len(cfg.Inputs) == 0 {
		return ""
	}
	return cfg.Inputs[0]
}

// Usage returns the help text.
func Usage(name string) string {
	if name == "" {
		name = "pnacl-finalize"
	}
	return fmt.Sprintf(`Usage: %s <options> in-file
  This tool prepares a PNaCl bitcode application for ABI stability.

  The options are:
  -h --help                 Display this output
  -o <file>                 Place the output into <file>. Otherwise, the
                            input file is modified in-place.
  --no-finalize             Don't run preparation steps (just copy in -> out).
`, name)
}
