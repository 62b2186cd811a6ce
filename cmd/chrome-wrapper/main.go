// Command chrome-wrapper starts Chrome for Selenium, hiding platform
// differences and stripping the quotes Selenium puts around
// --user-data-dir. All arguments are forwarded; the wrapper has no flags
// of its own.
package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dzonerzy/nacl-tools/driver"
	toolio "github.com/dzonerzy/nacl-tools/io"
	"github.com/dzonerzy/nacl-tools/launcher"
)

func main() {
	// log lines go to stderr so the browser's stdout stays untouched
	m := toolio.New().WithOut(os.Stderr)
	logger := toolio.NewLogger(m).WithFormat(toolio.LogFormatCaller).WithLevel(toolio.LevelDebug)
	os.Exit(run(os.Args, launcher.New(logger)))
}

func run(argv []string, l *launcher.Launcher) int {
	return driver.ExitCode(newApp(l).Run(argv))
}

func newApp(l *launcher.Launcher) *cli.App {
	return &cli.App{
		Name:            "chrome-wrapper",
		Usage:           "launch Chrome with Selenium quoting fixes",
		HideHelp:        true,
		HideHelpCommand: true,
		HideVersion:     true,
		SkipFlagParsing: true,
		Action: func(c *cli.Context) error {
			return l.Start(append([]string{c.App.Name}, c.Args().Slice()...))
		},
		// exit codes are decided by run
		ExitErrHandler: func(*cli.Context, error) {},
	}
}
