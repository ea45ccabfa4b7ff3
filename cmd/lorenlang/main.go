// Command lorenlang is the entry point for the Language interpreter.
// It operates in two modes: batch file execution when a file argument
// is given, and the interactive REPL otherwise. Whether stdout is a
// terminal only decides whether output is colored; with no file
// argument the REPL starts even when stdin is piped.
package main

import (
	"os"

	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// banner is the ASCII art shown when the REPL starts interactively.
const banner = `
  _                          _
 | |                        | |
 | |     ___  _ __ ___ _ __ | |     __ _ _ __   __ _
 | |    / _ \| '__/ _ \ '_ \| |    / _  | '_ \ / _  |
 | |___| (_) | | |  __/ | | | |___| (_| | | | | (_| |
 |______\___/|_|  \___|_| |_|______\__,_|_| |_|\__, |
                                                 __/ |
                                                |___/
`

func main() {
	cfg := parseConfig(os.Args[1:])

	if cfg.NoColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	if cfg.FilePath != "" {
		os.Exit(runFile(cfg, os.Stdout, os.Stderr))
	}

	out := colorable.NewColorableStdout()
	runRepl(cfg, out)
}
