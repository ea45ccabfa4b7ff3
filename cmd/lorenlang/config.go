package main

import (
	"flag"
	"fmt"
	"os"
)

// Config holds every knob the CLI exposes, populated once from
// os.Args by parseConfig. It is passed by value into runFile/runRepl
// rather than read back out of package-level flag state.
type Config struct {
	// FilePath is the source file to execute in batch mode. Empty
	// means REPL mode.
	FilePath string

	// NoColor disables fatih/color output even on a TTY, for
	// redirected output or users who asked for plain text.
	NoColor bool

	// HistoryFile is where REPL line history persists between
	// sessions. Empty disables persistent history.
	HistoryFile string

	// RecordPath, when non-empty, makes the REPL write a YAML
	// transcript of every input/output pair to this path on exit.
	RecordPath string

	Prompt string
}

const (
	defaultPrompt  = "lorenlang >>> "
	defaultHistory = ".lorenlang_history"
	version        = "v0.1.0"
)

// parseConfig builds a Config from os.Args, handling --help/--version
// itself (printing and exiting 0) before flag parsing proper.
func parseConfig(args []string) Config {
	for _, a := range args {
		switch a {
		case "--help", "-h":
			printUsage(os.Stdout)
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("lorenlang %s\n", version)
			os.Exit(0)
		}
	}

	fs := flag.NewFlagSet("lorenlang", flag.ExitOnError)
	noColor := fs.Bool("no-color", false, "disable colored output")
	history := fs.String("history", defaultHistory, "path to the REPL history file")
	record := fs.String("record", "", "record the REPL session as a YAML transcript to this path")
	prompt := fs.String("prompt", defaultPrompt, "REPL prompt string")
	fs.Parse(args)

	cfg := Config{
		NoColor:     *noColor,
		HistoryFile: *history,
		RecordPath:  *record,
		Prompt:      *prompt,
	}

	if rest := fs.Args(); len(rest) > 0 {
		cfg.FilePath = rest[0]
	}

	return cfg
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "lorenlang - un intérprete para el lenguaje de palabras clave en español")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "USO:")
	fmt.Fprintln(w, "  lorenlang                    inicia el REPL interactivo")
	fmt.Fprintln(w, "  lorenlang <archivo>          ejecuta un archivo fuente")
	fmt.Fprintln(w, "  lorenlang --help             muestra esta ayuda")
	fmt.Fprintln(w, "  lorenlang --version          muestra la versión")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "BANDERAS:")
	fmt.Fprintln(w, "  -no-color                    desactiva la salida a color")
	fmt.Fprintln(w, "  -history <ruta>              archivo de historial del REPL")
	fmt.Fprintln(w, "  -record <ruta>                graba la sesión del REPL como YAML")
	fmt.Fprintln(w, "  -prompt <texto>               texto del prompt del REPL")
}
