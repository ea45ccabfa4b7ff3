package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/lorenlang/lorenlang/eval"
	"github.com/lorenlang/lorenlang/lexer"
	"github.com/lorenlang/lorenlang/object"
	"github.com/lorenlang/lorenlang/parser"
)

var (
	blueColor  = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

const separator = "----------------------------------------------------------------"

// runRepl runs the interactive loop: read a line, lex+parse+evaluate
// it against a single environment shared across the whole session (so
// `variable` bindings persist line to line), print the result, repeat
// until EOF or an explicit exit command.
func runRepl(cfg Config, out io.Writer) {
	printBanner(out)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "salir",
	})
	if err != nil {
		fmt.Fprintf(out, "no se pudo iniciar el editor de línea: %v\n", err)
		return
	}
	defer rl.Close()

	env := object.NewEnvironment()
	sess := newSession(cfg.RecordPath)
	defer func() {
		if err := sess.flush(); err != nil {
			errColor.Fprintln(out, err)
		}
	}()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(out, "¡Hasta luego!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		rl.SaveHistory(line)

		switch line {
		case "salir()":
			fmt.Fprintln(out, "¡Hasta luego!")
			return
		case "limpiar()":
			env = object.NewEnvironment()
			cyanColor.Fprintln(out, "entorno reiniciado")
			continue
		case "historia()":
			printHistory(out, rl)
			continue
		}

		evalLine(out, line, env, sess)
	}
}

func printBanner(out io.Writer) {
	blueColor.Fprintln(out, separator)
	greenColor.Fprintln(out, banner)
	blueColor.Fprintln(out, separator)
	cyanColor.Fprintln(out, "Intérprete del lenguaje Loren")
	cyanColor.Fprintln(out, "Escribe una expresión y presiona Enter")
	cyanColor.Fprintln(out, "salir()     termina la sesión")
	cyanColor.Fprintln(out, "limpiar()   reinicia el entorno")
	cyanColor.Fprintln(out, "historia()  muestra la ruta del archivo de historial")
	blueColor.Fprintln(out, separator)
}

func printHistory(out io.Writer, rl *readline.Instance) {
	cyanColor.Fprintf(out, "historial guardado en: %s\n", rl.Config.HistoryFile)
}

// evalLine runs a single piece of input through the pipeline, prints
// the result or error in color, and records it into sess. Panics
// raised by a malformed evaluation are recovered so one bad line never
// kills the session.
func evalLine(out io.Writer, line string, env *object.Environment, sess *session) {
	defer func() {
		if r := recover(); r != nil {
			errColor.Fprintf(out, "[ERROR DE EJECUCIÓN] %v\n", r)
			sess.recordError(line, fmt.Sprintf("%v", r))
		}
	}()

	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			errColor.Fprintln(out, msg)
		}
		sess.recordError(line, strings.Join(errs, "; "))
		return
	}

	result := eval.Eval(program, env)
	if result == nil {
		sess.recordResult(line, "")
		return
	}

	if errObj, ok := result.(*object.Error); ok {
		errColor.Fprintln(out, errObj.Inspect())
		sess.recordError(line, errObj.Message)
		return
	}

	okColor.Fprintln(out, result.Inspect())
	sess.recordResult(line, result.Inspect())
}
