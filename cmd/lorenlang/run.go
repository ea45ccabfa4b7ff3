package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/lorenlang/lorenlang/eval"
	"github.com/lorenlang/lorenlang/lexer"
	"github.com/lorenlang/lorenlang/object"
	"github.com/lorenlang/lorenlang/parser"
)

var (
	errColor  = color.New(color.FgRed)
	okColor   = color.New(color.FgYellow)
)

// runFile reads cfg.FilePath, lexes and parses it in one pass, then
// evaluates the resulting program in a fresh environment. Parse
// errors are reported without attempting evaluation; a runtime Error
// object is reported and treated the same as a parse failure. Returns
// the process exit code.
func runFile(cfg Config, stdout, stderr io.Writer) int {
	source, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		fmt.Fprintf(stderr, "no se pudo leer el archivo %q: %v\n", cfg.FilePath, err)
		return 1
	}

	l := lexer.New(string(source))
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			errColor.Fprintf(stderr, "[ERROR DE SINTAXIS] %s\n", msg)
		}
		return 1
	}

	env := object.NewEnvironment()
	result := eval.Eval(program, env)

	if result == nil {
		return 0
	}

	if errObj, ok := result.(*object.Error); ok {
		errColor.Fprintf(stderr, "%s\n", errObj.Inspect())
		return 1
	}

	if result.Type() != object.NULL_OBJ {
		okColor.Fprintln(stdout, result.Inspect())
	}

	return 0
}
