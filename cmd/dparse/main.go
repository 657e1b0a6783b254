// Command dparse lexes and parses a single D source file (or stdin)
// and reports diagnostics, mirroring the teacher's cmd/funxy/main.go
// shape (stdin-vs-file detection, a top-level recover, stderr
// reporting) but trimmed to this repo's actual scope: there is no
// evaluator or bytecode backend here, only lex -> parse -> report,
// plus an optional -print mode that round-trips the parsed module
// back through the pretty printer.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mcgru/dparse/internal/diagnostics"
	"github.com/mcgru/dparse/internal/lexer"
	"github.com/mcgru/dparse/internal/parser"
	"github.com/mcgru/dparse/internal/prettyprinter"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") != "" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "internal error: %v\nThis is a bug. Please report it.\n", r)
			os.Exit(1)
		}
	}()

	printFlag := flag.Bool("print", false, "pretty-print the parsed module back to source instead of just reporting diagnostics")
	widthFlag := flag.Int("width", 0, "target line width for -print (0 uses the printer's default)")
	flag.Parse()

	file, src, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "dparse: %v\n", err)
		os.Exit(1)
	}

	set := &diagnostics.Set{}
	handler := diagnostics.NewCollectHandler(set)
	ctx := parser.NewContext(handler)

	lx := lexer.New(file, src, ctx.Interner, handler)
	tokens := lexer.NewSource(lx)
	mod := parser.ParseModule(tokens, ctx)

	reporter := &diagnostics.Reporter{
		ErrorSink:       os.Stderr,
		WarningSink:     os.Stderr,
		DeprecationSink: os.Stderr,
	}
	reporter.Drain(set)

	if *printFlag {
		pp := printerFor(*widthFlag)
		fmt.Println(pp.Print(ctx.Builder.Arena(), mod))
	}

	if set.HasErrors() {
		os.Exit(1)
	}
}

func printerFor(width int) *prettyprinter.CodePrinter {
	if width > 0 {
		return prettyprinter.NewCodePrinterWithWidth(width)
	}
	return prettyprinter.NewCodePrinter()
}

// readInput returns the pseudo-filename and contents to parse: the
// first positional argument if given, otherwise stdin when it is
// piped rather than an interactive terminal.
func readInput(args []string) (file string, src string, err error) {
	if len(args) > 0 {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", err
		}
		return path, string(data), nil
	}

	if isTerminal(os.Stdin.Fd()) {
		return "", "", fmt.Errorf("no input file given and stdin is a terminal; usage: dparse [-print] <file>")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", err
	}
	return "<stdin>", string(data), nil
}
