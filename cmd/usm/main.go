// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/ezrec/usm/compiler"
	"github.com/ezrec/usm/emulator"
	"github.com/ezrec/usm/godel"
	"github.com/ezrec/usm/machine"
)

const (
	historyFile = ".usm_history"
	promptMain  = "usm> "
	promptCont  = " ... "
	banner      = "S-language REPL. Ctrl+D to exit, :help for commands."
	helpText    = `
REPL commands:
  :run [x1 x2 ...]   Compile the buffer and run it on the given inputs
  :number            Print the program number of the buffer
  :list              Show the buffer
  :macros            List the macros the buffer defines
  :clear             Discard the buffer
  :help              Show this help
  :quit              Exit
`
)

const (
	colorError = "\x1b[31;1m"
	colorReset = "\x1b[0m"
)

func complain(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorError+format+colorReset+"\n", args...)
}

func fatalf(format string, args ...any) {
	complain(format, args...)
	os.Exit(1)
}

func main() {
	var number bool
	var verbose bool
	var limit uint64

	flag.BoolVar(&number, "p", false, "Print the program number, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Uint64Var(&limit, "limit", 0, "Execution step limit (0 for the default)")

	flag.Parse()

	if flag.NArg() == 0 {
		os.Exit(repl(verbose, limit))
	}

	name := flag.Arg(0)
	inputs, err := parseInputs(flag.Args()[1:])
	if err != nil {
		fatalf("%v", err)
	}

	inf, err := os.Open(name)
	if err != nil {
		fatalf("%v: %v", name, err)
	}
	defer inf.Close()

	comp := &compiler.Compiler{Verbose: verbose}
	prog, err := comp.Parse(inf)
	if err != nil {
		fatalf("%v: %v", name, err)
	}

	if number {
		printNumber(os.Stdout, prog)
		return
	}

	err = run(prog, inputs, verbose, limit)
	if err != nil {
		fatalf("%v: %v", name, err)
	}
}

// parseInputs parses decimal naturals for the input variables x1..xn.
func parseInputs(args []string) (inputs []*big.Int, err error) {
	for _, arg := range args {
		value, ok := new(big.Int).SetString(arg, 10)
		if !ok || value.Sign() < 0 {
			err = fmt.Errorf("invalid input %q: want a natural number", arg)
			return
		}
		inputs = append(inputs, value)
	}

	return
}

// run executes a compiled program and prints the output variable.
func run(prog *machine.Program, inputs []*big.Int, verbose bool, limit uint64) (err error) {
	emu := emulator.NewEmulator(prog)
	emu.Verbose = verbose
	emu.MaxSteps = limit
	emu.Observer = &emulator.TextObserver{Writer: os.Stdout}

	emu.Reset(inputs...)

	err = emu.Run()
	if err != nil {
		return
	}

	fmt.Printf("Y = %v\n", emu.Output())

	return
}

// printNumber lists the per-instruction codes and the program number
// as a symbolic prime power product.
func printNumber(w io.Writer, prog *machine.Program) {
	codes := godel.Codes(prog)

	for index, in := range prog.Instructions() {
		fmt.Fprintf(w, "%4v: %-32v #%v\n", index, in, codes[index])
	}

	fmt.Fprintf(w, "Program number: %v\n", godel.Number(codes))
}

func compile(buffer []string, verbose bool) (*machine.Program, error) {
	comp := &compiler.Compiler{Verbose: verbose}

	return comp.Parse(strings.NewReader(strings.Join(buffer, "\n")))
}

// repl reads program lines into a buffer and compiles on demand. A
// compile error reports and keeps the buffer.
func repl(verbose bool, limit uint64) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	var buffer []string
	collecting := false

	for {
		prompt := promptMain
		if collecting {
			prompt = promptCont
		}

		text, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			// Ctrl+C discards the current line only.
			continue
		}

		trimmed := strings.TrimSpace(text)
		if len(trimmed) == 0 {
			continue
		}

		ln.AppendHistory(trimmed)

		if strings.HasPrefix(trimmed, ":") {
			if quit := command(trimmed, &buffer, verbose, limit); quit {
				break
			}
			continue
		}

		buffer = append(buffer, text)

		switch strings.Fields(trimmed)[0] {
		case "@def":
			collecting = true
		case "@end":
			collecting = false
		}
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}

	return 0
}

func command(text string, buffer *[]string, verbose bool, limit uint64) (quit bool) {
	fields := strings.Fields(text)

	switch fields[0] {
	case ":quit", ":exit":
		quit = true

	case ":help":
		fmt.Print(helpText)

	case ":list":
		for _, line := range *buffer {
			fmt.Println(line)
		}

	case ":clear":
		*buffer = nil

	case ":run":
		inputs, err := parseInputs(fields[1:])
		if err != nil {
			complain("%v", err)
			return
		}
		prog, err := compile(*buffer, verbose)
		if err != nil {
			complain("%v", err)
			return
		}
		err = run(prog, inputs, verbose, limit)
		if err != nil {
			complain("%v", err)
		}

	case ":number":
		prog, err := compile(*buffer, verbose)
		if err != nil {
			complain("%v", err)
			return
		}
		printNumber(os.Stdout, prog)

	case ":macros":
		comp := &compiler.Compiler{}
		_, err := comp.Parse(strings.NewReader(strings.Join(*buffer, "\n")))
		if err != nil {
			complain("%v", err)
			return
		}
		for def := range comp.Macros().UserDefined() {
			fmt.Println(def.Pattern)
		}

	default:
		fmt.Println("unknown command, :help for help")
	}

	return
}
