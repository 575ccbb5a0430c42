// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package compiler

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"log"
	"slices"
	"strings"

	"github.com/ezrec/usm/internal"
	"github.com/ezrec/usm/machine"
)

// DefaultDepthLimit bounds macro nesting when Compiler.DepthLimit is
// unset. Cycle detection guarantees termination; the ceiling only
// keeps deep acyclic nesting from exhausting the stack.
const DefaultDepthLimit = 64

// Line origins.
const (
	OriginPrologue = "prologue"
	OriginInput    = "input"
)

// line is one raw source line tagged with its origin.
type line struct {
	Origin string
	LineNo int
	Text   string
}

// lineSeq reads r as a sequence of tagged lines.
func lineSeq(origin string, r io.Reader) iter.Seq[line] {
	return func(yield func(line) bool) {
		scanner := bufio.NewScanner(r)
		lineno := 0
		for scanner.Scan() {
			lineno += 1
			if !yield(line{Origin: origin, LineNo: lineno, Text: scanner.Text()}) {
				return
			}
		}
	}
}

// Compiler compiles source text into a machine.Program: macro
// collection, hygienic expansion to a fixed point, and assembly of
// the label table. Compilation is all or nothing; there is no
// partial output.
type Compiler struct {
	Verbose    bool // If set, verbosely logs compilation.
	DepthLimit int  // Macro nesting ceiling; 0 means DefaultDepthLimit.

	table       MacroTable
	ctx         Context
	code        []machine.Instruction
	pending     []machine.Label
	pendingLine int
	collect     *Macro
}

func (c *Compiler) depthLimit() int {
	if c.DepthLimit > 0 {
		return c.DepthLimit
	}
	return DefaultDepthLimit
}

// Macros returns the macro table of the last Parse.
func (c *Compiler) Macros() *MacroTable {
	return &c.table
}

// Parse compiles an input stream against the prologue macro set.
func (c *Compiler) Parse(input io.Reader) (prog *machine.Program, err error) {
	var current line

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: current.LineNo, Line: current.Text, Err: err}
		}
	}()

	c.table = MacroTable{}
	c.ctx = Context{}
	c.code = c.code[:0]
	c.pending = nil
	c.pendingLine = 0
	c.collect = nil

	lines := slices.Collect(internal.IterSeqConcat(
		lineSeq(OriginPrologue, strings.NewReader(Prologue)),
		lineSeq(OriginInput, input),
	))

	// Seed the allocator from every explicit name, macro bodies
	// included, before any expansion can allocate.
	for _, current = range lines {
		c.observeLine(current.Text)
	}

	sealed := false
	for _, current = range lines {
		if !sealed && current.Origin == OriginInput {
			c.table.SealPrologue()
			sealed = true
		}

		if c.Verbose && current.Origin == OriginInput {
			log.Printf("%v: %v\n", current.LineNo, current.Text)
		}

		err = c.compileLine(current)
		if err != nil {
			return
		}
	}

	// Empty input never reaches the seal above.
	if !sealed {
		c.table.SealPrologue()
	}

	if c.collect != nil {
		for _, l := range lines {
			if l.Origin == OriginInput && l.LineNo == c.collect.LineNo {
				current = l
				break
			}
		}
		err = ErrMacroLonely
		return
	}

	prog, err = assemble(c.code, c.pending, c.pendingLine)
	if err != nil {
		var dup ErrLabelDuplicate
		if errors.As(err, &dup) {
			for _, l := range lines {
				if l.Origin == OriginInput && l.LineNo == dup.LineNo {
					current = l
					break
				}
			}
		}
		return
	}

	return
}

// observeLine seeds the Context from one raw line.
func (c *Compiler) observeLine(text string) {
	labels, tokens := scanLine(stripComment(text))

	for _, name := range labels {
		c.ctx.Observe(name)
	}
	for _, token := range tokens {
		c.ctx.Observe(token)
	}
}

// compileLine handles comments, directives and macro body
// collection, passing everything else to parseLine.
func (c *Compiler) compileLine(current line) (err error) {
	text := stripComment(current.Text)
	if len(text) == 0 {
		return
	}

	tokens := strings.Fields(text)

	if tokens[0] == "@def" {
		if c.collect != nil {
			err = ErrMacroNesting
			return
		}
		var pattern Pattern
		pattern, err = parsePattern(tokens[1:])
		if err != nil {
			return
		}
		c.collect = &Macro{Pattern: pattern, LineNo: current.LineNo}
		return
	}

	if tokens[0] == "@end" && len(tokens) == 1 {
		if c.collect == nil {
			err = ErrMacroLonelyEnd
			return
		}
		c.table.Append(c.collect)
		c.collect = nil
		return
	}

	if strings.HasPrefix(tokens[0], "@") {
		err = ErrDirectiveUnknown
		return
	}

	if c.collect != nil {
		c.collect.Lines = append(c.collect.Lines, text)
		return
	}

	return c.parseLine(text, current.LineNo, 0, map[*Macro]bool{})
}

// parseLine compiles one logical line: leading labels become pending,
// then the tokens must match a literal instruction or a macro.
// Macro expansion re-enters here for every body line.
func (c *Compiler) parseLine(text string, lineno, depth int, path map[*Macro]bool) (err error) {
	rawLabels, tokens := scanLine(text)

	for _, name := range rawLabels {
		var label machine.Label
		label, err = machine.ParseLabel(name)
		if err != nil {
			return
		}
		c.pending = append(c.pending, label)
		c.pendingLine = lineno
	}

	if len(tokens) == 0 {
		err = ErrInstructionInvalid
		return
	}

	in, ok, err := matchInstruction(tokens)
	if err != nil {
		return
	}
	if ok {
		c.emit(in, lineno)
		return
	}

	def, binds := c.table.Match(tokens)
	if def == nil {
		err = ErrInstructionInvalid
		return
	}

	return c.expand(def, binds, lineno, depth, path)
}

// emit appends one literal instruction, attaching the pending
// labels. A labeled line that expands to nothing leaves its label
// pending for the next emitted instruction.
func (c *Compiler) emit(in machine.Instruction, lineno int) {
	in.Labels = c.pending
	in.Line = lineno
	c.pending = nil

	c.code = append(c.code, in)

	if c.Verbose {
		log.Printf("%4v: %v\n", len(c.code)-1, in)
	}
}
