package compiler

import (
	"iter"
	"slices"

	"github.com/ezrec/usm/internal"
)

// Macro is one macro definition: a pattern plus raw body template
// lines. Body lines may hold placeholders (bare slot names),
// automatic variable markers ("$name") and automatic label markers
// ("%name", or "[%name]" in label position).
type Macro struct {
	Pattern Pattern
	LineNo  int      // Line of the @def directive.
	Lines   []string // Raw body template lines.
}

// MacroTable holds macro definitions in declaration order. Prologue
// definitions precede every user definition, and the scan order is
// the precedence order: declaration order is semantically load
// bearing, so the table is a slice, never a keyed map.
type MacroTable struct {
	macros   []*Macro
	prologue int
}

// Append adds a definition at the end of the table.
func (table *MacroTable) Append(m *Macro) {
	table.macros = append(table.macros, m)
}

// SealPrologue marks every definition so far as built in.
func (table *MacroTable) SealPrologue() {
	table.prologue = len(table.macros)
}

// Match scans the table in declaration order and returns the first
// definition whose pattern aligns with tokens, or nil.
func (table *MacroTable) Match(tokens []string) (m *Macro, binds map[string]string) {
	for _, candidate := range table.macros {
		b, ok := candidate.Pattern.Match(tokens)
		if ok {
			m, binds = candidate, b
			return
		}
	}

	return
}

// Builtin iterates the prologue definitions.
func (table *MacroTable) Builtin() iter.Seq[*Macro] {
	return slices.Values(table.macros[:table.prologue])
}

// UserDefined iterates the user definitions in declaration order.
func (table *MacroTable) UserDefined() iter.Seq[*Macro] {
	return slices.Values(table.macros[table.prologue:])
}

// All iterates every definition in precedence order.
func (table *MacroTable) All() iter.Seq[*Macro] {
	return internal.IterSeqConcat(table.Builtin(), table.UserDefined())
}
