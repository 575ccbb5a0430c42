package compiler

import (
	"strings"

	"github.com/ezrec/usm/machine"
)

// element is one piece of a macro pattern: a verbatim token, or a
// single-token capture slot.
type element struct {
	Literal string
	Slot    string
}

// Pattern is an ordered element sequence matched against a token
// sequence.
type Pattern []element

// parsePattern builds a Pattern from the tokens following @def.
// "{name}" tokens become capture slots; every other token matches
// verbatim.
func parsePattern(tokens []string) (pattern Pattern, err error) {
	if len(tokens) == 0 {
		err = ErrPatternEmpty
		return
	}

	seen := map[string]bool{}
	for _, token := range tokens {
		if len(token) > 2 &&
			strings.HasPrefix(token, "{") && strings.HasSuffix(token, "}") {
			name := token[1 : len(token)-1]
			if seen[name] {
				err = ErrPatternDuplicate(name)
				pattern = nil
				return
			}
			seen[name] = true
			pattern = append(pattern, element{Slot: name})
			continue
		}
		pattern = append(pattern, element{Literal: token})
	}

	return
}

// capturable reports whether a token may bind to a capture slot: a
// variable name, a label name, or a numeral. Never a multi-token
// span, never an arbitrary word.
func capturable(token string) bool {
	return machine.IsVariable(token) || machine.IsLabel(token) || digits(token)
}

// digits reports whether token is entirely decimal digits.
func digits(token string) bool {
	if len(token) == 0 {
		return false
	}
	for _, c := range token {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Match aligns tokens against the pattern, returning the placeholder
// bindings on success.
func (pattern Pattern) Match(tokens []string) (binds map[string]string, ok bool) {
	if len(tokens) != len(pattern) {
		return
	}

	binds = map[string]string{}
	for n, el := range pattern {
		token := tokens[n]
		if el.Slot == "" {
			if el.Literal != token {
				binds = nil
				return
			}
			continue
		}
		if !capturable(token) {
			binds = nil
			return
		}
		binds[el.Slot] = token
	}

	ok = true
	return
}

// String renders the pattern in @def syntax.
func (pattern Pattern) String() (out string) {
	parts := make([]string, 0, len(pattern))
	for _, el := range pattern {
		if el.Slot != "" {
			parts = append(parts, "{"+el.Slot+"}")
		} else {
			parts = append(parts, el.Literal)
		}
	}

	out = strings.Join(parts, " ")
	return
}
