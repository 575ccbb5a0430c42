package compiler

import (
	"strings"

	"github.com/ezrec/usm/machine"
)

// expand rewrites one matched macro invocation. Substitution is
// token by token: placeholders become their bound tokens, and every
// distinct automatic marker in this expansion instance becomes one
// freshly allocated name from the Context. Each substituted line is
// re-submitted to parseLine, recursing until every produced line is a
// literal instruction.
//
// path is the set of definitions on the active expansion path;
// re-entering one is a recursion error. Two invocations of the same
// macro at different call sites never form a cycle with each other.
func (c *Compiler) expand(def *Macro, binds map[string]string, lineno, depth int, path map[*Macro]bool) (err error) {
	if depth >= c.depthLimit() {
		err = ErrExpandDepth
		return
	}

	if path[def] {
		err = ErrMacroRecursive(def.Pattern.String())
		return
	}
	path[def] = true
	defer delete(path, def)

	// Fresh names are memoized per expansion instance: "$t" twice in
	// one body is one variable, two instances of one macro are
	// disjoint.
	autoVars := map[string]machine.Variable{}
	autoLabels := map[string]machine.Label{}

	autoLabel := func(marker string) machine.Label {
		label, ok := autoLabels[marker]
		if !ok {
			label = c.ctx.FreshLabel(marker)
			autoLabels[marker] = label
		}
		return label
	}

	substitute := func(token string) string {
		bound, ok := binds[token]
		if ok {
			return bound
		}
		if len(token) > 1 && token[0] == '$' {
			name := token[1:]
			v, ok := autoVars[name]
			if !ok {
				v = c.ctx.FreshVariable()
				autoVars[name] = v
			}
			return v.String()
		}
		if len(token) > 1 && token[0] == '%' {
			return autoLabel(token[1:]).String()
		}
		return token
	}

	for n, template := range def.Lines {
		bodyNo := def.LineNo + 1 + n

		labels, tokens := scanLine(template)
		parts := make([]string, 0, len(labels)+len(tokens))
		for _, name := range labels {
			bound, ok := binds[name]
			switch {
			case ok:
				name = bound
			case len(name) > 1 && name[0] == '%':
				name = autoLabel(name[1:]).String()
			}
			parts = append(parts, "["+name+"]")
		}
		for _, token := range tokens {
			parts = append(parts, substitute(token))
		}
		text := strings.Join(parts, " ")

		err = c.parseLine(text, lineno, depth+1, path)
		if err != nil {
			err = &ErrMacro{Macro: def.Pattern.String(), Line: bodyNo, Err: err}
			err = &ErrSyntax{LineNo: bodyNo, Line: text, Err: err}
			return
		}
	}

	return
}
