package compiler

import (
	"strings"
)

// scanLine splits one logical line into leading label names and a
// token sequence. Tokens are whitespace separated; labels are
// bracketed tokens at the front of the line. Label names are returned
// raw ("A1", or "%loop" inside a macro body); validity is the
// caller's concern.
func scanLine(text string) (labels []string, tokens []string) {
	tokens = strings.Fields(text)

	for len(tokens) > 0 &&
		strings.HasPrefix(tokens[0], "[") && strings.HasSuffix(tokens[0], "]") {
		labels = append(labels, tokens[0][1:len(tokens[0])-1])
		tokens = tokens[1:]
	}

	return
}

// stripComment removes a '#' comment and surrounding space from a raw
// source line.
func stripComment(text string) string {
	text, _, _ = strings.Cut(text, "#")
	return strings.TrimSpace(text)
}
