// Package compiler translates S-language source text into executable
// machine programs.
//
// A program is a sequence of whitespace-separated tokens: bracketed
// labels, variables, and the three base instruction forms (increment,
// decrement, conditional jump), plus the print and dump
// pseudo-instructions. Lines that match no base instruction are
// matched against a macro table and expanded, hygienically renaming
// auxiliary variables and labels so that distinct expansions can
// never collide with each other or with the surrounding program.
//
// A prologue of built-in macros (goto, assignment, comparison, and
// the elementary arithmetic operators) is compiled ahead of every
// input, and user macros may be declared inline with @def/@end.
package compiler
