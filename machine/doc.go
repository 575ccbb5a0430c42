// Package machine implements the S register machine: unbounded
// natural-number variables, an indexed instruction list with resolved
// jump labels, and a single-stepping execution engine.
//
// The machine has three base instructions (increment, decrement,
// conditional jump on non-zero) plus the no-op and the print/dump
// meta instructions. Variables default to zero, decrementing zero is
// a no-op, and a jump to an undefined label halts the machine. There
// is no runtime error channel.
package machine
