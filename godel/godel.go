// Package godel numbers assembled programs.
//
// Every instruction maps to a natural code through the Cantor pairing
// function applied twice: code = pair(op, pair(var, label)), using the
// variable and label enumerations of the machine package. An
// n-instruction program is then, conceptually, the product over the
// first n primes of prime(i)^(code_i+1). That product is
// astronomically large for any interesting program and is never
// evaluated; only the exponents are surfaced.
package godel

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ezrec/usm/machine"
)

var one = big.NewInt(1)

// Pair is the Cantor pairing function (a+b)(a+b+1)/2 + b, a bijection
// between pairs of naturals and naturals.
func Pair(a, b *big.Int) (c *big.Int) {
	sum := new(big.Int).Add(a, b)
	c = new(big.Int).Add(sum, one)
	c.Mul(c, sum)
	c.Rsh(c, 1)
	c.Add(c, b)
	return
}

// Code computes the numeric code of one instruction. Distinct
// instructions receive distinct codes.
func Code(in machine.Instruction) *big.Int {
	operand := Pair(
		big.NewInt(int64(in.Var.Number())),
		big.NewInt(int64(in.Target.Number())),
	)
	return Pair(big.NewInt(int64(in.Op)), operand)
}

// Codes computes the code of every instruction of a program, in
// order.
func Codes(prog *machine.Program) (codes []*big.Int) {
	codes = make([]*big.Int, 0, len(prog.Code))
	for _, in := range prog.Instructions() {
		codes = append(codes, Code(in))
	}
	return
}

// Primes returns the first n primes.
func Primes(n int) (primes []uint64) {
	primes = make([]uint64, 0, n)
	for candidate := uint64(2); len(primes) < n; candidate++ {
		composite := false
		for _, p := range primes {
			if p*p > candidate {
				break
			}
			if candidate%p == 0 {
				composite = true
				break
			}
		}
		if !composite {
			primes = append(primes, candidate)
		}
	}
	return
}

// Number renders the symbolic prime power product of a code list.
func Number(codes []*big.Int) (out string) {
	if len(codes) == 0 {
		out = "1"
		return
	}

	primes := Primes(len(codes))
	terms := make([]string, 0, len(codes))
	for n, code := range codes {
		exponent := new(big.Int).Add(code, one)
		terms = append(terms, fmt.Sprintf("%v^%v", primes[n], exponent))
	}

	out = strings.Join(terms, " * ")
	return
}
