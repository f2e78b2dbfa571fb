package main

import "math/big"

// maxFib is the largest n the command computes fib(n) for.
const maxFib = 100000

// fib computes the nth Fibonacci number, with fib(1) = fib(2) = 1. fib(n) is
// 0 for n < 1.
func fib(n int) *big.Int {
	a, b := new(big.Int), big.NewInt(1)
	for i := 0; i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return a
}
