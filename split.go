package exprtree

import "strings"

// Operators contains the characters which make an expression worth splitting.
const Operators = "+-*/^"

// Split finds the loosest operator in src and returns it along with the
// expressions to its left and right. If src contains no operator characters,
// or no token is an operator, then the first token is returned as op.
//
// The scan stops at the first + or -. Otherwise the first * or / is chosen,
// and a ^ is chosen only when neither occurs. Tokens are separated by single
// spaces; consecutive spaces produce empty tokens, which are kept.
func Split(src string) (op, left, right string) {
	if !strings.ContainsAny(src, Operators) {
		return src, "", ""
	}
	tokens := strings.Split(src, " ")
	k := 0
	prec := 4
scan:
	for i, tok := range tokens {
		switch tok {
		case "+", "-":
			k = i
			break scan
		case "*", "/":
			if prec > 2 {
				k, prec = i, 2
			}
		case "^":
			if prec > 3 {
				k, prec = i, 3
			}
		}
	}
	left = strings.Join(tokens[:k], " ")
	right = strings.Join(tokens[k+1:], " ")
	return tokens[k], left, right
}
