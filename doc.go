// Package exprtree parses space-separated arithmetic expressions into binary
// trees, evaluates them, and draws them.
//
// Every token must be separated by exactly one space: "1 + 2 * 3" is an
// addition of 1 and a multiplication, but "1+2" is a single, invalid operand.
// The operators are + - * / and ^. The loosest operator is chosen by a single
// left-to-right scan: the first + or - always wins, otherwise the first * or /,
// otherwise the first ^. So "2 ^ 3 * 4" is "(2 ^ 3) * 4" and "1 - 2 - 3" is
// "1 - (2 - 3)".
//
// Expressions evaluate to float64 with Expr.Eval, or to an arbitrary-precision
// big.Float with a Context.
//
package exprtree
