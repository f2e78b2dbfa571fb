package exprtree

import "strings"

type litKind int8

const (
	litNone litKind = iota
	litNum          // decimal number
	litInf          // inf or infinity, signed or not
	litNaN          // nan, signed or not
)

// literal classifies operand text. Numbers are decimal with an optional sign,
// fraction, and exponent, e.g. "-1.5e3", "1." or ".5". The words inf,
// infinity, and nan are accepted in any case. Hexadecimal, binary exponents,
// and digit separators are not numbers.
func literal(s string) litKind {
	t := s
	if t != "" && (t[0] == '+' || t[0] == '-') {
		t = t[1:]
	}
	switch strings.ToLower(t) {
	case "inf", "infinity":
		return litInf
	case "nan":
		return litNaN
	}
	i := digits(t, 0)
	mant := i
	if i < len(t) && t[i] == '.' {
		j := digits(t, i+1)
		mant += j - i - 1
		i = j
	}
	if mant == 0 {
		return litNone
	}
	if i < len(t) && (t[i] == 'e' || t[i] == 'E') {
		i++
		if i < len(t) && (t[i] == '+' || t[i] == '-') {
			i++
		}
		j := digits(t, i)
		if j == i {
			return litNone
		}
		i = j
	}
	if i != len(t) {
		return litNone
	}
	return litNum
}

// digits returns the index of the first non-digit in s at or after i.
func digits(s string, i int) int {
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	return i
}
