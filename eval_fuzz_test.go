//go:build go1.18
// +build go1.18

package exprtree_test

import (
	"testing"

	"github.com/zephyrtronium/exprtree"
)

func FuzzEval(f *testing.F) {
	f.Add("1 + 2 * 3")
	f.Add("2 ^ 3 * 4")
	f.Add("+ 2 -")
	f.Add("3 4 -5")
	f.Add("1 +  2")
	f.Fuzz(func(t *testing.T, s string) {
		e := exprtree.Parse(s)
		a, aerr := e.Eval()
		b, berr := exprtree.Parse(s).Eval()
		if (aerr == nil) != (berr == nil) {
			t.Errorf("%q: inconsistent errors %v and %v", s, aerr, berr)
		}
		if aerr == nil && a != b && !(a != a && b != b) {
			t.Errorf("%q: inconsistent results %g and %g", s, a, b)
		}
		_ = e.String()
	})
}
