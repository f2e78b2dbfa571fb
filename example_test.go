package exprtree_test

import (
	"fmt"

	"github.com/zephyrtronium/exprtree"
)

func ExampleParse() {
	e := exprtree.Parse("1 + 2 * 3 ^ 2")
	fmt.Print(e)
	fmt.Println(e.Eval())

	// Output:
	// +
	// |-- 1
	// `-- *
	//     |-- 2
	//     `-- ^
	//         |-- 3
	//         `-- 2
	// 19 <nil>
}

func ExampleSplit() {
	fmt.Println(exprtree.Split("2 ^ 3 * 4 ^ 5"))

	// Output:
	// * 2 ^ 3 4 ^ 5
}

func ExampleContext() {
	ctx := exprtree.NewContext(exprtree.Prec(128))
	r := ctx.Eval(exprtree.Parse("1 / 3"))
	fmt.Println(r.Text('g', 30))
	ctx.Eval(exprtree.Parse("1 / 0"))
	fmt.Println(ctx.Err())

	// Output:
	// 0.333333333333333333333333333333
	// cannot divide by zero
}
