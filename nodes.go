package exprtree

import (
	"strings"
	"unicode"
)

// node is a node in the tree of an expression.
type node struct {
	// text is an operator, or the operand exactly as it appeared in the input.
	// Malformed inputs can give operand text to a node with children.
	text string

	left  *node
	right *node
}

// Expr is a parsed expression. An Expr is never modified after Parse returns,
// so it is safe to evaluate and print from multiple goroutines.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse builds the tree of an expression. Parse never fails; a malformed
// expression produces a tree which fails to evaluate.
func Parse(src string) *Expr {
	return &Expr{n: build(src)}
}

func build(src string) *node {
	op, l, r := Split(src)
	n := node{text: op}
	if l != "" {
		n.left = build(l)
	}
	if r != "" {
		n.right = build(r)
	}
	return &n
}

func (n *node) leaf() bool {
	return n.left == nil && n.right == nil
}

// String draws the expression as a tree, one node per line, with each child
// indented below its parent. A lone operand prints without a newline; any
// other tree ends with one.
func (e *Expr) String() string {
	return e.n.String()
}

func (n *node) String() string {
	var b strings.Builder
	n.draw(&b)
	return b.String()
}

func (n *node) draw(b *strings.Builder) {
	b.WriteString(n.text)
	if n.leaf() {
		return
	}
	b.WriteByte('\n')
	switch {
	case n.left != nil && n.right != nil:
		n.left.branch(b, "|-- ", "|   ")
		n.right.branch(b, "`-- ", "    ")
	case n.left != nil:
		n.left.branch(b, "`-- ", "    ")
	default:
		n.right.branch(b, "`-- ", "    ")
	}
}

// branch writes the drawing of n with first prefixed to its first line and
// rest prefixed to every other line.
func (n *node) branch(b *strings.Builder, first, rest string) {
	s := strings.TrimRightFunc(n.String(), unicode.IsSpace)
	for i, line := range strings.Split(s, "\n") {
		if i == 0 {
			b.WriteString(first)
		} else {
			b.WriteString(rest)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}
