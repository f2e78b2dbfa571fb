package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/zephyrtronium/exprtree"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		prec   int
		quiet  bool
	)
	c := calc{out: os.Stdout}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&c.verb, "fmt", "%g", "result formatting string")
	flag.IntVar(&prec, "p", 0, "precision of calculations in bits (0 for float64)")
	flag.BoolVar(&c.tree, "tree", true, "print parse trees")
	flag.BoolVar(&c.dump, "dump", false, "dump parse tree structures")
	flag.BoolVar(&quiet, "q", false, "don't prompt for input")
	flag.Parse()
	if prec < 0 {
		log.Fatalf("precision (%d) must not be negative", prec)
	}
	if prec > 0 {
		c.ctx = exprtree.NewContext(exprtree.Prec(uint(prec)))
	}

	for _, arg := range flag.Args() {
		if c.line(arg) {
			return
		}
	}
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f == nil {
		return
	}
	if f != os.Stdin {
		defer f.Close()
	}
	c.prompt = !quiet && f == os.Stdin
	if err := c.repl(f); err != nil {
		log.Fatal(err)
	}
}

// calc processes input lines.
type calc struct {
	out io.Writer
	// verb is the format verb for results.
	verb string
	// ctx evaluates with arbitrary precision if non-nil.
	ctx *exprtree.Context
	// tree and dump control printing of parsed expressions.
	tree, dump bool
	// prompt is whether to ask for each line.
	prompt bool
}

// repl handles lines from in until it is exhausted or a line says to stop.
func (c *calc) repl(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		if c.prompt {
			fmt.Fprintln(c.out, "Input the expression to be parsed or 'end' to exit")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		if c.line(sc.Text()) {
			return nil
		}
	}
}

// line handles one line of input and reports whether it asks to stop.
func (c *calc) line(s string) bool {
	s = strings.TrimSpace(s)
	switch {
	case s == "end":
		return true
	case strings.HasPrefix(s, "fib"):
		n, err := strconv.Atoi(strings.TrimSpace(s[3:]))
		if err != nil || n < 0 {
			n = 1
		}
		if n > maxFib {
			fmt.Fprintf(c.out, "Error: fib(%d) is too large, the limit is %d\n", n, maxFib)
			break
		}
		fmt.Fprintf(c.out, "fib(%d) = %v\n", n, fib(n))
	default:
		c.expr(s)
	}
	return false
}

func (c *calc) expr(s string) {
	e := exprtree.Parse(s)
	if c.dump {
		spew.Fdump(c.out, e)
	}
	var r interface{}
	if c.ctx != nil {
		x := c.ctx.Eval(e)
		if x == nil {
			fmt.Fprintln(c.out, "Error:", c.ctx.Err())
			return
		}
		r = x
	} else {
		x, err := e.Eval()
		if err != nil {
			fmt.Fprintln(c.out, "Error:", err)
			return
		}
		r = x
	}
	if c.tree {
		fmt.Fprintf(c.out, "The tree representing the operation:\n%s\n", strings.TrimRight(e.String(), "\n"))
	}
	fmt.Fprintf(c.out, "The entered expression evaluates to: "+c.verb+"\n", r)
}

func infile(inname string, std bool) (*os.File, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
