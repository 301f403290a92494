package goscheme

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Value is a runtime value.
type Value interface {
	// Show writes the external representation of the value.
	Show(w io.Writer)
	String() string
}

type (
	// Integer holds values in the signed 32-bit range; results outside
	// it are reported as overflow.
	Integer int64

	// Rational is always normalised: Den > 1 and gcd(Num, Den) == 1.
	// Values with denominator 1 are Integers instead.
	Rational struct {
		Num, Den int64
	}

	Boolean bool

	String string

	Symbol string

	// Pair is mutable and shared by reference.
	Pair struct {
		Car Value
		Cdr Value
	}

	Null struct{}

	Void struct{}

	// Procedure is a closure over the frame chain active where it was
	// created. Primitives looked up as values are Procedures whose body is
	// a primitive node.
	Procedure struct {
		Params []string
		Body   Expr
		Env    *Frame
	}

	// Terminate asks the host to end the session.
	Terminate struct{}
)

// Nil is the empty list.
var Nil Value = Null{}

// Cons allocates a new pair.
func Cons(car, cdr Value) *Pair {
	return &Pair{Car: car, Cdr: cdr}
}

// ListOf builds a proper list from vs.
func ListOf(vs ...Value) Value {
	var ret Value = Nil
	for i := len(vs) - 1; i >= 0; i-- {
		ret = Cons(vs[i], ret)
	}
	return ret
}

func isFalse(v Value) bool {
	b, ok := v.(Boolean)
	return ok && !bool(b)
}

func (n Integer) Show(w io.Writer) {
	io.WriteString(w, strconv.FormatInt(int64(n), 10))
}

func (r Rational) Show(w io.Writer) {
	fmt.Fprintf(w, "%d/%d", r.Num, r.Den)
}

func (b Boolean) Show(w io.Writer) {
	if b {
		io.WriteString(w, "#t")
	} else {
		io.WriteString(w, "#f")
	}
}

func (s String) Show(w io.Writer) {
	io.WriteString(w, strconv.Quote(string(s)))
}

func (s Symbol) Show(w io.Writer) {
	io.WriteString(w, string(s))
}

func (p *Pair) Show(w io.Writer) {
	showPair(w, p, map[*Pair]bool{})
}

func showValue(w io.Writer, v Value, seen map[*Pair]bool) {
	if p, ok := v.(*Pair); ok {
		showPair(w, p, seen)
		return
	}
	v.Show(w)
}

func showPair(w io.Writer, p *Pair, seen map[*Pair]bool) {
	if seen[p] {
		io.WriteString(w, "...")
		return
	}
	io.WriteString(w, "(")
	var spine []*Pair
	curr := p
	for {
		seen[curr] = true
		spine = append(spine, curr)
		showValue(w, curr.Car, seen)
		next, ok := curr.Cdr.(*Pair)
		if !ok {
			if _, isNull := curr.Cdr.(Null); !isNull {
				io.WriteString(w, " . ")
				showValue(w, curr.Cdr, seen)
			}
			break
		}
		if seen[next] {
			io.WriteString(w, " ...")
			break
		}
		io.WriteString(w, " ")
		curr = next
	}
	io.WriteString(w, ")")
	for _, sp := range spine {
		delete(seen, sp)
	}
}

func (Null) Show(w io.Writer) {
	io.WriteString(w, "()")
}

func (Void) Show(w io.Writer) {}

func (p *Procedure) Show(w io.Writer) {
	io.WriteString(w, "#<procedure>")
}

func (Terminate) Show(w io.Writer) {}

func toString(v Value) string {
	var buf bytes.Buffer
	v.Show(&buf)
	return buf.String()
}

func (n Integer) String() string    { return toString(n) }
func (r Rational) String() string   { return toString(r) }
func (b Boolean) String() string    { return toString(b) }
func (s String) String() string     { return toString(s) }
func (s Symbol) String() string     { return toString(s) }
func (p *Pair) String() string      { return toString(p) }
func (n Null) String() string       { return toString(n) }
func (v Void) String() string       { return "" }
func (p *Procedure) String() string { return toString(p) }
func (t Terminate) String() string  { return "" }
