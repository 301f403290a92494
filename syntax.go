package goscheme

import (
	"bytes"
	"fmt"
	"strconv"
)

// Syntax is a node of the tree produced by the reader.
// Variants are Number, RationalSyntax, SymbolSyntax, StringSyntax,
// TrueSyntax, FalseSyntax and List.
type Syntax interface {
	String() string
}

type (
	// Number is an integer literal.
	Number int64

	// RationalSyntax is a literal like 3/4. The denominator is checked by
	// the parser, not the reader.
	RationalSyntax struct {
		Num, Den int64
	}

	// SymbolSyntax is a bare identifier, including the lone "." of a
	// dotted list.
	SymbolSyntax string

	// StringSyntax is a string literal with escapes already resolved.
	StringSyntax string

	TrueSyntax struct{}

	FalseSyntax struct{}

	// List is a parenthesised sequence of nodes.
	List []Syntax
)

func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}

func (r RationalSyntax) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

func (s SymbolSyntax) String() string {
	return string(s)
}

func (s StringSyntax) String() string {
	return strconv.Quote(string(s))
}

func (TrueSyntax) String() string {
	return "#t"
}

func (FalseSyntax) String() string {
	return "#f"
}

func (l List) String() string {
	var buf bytes.Buffer
	buf.WriteByte('(')
	for i, stx := range l {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(stx.String())
	}
	buf.WriteByte(')')
	return buf.String()
}

func isSymbol(stx Syntax, name string) bool {
	s, ok := stx.(SymbolSyntax)
	return ok && string(s) == name
}
