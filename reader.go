package goscheme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	// ErrIncomplete is returned by Read when the input ends inside a datum.
	ErrIncomplete = errors.New("unexpected end of input")

	errBadLiteral = errors.New("bad literal")
)

// Lowercase rules are dropped by the lexer.
var schemeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `;[^\n]*`},
	{Name: "whitespace", Pattern: `[ \t\n\r\v\f]+`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Quote", Pattern: `'`},
	{Name: "Paren", Pattern: `[()]`},
	{Name: "Atom", Pattern: `[^ \t\n\r\v\f()";']+`},
})

type programNode struct {
	Data []*datumNode `@@*`
}

type datumNode struct {
	Pos lexer.Position

	Quote *datumNode `  "'" @@`
	List  *listNode  `| @@`
	Str   *string    `| @String`
	Atom  *string    `| @Atom`
}

type listNode struct {
	Open  string       `@"("`
	Items []*datumNode `@@* ")"`
}

var schemeParser = participle.MustBuild[programNode](
	participle.Lexer(schemeLexer),
)

func (d *datumNode) syntax() (Syntax, error) {
	switch {
	case d.Quote != nil:
		stx, err := d.Quote.syntax()
		if err != nil {
			return nil, err
		}
		return List{SymbolSyntax("quote"), stx}, nil
	case d.List != nil:
		l := make(List, len(d.List.Items))
		for i, item := range d.List.Items {
			stx, err := item.syntax()
			if err != nil {
				return nil, err
			}
			l[i] = stx
		}
		return l, nil
	case d.Str != nil:
		return stringSyntax(*d.Str), nil
	case d.Atom != nil:
		return atomSyntax(*d.Atom, d.Pos)
	}
	return nil, fmt.Errorf("%v: empty datum", d.Pos)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func atomSyntax(lit string, pos lexer.Position) (Syntax, error) {
	switch lit {
	case "#t", "#true":
		return TrueSyntax{}, nil
	case "#f", "#false":
		return FalseSyntax{}, nil
	}

	unsigned := strings.TrimLeft(lit, "+-")
	if len(lit)-len(unsigned) > 1 {
		return SymbolSyntax(lit), nil
	}
	if isDigits(unsigned) {
		n, err := strconv.ParseInt(lit, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%v: %w: integer out of range: %s", pos, errBadLiteral, lit)
		}
		return Number(n), nil
	}
	if i := strings.IndexByte(unsigned, '/'); i > 0 && isDigits(unsigned[:i]) && isDigits(unsigned[i+1:]) {
		i += len(lit) - len(unsigned)
		num, err := strconv.ParseInt(lit[:i], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%v: %w: numerator out of range: %s", pos, errBadLiteral, lit)
		}
		den, err := strconv.ParseInt(lit[i+1:], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%v: %w: denominator out of range: %s", pos, errBadLiteral, lit)
		}
		return RationalSyntax{Num: num, Den: den}, nil
	}
	return SymbolSyntax(lit), nil
}

func stringSyntax(lit string) Syntax {
	var buf bytes.Buffer
	rs := []rune(lit[1 : len(lit)-1])
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r == '\\' && i+1 < len(rs) {
			i++
			r = rs[i]
			switch r {
			case 'n':
				r = '\n'
			case 'r':
				r = '\r'
			case 't':
				r = '\t'
			case 'b':
				r = '\b'
			case 'f':
				r = '\f'
			}
		}
		buf.WriteRune(r)
	}
	return StringSyntax(buf.String())
}

// scan walks the tokens of src and reports whether it holds any datum and
// whether it stops inside one. A source that can never be completed, like
// one with an unbalanced ")", is reported as not open.
func scan(src string) (empty, open bool) {
	lex, err := schemeLexer.LexString("", src)
	if err != nil {
		return false, false
	}
	symbols := schemeLexer.Symbols()
	var (
		quotes  int   // quote prefixes waiting for their datum
		pending []int // quotes of each enclosing list
	)
	empty = true
	for {
		tok, err := lex.Next()
		if err != nil {
			// The only text no rule accepts is a string without its
			// closing quote.
			var lerr *lexer.Error
			if errors.As(err, &lerr) && strings.HasPrefix(src[lerr.Pos.Offset:], `"`) {
				return false, true
			}
			return false, false
		}
		if tok.EOF() {
			return empty, quotes > 0 || len(pending) > 0
		}
		empty = false
		switch {
		case tok.Type == symbols["Quote"]:
			quotes++
		case tok.Value == "(":
			pending = append(pending, quotes)
			quotes = 0
		case tok.Value == ")":
			if len(pending) == 0 || quotes > 0 {
				return false, false
			}
			pending = pending[:len(pending)-1]
			quotes = 0
		default:
			quotes = 0
		}
	}
}

// ReadString reads every datum in src.
func ReadString(src string) ([]Syntax, error) {
	empty, open := scan(src)
	if open {
		return nil, ErrIncomplete
	}
	if empty {
		return []Syntax{}, nil
	}
	prog, err := schemeParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	stxs := make([]Syntax, len(prog.Data))
	for i, d := range prog.Data {
		stx, err := d.syntax()
		if err != nil {
			return nil, err
		}
		stxs[i] = stx
	}
	return stxs, nil
}

// Read reads every datum from r.
func Read(r io.Reader) ([]Syntax, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ReadString(string(b))
}

// IsIncomplete reports whether src is not a complete program but could
// become one with more input, like an unclosed list or string.
func IsIncomplete(src string) bool {
	_, open := scan(src)
	return open
}
