package goscheme

// Expr is a node of the expression tree built by Parse. Nodes are never
// modified after construction.
type Expr interface {
	expr()
}

type (
	IntegerLit struct {
		Val Integer
	}

	// RationalLit keeps the literal as written; it is normalised when
	// evaluated.
	RationalLit struct {
		Num, Den int64
	}

	StringLit struct {
		Val string
	}

	BooleanLit struct {
		Val bool
	}

	// VoidLit is (void).
	VoidLit struct{}

	// ExitLit is (exit).
	ExitLit struct{}

	Var struct {
		Name string
	}

	// Unary, Binary and Variadic apply a primitive operator to argument
	// expressions. Variadic is used for the open-arity operators whenever
	// the call does not have exactly two arguments.
	Unary struct {
		Op Op
		X  Expr
	}

	Binary struct {
		Op   Op
		X, Y Expr
	}

	Variadic struct {
		Op   Op
		Args []Expr
	}

	// Quote holds its datum unevaluated.
	Quote struct {
		Datum Syntax
	}

	Begin struct {
		Body []Expr
	}

	If struct {
		Cond, Then, Else Expr
	}

	// Cond clauses are a guard followed by zero or more body expressions.
	Cond struct {
		Clauses [][]Expr
	}

	Lambda struct {
		Params []string
		Body   Expr
	}

	Apply struct {
		Fn   Expr
		Args []Expr
	}

	Define struct {
		Name string
		X    Expr
	}

	Binding struct {
		Name string
		X    Expr
	}

	Let struct {
		Bindings []Binding
		Body     Expr
	}

	Letrec struct {
		Bindings []Binding
		Body     Expr
	}

	Set struct {
		Name string
		X    Expr
	}
)

func (*IntegerLit) expr()  {}
func (*RationalLit) expr() {}
func (*StringLit) expr()   {}
func (*BooleanLit) expr()  {}
func (*VoidLit) expr()     {}
func (*ExitLit) expr()     {}
func (*Var) expr()         {}
func (*Unary) expr()       {}
func (*Binary) expr()      {}
func (*Variadic) expr()    {}
func (*Quote) expr()       {}
func (*Begin) expr()       {}
func (*If) expr()          {}
func (*Cond) expr()        {}
func (*Lambda) expr()      {}
func (*Apply) expr()       {}
func (*Define) expr()      {}
func (*Let) expr()         {}
func (*Letrec) expr()      {}
func (*Set) expr()         {}
