package goscheme

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// Eval reduces x to a value in env.
func Eval(x Expr, env *Env) (Value, error) {
	switch x := x.(type) {
	case *IntegerLit:
		return x.Val, nil
	case *RationalLit:
		return MakeRational(x.Num, x.Den)
	case *StringLit:
		return String(x.Val), nil
	case *BooleanLit:
		return Boolean(x.Val), nil
	case *VoidLit:
		return Void{}, nil
	case *ExitLit:
		return Terminate{}, nil
	case *Var:
		return evalVar(x.Name, env)
	case *Unary:
		v, err := Eval(x.X, env)
		if err != nil {
			return nil, err
		}
		return apply1(env, x.Op, v)
	case *Binary:
		v1, err := Eval(x.X, env)
		if err != nil {
			return nil, err
		}
		v2, err := Eval(x.Y, env)
		if err != nil {
			return nil, err
		}
		return apply2(x.Op, v1, v2)
	case *Variadic:
		switch x.Op {
		case OpAnd:
			return evalAnd(x.Args, env)
		case OpOr:
			return evalOr(x.Args, env)
		}
		args, err := evalList(x.Args, env)
		if err != nil {
			return nil, err
		}
		return applyN(x.Op, args)
	case *Quote:
		return quote(x.Datum)
	case *Begin:
		return evalSeq(x.Body, env)
	case *If:
		v, err := Eval(x.Cond, env)
		if err != nil {
			return nil, err
		}
		if isFalse(v) {
			return Eval(x.Else, env)
		}
		return Eval(x.Then, env)
	case *Cond:
		return evalCond(x, env)
	case *Lambda:
		return &Procedure{Params: x.Params, Body: x.Body, Env: env.frame}, nil
	case *Apply:
		return evalApply(x, env)
	case *Define:
		return evalDefine(x, env)
	case *Let:
		return evalLet(x, env)
	case *Letrec:
		return evalLetrec(x, env)
	case *Set:
		return evalSet(x, env)
	}
	return nil, errorf(ErrInternal, "Unimplemented eval method for %T", x)
}

func evalList(xs []Expr, env *Env) ([]Value, error) {
	vs := make([]Value, len(xs))
	for i, x := range xs {
		v, err := Eval(x, env)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

func evalSeq(xs []Expr, env *Env) (Value, error) {
	var ret Value = Void{}
	var err error
	for _, x := range xs {
		ret, err = Eval(x, env)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func isNumber(s string) bool {
	if !strings.ContainsAny(s, "0123456789") {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// checkName rejects names that cannot be variables: numeric literals,
// names starting with a digit, '.' or '@', and names containing whitespace
// or any of #'"`.
func checkName(name string) error {
	if name == "" || isNumber(name) {
		return errInvalidName(name)
	}
	switch c := name[0]; {
	case c >= '0' && c <= '9', c == '.', c == '@':
		return errInvalidName(name)
	}
	if strings.IndexFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune("#'\"`", r)
	}) >= 0 {
		return errInvalidName(name)
	}
	return nil
}

func evalVar(name string, env *Env) (Value, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if v, ok := env.frame.Lookup(name); ok {
		return v, nil
	}
	if info, ok := primitives[name]; ok {
		return primitiveProcedure(info), nil
	}
	return nil, errUnbound(name)
}

// primitiveProcedure wraps a primitive so it can be passed around as a
// value. Open-arity primitives keep an empty Variadic body and take their
// arguments directly at application.
func primitiveProcedure(info OpInfo) *Procedure {
	switch info.ar {
	case ArityArith, ArityCompare, ArityAny:
		return &Procedure{Body: &Variadic{Op: info.op}}
	case ArityNone:
		if info.op == OpExit {
			return &Procedure{Body: &ExitLit{}}
		}
		return &Procedure{Body: &VoidLit{}}
	case ArityOne:
		return &Procedure{
			Params: []string{"parm"},
			Body:   &Unary{Op: info.op, X: &Var{Name: "parm"}},
		}
	}
	return &Procedure{
		Params: []string{"parm1", "parm2"},
		Body:   &Binary{Op: info.op, X: &Var{Name: "parm1"}, Y: &Var{Name: "parm2"}},
	}
}

func evalAnd(xs []Expr, env *Env) (Value, error) {
	var ret Value = Boolean(true)
	for _, x := range xs {
		v, err := Eval(x, env)
		if err != nil {
			return nil, err
		}
		if isFalse(v) {
			return v, nil
		}
		ret = v
	}
	return ret, nil
}

func evalOr(xs []Expr, env *Env) (Value, error) {
	for _, x := range xs {
		v, err := Eval(x, env)
		if err != nil {
			return nil, err
		}
		if !isFalse(v) {
			return v, nil
		}
	}
	return Boolean(false), nil
}

func evalCond(x *Cond, env *Env) (Value, error) {
	for _, clause := range x.Clauses {
		test, err := Eval(clause[0], env)
		if err != nil {
			return nil, err
		}
		if isFalse(test) {
			continue
		}
		if len(clause) == 1 {
			return test, nil
		}
		return evalSeq(clause[1:], env)
	}
	return Void{}, nil
}

// quote turns a datum into a value without evaluating it. A "." before the
// last element of a list of three or more makes that element the final cdr.
func quote(stx Syntax) (Value, error) {
	switch s := stx.(type) {
	case Number:
		return Integer(s), nil
	case RationalSyntax:
		return MakeRational(s.Num, s.Den)
	case TrueSyntax:
		return Boolean(true), nil
	case FalseSyntax:
		return Boolean(false), nil
	case SymbolSyntax:
		return Symbol(s), nil
	case StringSyntax:
		return String(s), nil
	case List:
		var tail Value = Nil
		items := s
		if len(s) >= 3 && isSymbol(s[len(s)-2], ".") {
			v, err := quote(s[len(s)-1])
			if err != nil {
				return nil, err
			}
			tail = v
			items = s[:len(s)-2]
		}
		for i := len(items) - 1; i >= 0; i-- {
			if isSymbol(items[i], ".") {
				return nil, errorf(ErrSyntax, "Invalid '.' in quote")
			}
			v, err := quote(items[i])
			if err != nil {
				return nil, err
			}
			tail = Cons(v, tail)
		}
		return tail, nil
	}
	return nil, errType("quote")
}

func evalApply(x *Apply, env *Env) (Value, error) {
	fv, err := Eval(x.Fn, env)
	if err != nil {
		return nil, err
	}
	proc, ok := fv.(*Procedure)
	if !ok {
		return nil, errorf(ErrType, "Attempt to apply a non-procedure: %v", fv)
	}
	args, err := evalList(x.Args, env)
	if err != nil {
		return nil, err
	}
	if v, ok := proc.Body.(*Variadic); ok {
		return applyN(v.Op, args)
	}
	if len(args) != len(proc.Params) {
		return nil, errorf(ErrArity, "Wrong number of arguments: want %d, got %d", len(proc.Params), len(args))
	}

	env.refresh(proc.Env)
	frame := proc.Env
	for i, name := range proc.Params {
		frame = Extend(name, args[i], frame)
	}
	scope := env.with(frame)

	for {
		v, err := Eval(proc.Body, scope)
		if err == nil {
			return v, nil
		}
		name, ok := missingGlobal(err, x.Fn, scope)
		if !ok {
			return nil, err
		}
		gv, _ := env.global.Lookup(name)
		scope.frame = Extend(name, gv, scope.frame)
	}
}

// missingGlobal decides whether a call that failed on an unbound variable
// can be retried: the operator must be a global variable and the missing
// name must be bound globally but not yet in the call's scope.
func missingGlobal(err error, fn Expr, scope *Env) (string, bool) {
	var e *Error
	if !errors.As(err, &e) || e.Kind != ErrUnbound || e.Name == "" {
		return "", false
	}
	v, ok := fn.(*Var)
	if !ok {
		return "", false
	}
	if _, ok := scope.global.Lookup(v.Name); !ok {
		return "", false
	}
	if _, ok := scope.global.Lookup(e.Name); !ok {
		return "", false
	}
	// Already patched in: the failure comes from a nested call.
	if _, ok := scope.frame.Lookup(e.Name); ok {
		return "", false
	}
	return e.Name, true
}

func evalDefine(x *Define, env *Env) (Value, error) {
	if err := checkName(x.Name); err != nil {
		return nil, err
	}
	env.Define(x.Name, nil)
	v, err := Eval(x.X, env)
	if err != nil {
		return nil, err
	}
	env.frame.Modify(x.Name, v)
	return Void{}, nil
}

func evalLet(x *Let, env *Env) (Value, error) {
	frame := env.frame
	for _, b := range x.Bindings {
		if err := checkName(b.Name); err != nil {
			return nil, err
		}
		v, err := Eval(b.X, env)
		if err != nil {
			return nil, err
		}
		frame = Extend(b.Name, v, frame)
	}
	return Eval(x.Body, env.with(frame))
}

// evalLetrec evaluates the bindings where every name is bound to a
// placeholder, then fills the placeholders so closures created by the
// bindings see the final values.
func evalLetrec(x *Letrec, env *Env) (Value, error) {
	inner := env.with(env.frame)
	for _, b := range x.Bindings {
		if err := checkName(b.Name); err != nil {
			return nil, err
		}
		inner.frame = Extend(b.Name, nil, inner.frame)
	}

	body := env.frame
	for _, b := range x.Bindings {
		v, err := Eval(b.X, inner)
		if err != nil {
			return nil, err
		}
		body = Extend(b.Name, v, body)
	}
	for _, b := range x.Bindings {
		inner.frame.Modify(b.Name, body.find(b.Name).val)
	}
	return Eval(x.Body, env.with(body))
}

func evalSet(x *Set, env *Env) (Value, error) {
	if _, ok := env.frame.Lookup(x.Name); !ok {
		return nil, errorf(ErrUnbound, "Unbound variable in set!: %s", x.Name)
	}
	v, err := Eval(x.X, env)
	if err != nil {
		return nil, err
	}
	env.frame.Modify(x.Name, v)
	return Void{}, nil
}
