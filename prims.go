package goscheme

import (
	"io"
)

func apply1(env *Env, op Op, x Value) (Value, error) {
	switch op {
	case OpCar:
		p, ok := x.(*Pair)
		if !ok {
			return nil, errType("car")
		}
		return p.Car, nil
	case OpCdr:
		p, ok := x.(*Pair)
		if !ok {
			return nil, errType("cdr")
		}
		return p.Cdr, nil
	case OpNot:
		return Boolean(isFalse(x)), nil
	case OpBooleanQ:
		_, ok := x.(Boolean)
		return Boolean(ok), nil
	case OpNumberQ:
		_, ok := x.(Integer)
		return Boolean(ok), nil
	case OpNullQ:
		_, ok := x.(Null)
		return Boolean(ok), nil
	case OpPairQ:
		_, ok := x.(*Pair)
		return Boolean(ok), nil
	case OpProcedureQ:
		_, ok := x.(*Procedure)
		return Boolean(ok), nil
	case OpSymbolQ:
		_, ok := x.(Symbol)
		return Boolean(ok), nil
	case OpStringQ:
		_, ok := x.(String)
		return Boolean(ok), nil
	case OpListQ:
		return Boolean(isList(x)), nil
	case OpDisplay:
		if s, ok := x.(String); ok {
			io.WriteString(env.out, string(s))
		} else {
			x.Show(env.out)
		}
		return Void{}, nil
	}
	return nil, errorf(ErrInternal, "Unknown unary primitive: %v", op)
}

// isList reports whether v is a proper list. Cyclic lists are not.
func isList(v Value) bool {
	slow, fast := v, v
	for {
		p, ok := fast.(*Pair)
		if !ok {
			_, ok := fast.(Null)
			return ok
		}
		fast = p.Cdr
		p, ok = fast.(*Pair)
		if !ok {
			_, ok := fast.(Null)
			return ok
		}
		fast = p.Cdr
		slow = slow.(*Pair).Cdr
		if fast == slow {
			return false
		}
	}
}

func apply2(op Op, x, y Value) (Value, error) {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return arith(op, x, y)
	case OpModulo:
		return modulo(x, y)
	case OpExpt:
		return expt(x, y)
	case OpLt, OpLe, OpEq, OpGe, OpGt:
		c, err := compare(x, y)
		if err != nil {
			return nil, err
		}
		return Boolean(holds(op, c)), nil
	case OpCons:
		return Cons(x, y), nil
	case OpSetCar, OpSetCdr:
		p, ok := x.(*Pair)
		if !ok {
			return nil, errType(op.String())
		}
		if op == OpSetCar {
			p.Car = y
		} else {
			p.Cdr = y
		}
		return Void{}, nil
	case OpEqQ:
		// Atoms compare by value, pairs and procedures by identity.
		return Boolean(x == y), nil
	}
	return nil, errorf(ErrInternal, "Unknown binary primitive: %v", op)
}

func applyN(op Op, args []Value) (Value, error) {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return arithN(op, args)
	case OpLt, OpLe, OpEq, OpGe, OpGt:
		return compareN(op, args)
	case OpList:
		return ListOf(args...), nil
	case OpAnd:
		var ret Value = Boolean(true)
		for _, v := range args {
			if isFalse(v) {
				return Boolean(false), nil
			}
			ret = v
		}
		return ret, nil
	case OpOr:
		for _, v := range args {
			if !isFalse(v) {
				return v, nil
			}
		}
		return Boolean(false), nil
	}
	return nil, errorf(ErrInternal, "Unknown variadic primitive: %v", op)
}
