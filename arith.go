package goscheme

import (
	"math"
)

const (
	minInt = math.MinInt32
	maxInt = math.MaxInt32
)

// ratio is the working form of a number during arithmetic. den > 0.
type ratio struct {
	num, den int64
}

func gcd(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func inRange(n int64) bool {
	return n >= minInt && n <= maxInt
}

func makeInteger(n int64) (Value, error) {
	if !inRange(n) {
		return nil, errorf(ErrOverflow, "Integer overflow: %d", n)
	}
	return Integer(n), nil
}

// normalize reduces n/d by their gcd and moves the sign to the numerator.
func normalize(n, d int64) (ratio, error) {
	if d == 0 {
		return ratio{}, errDivByZero
	}
	if d < 0 {
		n, d = -n, -d
	}
	if g := gcd(n, d); g > 1 {
		n /= g
		d /= g
	}
	if !inRange(n) || !inRange(d) {
		if d == 1 {
			return ratio{}, errorf(ErrOverflow, "Integer overflow: %d", n)
		}
		return ratio{}, errorf(ErrOverflow, "Integer overflow: %d/%d", n, d)
	}
	return ratio{num: n, den: d}, nil
}

func (r ratio) value() Value {
	if r.den == 1 {
		return Integer(r.num)
	}
	return Rational{Num: r.num, Den: r.den}
}

// MakeRational returns n/d in lowest terms, as an Integer when d divides n.
func MakeRational(n, d int64) (Value, error) {
	if d == 0 {
		return nil, errorf(ErrZeroDenominator, "Denominator cannot be zero")
	}
	r, err := normalize(n, d)
	if err != nil {
		return nil, err
	}
	return r.value(), nil
}

func toRatio(v Value) (ratio, bool) {
	switch n := v.(type) {
	case Integer:
		return ratio{num: int64(n), den: 1}, true
	case Rational:
		return ratio{num: n.Num, den: n.Den}, true
	}
	return ratio{}, false
}

func toRatios(args []Value) ([]ratio, error) {
	rs := make([]ratio, len(args))
	for i, arg := range args {
		r, ok := toRatio(arg)
		if !ok {
			return nil, errType("")
		}
		rs[i] = r
	}
	return rs, nil
}

func ratioOp(op Op, x, y ratio) (ratio, error) {
	switch op {
	case OpAdd:
		return normalize(x.num*y.den+y.num*x.den, x.den*y.den)
	case OpSub:
		return normalize(x.num*y.den-y.num*x.den, x.den*y.den)
	case OpMul:
		return normalize(x.num*y.num, x.den*y.den)
	case OpDiv:
		if y.num == 0 {
			return ratio{}, errDivByZero
		}
		return normalize(x.num*y.den, x.den*y.num)
	}
	return ratio{}, errorf(ErrInternal, "Unknown arithmetic operator: %v", op)
}

func arith(op Op, a, b Value) (Value, error) {
	x, ok1 := toRatio(a)
	y, ok2 := toRatio(b)
	if !ok1 || !ok2 {
		return nil, errType("")
	}
	r, err := ratioOp(op, x, y)
	if err != nil {
		return nil, err
	}
	return r.value(), nil
}

// arithN folds args left to right. With one argument - negates and /
// takes the reciprocal; with none + and * return their identities.
func arithN(op Op, args []Value) (Value, error) {
	rs, err := toRatios(args)
	if err != nil {
		return nil, err
	}
	if len(rs) == 0 {
		switch op {
		case OpAdd:
			return Integer(0), nil
		case OpMul:
			return Integer(1), nil
		}
		return nil, errArity(op.String())
	}

	acc := rs[0]
	if len(rs) == 1 {
		switch op {
		case OpSub:
			acc, err = normalize(-acc.num, acc.den)
		case OpDiv:
			if acc.num == 0 {
				return nil, errDivByZero
			}
			acc, err = normalize(acc.den, acc.num)
		}
		if err != nil {
			return nil, err
		}
	}
	for _, r := range rs[1:] {
		acc, err = ratioOp(op, acc, r)
		if err != nil {
			return nil, err
		}
	}
	return acc.value(), nil
}

func modulo(a, b Value) (Value, error) {
	x, ok1 := a.(Integer)
	y, ok2 := b.(Integer)
	if !ok1 || !ok2 {
		return nil, errorf(ErrType, "modulo is only defined for integers")
	}
	if y == 0 {
		return nil, errDivByZero
	}
	return x % y, nil
}

// expt computes base**exp by squaring for a non-negative integer exp.
func expt(a, b Value) (Value, error) {
	x, ok1 := a.(Integer)
	y, ok2 := b.(Integer)
	if !ok1 || !ok2 {
		return nil, errType("expt")
	}
	if y < 0 {
		return nil, errorf(ErrDomain, "Negative exponent not supported for integers")
	}
	if x == 0 && y == 0 {
		return nil, errorf(ErrDomain, "0^0 is undefined")
	}

	result := int64(1)
	base := int64(x)
	for e := int64(y); e > 0; e /= 2 {
		if e%2 == 1 {
			result *= base
			if !inRange(result) {
				return nil, errorf(ErrOverflow, "Integer overflow in expt")
			}
		}
		if e > 1 {
			base *= base
			if !inRange(base) {
				return nil, errorf(ErrOverflow, "Integer overflow in expt")
			}
		}
	}
	return Integer(result), nil
}

// compare is a three-way comparison of two numbers.
func compare(a, b Value) (int, error) {
	x, ok1 := toRatio(a)
	y, ok2 := toRatio(b)
	if !ok1 || !ok2 {
		return 0, errType("numeric comparison")
	}
	l, r := x.num*y.den, y.num*x.den
	switch {
	case l < r:
		return -1, nil
	case l > r:
		return 1, nil
	}
	return 0, nil
}

func holds(op Op, c int) bool {
	switch op {
	case OpLt:
		return c < 0
	case OpLe:
		return c <= 0
	case OpEq:
		return c == 0
	case OpGe:
		return c >= 0
	case OpGt:
		return c > 0
	}
	return false
}

// compareN checks every adjacent pair and stops at the first that fails.
func compareN(op Op, args []Value) (Value, error) {
	if len(args) < 2 {
		return nil, errArity(op.String())
	}
	for i := 0; i+1 < len(args); i++ {
		c, err := compare(args[i], args[i+1])
		if err != nil {
			return nil, err
		}
		if !holds(op, c) {
			return Boolean(false), nil
		}
	}
	return Boolean(true), nil
}
