package goscheme

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	ErrInternal Kind = iota
	ErrInvalidName
	ErrUnbound
	ErrArity
	ErrType
	ErrDivByZero
	ErrZeroDenominator
	ErrSyntax
	ErrOverflow
	ErrDomain
)

var kindNames = map[Kind]string{
	ErrInternal:        "internal",
	ErrInvalidName:     "invalid name",
	ErrUnbound:         "unbound variable",
	ErrArity:           "arity",
	ErrType:            "type",
	ErrDivByZero:       "division by zero",
	ErrZeroDenominator: "zero denominator",
	ErrSyntax:          "syntax",
	ErrOverflow:        "overflow",
	ErrDomain:          "domain",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the error type returned by the parser and the evaluator.
// Name is set for ErrUnbound and ErrInvalidName.
type Error struct {
	Kind Kind
	Name string
	msg  string
}

func (err *Error) Error() string {
	return err.msg
}

func errorf(kind Kind, format string, v ...interface{}) error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, v...)}
}

func errUnbound(name string) error {
	return &Error{Kind: ErrUnbound, Name: name, msg: "Undefined variable: " + name}
}

func errInvalidName(name string) error {
	return &Error{Kind: ErrInvalidName, Name: name, msg: fmt.Sprintf("Invalid variable name: %q", name)}
}

func errArity(form string) error {
	return errorf(ErrArity, "Wrong number of arguments for %s", form)
}

func errType(what string) error {
	if what == "" {
		return errorf(ErrType, "Wrong typename")
	}
	return errorf(ErrType, "Wrong typename in %s", what)
}

var errDivByZero = &Error{Kind: ErrDivByZero, msg: "Division by zero"}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
