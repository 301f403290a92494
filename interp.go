package goscheme

import (
	"io"
)

// Run parses each datum against e and evaluates it, in order, so a define
// is visible to the forms after it. It returns the value of the last form,
// or Terminate as soon as (exit) is evaluated.
func (e *Env) Run(stxs []Syntax) (Value, error) {
	var ret Value = Void{}
	for _, stx := range stxs {
		e.sync()
		x, err := Parse(stx, e)
		if err != nil {
			return nil, err
		}
		ret, err = Eval(x, e)
		if err != nil {
			return nil, err
		}
		if _, ok := ret.(Terminate); ok {
			return ret, nil
		}
	}
	return ret, nil
}

// EvalString reads src and runs it in e.
func (e *Env) EvalString(src string) (Value, error) {
	stxs, err := ReadString(src)
	if err != nil {
		return nil, err
	}
	return e.Run(stxs)
}

// Load reads a whole program from r and runs it in e.
func (e *Env) Load(r io.Reader) (Value, error) {
	stxs, err := Read(r)
	if err != nil {
		return nil, err
	}
	return e.Run(stxs)
}

// IsTerminate reports whether v asks the caller to stop.
func IsTerminate(v Value) bool {
	_, ok := v.(Terminate)
	return ok
}
