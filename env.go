package goscheme

import (
	"io"
	"os"
)

// Frame is one binding of an environment chain. A nil *Frame is the empty
// environment. The spine is never mutated once built; only slots are.
type Frame struct {
	name string
	val  Value // nil while a define or letrec placeholder
	next *Frame
}

// Extend returns a new frame binding name to v in front of next.
func Extend(name string, v Value, next *Frame) *Frame {
	return &Frame{name: name, val: v, next: next}
}

func (f *Frame) find(name string) *Frame {
	for curr := f; curr != nil; curr = curr.next {
		if curr.name == name {
			return curr
		}
	}
	return nil
}

// Lookup returns the value of the nearest binding of name. Placeholders
// report as unbound.
func (f *Frame) Lookup(name string) (Value, bool) {
	fr := f.find(name)
	if fr == nil || fr.val == nil {
		return nil, false
	}
	return fr.val, true
}

// Modify sets the slot of the nearest binding of name and reports whether
// one existed.
func (f *Frame) Modify(name string, v Value) bool {
	fr := f.find(name)
	if fr == nil {
		return false
	}
	fr.val = v
	return true
}

// Env is the handle the evaluator threads through a computation: the
// current frame chain, the global handle and the output of display.
// A top-level define moves the frame of its handle forward.
type Env struct {
	frame  *Frame
	global *Env
	out    io.Writer

	// index maps each name to its nearest frame; global handle only.
	index map[string]*Frame

	// shared handles define into the global handle.
	shared bool
}

// NewEnv returns a fresh global environment when env is nil. Otherwise it
// returns a handle on the global environment of env with its own output;
// definitions made through either handle are seen by both.
func NewEnv(env *Env) *Env {
	if env == nil {
		e := &Env{out: os.Stdout, index: make(map[string]*Frame)}
		e.global = e
		return e
	}
	return &Env{
		frame:  env.global.frame,
		global: env.global,
		out:    env.out,
		shared: true,
	}
}

func (e *Env) sync() {
	if e.shared {
		e.frame = e.global.frame
	}
}

func (e *Env) with(frame *Frame) *Env {
	return &Env{
		frame:  frame,
		global: e.global,
		out:    e.out,
	}
}

// SetOutput redirects display for this handle and every handle derived
// from it afterwards.
func (e *Env) SetOutput(w io.Writer) {
	e.out = w
}

// Lookup finds name in the chain of e.
func (e *Env) Lookup(name string) (Value, bool) {
	e.sync()
	if e.index != nil {
		fr := e.index[name]
		if fr == nil || fr.val == nil {
			return nil, false
		}
		return fr.val, true
	}
	return e.frame.Lookup(name)
}

// Define binds name in e, shadowing any older binding.
func (e *Env) Define(name string, v Value) {
	if e.shared {
		e.global.Define(name, v)
		e.sync()
		return
	}
	e.frame = Extend(name, v, e.frame)
	if e.index != nil {
		e.index[name] = e.frame
	}
}

// refresh copies the current global value of every name bound in closure
// into the nearest slot of that name, so closures observe top-level
// redefinitions of the names they captured.
func (e *Env) refresh(closure *Frame) {
	index := e.global.index
	for f := closure; f != nil; f = f.next {
		g := index[f.name]
		if g == nil || g.val == nil || g == f {
			continue
		}
		if closure.find(f.name) == f {
			f.val = g.val
		}
	}
}
