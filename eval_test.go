package goscheme

import (
	"bytes"
	"testing"
)

func run(env *Env, src string) (string, error) {
	v, err := env.EvalString(src)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "1", want: "1"},
		{input: "-7", want: "-7"},
		{input: "3/6", want: "1/2"},
		{input: "4/2", want: "2"},
		{input: `"hi"`, want: `"hi"`},
		{input: "#t", want: "#t"},
		{input: "()", want: "()"},
		{input: "(+ 1/2 1/3)", want: "5/6"},
		{input: "(+ 1/2 1/2)", want: "1"},
		{input: "(/ 6 4)", want: "3/2"},
		{input: "(/ 2)", want: "1/2"},
		{input: "(- 5)", want: "-5"},
		{input: "(+)", want: "0"},
		{input: "(*)", want: "1"},
		{input: "(+ 1 2 3 4)", want: "10"},
		{input: "(expt 2 10)", want: "1024"},
		{input: "(expt 2 0)", want: "1"},
		{input: "(<= 1 1 2)", want: "#t"},
		{input: "(and 1 2 3)", want: "3"},
		{input: "(or #f #f 5)", want: "5"},
		{input: "(+ 3/4 -5/6)", want: "-1/12"},
		{input: "(- 7/3 1/3)", want: "2"},
		{input: "(modulo 7 3)", want: "1"},
		{input: "(< 1 2 3)", want: "#t"},
		{input: "(< 1 3 2)", want: "#f"},
		{input: "(= 1/2 2/4)", want: "#t"},
		{input: "(and 1 2)", want: "2"},
		{input: "(and)", want: "#t"},
		{input: "(and #f (car 1))", want: "#f"},
		{input: "(or #f 3)", want: "3"},
		{input: "(or)", want: "#f"},
		{input: "(not 0)", want: "#f"},
		{input: "(not #f)", want: "#t"},
		{input: "(if 0 1 2)", want: "1"},
		{input: "(if #f 1 2)", want: "2"},
		{input: "(cond (#f 1) ((+ 1 1)) (else 3))", want: "2"},
		{input: "(cond (#f 1) (else 2 3))", want: "3"},
		{input: "(cond (#f 1))", want: ""},
		{input: "(begin 1 2 3)", want: "3"},
		{input: "(begin)", want: ""},
		{input: "(void)", want: ""},
		{input: "'a", want: "a"},
		{input: "'(1 . 2)", want: "(1 . 2)"},
		{input: "'(1 2 . 3)", want: "(1 2 . 3)"},
		{input: `'(a "s" #t 1/2 ())`, want: `(a "s" #t 1/2 ())`},
		{input: "(car (cons 1 2))", want: "1"},
		{input: "(cdr (cons 1 2))", want: "2"},
		{input: "(cons 1 '(2 3))", want: "(1 2 3)"},
		{input: "(list 1 (list 2 3) 4)", want: "(1 (2 3) 4)"},
		{input: "(list)", want: "()"},
		{input: "(eq? 'a 'a)", want: "#t"},
		{input: "(eq? (cons 1 2) (cons 1 2))", want: "#f"},
		{input: "(eq? '() '())", want: "#t"},
		{input: "(number? 1/2)", want: "#f"},
		{input: "(number? 'a)", want: "#f"},
		{input: "(boolean? #f)", want: "#t"},
		{input: "(null? '())", want: "#t"},
		{input: "(pair? '())", want: "#f"},
		{input: "(symbol? 'a)", want: "#t"},
		{input: "(string? \"a\")", want: "#t"},
		{input: "(procedure? car)", want: "#t"},
		{input: "(procedure? (lambda (x) x))", want: "#t"},
		{input: "(list? '(1 2))", want: "#t"},
		{input: "(list? (cons 1 2))", want: "#f"},
		{input: "car", want: "#<procedure>"},
		{input: "((lambda (x y) (+ x y)) 1 2)", want: "3"},
		{input: "((lambda () 1))", want: "1"},
		{input: "(define x 1)", want: ""},
		{input: "(define x 1) (let ((x 2) (y x)) y)", want: "1"},
		{input: "(let ((x 1)) (let ((x 2)) x))", want: "2"},
		{input: "(define x 1) (set! x 2) x", want: "2"},
		{
			input: `(letrec ((ev (lambda (n) (if (= n 0) #t (od (- n 1)))))
			                 (od (lambda (n) (if (= n 0) #f (ev (- n 1))))))
			          (ev 10))`,
			want: "#t",
		},
		{input: "(letrec ((f (lambda (n) (if (= n 0) 1 (* n (f (- n 1))))))) (f 5))", want: "120"},
		{input: "(define (f) (g)) (define (g) 42) (f)", want: "42"},
		{input: "(define k 1) (define (h) k) (define k 2) (h)", want: "2"},
		{input: "(define (h) k) (define k 1) (h) (define k 2) (h)", want: "2"},
		{input: "(define p (cons 1 2)) (define q p) (set-car! q 10) (car p)", want: "10"},
		{input: "(define p (cons 1 2)) (set-cdr! p '(3)) p", want: "(1 3)"},
		{input: "(define p (cons 1 2)) (eq? p p)", want: "#t"},
		{input: "(define c (list 1 2)) (set-cdr! (cdr c) c) (list? c)", want: "#f"},
		{input: "(define c (list 1 2)) (set-cdr! (cdr c) c) c", want: "(1 2 ...)"},
		{input: "(define (app f a b) (f a b)) (app + 1 2)", want: "3"},
		{input: "(define (app f a b) (f a b)) (app cons 1 2)", want: "(1 . 2)"},
		{input: "(define (app f a) (f a)) (app car '(5 6))", want: "5"},
		{input: "(define (f) (exit)) (f) 1", want: ""},
		{input: "(define (f list) (list '(7 8))) (f car)", want: "((7 8))"},
		{input: "(define (f car) (car '(1 2))) (f cdr)", want: "1"},
		{input: "(let ((car cdr)) (car '(1 2)))", want: "1"},
		{input: "(letrec ((car cdr)) (car '(1 2)))", want: "1"},
		{input: "(define x 10) (define (mk x) (lambda () x)) ((mk 5))", want: "10"},
		{input: "(define (mk y) (lambda () y)) (define y 10) ((mk 5))", want: "10"},
		{
			input: `(define (make-counter)
			          (let ((n 0))
			            (lambda () (set! n (+ n 1)) n)))
			        (define c (make-counter))
			        (c) (c) (c)`,
			want: "3",
		},
	}
	for _, test := range tests {
		got, err := run(NewEnv(nil), test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestEvalError(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{input: "y", kind: ErrUnbound},
		{input: "(f 1)", kind: ErrUnbound},
		{input: "(set! zz 1)", kind: ErrUnbound},
		{input: "(define (f) (g)) (define (g) (h)) (f)", kind: ErrUnbound},
		{input: "(car 1)", kind: ErrType},
		{input: "(cdr '())", kind: ErrType},
		{input: "(set-car! 1 2)", kind: ErrType},
		{input: "(+ 1 'a)", kind: ErrType},
		{input: "(< 1 #t)", kind: ErrType},
		{input: "(1 2)", kind: ErrType},
		{input: `("f")`, kind: ErrType},
		{input: "((lambda (x) x))", kind: ErrArity},
		{input: "((lambda (x) x) 1 2)", kind: ErrArity},
		{input: "(define (app f) (f)) (app car)", kind: ErrArity},
		{input: "(define (app f) (f)) (app <)", kind: ErrArity},
		{input: "(/ 1 0)", kind: ErrDivByZero},
		{input: "(/ 1/2 0/5)", kind: ErrDivByZero},
		{input: "(/ 1 2 0)", kind: ErrDivByZero},
		{input: "(/ 0)", kind: ErrDivByZero},
		{input: "(modulo 1 0)", kind: ErrDivByZero},
		{input: "(+ 2147483647 1)", kind: ErrOverflow},
		{input: "(* 65536 65536)", kind: ErrOverflow},
		{input: "(expt 2 -1)", kind: ErrDomain},
		{input: "'(1 . 2 3)", kind: ErrSyntax},
		{input: "'(. 1)", kind: ErrSyntax},
		{input: "(let ((x 1) (y x)) y)", kind: ErrUnbound},
		{input: "(expt 0 0)", kind: ErrDomain},
		{input: "(let ((1a 2)) 1)", kind: ErrInvalidName},
		{input: "(define 1a 2)", kind: ErrInvalidName},
		{input: "a#b", kind: ErrInvalidName},
		{input: "+1e3", kind: ErrInvalidName},
		{input: "(car a#b)", kind: ErrInvalidName},
		{input: "((lambda (if) (if 1 2)) cons)", kind: ErrArity},
	}
	for _, test := range tests {
		_, err := run(NewEnv(nil), test.input)
		if err == nil {
			t.Errorf("%q: want error", test.input)
			continue
		}
		if !IsKind(err, test.kind) {
			t.Errorf("%q: want %v error but got %v", test.input, test.kind, err)
		}
	}
}

func TestUnboundName(t *testing.T) {
	_, err := run(NewEnv(nil), "(define (f) (+ 1 missing)) (f)")
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("want *Error but got %v", err)
	}
	if e.Kind != ErrUnbound || e.Name != "missing" {
		t.Errorf("want unbound missing but got %v %q", e.Kind, e.Name)
	}
	if got, want := e.Error(), "Undefined variable: missing"; got != want {
		t.Errorf("want %q but got %q", want, got)
	}
}

func TestDefineFailureLeavesPlaceholder(t *testing.T) {
	env := NewEnv(nil)
	if _, err := run(env, "(define x (car 1))"); err == nil {
		t.Fatal("want error")
	}
	if _, err := run(env, "x"); !IsKind(err, ErrUnbound) {
		t.Errorf("want unbound error but got %v", err)
	}
	got, err := run(env, "(define x 5) x")
	if err != nil {
		t.Fatal(err)
	}
	if got != "5" {
		t.Errorf("want 5 but got %q", got)
	}
}

func TestDisplay(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnv(nil)
	env.SetOutput(&buf)
	v, err := env.EvalString(`(display "hi") (display 1/2) (display '(1 "a")) (display #f)`)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := v.(Void); !ok {
		t.Errorf("want void but got %#v", v)
	}
	if got, want := buf.String(), `hi1/2(1 "a")#f`; got != want {
		t.Errorf("want %q but got %q", want, got)
	}
}

func TestExitStops(t *testing.T) {
	var buf bytes.Buffer
	env := NewEnv(nil)
	env.SetOutput(&buf)
	v, err := env.EvalString(`(display 1) (exit) (display 2)`)
	if err != nil {
		t.Fatal(err)
	}
	if !IsTerminate(v) {
		t.Errorf("want terminate but got %#v", v)
	}
	if got := buf.String(); got != "1" {
		t.Errorf("want %q but got %q", "1", got)
	}
}

func TestEnvPersists(t *testing.T) {
	env := NewEnv(nil)
	for _, src := range []string{"(define x 10)", "(define (f y) (+ x y))", "(set! x 20)"} {
		if _, err := run(env, src); err != nil {
			t.Fatalf("%q: %v", src, err)
		}
	}
	got, err := run(env, "(f 1)")
	if err != nil {
		t.Fatal(err)
	}
	if got != "21" {
		t.Errorf("want 21 but got %q", got)
	}
}

func TestDerivedEnv(t *testing.T) {
	parent := NewEnv(nil)
	env := NewEnv(parent)
	got, err := run(env, "(define (f) (g)) (define (g) 42) (f)")
	if err != nil {
		t.Fatal(err)
	}
	if got != "42" {
		t.Errorf("want 42 but got %q", got)
	}
	if got, err = run(parent, "(g)"); err != nil || got != "42" {
		t.Errorf("want 42 from parent but got %q, %v", got, err)
	}
	if _, err := run(parent, "(define h 7)"); err != nil {
		t.Fatal(err)
	}
	if got, err = run(env, "h"); err != nil || got != "7" {
		t.Errorf("want 7 from derived but got %q, %v", got, err)
	}

	var buf bytes.Buffer
	nested := NewEnv(NewEnv(nil))
	nested.SetOutput(&buf)
	if _, err := nested.EvalString("(define (f) (g)) (define (g) (display 42)) (f)"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "42" {
		t.Errorf("want 42 but got %q", got)
	}
}

func TestPrelude(t *testing.T) {
	env := NewEnv(nil)
	if err := LoadLib(env); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		input string
		want  string
	}{
		{input: "(length '(1 2 3))", want: "3"},
		{input: "(length '())", want: "0"},
		{input: "(append '(1) '(2 3))", want: "(1 2 3)"},
		{input: "(reverse '(1 2 3))", want: "(3 2 1)"},
		{input: "(map (lambda (x) (* x x)) '(1 2 3))", want: "(1 4 9)"},
		{input: "(filter odd? '(1 2 3 4 5))", want: "(1 3 5)"},
		{input: "(fold-left + 0 '(1 2 3))", want: "6"},
		{input: "(fold-left cons '() '(1 2))", want: "((() . 1) . 2)"},
		{input: "(list-ref '(a b c) 1)", want: "b"},
		{input: "(cadr '(1 2 3))", want: "2"},
		{input: "(caddr '(1 2 3))", want: "3"},
		{input: "(abs -5)", want: "5"},
		{input: "(abs 1/2)", want: "1/2"},
		{input: "(zero? 0)", want: "#t"},
		{input: "(positive? -1)", want: "#f"},
		{input: "(negative? -1/2)", want: "#t"},
		{input: "(even? 4)", want: "#t"},
		{input: "(odd? 4)", want: "#f"},
	}
	for _, test := range tests {
		got, err := run(env, test.input)
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}
