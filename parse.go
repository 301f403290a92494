package goscheme

// Parse converts a syntax tree into an expression tree. env decides whether
// the head of a list names a variable in scope, which takes precedence over
// primitives and reserved words. A nil env is an empty environment.
func Parse(stx Syntax, env *Env) (Expr, error) {
	var frame *Frame
	if env != nil {
		frame = env.frame
	}
	return parse(stx, frame)
}

func parse(stx Syntax, frame *Frame) (Expr, error) {
	switch s := stx.(type) {
	case Number:
		return &IntegerLit{Val: Integer(s)}, nil
	case RationalSyntax:
		if s.Den == 0 {
			return nil, errorf(ErrZeroDenominator, "Denominator cannot be zero")
		}
		return &RationalLit{Num: s.Num, Den: s.Den}, nil
	case SymbolSyntax:
		return &Var{Name: string(s)}, nil
	case StringSyntax:
		return &StringLit{Val: string(s)}, nil
	case TrueSyntax:
		return &BooleanLit{Val: true}, nil
	case FalseSyntax:
		return &BooleanLit{Val: false}, nil
	case List:
		return parseList(s, frame)
	}
	return nil, errorf(ErrInternal, "Unimplemented parse method for %T", stx)
}

func parseList(l List, frame *Frame) (Expr, error) {
	if len(l) == 0 {
		return &Quote{Datum: List{}}, nil
	}

	head, ok := l[0].(SymbolSyntax)
	if !ok {
		return parseApply(l, frame)
	}
	op := string(head)
	if _, ok := frame.Lookup(op); ok {
		return parseApply(l, frame)
	}
	if info, ok := primitives[op]; ok {
		args, err := parseAll(l[1:], frame)
		if err != nil {
			return nil, err
		}
		return parsePrimitive(info, args)
	}
	if kw, ok := reserved[op]; ok {
		return parseSpecial(kw, op, l, frame)
	}
	// A name not known yet, usually a later top-level define.
	return parseApply(l, frame)
}

func parseAll(stxs []Syntax, frame *Frame) ([]Expr, error) {
	es := make([]Expr, 0, len(stxs))
	for _, stx := range stxs {
		e, err := parse(stx, frame)
		if err != nil {
			return nil, err
		}
		es = append(es, e)
	}
	return es, nil
}

func parseApply(l List, frame *Frame) (Expr, error) {
	fn, err := parse(l[0], frame)
	if err != nil {
		return nil, err
	}
	args, err := parseAll(l[1:], frame)
	if err != nil {
		return nil, err
	}
	return &Apply{Fn: fn, Args: args}, nil
}

func parsePrimitive(info OpInfo, args []Expr) (Expr, error) {
	switch info.ar {
	case ArityArith, ArityCompare:
		if len(args) < info.min {
			return nil, errArity(info.name)
		}
		if len(args) == 2 {
			return &Binary{Op: info.op, X: args[0], Y: args[1]}, nil
		}
		return &Variadic{Op: info.op, Args: args}, nil
	case ArityOne:
		if len(args) != 1 {
			return nil, errArity(info.name)
		}
		return &Unary{Op: info.op, X: args[0]}, nil
	case ArityTwo:
		if len(args) != 2 {
			return nil, errArity(info.name)
		}
		return &Binary{Op: info.op, X: args[0], Y: args[1]}, nil
	case ArityAny:
		return &Variadic{Op: info.op, Args: args}, nil
	case ArityNone:
		if len(args) != 0 {
			return nil, errArity(info.name)
		}
		switch info.op {
		case OpVoid:
			return &VoidLit{}, nil
		case OpExit:
			return &ExitLit{}, nil
		}
	}
	return nil, errorf(ErrInternal, "Unknown primitive: %s", info.name)
}

func parseSpecial(kw Keyword, name string, l List, frame *Frame) (Expr, error) {
	switch kw {
	case KwQuote:
		if len(l) != 2 {
			return nil, errArity("quote")
		}
		return &Quote{Datum: l[1]}, nil
	case KwBegin:
		body, err := parseAll(l[1:], frame)
		if err != nil {
			return nil, err
		}
		return &Begin{Body: body}, nil
	case KwIf:
		if len(l) != 4 {
			return nil, errArity("if")
		}
		es, err := parseAll(l[1:], frame)
		if err != nil {
			return nil, err
		}
		return &If{Cond: es[0], Then: es[1], Else: es[2]}, nil
	case KwCond:
		return parseCond(l, frame)
	case KwLambda:
		if len(l) < 3 {
			return nil, errArity("lambda")
		}
		params, err := parseParams(l[1], "lambda")
		if err != nil {
			return nil, err
		}
		body, err := parseBody(l[2:], frame)
		if err != nil {
			return nil, err
		}
		return &Lambda{Params: params, Body: body}, nil
	case KwDefine:
		return parseDefine(l, frame)
	case KwLet, KwLetrec:
		if len(l) < 3 {
			return nil, errArity(name)
		}
		binds, err := parseBindings(l[1], kw, frame)
		if err != nil {
			return nil, err
		}
		body, err := parseBody(l[2:], frame)
		if err != nil {
			return nil, err
		}
		if kw == KwLet {
			return &Let{Bindings: binds, Body: body}, nil
		}
		return &Letrec{Bindings: binds, Body: body}, nil
	case KwSet:
		if len(l) != 3 {
			return nil, errArity("set!")
		}
		target, ok := l[1].(SymbolSyntax)
		if !ok {
			return nil, errorf(ErrSyntax, "Wrong type of variable in set!")
		}
		x, err := parse(l[2], frame)
		if err != nil {
			return nil, err
		}
		return &Set{Name: string(target), X: x}, nil
	}
	return nil, errorf(ErrInternal, "Unknown reserved word: %s", name)
}

func parseBody(stxs []Syntax, frame *Frame) (Expr, error) {
	body, err := parseAll(stxs, frame)
	if err != nil {
		return nil, err
	}
	return &Begin{Body: body}, nil
}

func parseParams(stx Syntax, form string) ([]string, error) {
	l, ok := stx.(List)
	if !ok {
		return nil, errorf(ErrSyntax, "Wrong type of parameter list in %s", form)
	}
	params := make([]string, 0, len(l))
	for _, p := range l {
		s, ok := p.(SymbolSyntax)
		if !ok {
			return nil, errorf(ErrSyntax, "Wrong type of parameter in %s: %v", form, p)
		}
		params = append(params, string(s))
	}
	return params, nil
}

func parseCond(l List, frame *Frame) (Expr, error) {
	if len(l) < 2 {
		return nil, errArity("cond")
	}
	clauses := make([][]Expr, 0, len(l)-1)
	for _, stx := range l[1:] {
		clause, ok := stx.(List)
		if !ok || len(clause) == 0 {
			return nil, errorf(ErrSyntax, "Wrong type of clause in cond")
		}
		if isSymbol(clause[0], "else") {
			if len(clause) == 1 {
				return nil, errorf(ErrSyntax, "No expressions in else clause")
			}
			body, err := parseAll(clause[1:], frame)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, append([]Expr{&BooleanLit{Val: true}}, body...))
			continue
		}
		es, err := parseAll(clause, frame)
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, es)
	}
	return &Cond{Clauses: clauses}, nil
}

func checkDefinable(name string) error {
	if IsPrimitive(name) || IsReserved(name) {
		return errInvalidName(name)
	}
	return nil
}

func parseDefine(l List, frame *Frame) (Expr, error) {
	if len(l) < 3 {
		return nil, errArity("define")
	}
	switch target := l[1].(type) {
	case SymbolSyntax:
		if len(l) != 3 {
			return nil, errArity("variable define")
		}
		name := string(target)
		if err := checkDefinable(name); err != nil {
			return nil, err
		}
		x, err := parse(l[2], frame)
		if err != nil {
			return nil, err
		}
		return &Define{Name: name, X: x}, nil
	case List:
		// (define (name params...) body...)
		if len(target) == 0 {
			return nil, errorf(ErrSyntax, "Invalid function definition in define")
		}
		fname, ok := target[0].(SymbolSyntax)
		if !ok {
			return nil, errorf(ErrSyntax, "Invalid function name in define")
		}
		name := string(fname)
		if err := checkDefinable(name); err != nil {
			return nil, err
		}
		params, err := parseParams(target[1:], "define")
		if err != nil {
			return nil, err
		}
		body, err := parseBody(l[2:], frame)
		if err != nil {
			return nil, err
		}
		return &Define{Name: name, X: &Lambda{Params: params, Body: body}}, nil
	}
	return nil, errorf(ErrSyntax, "Wrong type of variable in define")
}

func parseBindings(stx Syntax, kw Keyword, frame *Frame) ([]Binding, error) {
	form := "let"
	if kw == KwLetrec {
		form = "letrec"
	}
	l, ok := stx.(List)
	if !ok {
		return nil, errorf(ErrSyntax, "Wrong type of binding list in %s", form)
	}
	binds := make([]Binding, 0, len(l))
	for _, b := range l {
		pair, ok := b.(List)
		if !ok || len(pair) != 2 {
			return nil, errorf(ErrSyntax, "Wrong type of binding pair in %s", form)
		}
		name, ok := pair[0].(SymbolSyntax)
		if !ok {
			return nil, errorf(ErrSyntax, "Wrong type of variable in %s binding", form)
		}
		x, err := parse(pair[1], frame)
		if err != nil {
			return nil, err
		}
		binds = append(binds, Binding{Name: string(name), X: x})
	}
	return binds, nil
}
