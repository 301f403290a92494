package goscheme

// Op identifies a primitive operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpModulo
	OpExpt
	OpLt
	OpLe
	OpEq
	OpGe
	OpGt
	OpCons
	OpCar
	OpCdr
	OpList
	OpSetCar
	OpSetCdr
	OpNot
	OpAnd
	OpOr
	OpEqQ
	OpBooleanQ
	OpNumberQ
	OpNullQ
	OpPairQ
	OpProcedureQ
	OpSymbolQ
	OpListQ
	OpStringQ
	OpDisplay
	OpVoid
	OpExit
)

// Arity tells how a primitive call is shaped by the parser.
type Arity int

const (
	// ArityArith: Binary node for two arguments, Variadic otherwise.
	ArityArith Arity = iota
	// ArityCompare: like ArityArith but at least two arguments.
	ArityCompare
	ArityNone
	ArityOne
	ArityTwo
	// ArityAny: always Variadic.
	ArityAny
)

// OpInfo describes a primitive operator.
type OpInfo struct {
	op   Op
	name string
	ar   Arity
	min  int
}

// Keyword identifies a reserved word.
type Keyword int

const (
	KwQuote Keyword = iota
	KwBegin
	KwIf
	KwCond
	KwLambda
	KwDefine
	KwLet
	KwLetrec
	KwSet
)

var (
	primitives map[string]OpInfo
	opInfos    map[Op]OpInfo
	reserved   map[string]Keyword
)

func makeOp(op Op, ar Arity, min int) OpInfo {
	return OpInfo{op: op, ar: ar, min: min}
}

func init() {
	primitives = make(map[string]OpInfo)
	primitives["+"] = makeOp(OpAdd, ArityArith, 0)
	primitives["-"] = makeOp(OpSub, ArityArith, 1)
	primitives["*"] = makeOp(OpMul, ArityArith, 0)
	primitives["/"] = makeOp(OpDiv, ArityArith, 1)
	primitives["modulo"] = makeOp(OpModulo, ArityTwo, 2)
	primitives["expt"] = makeOp(OpExpt, ArityTwo, 2)
	primitives["<"] = makeOp(OpLt, ArityCompare, 2)
	primitives["<="] = makeOp(OpLe, ArityCompare, 2)
	primitives["="] = makeOp(OpEq, ArityCompare, 2)
	primitives[">="] = makeOp(OpGe, ArityCompare, 2)
	primitives[">"] = makeOp(OpGt, ArityCompare, 2)
	primitives["cons"] = makeOp(OpCons, ArityTwo, 2)
	primitives["car"] = makeOp(OpCar, ArityOne, 1)
	primitives["cdr"] = makeOp(OpCdr, ArityOne, 1)
	primitives["list"] = makeOp(OpList, ArityAny, 0)
	primitives["set-car!"] = makeOp(OpSetCar, ArityTwo, 2)
	primitives["set-cdr!"] = makeOp(OpSetCdr, ArityTwo, 2)
	primitives["not"] = makeOp(OpNot, ArityOne, 1)
	primitives["and"] = makeOp(OpAnd, ArityAny, 0)
	primitives["or"] = makeOp(OpOr, ArityAny, 0)
	primitives["eq?"] = makeOp(OpEqQ, ArityTwo, 2)
	primitives["boolean?"] = makeOp(OpBooleanQ, ArityOne, 1)
	primitives["number?"] = makeOp(OpNumberQ, ArityOne, 1)
	primitives["null?"] = makeOp(OpNullQ, ArityOne, 1)
	primitives["pair?"] = makeOp(OpPairQ, ArityOne, 1)
	primitives["procedure?"] = makeOp(OpProcedureQ, ArityOne, 1)
	primitives["symbol?"] = makeOp(OpSymbolQ, ArityOne, 1)
	primitives["list?"] = makeOp(OpListQ, ArityOne, 1)
	primitives["string?"] = makeOp(OpStringQ, ArityOne, 1)
	primitives["display"] = makeOp(OpDisplay, ArityOne, 1)
	primitives["void"] = makeOp(OpVoid, ArityNone, 0)
	primitives["exit"] = makeOp(OpExit, ArityNone, 0)

	opInfos = make(map[Op]OpInfo)
	for name, info := range primitives {
		info.name = name
		primitives[name] = info
		opInfos[info.op] = info
	}

	reserved = map[string]Keyword{
		"quote":  KwQuote,
		"begin":  KwBegin,
		"if":     KwIf,
		"cond":   KwCond,
		"lambda": KwLambda,
		"define": KwDefine,
		"let":    KwLet,
		"letrec": KwLetrec,
		"set!":   KwSet,
	}
}

func (op Op) String() string {
	if info, ok := opInfos[op]; ok {
		return info.name
	}
	return "unknown primitive"
}

// IsPrimitive reports whether name is a primitive operator.
func IsPrimitive(name string) bool {
	_, ok := primitives[name]
	return ok
}

// IsReserved reports whether name is a reserved word.
func IsReserved(name string) bool {
	_, ok := reserved[name]
	return ok
}
