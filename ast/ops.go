package ast

import "sort"

//go:generate sh -c "cd ../tool && go run . ../ast/nodes.adt ../ast/nodes_gen.go ast"

type UnaryOp int

const (
	Forward UnaryOp = iota
	Back
	Left
	Right
	SetPenColor
	Turn
	SetHeading
	SetX
	SetY
)

var unaryKeywords = map[UnaryOp]string{
	Forward:     "FORWARD",
	Back:        "BACK",
	Left:        "LEFT",
	Right:       "RIGHT",
	SetPenColor: "SETPENCOLOR",
	Turn:        "TURN",
	SetHeading:  "SETHEADING",
	SetX:        "SETX",
	SetY:        "SETY",
}

func (o UnaryOp) String() string {
	return unaryKeywords[o]
}

// BinaryKind selects the sub-parser a binary operation needs.
type BinaryKind int

const (
	// Plain operations take two operand expressions.
	Plain BinaryKind = iota
	// Conditional operations take a condition and a block.
	Conditional
	// Procedure is the TO ... END definition.
	Procedure
)

type BinaryOp int

const (
	Make BinaryOp = iota
	AddAssign
	If
	While
	Add
	Sub
	Mul
	Div
	Eq
	Ne
	Gt
	Lt
	And
	Or
	Func
)

var binaryKeywords = map[BinaryOp]string{
	Make:      "MAKE",
	AddAssign: "ADDASSIGN",
	If:        "IF",
	While:     "WHILE",
	Add:       "+",
	Sub:       "-",
	Mul:       "*",
	Div:       "/",
	Eq:        "EQ",
	Ne:        "NE",
	Gt:        "GT",
	Lt:        "LT",
	And:       "AND",
	Or:        "OR",
	Func:      "TO",
}

func (o BinaryOp) String() string {
	return binaryKeywords[o]
}

func (o BinaryOp) Kind() BinaryKind {
	switch o {
	case If, While:
		return Conditional
	case Func:
		return Procedure
	}
	return Plain
}

var (
	unaryByKeyword  = map[string]UnaryOp{}
	binaryByKeyword = map[string]BinaryOp{}
)

func init() {
	for op, kw := range unaryKeywords {
		unaryByKeyword[kw] = op
	}
	for op, kw := range binaryKeywords {
		binaryByKeyword[kw] = op
	}
}

func LookupUnary(keyword string) (UnaryOp, bool) {
	op, ok := unaryByKeyword[keyword]
	return op, ok
}

// LookupBinary resolves a keyword to its binary operation. TO is included
// and reports the Procedure kind.
func LookupBinary(keyword string) (BinaryOp, bool) {
	op, ok := binaryByKeyword[keyword]
	return op, ok
}

var queryKeywords = map[string]Node{
	"XCOR":    XCor{},
	"YCOR":    YCor{},
	"HEADING": Heading{},
	"COLOR":   Color{},
	"PENUP":   PenUp{},
	"PENDOWN": PenDown{},
}

// LookupQuery resolves the zero-argument keywords.
func LookupQuery(keyword string) (Node, bool) {
	n, ok := queryKeywords[keyword]
	return n, ok
}

// Program is a parsed source file.
type Program struct {
	Body       Body
	Procedures map[string]BinaryExpr
}

func (p Program) ProcedureNames() []string {
	names := make([]string, 0, len(p.Procedures))
	for name := range p.Procedures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
