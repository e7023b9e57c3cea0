// Package script implements the Script expression/statement tree spec §3
// describes: the output representation every lowering pass in this
// repository (Importer consumers, Emitter, Rewriter) builds and
// transforms. The design mirrors the teacher's internal/ast package —
// a Node interface with TokenLiteral-free String()/Kind() methods
// implemented by one struct per node shape — generalized per design note
// §9 into an explicit Kind() on every node so a switch over Kind can do
// exhaustive tagged-variant dispatch without a type switch at every call
// site (the Rewriter's section splitter and the Emitter's lift recognizer
// both need this).
package script

import "github.com/cwbudde/scriptgen/internal/model"

// ExprKind tags every Expression implementation.
type ExprKind int

const (
	KindIdentifier ExprKind = iota
	KindLiteralNumber
	KindLiteralString
	KindLiteralBool
	KindLiteralNull
	KindLiteralRegex
	KindMember
	KindIndex
	KindInvocation
	KindNew
	KindBinary
	KindUnary
	KindAssignment
	KindArrayLiteral
	KindObjectLiteral
	KindFunctionExpr
	KindConditional
	KindComma
	KindThis
	KindTypeReference
)

// Expression is any script node that produces a value.
type Expression interface {
	Kind() ExprKind
	String() string
}

// Identifier is a bare script-level name.
type Identifier struct{ Name string }

func (e *Identifier) Kind() ExprKind { return KindIdentifier }
func (e *Identifier) String() string { return e.Name }

// Ident is a convenience constructor.
func Ident(name string) *Identifier { return &Identifier{Name: name} }

// LiteralKind distinguishes the literal forms spec §3 names.
type LiteralKind int

const (
	LitNumber LiteralKind = iota
	LitString
	LitBool
	LitNull
	LitRegex
)

// Literal is one of number/string/boolean/null/regex.
type Literal struct {
	LitKind LiteralKind
	Number  float64
	Text    string // string value, or the regex source for LitRegex
	Flags   string // regex flags, only meaningful for LitRegex
	Bool    bool
}

func (e *Literal) Kind() ExprKind {
	switch e.LitKind {
	case LitString:
		return KindLiteralString
	case LitBool:
		return KindLiteralBool
	case LitNull:
		return KindLiteralNull
	case LitRegex:
		return KindLiteralRegex
	default:
		return KindLiteralNumber
	}
}

func (e *Literal) String() string {
	switch e.LitKind {
	case LitString:
		return quoteString(e.Text)
	case LitBool:
		if e.Bool {
			return "true"
		}
		return "false"
	case LitNull:
		return "null"
	case LitRegex:
		return "/" + e.Text + "/" + e.Flags
	default:
		return formatNumber(e.Number)
	}
}

// Num, Str, Bool, Null, Regex are convenience literal constructors.
func Num(n float64) *Literal       { return &Literal{LitKind: LitNumber, Number: n} }
func Str(s string) *Literal        { return &Literal{LitKind: LitString, Text: s} }
func Bool(b bool) *Literal         { return &Literal{LitKind: LitBool, Bool: b} }
func Null() *Literal               { return &Literal{LitKind: LitNull} }
func Regex(src, flags string) *Literal { return &Literal{LitKind: LitRegex, Text: src, Flags: flags} }

// Member is a `.`-access expression: Target.Name.
type Member struct {
	Target Expression
	Name   string
}

func (e *Member) Kind() ExprKind { return KindMember }
func (e *Member) String() string { return e.Target.String() + "." + e.Name }

// Dot builds a Member access, chainable: Dot(Dot(Ident("a"), "b"), "c").
func Dot(target Expression, name string) *Member { return &Member{Target: target, Name: name} }

// Index is a `[]`-access expression.
type Index struct {
	Target Expression
	Key    Expression
}

func (e *Index) Kind() ExprKind { return KindIndex }
func (e *Index) String() string { return e.Target.String() + "[" + e.Key.String() + "]" }

// Invocation is a function/method call.
type Invocation struct {
	Callee    Expression
	Arguments []Expression
}

func (e *Invocation) Kind() ExprKind { return KindInvocation }
func (e *Invocation) String() string { return e.Callee.String() + "(" + joinExpr(e.Arguments) + ")" }

// Call is a convenience Invocation constructor.
func Call(callee Expression, args ...Expression) *Invocation {
	return &Invocation{Callee: callee, Arguments: args}
}

// New is a `new Callee(args)` construction.
type New struct {
	Callee    Expression
	Arguments []Expression
}

func (e *New) Kind() ExprKind { return KindNew }
func (e *New) String() string { return "new " + e.Callee.String() + "(" + joinExpr(e.Arguments) + ")" }

// BinaryOp enumerates the runtime's binary operators this tree can carry.
type BinaryOp string

// Binary is a binary expression.
type Binary struct {
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (e *Binary) Kind() ExprKind { return KindBinary }
func (e *Binary) String() string {
	return "(" + e.Left.String() + " " + string(e.Op) + " " + e.Right.String() + ")"
}

// Bin is a convenience Binary constructor.
func Bin(op BinaryOp, left, right Expression) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

// UnaryOp enumerates unary operators; IsPrefix distinguishes `!x` from `x++`.
type UnaryOp string

// Unary is a unary expression.
type Unary struct {
	Op       UnaryOp
	Operand  Expression
	IsPrefix bool
}

func (e *Unary) Kind() ExprKind { return KindUnary }
func (e *Unary) String() string {
	if e.IsPrefix {
		return string(e.Op) + e.Operand.String()
	}
	return e.Operand.String() + string(e.Op)
}

// Un is a convenience prefix-Unary constructor.
func Un(op UnaryOp, operand Expression) *Unary {
	return &Unary{Op: op, Operand: operand, IsPrefix: true}
}

// Assignment is `Target Op= Value`; Op is "" for plain `=`.
type Assignment struct {
	Target Expression
	Op     string
	Value  Expression
}

func (e *Assignment) Kind() ExprKind { return KindAssignment }
func (e *Assignment) String() string {
	return e.Target.String() + " " + e.Op + "= " + e.Value.String()
}

// Assign is a convenience plain-assignment constructor.
func Assign(target, value Expression) *Assignment {
	return &Assignment{Target: target, Op: "", Value: value}
}

// ArrayLiteral is `[elements...]`.
type ArrayLiteral struct{ Elements []Expression }

func (e *ArrayLiteral) Kind() ExprKind { return KindArrayLiteral }
func (e *ArrayLiteral) String() string { return "[" + joinExpr(e.Elements) + "]" }

// ObjectProperty is one key/value pair of an ObjectLiteral.
type ObjectProperty struct {
	Key   string
	Value Expression
}

// ObjectLiteral is `{key: value, ...}`.
type ObjectLiteral struct{ Properties []ObjectProperty }

func (e *ObjectLiteral) Kind() ExprKind { return KindObjectLiteral }
func (e *ObjectLiteral) String() string {
	out := "{"
	for i, p := range e.Properties {
		if i > 0 {
			out += ", "
		}
		out += p.Key + ": " + p.Value.String()
	}
	return out + "}"
}

// FunctionExpr is an (optionally named) function expression. Its Body is
// a *Block from the statement tree (script.Block); kept as `any` here to
// avoid an import cycle between the expression and statement files living
// in the same package is unnecessary — see stmt.go where Block is
// defined in this same package, so FunctionExpr.Body is typed directly.
type FunctionExpr struct {
	Name       string // "" for an anonymous function expression
	Parameters []string
	Body       *Block
}

func (e *FunctionExpr) Kind() ExprKind { return KindFunctionExpr }
func (e *FunctionExpr) String() string {
	name := e.Name
	return "function " + name + "(" + joinStrings(e.Parameters) + ") { ... }"
}

// Conditional is `Test ? Consequent : Alternate`.
type Conditional struct {
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (e *Conditional) Kind() ExprKind { return KindConditional }
func (e *Conditional) String() string {
	return e.Test.String() + " ? " + e.Consequent.String() + " : " + e.Alternate.String()
}

// Comma is the sequencing operator `(a, b, c)`, evaluating to the last.
type Comma struct{ Expressions []Expression }

func (e *Comma) Kind() ExprKind { return KindComma }
func (e *Comma) String() string { return "(" + joinExpr(e.Expressions) + ")" }

// This is the `this` keyword.
type This struct{}

func (e *This) Kind() ExprKind { return KindThis }
func (e *This) String() string { return "this" }

// TypeReference carries a pointer to a source-language type definition
// instead of a script identifier; spec §3 calls out that its resolution
// to a dotted name is deferred to serialization time "so the importer
// can rename a type after the expression referring to it has been
// built." Resolve takes its name resolver from whatever owns
// serialization (normally the importer's ScriptNameOf).
type TypeReference struct {
	Type *model.TypeDef
}

func (e *TypeReference) Kind() ExprKind { return KindTypeReference }

// String renders a placeholder; callers that need the real dotted name
// must use Resolve, since the whole point of this node is that its name
// isn't known until the type's semantic record has been decided.
func (e *TypeReference) String() string {
	if e.Type == nil {
		return "<type>"
	}
	return "<type:" + e.Type.Name + ">"
}

// Resolve produces the actual dotted script name using the supplied
// resolver function (typically importer.Importer.ScriptNameOf).
func (e *TypeReference) Resolve(resolve func(*model.TypeDef) string) string {
	return resolve(e.Type)
}

func joinExpr(exprs []Expression) string {
	out := ""
	for i, e := range exprs {
		if i > 0 {
			out += ", "
		}
		out += e.String()
	}
	return out
}

func joinStrings(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
