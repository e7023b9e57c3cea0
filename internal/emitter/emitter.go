// Package emitter implements the Runtime-Call Emitter (spec §4.2): a
// stateless builder that turns a handful of intrinsic operations — type
// tests, downcasts, nullable lifting, delegate binding, array
// allocation — into script.Expression trees calling a small fixed
// runtime support library.
//
// It is grounded on the teacher's internal/bytecode instruction
// builders: small pure functions, one per opcode family, each returning
// a freshly built node rather than mutating shared state.
package emitter

import (
	"github.com/cwbudde/scriptgen/internal/diag"
	"github.com/cwbudde/scriptgen/internal/model"
	"github.com/cwbudde/scriptgen/internal/script"
	"github.com/cwbudde/scriptgen/internal/source"
)

const (
	DiagUpcastFromCharacter = 4001
)

// Config carries the two flags spec §4.2 reads to elide generated
// checks: OmitDowncastChecks skips the runtime type test a downcast
// would otherwise emit, OmitNullableChecks skips the three-valued
// lifting helpers in favor of raw operators.
type Config struct {
	OmitDowncastChecks bool
	OmitNullableChecks bool
}

// Emitter is the Runtime-Call Emitter. It holds no mutable state beyond
// its configuration and a reference to the Importer it consults for
// script names; every method builds its result from its arguments alone,
// and only Upcast has a side effect (a warning sent to the reporter).
type Emitter struct {
	config   Config
	importer ScriptNamer
	reporter *diag.Reporter
}

// ScriptNamer is the subset of *importer.Importer the emitter depends
// on, named narrowly so emitter tests can supply a fake without
// depending on the importer package.
type ScriptNamer interface {
	ScriptNameOf(t *model.TypeDef) string
}

// New builds an Emitter.
func New(config Config, namer ScriptNamer, reporter *diag.Reporter) *Emitter {
	return &Emitter{config: config, importer: namer, reporter: reporter}
}

func (e *Emitter) typeRef(t *model.TypeDef) script.Expression {
	return &script.TypeReference{Type: t}
}

// TypeOf builds the runtime helper call that looks up t's script
// constructor/prototype object by its resolved name.
func (e *Emitter) TypeOf(t *model.TypeDef) script.Expression {
	return script.Call(script.Dot(script.Ident("$rt"), "typeOf"), e.typeRef(t))
}

// InstantiateType builds a generic type's runtime instantiation call,
// e.g. $rt.makeGenericType(List, [T]).
func (e *Emitter) InstantiateType(t *model.TypeDef, args []script.Expression) script.Expression {
	arr := &script.ArrayLiteral{Elements: args}
	return script.Call(script.Dot(script.Ident("$rt"), "makeGenericType"), e.typeRef(t), arr)
}

// TypeIs builds the runtime type-test helper used for an `is` or
// pattern-match test against t.
func (e *Emitter) TypeIs(value script.Expression, t *model.TypeDef) script.Expression {
	return script.Call(script.Dot(script.Ident("$rt"), "typeIs"), value, e.typeRef(t))
}

// TryDowncast builds a downcast that yields nil on failure instead of
// raising, the `as` operator's runtime counterpart.
func (e *Emitter) TryDowncast(value script.Expression, t *model.TypeDef) script.Expression {
	if e.config.OmitDowncastChecks {
		return value
	}
	return script.Call(script.Dot(script.Ident("$rt"), "tryDowncast"), value, e.typeRef(t))
}

// Downcast builds a checked downcast that raises a script exception on
// failure. Elided to a bare value when downcast checks are disabled, or
// when source and target are provably the same script type (the
// importer having resolved both to identical dotted names).
func (e *Emitter) Downcast(value script.Expression, from, to *model.TypeDef) script.Expression {
	if e.config.OmitDowncastChecks {
		return value
	}
	if from != nil && e.importer.ScriptNameOf(from) == e.importer.ScriptNameOf(to) {
		return value
	}
	return script.Call(script.Dot(script.Ident("$rt"), "downcast"), value, e.typeRef(to))
}

// Upcast builds an upcast expression. Upcasting a character value loses
// the runtime type tag the script character representation relies on,
// so this reports a diagnostic (the one case spec §4.2 has the emitter
// touch the reporter) and still returns a defensible expression.
func (e *Emitter) Upcast(value script.Expression, fromIsCharacter bool, region source.Region) script.Expression {
	if fromIsCharacter {
		e.reporter.Warnf(DiagUpcastFromCharacter, region, "upcast from a character value discards its runtime type tag")
		return script.Call(script.Dot(script.Ident("$rt"), "upcast"), value)
	}
	return value
}

// ReferenceEquals builds the operator-level equality test between left
// and right. A side statically known to be a string uses the native
// `===`/`!==` operator (script strings already compare by value); a side
// that is the null literal is tested with `isNullOrUndefined`/`isValue`
// instead; otherwise the runtime `referenceEquals` helper decides
// identity. negate selects `!==`/`isValue`/a negated referenceEquals over
// their `===`/`isNullOrUndefined`/referenceEquals counterparts.
func (e *Emitter) ReferenceEquals(left, right script.Expression, leftIsString, rightIsString, negate bool) script.Expression {
	if leftIsString || rightIsString {
		op := script.BinaryOp("===")
		if negate {
			op = "!=="
		}
		return script.Bin(op, left, right)
	}
	if isNullLiteral(left) {
		return e.nullSideCheck(right, negate)
	}
	if isNullLiteral(right) {
		return e.nullSideCheck(left, negate)
	}
	call := script.Call(script.Dot(script.Ident("$rt"), "referenceEquals"), left, right)
	if negate {
		return script.Un("!", call)
	}
	return call
}

func (e *Emitter) nullSideCheck(other script.Expression, negate bool) script.Expression {
	name := "isNullOrUndefined"
	if negate {
		name = "isValue"
	}
	return script.Call(script.Dot(script.Ident("$rt"), name), other)
}

func isNullLiteral(expr script.Expression) bool {
	lit, ok := expr.(*script.Literal)
	return ok && lit.LitKind == script.LitNull
}

// LiftBinary builds a three-valued-logic-aware binary operation over
// possibly-null operands, dispatching to the matching Nullable.* runtime
// helper. Omitted in favor of the raw operator when nullable checks are
// disabled or the operator has no lifted counterpart.
func (e *Emitter) LiftBinary(op string, left, right script.Expression) script.Expression {
	if e.config.OmitNullableChecks {
		return script.Bin(script.BinaryOp(op), left, right)
	}
	helper := liftedBinaryHelper(op)
	if helper == "" {
		return script.Bin(script.BinaryOp(op), left, right)
	}
	return e.nullableCall(helper, left, right)
}

// liftedBinaryHelper maps a binary operator token to its Nullable.*
// helper name (spec §6's Nullable.{not,neg,pos,cpl,eq,ne,le,ge,lt,gt,
// sub,add,mod,div,mul,band,bor,xor,shl,srs,sru,and,or,unbox} surface).
func liftedBinaryHelper(op string) string {
	switch op {
	case "+":
		return "add"
	case "-":
		return "sub"
	case "*":
		return "mul"
	case "/":
		return "div"
	case "%":
		return "mod"
	case "==":
		return "eq"
	case "!=":
		return "ne"
	case "<":
		return "lt"
	case "<=":
		return "le"
	case ">":
		return "gt"
	case ">=":
		return "ge"
	case "&":
		return "band"
	case "|":
		return "bor"
	case "^":
		return "xor"
	case "<<":
		return "shl"
	case ">>":
		return "srs"
	case ">>>":
		return "sru"
	case "&&":
		return "and"
	case "||":
		return "or"
	default:
		return ""
	}
}

// LiftUnary builds a nullable-aware unary operation, dispatching to the
// matching Nullable.* helper (not/neg/pos/cpl). Falls back to the raw
// operator when nullable checks are disabled or the operator has no
// lifted counterpart.
func (e *Emitter) LiftUnary(op string, operand script.Expression) script.Expression {
	if e.config.OmitNullableChecks {
		return script.Un(script.UnaryOp(op), operand)
	}
	helper := liftedUnaryHelper(op)
	if helper == "" {
		return script.Un(script.UnaryOp(op), operand)
	}
	return e.nullableCall(helper, operand)
}

func liftedUnaryHelper(op string) string {
	switch op {
	case "!":
		return "not"
	case "-":
		return "neg"
	case "+":
		return "pos"
	case "~":
		return "cpl"
	default:
		return ""
	}
}

func (e *Emitter) nullableCall(name string, args ...script.Expression) script.Expression {
	return script.Call(script.Dot(script.Dot(script.Ident("$rt"), "Nullable"), name), args...)
}

// Int32Div builds the integer-division runtime helper call. Lifting an
// already-lifted Int32.div result returns it unchanged instead of
// wrapping it in Nullable.div a second time (spec §8 scenario 6).
func (e *Emitter) Int32Div(x, y script.Expression) script.Expression {
	if isInt32HelperCall(x, "div") {
		return x
	}
	return e.int32Call("div", x, y)
}

// Int32Trunc builds the float-truncation runtime helper call, with the
// same already-lifted guard as Int32Div.
func (e *Emitter) Int32Trunc(x script.Expression) script.Expression {
	if isInt32HelperCall(x, "trunc") {
		return x
	}
	return e.int32Call("trunc", x)
}

func (e *Emitter) int32Call(name string, args ...script.Expression) script.Expression {
	return script.Call(script.Dot(script.Dot(script.Ident("$rt"), "Int32"), name), args...)
}

func isInt32HelperCall(expr script.Expression, name string) bool {
	inv, ok := expr.(*script.Invocation)
	if !ok {
		return false
	}
	member, ok := inv.Callee.(*script.Member)
	if !ok || member.Name != name {
		return false
	}
	outer, ok := member.Target.(*script.Member)
	return ok && outer.Name == "Int32"
}

// WrapException builds the runtime call that wraps a native thrown value
// into the script exception representation, used when a task completion
// source is completed with an exception.
func (e *Emitter) WrapException(value script.Expression) script.Expression {
	return script.Call(script.Dot(script.Dot(script.Ident("$rt"), "Exception"), "wrap"), value)
}

// FromNullable unwraps a nullable wrapper, short-circuiting when value
// is already known not to be a wrapped nullable (e.g. a literal or a
// prior FromNullable result), matching the "unwrap unless already
// negated" elision rule.
func (e *Emitter) FromNullable(value script.Expression, alreadyUnwrapped bool) script.Expression {
	if alreadyUnwrapped || e.config.OmitNullableChecks {
		return value
	}
	return script.Call(script.Dot(script.Ident("$rt"), "fromNullable"), value)
}

// BindDelegate builds a bound-method delegate value.
func (e *Emitter) BindDelegate(target, method script.Expression) script.Expression {
	return script.Call(script.Dot(script.Ident("$rt"), "bind"), target, method)
}

// BindFirstParameterToThis builds a delegate bound so its first formal
// parameter receives the call-site's `this`.
func (e *Emitter) BindFirstParameterToThis(method script.Expression) script.Expression {
	return script.Call(script.Dot(script.Ident("$rt"), "bindFirstParameterToThis"), method)
}

// CloneDelegate builds a delegate-copy call. Elided to the delegate
// value itself when the delegate type is known immutable (the emitter
// never allocates a copy it does not need).
func (e *Emitter) CloneDelegate(value script.Expression, needsCopy bool) script.Expression {
	if !needsCopy {
		return value
	}
	return script.Call(script.Dot(script.Ident("$rt"), "cloneDelegate"), value)
}

// AllocArray builds a single-dimension array allocation using the
// script's native array constructor.
func (e *Emitter) AllocArray(length script.Expression) script.Expression {
	return &script.New{Callee: script.Ident("Array"), Arguments: []script.Expression{length}}
}

// AllocMultiDimArray builds a jagged-array allocation across dims
// dimensions via the runtime helper (script arrays are not natively
// multi-dimensional).
func (e *Emitter) AllocMultiDimArray(dims []script.Expression) script.Expression {
	arr := &script.ArrayLiteral{Elements: dims}
	return script.Call(script.Dot(script.Ident("$rt"), "allocMultiDimArray"), arr)
}

// MultiDimGet/MultiDimSet build element access into a multi-dimensional
// array's flattened backing store.
func (e *Emitter) MultiDimGet(array script.Expression, indices []script.Expression) script.Expression {
	args := append([]script.Expression{array}, indices...)
	return script.Call(script.Dot(script.Ident("$rt"), "multiDimGet"), args...)
}

func (e *Emitter) MultiDimSet(array script.Expression, indices []script.Expression, value script.Expression) script.Expression {
	args := make([]script.Expression, 0, len(indices)+2)
	args = append(args, array)
	args = append(args, indices...)
	args = append(args, value)
	return script.Call(script.Dot(script.Ident("$rt"), "multiDimSet"), args...)
}

// ApplyConstructor builds a reflection-style "call this constructor
// with these arguments" invocation.
func (e *Emitter) ApplyConstructor(t *model.TypeDef, args script.Expression) script.Expression {
	return script.Call(script.Dot(script.Ident("$rt"), "applyConstructor"), e.typeRef(t), args)
}

// ShallowCopy builds a shallow-clone call for a value-type assignment.
func (e *Emitter) ShallowCopy(value script.Expression) script.Expression {
	return script.Call(script.Dot(script.Ident("$rt"), "shallowCopy"), value)
}

// BaseCall builds an explicit base-class method invocation:
// Type.prototype.method.call(this, ...args) for a fixed-arity call, or
// Type.prototype.method.apply(this, [args...]) when expandParams is set,
// with every argument placed in one array literal. No concat form is
// built: a trailing argument that is itself an array is passed as a
// single element, not spread.
func (e *Emitter) BaseCall(baseType *model.TypeDef, methodName string, args []script.Expression, expandParams bool) script.Expression {
	proto := script.Dot(script.Dot(e.typeRef(baseType), "prototype"), methodName)
	if !expandParams {
		callArgs := append([]script.Expression{&script.This{}}, args...)
		return script.Call(script.Dot(proto, "call"), callArgs...)
	}
	arr := &script.ArrayLiteral{Elements: args}
	return script.Call(script.Dot(proto, "apply"), &script.This{}, arr)
}
