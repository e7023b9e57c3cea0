// Package importer implements the Metadata Importer (spec §4.1): a
// deterministic naming and semantics oracle that decides, for every type
// and member reachable from the compilation, how it appears in the
// output script.
//
// It is grounded on the teacher's internal/semantic.Analyzer: one struct
// holding every registry (symbol table, per-type maps) that is built up
// across a single pass and queried read-only afterward, with
// `analyze_*.go`-style small files splitting the decision algorithm by
// concern, and errors accumulated rather than raised eagerly (spec §7).
package importer

// TypeImplKind distinguishes how a type appears in the output script.
type TypeImplKind int

const (
	TypeNormal TypeImplKind = iota
	TypeNotUsable
)

// TypeSemantics is the immutable per-type decision record (spec §3).
type TypeSemantics struct {
	ImplKind              TypeImplKind
	DottedScriptName      string
	IgnoreGenericArguments bool
	GenerateCode          bool
	IsSerializable        bool
	IsNamedValues         bool
	IsImported            bool
}

// DelegateSemantics is the per-delegate-type decision record.
type DelegateSemantics struct {
	ExpandParams          bool
	BindThisToFirstParameter bool
}

// MethodImplKind distinguishes how a method is dispatched in script.
type MethodImplKind int

const (
	MethodNormal MethodImplKind = iota
	MethodInlineCode
	MethodNativeIndexer
	MethodNativeOperator
	MethodAlias
	MethodEvaporate
	MethodStaticWithThisAsFirstArgument
	MethodNotUsable
)

// MethodSemantics is the immutable per-method decision record.
type MethodSemantics struct {
	ImplKind            MethodImplKind
	Name                string // populated when ImplKind == MethodNormal
	InlineTemplate       string // populated when ImplKind == MethodInlineCode
	NonVirtualTemplate   string
	GeneratedMethodName  string // the name used on the call site when InlineCode carries one
	AliasTemplate        string // populated when ImplKind == MethodAlias: the alias applied to the call's arguments
	EvaporatesToReceiver bool   // populated when ImplKind == MethodEvaporate: true = instance zero-arg call becomes the receiver, false = static single-arg call becomes the argument
	IgnoreGenericArguments bool
	ExpandParams        bool
	EnumerateAsArray    bool
	GenerateCode        bool
}

// ConstructorImplKind distinguishes how a constructor is dispatched.
type ConstructorImplKind int

const (
	CtorUnnamed ConstructorImplKind = iota
	CtorNamed
	CtorStaticMethod
	CtorInlineCode
	CtorJson
	CtorNotUsable
)

// ParameterMemberMapping is one parameter-to-member binding a Json
// constructor uses, spec §4.1 Constructor pipeline / §8 scenario 5.
type ParameterMemberMapping struct {
	Parameter  string
	MemberName string
}

// ConstructorSemantics is the immutable per-constructor decision record.
type ConstructorSemantics struct {
	ImplKind             ConstructorImplKind
	Name                 string
	InlineTemplate       string
	ParameterToMemberMap []ParameterMemberMapping
	ExpandParams         bool
	SkipInInitializer    bool
	GenerateCode         bool
}

// PropertyImplKind distinguishes how a property is represented.
type PropertyImplKind int

const (
	PropertyGetAndSetMethods PropertyImplKind = iota
	PropertyField
	PropertyNotUsable
)

// PropertySemantics is the immutable per-property decision record.
type PropertySemantics struct {
	ImplKind  PropertyImplKind
	GetMethod *MethodSemantics
	SetMethod *MethodSemantics
	FieldName string
}

// EventSemantics mirrors PropertySemantics with add/remove in place of
// get/set.
type EventSemantics struct {
	ImplKind     PropertyImplKind
	AddMethod    *MethodSemantics
	RemoveMethod *MethodSemantics
	FieldName    string
}

// FieldImplKind distinguishes how a field is represented.
type FieldImplKind int

const (
	FieldField FieldImplKind = iota
	FieldBooleanConstant
	FieldNumericConstant
	FieldStringConstant
	FieldNullConstant
	FieldNotUsable
)

// FieldSemantics is the immutable per-field decision record. A constant
// with no Name is substituted inline at every use (spec §3).
type FieldSemantics struct {
	ImplKind      FieldImplKind
	Name          string
	ConstantValue any
}

// Reserved script identifiers spec §6 lists. Static context additionally
// excludes the function-object-specific names.
var staticReservedNames = map[string]bool{
	"__defineGetter__": true, "__defineSetter__": true, "apply": true,
	"arguments": true, "bind": true, "call": true, "caller": true,
	"constructor": true, "hasOwnProperty": true, "isPrototypeOf": true,
	"length": true, "name": true, "propertyIsEnumerable": true,
	"prototype": true, "toLocaleString": true, "valueOf": true,
}

var instanceReservedNames = map[string]bool{
	"__defineGetter__": true, "__defineSetter__": true, "constructor": true,
	"hasOwnProperty": true, "isPrototypeOf": true, "propertyIsEnumerable": true,
	"toLocaleString": true, "valueOf": true,
}

var scriptKeywords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "export": true, "extends": true, "finally": true,
	"for": true, "function": true, "if": true, "import": true, "in": true,
	"instanceof": true, "new": true, "return": true, "super": true,
	"switch": true, "this": true, "throw": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true, "yield": true,
	"let": true, "static": true, "null": true, "true": true, "false": true,
}

func isReserved(name string, isStatic bool) bool {
	if scriptKeywords[name] {
		return true
	}
	if isStatic {
		return staticReservedNames[name]
	}
	return instanceReservedNames[name]
}

// TriState models the include-generic-arguments yes/no/unspecified value
// spec §4.1 step 2 resolves.
type TriState int

const (
	Unspecified TriState = iota
	Yes
	No
)
