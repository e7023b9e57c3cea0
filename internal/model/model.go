// Package model is the read-only "Type and member model" spec §6 describes
// as consumed by the core: a graph of type definitions, members, and
// attribute lists with resolved symbols, produced by an external parser
// and type resolver this repository does not implement.
//
// It plays the same role the teacher's internal/types + internal/semantic
// symbol tables play for DWScript, but shaped for a class-based generic
// language with properties, events, delegates and attributes instead of
// DWScript's Object Pascal dialect.
package model

import "github.com/cwbudde/scriptgen/internal/source"

// Symbol is an opaque, value-comparable handle to an entity from the
// external type system. Two Symbols compare equal iff they name the same
// underlying declaration — see spec §9 "Symbol identity for map keys".
type Symbol struct {
	id string
}

// NewSymbol wraps an external identity string (e.g. a fully qualified,
// assembly-prefixed name) as an opaque token.
func NewSymbol(id string) Symbol { return Symbol{id: id} }

func (s Symbol) String() string { return s.id }

// IsZero reports whether this is the unset Symbol.
func (s Symbol) IsZero() bool { return s.id == "" }

// TypeKind distinguishes the declaration forms the importer must route
// differently.
type TypeKind int

const (
	KindClass TypeKind = iota
	KindInterface
	KindStruct
	KindEnum
	KindDelegate
)

// TypeParameter is a single generic parameter slot on a type or method.
type TypeParameter struct {
	Name  string
	Index int
}

// TypeDef is one type definition reachable from the compilation.
type TypeDef struct {
	Symbol          Symbol
	Kind            TypeKind
	Namespace       string
	Name            string
	Assembly        string
	TypeParameters  []TypeParameter
	DeclaringType   *TypeDef // non-nil for a nested type
	BaseType        *TypeDef // direct base class; nil for TObject-equivalents and interfaces
	BaseInterfaces  []*TypeDef
	AllBaseTypes    []*TypeDef // full linearized base-type chain, base-first
	Methods         []*Method
	Constructors    []*Constructor
	Properties      []*Property
	Events          []*Event
	Fields          []*Field
	Attributes      AttributeList
	IsSealed        bool
	IsStatic        bool
	IsAbstract      bool
	Region          source.Region
}

// EntityKind distinguishes member records without a type switch at every
// call site; mirrors the "entity kind" field spec §6 lists on the member
// model.
type EntityKind int

const (
	EntityMethod EntityKind = iota
	EntityConstructor
	EntityProperty
	EntityEvent
	EntityField
)

// Member is implemented by every member kind so the Importer's
// deterministic ordering pass (spec §4.1 "members are visited in a
// deterministic order") can sort a mixed slice.
type Member interface {
	MemberSymbol() Symbol
	MemberKind() EntityKind
	MemberName() string // source name, never the resolved script name
	MemberRegion() source.Region
	MemberAttributes() AttributeList
	IsExplicitNameSpecified() bool
}

// Parameter is a single formal parameter on a method, constructor, or
// indexer.
type Parameter struct {
	Name     string
	Type     Symbol // the parameter's declared type, opaque to the importer
	TypeName string // a printable name, used only for overload disambiguation ordering
	ByRef    bool
	Out      bool
	Params   bool // C#-style "params" expansion marker
}

// Method is one method declaration.
type Method struct {
	Symbol              Symbol
	Owner               *TypeDef
	Name                string
	ExplicitScriptName  bool
	Parameters          []Parameter
	ReturnTypeName      string
	TypeParameters      []TypeParameter
	IsStatic            bool
	IsVirtual           bool
	IsOverride          bool
	IsAbstract          bool
	IsConstructorMarker bool // the synthetic default value-type constructor marker parameter use (spec §4.1 Constructor pipeline)
	IsOperator          bool
	IsConversion        bool // implicit/explicit conversion operator
	BaseMethod          *Method
	ImplementedInterfaceMethods []*Method // interface members this method implements, in declaration order
	Attributes          AttributeList
	Region              source.Region
}

func (m *Method) MemberSymbol() Symbol             { return m.Symbol }
func (m *Method) MemberKind() EntityKind           { return EntityMethod }
func (m *Method) MemberName() string               { return m.Name }
func (m *Method) MemberRegion() source.Region      { return m.Region }
func (m *Method) MemberAttributes() AttributeList  { return m.Attributes }
func (m *Method) IsExplicitNameSpecified() bool    { return m.ExplicitScriptName }

// Constructor is one constructor declaration on a TypeDef.
type Constructor struct {
	Symbol         Symbol
	Owner          *TypeDef
	Name           string // empty for an unnamed/default constructor
	Parameters     []Parameter
	IsStatic       bool // true for the type initializer / static constructor
	Attributes     AttributeList
	Region         source.Region
}

func (c *Constructor) MemberSymbol() Symbol            { return c.Symbol }
func (c *Constructor) MemberKind() EntityKind          { return EntityConstructor }
func (c *Constructor) MemberName() string              { return c.Name }
func (c *Constructor) MemberRegion() source.Region     { return c.Region }
func (c *Constructor) MemberAttributes() AttributeList { return c.Attributes }
func (c *Constructor) IsExplicitNameSpecified() bool   { return c.Name != "" }

// Property is one property declaration, with its accessor methods (both
// present for a read-write property, either may be nil otherwise).
type Property struct {
	Symbol             Symbol
	Owner              *TypeDef
	Name               string
	ExplicitScriptName bool
	IsIndexer          bool
	IndexParameters    []Parameter
	Getter             *Method
	Setter             *Method
	IsAutoProperty     bool
	IsOverride         bool
	IsOverridable      bool // virtual/abstract
	ImplementedInterfaceProperties []*Property
	Attributes         AttributeList
	Region             source.Region
}

func (p *Property) MemberSymbol() Symbol            { return p.Symbol }
func (p *Property) MemberKind() EntityKind          { return EntityProperty }
func (p *Property) MemberName() string              { return p.Name }
func (p *Property) MemberRegion() source.Region     { return p.Region }
func (p *Property) MemberAttributes() AttributeList { return p.Attributes }
func (p *Property) IsExplicitNameSpecified() bool   { return p.ExplicitScriptName }

// Event mirrors Property with add/remove accessors instead of get/set.
type Event struct {
	Symbol             Symbol
	Owner              *TypeDef
	Name               string
	ExplicitScriptName bool
	AddMethod          *Method
	RemoveMethod       *Method
	IsOverride         bool
	Attributes         AttributeList
	Region             source.Region
}

func (e *Event) MemberSymbol() Symbol            { return e.Symbol }
func (e *Event) MemberKind() EntityKind          { return EntityEvent }
func (e *Event) MemberName() string              { return e.Name }
func (e *Event) MemberRegion() source.Region     { return e.Region }
func (e *Event) MemberAttributes() AttributeList { return e.Attributes }
func (e *Event) IsExplicitNameSpecified() bool   { return e.ExplicitScriptName }

// Field is one field declaration.
type Field struct {
	Symbol             Symbol
	Owner              *TypeDef
	Name               string
	ExplicitScriptName bool
	IsConst            bool
	ConstantValue      any // populated when IsConst; bool/float64/string/nil
	Attributes         AttributeList
	Region             source.Region
}

func (f *Field) MemberSymbol() Symbol            { return f.Symbol }
func (f *Field) MemberKind() EntityKind          { return EntityField }
func (f *Field) MemberName() string              { return f.Name }
func (f *Field) MemberRegion() source.Region     { return f.Region }
func (f *Field) MemberAttributes() AttributeList { return f.Attributes }
func (f *Field) IsExplicitNameSpecified() bool   { return f.ExplicitScriptName }
