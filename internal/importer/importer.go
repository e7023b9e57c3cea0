package importer

import (
	"fmt"
	"sort"

	"github.com/cwbudde/scriptgen/internal/diag"
	"github.com/cwbudde/scriptgen/internal/model"
	"github.com/cwbudde/scriptgen/internal/source"
)

// Diagnostic codes. Grouped by concern the way the teacher groups
// bytecode opcodes into banner-commented sections (instruction.go).
const (
	// Type-level (1000s)
	DiagGenericArgumentsUnspecified = 1001
	DiagSerializableBaseInvalid     = 1010
	DiagSerializableInterfaceInvalid = 1011
	DiagSerializableHasInstanceEvent = 1012
	DiagSerializableHasVirtualMember = 1013
	DiagSerializableInterfaceMethod  = 1014
	DiagNestedTypeHasOwnNamespace    = 1015
	DiagGloballyExposedHasInstanceField = 1016

	// Member-level (2000s)
	DiagAmbiguousBaseMemberName   = 2001
	DiagConflictingNamespace      = 2002
	DiagInvalidScriptName         = 2003
	DiagIllegalAttributeOnInterfaceOrOverride = 2004
	DiagIntrinsicOperatorIllegal  = 2005
	DiagEnumerateAsArrayIllegal   = 2006
	DiagOverrideSemanticsMismatch = 2007

	// Constructor-level (3000s)
	DiagJsonConstructorMemberMismatch = 3001
	DiagInvalidInlineCodeTemplate     = 3002
)

// typeKey type aliases model.Symbol for readability at call sites that
// only ever look a type up by symbol.
type typeKey = model.Symbol

// typeState is the mutable per-type bookkeeping the Importer accumulates
// while `prepare` and `processTypeMembers` run — the reservation tables
// spec §3 describes ("Per type, two sets of strings — used instance
// names and used static names").
type typeState struct {
	usedInstanceNames map[string]bool
	usedStaticNames   map[string]bool
	typeParamNames    map[string]string // type parameter symbol id -> script name
}

func newTypeState() *typeState {
	return &typeState{
		usedInstanceNames: make(map[string]bool),
		usedStaticNames:   make(map[string]bool),
		typeParamNames:    make(map[string]string),
	}
}

// Importer is the Metadata Importer (spec §4.1). Its dictionaries are the
// only mutable state in the compiler core (spec §5): written exclusively
// during prepare/processTypeMembers/set*Semantics, read thereafter. The
// client contract forbids concurrent invocation, so no lock is needed.
type Importer struct {
	config   Config
	reporter *diag.Reporter

	prepared map[typeKey]bool
	types    map[typeKey]*TypeSemantics
	delegates map[typeKey]*DelegateSemantics
	methods  map[typeKey]*MethodSemantics
	ctors    map[typeKey]*ConstructorSemantics
	props    map[typeKey]*PropertySemantics
	events   map[typeKey]*EventSemantics
	fields   map[typeKey]*FieldSemantics

	typeParamNames map[typeKey]string // per (owning type-or-method symbol)+index key, see typeParamKey

	typeStates map[typeKey]*typeState

	ignoredMembers map[typeKey]bool // members overridden via set*Semantics (spec §3 Lifecycle)

	autoPropertyBackingFields map[typeKey]string
	autoEventBackingFields    map[typeKey]string

	anonTypeCounters  map[string]int // key: assembly + "\x00" + namespace
	anonFieldCounters map[typeKey]int // key: declaring type symbol

	typeParamCounter int // global counter used when minifying type-parameter names
}

// Config carries the configuration flags spec §4.1 reads (minification,
// assembly-level fallbacks) — the importer never mutates it.
type Config struct {
	Minify                bool
	RecordBaseTypeName    string // supplemented feature, spec_full §12
	AssemblyNamespace     map[string]string // assembly name -> ScriptNamespace fallback
	AssemblyIncludeGenericArgs map[string]TriState
	EligibleForMinifiedName func(*model.TypeDef) bool // nil means "all types eligible"
}

// NewImporter builds an Importer bound to reporter for diagnostics.
func NewImporter(config Config, reporter *diag.Reporter) *Importer {
	if config.RecordBaseTypeName == "" {
		config.RecordBaseTypeName = "Record"
	}
	return &Importer{
		config:                    config,
		reporter:                  reporter,
		prepared:                  make(map[typeKey]bool),
		types:                     make(map[typeKey]*TypeSemantics),
		delegates:                 make(map[typeKey]*DelegateSemantics),
		methods:                   make(map[typeKey]*MethodSemantics),
		ctors:                     make(map[typeKey]*ConstructorSemantics),
		props:                     make(map[typeKey]*PropertySemantics),
		events:                    make(map[typeKey]*EventSemantics),
		fields:                    make(map[typeKey]*FieldSemantics),
		typeParamNames:            make(map[typeKey]string),
		typeStates:                make(map[typeKey]*typeState),
		ignoredMembers:            make(map[typeKey]bool),
		autoPropertyBackingFields: make(map[typeKey]string),
		autoEventBackingFields:    make(map[typeKey]string),
		anonTypeCounters:          make(map[string]int),
		anonFieldCounters:         make(map[typeKey]int),
	}
}

// PrepareAll prepares every type in comp in topological order, as spec
// §3's Lifecycle and §5's ordering requirement demand: "all semantic
// records for a type must exist before any of its members or
// derivatives are queried."
func (imp *Importer) PrepareAll(comp *model.Compilation) error {
	order, err := comp.TopologicalOrder()
	if err != nil {
		return err
	}
	for _, t := range order {
		imp.Prepare(t)
	}
	for _, t := range order {
		imp.processTypeMembers(t)
	}
	return nil
}

// Prepare populates the type-level semantic record for t. It must be
// called after every one of t's base types has been prepared; spec
// §4.1: "failure to observe this order raises an internal error."
func (imp *Importer) Prepare(t *model.TypeDef) {
	if imp.prepared[t.Symbol] {
		return
	}
	if t.BaseType != nil && !imp.prepared[t.BaseType.Symbol] {
		diag.Raise("Prepare(%s) called before base type %s was prepared", t.Name, t.BaseType.Name)
	}
	for _, iface := range t.BaseInterfaces {
		if !imp.prepared[iface.Symbol] {
			diag.Raise("Prepare(%s) called before base interface %s was prepared", t.Name, iface.Name)
		}
	}
	if t.DeclaringType != nil && !imp.prepared[t.DeclaringType.Symbol] {
		diag.Raise("Prepare(%s) called before declaring type %s was prepared", t.Name, t.DeclaringType.Name)
	}

	imp.typeStates[t.Symbol] = newTypeState()

	if t.Kind == model.KindDelegate {
		imp.delegates[t.Symbol] = imp.computeDelegateSemantics(t)
		imp.prepared[t.Symbol] = true
		return
	}

	imp.types[t.Symbol] = imp.computeTypeSemantics(t)
	imp.reserveTypeParameterNames(t)
	imp.prepared[t.Symbol] = true
}

// getTypeState fails loudly (internal error) if t was never prepared,
// exactly the failure model spec §4.1 specifies for the public lookups.
func (imp *Importer) getTypeState(sym typeKey, what string) *typeState {
	st, ok := imp.typeStates[sym]
	if !ok {
		diag.Raise("%s: type was never prepared (symbol=%s)", what, sym)
	}
	return st
}

// GetTypeSemantics looks up t's type-level decision record.
func (imp *Importer) GetTypeSemantics(t *model.TypeDef) *TypeSemantics {
	sem, ok := imp.types[t.Symbol]
	if !ok {
		diag.Raise("GetTypeSemantics: type %q was never imported", t.Name)
	}
	return sem
}

// GetDelegateSemantics looks up t's delegate decision record.
func (imp *Importer) GetDelegateSemantics(t *model.TypeDef) *DelegateSemantics {
	sem, ok := imp.delegates[t.Symbol]
	if !ok {
		diag.Raise("GetDelegateSemantics: delegate %q was never imported", t.Name)
	}
	return sem
}

// GetMethodSemantics looks up m's decision record.
func (imp *Importer) GetMethodSemantics(m *model.Method) *MethodSemantics {
	sem, ok := imp.methods[m.Symbol]
	if !ok {
		diag.Raise("GetMethodSemantics: method %q was never imported", m.Name)
	}
	return sem
}

// GetConstructorSemantics looks up c's decision record.
func (imp *Importer) GetConstructorSemantics(c *model.Constructor) *ConstructorSemantics {
	sem, ok := imp.ctors[c.Symbol]
	if !ok {
		diag.Raise("GetConstructorSemantics: constructor on %q was never imported", c.Owner.Name)
	}
	return sem
}

// GetPropertySemantics looks up p's decision record.
func (imp *Importer) GetPropertySemantics(p *model.Property) *PropertySemantics {
	sem, ok := imp.props[p.Symbol]
	if !ok {
		diag.Raise("GetPropertySemantics: property %q was never imported", p.Name)
	}
	return sem
}

// GetEventSemantics looks up e's decision record.
func (imp *Importer) GetEventSemantics(e *model.Event) *EventSemantics {
	sem, ok := imp.events[e.Symbol]
	if !ok {
		diag.Raise("GetEventSemantics: event %q was never imported", e.Name)
	}
	return sem
}

// GetFieldSemantics looks up f's decision record.
func (imp *Importer) GetFieldSemantics(f *model.Field) *FieldSemantics {
	sem, ok := imp.fields[f.Symbol]
	if !ok {
		diag.Raise("GetFieldSemantics: field %q was never imported", f.Name)
	}
	return sem
}

// GetTypeParameterName returns the script name reserved for generic
// parameter p of owner (a type or a generic method).
func (imp *Importer) GetTypeParameterName(ownerSymbol model.Symbol, p model.TypeParameter) string {
	key := typeParamKey(ownerSymbol, p.Index)
	name, ok := imp.typeParamNames[key]
	if !ok {
		diag.Raise("GetTypeParameterName: parameter %d of %s was never reserved", p.Index, ownerSymbol)
	}
	return name
}

func typeParamKey(owner model.Symbol, index int) model.Symbol {
	return model.NewSymbol(fmt.Sprintf("%s#tp%d", owner, index))
}

// ScriptNameOf resolves a TypeReference's dotted name, combining
// namespace and name the way spec §4.1 step 3/4 describe. This is the
// function script.TypeReference.Resolve is meant to be called with.
func (imp *Importer) ScriptNameOf(t *model.TypeDef) string {
	sem := imp.GetTypeSemantics(t)
	return sem.DottedScriptName
}

// reportFallback is the common "commit a conservative record, but keep
// going" idiom spec §7 calls Recovery: "On a rule violation the importer
// still commits a fallback semantic record... so later phases do not
// crash when they reference the symbol."
func (imp *Importer) reportFallback(code int, region source.Region, format string, args ...any) {
	imp.reporter.Errorf(code, region, format, args...)
}

// sortedKeys is a small helper used by name-reservation code that must
// iterate maps in a deterministic order to satisfy spec §8's
// Determinism property ("running the full import twice... produces
// bit-identical semantic records").
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
