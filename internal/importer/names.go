package importer

import (
	"fmt"

	"github.com/cwbudde/scriptgen/internal/model"
)

// ReserveMemberName is the cooperative reservation spec §4.1 exposes so
// plugins can stake a claim on a name before `prepare` runs. It is also
// used internally every time the Importer itself picks a name.
func (imp *Importer) ReserveMemberName(t *model.TypeDef, name string, isStatic bool) {
	st := imp.stateFor(t)
	if isStatic {
		st.usedStaticNames[name] = true
	} else {
		st.usedInstanceNames[name] = true
	}
}

// stateFor returns t's typeState, synthesizing one on first use so
// ReserveMemberName can be called by a plugin before `prepare` (spec
// §4.1: "External clients of the importer may additionally reserve a
// name... used by plugin extensions").
func (imp *Importer) stateFor(t *model.TypeDef) *typeState {
	st, ok := imp.typeStates[t.Symbol]
	if !ok {
		st = newTypeState()
		imp.typeStates[t.Symbol] = st
	}
	return st
}

// IsMemberNameAvailable reports whether name is free for isStatic use on
// t. Per spec §8's Reservation property, an instance name reserved on any
// base type of t (transitively) also makes it unavailable on t — this is
// invariant (b) in §3: the set of chosen instance names must be disjoint
// from any base type's instance names.
func (imp *Importer) IsMemberNameAvailable(t *model.TypeDef, name string, isStatic bool) bool {
	if isReserved(name, isStatic) {
		return false
	}
	if isStatic {
		st, ok := imp.typeStates[t.Symbol]
		return !ok || !st.usedStaticNames[name]
	}
	for cur := t; cur != nil; cur = cur.BaseType {
		st, ok := imp.typeStates[cur.Symbol]
		if ok && st.usedInstanceNames[name] {
			return false
		}
	}
	return true
}

// uniqueName finds the first name in {preferred, preferred$2, preferred$3, ...}
// available for isStatic use on t, reserves it, and returns it. This is
// the "unique derivative against the reservation table" spec §4.1
// describes for members with no explicit preferred name winner.
func (imp *Importer) uniqueName(t *model.TypeDef, preferred string, isStatic bool) string {
	if imp.IsMemberNameAvailable(t, preferred, isStatic) {
		imp.ReserveMemberName(t, preferred, isStatic)
		return preferred
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s$%d", preferred, i)
		if imp.IsMemberNameAvailable(t, candidate, isStatic) {
			imp.ReserveMemberName(t, candidate, isStatic)
			return candidate
		}
	}
}

// nextAnonymousTypeIndex implements the per-(assembly,namespace) counter
// spec §3's Name-reservation tables describe, used to allocate minified
// type names ("$" + nextIndex(assembly, namespace)).
func (imp *Importer) nextAnonymousTypeIndex(assembly, namespace string) int {
	key := assembly + "\x00" + namespace
	imp.anonTypeCounters[key]++
	return imp.anonTypeCounters[key]
}

// nextAnonymousFieldIndex implements the per-declaring-type counter used
// to synthesize auto-property/auto-event backing field names.
func (imp *Importer) nextAnonymousFieldIndex(declaringType *model.TypeDef) int {
	imp.anonFieldCounters[declaringType.Symbol]++
	return imp.anonFieldCounters[declaringType.Symbol]
}

// GetAutoPropertyBackingFieldName returns the stable, memoized backing
// field name for an auto-implemented property (spec §4.1 public
// operations).
func (imp *Importer) GetAutoPropertyBackingFieldName(p *model.Property) string {
	if name, ok := imp.autoPropertyBackingFields[p.Symbol]; ok {
		return name
	}
	name := fmt.Sprintf("$%d", imp.nextAnonymousFieldIndex(p.Owner))
	imp.autoPropertyBackingFields[p.Symbol] = name
	return name
}

// GetAutoEventBackingFieldName mirrors GetAutoPropertyBackingFieldName
// for auto-implemented events.
func (imp *Importer) GetAutoEventBackingFieldName(e *model.Event) string {
	if name, ok := imp.autoEventBackingFields[e.Symbol]; ok {
		return name
	}
	name := fmt.Sprintf("$%d", imp.nextAnonymousFieldIndex(e.Owner))
	imp.autoEventBackingFields[e.Symbol] = name
	return name
}

// reserveTypeParameterNames implements spec §4.1 step 7: "minification
// numbers them sequentially across the declaring-type nesting; otherwise
// source names are copied."
func (imp *Importer) reserveTypeParameterNames(t *model.TypeDef) {
	if imp.config.Minify {
		for _, p := range t.TypeParameters {
			imp.typeParamCounter++
			imp.typeParamNames[typeParamKey(t.Symbol, p.Index)] = fmt.Sprintf("$%d", imp.typeParamCounter)
		}
		return
	}
	for _, p := range t.TypeParameters {
		imp.typeParamNames[typeParamKey(t.Symbol, p.Index)] = p.Name
	}
}

// ReserveMethodTypeParameterNames mirrors reserveTypeParameterNames for a
// generic method's own type parameters, keyed off the method's symbol so
// GetTypeParameterName works uniformly for both owners.
func (imp *Importer) ReserveMethodTypeParameterNames(m *model.Method) {
	if imp.config.Minify {
		for _, p := range m.TypeParameters {
			imp.typeParamCounter++
			imp.typeParamNames[typeParamKey(m.Symbol, p.Index)] = fmt.Sprintf("$%d", imp.typeParamCounter)
		}
		return
	}
	for _, p := range m.TypeParameters {
		imp.typeParamNames[typeParamKey(m.Symbol, p.Index)] = p.Name
	}
}
