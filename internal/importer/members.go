package importer

import (
	"github.com/cwbudde/scriptgen/internal/model"
)

// processTypeMembers implements spec §4.1's member-ordering algorithm:
// members with an explicit script name are decided first (so they claim
// their preferred name before anything else competes for it), then the
// remaining members in the total order methods < properties < fields <
// events, each processed in source declaration order.
//
// Delegates have no members; the call is a no-op for them.
func (imp *Importer) processTypeMembers(t *model.TypeDef) {
	if t.Kind == model.KindDelegate {
		return
	}
	sem := imp.types[t.Symbol]
	if sem == nil || sem.ImplKind == TypeNotUsable {
		imp.markAllMembersNotUsable(t)
		return
	}

	var explicitMethods, plainMethods []*model.Method
	for _, m := range t.Methods {
		if imp.ignoredMembers[m.Symbol] {
			continue
		}
		if m.ExplicitScriptName {
			explicitMethods = append(explicitMethods, m)
		} else {
			plainMethods = append(plainMethods, m)
		}
	}
	var explicitProps, plainProps []*model.Property
	for _, p := range t.Properties {
		if imp.ignoredMembers[p.Symbol] {
			continue
		}
		if p.ExplicitScriptName {
			explicitProps = append(explicitProps, p)
		} else {
			plainProps = append(plainProps, p)
		}
	}
	var explicitFields, plainFields []*model.Field
	for _, f := range t.Fields {
		if imp.ignoredMembers[f.Symbol] {
			continue
		}
		if f.ExplicitScriptName {
			explicitFields = append(explicitFields, f)
		} else {
			plainFields = append(plainFields, f)
		}
	}
	var explicitEvents, plainEvents []*model.Event
	for _, e := range t.Events {
		if imp.ignoredMembers[e.Symbol] {
			continue
		}
		if e.ExplicitScriptName {
			explicitEvents = append(explicitEvents, e)
		} else {
			plainEvents = append(plainEvents, e)
		}
	}

	for _, m := range explicitMethods {
		imp.methods[m.Symbol] = imp.computeMethodSemantics(m)
	}
	for _, p := range explicitProps {
		imp.props[p.Symbol] = imp.computePropertySemantics(p)
	}
	for _, f := range explicitFields {
		imp.fields[f.Symbol] = imp.computeFieldSemantics(f)
	}
	for _, e := range explicitEvents {
		imp.events[e.Symbol] = imp.computeEventSemantics(e)
	}

	imp.processConstructors(t)

	for _, m := range plainMethods {
		imp.methods[m.Symbol] = imp.computeMethodSemantics(m)
	}
	for _, p := range plainProps {
		imp.props[p.Symbol] = imp.computePropertySemantics(p)
	}
	for _, f := range plainFields {
		imp.fields[f.Symbol] = imp.computeFieldSemantics(f)
	}
	for _, e := range plainEvents {
		imp.events[e.Symbol] = imp.computeEventSemantics(e)
	}

	if t.Attributes.Has(model.AttrGlobalMethods) || t.Attributes.Has(model.AttrMixin) {
		imp.processGlobalMethods(t)
	}
}

func (imp *Importer) markAllMembersNotUsable(t *model.TypeDef) {
	for _, m := range t.Methods {
		imp.methods[m.Symbol] = &MethodSemantics{ImplKind: MethodNotUsable}
	}
	for _, c := range t.Constructors {
		imp.ctors[c.Symbol] = &ConstructorSemantics{ImplKind: CtorNotUsable}
	}
	for _, p := range t.Properties {
		imp.props[p.Symbol] = &PropertySemantics{ImplKind: PropertyNotUsable}
	}
	for _, e := range t.Events {
		imp.events[e.Symbol] = &EventSemantics{ImplKind: PropertyNotUsable}
	}
	for _, f := range t.Fields {
		imp.fields[f.Symbol] = &FieldSemantics{ImplKind: FieldNotUsable}
	}
}

// validateSerializableType implements spec §4.1 step 6: a [Serializable]
// type's base type and interfaces must themselves be serializable, the
// designated record base type, or object/none, it may declare no instance
// events, no virtual or override members, and an interface so marked may
// declare no instance methods.
func (imp *Importer) validateSerializableType(t *model.TypeDef) {
	if t.BaseType != nil && t.BaseType.Name != imp.config.RecordBaseTypeName {
		if baseSem, ok := imp.types[t.BaseType.Symbol]; ok && !baseSem.IsSerializable {
			imp.reportFallback(DiagSerializableBaseInvalid, t.Region,
				"serializable type %q derives from non-serializable base %q", t.Name, t.BaseType.Name)
		}
	}
	for _, iface := range t.BaseInterfaces {
		if ifaceSem, ok := imp.types[iface.Symbol]; ok && !ifaceSem.IsSerializable {
			imp.reportFallback(DiagSerializableInterfaceInvalid, t.Region,
				"serializable type %q implements non-serializable interface %q", t.Name, iface.Name)
		}
	}
	for _, e := range t.Events {
		imp.reportFallback(DiagSerializableHasInstanceEvent, e.Region,
			"serializable type %q declares instance event %q", t.Name, e.Name)
	}
	for _, m := range t.Methods {
		if m.IsVirtual || m.IsOverride {
			imp.reportFallback(DiagSerializableHasVirtualMember, m.Region,
				"serializable type %q declares virtual/override method %q", t.Name, m.Name)
		}
	}
	for _, p := range t.Properties {
		if p.IsOverride || p.IsOverridable {
			imp.reportFallback(DiagSerializableHasVirtualMember, p.Region,
				"serializable type %q declares virtual/override property %q", t.Name, p.Name)
		}
	}
	if t.Kind == model.KindInterface {
		for _, m := range t.Methods {
			if !m.IsStatic {
				imp.reportFallback(DiagSerializableInterfaceMethod, m.Region,
					"serializable interface %q declares instance method %q", t.Name, m.Name)
			}
		}
	}
}
