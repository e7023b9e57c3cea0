package importer

import (
	"github.com/cwbudde/scriptgen/internal/model"
)

// computeMethodSemantics implements the method attribute pipeline spec
// §4.1 describes: an override or interface implementation first inherits
// its base method's semantics; otherwise non-scriptable wins, then
// script-skip (evaporates the call site), intrinsic-operator,
// script-alias and inline-code are each checked in turn, and whatever
// is left falls through to ordinary name resolution.
func (imp *Importer) computeMethodSemantics(m *model.Method) *MethodSemantics {
	if inherited := imp.inheritedMethodSemantics(m); inherited != nil {
		imp.methods[m.Symbol] = inherited
		return inherited
	}

	if m.Attributes.Has(model.AttrNonScriptable) {
		return &MethodSemantics{ImplKind: MethodNotUsable}
	}
	if m.Attributes.Has(model.AttrScriptSkip) {
		return imp.computeScriptSkipSemantics(m)
	}

	sem := &MethodSemantics{ImplKind: MethodNormal, GenerateCode: true}

	if attr, ok := m.Attributes.Get(model.AttrIntrinsicOperator); ok {
		if (m.IsOverride || len(m.ImplementedInterfaceMethods) > 0) {
			imp.reportFallback(DiagIllegalAttributeOnInterfaceOrOverride, m.Region,
				"method %q: IntrinsicOperator is illegal on an override or interface implementation", m.Name)
		} else {
			sem.ImplKind = MethodNativeOperator
			if op, ok := attr.String("Operator"); ok {
				sem.Name = op
			}
			return sem
		}
	}

	if attr, ok := m.Attributes.Get(model.AttrScriptAlias); ok {
		sem.ImplKind = MethodAlias
		sem.GenerateCode = false
		if alias, ok := attr.String("Alias"); ok {
			sem.AliasTemplate = alias
		}
		return sem
	}

	if attr, ok := m.Attributes.Get(model.AttrInlineCode); ok {
		sem.ImplKind = MethodInlineCode
		if tmpl, ok := attr.String("Template"); ok {
			sem.InlineTemplate = tmpl
		}
		if tmpl, ok := attr.String("NonVirtualTemplate"); ok {
			sem.NonVirtualTemplate = tmpl
		} else {
			sem.NonVirtualTemplate = sem.InlineTemplate
		}
		if name, ok := attr.String("GeneratedMethodName"); ok {
			sem.GeneratedMethodName = name
			imp.ReserveMemberName(m.Owner, name, m.IsStatic)
		}
		return sem
	}

	if m.Attributes.Has(model.AttrInstanceMethodOnFirstArgument) {
		sem.ImplKind = MethodStaticWithThisAsFirstArgument
	}

	if m.Attributes.Has(model.AttrEnumerateAsArray) {
		if m.IsOverride || len(m.ImplementedInterfaceMethods) > 0 {
			imp.reportFallback(DiagEnumerateAsArrayIllegal, m.Region,
				"method %q: EnumerateAsArray is illegal on an override or interface implementation", m.Name)
		} else {
			sem.EnumerateAsArray = true
		}
	}

	sem.IgnoreGenericArguments = imp.resolveMethodIncludeGenericArguments(m) == No
	if len(m.TypeParameters) > 0 {
		imp.ReserveMethodTypeParameterNames(m)
	}

	sem.Name = imp.resolveMethodName(m, sem)
	return sem
}

// inheritedMethodSemantics returns a non-nil record when m must copy its
// base method's or an implemented interface method's name verbatim
// (override / explicit interface implementation), flagging a mismatch
// if the method also carries an explicit, conflicting script name.
func (imp *Importer) inheritedMethodSemantics(m *model.Method) *MethodSemantics {
	var source *model.Method
	if m.IsOverride && m.BaseMethod != nil {
		source = m.BaseMethod
	} else if len(m.ImplementedInterfaceMethods) > 0 {
		source = m.ImplementedInterfaceMethods[0]
	}
	if source == nil {
		return nil
	}
	baseSem, ok := imp.methods[source.Symbol]
	if !ok {
		return nil
	}
	if m.ExplicitScriptName {
		if attr, ok := m.Attributes.Get(model.AttrScriptName); ok {
			if name, ok := attr.String("Name"); ok && name != baseSem.Name {
				imp.reportFallback(DiagOverrideSemanticsMismatch, m.Region,
					"method %q: explicit script name %q conflicts with inherited name %q", m.Name, name, baseSem.Name)
			}
		}
	}
	copy := *baseSem
	return &copy
}

func (imp *Importer) resolveMethodIncludeGenericArguments(m *model.Method) TriState {
	if attr, ok := m.Attributes.Get(model.AttrIncludeGenericArguments); ok {
		if v, ok := attr.Bool("Value"); ok {
			if v {
				return Yes
			}
			return No
		}
	}
	return Unspecified
}

// resolveMethodName picks an explicit ScriptName when present, else
// derives a unique script identifier from the source method name
// (lowercased on first letter to match the teacher's JS-member
// convention), reserved against the owning type's table.
func (imp *Importer) resolveMethodName(m *model.Method, sem *MethodSemantics) string {
	if attr, ok := m.Attributes.Get(model.AttrScriptName); ok {
		if name, ok := attr.String("Name"); ok && name != "" {
			imp.ReserveMemberName(m.Owner, name, m.IsStatic)
			return name
		}
	}
	preferred := lowerFirst(m.Name)
	return imp.uniqueName(m.Owner, preferred, m.IsStatic)
}

// computeScriptSkipSemantics implements ScriptSkip's call-site evaporation
// (spec §4.1): a static single-parameter method's call becomes its
// argument, an instance zero-parameter method's call becomes its
// receiver. No code is generated for the method itself.
func (imp *Importer) computeScriptSkipSemantics(m *model.Method) *MethodSemantics {
	return &MethodSemantics{ImplKind: MethodEvaporate, EvaporatesToReceiver: !m.IsStatic}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'A' && r[0] <= 'Z' {
		r[0] = r[0] + ('a' - 'A')
	}
	return string(r)
}
