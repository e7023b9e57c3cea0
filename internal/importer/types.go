package importer

import (
	"fmt"

	"github.com/cwbudde/scriptgen/internal/model"
)

// computeTypeSemantics implements the Type-level decision algorithm,
// spec §4.1, steps 1-6 (step 7, type-parameter reservation, is a
// separate pass — see names.go — since it must run after the name/
// namespace decision so minified type-parameter counters stay
// deterministic across types processed in topological order).
func (imp *Importer) computeTypeSemantics(t *model.TypeDef) *TypeSemantics {
	// Step 1: unusability propagation.
	if t.Attributes.Has(model.AttrNonScriptable) {
		return &TypeSemantics{ImplKind: TypeNotUsable}
	}
	if t.DeclaringType != nil {
		declSem, ok := imp.types[t.DeclaringType.Symbol]
		if ok && declSem.ImplKind == TypeNotUsable {
			return &TypeSemantics{ImplKind: TypeNotUsable}
		}
	}

	sem := &TypeSemantics{ImplKind: TypeNormal, GenerateCode: true}
	sem.IsImported = t.Attributes.Has(model.AttrImportedAttr)
	sem.IsNamedValues = t.Kind == model.KindEnum && t.Attributes.Has(model.AttrNamedValues)
	sem.IsSerializable = t.Attributes.Has(model.AttrSerializable)

	// Step 2: include-generic-arguments tri-state.
	tri := imp.resolveIncludeGenericArguments(t)
	if tri == Unspecified && len(t.TypeParameters) > 0 {
		imp.reportFallback(DiagGenericArgumentsUnspecified, t.Region,
			"type %q is generic but does not specify IncludeGenericArguments; defaulting to include", t.Name)
		tri = Yes
	}
	sem.IgnoreGenericArguments = tri == No

	// Step 3: script name.
	sem.DottedScriptName = imp.resolveTypeName(t, sem)

	// Step 4/5 are folded into resolveTypeName via resolveNamespace, and
	// the globally-exposed override below.
	if t.Attributes.Has(model.AttrGlobalMethods) || t.Attributes.Has(model.AttrMixin) {
		sem.DottedScriptName = ""
		if hasInstanceField(t) {
			imp.reportFallback(DiagGloballyExposedHasInstanceField, t.Region,
				"type %q is marked global/mixin but declares instance fields", t.Name)
		}
	}

	// Step 6: serializable-type constraints.
	if sem.IsSerializable {
		imp.validateSerializableType(t)
	}

	if t.DeclaringType != nil && t.Attributes.Has(model.AttrScriptNamespace) {
		imp.reportFallback(DiagNestedTypeHasOwnNamespace, t.Region,
			"nested type %q must not carry its own namespace attribute", t.Name)
	}

	return sem
}

func hasInstanceField(t *model.TypeDef) bool {
	for _, f := range t.Fields {
		if !f.IsConst {
			return true
		}
	}
	return false
}

// resolveIncludeGenericArguments implements spec §4.1 step 2: explicit
// attribute wins, else the containing assembly's default, else
// Unspecified.
func (imp *Importer) resolveIncludeGenericArguments(t *model.TypeDef) TriState {
	if attr, ok := t.Attributes.Get(model.AttrIncludeGenericArguments); ok {
		if v, ok := attr.Bool("Value"); ok {
			if v {
				return Yes
			}
			return No
		}
	}
	if tri, ok := imp.config.AssemblyIncludeGenericArgs[t.Assembly]; ok {
		return tri
	}
	return Unspecified
}

// resolveTypeName implements spec §4.1 step 3 (name) composed with step 4
// (namespace): "prefer an explicit valid name attribute; else, if
// minification is enabled and the type is eligible, allocate
// "$" + nextIndex(assembly, namespace); else use the source simple name,
// appending "$N" when the type is generic and N base-type-parameter
// slots are uncovered. Nested types inherit the outer name joined by
// "$"."
func (imp *Importer) resolveTypeName(t *model.TypeDef, sem *TypeSemantics) string {
	namespace := imp.resolveNamespace(t)

	if t.DeclaringType != nil {
		declSem := imp.types[t.DeclaringType.Symbol]
		outerName := ""
		if declSem != nil {
			outerName = declSem.DottedScriptName
		}
		localName := imp.resolveLocalName(t, sem)
		if outerName == "" {
			return localName
		}
		return outerName + "$" + localName
	}

	localName := imp.resolveLocalName(t, sem)
	if namespace == "" {
		return localName
	}
	return namespace + "." + localName
}

func (imp *Importer) resolveLocalName(t *model.TypeDef, sem *TypeSemantics) string {
	if attr, ok := t.Attributes.Get(model.AttrScriptName); ok {
		if name, ok := attr.String("Name"); ok && name != "" {
			return name
		}
	}

	eligible := imp.config.EligibleForMinifiedName == nil || imp.config.EligibleForMinifiedName(t)
	if imp.config.Minify && eligible {
		return fmt.Sprintf("$%d", imp.nextAnonymousTypeIndex(t.Assembly, t.Namespace))
	}

	name := t.Name
	if len(t.TypeParameters) > 0 {
		uncovered := uncoveredTypeParameterSlots(t)
		if uncovered > 0 {
			name = fmt.Sprintf("%s$%d", name, uncovered)
		}
	}
	return name
}

// uncoveredTypeParameterSlots counts t's own type parameters that are not
// already supplied by its base type's type parameter list, by name.
func uncoveredTypeParameterSlots(t *model.TypeDef) int {
	if t.BaseType == nil {
		return len(t.TypeParameters)
	}
	covered := make(map[string]bool, len(t.BaseType.TypeParameters))
	for _, p := range t.BaseType.TypeParameters {
		covered[p.Name] = true
	}
	n := 0
	for _, p := range t.TypeParameters {
		if !covered[p.Name] {
			n++
		}
	}
	return n
}

// resolveNamespace implements spec §4.1 step 4: "nearest explicit
// ScriptNamespace wins; an explicit IgnoreNamespace clears it; an
// assembly-level namespace attribute is a final fallback; otherwise the
// source namespace string is used."
func (imp *Importer) resolveNamespace(t *model.TypeDef) string {
	if t.Attributes.Has(model.AttrIgnoreNamespace) {
		return ""
	}
	if attr, ok := t.Attributes.Get(model.AttrScriptNamespace); ok {
		if ns, ok := attr.String("Namespace"); ok {
			return ns
		}
	}
	if ns, ok := imp.config.AssemblyNamespace[t.Assembly]; ok {
		return ns
	}
	return t.Namespace
}

// computeDelegateSemantics decides a delegate type's expansion rules.
// The real system derives ExpandParams from a ScriptAlias-style
// attribute and BindThisToFirstParameter from the delegate's own
// parameter shape; both default to false absent an explicit attribute.
func (imp *Importer) computeDelegateSemantics(t *model.TypeDef) *DelegateSemantics {
	sem := &DelegateSemantics{}
	if attr, ok := t.Attributes.Get(model.AttrInstanceMethodOnFirstArgument); ok {
		sem.BindThisToFirstParameter = true
		_ = attr
	}
	if attr, ok := t.Attributes.Get(model.AttrScriptAlias); ok {
		if expand, ok := attr.Bool("ExpandParams"); ok {
			sem.ExpandParams = expand
		}
	}
	return sem
}
