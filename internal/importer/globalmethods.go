package importer

import "github.com/cwbudde/scriptgen/internal/model"

// processGlobalMethods implements the [GlobalMethods]/[Mixin]
// supplemented feature (spec_full §12): a type so marked contributes
// its static methods as free functions in its resolved namespace rather
// than as members of a constructor object, and instance methods as
// mixin members callable with ordinary "this" dispatch once copied onto
// a target prototype. The importer's only job here is validation — the
// emitter decides how the call site is actually shaped.
func (imp *Importer) processGlobalMethods(t *model.TypeDef) {
	isMixin := t.Attributes.Has(model.AttrMixin)
	for _, m := range t.Methods {
		sem, ok := imp.methods[m.Symbol]
		if !ok || sem.ImplKind == MethodNotUsable {
			continue
		}
		if !isMixin && !m.IsStatic {
			imp.reportFallback(DiagIllegalAttributeOnInterfaceOrOverride, m.Region,
				"method %q: instance method is illegal on a [GlobalMethods] type", m.Name)
		}
	}
}
