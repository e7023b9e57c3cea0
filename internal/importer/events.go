package importer

import "github.com/cwbudde/scriptgen/internal/model"

// computeEventSemantics mirrors computePropertySemantics with add_/
// remove_ accessors in place of get_/set_. Every event declared on a
// serializable type is already reported in validateSerializableType;
// this function does not look at the owner and always builds the
// add/remove accessor pair.
func (imp *Importer) computeEventSemantics(e *model.Event) *EventSemantics {
	if e.Attributes.Has(model.AttrNonScriptable) {
		return &EventSemantics{ImplKind: PropertyNotUsable}
	}

	sem := &EventSemantics{ImplKind: PropertyGetAndSetMethods}
	baseName := imp.resolveEventBaseName(e)
	if e.AddMethod != nil {
		addSem := imp.computeAccessorSemantics(e.AddMethod, "add_"+baseName)
		imp.methods[e.AddMethod.Symbol] = addSem
		sem.AddMethod = addSem
	}
	if e.RemoveMethod != nil {
		removeSem := imp.computeAccessorSemantics(e.RemoveMethod, "remove_"+baseName)
		imp.methods[e.RemoveMethod.Symbol] = removeSem
		sem.RemoveMethod = removeSem
	}
	return sem
}

func (imp *Importer) resolveEventBaseName(e *model.Event) string {
	if attr, ok := e.Attributes.Get(model.AttrScriptName); ok {
		if name, ok := attr.String("Name"); ok && name != "" {
			return name
		}
	}
	return lowerFirst(e.Name)
}
