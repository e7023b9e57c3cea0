package importer

import "github.com/cwbudde/scriptgen/internal/model"

// computePropertySemantics implements the property pipeline: a
// serializable type's instance property becomes a plain field; an
// [IntrinsicProperty] becomes a native single-parameter indexer pair or
// a plain field access; anything else synthesizes get_/set_ method
// records the way the teacher's accessor lowering does for Delphi
// properties.
func (imp *Importer) computePropertySemantics(p *model.Property) *PropertySemantics {
	if p.Attributes.Has(model.AttrNonScriptable) {
		return &PropertySemantics{ImplKind: PropertyNotUsable}
	}

	if inherited := imp.inheritedPropertySemantics(p); inherited != nil {
		return inherited
	}

	ownerSem := imp.types[p.Owner.Symbol]
	if ownerSem != nil && ownerSem.IsSerializable && !p.IsIndexer {
		name := imp.resolvePropertyFieldName(p)
		return &PropertySemantics{ImplKind: PropertyField, FieldName: name}
	}

	if p.Attributes.Has(model.AttrIntrinsicProperty) {
		if p.IsIndexer && len(p.IndexParameters) == 1 {
			return imp.computeNativeIndexerSemantics(p)
		}
		return &PropertySemantics{ImplKind: PropertyField, FieldName: imp.resolvePropertyFieldName(p)}
	}

	sem := &PropertySemantics{ImplKind: PropertyGetAndSetMethods}
	baseName := imp.resolvePropertyBaseName(p)
	if p.Getter != nil {
		getSem := imp.computeAccessorSemantics(p.Getter, "get_"+baseName)
		imp.methods[p.Getter.Symbol] = getSem
		sem.GetMethod = getSem
	}
	if p.Setter != nil {
		setSem := imp.computeAccessorSemantics(p.Setter, "set_"+baseName)
		imp.methods[p.Setter.Symbol] = setSem
		sem.SetMethod = setSem
	}
	return sem
}

// computeNativeIndexerSemantics implements the IntrinsicProperty
// single-parameter-indexer rule (spec §4.1): the accessors bypass normal
// naming and become a native `obj[index]` / `obj[index] = value` pair
// instead of named get_/set_ methods.
func (imp *Importer) computeNativeIndexerSemantics(p *model.Property) *PropertySemantics {
	sem := &PropertySemantics{ImplKind: PropertyGetAndSetMethods}
	if p.Getter != nil {
		getSem := &MethodSemantics{ImplKind: MethodNativeIndexer}
		imp.methods[p.Getter.Symbol] = getSem
		sem.GetMethod = getSem
	}
	if p.Setter != nil {
		setSem := &MethodSemantics{ImplKind: MethodNativeIndexer}
		imp.methods[p.Setter.Symbol] = setSem
		sem.SetMethod = setSem
	}
	return sem
}

func (imp *Importer) inheritedPropertySemantics(p *model.Property) *PropertySemantics {
	var source *model.Property
	if p.IsOverride && len(p.ImplementedInterfaceProperties) == 0 {
		return nil // base lookup would need a BaseProperty link; not tracked, fall through
	}
	if len(p.ImplementedInterfaceProperties) > 0 {
		source = p.ImplementedInterfaceProperties[0]
	}
	if source == nil {
		return nil
	}
	baseSem, ok := imp.props[source.Symbol]
	if !ok {
		return nil
	}
	copy := *baseSem
	return &copy
}

func (imp *Importer) resolvePropertyBaseName(p *model.Property) string {
	if attr, ok := p.Attributes.Get(model.AttrScriptName); ok {
		if name, ok := attr.String("Name"); ok && name != "" {
			return name
		}
	}
	return lowerFirst(p.Name)
}

func (imp *Importer) resolvePropertyFieldName(p *model.Property) string {
	if attr, ok := p.Attributes.Get(model.AttrScriptName); ok {
		if name, ok := attr.String("Name"); ok && name != "" {
			imp.ReserveMemberName(p.Owner, name, false)
			return name
		}
	}
	if p.IsAutoProperty {
		return imp.GetAutoPropertyBackingFieldName(p)
	}
	return imp.uniqueName(p.Owner, lowerFirst(p.Name), false)
}

// computeAccessorSemantics reserves and names a property get_/set_
// accessor the same way an ordinary method would be named, skipping the
// method-level attribute pipeline since accessors don't carry their own
// ScriptName/InlineCode attributes independently of the property.
func (imp *Importer) computeAccessorSemantics(m *model.Method, preferred string) *MethodSemantics {
	if m.Attributes.Has(model.AttrNonScriptable) {
		return &MethodSemantics{ImplKind: MethodNotUsable}
	}
	name := imp.uniqueName(m.Owner, preferred, m.IsStatic)
	return &MethodSemantics{ImplKind: MethodNormal, Name: name, GenerateCode: true}
}
