package importer

import "github.com/cwbudde/scriptgen/internal/model"

// computeFieldSemantics implements the field pipeline: named-values enum
// constants become fields named like any other field (an explicit
// ScriptName, else the source name with a lower-cased first letter),
// other enum constants and, when minifying, const fields are substituted
// by value at every use (ImplKind has no Name), and everything else
// falls through to a field reservation.
func (imp *Importer) computeFieldSemantics(f *model.Field) *FieldSemantics {
	if f.Attributes.Has(model.AttrNonScriptable) {
		return &FieldSemantics{ImplKind: FieldNotUsable}
	}

	if f.Owner.Kind == model.KindEnum {
		ownerSem := imp.types[f.Owner.Symbol]
		if ownerSem != nil && ownerSem.IsNamedValues {
			return &FieldSemantics{ImplKind: FieldField, Name: imp.resolveFieldName(f)}
		}
		return inlineConstant(f)
	}

	if f.IsConst {
		if imp.config.Minify {
			return inlineConstant(f)
		}
		return &FieldSemantics{ImplKind: FieldField, Name: imp.resolveFieldName(f)}
	}

	return &FieldSemantics{ImplKind: FieldField, Name: imp.resolveFieldName(f)}
}

func inlineConstant(f *model.Field) *FieldSemantics {
	switch v := f.ConstantValue.(type) {
	case bool:
		return &FieldSemantics{ImplKind: FieldBooleanConstant, ConstantValue: v}
	case float64:
		return &FieldSemantics{ImplKind: FieldNumericConstant, ConstantValue: v}
	case string:
		return &FieldSemantics{ImplKind: FieldStringConstant, ConstantValue: v}
	default:
		return &FieldSemantics{ImplKind: FieldNullConstant, ConstantValue: nil}
	}
}

func (imp *Importer) resolveFieldName(f *model.Field) string {
	if attr, ok := f.Attributes.Get(model.AttrScriptName); ok {
		if name, ok := attr.String("Name"); ok && name != "" {
			imp.ReserveMemberName(f.Owner, name, false)
			return name
		}
	}
	return imp.uniqueName(f.Owner, lowerFirst(f.Name), false)
}
