package importer

import (
	"strconv"
	"strings"

	"github.com/cwbudde/scriptgen/internal/model"
)

// processConstructors implements the constructor pipeline, spec §4.1:
// the static constructor (if any) becomes a fixed "$cctor" sentinel, the
// first eligible instance constructor becomes the unnamed "$ctor", and
// every later one is a sequentially numbered "$ctorN" unless it carries
// an explicit Name, in which case that name is reserved directly.
func (imp *Importer) processConstructors(t *model.TypeDef) {
	ctorIndex := 1
	for _, c := range t.Constructors {
		if imp.ignoredMembers[c.Symbol] {
			continue
		}
		imp.ctors[c.Symbol] = imp.computeConstructorSemantics(t, c, &ctorIndex)
	}
}

func (imp *Importer) computeConstructorSemantics(t *model.TypeDef, c *model.Constructor, ctorIndex *int) *ConstructorSemantics {
	if c.Attributes.Has(model.AttrNonScriptable) {
		return &ConstructorSemantics{ImplKind: CtorNotUsable}
	}
	if c.IsStatic {
		return &ConstructorSemantics{ImplKind: CtorStaticMethod, Name: "$cctor", GenerateCode: true}
	}

	if attr, ok := c.Attributes.Get(model.AttrInlineCode); ok {
		sem := &ConstructorSemantics{ImplKind: CtorInlineCode}
		if tmpl, ok := attr.String("Template"); ok {
			sem.InlineTemplate = tmpl
		}
		return sem
	}

	if c.Attributes.Has(model.AttrAlternateSignature) {
		sem := &ConstructorSemantics{ImplKind: CtorNamed}
		if c.Name != "" {
			sem.Name = imp.uniqueName(t, "$"+c.Name, false)
		} else {
			sem.Name = imp.allocateCtorName(t, ctorIndex)
		}
		return sem
	}

	ownerSem := imp.types[t.Symbol]
	if c.Attributes.Has(model.AttrObjectLiteral) || (ownerSem != nil && ownerSem.IsSerializable) {
		return imp.computeJSONConstructorSemantics(t, c)
	}

	if ownerSem != nil && ownerSem.IsImported && isParamsArrayOfObject(c) {
		return imp.computeDictionaryConstructorSemantics(c)
	}

	sem := &ConstructorSemantics{ImplKind: CtorUnnamed, GenerateCode: true}

	if c.Name != "" {
		sem.ImplKind = CtorNamed
		sem.Name = imp.uniqueName(t, "$"+c.Name, false)
		return sem
	}

	if *ctorIndex == 1 {
		sem.Name = "$ctor"
		*ctorIndex++
	} else {
		sem.ImplKind = CtorNamed
		sem.Name = imp.allocateCtorName(t, ctorIndex)
	}
	return sem
}

// isParamsArrayOfObject reports whether c takes exactly one parameter and
// that parameter is a params-array, the shape a dictionary-construction
// call site passes as a single object-literal argument.
func isParamsArrayOfObject(c *model.Constructor) bool {
	return len(c.Parameters) == 1 && c.Parameters[0].Params
}

// computeDictionaryConstructorSemantics implements the single
// params-array-of-object constructor on an imported declaring type (spec
// §4.1): the call site constructs the instance directly from the
// caller's object-literal argument instead of invoking a named script
// constructor.
func (imp *Importer) computeDictionaryConstructorSemantics(c *model.Constructor) *ConstructorSemantics {
	return &ConstructorSemantics{
		ImplKind:       CtorInlineCode,
		InlineTemplate: "{%" + c.Parameters[0].Name + "}",
	}
}

func (imp *Importer) allocateCtorName(t *model.TypeDef, ctorIndex *int) string {
	*ctorIndex++
	name := "$ctor" + strconv.Itoa(*ctorIndex-1)
	imp.ReserveMemberName(t, name, false)
	return name
}

// computeJSONConstructorSemantics binds each parameter to the
// lowercase-matched member it initializes, the way a serializable
// type's generated "from JSON" constructor does (spec §8 scenario 5).
// Every parameter, whatever their number, becomes one
// ParameterMemberMapping entry; a parameter that matches no field or
// property is flagged and left out of the list.
func (imp *Importer) computeJSONConstructorSemantics(t *model.TypeDef, c *model.Constructor) *ConstructorSemantics {
	sem := &ConstructorSemantics{ImplKind: CtorJson, GenerateCode: true}
	members := memberNamesByLower(t)
	for _, p := range c.Parameters {
		name, ok := members[strings.ToLower(p.Name)]
		if !ok {
			imp.reportFallback(DiagJsonConstructorMemberMismatch, c.Region,
				"constructor parameter %q on serializable type %q matches no member", p.Name, t.Name)
			continue
		}
		sem.ParameterToMemberMap = append(sem.ParameterToMemberMap, ParameterMemberMapping{
			Parameter:  p.Name,
			MemberName: name,
		})
	}
	return sem
}

func memberNamesByLower(t *model.TypeDef) map[string]string {
	out := make(map[string]string)
	for _, f := range t.Fields {
		out[strings.ToLower(f.Name)] = f.Name
	}
	for _, p := range t.Properties {
		out[strings.ToLower(p.Name)] = p.Name
	}
	return out
}
