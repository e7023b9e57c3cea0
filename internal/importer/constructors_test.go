package importer

import (
	"testing"

	"github.com/cwbudde/scriptgen/internal/diag"
	"github.com/cwbudde/scriptgen/internal/model"
)

func TestProcessConstructorsUnnamedThenSequentiallyNumbered(t *testing.T) {
	imp := newImp()
	widget := &model.TypeDef{Symbol: model.NewSymbol("Widget"), Name: "Widget"}
	c1 := &model.Constructor{Symbol: model.NewSymbol("Widget.ctor1"), Owner: widget}
	c2 := &model.Constructor{Symbol: model.NewSymbol("Widget.ctor2"), Owner: widget}
	c3 := &model.Constructor{Symbol: model.NewSymbol("Widget.ctor3"), Owner: widget}
	widget.Constructors = []*model.Constructor{c1, c2, c3}
	prepareType(imp, widget)

	imp.processConstructors(widget)

	if got := imp.GetConstructorSemantics(c1); got.ImplKind != CtorUnnamed || got.Name != "$ctor" {
		t.Fatalf("c1 = %+v, want unnamed $ctor", got)
	}
	if got := imp.GetConstructorSemantics(c2); got.ImplKind != CtorNamed || got.Name != "$ctor2" {
		t.Fatalf("c2 = %+v, want named $ctor2", got)
	}
	if got := imp.GetConstructorSemantics(c3); got.ImplKind != CtorNamed || got.Name != "$ctor3" {
		t.Fatalf("c3 = %+v, want named $ctor3", got)
	}
}

func TestComputeConstructorSemanticsStaticBecomesCctor(t *testing.T) {
	imp := newImp()
	widget := &model.TypeDef{Symbol: model.NewSymbol("Widget"), Name: "Widget"}
	prepareType(imp, widget)
	idx := 1
	c := &model.Constructor{Symbol: model.NewSymbol("Widget.cctor"), Owner: widget, IsStatic: true}
	sem := imp.computeConstructorSemantics(widget, c, &idx)
	if sem.ImplKind != CtorStaticMethod || sem.Name != "$cctor" {
		t.Fatalf("sem = %+v, want static $cctor", sem)
	}
}

func TestComputeConstructorSemanticsNamedOverload(t *testing.T) {
	imp := newImp()
	widget := &model.TypeDef{Symbol: model.NewSymbol("Widget"), Name: "Widget"}
	prepareType(imp, widget)
	idx := 1
	c := &model.Constructor{Symbol: model.NewSymbol("Widget.FromSize"), Owner: widget, Name: "FromSize"}
	sem := imp.computeConstructorSemantics(widget, c, &idx)
	if sem.ImplKind != CtorNamed || sem.Name != "$FromSize" {
		t.Fatalf("sem = %+v, want named $FromSize", sem)
	}
}

func TestComputeConstructorSemanticsInlineCode(t *testing.T) {
	imp := newImp()
	widget := &model.TypeDef{Symbol: model.NewSymbol("Widget"), Name: "Widget"}
	prepareType(imp, widget)
	idx := 1
	c := &model.Constructor{
		Symbol: model.NewSymbol("Widget.ctor"), Owner: widget,
		Attributes: model.AttributeList{model.NewAttribute(model.AttrInlineCode).WithString("Template", "{}")},
	}
	sem := imp.computeConstructorSemantics(widget, c, &idx)
	if sem.ImplKind != CtorInlineCode || sem.InlineTemplate != "{}" {
		t.Fatalf("sem = %+v, want inline code {}", sem)
	}
}

func TestComputeConstructorSemanticsAlternateSignatureGeneratesNoCode(t *testing.T) {
	imp := newImp()
	widget := &model.TypeDef{Symbol: model.NewSymbol("Widget"), Name: "Widget"}
	prepareType(imp, widget)
	idx := 1
	c := &model.Constructor{
		Symbol: model.NewSymbol("Widget.FromSize"), Owner: widget, Name: "FromSize",
		Attributes: model.AttributeList{model.NewAttribute(model.AttrAlternateSignature)},
	}
	sem := imp.computeConstructorSemantics(widget, c, &idx)
	if sem.ImplKind != CtorNamed || sem.Name != "$FromSize" {
		t.Fatalf("sem = %+v, want named $FromSize", sem)
	}
	if sem.GenerateCode {
		t.Fatal("AlternateSignature shares a name but must not generate code")
	}
}

func TestComputeConstructorSemanticsObjectLiteralBecomesJson(t *testing.T) {
	imp := newImp()
	widget := &model.TypeDef{Symbol: model.NewSymbol("Widget"), Name: "Widget"}
	widget.Fields = []*model.Field{{Symbol: model.NewSymbol("Widget.Width"), Owner: widget, Name: "Width"}}
	prepareType(imp, widget)
	idx := 1
	c := &model.Constructor{
		Symbol: model.NewSymbol("Widget.ctor"), Owner: widget,
		Parameters: []model.Parameter{{Name: "width"}},
		Attributes: model.AttributeList{model.NewAttribute(model.AttrObjectLiteral)},
	}
	sem := imp.computeConstructorSemantics(widget, c, &idx)
	if sem.ImplKind != CtorJson || len(sem.ParameterToMemberMap) != 1 {
		t.Fatalf("sem = %+v, want CtorJson binding width", sem)
	}
}

func TestComputeConstructorSemanticsParamsArrayOnImportedTypeBecomesDictionaryTemplate(t *testing.T) {
	imp := newImp()
	widget := &model.TypeDef{
		Symbol:     model.NewSymbol("Widget"),
		Name:       "Widget",
		Attributes: model.AttributeList{model.NewAttribute(model.AttrImportedAttr)},
	}
	prepareType(imp, widget)
	idx := 1
	c := &model.Constructor{
		Symbol:     model.NewSymbol("Widget.ctor"), Owner: widget,
		Parameters: []model.Parameter{{Name: "options", Params: true}},
	}
	sem := imp.computeConstructorSemantics(widget, c, &idx)
	if sem.ImplKind != CtorInlineCode || sem.InlineTemplate != "{%options}" {
		t.Fatalf("sem = %+v, want an inline dictionary-construction template", sem)
	}
}

func TestComputeConstructorSemanticsParamsArrayOnNonImportedTypeFallsThrough(t *testing.T) {
	imp := newImp()
	widget := &model.TypeDef{Symbol: model.NewSymbol("Widget"), Name: "Widget"}
	prepareType(imp, widget)
	idx := 1
	c := &model.Constructor{
		Symbol:     model.NewSymbol("Widget.ctor"), Owner: widget,
		Parameters: []model.Parameter{{Name: "options", Params: true}},
	}
	sem := imp.computeConstructorSemantics(widget, c, &idx)
	if sem.ImplKind != CtorUnnamed || sem.Name != "$ctor" {
		t.Fatalf("sem = %+v, want the ordinary unnamed $ctor path on a non-imported type", sem)
	}
}

func TestComputeConstructorSemanticsJsonMapsParametersByLowercaseMemberName(t *testing.T) {
	r := diag.NewReporter()
	imp := NewImporter(Config{}, r)
	widget := &model.TypeDef{
		Symbol:     model.NewSymbol("Widget"),
		Name:       "Widget",
		Attributes: model.AttributeList{model.NewAttribute(model.AttrSerializable)},
	}
	widget.Fields = []*model.Field{{Symbol: model.NewSymbol("Widget.Width"), Owner: widget, Name: "Width"}}
	widget.Properties = []*model.Property{{Symbol: model.NewSymbol("Widget.Height"), Owner: widget, Name: "Height"}}
	prepareType(imp, widget)

	idx := 1
	c := &model.Constructor{
		Symbol: model.NewSymbol("Widget.ctor"), Owner: widget,
		Parameters: []model.Parameter{{Name: "width"}, {Name: "height"}, {Name: "bogus"}},
	}
	sem := imp.computeConstructorSemantics(widget, c, &idx)
	if sem.ImplKind != CtorJson {
		t.Fatalf("ImplKind = %v, want CtorJson", sem.ImplKind)
	}
	if len(sem.ParameterToMemberMap) != 2 {
		t.Fatalf("ParameterToMemberMap = %+v, want 2 resolved mappings (bogus should be dropped)", sem.ParameterToMemberMap)
	}
	if !r.HasErrors() || r.Diagnostics()[0].Code != DiagJsonConstructorMemberMismatch {
		t.Fatalf("expected DiagJsonConstructorMemberMismatch for the unmatched parameter, got %+v", r.Diagnostics())
	}
}
