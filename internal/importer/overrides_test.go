package importer

import (
	"testing"

	"github.com/cwbudde/scriptgen/internal/model"
)

func TestSetMethodSemanticsOverridesAndMarksIgnored(t *testing.T) {
	imp := newImp()
	widget := &model.TypeDef{Symbol: model.NewSymbol("Widget"), Name: "Widget"}
	m := &model.Method{Symbol: model.NewSymbol("Widget.M"), Owner: widget, Name: "M"}
	prepareType(imp, widget)

	imp.SetMethodSemantics(m, &MethodSemantics{ImplKind: MethodNativeIndexer, Name: "idx"})

	if got := imp.GetMethodSemantics(m); got.ImplKind != MethodNativeIndexer || got.Name != "idx" {
		t.Fatalf("GetMethodSemantics() = %+v, want the overridden record", got)
	}
	if !imp.ignoredMembers[m.Symbol] {
		t.Fatal("SetMethodSemantics should mark the member ignored by the ordinary pipeline")
	}
}

func TestSetPropertyConstructorEventFieldSemantics(t *testing.T) {
	imp := newImp()
	widget := &model.TypeDef{Symbol: model.NewSymbol("Widget"), Name: "Widget"}
	prepareType(imp, widget)

	p := &model.Property{Symbol: model.NewSymbol("Widget.P"), Owner: widget, Name: "P"}
	c := &model.Constructor{Symbol: model.NewSymbol("Widget.C"), Owner: widget}
	e := &model.Event{Symbol: model.NewSymbol("Widget.E"), Owner: widget, Name: "E"}
	f := &model.Field{Symbol: model.NewSymbol("Widget.F"), Owner: widget, Name: "F"}

	imp.SetPropertySemantics(p, &PropertySemantics{ImplKind: PropertyField, FieldName: "p"})
	imp.SetConstructorSemantics(c, &ConstructorSemantics{ImplKind: CtorInlineCode})
	imp.SetEventSemantics(e, &EventSemantics{ImplKind: PropertyField, FieldName: "e"})
	imp.SetFieldSemantics(f, &FieldSemantics{ImplKind: FieldBooleanConstant, ConstantValue: true})

	if imp.GetPropertySemantics(p).FieldName != "p" {
		t.Fatal("SetPropertySemantics did not take effect")
	}
	if imp.GetConstructorSemantics(c).ImplKind != CtorInlineCode {
		t.Fatal("SetConstructorSemantics did not take effect")
	}
	if imp.GetEventSemantics(e).FieldName != "e" {
		t.Fatal("SetEventSemantics did not take effect")
	}
	if imp.GetFieldSemantics(f).ConstantValue != true {
		t.Fatal("SetFieldSemantics did not take effect")
	}
	for _, sym := range []model.Symbol{p.Symbol, c.Symbol, e.Symbol, f.Symbol} {
		if !imp.ignoredMembers[sym] {
			t.Fatalf("symbol %v should be marked ignored", sym)
		}
	}
}
