package importer

import (
	"testing"

	"github.com/cwbudde/scriptgen/internal/diag"
	"github.com/cwbudde/scriptgen/internal/model"
)

func TestComputeTypeSemanticsNonScriptableIsNotUsable(t *testing.T) {
	imp := newImp()
	widget := &model.TypeDef{
		Symbol:     model.NewSymbol("Widget"),
		Name:       "Widget",
		Attributes: model.AttributeList{model.NewAttribute(model.AttrNonScriptable)},
	}
	imp.Prepare(widget)
	sem := imp.GetTypeSemantics(widget)
	if sem.ImplKind != TypeNotUsable {
		t.Fatalf("ImplKind = %v, want TypeNotUsable", sem.ImplKind)
	}
}

func TestComputeTypeSemanticsInheritsNotUsableFromDeclaringType(t *testing.T) {
	imp := newImp()
	outer := &model.TypeDef{
		Symbol:     model.NewSymbol("Outer"),
		Name:       "Outer",
		Attributes: model.AttributeList{model.NewAttribute(model.AttrNonScriptable)},
	}
	imp.Prepare(outer)
	inner := &model.TypeDef{Symbol: model.NewSymbol("Outer.Inner"), Name: "Inner", DeclaringType: outer}
	imp.Prepare(inner)

	sem := imp.GetTypeSemantics(inner)
	if sem.ImplKind != TypeNotUsable {
		t.Fatalf("nested type of a non-scriptable declaring type should also be not-usable, got %v", sem.ImplKind)
	}
}

func TestComputeTypeSemanticsExplicitScriptName(t *testing.T) {
	imp := newImp()
	widget := &model.TypeDef{
		Symbol:     model.NewSymbol("Widget"),
		Name:       "Widget",
		Namespace:  "MyApp",
		Attributes: model.AttributeList{model.NewAttribute(model.AttrScriptName).WithString("Name", "W")},
	}
	imp.Prepare(widget)
	got := imp.GetTypeSemantics(widget).DottedScriptName
	if got != "MyApp.W" {
		t.Fatalf("DottedScriptName = %q, want MyApp.W", got)
	}
}

func TestComputeTypeSemanticsIgnoreNamespaceClearsIt(t *testing.T) {
	imp := newImp()
	widget := &model.TypeDef{
		Symbol:     model.NewSymbol("Widget"),
		Name:       "Widget",
		Namespace:  "MyApp",
		Attributes: model.AttributeList{model.NewAttribute(model.AttrIgnoreNamespace)},
	}
	imp.Prepare(widget)
	got := imp.GetTypeSemantics(widget).DottedScriptName
	if got != "Widget" {
		t.Fatalf("DottedScriptName = %q, want bare Widget", got)
	}
}

func TestComputeTypeSemanticsNestedTypeJoinsWithDollar(t *testing.T) {
	imp := newImp()
	outer := &model.TypeDef{Symbol: model.NewSymbol("Outer"), Name: "Outer", Namespace: "MyApp"}
	imp.Prepare(outer)
	inner := &model.TypeDef{Symbol: model.NewSymbol("Outer.Inner"), Name: "Inner", DeclaringType: outer}
	imp.Prepare(inner)

	got := imp.GetTypeSemantics(inner).DottedScriptName
	if got != "MyApp.Outer$Inner" {
		t.Fatalf("DottedScriptName = %q, want MyApp.Outer$Inner", got)
	}
}

func TestComputeTypeSemanticsNestedTypeWithOwnNamespaceReportsDiagnostic(t *testing.T) {
	r := diag.NewReporter()
	imp := NewImporter(Config{}, r)
	outer := &model.TypeDef{Symbol: model.NewSymbol("Outer"), Name: "Outer"}
	imp.Prepare(outer)
	inner := &model.TypeDef{
		Symbol:        model.NewSymbol("Outer.Inner"),
		Name:          "Inner",
		DeclaringType: outer,
		Attributes:    model.AttributeList{model.NewAttribute(model.AttrScriptNamespace).WithString("Namespace", "Oops")},
	}
	imp.Prepare(inner)

	if !r.HasErrors() {
		t.Fatal("a nested type carrying its own ScriptNamespace should report an error")
	}
	if r.Diagnostics()[0].Code != DiagNestedTypeHasOwnNamespace {
		t.Fatalf("diagnostic code = %d, want %d", r.Diagnostics()[0].Code, DiagNestedTypeHasOwnNamespace)
	}
}

func TestComputeTypeSemanticsUncoveredGenericSlotsAppendSuffix(t *testing.T) {
	imp := newImp()
	base := &model.TypeDef{
		Symbol:         model.NewSymbol("Base"),
		Name:           "Base",
		TypeParameters: []model.TypeParameter{{Name: "T", Index: 0}},
	}
	imp.Prepare(base)
	derived := &model.TypeDef{
		Symbol:         model.NewSymbol("Derived"),
		Name:           "Derived",
		BaseType:       base,
		TypeParameters: []model.TypeParameter{{Name: "T", Index: 0}, {Name: "U", Index: 1}},
		Attributes:     model.AttributeList{model.NewAttribute(model.AttrIncludeGenericArguments).WithBool("Value", true)},
	}
	imp.Prepare(derived)

	got := imp.GetTypeSemantics(derived).DottedScriptName
	if got != "Derived$1" {
		t.Fatalf("DottedScriptName = %q, want Derived$1 (only U is uncovered)", got)
	}
}

func TestComputeTypeSemanticsGlobalMethodsClearsScriptNameAndFlagsInstanceFields(t *testing.T) {
	r := diag.NewReporter()
	imp := NewImporter(Config{}, r)
	helpers := &model.TypeDef{
		Symbol:     model.NewSymbol("Helpers"),
		Name:       "Helpers",
		Namespace:  "MyApp",
		Attributes: model.AttributeList{model.NewAttribute(model.AttrGlobalMethods)},
		Fields:     []*model.Field{{Symbol: model.NewSymbol("Helpers.x"), Name: "x"}},
	}
	imp.Prepare(helpers)

	sem := imp.GetTypeSemantics(helpers)
	if sem.DottedScriptName != "" {
		t.Fatalf("DottedScriptName = %q, want empty for a [GlobalMethods] type", sem.DottedScriptName)
	}
	if !r.HasErrors() || r.Diagnostics()[0].Code != DiagGloballyExposedHasInstanceField {
		t.Fatalf("expected DiagGloballyExposedHasInstanceField, got %+v", r.Diagnostics())
	}
}

func TestComputeTypeSemanticsMinifiedNameIsPerAssemblyNamespaceCounter(t *testing.T) {
	imp := NewImporter(Config{Minify: true}, diag.NewReporter())
	a := &model.TypeDef{Symbol: model.NewSymbol("A"), Name: "A", Assembly: "MyApp", Namespace: "MyApp.Widgets"}
	b := &model.TypeDef{Symbol: model.NewSymbol("B"), Name: "B", Assembly: "MyApp", Namespace: "MyApp.Widgets"}
	imp.Prepare(a)
	imp.Prepare(b)

	if got := imp.GetTypeSemantics(a).DottedScriptName; got != "MyApp.Widgets.$1" {
		t.Fatalf("a's minified name = %q, want MyApp.Widgets.$1", got)
	}
	if got := imp.GetTypeSemantics(b).DottedScriptName; got != "MyApp.Widgets.$2" {
		t.Fatalf("b's minified name = %q, want MyApp.Widgets.$2", got)
	}
}
