package compile

import (
	"testing"

	"github.com/cwbudde/scriptgen/internal/manifest"
	"github.com/cwbudde/scriptgen/internal/model"
	"github.com/cwbudde/scriptgen/internal/script"
)

func TestRunImportsAndRewritesEveryBody(t *testing.T) {
	widget := &model.TypeDef{Symbol: model.NewSymbol("Widget"), Name: "Widget"}
	m := &model.Method{Symbol: model.NewSymbol("Widget.Go"), Owner: widget, Name: "Go"}
	widget.Methods = []*model.Method{m}
	comp := &model.Compilation{Types: []*model.TypeDef{widget}}

	body := script.Blk(
		script.Var("x", script.Num(1)),
		script.ExprS(script.Call(script.Ident("use"), script.Ident("x"))),
	)
	bodies := map[model.Symbol]*script.Block{m.Symbol: body}

	unit, err := Run(comp, bodies, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if unit.Importer.GetMethodSemantics(m).Name != "go" {
		t.Fatalf("method should have been imported and named go, got %+v", unit.Importer.GetMethodSemantics(m))
	}
	rewritten, ok := unit.Bodies[m.Symbol]
	if !ok {
		t.Fatal("Bodies missing the rewritten entry for m.Symbol")
	}
	if _, ok := rewritten.Statements[0].(*script.VarDecl); !ok {
		t.Fatalf("Statements[0] = %T, want the hoisted *VarDecl", rewritten.Statements[0])
	}
}

func TestRunPropagatesImportDiagnostics(t *testing.T) {
	widget := &model.TypeDef{
		Symbol:         model.NewSymbol("List"),
		Name:           "List",
		TypeParameters: []model.TypeParameter{{Name: "T", Index: 0}},
	}
	comp := &model.Compilation{Types: []*model.TypeDef{widget}}

	unit, err := Run(comp, nil, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(unit.Diagnostics) == 0 {
		t.Fatal("expected the generic-arguments-unspecified diagnostic to surface through Unit.Diagnostics")
	}
}

func TestRunReturnsErrorOnInheritanceCycle(t *testing.T) {
	a := &model.TypeDef{Symbol: model.NewSymbol("A"), Name: "A"}
	b := &model.TypeDef{Symbol: model.NewSymbol("B"), Name: "B", BaseType: a}
	a.BaseType = b
	comp := &model.Compilation{Types: []*model.TypeDef{a, b}}

	if _, err := Run(comp, nil, Options{}); err == nil {
		t.Fatal("Run() should return an error for a cyclic compilation")
	}
}

func TestBuildManifestSkipsNotUsableTypesAndCollectsMembers(t *testing.T) {
	usable := &model.TypeDef{Symbol: model.NewSymbol("Widget"), Name: "Widget"}
	m := &model.Method{Symbol: model.NewSymbol("Widget.Go"), Owner: usable, Name: "Go"}
	usable.Methods = []*model.Method{m}

	notUsable := &model.TypeDef{
		Symbol:     model.NewSymbol("Hidden"),
		Name:       "Hidden",
		Attributes: model.AttributeList{model.NewAttribute(model.AttrNonScriptable)},
	}
	comp := &model.Compilation{Types: []*model.TypeDef{usable, notUsable}}

	unit, err := Run(comp, nil, Options{})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	mf := BuildManifest(comp, unit.Importer)
	if mf.Major != manifest.CurrentMajor || mf.Minor != manifest.CurrentMinor {
		t.Fatalf("manifest version = %d.%d, want current", mf.Major, mf.Minor)
	}
	if len(mf.Types) != 1 || mf.Types[0].SourceSymbol != "Widget" {
		t.Fatalf("Types = %+v, want only Widget (Hidden is not-usable)", mf.Types)
	}
	if len(mf.Types[0].Members) != 1 || mf.Types[0].Members[0].ScriptName != "go" {
		t.Fatalf("Members = %+v, want one member named go", mf.Types[0].Members)
	}
}
