package importer

import (
	"testing"

	"github.com/cwbudde/scriptgen/internal/diag"
	"github.com/cwbudde/scriptgen/internal/model"
)

func TestProcessTypeMembersOrdersExplicitBeforePlain(t *testing.T) {
	imp := newImp()
	widget := &model.TypeDef{Symbol: model.NewSymbol("Widget"), Name: "Widget"}

	// A plain field wants the name "x"; an explicitly-named method also
	// wants "x" and, because explicit names are decided first, must win it.
	plainField := &model.Field{Symbol: model.NewSymbol("Widget.f"), Owner: widget, Name: "X"}
	explicitMethod := &model.Method{
		Symbol:             model.NewSymbol("Widget.M"),
		Owner:              widget,
		Name:               "M",
		ExplicitScriptName: true,
		Attributes:         model.AttributeList{model.NewAttribute(model.AttrScriptName).WithString("Name", "x")},
	}
	widget.Fields = []*model.Field{plainField}
	widget.Methods = []*model.Method{explicitMethod}

	imp.Prepare(widget)
	imp.processTypeMembers(widget)

	if got := imp.GetMethodSemantics(explicitMethod).Name; got != "x" {
		t.Fatalf("explicit method name = %q, want x", got)
	}
	if got := imp.GetFieldSemantics(plainField).Name; got == "x" {
		t.Fatal("the plain field should have been forced to a different name since explicit members claim first")
	}
}

func TestProcessTypeMembersOnNotUsableTypeMarksEverythingNotUsable(t *testing.T) {
	imp := newImp()
	widget := &model.TypeDef{
		Symbol:     model.NewSymbol("Widget"),
		Name:       "Widget",
		Attributes: model.AttributeList{model.NewAttribute(model.AttrNonScriptable)},
	}
	m := &model.Method{Symbol: model.NewSymbol("Widget.M"), Owner: widget, Name: "M"}
	widget.Methods = []*model.Method{m}

	imp.Prepare(widget)
	imp.processTypeMembers(widget)

	if imp.GetMethodSemantics(m).ImplKind != MethodNotUsable {
		t.Fatal("a method on a not-usable type should itself be not-usable")
	}
}

func TestProcessTypeMembersSkipsDelegates(t *testing.T) {
	imp := newImp()
	fn := &model.TypeDef{Symbol: model.NewSymbol("Fn"), Name: "Fn", Kind: model.KindDelegate}
	imp.Prepare(fn)
	// Should not panic despite t.Methods being empty/nil; a no-op.
	imp.processTypeMembers(fn)
}

func TestProcessTypeMembersSkipsIgnoredMembers(t *testing.T) {
	imp := newImp()
	widget := &model.TypeDef{Symbol: model.NewSymbol("Widget"), Name: "Widget"}
	m := &model.Method{Symbol: model.NewSymbol("Widget.M"), Owner: widget, Name: "M"}
	widget.Methods = []*model.Method{m}

	imp.Prepare(widget)
	imp.SetMethodSemantics(m, &MethodSemantics{ImplKind: MethodNativeIndexer, Name: "plugin"})
	imp.processTypeMembers(widget)

	if got := imp.GetMethodSemantics(m); got.Name != "plugin" {
		t.Fatalf("processTypeMembers must not overwrite a plugin-set semantics record, got %+v", got)
	}
}

func TestValidateSerializableTypeFlagsNonSerializableBase(t *testing.T) {
	r := diag.NewReporter()
	imp := NewImporter(Config{}, r)
	base := &model.TypeDef{Symbol: model.NewSymbol("Base"), Name: "Base"}
	imp.Prepare(base)
	derived := &model.TypeDef{
		Symbol:     model.NewSymbol("Derived"),
		Name:       "Derived",
		BaseType:   base,
		Attributes: model.AttributeList{model.NewAttribute(model.AttrSerializable)},
	}
	imp.Prepare(derived)

	found := false
	for _, d := range r.Diagnostics() {
		if d.Code == DiagSerializableBaseInvalid {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected DiagSerializableBaseInvalid, got %+v", r.Diagnostics())
	}
}

func TestValidateSerializableTypeAllowsRecordBaseAndNilBase(t *testing.T) {
	r := diag.NewReporter()
	imp := NewImporter(Config{}, r)
	record := &model.TypeDef{Symbol: model.NewSymbol("Record"), Name: "Record"}
	imp.Prepare(record)
	derived := &model.TypeDef{
		Symbol:     model.NewSymbol("Derived"),
		Name:       "Derived",
		BaseType:   record,
		Attributes: model.AttributeList{model.NewAttribute(model.AttrSerializable)},
	}
	imp.Prepare(derived)

	root := &model.TypeDef{
		Symbol:     model.NewSymbol("Root"),
		Name:       "Root",
		Attributes: model.AttributeList{model.NewAttribute(model.AttrSerializable)},
	}
	imp.Prepare(root)

	for _, d := range r.Diagnostics() {
		if d.Code == DiagSerializableBaseInvalid {
			t.Fatalf("a Record-derived or base-less serializable type must not be flagged, got %+v", r.Diagnostics())
		}
	}
}

func TestValidateSerializableTypeFlagsInstanceEventAndVirtualMembers(t *testing.T) {
	r := diag.NewReporter()
	imp := NewImporter(Config{}, r)
	widget := &model.TypeDef{
		Symbol:     model.NewSymbol("Widget"),
		Name:       "Widget",
		Attributes: model.AttributeList{model.NewAttribute(model.AttrSerializable)},
	}
	widget.Events = []*model.Event{{Symbol: model.NewSymbol("Widget.E"), Owner: widget, Name: "E"}}
	widget.Methods = []*model.Method{{Symbol: model.NewSymbol("Widget.M"), Owner: widget, Name: "M", IsVirtual: true}}
	widget.Properties = []*model.Property{{Symbol: model.NewSymbol("Widget.P"), Owner: widget, Name: "P", IsOverridable: true}}

	imp.Prepare(widget)

	codes := map[int]bool{}
	for _, d := range r.Diagnostics() {
		codes[d.Code] = true
	}
	if !codes[DiagSerializableHasInstanceEvent] {
		t.Error("expected DiagSerializableHasInstanceEvent")
	}
	if !codes[DiagSerializableHasVirtualMember] {
		t.Error("expected DiagSerializableHasVirtualMember")
	}
}

func TestValidateSerializableInterfaceFlagsInstanceMethods(t *testing.T) {
	r := diag.NewReporter()
	imp := NewImporter(Config{}, r)
	iface := &model.TypeDef{
		Symbol:     model.NewSymbol("IWidget"),
		Name:       "IWidget",
		Kind:       model.KindInterface,
		Attributes: model.AttributeList{model.NewAttribute(model.AttrSerializable)},
	}
	iface.Methods = []*model.Method{{Symbol: model.NewSymbol("IWidget.M"), Owner: iface, Name: "M"}}
	imp.Prepare(iface)

	found := false
	for _, d := range r.Diagnostics() {
		if d.Code == DiagSerializableInterfaceMethod {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected DiagSerializableInterfaceMethod, got %+v", r.Diagnostics())
	}
}
