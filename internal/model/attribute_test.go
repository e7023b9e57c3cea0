package model

import "testing"

func TestAttributeRoundTrip(t *testing.T) {
	a := NewAttribute(AttrScriptName).WithString("Name", "foo").WithBool("Minify", true).WithInt("Priority", 3)

	if got, ok := a.String("Name"); !ok || got != "foo" {
		t.Fatalf("String(Name) = %q, %v", got, ok)
	}
	if got, ok := a.Bool("Minify"); !ok || !got {
		t.Fatalf("Bool(Minify) = %v, %v", got, ok)
	}
	if got, ok := a.Int("Priority"); !ok || got != 3 {
		t.Fatalf("Int(Priority) = %v, %v", got, ok)
	}
	if _, ok := a.String("Missing"); ok {
		t.Fatal("String(Missing) should be absent")
	}
}

func TestAttributeStringWrongType(t *testing.T) {
	a := NewAttribute(AttrScriptName).WithBool("Flag", true)
	if _, ok := a.String("Flag"); ok {
		t.Fatal("String() on a bool field should report absence, not coerce")
	}
}

func TestParsePayloadRejectsNonObject(t *testing.T) {
	a := ParsePayload(AttrScriptName, "[1,2,3]")
	if a.Raw() != "{}" {
		t.Fatalf("ParsePayload should fall back to {} for a non-object payload, got %q", a.Raw())
	}
}

func TestAttributeListGetHasAll(t *testing.T) {
	list := AttributeList{
		NewAttribute(AttrScriptAlias).WithString("Name", "a"),
		NewAttribute(AttrScriptAlias).WithString("Name", "b"),
		NewAttribute(AttrNonScriptable),
	}

	if !list.Has(AttrNonScriptable) {
		t.Fatal("Has(AttrNonScriptable) should be true")
	}
	if list.Has(AttrSerializable) {
		t.Fatal("Has(AttrSerializable) should be false")
	}

	aliases := list.All(AttrScriptAlias)
	if len(aliases) != 2 {
		t.Fatalf("All(AttrScriptAlias) = %d entries, want 2", len(aliases))
	}

	first, ok := list.Get(AttrScriptAlias)
	if !ok {
		t.Fatal("Get(AttrScriptAlias) should find the first occurrence")
	}
	if name, _ := first.String("Name"); name != "a" {
		t.Fatalf("Get should return the first occurrence, got Name=%q", name)
	}
}

func TestIntAttrArg(t *testing.T) {
	if n, ok := IntAttrArg("42"); !ok || n != 42 {
		t.Fatalf("IntAttrArg(42) = %d, %v", n, ok)
	}
	if _, ok := IntAttrArg("not-a-number"); ok {
		t.Fatal("IntAttrArg should fail on non-numeric input")
	}
}
