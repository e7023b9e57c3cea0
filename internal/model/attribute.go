package model

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Attribute is one occurrence of a metadata attribute on a type or member.
// Real compiled libraries carry attribute arguments as a blob the loader
// doesn't interpret; this is modeled here as a JSON document, mirroring
// how the teacher's jsonvalue package represents DWScript JSON values,
// and queried with gjson/sjson instead of a hand-rolled path walker —
// spec §6 only needs "by attribute full name, returns a typed payload or
// its absence", and gjson's dotted-path Get is exactly that interface.
type Attribute struct {
	FullName string
	payload  string // JSON object, e.g. `{"Name":"foo","Minify":true}`
}

// NewAttribute builds an Attribute with an empty payload.
func NewAttribute(fullName string) Attribute {
	return Attribute{FullName: fullName, payload: "{}"}
}

// WithString returns a copy of a with field set to a string value.
func (a Attribute) WithString(field, value string) Attribute {
	out, err := sjson.Set(a.payload, field, value)
	if err != nil {
		return a
	}
	a.payload = out
	return a
}

// WithBool returns a copy of a with field set to a bool value.
func (a Attribute) WithBool(field string, value bool) Attribute {
	out, err := sjson.Set(a.payload, field, value)
	if err != nil {
		return a
	}
	a.payload = out
	return a
}

// WithInt returns a copy of a with field set to an integer value.
func (a Attribute) WithInt(field string, value int) Attribute {
	out, err := sjson.Set(a.payload, field, value)
	if err != nil {
		return a
	}
	a.payload = out
	return a
}

// String returns the string payload at field, and whether it was present
// and actually a string (as opposed to absent/null/wrong-typed).
func (a Attribute) String(field string) (string, bool) {
	r := gjson.Get(a.payload, field)
	if !r.Exists() || r.Type != gjson.String {
		return "", false
	}
	return r.String(), true
}

// Bool returns the bool payload at field, and whether it was present.
func (a Attribute) Bool(field string) (bool, bool) {
	r := gjson.Get(a.payload, field)
	if !r.Exists() {
		return false, false
	}
	return r.Bool(), true
}

// Int returns the integer payload at field, and whether it was present.
func (a Attribute) Int(field string) (int, bool) {
	r := gjson.Get(a.payload, field)
	if !r.Exists() {
		return 0, false
	}
	return int(r.Int()), true
}

// Raw returns the underlying JSON payload unchanged.
func (a Attribute) Raw() string { return a.payload }

// ParsePayload replaces a's payload wholesale, validating it is an object.
func ParsePayload(fullName, jsonPayload string) Attribute {
	if !gjson.Valid(jsonPayload) || !gjson.Parse(jsonPayload).IsObject() {
		jsonPayload = "{}"
	}
	return Attribute{FullName: fullName, payload: jsonPayload}
}

// AttributeList is the attribute set carried by a type or member.
type AttributeList []Attribute

// Get returns the first attribute with the given full name, mirroring
// spec §6's "Attribute reader: by attribute full name, returns a typed
// payload or its absence".
func (l AttributeList) Get(fullName string) (Attribute, bool) {
	for _, a := range l {
		if a.FullName == fullName {
			return a, true
		}
	}
	return Attribute{}, false
}

// Has reports whether any attribute with the given full name is present.
func (l AttributeList) Has(fullName string) bool {
	_, ok := l.Get(fullName)
	return ok
}

// All returns every attribute with the given full name, since some
// attributes (script alias lists, for instance) are legally repeatable.
func (l AttributeList) All(fullName string) []Attribute {
	var out []Attribute
	for _, a := range l {
		if a.FullName == fullName {
			out = append(out, a)
		}
	}
	return out
}

// Well-known attribute full names the Importer consults. Kept as
// constants so importer code never typos a string literal.
const (
	AttrNonScriptable                   = "System.NonScriptableAttribute"
	AttrScriptName                      = "System.Runtime.CompilerServices.ScriptNameAttribute"
	AttrScriptNamespace                 = "System.Runtime.CompilerServices.ScriptNamespaceAttribute"
	AttrIgnoreNamespace                 = "System.Runtime.CompilerServices.IgnoreNamespaceAttribute"
	AttrPreserveCase                    = "System.Runtime.CompilerServices.PreserveCaseAttribute"
	AttrImportedAttr                    = "System.Runtime.CompilerServices.ImportedAttribute"
	AttrSerializable                    = "System.SerializableAttribute"
	AttrNamedValues                     = "System.Runtime.CompilerServices.NamedValuesAttribute"
	AttrGlobalMethods                   = "System.Runtime.CompilerServices.GlobalMethodsAttribute"
	AttrMixin                           = "System.Runtime.CompilerServices.MixinAttribute"
	AttrIncludeGenericArguments         = "System.Runtime.CompilerServices.IncludeGenericArgumentsAttribute"
	AttrIntrinsicOperator               = "System.Runtime.CompilerServices.IntrinsicOperatorAttribute"
	AttrIntrinsicProperty               = "System.Runtime.CompilerServices.IntrinsicPropertyAttribute"
	AttrScriptSkip                      = "System.Runtime.CompilerServices.ScriptSkipAttribute"
	AttrScriptAlias                     = "System.Runtime.CompilerServices.ScriptAliasAttribute"
	AttrInlineCode                      = "System.Runtime.CompilerServices.InlineCodeAttribute"
	AttrInstanceMethodOnFirstArgument   = "System.Runtime.CompilerServices.InstanceMethodOnFirstArgumentAttribute"
	AttrEnumerateAsArray                = "System.Runtime.CompilerServices.EnumerateAsArrayAttribute"
	AttrAlternateSignature              = "System.Runtime.CompilerServices.AlternateSignatureAttribute"
	AttrObjectLiteral                   = "System.Runtime.CompilerServices.ObjectLiteralAttribute"
)

// IntAttrArg converts a textual integer attribute argument, reporting
// false when s is not a decimal integer.
func IntAttrArg(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
