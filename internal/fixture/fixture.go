// Package fixture loads a model.Compilation from a YAML description
// (spec_full §10.2/§10.5). It stands in for the external parser and
// type resolver spec §6 says this repository does not implement: tests
// and the CLI's `compile` subcommand both build their input compilation
// this way rather than from source text.
package fixture

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/scriptgen/internal/model"
)

// Doc is the YAML document shape a fixture file carries.
type Doc struct {
	Types []TypeDoc `yaml:"types"`
}

type AttributeDoc struct {
	Name    string         `yaml:"name"`
	Payload map[string]any `yaml:"payload"`
}

type ParameterDoc struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	TypeName string `yaml:"typeName"`
	ByRef    bool   `yaml:"byRef"`
	Out      bool   `yaml:"out"`
	Params   bool   `yaml:"params"`
}

type MethodDoc struct {
	Name               string         `yaml:"name"`
	ExplicitScriptName bool           `yaml:"explicitScriptName"`
	Parameters         []ParameterDoc `yaml:"parameters"`
	ReturnTypeName     string         `yaml:"returnTypeName"`
	IsStatic           bool           `yaml:"static"`
	IsVirtual          bool           `yaml:"virtual"`
	IsOverride         bool           `yaml:"override"`
	IsAbstract         bool           `yaml:"abstract"`
	BaseMethod         string         `yaml:"baseMethod"`
	Attributes         []AttributeDoc `yaml:"attributes"`
}

type ConstructorDoc struct {
	Name       string         `yaml:"name"`
	Parameters []ParameterDoc `yaml:"parameters"`
	IsStatic   bool           `yaml:"static"`
	Attributes []AttributeDoc `yaml:"attributes"`
}

type PropertyDoc struct {
	Name               string         `yaml:"name"`
	ExplicitScriptName bool           `yaml:"explicitScriptName"`
	IsIndexer          bool           `yaml:"indexer"`
	HasGetter          bool           `yaml:"hasGetter"`
	HasSetter          bool           `yaml:"hasSetter"`
	IsAutoProperty     bool           `yaml:"auto"`
	IsOverride         bool           `yaml:"override"`
	IsOverridable      bool           `yaml:"overridable"`
	Attributes         []AttributeDoc `yaml:"attributes"`
}

type EventDoc struct {
	Name               string         `yaml:"name"`
	ExplicitScriptName bool           `yaml:"explicitScriptName"`
	Attributes         []AttributeDoc `yaml:"attributes"`
}

type FieldDoc struct {
	Name               string         `yaml:"name"`
	ExplicitScriptName bool           `yaml:"explicitScriptName"`
	IsConst            bool           `yaml:"const"`
	ConstantValue      any            `yaml:"value"`
	Attributes         []AttributeDoc `yaml:"attributes"`
}

type TypeDoc struct {
	Symbol         string           `yaml:"symbol"`
	Kind           string           `yaml:"kind"`
	Namespace      string           `yaml:"namespace"`
	Name           string           `yaml:"name"`
	Assembly       string           `yaml:"assembly"`
	TypeParameters []string         `yaml:"typeParameters"`
	DeclaringType  string           `yaml:"declaringType"`
	BaseType       string           `yaml:"baseType"`
	BaseInterfaces []string         `yaml:"baseInterfaces"`
	IsSealed       bool             `yaml:"sealed"`
	IsStatic       bool             `yaml:"static"`
	IsAbstract     bool             `yaml:"abstract"`
	Attributes     []AttributeDoc   `yaml:"attributes"`
	Methods        []MethodDoc      `yaml:"methods"`
	Constructors   []ConstructorDoc `yaml:"constructors"`
	Properties     []PropertyDoc    `yaml:"properties"`
	Events         []EventDoc       `yaml:"events"`
	Fields         []FieldDoc       `yaml:"fields"`
}

// Load reads a fixture YAML file and builds a model.Compilation. Type
// references (BaseType, BaseInterfaces, DeclaringType, BaseMethod) are
// resolved by symbol in a second pass once every TypeDef exists, since
// YAML has no forward-reference mechanism of its own.
func Load(path string) (*model.Compilation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	var doc Doc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: parsing %s: %w", path, err)
	}
	return Build(&doc)
}

// Build turns a parsed Doc into a model.Compilation.
func Build(doc *Doc) (*model.Compilation, error) {
	types := make(map[string]*model.TypeDef, len(doc.Types))
	methodsBySymbol := make(map[string]*model.Method)

	for _, td := range doc.Types {
		t := &model.TypeDef{
			Symbol:    model.NewSymbol(td.Symbol),
			Kind:      parseKind(td.Kind),
			Namespace: td.Namespace,
			Name:      td.Name,
			Assembly:  td.Assembly,
			IsSealed:  td.IsSealed,
			IsStatic:  td.IsStatic,
			IsAbstract: td.IsAbstract,
		}
		for i, tp := range td.TypeParameters {
			t.TypeParameters = append(t.TypeParameters, model.TypeParameter{Name: tp, Index: i})
		}
		t.Attributes = buildAttributes(td.Attributes)
		types[td.Symbol] = t
	}

	for _, td := range doc.Types {
		t := types[td.Symbol]
		if td.DeclaringType != "" {
			t.DeclaringType = types[td.DeclaringType]
		}
		if td.BaseType != "" {
			t.BaseType = types[td.BaseType]
		}
		for _, ifaceSym := range td.BaseInterfaces {
			if iface, ok := types[ifaceSym]; ok {
				t.BaseInterfaces = append(t.BaseInterfaces, iface)
			}
		}
		t.AllBaseTypes = linearizeBaseTypes(t)

		for _, md := range td.Methods {
			m := &model.Method{
				Symbol:             model.NewSymbol(td.Symbol + "." + md.Name),
				Owner:              t,
				Name:               md.Name,
				ExplicitScriptName: md.ExplicitScriptName,
				ReturnTypeName:     md.ReturnTypeName,
				IsStatic:           md.IsStatic,
				IsVirtual:          md.IsVirtual,
				IsOverride:         md.IsOverride,
				IsAbstract:         md.IsAbstract,
				Attributes:         buildAttributes(md.Attributes),
			}
			for _, pd := range md.Parameters {
				m.Parameters = append(m.Parameters, buildParameter(pd))
			}
			t.Methods = append(t.Methods, m)
			methodsBySymbol[m.Symbol.String()] = m
		}

		for _, cd := range td.Constructors {
			c := &model.Constructor{
				Symbol:     model.NewSymbol(td.Symbol + ".ctor." + cd.Name),
				Owner:      t,
				Name:       cd.Name,
				IsStatic:   cd.IsStatic,
				Attributes: buildAttributes(cd.Attributes),
			}
			for _, pd := range cd.Parameters {
				c.Parameters = append(c.Parameters, buildParameter(pd))
			}
			t.Constructors = append(t.Constructors, c)
		}

		for _, pdoc := range td.Properties {
			p := &model.Property{
				Symbol:             model.NewSymbol(td.Symbol + "." + pdoc.Name),
				Owner:              t,
				Name:               pdoc.Name,
				ExplicitScriptName: pdoc.ExplicitScriptName,
				IsIndexer:          pdoc.IsIndexer,
				IsAutoProperty:     pdoc.IsAutoProperty,
				IsOverride:         pdoc.IsOverride,
				IsOverridable:      pdoc.IsOverridable,
				Attributes:         buildAttributes(pdoc.Attributes),
			}
			if pdoc.HasGetter {
				p.Getter = &model.Method{Symbol: model.NewSymbol(p.Symbol.String() + ".get"), Owner: t, Name: "get_" + pdoc.Name, IsStatic: false}
			}
			if pdoc.HasSetter {
				p.Setter = &model.Method{Symbol: model.NewSymbol(p.Symbol.String() + ".set"), Owner: t, Name: "set_" + pdoc.Name, IsStatic: false}
			}
			t.Properties = append(t.Properties, p)
		}

		for _, edoc := range td.Events {
			e := &model.Event{
				Symbol:             model.NewSymbol(td.Symbol + "." + edoc.Name),
				Owner:              t,
				Name:               edoc.Name,
				ExplicitScriptName: edoc.ExplicitScriptName,
				Attributes:         buildAttributes(edoc.Attributes),
			}
			e.AddMethod = &model.Method{Symbol: model.NewSymbol(e.Symbol.String() + ".add"), Owner: t, Name: "add_" + edoc.Name}
			e.RemoveMethod = &model.Method{Symbol: model.NewSymbol(e.Symbol.String() + ".remove"), Owner: t, Name: "remove_" + edoc.Name}
			t.Events = append(t.Events, e)
		}

		for _, fdoc := range td.Fields {
			f := &model.Field{
				Symbol:             model.NewSymbol(td.Symbol + "." + fdoc.Name),
				Owner:              t,
				Name:               fdoc.Name,
				ExplicitScriptName: fdoc.ExplicitScriptName,
				IsConst:            fdoc.IsConst,
				ConstantValue:      fdoc.ConstantValue,
				Attributes:         buildAttributes(fdoc.Attributes),
			}
			t.Fields = append(t.Fields, f)
		}
	}

	for _, td := range doc.Types {
		t := types[td.Symbol]
		for i, md := range td.Methods {
			if md.BaseMethod != "" {
				if base, ok := methodsBySymbol[md.BaseMethod]; ok {
					t.Methods[i].BaseMethod = base
				}
			}
		}
	}

	comp := &model.Compilation{}
	for _, td := range doc.Types {
		comp.Types = append(comp.Types, types[td.Symbol])
	}
	return comp, nil
}

func buildParameter(pd ParameterDoc) model.Parameter {
	return model.Parameter{
		Name:     pd.Name,
		Type:     model.NewSymbol(pd.Type),
		TypeName: pd.TypeName,
		ByRef:    pd.ByRef,
		Out:      pd.Out,
		Params:   pd.Params,
	}
}

func buildAttributes(docs []AttributeDoc) model.AttributeList {
	out := make(model.AttributeList, 0, len(docs))
	for _, d := range docs {
		attr := model.NewAttribute(d.Name)
		for k, v := range d.Payload {
			switch val := v.(type) {
			case string:
				attr = attr.WithString(k, val)
			case bool:
				attr = attr.WithBool(k, val)
			case int:
				attr = attr.WithInt(k, val)
			case float64:
				attr = attr.WithInt(k, int(val))
			}
		}
		out = append(out, attr)
	}
	return out
}

func parseKind(s string) model.TypeKind {
	switch s {
	case "interface":
		return model.KindInterface
	case "struct":
		return model.KindStruct
	case "enum":
		return model.KindEnum
	case "delegate":
		return model.KindDelegate
	default:
		return model.KindClass
	}
}

func linearizeBaseTypes(t *model.TypeDef) []*model.TypeDef {
	var chain []*model.TypeDef
	for cur := t.BaseType; cur != nil; cur = cur.BaseType {
		chain = append([]*model.TypeDef{cur}, chain...)
	}
	return chain
}
