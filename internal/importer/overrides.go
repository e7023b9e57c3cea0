package importer

import "github.com/cwbudde/scriptgen/internal/model"

// SetMethodSemantics lets an external client (plugin extension, spec
// §4.1) override the decision the pipeline would otherwise reach for m.
// It must be called before PrepareAll processes m's owner, and marks m
// as ignored by the ordinary attribute pipeline.
func (imp *Importer) SetMethodSemantics(m *model.Method, sem *MethodSemantics) {
	imp.methods[m.Symbol] = sem
	imp.ignoredMembers[m.Symbol] = true
}

// SetConstructorSemantics overrides c's decision record; see
// SetMethodSemantics.
func (imp *Importer) SetConstructorSemantics(c *model.Constructor, sem *ConstructorSemantics) {
	imp.ctors[c.Symbol] = sem
	imp.ignoredMembers[c.Symbol] = true
}

// SetPropertySemantics overrides p's decision record; see
// SetMethodSemantics.
func (imp *Importer) SetPropertySemantics(p *model.Property, sem *PropertySemantics) {
	imp.props[p.Symbol] = sem
	imp.ignoredMembers[p.Symbol] = true
}

// SetEventSemantics overrides e's decision record; see
// SetMethodSemantics.
func (imp *Importer) SetEventSemantics(e *model.Event, sem *EventSemantics) {
	imp.events[e.Symbol] = sem
	imp.ignoredMembers[e.Symbol] = true
}

// SetFieldSemantics overrides f's decision record; see
// SetMethodSemantics.
func (imp *Importer) SetFieldSemantics(f *model.Field, sem *FieldSemantics) {
	imp.fields[f.Symbol] = sem
	imp.ignoredMembers[f.Symbol] = true
}
