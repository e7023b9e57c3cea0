package model

import "fmt"

// Compilation is the full reachable symbol graph for one compilation, as
// the external parser/resolver collaborator would hand it to the core
// (spec §6). It additionally exposes a topological ordering over the
// inheritance graph, since spec §3/§4.1 require every base type to be
// `prepare`d before its derived types.
type Compilation struct {
	Types []*TypeDef
}

// TopologicalOrder returns Types ordered so that every type appears after
// its BaseType and all BaseInterfaces — the order Importer.PrepareAll
// walks in. Returns an error (never a panic: this one is a property of
// caller-supplied data, not a core-internal bug) if the graph has a cycle.
func (c *Compilation) TopologicalOrder() ([]*TypeDef, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[Symbol]int, len(c.Types))
	byAll := make(map[Symbol]*TypeDef, len(c.Types))
	for _, t := range c.Types {
		byAll[t.Symbol] = t
	}

	var order []*TypeDef
	var visit func(t *TypeDef) error
	visit = func(t *TypeDef) error {
		switch state[t.Symbol] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("cyclic inheritance involving type %q", t.Name)
		}
		state[t.Symbol] = visiting

		deps := make([]*TypeDef, 0, 1+len(t.BaseInterfaces))
		if t.BaseType != nil {
			deps = append(deps, t.BaseType)
		}
		deps = append(deps, t.BaseInterfaces...)
		if t.DeclaringType != nil {
			deps = append(deps, t.DeclaringType)
		}
		for _, dep := range deps {
			// Only recurse into types that are part of this compilation;
			// types from referenced libraries are assumed already imported.
			if _, ok := byAll[dep.Symbol]; !ok {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		state[t.Symbol] = done
		order = append(order, t)
		return nil
	}

	for _, t := range c.Types {
		if err := visit(t); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// FindType looks up a type by symbol in the Types slice. Types outside
// that slice (e.g. base types from a referenced library) are not
// searched. Returns nil if not found.
func (c *Compilation) FindType(sym Symbol) *TypeDef {
	for _, t := range c.Types {
		if t.Symbol == sym {
			return t
		}
	}
	return nil
}
