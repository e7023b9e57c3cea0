// Package source tracks source-code positions and regions for diagnostics.
//
// The rest of the core never reads source text itself — the parser and
// resolver that produce the typed syntax tree are external collaborators
// (see spec §1) — but every diagnostic the Importer and driver emit still
// needs to point somewhere, so a minimal position/region model travels
// with the symbol graph.
package source

import "fmt"

// Position is a single point in a source file.
type Position struct {
	File   string
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// IsValid reports whether the position carries real line/column info.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Region is a span of source used to anchor a diagnostic. Start is always
// populated; End is optional (zero value means "point region").
type Region struct {
	Start Position
	End   Position
}

func (r Region) String() string {
	if !r.End.IsValid() || r.End == r.Start {
		return r.Start.String()
	}
	return fmt.Sprintf("%s-%d:%d", r.Start.String(), r.End.Line, r.End.Column)
}

// PointRegion builds a Region that starts and ends at the same position.
func PointRegion(p Position) Region {
	return Region{Start: p, End: p}
}
