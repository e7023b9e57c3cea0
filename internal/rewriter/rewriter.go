// Package rewriter implements the State-Machine Rewriter (spec §4.3): it
// lowers a method body containing goto/label control flow and
// try/catch/finally blocks into an equivalent loop-and-switch dispatch
// form that the target script engine's structured control flow can
// express directly, since the script language has no goto of its own.
//
// It is grounded on the teacher's internal/bytecode.Assembler: a single
// pass that numbers basic blocks and threads jumps between them,
// generalized here to numbered *sections* threaded through a switch
// inside a loop instead of raw jump offsets.
package rewriter

import (
	"fmt"

	"github.com/cwbudde/scriptgen/internal/diag"
	"github.com/cwbudde/scriptgen/internal/script"
)

// Rewriter carries the small amount of state a single RewriteBody call
// needs: fresh name counters for the state and loop variables it
// introduces. A zero-value Rewriter is ready to use; callers should not
// reuse one across unrelated method bodies without calling Reset, since
// the counters are meant to read "$state1", "$loop1" per method the way
// the teacher's label allocator restarts per function.
type Rewriter struct {
	stateCounter int
	loopCounter  int
}

// New returns a ready-to-use Rewriter.
func New() *Rewriter { return &Rewriter{} }

// Reset clears per-method counters so the same Rewriter can process
// another method body with the same $state1/$loop1 naming.
func (r *Rewriter) Reset() { r.stateCounter = 0; r.loopCounter = 0 }

// RewriteBody first hoists variable declarations (see hoistVariables),
// then lowers block into its state-machine form when it contains any
// Goto statement reachable outside a FunctionExpr (which stays opaque
// per spec §4.3); a body with no goto comes back with only the hoisting
// applied, and one with neither a goto nor a VarDecl is returned
// unchanged, satisfying the Idempotence property (spec §8).
func (r *Rewriter) RewriteBody(block *script.Block) *script.Block {
	block = r.hoistVariables(block)
	if !containsGoto(block) {
		return block
	}

	r.stateCounter++
	r.loopCounter++
	stateVar := fmt.Sprintf("$state%d", r.stateCounter)
	loopLabel := fmt.Sprintf("$loop%d", r.loopCounter)

	sections, labelIndex := splitIntoSections(block.Statements)
	cases := make([]script.CaseGroup, 0, len(sections))
	for i, sect := range sections {
		rewritten := rewriteGotos(sect, stateVar, loopLabel, labelIndex)
		if !endsInGoto(sect) {
			if i == len(sections)-1 {
				rewritten = append(rewritten,
					&script.ExprStmt{Expr: script.Assign(script.Ident(stateVar), script.Num(-1))},
					&script.Break{Label: loopLabel},
				)
			} else {
				rewritten = append(rewritten,
					&script.ExprStmt{Expr: script.Assign(script.Ident(stateVar), script.Num(float64(i+1)))},
					&script.Continue{Label: loopLabel},
				)
			}
		}
		cases = append(cases, script.CaseGroup{
			Labels:     []script.Expression{script.Num(float64(i))},
			Statements: rewritten,
		})
	}

	sw := &script.Switch{
		Discriminant: script.Ident(stateVar),
		Cases:        cases,
	}
	loop := &script.While{
		Test: script.Bool(true),
		Body: &script.Block{Statements: []script.Statement{sw}},
	}
	labeled := &script.Labeled{Label: loopLabel, Body: loop}

	decl := &script.VarDecl{Declarators: []script.VarDeclarator{
		{Name: stateVar, Initializer: script.Num(0)},
	}}
	return &script.Block{Statements: []script.Statement{decl, labeled}}
}

// containsGoto reports whether s (or any statement it directly contains,
// stopping at FunctionExpr boundaries per WalkStmt's contract) is a Goto.
// A Labeled statement with no Goto does not count.
func containsGoto(s script.Statement) bool {
	found := false
	script.WalkStmt(s, func(st script.Statement) script.Statement {
		if st.Kind() == script.KindGoto {
			found = true
		}
		return st
	})
	return found
}

// splitIntoSections partitions a flat statement list into sections at
// every Labeled statement boundary, the way spec §4.3 describes: "the
// body is split into sections at label boundaries and at try/catch/
// finally entry and exit points." Try/catch/finally are left as single
// statements inside whichever section contains them; nested rewriting
// of their bodies happens recursively in rewriteGotos.
func splitIntoSections(stmts []script.Statement) ([][]script.Statement, map[string]int) {
	var sections [][]script.Statement
	labelIndex := make(map[string]int)
	var current []script.Statement
	for _, s := range stmts {
		if lbl, ok := s.(*script.Labeled); ok {
			if len(current) > 0 {
				sections = append(sections, current)
				current = nil
			}
			labelIndex[lbl.Label] = len(sections)
			current = append(current, lbl.Body)
			continue
		}
		current = append(current, s)
	}
	if len(current) > 0 {
		sections = append(sections, current)
	}
	if len(sections) == 0 {
		sections = append(sections, nil)
	}
	return sections, labelIndex
}

// endsInGoto reports whether sect's last statement is a goto, meaning it
// already transfers control unconditionally and needs no appended
// fall-through or terminal transition.
func endsInGoto(sect []script.Statement) bool {
	return len(sect) > 0 && sect[len(sect)-1].Kind() == script.KindGoto
}

// rewriteGotos replaces every `goto L` reachable in stmts (without
// descending into a FunctionExpr) with the two-statement idiom
// `stateVar = sectionIndexOf(L); continue loopLabel`, resolving L
// against the label-to-section-index map splitIntoSections built for
// this body. A goto to a label this body never declares is a driver
// bug and raises, matching spec §7's "missing lookup" failure model.
func rewriteGotos(stmts []script.Statement, stateVar, loopLabel string, labelIndex map[string]int) []script.Statement {
	out := make([]script.Statement, len(stmts))
	for i, s := range stmts {
		out[i] = script.WalkStmt(s, func(st script.Statement) script.Statement {
			g, ok := st.(*script.Goto)
			if !ok {
				return st
			}
			idx, ok := labelIndex[g.Label]
			if !ok {
				diag.Raise("goto targets undeclared label %q", g.Label)
			}
			return &script.Block{Statements: []script.Statement{
				&script.ExprStmt{Expr: script.Assign(script.Ident(stateVar), script.Num(float64(idx)))},
				&script.Continue{Label: loopLabel},
			}}
		})
	}
	return out
}
