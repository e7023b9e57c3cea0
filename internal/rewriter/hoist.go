package rewriter

import "github.com/cwbudde/scriptgen/internal/script"

// hoistVariables implements spec §4.3's variable-hoisting rule: every
// VarDecl reachable in block (including inside for/for-in/while/do-while
// bodies, but not inside a FunctionExpr) is replaced by a plain
// assignment at its original position, and a single combined
// declaration statement naming every hoisted variable is inserted at
// the very start of block. This keeps variables whose declaration would
// otherwise have sat inside a later switch case visible to every case,
// since a script `var` inside one arm of a switch is otherwise not
// guaranteed reachable from another.
//
// Hoisting runs unconditionally, even on a body with no goto, since the
// Preservation property (spec §8) requires it to be a no-op in effect
// when there is nothing to hoist: a body with no VarDecl statements
// comes back with the same statement sequence, untouched.
func (r *Rewriter) hoistVariables(block *script.Block) *script.Block {
	var names []string
	rewritten := script.WalkStmt(block, func(s script.Statement) script.Statement {
		decl, ok := s.(*script.VarDecl)
		if !ok {
			return s
		}
		var assigns []script.Statement
		for _, d := range decl.Declarators {
			names = append(names, d.Name)
			if d.Initializer != nil {
				assigns = append(assigns, &script.ExprStmt{
					Expr: script.Assign(script.Ident(d.Name), d.Initializer),
				})
			}
		}
		switch len(assigns) {
		case 0:
			return &script.Block{}
		case 1:
			return assigns[0]
		default:
			return &script.Block{Statements: assigns}
		}
	}).(*script.Block)

	if len(names) == 0 {
		return block
	}

	declarators := make([]script.VarDeclarator, len(names))
	for i, n := range names {
		declarators[i] = script.VarDeclarator{Name: n}
	}
	hoisted := &script.VarDecl{Declarators: declarators}
	return &script.Block{Statements: append([]script.Statement{hoisted}, rewritten.Statements...)}
}
