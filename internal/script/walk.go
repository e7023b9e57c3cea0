package script

// StmtVisitor and ExprVisitor are the free-function pair design note §9
// prescribes in place of a deep inheritance hierarchy of visitors: one
// function walks statements and returns a (possibly replaced) statement,
// the other walks expressions and returns a (possibly replaced)
// expression, and both take the caller's mutable state by reference
// (via a closure) rather than through virtual dispatch.
//
// FunctionExpr bodies are never descended into automatically — spec
// §4.3 requires nested functions to stay opaque to any rewriting pass,
// so a caller that wants to reach into one must do so explicitly.
type StmtVisitor func(Statement) Statement
type ExprVisitor func(Expression) Expression

// WalkStmt applies visit to s and, for compound statements, to each
// nested statement (not expression) it directly contains. It does not
// recurse into a FunctionExpr's body.
func WalkStmt(s Statement, visit StmtVisitor) Statement {
	if s == nil {
		return nil
	}
	switch n := s.(type) {
	case *Block:
		out := make([]Statement, len(n.Statements))
		for i, st := range n.Statements {
			out[i] = WalkStmt(st, visit)
		}
		n.Statements = out
	case *If:
		n.Then = WalkStmt(n.Then, visit)
		if n.Else != nil {
			n.Else = WalkStmt(n.Else, visit)
		}
	case *For:
		n.Body = WalkStmt(n.Body, visit)
	case *ForIn:
		n.Body = WalkStmt(n.Body, visit)
	case *While:
		n.Body = WalkStmt(n.Body, visit)
	case *DoWhile:
		n.Body = WalkStmt(n.Body, visit)
	case *Switch:
		for i := range n.Cases {
			out := make([]Statement, len(n.Cases[i].Statements))
			for j, st := range n.Cases[i].Statements {
				out[j] = WalkStmt(st, visit)
			}
			n.Cases[i].Statements = out
		}
	case *Try:
		n.Body = WalkStmt(n.Body, visit).(*Block)
		if n.Catch != nil {
			n.Catch.Body = WalkStmt(n.Catch.Body, visit).(*Block)
		}
		if n.Finally != nil {
			n.Finally = WalkStmt(n.Finally, visit).(*Block)
		}
	case *Labeled:
		n.Body = WalkStmt(n.Body, visit)
	}
	return visit(s)
}

// WalkExpr applies visit to e and, for compound expressions, to each
// nested expression it directly contains. It does not recurse into a
// FunctionExpr's body (the body is a statement tree belonging to a
// separate lexical closure — see spec §4.3).
func WalkExpr(e Expression, visit ExprVisitor) Expression {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *Member:
		n.Target = WalkExpr(n.Target, visit)
	case *Index:
		n.Target = WalkExpr(n.Target, visit)
		n.Key = WalkExpr(n.Key, visit)
	case *Invocation:
		n.Callee = WalkExpr(n.Callee, visit)
		for i, a := range n.Arguments {
			n.Arguments[i] = WalkExpr(a, visit)
		}
	case *New:
		n.Callee = WalkExpr(n.Callee, visit)
		for i, a := range n.Arguments {
			n.Arguments[i] = WalkExpr(a, visit)
		}
	case *Binary:
		n.Left = WalkExpr(n.Left, visit)
		n.Right = WalkExpr(n.Right, visit)
	case *Unary:
		n.Operand = WalkExpr(n.Operand, visit)
	case *Assignment:
		n.Target = WalkExpr(n.Target, visit)
		n.Value = WalkExpr(n.Value, visit)
	case *ArrayLiteral:
		for i, el := range n.Elements {
			n.Elements[i] = WalkExpr(el, visit)
		}
	case *ObjectLiteral:
		for i, p := range n.Properties {
			n.Properties[i].Value = WalkExpr(p.Value, visit)
		}
	case *Conditional:
		n.Test = WalkExpr(n.Test, visit)
		n.Consequent = WalkExpr(n.Consequent, visit)
		n.Alternate = WalkExpr(n.Alternate, visit)
	case *Comma:
		for i, x := range n.Expressions {
			n.Expressions[i] = WalkExpr(x, visit)
		}
		// FunctionExpr is intentionally not descended into.
	}
	return visit(e)
}
