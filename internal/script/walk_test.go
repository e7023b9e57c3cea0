package script

import "testing"

func TestWalkStmtReplacesNestedGoto(t *testing.T) {
	body := Blk(
		ExprS(Call(Ident("f"))),
		&If{Test: Bool(true), Then: &Goto{Label: "L1"}},
	)

	var visited int
	WalkStmt(body, func(s Statement) Statement {
		visited++
		if g, ok := s.(*Goto); ok {
			return &Break{Label: g.Label}
		}
		return s
	})

	ifStmt := body.Statements[1].(*If)
	if _, ok := ifStmt.Then.(*Break); !ok {
		t.Fatalf("WalkStmt should have replaced the nested Goto with a Break, got %T", ifStmt.Then)
	}
	if visited == 0 {
		t.Fatal("WalkStmt should visit every nested statement")
	}
}

func TestWalkStmtDoesNotDescendIntoFunctionExpr(t *testing.T) {
	inner := Blk(&Goto{Label: "Inner"})
	fn := &FunctionExpr{Name: "f", Body: inner}
	outer := Blk(ExprS(Call(fn)))

	WalkStmt(outer, func(s Statement) Statement {
		if _, ok := s.(*Goto); ok {
			t.Fatal("WalkStmt must not reach a Goto nested inside a FunctionExpr body")
		}
		return s
	})

	if inner.Statements[0].Kind() != KindGoto {
		t.Fatal("the FunctionExpr body itself should be untouched")
	}
}

func TestWalkExprReplacesNestedIdentifier(t *testing.T) {
	expr := Bin("+", Ident("a"), Call(Ident("b"), Ident("a")))

	renamed := WalkExpr(expr, func(e Expression) Expression {
		if id, ok := e.(*Identifier); ok && id.Name == "a" {
			return Ident("renamed")
		}
		return e
	})

	bin := renamed.(*Binary)
	if bin.Left.(*Identifier).Name != "renamed" {
		t.Fatalf("left operand not renamed: %s", bin.Left.String())
	}
	inv := bin.Right.(*Invocation)
	if inv.Arguments[0].(*Identifier).Name != "renamed" {
		t.Fatalf("nested call argument not renamed: %s", inv.Arguments[0].String())
	}
}

func TestWalkStmtOverSwitchCases(t *testing.T) {
	sw := &Switch{
		Discriminant: Ident("x"),
		Cases: []CaseGroup{
			{Labels: []Expression{Num(0)}, Statements: []Statement{&Goto{Label: "A"}}},
		},
	}

	WalkStmt(sw, func(s Statement) Statement {
		if g, ok := s.(*Goto); ok {
			return &Continue{Label: g.Label}
		}
		return s
	})

	if _, ok := sw.Cases[0].Statements[0].(*Continue); !ok {
		t.Fatalf("WalkStmt should rewrite statements inside switch cases, got %T", sw.Cases[0].Statements[0])
	}
}
