package script

import "testing"

func TestConvenienceConstructors(t *testing.T) {
	blk := Blk(ExprS(Call(Ident("f"))))
	if blk.Kind() != KindBlock {
		t.Errorf("Blk().Kind() = %v, want KindBlock", blk.Kind())
	}
	if len(blk.Statements) != 1 {
		t.Fatalf("Blk() statement count = %d, want 1", len(blk.Statements))
	}

	v := Var("x", Num(1))
	if v.Kind() != KindVarDecl {
		t.Errorf("Var().Kind() = %v, want KindVarDecl", v.Kind())
	}
	if len(v.Declarators) != 1 || v.Declarators[0].Name != "x" {
		t.Fatalf("Var() declarator = %+v", v.Declarators)
	}
}

func TestEveryStatementKindIsDistinct(t *testing.T) {
	stmts := []Statement{
		&Block{}, &ExprStmt{}, &VarDecl{}, &If{}, &For{}, &ForIn{}, &While{},
		&DoWhile{}, &Switch{}, &Try{}, &Throw{}, &Return{}, &Break{},
		&Continue{}, &Labeled{}, &Goto{}, &FunctionDecl{},
	}
	seen := make(map[StmtKind]bool)
	for _, s := range stmts {
		if seen[s.Kind()] {
			t.Errorf("duplicate Kind() %v", s.Kind())
		}
		seen[s.Kind()] = true
	}
}
