package prettyprinter

import (
	"testing"

	"github.com/mcgru/dparse/internal/ast"
	"github.com/mcgru/dparse/internal/diagnostics"
	"github.com/mcgru/dparse/internal/lexer"
	"github.com/mcgru/dparse/internal/parser"
	"github.com/mcgru/dparse/internal/token"
)

func parseModule(t *testing.T, src string) (*ast.Module, *ast.Arena, *diagnostics.Set) {
	t.Helper()
	set := &diagnostics.Set{}
	handler := diagnostics.NewCollectHandler(set)
	ctx := parser.NewContext(handler)
	lx := lexer.New("test.d", src, ctx.Interner, handler)
	srcTokens := lexer.NewSource(lx)
	mod := parser.ParseModule(srcTokens, ctx)
	return mod, ctx.Builder.Arena(), set
}

// kindTree reduces a module's decls to a shape string deep enough to
// catch the structural differences a broken printer would introduce,
// without tying the test to exact source spelling/whitespace.
func kindTree(a *ast.Arena, ids []ast.NodeID) []ast.NodeKind {
	var out []ast.NodeKind
	var walk func(id ast.NodeID)
	walk = func(id ast.NodeID) {
		if id == ast.NilID {
			return
		}
		n := a.Get(id)
		out = append(out, n.Kind())
		switch v := n.(type) {
		case *ast.StorageClassWrapperDecl:
			for _, d := range v.Decls {
				walk(d)
			}
		case *ast.LinkageWrapperDecl:
			for _, d := range v.Decls {
				walk(d)
			}
		case *ast.DeclBlock:
			for _, d := range v.Decls {
				walk(d)
			}
		case *ast.FuncDecl:
			for _, p := range v.Params {
				walk(p)
			}
		case *ast.AggregateDecl:
			for _, m := range v.Members {
				walk(m)
			}
		}
	}
	for _, id := range ids {
		walk(id)
	}
	return out
}

func TestRoundTripSimpleDeclarationsReparseToSameShape(t *testing.T) {
	cases := []string{
		"int x = 3;",
		"struct S { int x; int y; }",
		"void f(int x, int y) { return x; }",
		"@safe @nogc void f() { }",
		"const int y;",
	}
	for _, src := range cases {
		mod1, a1, set1 := parseModule(t, src)
		if set1.HasErrors() {
			t.Fatalf("input %q: want no errors, got %v", src, set1.All())
		}
		printer := NewCodePrinter()
		out := printer.Print(a1, mod1)

		mod2, a2, set2 := parseModule(t, out)
		if set2.HasErrors() {
			t.Fatalf("input %q: printed form %q reparsed with errors: %v", src, out, set2.All())
		}
		k1 := kindTree(a1, mod1.Decls)
		k2 := kindTree(a2, mod2.Decls)
		if len(k1) != len(k2) {
			t.Fatalf("input %q: printed form %q has a different node shape: %v vs %v", src, out, k1, k2)
		}
		for i := range k1 {
			if k1[i] != k2[i] {
				t.Fatalf("input %q: printed form %q diverges at node %d: %v vs %v", src, out, i, k1, k2)
			}
		}
	}
}

func TestPrintNodeRendersExpressionInIsolation(t *testing.T) {
	mod, a, set := parseModule(t, "bool f() { return a < b == c; }")
	if set.HasErrors() {
		t.Fatalf("want no errors, got %v", set.All())
	}
	fn := a.Get(mod.Decls[0]).(*ast.FuncDecl)
	blk := a.Get(fn.Body).(*ast.BlockStmt)
	ret := a.Get(blk.Stmts[0]).(*ast.ReturnStmt)

	printer := NewCodePrinter()
	out := printer.PrintNode(a, ret.Value)

	mod2, a2, set2 := parseModule(t, "bool g() { return "+out+"; }")
	if set2.HasErrors() {
		t.Fatalf("printed expression %q reparsed with errors: %v", out, set2.All())
	}
	fn2 := a2.Get(mod2.Decls[0]).(*ast.FuncDecl)
	blk2 := a2.Get(fn2.Body).(*ast.BlockStmt)
	ret2 := a2.Get(blk2.Stmts[0]).(*ast.ReturnStmt)
	outer, ok := a2.Get(ret2.Value).(*ast.BinaryExpr)
	if !ok || outer.Operator != token.EQ {
		t.Fatalf("want the reparsed expression to still be a top-level ==, got %#v", a2.Get(ret2.Value))
	}
}
