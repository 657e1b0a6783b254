package parser

import (
	"testing"

	"github.com/mcgru/dparse/internal/ast"
	"github.com/mcgru/dparse/internal/config"
	"github.com/mcgru/dparse/internal/diagnostics"
	"github.com/mcgru/dparse/internal/lexer"
	"github.com/mcgru/dparse/internal/token"
)

// parse lexes and parses src, returning the module, its arena, and
// every diagnostic produced.
func parse(t *testing.T, src string) (*ast.Module, *ast.Arena, *diagnostics.Set) {
	t.Helper()
	set := &diagnostics.Set{}
	handler := diagnostics.NewCollectHandler(set)
	ctx := NewContext(handler)
	lx := lexer.New("test.d", src, ctx.Interner, handler)
	srcTokens := lexer.NewSource(lx)
	mod := ParseModule(srcTokens, ctx)
	return mod, ctx.Builder.Arena(), set
}

func TestParseModuleDeclaration(t *testing.T) {
	mod, a, set := parse(t, "module a.b.c;")
	if set.Len() != 0 {
		t.Fatalf("want no diagnostics, got %v", set.All())
	}
	if len(mod.Decls) != 0 {
		t.Fatalf("want empty decl list, got %d", len(mod.Decls))
	}
	md, ok := a.Get(mod.ModuleDecl).(*ast.ModuleDecl)
	if !ok {
		t.Fatalf("want *ast.ModuleDecl, got %T", a.Get(mod.ModuleDecl))
	}
	if md.Name.Name != "c" {
		t.Fatalf("want name c, got %s", md.Name.Name)
	}
	if got := identNames(md.Packages); got != "a.b" {
		t.Fatalf("want packages a.b, got %s", got)
	}
}

func identNames(ids []*token.Identifier) string {
	s := ""
	for i, id := range ids {
		if i > 0 {
			s += "."
		}
		s += id.Name
	}
	return s
}

func TestParseCommaJoinedVarDecls(t *testing.T) {
	mod, a, set := parse(t, "int x, y = 3;")
	if set.HasErrors() {
		t.Fatalf("want no errors, got %v", set.All())
	}
	if len(mod.Decls) != 1 {
		t.Fatalf("want the pair wrapped in one top-level DeclBlock, got %d", len(mod.Decls))
	}
	block, ok := a.Get(mod.Decls[0]).(*ast.DeclBlock)
	if !ok || len(block.Decls) != 2 {
		t.Fatalf("want a 2-entry DeclBlock, got %#v", a.Get(mod.Decls[0]))
	}
	vx, ok := a.Get(block.Decls[0]).(*ast.VarDecl)
	if !ok || vx.Name.Name != "x" || vx.Init != ast.NilID {
		t.Fatalf("want uninitialized var x, got %#v", vx)
	}
	vy, ok := a.Get(block.Decls[1]).(*ast.VarDecl)
	if !ok || vy.Name.Name != "y" || vy.Init == ast.NilID {
		t.Fatalf("want initialized var y, got %#v", vy)
	}
	lit, ok := a.Get(vy.Init).(*ast.IntLiteralExpr)
	if !ok || lit.Value != 3 {
		t.Fatalf("want int literal 3, got %#v", a.Get(vy.Init))
	}
	xt, ok := a.Get(vx.Type).(*ast.BasicType)
	if !ok || xt.Kind_ != token.INT_T {
		t.Fatalf("want shared base type int, got %#v", a.Get(vx.Type))
	}
}

func TestParseTemplatedStructWithConstraint(t *testing.T) {
	mod, a, set := parse(t, "struct S(T) if (is(T == int)) { T x; }")
	if set.HasErrors() {
		t.Fatalf("want no errors, got %v", set.All())
	}
	if len(mod.Decls) != 1 {
		t.Fatalf("want 1 decl, got %d", len(mod.Decls))
	}
	td, ok := a.Get(mod.Decls[0]).(*ast.TemplateDecl)
	if !ok {
		t.Fatalf("want *ast.TemplateDecl, got %T", a.Get(mod.Decls[0]))
	}
	if len(td.Body) != 1 {
		t.Fatalf("want one wrapped decl, got %d", len(td.Body))
	}
	agg, ok := a.Get(td.Body[0]).(*ast.AggregateDecl)
	if !ok || agg.Tag != ast.TagStruct || len(agg.Members) != 1 {
		t.Fatalf("want struct with one field, got %#v", agg)
	}
	field, ok := a.Get(agg.Members[0]).(*ast.VarDecl)
	if !ok || field.Name.Name != "x" {
		t.Fatalf("want field x, got %#v", field)
	}
	isExpr, ok := a.Get(td.Constraint).(*ast.IsExpr)
	if !ok {
		t.Fatalf("want *ast.IsExpr constraint, got %T", a.Get(td.Constraint))
	}
	if isExpr.SpecType == ast.NilID {
		t.Fatalf("want a spec type on the is() constraint")
	}
}

func TestParseAttributedVariadicFunc(t *testing.T) {
	mod, a, set := parse(t, "@safe @nogc void f(int x = 1, ...) { }")
	if set.HasErrors() {
		t.Fatalf("want no errors, got %v", set.All())
	}
	if len(mod.Decls) != 1 {
		t.Fatalf("want 1 decl, got %d", len(mod.Decls))
	}
	wrap, ok := a.Get(mod.Decls[0]).(*ast.StorageClassWrapperDecl)
	if !ok {
		t.Fatalf("want *ast.StorageClassWrapperDecl, got %T", a.Get(mod.Decls[0]))
	}
	if !wrap.StorageClass.StorageClass.Has(config.SCSafe) || !wrap.StorageClass.StorageClass.Has(config.SCNogc) {
		t.Fatalf("want {safe, nogc} storage class bits, got %v", wrap.StorageClass.StorageClass)
	}
	if len(wrap.Decls) != 1 {
		t.Fatalf("want one wrapped decl, got %d", len(wrap.Decls))
	}
	fn, ok := a.Get(wrap.Decls[0]).(*ast.FuncDecl)
	if !ok || fn.Name.Name != "f" {
		t.Fatalf("want func f, got %#v", a.Get(wrap.Decls[0]))
	}
	if len(fn.Params) != 2 {
		t.Fatalf("want 2 params (x plus the bare variadic marker), got %d", len(fn.Params))
	}
	param, ok := a.Get(fn.Params[0]).(*ast.Parameter)
	if !ok || param.Name.Name != "x" || param.Default == ast.NilID {
		t.Fatalf("want param x with default, got %#v", param)
	}
	variadic, ok := a.Get(fn.Params[1]).(*ast.Parameter)
	if !ok || variadic.Variadic != ast.VariadicUntyped {
		t.Fatalf("want an untyped variadic marker, got %#v", variadic)
	}
}

func TestParseAnonymousEnum(t *testing.T) {
	mod, a, set := parse(t, "enum { A, B = 2, C }")
	if set.HasErrors() {
		t.Fatalf("want no errors, got %v", set.All())
	}
	ed, ok := a.Get(mod.Decls[0]).(*ast.EnumDecl)
	if !ok || ed.Name != nil {
		t.Fatalf("want anonymous enum, got %#v", ed)
	}
	if len(ed.Members) != 3 {
		t.Fatalf("want 3 members, got %d", len(ed.Members))
	}
	ma := a.Get(ed.Members[0]).(*ast.EnumMember)
	mb := a.Get(ed.Members[1]).(*ast.EnumMember)
	mc := a.Get(ed.Members[2]).(*ast.EnumMember)
	if ma.Value != ast.NilID {
		t.Fatalf("want A with no value")
	}
	bval, ok := a.Get(mb.Value).(*ast.IntLiteralExpr)
	if !ok || bval.Value != 2 {
		t.Fatalf("want B == 2, got %#v", a.Get(mb.Value))
	}
	if mc.Value != ast.NilID {
		t.Fatalf("want C with no value")
	}
}

func TestParseIfWithBoundCondition(t *testing.T) {
	mod, a, set := parse(t, "void f() { if (auto p = f()) g(p); else h(); }")
	if set.HasErrors() {
		t.Fatalf("want no errors, got %v", set.All())
	}
	fn := a.Get(mod.Decls[0]).(*ast.FuncDecl)
	blk := a.Get(fn.Body).(*ast.BlockStmt)
	ifs, ok := a.Get(blk.Stmts[0]).(*ast.IfStmt)
	if !ok {
		t.Fatalf("want *ast.IfStmt, got %T", a.Get(blk.Stmts[0]))
	}
	if !ifs.CondStorage.Has(config.SCAuto) {
		t.Fatalf("want auto storage class on condition, got %v", ifs.CondStorage)
	}
	if ifs.CondName == nil || ifs.CondName.Name != "p" {
		t.Fatalf("want bound name p, got %#v", ifs.CondName)
	}
	if ifs.Else == ast.NilID {
		t.Fatalf("want an else branch")
	}
}

func TestParseMixinTemplateAndInstance(t *testing.T) {
	mod, a, set := parse(t, "mixin template M() { int x; } mixin M!() m;")
	if set.HasErrors() {
		t.Fatalf("want no errors, got %v", set.All())
	}
	if len(mod.Decls) != 2 {
		t.Fatalf("want 2 decls, got %d", len(mod.Decls))
	}
	td, ok := a.Get(mod.Decls[0]).(*ast.TemplateDecl)
	if !ok || !td.IsMixin || td.Name.Name != "M" {
		t.Fatalf("want mixin template M, got %#v", a.Get(mod.Decls[0]))
	}
	inst, ok := a.Get(mod.Decls[1]).(*ast.TemplateInstanceDecl)
	if !ok || inst.Template.Name != "M" || inst.BindName == nil || inst.BindName.Name != "m" {
		t.Fatalf("want template-mixin instance bound to m, got %#v", a.Get(mod.Decls[1]))
	}
}

func TestParseEqualPrecedenceWarnsAndGroupsLeftToRight(t *testing.T) {
	mod, a, set := parse(t, "bool f() { return a < b == c; }")
	if set.HasErrors() {
		t.Fatalf("want no errors, got %v", set.All())
	}
	if !hasWarning(set) {
		t.Fatalf("want a checkParens warning, got %v", set.All())
	}
	fn := a.Get(mod.Decls[0]).(*ast.FuncDecl)
	blk := a.Get(fn.Body).(*ast.BlockStmt)
	ret := a.Get(blk.Stmts[0]).(*ast.ReturnStmt)
	outer, ok := a.Get(ret.Value).(*ast.BinaryExpr)
	if !ok || outer.Operator != token.EQ {
		t.Fatalf("want top-level ==, got %#v", a.Get(ret.Value))
	}
	left, ok := a.Get(outer.Left).(*ast.BinaryExpr)
	if !ok || left.Operator != token.LT {
		t.Fatalf("want (a < b) grouped on the left, got %#v", a.Get(outer.Left))
	}
}

func hasWarning(set *diagnostics.Set) bool {
	for _, d := range set.All() {
		if d.Severity == diagnostics.Warning {
			return true
		}
	}
	return false
}

func TestBoundaryPrematureEOFInsideBlock(t *testing.T) {
	_, _, set := parse(t, "void f() { int x;")
	if !set.HasErrors() {
		t.Fatalf("want a diagnostic for the unterminated block")
	}
}

func TestBoundarySafetyConflictReportedOnce(t *testing.T) {
	_, _, set := parse(t, "@safe @system void f() { }")
	count := 0
	for _, d := range set.All() {
		if d.Severity == diagnostics.Warning {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("want exactly one conflict warning, got %d: %v", count, set.All())
	}
}

func TestBoundaryConstParenIsTypeConstructor(t *testing.T) {
	mod, a, set := parse(t, "const(int) x; const int y;")
	if set.HasErrors() {
		t.Fatalf("want no errors, got %v", set.All())
	}
	vx := a.Get(mod.Decls[0]).(*ast.VarDecl)
	if _, ok := a.Get(vx.Type).(*ast.TypeConstructorType); !ok {
		t.Fatalf("want const(int) as a type constructor, got %T", a.Get(vx.Type))
	}
	wrap, ok := a.Get(mod.Decls[1]).(*ast.StorageClassWrapperDecl)
	if !ok {
		t.Fatalf("want const int as a storage-class wrapper, got %T", a.Get(mod.Decls[1]))
	}
	if !wrap.StorageClass.StorageClass.Has(config.SCConst) {
		t.Fatalf("want SCConst set on the wrapper, got %v", wrap.StorageClass)
	}
}

func TestBoundaryChainedBangIsDiagnostic(t *testing.T) {
	_, _, set := parse(t, "void f() { a!b!c; }")
	if !set.HasErrors() {
		t.Fatalf("want a diagnostic for chained ! outside is/in")
	}
}

func TestErrorLocalityRecoversAtNextDeclaration(t *testing.T) {
	_, _, set := parse(t, "int x = ; void f() { }")
	if set.Len() == 0 || set.Len() > 3 {
		t.Fatalf("want between 1 and 3 diagnostics, got %d: %v", set.Len(), set.All())
	}
	if !set.HasErrors() {
		t.Fatalf("want at least one error diagnostic")
	}
}

func TestParseVoidInitializer(t *testing.T) {
	mod, a, set := parse(t, "int x = void;")
	if set.HasErrors() {
		t.Fatalf("want no errors, got %v", set.All())
	}
	vd, ok := a.Get(mod.Decls[0]).(*ast.VarDecl)
	if !ok {
		t.Fatalf("want *ast.VarDecl, got %T", a.Get(mod.Decls[0]))
	}
	if _, ok := a.Get(vd.Init).(*ast.VoidInitializer); !ok {
		t.Fatalf("want *ast.VoidInitializer, got %#v", a.Get(vd.Init))
	}
}

func TestParseFuncBodyWithDoAndDeprecatedBodyKeyword(t *testing.T) {
	mod, a, set := parse(t, "int f() in(true) do { return 1; }")
	if set.HasErrors() {
		t.Fatalf("want no errors, got %v", set.All())
	}
	fn, ok := a.Get(mod.Decls[0]).(*ast.FuncDecl)
	if !ok || fn.Body == ast.NilID {
		t.Fatalf("want func f with a body, got %#v", a.Get(mod.Decls[0]))
	}
	if _, ok := a.Get(fn.Body).(*ast.BlockStmt); !ok {
		t.Fatalf("want *ast.BlockStmt body, got %T", a.Get(fn.Body))
	}

	_, _, set = parse(t, "int g() body { return 1; }")
	found := false
	for _, d := range set.All() {
		if d.Severity == diagnostics.Deprecation {
			found = true
		}
	}
	if !found {
		t.Fatalf("want a deprecation diagnostic for the `body` keyword, got %v", set.All())
	}
}

func TestParseAdjacentStringLiteralsDeprecateConcatenation(t *testing.T) {
	_, _, set := parse(t, `auto s = "a" "b";`)
	found := false
	for _, d := range set.All() {
		if d.Severity == diagnostics.Deprecation {
			found = true
		}
	}
	if !found {
		t.Fatalf("want a deprecation diagnostic for implicit string concatenation, got %v", set.All())
	}
}

func TestParseParameterAcceptsLeadingUDA(t *testing.T) {
	mod, a, set := parse(t, "void f(@safe int x) { }")
	if set.HasErrors() {
		t.Fatalf("want no errors, got %v", set.All())
	}
	fn, ok := a.Get(mod.Decls[0]).(*ast.FuncDecl)
	if !ok || len(fn.Params) != 1 {
		t.Fatalf("want func f with 1 param, got %#v", a.Get(mod.Decls[0]))
	}
	param, ok := a.Get(fn.Params[0]).(*ast.Parameter)
	if !ok || len(param.UDAs) != 1 {
		t.Fatalf("want param with 1 UDA, got %#v", param)
	}
}

func TestParseBlockLambdaInInitializerPosition(t *testing.T) {
	mod, a, set := parse(t, "auto f = { return 1; };")
	if set.HasErrors() {
		t.Fatalf("want no errors, got %v", set.All())
	}
	wrap, ok := a.Get(mod.Decls[0]).(*ast.StorageClassWrapperDecl)
	if !ok || !wrap.StorageClass.StorageClass.Has(config.SCAuto) || len(wrap.Decls) != 1 {
		t.Fatalf("want one decl wrapped with SCAuto, got %#v", a.Get(mod.Decls[0]))
	}
	vd, ok := a.Get(wrap.Decls[0]).(*ast.VarDecl)
	if !ok {
		t.Fatalf("want *ast.VarDecl, got %T", a.Get(wrap.Decls[0]))
	}
	lit, ok := a.Get(vd.Init).(*ast.FunctionLiteralExpr)
	if !ok || lit.LitKind != ast.FLBlock {
		t.Fatalf("want a block function literal initializer, got %#v", a.Get(vd.Init))
	}
}
