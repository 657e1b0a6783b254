package prettyprinter

import (
	"strings"

	"github.com/mcgru/dparse/internal/ast"
	"github.com/mcgru/dparse/internal/config"
)

func (p *CodePrinter) VisitModuleDecl(a *ast.Arena, id ast.NodeID, n *ast.ModuleDecl) {
	p.writeUDAs(a, n.UDAs)
	if n.Deprecated != ast.NilID {
		p.write("deprecated(")
		p.printExpr(a, n.Deprecated, config.PrecLowest, false)
		p.write(") ")
	}
	p.write("module ")
	p.write(qualifiedName(n.Packages, n.Name))
	p.write(";")
}

func (p *CodePrinter) VisitImportDecl(a *ast.Arena, id ast.NodeID, n *ast.ImportDecl) {
	p.write("import ")
	if n.IsStatic {
		p.write("static ")
	}
	if n.ModAlias != nil {
		p.write(n.ModAlias.Name)
		p.write(" = ")
	}
	p.write(qualifiedName(n.Packages, n.Name))
	if len(n.Selective) > 0 {
		p.write(" : ")
		for i, b := range n.Selective {
			if i > 0 {
				p.write(", ")
			}
			p.write(identOr(b.Name, "_"))
			if b.Alias != nil {
				p.write(" = ")
				p.write(b.Alias.Name)
			}
		}
	}
	p.write(";")
}

func (p *CodePrinter) VisitAggregateDecl(a *ast.Arena, id ast.NodeID, n *ast.AggregateDecl) {
	p.write(aggregateTagKeyword[n.Tag])
	if n.Name != nil {
		p.write(" ")
		p.write(n.Name.Name)
	}
	if len(n.Bases) > 0 {
		p.write(" : ")
		p.printNodeList(a, n.Bases, true)
	}
	p.write(" ")
	p.printDeclBody(a, n.Members)
}

func (p *CodePrinter) VisitEnumMember(a *ast.Arena, id ast.NodeID, n *ast.EnumMember) {
	p.write(identOr(n.Name, "_"))
	if n.Type != ast.NilID {
		p.write(" : ")
		p.printType(a, n.Type)
	}
	if n.Value != ast.NilID {
		p.write(" = ")
		p.printExpr(a, n.Value, config.PrecAssign, false)
	}
}

func (p *CodePrinter) VisitEnumDecl(a *ast.Arena, id ast.NodeID, n *ast.EnumDecl) {
	p.write("enum")
	if n.Name != nil {
		p.write(" ")
		p.write(n.Name.Name)
	}
	if n.BaseType != ast.NilID {
		p.write(" : ")
		p.printType(a, n.BaseType)
	}
	if n.ManifestVal != ast.NilID {
		p.write(" = ")
		p.printExpr(a, n.ManifestVal, config.PrecAssign, false)
		p.write(";")
		return
	}
	p.write(" {\n")
	p.indent++
	for i, m := range n.Members {
		p.writeIndent()
		a.Accept(m, p)
		if i < len(n.Members)-1 {
			p.write(",")
		}
		p.write("\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitTemplateParameter(a *ast.Arena, id ast.NodeID, n *ast.TemplateParameter) {
	switch n.Kind_ {
	case ast.TPAlias:
		p.write("alias ")
	case ast.TPThis:
		p.write("this ")
	}
	if n.Kind_ == ast.TPValue && n.ValueType != ast.NilID {
		p.printType(a, n.ValueType)
		p.write(" ")
	}
	p.write(identOr(n.Name, "_"))
	if n.Kind_ == ast.TPTuple {
		p.write("...")
	}
	if n.Bound != ast.NilID {
		p.write(" : ")
		p.printType(a, n.Bound)
	}
	if n.Default != ast.NilID {
		p.write(" = ")
		p.printExpr(a, n.Default, config.PrecAssign, false)
	}
}

func (p *CodePrinter) VisitTemplateDecl(a *ast.Arena, id ast.NodeID, n *ast.TemplateDecl) {
	if n.IsMixin {
		p.write("mixin ")
	}
	p.write("template ")
	p.write(identOr(n.Name, "_"))
	p.printParams(a, n.Params)
	if n.Constraint != ast.NilID {
		p.write(" if (")
		p.printExpr(a, n.Constraint, config.PrecLowest, false)
		p.write(")")
	}
	p.write(" ")
	p.printDeclBody(a, n.Body)
}

func (p *CodePrinter) VisitTemplateInstanceDecl(a *ast.Arena, id ast.NodeID, n *ast.TemplateInstanceDecl) {
	p.write("mixin ")
	p.write(identOr(n.Template, "_"))
	p.write("!(")
	p.printNodeList(a, n.Args, false)
	p.write(")")
	if n.BindName != nil {
		p.write(" ")
		p.write(n.BindName.Name)
	}
	p.write(";")
}

func (p *CodePrinter) VisitMixinDecl(a *ast.Arena, id ast.NodeID, n *ast.MixinDecl) {
	p.write("mixin(")
	p.printNodeList(a, n.Args, false)
	p.write(");")
}

func contractsString(kw string, contracts []ast.Contract, a *ast.Arena, p *CodePrinter) {
	for _, c := range contracts {
		p.write("\n")
		p.writeIndent()
		p.write(kw)
		if c.OutIdent != nil {
			p.write("(")
			p.write(c.OutIdent.Name)
			p.write(")")
		}
		if c.Kind == ast.ContractExpr {
			p.write(" (")
			p.printExpr(a, c.Expr, config.PrecLowest, false)
			if c.Message != ast.NilID {
				p.write(", ")
				p.printExpr(a, c.Message, config.PrecAssign, false)
			}
			p.write(")")
		} else {
			p.write(" ")
			if blk, ok := a.Get(c.Body).(*ast.BlockStmt); ok {
				p.printBlock(a, blk)
			} else {
				a.Accept(c.Body, p)
			}
		}
	}
}

func (p *CodePrinter) VisitFuncDecl(a *ast.Arena, id ast.NodeID, n *ast.FuncDecl) {
	if n.ReturnType != ast.NilID {
		p.printType(a, n.ReturnType)
		p.write(" ")
	} else {
		p.write("auto ")
	}
	p.write(identOr(n.Name, "_"))
	p.printParams(a, n.Params)
	contractsString("in", n.Requires, a, p)
	contractsString("out", n.Ensures, a, p)
	if n.Body == ast.NilID {
		p.write(";")
		return
	}
	if len(n.Requires) > 0 || len(n.Ensures) > 0 {
		p.write("\n")
		p.writeIndent()
		p.write("do ")
	} else {
		p.write(" ")
	}
	if blk, ok := a.Get(n.Body).(*ast.BlockStmt); ok {
		p.printBlock(a, blk)
	} else {
		a.Accept(n.Body, p)
	}
}

func (p *CodePrinter) VisitCtorDecl(a *ast.Arena, id ast.NodeID, n *ast.CtorDecl) {
	p.write("this")
	p.printParams(a, n.Params)
	contractsString("in", n.Requires, a, p)
	contractsString("out", n.Ensures, a, p)
	p.write(" ")
	if blk, ok := a.Get(n.Body).(*ast.BlockStmt); ok {
		p.printBlock(a, blk)
	} else {
		p.write(";")
	}
}

func (p *CodePrinter) VisitDtorDecl(a *ast.Arena, id ast.NodeID, n *ast.DtorDecl) {
	p.write("~this() ")
	p.printBlockOrSemi(a, n.Body)
}

func (p *CodePrinter) VisitPostblitDecl(a *ast.Arena, id ast.NodeID, n *ast.PostblitDecl) {
	p.write("this(this) ")
	p.printBlockOrSemi(a, n.Body)
}

func (p *CodePrinter) VisitStaticCtorDecl(a *ast.Arena, id ast.NodeID, n *ast.StaticCtorDecl) {
	p.write("static this() ")
	p.printBlockOrSemi(a, n.Body)
}

func (p *CodePrinter) VisitSharedStaticCtorDecl(a *ast.Arena, id ast.NodeID, n *ast.SharedStaticCtorDecl) {
	p.write("shared static this() ")
	p.printBlockOrSemi(a, n.Body)
}

func (p *CodePrinter) VisitStaticDtorDecl(a *ast.Arena, id ast.NodeID, n *ast.StaticDtorDecl) {
	p.write("static ~this() ")
	p.printBlockOrSemi(a, n.Body)
}

func (p *CodePrinter) VisitSharedStaticDtorDecl(a *ast.Arena, id ast.NodeID, n *ast.SharedStaticDtorDecl) {
	p.write("shared static ~this() ")
	p.printBlockOrSemi(a, n.Body)
}

func (p *CodePrinter) VisitNewDecl(a *ast.Arena, id ast.NodeID, n *ast.NewDecl) {
	p.write("new")
	p.printParams(a, n.Params)
	p.write(" ")
	p.printBlockOrSemi(a, n.Body)
}

func (p *CodePrinter) VisitInvariantDecl(a *ast.Arena, id ast.NodeID, n *ast.InvariantDecl) {
	p.write("invariant() ")
	p.printBlockOrSemi(a, n.Body)
}

func (p *CodePrinter) VisitUnittestDecl(a *ast.Arena, id ast.NodeID, n *ast.UnittestDecl) {
	p.write("unittest ")
	p.printBlockOrSemi(a, n.Body)
}

// printBlockOrSemi renders n's block body, or a bare `;` if absent.
func (p *CodePrinter) printBlockOrSemi(a *ast.Arena, body ast.NodeID) {
	if body == ast.NilID {
		p.write(";")
		return
	}
	if blk, ok := a.Get(body).(*ast.BlockStmt); ok {
		p.printBlock(a, blk)
		return
	}
	a.Accept(body, p)
}

func (p *CodePrinter) VisitVarDecl(a *ast.Arena, id ast.NodeID, n *ast.VarDecl) {
	p.printType(a, n.Type)
	p.write(" ")
	p.write(identOr(n.Name, "_"))
	if n.Init != ast.NilID {
		p.write(" = ")
		p.printInit(a, n.Init)
	}
	p.write(";")
}

func (p *CodePrinter) VisitAliasDecl(a *ast.Arena, id ast.NodeID, n *ast.AliasDecl) {
	p.write("alias ")
	p.write(identOr(n.Name, "_"))
	if len(n.Params) > 0 {
		p.printParams(a, n.Params)
	}
	p.write(" = ")
	a.Accept(n.Target, p)
	p.write(";")
}

func (p *CodePrinter) VisitAliasThisDecl(a *ast.Arena, id ast.NodeID, n *ast.AliasThisDecl) {
	p.write("alias ")
	p.write(identOr(n.Name, "_"))
	p.write(" this;")
}

func (p *CodePrinter) VisitStorageClassWrapperDecl(a *ast.Arena, id ast.NodeID, n *ast.StorageClassWrapperDecl) {
	kws := storageClassKeywords(n.StorageClass.StorageClass)
	prefix := ""
	for i, kw := range kws {
		if i > 0 {
			prefix += " "
		}
		prefix += kw
	}
	p.printWrapped(a, prefix, n.Decls)
}

func (p *CodePrinter) VisitLinkageWrapperDecl(a *ast.Arena, id ast.NodeID, n *ast.LinkageWrapperDecl) {
	p.printWrapped(a, linkageKeyword(n.Linkage), n.Decls)
}

func (p *CodePrinter) VisitProtectionWrapperDecl(a *ast.Arena, id ast.NodeID, n *ast.ProtectionWrapperDecl) {
	kw := protectionKeyword(n.Protection.Level)
	if n.Protection.Level == ast.ProtPackage && len(n.Protection.Path) > 0 {
		kw += "(" + strings.Join(identNames(n.Protection.Path), ".") + ")"
	}
	p.printWrapped(a, kw, n.Decls)
}

func (p *CodePrinter) VisitAlignWrapperDecl(a *ast.Arena, id ast.NodeID, n *ast.AlignWrapperDecl) {
	prefix := "align"
	if n.Expr != ast.NilID {
		prefix += "(" + exprToString(a, n.Expr, p) + ")"
	}
	p.printWrapped(a, prefix, n.Decls)
}

func (p *CodePrinter) VisitDeprecatedWrapperDecl(a *ast.Arena, id ast.NodeID, n *ast.DeprecatedWrapperDecl) {
	prefix := "deprecated"
	if n.Message != ast.NilID {
		prefix += "(" + exprToString(a, n.Message, p) + ")"
	}
	p.printWrapped(a, prefix, n.Decls)
}

func (p *CodePrinter) VisitUDAWrapperDecl(a *ast.Arena, id ast.NodeID, n *ast.UDAWrapperDecl) {
	var prefix strings.Builder
	for i, u := range n.UDAs {
		if i > 0 {
			prefix.WriteByte(' ')
		}
		prefix.WriteByte('@')
		prefix.WriteString(exprToString(a, u, p))
	}
	p.printWrapped(a, prefix.String(), n.Decls)
}

func (p *CodePrinter) VisitUserAttributeDecl(a *ast.Arena, id ast.NodeID, n *ast.UserAttributeDecl) {
	p.writeUDAs(a, n.UDAs)
}

func (p *CodePrinter) VisitDeclBlock(a *ast.Arena, id ast.NodeID, n *ast.DeclBlock) {
	p.printDeclBody(a, n.Decls)
}

func (p *CodePrinter) VisitConditionalDecl(a *ast.Arena, id ast.NodeID, n *ast.ConditionalDecl) {
	if n.IsDebug {
		p.write("debug")
	} else {
		p.write("version")
	}
	if n.Ident != nil {
		p.write("(")
		p.write(n.Ident.Name)
		p.write(")")
	} else if n.Level != ast.NilID {
		p.write("(")
		p.printExpr(a, n.Level, config.PrecAssign, false)
		p.write(")")
	}
	p.write(" ")
	p.printDeclBody(a, n.Then)
	if len(n.Else) > 0 {
		p.write("\n")
		p.writeIndent()
		p.write("else ")
		p.printDeclBody(a, n.Else)
	}
}

func (p *CodePrinter) VisitEmptyDecl(a *ast.Arena, id ast.NodeID, n *ast.EmptyDecl) {
	p.write(";")
}

func (p *CodePrinter) VisitParameter(a *ast.Arena, id ast.NodeID, n *ast.Parameter) {
	p.writeUDAs(a, n.UDAs)
	p.writeStorageClass(config.Set(n.StorageClass))
	if n.Type != ast.NilID {
		p.printType(a, n.Type)
	} else {
		p.write("auto")
	}
	if n.Name != nil {
		p.write(" ")
		p.write(n.Name.Name)
	}
	switch n.Variadic {
	case ast.VariadicUntyped:
		p.write(" ...")
	case ast.VariadicTypesafe:
		p.write(" ...")
	}
	if n.Default != ast.NilID {
		p.write(" = ")
		p.printExpr(a, n.Default, config.PrecAssign, false)
	}
}

func (p *CodePrinter) VisitForeachParameter(a *ast.Arena, id ast.NodeID, n *ast.ForeachParameter) {
	p.writeStorageClass(config.Set(n.StorageClass))
	if n.IsAlias {
		p.write("alias ")
	}
	if n.IsEnum {
		p.write("enum ")
	}
	if n.Type != ast.NilID {
		p.printType(a, n.Type)
		p.write(" ")
	}
	p.write(identOr(n.Name, "_"))
}

func (p *CodePrinter) VisitCatchClause(a *ast.Arena, id ast.NodeID, n *ast.CatchClause) {
	p.write("catch")
	if n.Type != ast.NilID {
		p.write(" (")
		p.printType(a, n.Type)
		if n.Name != nil {
			p.write(" ")
			p.write(n.Name.Name)
		}
		p.write(")")
	}
	p.write(" ")
	if blk, ok := a.Get(n.Body).(*ast.BlockStmt); ok {
		p.printBlock(a, blk)
	} else {
		a.Accept(n.Body, p)
	}
}

// exprToString renders an expression through a scratch buffer, used for
// the handful of spots a prefix string must be built (attribute
// clauses) before printWrapped writes it as one piece.
func exprToString(a *ast.Arena, id ast.NodeID, shared *CodePrinter) string {
	scratch := &CodePrinter{indent: shared.indent, lineWidth: shared.lineWidth}
	scratch.printExpr(a, id, config.PrecAssign, false)
	return scratch.buf.String()
}
