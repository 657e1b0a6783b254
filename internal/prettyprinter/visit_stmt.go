package prettyprinter

import (
	"github.com/mcgru/dparse/internal/ast"
	"github.com/mcgru/dparse/internal/config"
)

func (p *CodePrinter) VisitBlockStmt(a *ast.Arena, id ast.NodeID, n *ast.BlockStmt) {
	p.printBlock(a, n)
}

func (p *CodePrinter) VisitExprStmt(a *ast.Arena, id ast.NodeID, n *ast.ExprStmt) {
	p.printExpr(a, n.Expr, config.PrecLowest, false)
	p.write(";")
}

func (p *CodePrinter) VisitDeclStmt(a *ast.Arena, id ast.NodeID, n *ast.DeclStmt) {
	a.Accept(n.Decl, p)
}

func (p *CodePrinter) VisitIfStmt(a *ast.Arena, id ast.NodeID, n *ast.IfStmt) {
	p.write("if (")
	if len(storageClassKeywords(n.CondStorage)) > 0 {
		p.writeStorageClass(n.CondStorage)
	}
	if n.CondName != nil {
		if n.CondType != ast.NilID {
			p.printType(a, n.CondType)
			p.write(" ")
		} else {
			p.write("auto ")
		}
		p.write(n.CondName.Name)
		p.write(" = ")
	}
	p.printExpr(a, n.Cond, config.PrecLowest, false)
	p.write(")")
	p.printBody(a, n.Then)
	if n.Else != ast.NilID {
		p.write("\n")
		p.writeIndent()
		p.write("else")
		p.printBody(a, n.Else)
	}
}

func (p *CodePrinter) VisitWhileStmt(a *ast.Arena, id ast.NodeID, n *ast.WhileStmt) {
	p.write("while (")
	p.printExpr(a, n.Cond, config.PrecLowest, false)
	p.write(")")
	p.printBody(a, n.Body)
}

func (p *CodePrinter) VisitDoStmt(a *ast.Arena, id ast.NodeID, n *ast.DoStmt) {
	p.write("do")
	p.printBody(a, n.Body)
	p.write("\n")
	p.writeIndent()
	p.write("while (")
	p.printExpr(a, n.Cond, config.PrecLowest, false)
	p.write(");")
}

func (p *CodePrinter) VisitForStmt(a *ast.Arena, id ast.NodeID, n *ast.ForStmt) {
	p.write("for (")
	if n.Init != ast.NilID {
		a.Accept(n.Init, p)
	} else {
		p.write(";")
	}
	p.write(" ")
	p.printExpr(a, n.Cond, config.PrecLowest, false)
	p.write("; ")
	p.printExpr(a, n.Incr, config.PrecLowest, false)
	p.write(")")
	p.printBody(a, n.Body)
}

func (p *CodePrinter) VisitForeachStmt(a *ast.Arena, id ast.NodeID, n *ast.ForeachStmt) {
	if n.IsStatic {
		p.write("static ")
	}
	if n.Reverse {
		p.write("foreach_reverse (")
	} else {
		p.write("foreach (")
	}
	for i, param := range n.Params {
		if i > 0 {
			p.write(", ")
		}
		a.Accept(param, p)
	}
	p.write("; ")
	p.printExpr(a, n.Aggregate, config.PrecLowest, false)
	if n.UpperBound != ast.NilID {
		p.write(" .. ")
		p.printExpr(a, n.UpperBound, config.PrecLowest, false)
	}
	p.write(")")
	if n.IsStatic && len(n.Decls) > 0 {
		p.write(" ")
		p.printDeclBody(a, n.Decls)
		return
	}
	p.printBody(a, n.Body)
}

func (p *CodePrinter) VisitSwitchStmt(a *ast.Arena, id ast.NodeID, n *ast.SwitchStmt) {
	if n.Final {
		p.write("final ")
	}
	p.write("switch (")
	p.printExpr(a, n.Cond, config.PrecLowest, false)
	p.write(") ")
	if blk, ok := a.Get(n.Body).(*ast.BlockStmt); ok {
		p.printBlock(a, blk)
	} else {
		a.Accept(n.Body, p)
	}
}

func (p *CodePrinter) VisitCaseStmt(a *ast.Arena, id ast.NodeID, n *ast.CaseStmt) {
	for i, lbl := range n.Labels {
		if i > 0 {
			p.write(" ")
		}
		p.write("case ")
		p.printExpr(a, lbl.Low, config.PrecAssign, false)
		if lbl.High != ast.NilID {
			p.write(": .. case ")
			p.printExpr(a, lbl.High, config.PrecAssign, false)
		}
		p.write(":")
	}
}

func (p *CodePrinter) VisitDefaultStmt(a *ast.Arena, id ast.NodeID, n *ast.DefaultStmt) {
	p.write("default:")
}

func (p *CodePrinter) VisitBreakStmt(a *ast.Arena, id ast.NodeID, n *ast.BreakStmt) {
	p.write("break")
	if n.Label != nil {
		p.write(" ")
		p.write(n.Label.Name)
	}
	p.write(";")
}

func (p *CodePrinter) VisitContinueStmt(a *ast.Arena, id ast.NodeID, n *ast.ContinueStmt) {
	p.write("continue")
	if n.Label != nil {
		p.write(" ")
		p.write(n.Label.Name)
	}
	p.write(";")
}

func (p *CodePrinter) VisitGotoStmt(a *ast.Arena, id ast.NodeID, n *ast.GotoStmt) {
	p.write("goto ")
	switch {
	case n.IsDefault:
		p.write("default")
	case n.IsCase:
		p.write("case")
		if n.CaseExpr != ast.NilID {
			p.write(" ")
			p.printExpr(a, n.CaseExpr, config.PrecAssign, false)
		}
	default:
		p.write(identOr(n.Label, "_"))
	}
	p.write(";")
}

func (p *CodePrinter) VisitReturnStmt(a *ast.Arena, id ast.NodeID, n *ast.ReturnStmt) {
	p.write("return")
	if n.Value != ast.NilID {
		p.write(" ")
		p.printExpr(a, n.Value, config.PrecLowest, false)
	}
	p.write(";")
}

func (p *CodePrinter) VisitLabeledStmt(a *ast.Arena, id ast.NodeID, n *ast.LabeledStmt) {
	p.write(identOr(n.Label, "_"))
	p.write(": ")
	a.Accept(n.Stmt, p)
}

var scopeGuardKeyword = map[ast.ScopeGuardKind]string{
	ast.ScopeExit:    "exit",
	ast.ScopeFailure: "failure",
	ast.ScopeSuccess: "success",
}

func (p *CodePrinter) VisitScopeGuardStmt(a *ast.Arena, id ast.NodeID, n *ast.ScopeGuardStmt) {
	p.write("scope(")
	p.write(scopeGuardKeyword[n.Which])
	p.write(")")
	p.printBody(a, n.Body)
}

func (p *CodePrinter) VisitTryStmt(a *ast.Arena, id ast.NodeID, n *ast.TryStmt) {
	p.write("try ")
	if blk, ok := a.Get(n.Body).(*ast.BlockStmt); ok {
		p.printBlock(a, blk)
	} else {
		a.Accept(n.Body, p)
	}
	for _, c := range n.Catches {
		p.write("\n")
		p.writeIndent()
		a.Accept(c, p)
	}
	if n.Finally != ast.NilID {
		p.write("\n")
		p.writeIndent()
		p.write("finally ")
		if blk, ok := a.Get(n.Finally).(*ast.BlockStmt); ok {
			p.printBlock(a, blk)
		} else {
			a.Accept(n.Finally, p)
		}
	}
}

func (p *CodePrinter) VisitThrowStmt(a *ast.Arena, id ast.NodeID, n *ast.ThrowStmt) {
	p.write("throw ")
	p.printExpr(a, n.Value, config.PrecLowest, false)
	p.write(";")
}

func (p *CodePrinter) VisitWithStmt(a *ast.Arena, id ast.NodeID, n *ast.WithStmt) {
	p.write("with (")
	p.printExpr(a, n.Expr, config.PrecLowest, false)
	p.write(")")
	p.printBody(a, n.Body)
}

func (p *CodePrinter) VisitSynchronizedStmt(a *ast.Arena, id ast.NodeID, n *ast.SynchronizedStmt) {
	p.write("synchronized")
	if n.Lock != ast.NilID {
		p.write("(")
		p.printExpr(a, n.Lock, config.PrecLowest, false)
		p.write(")")
	}
	p.printBody(a, n.Body)
}

func (p *CodePrinter) VisitAsmStmt(a *ast.Arena, id ast.NodeID, n *ast.AsmStmt) {
	p.write("asm {\n")
	p.indent++
	for _, instr := range n.Instructions {
		p.writeIndent()
		for i, tok := range instr.Tokens {
			if i > 0 {
				p.write(" ")
			}
			if tok.Lexeme != "" {
				p.write(tok.Lexeme)
			} else {
				p.write(tok.Kind.String())
			}
		}
		p.write(";\n")
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitPragmaStmt(a *ast.Arena, id ast.NodeID, n *ast.PragmaStmt) {
	p.write("pragma(")
	p.write(identOr(n.Name, "_"))
	for _, arg := range n.Args {
		p.write(", ")
		p.printExpr(a, arg, config.PrecAssign, false)
	}
	p.write(")")
	p.printBody(a, n.Body)
}

func (p *CodePrinter) VisitStaticIfStmt(a *ast.Arena, id ast.NodeID, n *ast.StaticIfStmt) {
	p.write("static if (")
	p.printExpr(a, n.Cond, config.PrecLowest, false)
	p.write(")")
	p.printBody(a, n.Then)
	if n.Else != ast.NilID {
		p.write("\n")
		p.writeIndent()
		p.write("else")
		p.printBody(a, n.Else)
	}
}

func (p *CodePrinter) VisitStaticAssertStmt(a *ast.Arena, id ast.NodeID, n *ast.StaticAssertStmt) {
	p.write("static assert(")
	p.printExpr(a, n.Cond, config.PrecAssign, false)
	if n.Message != ast.NilID {
		p.write(", ")
		p.printExpr(a, n.Message, config.PrecAssign, false)
	}
	p.write(");")
}

func (p *CodePrinter) VisitStaticForeachStmt(a *ast.Arena, id ast.NodeID, n *ast.StaticForeachStmt) {
	if n.Reverse {
		p.write("static foreach_reverse (")
	} else {
		p.write("static foreach (")
	}
	for i, param := range n.Params {
		if i > 0 {
			p.write(", ")
		}
		a.Accept(param, p)
	}
	p.write("; ")
	p.printExpr(a, n.Aggregate, config.PrecLowest, false)
	if n.UpperBound != ast.NilID {
		p.write(" .. ")
		p.printExpr(a, n.UpperBound, config.PrecLowest, false)
	}
	p.write(")")
	p.printBody(a, n.Body)
}

func (p *CodePrinter) VisitConditionalStmt(a *ast.Arena, id ast.NodeID, n *ast.ConditionalStmt) {
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
	p.printBody(a, n.Then)
	if n.Else != ast.NilID {
		p.write("\n")
		p.writeIndent()
		p.write("else")
		p.printBody(a, n.Else)
	}
}

func (p *CodePrinter) VisitEmptyStmt(a *ast.Arena, id ast.NodeID, n *ast.EmptyStmt) {
	p.write(";")
}
