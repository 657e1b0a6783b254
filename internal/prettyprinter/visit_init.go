package prettyprinter

import (
	"github.com/mcgru/dparse/internal/ast"
	"github.com/mcgru/dparse/internal/config"
)

func (p *CodePrinter) VisitVoidInitializer(a *ast.Arena, id ast.NodeID, n *ast.VoidInitializer) {
	p.write("void")
}

func (p *CodePrinter) VisitExprInitializer(a *ast.Arena, id ast.NodeID, n *ast.ExprInitializer) {
	p.printExpr(a, n.Expr, config.PrecAssign, false)
}

func (p *CodePrinter) VisitStructInitializer(a *ast.Arena, id ast.NodeID, n *ast.StructInitializer) {
	p.write("{")
	for i, e := range n.Entries {
		if i > 0 {
			p.write(", ")
		}
		if e.Name != nil {
			p.write(e.Name.Name)
			p.write(": ")
		}
		p.printInit(a, e.Initializer)
	}
	p.write("}")
}

func (p *CodePrinter) VisitArrayInitializer(a *ast.Arena, id ast.NodeID, n *ast.ArrayInitializer) {
	p.write("[")
	for i, e := range n.Entries {
		if i > 0 {
			p.write(", ")
		}
		if e.Index != ast.NilID {
			p.printExpr(a, e.Index, config.PrecAssign, false)
			p.write(": ")
		}
		p.printInit(a, e.Initializer)
	}
	p.write("]")
}
