package prettyprinter

import (
	"github.com/mcgru/dparse/internal/ast"
	"github.com/mcgru/dparse/internal/config"
)

func (p *CodePrinter) VisitBasicType(a *ast.Arena, id ast.NodeID, n *ast.BasicType) {
	p.write(n.Kind_.String())
}

func (p *CodePrinter) VisitIdentifierType(a *ast.Arena, id ast.NodeID, n *ast.IdentifierType) {
	p.write(qualifiedName(n.Packages, n.Name))
	if len(n.Args) > 0 {
		p.write("!(")
		p.printNodeList(a, n.Args, false)
		p.write(")")
	}
}

func (p *CodePrinter) VisitPointerType(a *ast.Arena, id ast.NodeID, n *ast.PointerType) {
	p.printType(a, n.Elem)
	p.write("*")
}

func (p *CodePrinter) VisitStaticArrayType(a *ast.Arena, id ast.NodeID, n *ast.StaticArrayType) {
	p.printType(a, n.Elem)
	p.write("[")
	p.printExpr(a, n.Length, config.PrecAssign, false)
	p.write("]")
}

func (p *CodePrinter) VisitDynamicArrayType(a *ast.Arena, id ast.NodeID, n *ast.DynamicArrayType) {
	p.printType(a, n.Elem)
	p.write("[]")
}

func (p *CodePrinter) VisitAssociativeArrayType(a *ast.Arena, id ast.NodeID, n *ast.AssociativeArrayType) {
	p.printType(a, n.Elem)
	p.write("[")
	p.printType(a, n.Key)
	p.write("]")
}

func (p *CodePrinter) VisitFunctionType(a *ast.Arena, id ast.NodeID, n *ast.FunctionType) {
	p.printType(a, n.ReturnType)
	p.write(" function")
	p.printParams(a, n.Params)
}

func (p *CodePrinter) VisitDelegateType(a *ast.Arena, id ast.NodeID, n *ast.DelegateType) {
	p.printType(a, n.ReturnType)
	p.write(" delegate")
	p.printParams(a, n.Params)
}

func (p *CodePrinter) VisitVectorType(a *ast.Arena, id ast.NodeID, n *ast.VectorType) {
	p.write("__vector(")
	p.printType(a, n.Elem)
	p.write(")")
}

func (p *CodePrinter) VisitTypeofType(a *ast.Arena, id ast.NodeID, n *ast.TypeofType) {
	p.write("typeof(")
	if n.IsReturn {
		p.write("return")
	} else {
		p.printExpr(a, n.Expr, config.PrecLowest, false)
	}
	p.write(")")
}

func (p *CodePrinter) VisitTypeConstructorType(a *ast.Arena, id ast.NodeID, n *ast.TypeConstructorType) {
	p.write(n.Qualifier.String())
	p.write("(")
	p.printType(a, n.Inner)
	p.write(")")
}

func (p *CodePrinter) VisitTraitsType(a *ast.Arena, id ast.NodeID, n *ast.TraitsType) {
	p.write("__traits(")
	p.write(identOr(n.Name, "_"))
	for _, arg := range n.Args {
		p.write(", ")
		p.printExpr(a, arg, config.PrecAssign, false)
	}
	p.write(")")
}
