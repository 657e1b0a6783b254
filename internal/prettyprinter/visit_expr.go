package prettyprinter

import (
	"github.com/mcgru/dparse/internal/ast"
	"github.com/mcgru/dparse/internal/config"
	"github.com/mcgru/dparse/internal/token"
)

func (p *CodePrinter) VisitIdentifierExpr(a *ast.Arena, id ast.NodeID, n *ast.IdentifierExpr) {
	p.write(identOr(n.Name, "_"))
}

func (p *CodePrinter) VisitScopeExpr(a *ast.Arena, id ast.NodeID, n *ast.ScopeExpr) {
	p.write(identOr(n.Name, "_"))
	p.write("!(")
	p.printNodeList(a, n.Args, false)
	p.write(")")
}

// needsParens decides, using the shared precedence table rather than a
// duplicated string-keyed one, whether the current expression's
// operator must be parenthesized given the enclosing context recorded
// in parentPrec/isRight.
func (p *CodePrinter) needsParens(opPrec config.Precedence, rightAssoc bool) bool {
	if opPrec < p.parentPrec {
		return true
	}
	if opPrec == p.parentPrec {
		if p.isRight && !rightAssoc {
			return true
		}
		if !p.isRight && rightAssoc {
			return true
		}
	}
	return false
}

func (p *CodePrinter) VisitBinaryExpr(a *ast.Arena, id ast.NodeID, n *ast.BinaryExpr) {
	prec := config.LookupPrecedence(n.Operator)
	assoc := config.AssociativityOf(n.Operator)
	wrap := p.needsParens(prec, assoc == config.RightAssoc)
	if wrap {
		p.write("(")
	}
	p.printExpr(a, n.Left, prec, false)
	p.write(" ")
	p.write(n.Operator.String())
	p.write(" ")
	p.printExpr(a, n.Right, prec, true)
	if wrap {
		p.write(")")
	}
}

func (p *CodePrinter) VisitUnaryExpr(a *ast.Arena, id ast.NodeID, n *ast.UnaryExpr) {
	wrap := p.needsParens(config.PrecUnary, false)
	if wrap {
		p.write("(")
	}
	p.write(n.Operator.String())
	p.printExpr(a, n.Operand, config.PrecUnary, false)
	if wrap {
		p.write(")")
	}
}

func (p *CodePrinter) VisitPostfixExpr(a *ast.Arena, id ast.NodeID, n *ast.PostfixExpr) {
	p.printExpr(a, n.Operand, config.PrecPostfix, false)
	p.write(n.Operator.String())
}

func (p *CodePrinter) VisitAssignExpr(a *ast.Arena, id ast.NodeID, n *ast.AssignExpr) {
	wrap := p.needsParens(config.PrecAssign, true)
	if wrap {
		p.write("(")
	}
	p.printExpr(a, n.Target, config.PrecAssign, false)
	p.write(" ")
	p.write(n.Operator.String())
	p.write(" ")
	p.printExpr(a, n.Value, config.PrecAssign, true)
	if wrap {
		p.write(")")
	}
}

func (p *CodePrinter) VisitConditionalExpr(a *ast.Arena, id ast.NodeID, n *ast.ConditionalExpr) {
	wrap := p.needsParens(config.PrecConditional, true)
	if wrap {
		p.write("(")
	}
	p.printExpr(a, n.Cond, config.PrecConditional, false)
	p.write(" ? ")
	p.printExpr(a, n.Then, config.PrecConditional, false)
	p.write(" : ")
	p.printExpr(a, n.Else, config.PrecConditional, true)
	if wrap {
		p.write(")")
	}
}

func (p *CodePrinter) VisitCallExpr(a *ast.Arena, id ast.NodeID, n *ast.CallExpr) {
	p.printExpr(a, n.Callee, config.PrecPostfix, false)
	p.printArgs(a, n.Args)
}

func (p *CodePrinter) VisitIndexExpr(a *ast.Arena, id ast.NodeID, n *ast.IndexExpr) {
	p.printExpr(a, n.Operand, config.PrecPostfix, false)
	p.write("[")
	p.printNodeList(a, n.Indices, false)
	p.write("]")
}

func (p *CodePrinter) VisitSliceExpr(a *ast.Arena, id ast.NodeID, n *ast.SliceExpr) {
	p.printExpr(a, n.Operand, config.PrecPostfix, false)
	p.write("[")
	p.printExpr(a, n.Low, config.PrecAssign, false)
	p.write("..")
	p.printExpr(a, n.High, config.PrecAssign, false)
	p.write("]")
}

func (p *CodePrinter) VisitMemberExpr(a *ast.Arena, id ast.NodeID, n *ast.MemberExpr) {
	p.printExpr(a, n.Operand, config.PrecPostfix, false)
	if n.Optional {
		p.write("?.")
	} else {
		p.write(".")
	}
	p.write(identOr(n.Name, "_"))
	if n.TplArgs != nil {
		p.write("!(")
		p.printNodeList(a, n.TplArgs, false)
		p.write(")")
	}
}

func (p *CodePrinter) VisitCastExpr(a *ast.Arena, id ast.NodeID, n *ast.CastExpr) {
	p.write("cast(")
	if n.Form == ast.CastQualifierOnly {
		p.write(n.Qualifier.String())
	} else {
		p.printType(a, n.Type)
	}
	p.write(")")
	p.printExpr(a, n.Operand, config.PrecUnary, false)
}

func (p *CodePrinter) VisitNewExpr(a *ast.Arena, id ast.NodeID, n *ast.NewExpr) {
	p.write("new ")
	p.printType(a, n.Type)
	if n.ArrayLen != ast.NilID {
		p.write("[")
		p.printExpr(a, n.ArrayLen, config.PrecLowest, false)
		p.write("]")
		return
	}
	p.printArgs(a, n.Args)
}

func (p *CodePrinter) VisitTypeidExpr(a *ast.Arena, id ast.NodeID, n *ast.TypeidExpr) {
	p.write("typeid(")
	if n.Type != ast.NilID {
		p.printType(a, n.Type)
	} else {
		p.printExpr(a, n.Expr, config.PrecLowest, false)
	}
	p.write(")")
}

func (p *CodePrinter) VisitTraitsExpr(a *ast.Arena, id ast.NodeID, n *ast.TraitsExpr) {
	p.write("__traits(")
	p.write(identOr(n.Name, "_"))
	for _, arg := range n.Args {
		p.write(", ")
		p.printExpr(a, arg, config.PrecAssign, false)
	}
	p.write(")")
}

func (p *CodePrinter) VisitIsExpr(a *ast.Arena, id ast.NodeID, n *ast.IsExpr) {
	p.write("is(")
	p.printType(a, n.Type)
	if n.Ident != nil {
		p.write(" ")
		p.write(n.Ident.Name)
	}
	switch n.SpecKind {
	case ast.IsSpecColon:
		p.write(" : ")
	case ast.IsSpecEquals:
		p.write(" == ")
	}
	if n.SpecType != ast.NilID {
		p.printType(a, n.SpecType)
	} else if n.SpecKeyword != token.ILLEGAL {
		p.write(n.SpecKeyword.String())
	}
	for _, tp := range n.TemplateParams {
		p.write(", ")
		a.Accept(tp, p)
	}
	p.write(")")
}

func (p *CodePrinter) VisitAssertExpr(a *ast.Arena, id ast.NodeID, n *ast.AssertExpr) {
	p.write("assert(")
	p.printExpr(a, n.Cond, config.PrecAssign, false)
	if n.Message != ast.NilID {
		p.write(", ")
		p.printExpr(a, n.Message, config.PrecAssign, false)
	}
	p.write(")")
}

func (p *CodePrinter) VisitMixinExpr(a *ast.Arena, id ast.NodeID, n *ast.MixinExpr) {
	p.write("mixin(")
	p.printNodeList(a, n.Args, false)
	p.write(")")
}

func (p *CodePrinter) VisitImportExpr(a *ast.Arena, id ast.NodeID, n *ast.ImportExpr) {
	p.write("import(")
	p.printExpr(a, n.Path, config.PrecAssign, false)
	p.write(")")
}

func (p *CodePrinter) VisitArrayLiteralExpr(a *ast.Arena, id ast.NodeID, n *ast.ArrayLiteralExpr) {
	p.write("[")
	p.printNodeList(a, n.Elements, false)
	p.write("]")
}

func (p *CodePrinter) VisitAssocArrayLiteralExpr(a *ast.Arena, id ast.NodeID, n *ast.AssocArrayLiteralExpr) {
	p.write("[")
	for i, e := range n.Entries {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(a, e.Key, config.PrecAssign, false)
		p.write(": ")
		p.printExpr(a, e.Value, config.PrecAssign, false)
	}
	p.write("]")
}

func (p *CodePrinter) VisitFunctionLiteralExpr(a *ast.Arena, id ast.NodeID, n *ast.FunctionLiteralExpr) {
	switch n.LitKind {
	case ast.FLIdentArrow:
		if len(n.Params) == 1 {
			if param, ok := a.Get(n.Params[0]).(*ast.Parameter); ok {
				p.write(identOr(param.Name, "_"))
			}
		}
		p.write(" => ")
		p.printExpr(a, n.Expr, config.PrecAssign, false)
	case ast.FLExprArrow:
		if n.IsFunction {
			p.write("function ")
		} else if n.IsRef {
			p.write("ref ")
		}
		p.printParams(a, n.Params)
		p.write(" => ")
		p.printExpr(a, n.Expr, config.PrecAssign, false)
	default:
		if n.IsFunction {
			p.write("function ")
		} else if len(n.Params) > 0 || n.ReturnType != ast.NilID {
			p.write("delegate ")
		}
		if n.ReturnType != ast.NilID {
			p.printType(a, n.ReturnType)
			p.write(" ")
		}
		if len(n.Params) > 0 {
			p.printParams(a, n.Params)
			p.write(" ")
		}
		if blk, ok := a.Get(n.Body).(*ast.BlockStmt); ok {
			p.printBlock(a, blk)
		} else {
			a.Accept(n.Body, p)
		}
	}
}

func (p *CodePrinter) VisitThisExpr(a *ast.Arena, id ast.NodeID, n *ast.ThisExpr) {
	p.write("this")
}

func (p *CodePrinter) VisitSuperExpr(a *ast.Arena, id ast.NodeID, n *ast.SuperExpr) {
	p.write("super")
}

func (p *CodePrinter) VisitDollarExpr(a *ast.Arena, id ast.NodeID, n *ast.DollarExpr) {
	p.write("$")
}

func (p *CodePrinter) VisitTypeExpr(a *ast.Arena, id ast.NodeID, n *ast.TypeExpr) {
	p.printType(a, n.Type)
}

func (p *CodePrinter) VisitIntLiteralExpr(a *ast.Arena, id ast.NodeID, n *ast.IntLiteralExpr) {
	p.write(formatIntLiteral(n))
}

func (p *CodePrinter) VisitFloatLiteralExpr(a *ast.Arena, id ast.NodeID, n *ast.FloatLiteralExpr) {
	p.write(formatFloatLiteral(n))
}

func (p *CodePrinter) VisitCharLiteralExpr(a *ast.Arena, id ast.NodeID, n *ast.CharLiteralExpr) {
	p.write(formatCharLiteral(n))
}

func (p *CodePrinter) VisitStringLiteralExpr(a *ast.Arena, id ast.NodeID, n *ast.StringLiteralExpr) {
	p.write(formatStringLiteral(n))
}

func (p *CodePrinter) VisitBoolLiteralExpr(a *ast.Arena, id ast.NodeID, n *ast.BoolLiteralExpr) {
	if n.Value {
		p.write("true")
	} else {
		p.write("false")
	}
}

func (p *CodePrinter) VisitNullLiteralExpr(a *ast.Arena, id ast.NodeID, n *ast.NullLiteralExpr) {
	p.write("null")
}

func (p *CodePrinter) VisitSpecialTokenExpr(a *ast.Arena, id ast.NodeID, n *ast.SpecialTokenExpr) {
	p.write(n.Which.String())
}

func (p *CodePrinter) VisitError(a *ast.Arena, id ast.NodeID, n ast.Node) {
	p.write("<error>")
}
