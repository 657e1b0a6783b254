package parser

import (
	"math/big"

	"github.com/mcgru/dparse/internal/ast"
	"github.com/mcgru/dparse/internal/config"
	"github.com/mcgru/dparse/internal/probe"
	"github.com/mcgru/dparse/internal/token"
)

// parseExpression is the comma-sequence entry point — PrecComma, the
// lowest level of the ladder.
func (p *Parser) parseExpression() ast.NodeID {
	left := p.parseAssignExpr()
	for p.is(token.COMMA) {
		tok := p.cur()
		p.advance()
		right := p.parseAssignExpr()
		left = p.ctx.Builder.MakeNode(&ast.BinaryExpr{Token: tok, Operator: token.COMMA, Left: left, Right: right})
	}
	return left
}

var assignOps = map[token.Kind]bool{
	token.ASSIGN: true, token.PLUS_ASSIGN: true, token.MINUS_ASSIGN: true,
	token.STAR_ASSIGN: true, token.SLASH_ASSIGN: true, token.PERCENT_ASSIGN: true,
	token.AND_ASSIGN: true, token.OR_ASSIGN: true, token.XOR_ASSIGN: true,
	token.TILDE_ASSIGN: true, token.SHL_ASSIGN: true, token.SHR_ASSIGN: true,
	token.USHR_ASSIGN: true, token.POW_ASSIGN: true,
}

// parseAssignExpr is PrecAssign: right-associative, one level above
// the conditional ladder.
func (p *Parser) parseAssignExpr() ast.NodeID {
	left := p.parseConditionalExpr()
	if assignOps[p.cur().Kind] {
		tok := p.cur()
		op := tok.Kind
		p.advance()
		right := p.parseAssignExpr()
		return p.ctx.Builder.MakeNode(&ast.AssignExpr{Token: tok, Operator: op, Target: left, Value: right})
	}
	return left
}

// parseConditionalExpr is `a ? b : c`, right-associative on the else
// branch per the grammar (`... : ConditionalExpression`).
func (p *Parser) parseConditionalExpr() ast.NodeID {
	cond := p.parseBinary(config.PrecOrOr)
	if p.is(token.QUESTION) {
		tok := p.cur()
		p.advance()
		then := p.parseExpression()
		p.eat(token.COLON)
		els := p.parseConditionalExpr()
		return p.ctx.Builder.MakeNode(&ast.ConditionalExpr{Token: tok, Cond: cond, Then: then, Else: els})
	}
	return cond
}

var bitwiseOps = map[token.Kind]bool{token.AMP: true, token.PIPE: true, token.CARET: true}
var relOrEqOps = map[token.Kind]bool{
	token.EQ: true, token.NE: true, token.LT: true, token.GT: true,
	token.LE: true, token.GE: true, token.IS: true, token.IN: true,
}

func crossLevelAmbiguous(outer, inner token.Kind) bool {
	return (bitwiseOps[outer] && relOrEqOps[inner]) || (bitwiseOps[inner] && relOrEqOps[outer])
}

// checkParens implements spec.md §4.4's "warn on ambiguous mixed
// precedence" note: if an operand (parseBinary checks both the left and
// the right one) is itself a
// BinaryExpr whose operator sits at the same nominal precedence level
// as outerOp but the grammar drew a real distinction (== vs <), or at
// a different level the grammar still considers confusing when mixed
// bare (& vs ==), emit a warning without changing what was parsed.
func (p *Parser) checkParens(outerOp token.Kind, operand ast.NodeID) {
	n := p.ctx.arena().Get(operand)
	be, ok := n.(*ast.BinaryExpr)
	if !ok || be.Operator == outerOp {
		return
	}
	if config.SamePrecedenceAmbiguous(outerOp, be.Operator) || crossLevelAmbiguous(outerOp, be.Operator) {
		p.warnf(be.Token.Loc, "%s and %s used together without parentheses; add parentheses for clarity", be.Operator, outerOp)
	}
}

// parseBinary implements precedence climbing from minPrec up to
// PrecPower, consulting config.PrecedenceTable as the single source of
// truth for both level and associativity.
func (p *Parser) parseBinary(minPrec config.Precedence) ast.NodeID {
	left := p.parseUnary()
	for {
		opTok := p.cur()
		prec := config.LookupPrecedence(opTok.Kind)
		if prec == config.PrecLowest || prec < minPrec {
			return left
		}
		p.checkParens(opTok.Kind, left)
		p.advance()
		next := prec + 1
		if config.AssociativityOf(opTok.Kind) == config.RightAssoc {
			next = prec
		}
		right := p.parseBinary(next)
		p.checkParens(opTok.Kind, right)
		left = p.ctx.Builder.MakeNode(&ast.BinaryExpr{Token: opTok, Operator: opTok.Kind, Left: left, Right: right})
	}
}

var unaryOps = map[token.Kind]bool{
	token.PLUS: true, token.MINUS: true, token.BANG: true, token.TILDE: true,
	token.AMP: true, token.STAR: true, token.INC: true, token.DEC: true,
}

func (p *Parser) parseUnary() ast.NodeID {
	switch p.cur().Kind {
	case token.CAST:
		return p.parsePostfix(p.parseCastExpr())
	case token.NEW:
		return p.parsePostfix(p.parseNewExpr())
	default:
		if unaryOps[p.cur().Kind] {
			tok := p.cur()
			op := tok.Kind
			p.advance()
			operand := p.parseUnary()
			return p.ctx.Builder.MakeNode(&ast.UnaryExpr{Token: tok, Operator: op, Operand: operand})
		}
	}
	return p.parsePostfix(p.parsePrimary())
}

func (p *Parser) parsePostfix(e ast.NodeID) ast.NodeID {
	for {
		switch p.cur().Kind {
		case token.INC, token.DEC:
			tok := p.cur()
			op := tok.Kind
			p.advance()
			e = p.ctx.Builder.MakeNode(&ast.PostfixExpr{Token: tok, Operator: op, Operand: e})
		case token.DOT:
			tok := p.cur()
			p.advance()
			name := p.intern(p.cur())
			p.eat(token.IDENT)
			var tplArgs []ast.NodeID
			if p.is(token.BANG) {
				tplArgs = p.parseTemplateArgs()
			}
			e = p.ctx.Builder.MakeNode(&ast.MemberExpr{Token: tok, Operand: e, Name: name, TplArgs: tplArgs})
		case token.LPAREN:
			tok := p.cur()
			args := p.parseArgumentList()
			e = p.ctx.Builder.MakeNode(&ast.CallExpr{Token: tok, Callee: e, Args: args})
		case token.LBRACKET:
			e = p.parseIndexOrSlice(e)
		default:
			return e
		}
	}
}

func (p *Parser) parseIndexOrSlice(operand ast.NodeID) ast.NodeID {
	tok := p.cur()
	p.advance() // [
	p.inBrackets++
	defer func() { p.inBrackets-- }()
	if p.is(token.RBRACKET) {
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.SliceExpr{Token: tok, Operand: operand})
	}
	first := p.parseAssignExpr()
	if p.is(token.DOTDOT) {
		p.advance()
		high := p.parseAssignExpr()
		p.eat(token.RBRACKET)
		return p.ctx.Builder.MakeNode(&ast.SliceExpr{Token: tok, Operand: operand, Low: first, High: high})
	}
	indices := []ast.NodeID{first}
	for p.is(token.COMMA) {
		p.advance()
		indices = append(indices, p.parseAssignExpr())
	}
	p.eat(token.RBRACKET)
	return p.ctx.Builder.MakeNode(&ast.IndexExpr{Token: tok, Operand: operand, Indices: indices})
}

var qualifierOnly = map[token.Kind]bool{
	token.CONST: true, token.IMMUTABLE: true, token.SHARED: true, token.INOUT: true,
}

func (p *Parser) parseCastExpr() ast.NodeID {
	tok := p.cur()
	p.advance()
	p.eat(token.LPAREN)
	form := ast.CastToType
	var typ ast.NodeID = ast.NilID
	var qual token.Kind = token.ILLEGAL
	if qualifierOnly[p.cur().Kind] && p.peek(1).Kind == token.RPAREN {
		qual = p.cur().Kind
		form = ast.CastQualifierOnly
		p.advance()
	} else {
		typ = p.parseType()
	}
	p.eat(token.RPAREN)
	operand := p.parseUnary()
	return p.ctx.Builder.MakeNode(&ast.CastExpr{Token: tok, Form: form, Type: typ, Qualifier: qual, Operand: operand})
}

func (p *Parser) parseNewExpr() ast.NodeID {
	tok := p.cur()
	p.advance()
	typ := p.parseType()
	if p.is(token.LBRACKET) {
		p.advance()
		length := p.parseAssignExpr()
		p.eat(token.RBRACKET)
		return p.ctx.Builder.MakeNode(&ast.NewExpr{Token: tok, Type: typ, ArrayLen: length})
	}
	if p.is(token.LPAREN) {
		args := p.parseArgumentList()
		return p.ctx.Builder.MakeNode(&ast.NewExpr{Token: tok, Type: typ, Args: args})
	}
	return p.ctx.Builder.MakeNode(&ast.NewExpr{Token: tok, Type: typ})
}

var isSpecKeyword = map[token.Kind]bool{
	token.STRUCT: true, token.UNION: true, token.CLASS: true, token.INTERFACE: true,
	token.ENUM: true, token.FUNCTION: true, token.DELEGATE: true, token.SUPER: true,
	token.CONST: true, token.IMMUTABLE: true, token.INOUT: true, token.SHARED: true,
	token.RETURN_ATTR: true,
}

func (p *Parser) parseIsExpr() ast.NodeID {
	tok := p.cur()
	p.advance()
	p.eat(token.LPAREN)
	typ := p.parseType()
	var ident *token.Identifier
	if p.is(token.IDENT) {
		ident = p.intern(p.cur())
		p.advance()
	}
	specKind := ast.IsSpecNone
	var specKeyword token.Kind = token.ILLEGAL
	var specType ast.NodeID = ast.NilID
	if p.is(token.COLON) {
		specKind = ast.IsSpecColon
		p.advance()
	} else if p.is(token.EQ) {
		specKind = ast.IsSpecEquals
		p.advance()
	}
	if specKind != ast.IsSpecNone {
		if isSpecKeyword[p.cur().Kind] {
			specKeyword = p.cur().Kind
			p.advance()
		} else {
			specType = p.parseType()
		}
	}
	var tparams []ast.NodeID
	for p.is(token.COMMA) {
		p.advance()
		tparams = append(tparams, p.parseTemplateParameter())
	}
	p.eat(token.RPAREN)
	return p.ctx.Builder.MakeNode(&ast.IsExpr{
		Token: tok, Type: typ, Ident: ident, SpecKind: specKind,
		SpecKeyword: specKeyword, SpecType: specType, TemplateParams: tparams,
	})
}

func (p *Parser) parseAssertExpr() ast.NodeID {
	tok := p.cur()
	p.advance()
	p.eat(token.LPAREN)
	cond := p.parseAssignExpr()
	msg := ast.NilID
	if p.is(token.COMMA) {
		p.advance()
		msg = p.parseAssignExpr()
	}
	p.eat(token.RPAREN)
	return p.ctx.Builder.MakeNode(&ast.AssertExpr{Token: tok, Cond: cond, Message: msg})
}

func (p *Parser) parseMixinExpr() ast.NodeID {
	tok := p.cur()
	p.advance()
	p.eat(token.LPAREN)
	var args []ast.NodeID
	for !p.is(token.RPAREN) && !p.is(token.EOF) {
		args = append(args, p.parseAssignExpr())
		if p.is(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.eat(token.RPAREN)
	resolved := p.resolveStringMixin(tok, args)
	return p.ctx.Builder.MakeNode(&ast.MixinExpr{Token: tok, Args: args, Resolved: resolved})
}

// resolveStringMixin re-parses a `mixin("...")` whose sole argument is
// a plain string literal with no interpolation, splicing its contents
// as a standalone expression in the same arena. Any other argument
// shape (a concatenation of several literal parts, an arbitrary
// expression, several arguments) cannot be resolved without evaluating
// a compile-time expression, which is outside what this frontend does,
// so it returns NilID and leaves Resolved unset.
func (p *Parser) resolveStringMixin(tok token.Token, args []ast.NodeID) ast.NodeID {
	if len(args) != 1 {
		return ast.NilID
	}
	lit, ok := p.ctx.arena().Get(args[0]).(*ast.StringLiteralExpr)
	if !ok || len(lit.Parts) != 1 {
		return ast.NilID
	}
	return ParseExpressionFromString(p.ctx, tok.Loc, lit.Parts[0])
}

func (p *Parser) parseImportExpr() ast.NodeID {
	tok := p.cur()
	p.advance()
	p.eat(token.LPAREN)
	path := p.parseAssignExpr()
	p.eat(token.RPAREN)
	return p.ctx.Builder.MakeNode(&ast.ImportExpr{Token: tok, Path: path})
}

func (p *Parser) parseTraitsExpr() ast.NodeID {
	tok := p.cur()
	p.advance()
	p.eat(token.LPAREN)
	name := p.intern(p.cur())
	p.eat(token.IDENT)
	var args []ast.NodeID
	for p.is(token.COMMA) {
		p.advance()
		args = append(args, p.parseTraitArg())
	}
	p.eat(token.RPAREN)
	return p.ctx.Builder.MakeNode(&ast.TraitsExpr{Token: tok, Name: name, Args: args})
}

func (p *Parser) parseTraitArg() ast.NodeID {
	if _, ok := probe.IsBasicType(p.cursor()); ok {
		tok := p.cur()
		typ := p.parseType()
		return p.ctx.Builder.MakeNode(&ast.TypeExpr{Token: tok, Type: typ})
	}
	return p.parseAssignExpr()
}

func (p *Parser) parseTypeidExpr() ast.NodeID {
	tok := p.cur()
	p.advance()
	p.eat(token.LPAREN)
	if _, ok := probe.IsBasicType(p.cursor()); ok {
		typ := p.parseType()
		p.eat(token.RPAREN)
		return p.ctx.Builder.MakeNode(&ast.TypeidExpr{Token: tok, Type: typ})
	}
	e := p.parseExpression()
	p.eat(token.RPAREN)
	return p.ctx.Builder.MakeNode(&ast.TypeidExpr{Token: tok, Expr: e})
}

// parseFunctionLiteral parses every lambda spelling after the optional
// `function`/`delegate`/`ref` leading keyword has already been
// consumed by the caller.
func (p *Parser) parseFunctionLiteral(isFunction, isRef bool, returnType ast.NodeID) ast.NodeID {
	tok := p.cur()
	params := p.parseParameterList()
	if p.is(token.ARROW) {
		p.advance()
		expr := p.parseAssignExpr()
		return p.ctx.Builder.MakeNode(&ast.FunctionLiteralExpr{
			Token: tok, LitKind: ast.FLExprArrow, IsFunction: isFunction, IsRef: isRef,
			ReturnType: returnType, Params: params, Expr: expr,
		})
	}
	body := p.parseBlockStmt()
	return p.ctx.Builder.MakeNode(&ast.FunctionLiteralExpr{
		Token: tok, LitKind: ast.FLBlock, IsFunction: isFunction, IsRef: isRef,
		ReturnType: returnType, Params: params, Body: body,
	})
}

func (p *Parser) parsePrimary() ast.NodeID {
	tok := p.cur()
	switch tok.Kind {
	case token.IDENT:
		name := p.intern(tok)
		p.advance()
		if p.is(token.ARROW) {
			p.advance()
			paramID := p.ctx.Builder.MakeNode(&ast.Parameter{Token: tok, Name: name})
			expr := p.parseAssignExpr()
			return p.ctx.Builder.MakeNode(&ast.FunctionLiteralExpr{
				Token: tok, LitKind: ast.FLIdentArrow, Params: []ast.NodeID{paramID}, Expr: expr,
			})
		}
		if p.is(token.BANG) {
			return p.finishTemplateScope(tok, name)
		}
		return p.ctx.Builder.MakeNode(&ast.IdentifierExpr{Token: tok, Name: name})

	case token.THIS:
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.ThisExpr{Token: tok})
	case token.SUPER:
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.SuperExpr{Token: tok})
	case token.DOLLAR:
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.DollarExpr{Token: tok})

	case token.TRUE_KW, token.FALSE_KW:
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.BoolLiteralExpr{Token: tok, Value: tok.Kind == token.TRUE_KW})
	case token.NULL_KW:
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.NullLiteralExpr{Token: tok})

	case token.INT_LITERAL:
		p.advance()
		v := ast.IntLiteralExpr{Token: tok, Value: tok.IntValue}
		if tok.UintValue != 0 && tok.IntValue == 0 {
			v.Unsigned = true
			v.Value = int64(tok.UintValue)
		}
		if tok.StringVal != nil {
			v.Big = new(big.Int).SetBytes(tok.StringVal)
		}
		return p.ctx.Builder.MakeNode(&v)
	case token.FLOAT_LITERAL:
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.FloatLiteralExpr{Token: tok, Value: tok.FloatValue})
	case token.CHAR_LITERAL:
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.CharLiteralExpr{Token: tok, Value: rune(tok.IntValue)})
	case token.STRING_LITERAL, token.HEXSTRING_LITERAL:
		return p.parseStringLiteral()

	case token.FILE_TOKEN, token.FILE_FULL_PATH, token.LINE_TOKEN, token.MODULE_TOKEN,
		token.FUNCTION_TOKEN, token.PRETTY_FUNCTION:
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.SpecialTokenExpr{Token: tok, Which: tok.Kind})

	case token.CAST:
		return p.parseCastExpr()
	case token.NEW:
		return p.parseNewExpr()
	case token.TYPEID:
		return p.parseTypeidExpr()
	case token.TRAITS:
		return p.parseTraitsExpr()
	case token.IS:
		return p.parseIsExpr()
	case token.ASSERT:
		return p.parseAssertExpr()
	case token.MIXIN:
		return p.parseMixinExpr()
	case token.IMPORT:
		return p.parseImportExpr()

	case token.FUNCTION, token.DELEGATE:
		isFunc := tok.Kind == token.FUNCTION
		p.advance()
		var ret ast.NodeID = ast.NilID
		if !p.is(token.LPAREN) {
			ret = p.parseType()
		}
		return p.parseFunctionLiteral(isFunc, false, ret)

	case token.REF:
		if p.peek(1).Kind == token.LPAREN {
			p.advance()
			return p.parseFunctionLiteral(false, true, ast.NilID)
		}
		p.errorf("unexpected %s", tok)
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.ErrorExpr{Token: tok})

	case token.LBRACE:
		body := p.parseBlockStmt()
		return p.ctx.Builder.MakeNode(&ast.FunctionLiteralExpr{Token: tok, LitKind: ast.FLBlock, Body: body})

	case token.LBRACKET:
		return p.parseArrayOrAssocLiteral()

	case token.LPAREN:
		return p.parseParenOrLambda()

	case token.TYPEOF, token.VECTOR:
		typ := p.parseType()
		return p.parsePostfix(p.ctx.Builder.MakeNode(&ast.TypeExpr{Token: tok, Type: typ}))

	default:
		if basicTypeKeywords[tok.Kind] {
			typ := p.parseType()
			return p.ctx.Builder.MakeNode(&ast.TypeExpr{Token: tok, Type: typ})
		}
		p.errorf("unexpected %s in expression", tok)
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.ErrorExpr{Token: tok})
	}
}

func (p *Parser) parseArrayOrAssocLiteral() ast.NodeID {
	tok := p.cur()
	p.advance()
	p.inBrackets++
	defer func() { p.inBrackets-- }()
	if p.is(token.RBRACKET) {
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.ArrayLiteralExpr{Token: tok})
	}
	first := p.parseAssignExpr()
	if p.is(token.COLON) {
		p.advance()
		val := p.parseAssignExpr()
		entries := []ast.AssocEntry{{Key: first, Value: val}}
		for p.is(token.COMMA) {
			p.advance()
			if p.is(token.RBRACKET) {
				break
			}
			k := p.parseAssignExpr()
			p.eat(token.COLON)
			v := p.parseAssignExpr()
			entries = append(entries, ast.AssocEntry{Key: k, Value: v})
		}
		p.eat(token.RBRACKET)
		return p.ctx.Builder.MakeNode(&ast.AssocArrayLiteralExpr{Token: tok, Entries: entries})
	}
	elements := []ast.NodeID{first}
	for p.is(token.COMMA) {
		p.advance()
		if p.is(token.RBRACKET) {
			break
		}
		elements = append(elements, p.parseAssignExpr())
	}
	p.eat(token.RBRACKET)
	return p.ctx.Builder.MakeNode(&ast.ArrayLiteralExpr{Token: tok, Elements: elements})
}

// parseParenOrLambda disambiguates `(params) => expr` / `(params) {
// ... }` from a plain parenthesised expression using the is_parameters
// probe before committing to either path.
func (p *Parser) parseParenOrLambda() ast.NodeID {
	if after, ok := probe.IsParameters(p.cursor()); ok {
		if after.Is(token.ARROW) || after.Is(token.LBRACE) {
			return p.parseFunctionLiteral(false, false, ast.NilID)
		}
	}
	p.advance() // (
	p.inBrackets++
	e := p.parseExpression()
	p.inBrackets--
	p.eat(token.RPAREN)
	return e
}

// parseStringLiteral concatenates adjacent string literal tokens into
// one node. Implicit concatenation is legacy syntax (spec.md §4.4/§7)
// and is deprecated once per extra adjacent literal; mismatched
// postfix qualifiers additionally warn.
func (p *Parser) parseStringLiteral() ast.NodeID {
	tok := p.cur()
	var parts []string
	postfix := tok.Postfix
	parts = append(parts, string(tok.StringVal))
	p.advance()
	for p.is(token.STRING_LITERAL) || p.is(token.HEXSTRING_LITERAL) {
		next := p.cur()
		p.deprecatedf(next.Loc, "implicit concatenation of adjacent string literals is deprecated; use ~ instead")
		if next.Postfix != 0 && postfix != 0 && next.Postfix != postfix {
			p.warnf(next.Loc, "mismatched string literal postfix %q after %q", next.Postfix, postfix)
		}
		if postfix == 0 {
			postfix = next.Postfix
		}
		parts = append(parts, string(next.StringVal))
		p.advance()
	}
	return p.ctx.Builder.MakeNode(&ast.StringLiteralExpr{Token: tok, Parts: parts, Postfix: postfix})
}

func (p *Parser) parseTemplateArgs() []ast.NodeID {
	p.advance() // !
	if p.is(token.LPAREN) {
		p.advance()
		var args []ast.NodeID
		for !p.is(token.RPAREN) && !p.is(token.EOF) {
			args = append(args, p.parseTemplateArg())
			if p.is(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
		p.eat(token.RPAREN)
		return args
	}
	return []ast.NodeID{p.parseTemplateArg()}
}

func (p *Parser) parseTemplateArg() ast.NodeID {
	if _, ok := probe.IsBasicType(p.cursor()); ok && !p.is(token.IDENT) {
		return p.parseType()
	}
	if p.is(token.IDENT) {
		if after, ok := probe.IsBasicType(p.cursor()); ok {
			if after.Is(token.RPAREN) || after.Is(token.COMMA) {
				return p.parseType()
			}
		}
	}
	return p.parseAssignExpr()
}
