package parser

import (
	"github.com/mcgru/dparse/internal/ast"
	"github.com/mcgru/dparse/internal/config"
	"github.com/mcgru/dparse/internal/probe"
	"github.com/mcgru/dparse/internal/token"
)

// statementStartKeywords names the tokens that can only begin a
// statement, never a struct-initializer entry. Used to disambiguate a
// bare `{ ... }` in initializer position (spec.md §4.5): if the first
// token after `{` is one of these, the brace is a function-literal
// body, not a struct initializer.
var statementStartKeywords = map[token.Kind]bool{
	token.IF: true, token.WHILE: true, token.DO: true, token.FOR: true,
	token.FOREACH: true, token.FOREACH_REVERSE: true, token.SWITCH: true,
	token.CASE: true, token.DEFAULT: true, token.BREAK: true,
	token.CONTINUE: true, token.GOTO: true, token.RETURN_ATTR: true,
	token.TRY: true, token.THROW: true, token.WITH: true,
	token.SYNCHRONIZED: true, token.ASM: true, token.PRAGMA: true,
}

func (p *Parser) parseBlockStmt() ast.NodeID {
	tok := p.cur()
	p.eat(token.LBRACE)
	savedElse := p.lookingForElse
	p.lookingForElse = false
	var stmts []ast.NodeID
	for !p.is(token.RBRACE) && !p.is(token.EOF) {
		stmts = append(stmts, p.parseStatement())
	}
	p.eat(token.RBRACE)
	p.lookingForElse = savedElse
	return p.ctx.Builder.MakeNode(&ast.BlockStmt{Token: tok, Stmts: stmts})
}

// parseStatement dispatches on the current token's keyword, falling
// back to the statement-or-declaration disambiguation
// (NeedDeclaratorIdMustIfDStyle) that spec.md §4.3 names for the
// default branch.
func (p *Parser) parseStatement() ast.NodeID {
	tok := p.cur()
	switch tok.Kind {
	case token.SEMICOLON:
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.EmptyStmt{Token: tok})
	case token.LBRACE:
		return p.parseBlockStmt()
	case token.IF:
		return p.parseIfStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.DO:
		return p.parseDoStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.FOREACH, token.FOREACH_REVERSE:
		return p.parseForeachStmt()
	case token.SWITCH:
		return p.parseSwitchStmt()
	case token.CASE:
		return p.parseCaseStmt()
	case token.DEFAULT:
		return p.parseDefaultStmt()
	case token.BREAK:
		return p.parseBreakStmt()
	case token.CONTINUE:
		return p.parseContinueStmt()
	case token.GOTO:
		return p.parseGotoStmt()
	case token.RETURN_ATTR:
		return p.parseReturnStmt()
	case token.TRY:
		return p.parseTryStmt()
	case token.THROW:
		return p.parseThrowStmt()
	case token.WITH:
		return p.parseWithStmt()
	case token.SYNCHRONIZED:
		return p.parseSynchronizedStmt()
	case token.SCOPE:
		if p.peek(1).Kind == token.LPAREN {
			return p.parseScopeGuardStmt()
		}
	case token.ASM:
		return p.parseAsmStmt()
	case token.PRAGMA:
		return p.parsePragmaStmt()
	case token.STATIC:
		if p.peek(1).Kind == token.IF {
			return p.parseStaticIfStmt()
		}
		if p.peek(1).Kind == token.ASSERT {
			p.advance()
			return p.parseStaticAssertStmt()
		}
		if p.peek(1).Kind == token.FOREACH || p.peek(1).Kind == token.FOREACH_REVERSE {
			return p.parseStaticForeachStmt()
		}
	case token.DEBUG:
		return p.parseConditionalStmt(true)
	case token.VERSION:
		return p.parseConditionalStmt(false)
	case token.IDENT:
		if p.peek(1).Kind == token.COLON && p.inBrackets == 0 {
			return p.parseLabeledStmt()
		}
	}

	if tok.Kind == token.ASSERT {
		// `assert(...)` used bare as a statement.
		return p.parseExprStmt()
	}

	return p.parseStatementOrDeclaration()
}

// parseStatementOrDeclaration probes whether the current position
// starts a declaration (must_if_d_style): storage-class keywords and
// aggregate/enum/alias/template keywords are unambiguous declarations;
// anything else goes through is_basic_type + is_declarator, biasing
// toward the expression reading on a tie per spec.md §4.3.
func (p *Parser) parseStatementOrDeclaration() ast.NodeID {
	if p.startsUnambiguousDecl() {
		tok := p.cur()
		decl := p.parseDeclDef(ast.PrefixAttributes{})
		return p.ctx.Builder.MakeNode(&ast.DeclStmt{Token: tok, Decl: decl})
	}

	if base, ok := probe.IsBasicType(p.cursor()); ok {
		if _, haveID, _, declOK := probe.IsDeclarator(base); declOK && haveID {
			tok := p.cur()
			decl := p.parseDeclDef(ast.PrefixAttributes{})
			return p.ctx.Builder.MakeNode(&ast.DeclStmt{Token: tok, Decl: decl})
		}
	}

	return p.parseExprStmt()
}

func (p *Parser) startsUnambiguousDecl() bool {
	switch p.cur().Kind {
	case token.STRUCT, token.UNION, token.CLASS, token.INTERFACE, token.ENUM,
		token.TEMPLATE, token.ALIAS, token.MIXIN, token.UNITTEST, token.INVARIANT,
		token.IMPORT:
		return true
	case token.CONST, token.IMMUTABLE, token.SHARED, token.INOUT:
		return p.peek(1).Kind != token.LPAREN
	case token.FINAL, token.AUTO, token.OVERRIDE, token.ABSTRACT, token.NOTHROW,
		token.PURE, token.GSHARED, token.DEPRECATED, token.EXTERN:
		return true
	}
	return false
}

func (p *Parser) parseExprStmt() ast.NodeID {
	tok := p.cur()
	e := p.parseExpression()
	p.eat(token.SEMICOLON)
	return p.ctx.Builder.MakeNode(&ast.ExprStmt{Token: tok, Expr: e})
}

func (p *Parser) parseLabeledStmt() ast.NodeID {
	tok := p.cur()
	label := p.intern(tok)
	p.advance()
	p.advance() // :
	stmt := p.parseStatement()
	return p.ctx.Builder.MakeNode(&ast.LabeledStmt{Token: tok, Label: label, Stmt: stmt})
}

// isAutoBinding reports whether the next three tokens are `auto id =`,
// the inferred-type binding form of an if condition.
func (p *Parser) isAutoBinding() bool {
	return p.is(token.AUTO) && p.peek(1).Kind == token.IDENT && p.peek(2).Kind == token.ASSIGN
}

// parseIfCondition covers the three IfCondition shapes: a plain boolean
// expression, the `auto id = expr` inferred-type binding (auto is
// special-cased rather than folded into the generic storage-class loop,
// since it never introduces an explicit type the way the other storage
// classes do), and a storage-class-qualified typed binding.
func (p *Parser) parseIfCondition() (storage config.Set, typ ast.NodeID, name *token.Identifier, cond ast.NodeID) {
	typ, name = ast.NilID, nil
	for !p.isAutoBinding() {
		sc, known := config.KindToStorageClass[p.cur().Kind]
		if !known {
			break
		}
		if qualifierOnly[p.cur().Kind] && p.peek(1).Kind == token.LPAREN {
			break
		}
		merged, _, _ := storage.Append(sc)
		storage = merged
		p.advance()
	}
	if p.isAutoBinding() {
		merged, _, _ := storage.Append(config.SCAuto)
		storage = merged
		p.advance() // auto
		name = p.intern(p.cur())
		p.advance() // id
		p.advance() // =
		cond = p.parseExpression()
		return
	}
	if storage != 0 {
		typ = p.parseType()
		name = p.intern(p.cur())
		p.eat(token.IDENT)
		p.eat(token.ASSIGN)
		cond = p.parseExpression()
		return
	}
	cond = p.parseExpression()
	return
}

func (p *Parser) parseIfStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	p.eat(token.LPAREN)
	storage, typ, name, cond := p.parseIfCondition()
	p.eat(token.RPAREN)
	p.lookingForElse = true
	then := p.parseStatement()
	var els ast.NodeID = ast.NilID
	if p.is(token.ELSE) {
		p.advance()
		els = p.parseStatement()
	}
	p.lookingForElse = false
	return p.ctx.Builder.MakeNode(&ast.IfStmt{
		Token: tok, CondStorage: storage, CondType: typ, CondName: name,
		Cond: cond, Then: then, Else: els,
	})
}

func (p *Parser) parseWhileStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	p.eat(token.LPAREN)
	_, _, _, cond := p.parseIfCondition()
	p.eat(token.RPAREN)
	body := p.parseStatement()
	return p.ctx.Builder.MakeNode(&ast.WhileStmt{Token: tok, Cond: cond, Body: body})
}

func (p *Parser) parseDoStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	body := p.parseStatement()
	p.eat(token.WHILE)
	p.eat(token.LPAREN)
	cond := p.parseExpression()
	p.eat(token.RPAREN)
	p.eat(token.SEMICOLON)
	return p.ctx.Builder.MakeNode(&ast.DoStmt{Token: tok, Body: body, Cond: cond})
}

func (p *Parser) parseForStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	p.eat(token.LPAREN)
	init := ast.NilID
	if !p.is(token.SEMICOLON) {
		init = p.parseStatementOrDeclaration()
	} else {
		p.advance()
	}
	cond := ast.NilID
	if !p.is(token.SEMICOLON) {
		cond = p.parseExpression()
	}
	p.eat(token.SEMICOLON)
	incr := ast.NilID
	if !p.is(token.RPAREN) {
		incr = p.parseExpression()
	}
	p.eat(token.RPAREN)
	body := p.parseStatement()
	return p.ctx.Builder.MakeNode(&ast.ForStmt{Token: tok, Init: init, Cond: cond, Incr: incr, Body: body})
}

func (p *Parser) parseForeachStmt() ast.NodeID {
	tok := p.cur()
	reverse := tok.Kind == token.FOREACH_REVERSE
	p.advance()
	p.eat(token.LPAREN)
	var params []ast.NodeID
	for {
		params = append(params, p.parseForeachParameter())
		if p.is(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.eat(token.SEMICOLON)
	aggregate := p.parseExpression()
	upper := ast.NilID
	if p.is(token.DOTDOT) {
		p.advance()
		upper = p.parseExpression()
	}
	p.eat(token.RPAREN)
	body := p.parseStatement()
	return p.ctx.Builder.MakeNode(&ast.ForeachStmt{
		Token: tok, Reverse: reverse, Params: params, Aggregate: aggregate,
		UpperBound: upper, Body: body,
	})
}

var foreachStorageKeywords = map[token.Kind]bool{
	token.REF: true, token.CONST: true, token.IMMUTABLE: true, token.SHARED: true, token.INOUT: true,
}

func (p *Parser) parseForeachParameter() ast.NodeID {
	tok := p.cur()
	var sc ast.ParamStorageClass
	for foreachStorageKeywords[p.cur().Kind] {
		if qualifierOnly[p.cur().Kind] && p.peek(1).Kind == token.LPAREN {
			break
		}
		sc |= ast.ParamStorageClass(config.KindToStorageClass[p.cur().Kind])
		p.advance()
	}
	isAlias := false
	if p.is(token.ALIAS) {
		isAlias = true
		p.advance()
	}
	typ := ast.NilID
	var name *token.Identifier
	if p.is(token.IDENT) && (p.peek(1).Kind == token.SEMICOLON || p.peek(1).Kind == token.COMMA) {
		name = p.intern(p.cur())
		p.advance()
	} else {
		typ = p.parseType()
		name = p.intern(p.cur())
		p.eat(token.IDENT)
	}
	return p.ctx.Builder.MakeNode(&ast.ForeachParameter{
		Token: tok, StorageClass: sc, IsAlias: isAlias, Type: typ, Name: name,
	})
}

func (p *Parser) parseSwitchStmt() ast.NodeID {
	tok := p.cur()
	final := false
	if p.is(token.FINAL) {
		final = true
		p.advance()
	}
	p.advance() // switch
	p.eat(token.LPAREN)
	cond := p.parseExpression()
	p.eat(token.RPAREN)
	body := p.parseBlockStmt()
	return p.ctx.Builder.MakeNode(&ast.SwitchStmt{Token: tok, Final: final, Cond: cond, Body: body})
}

func (p *Parser) parseCaseStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	var labels []ast.CaseLabel
	for {
		low := p.parseAssignExpr()
		high := ast.NilID
		if p.is(token.COLON) && p.peek(1).Kind == token.DOTDOT {
			// case lo: .. case hi:  — D's range-case spelling
			p.advance()
			p.advance()
			p.eat(token.CASE)
			high = p.parseAssignExpr()
		}
		labels = append(labels, ast.CaseLabel{Low: low, High: high})
		if p.is(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.eat(token.COLON)
	return p.ctx.Builder.MakeNode(&ast.CaseStmt{Token: tok, Labels: labels})
}

func (p *Parser) parseDefaultStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	p.eat(token.COLON)
	return p.ctx.Builder.MakeNode(&ast.DefaultStmt{Token: tok})
}

func (p *Parser) parseBreakStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	var label *token.Identifier
	if p.is(token.IDENT) {
		label = p.intern(p.cur())
		p.advance()
	}
	p.eat(token.SEMICOLON)
	return p.ctx.Builder.MakeNode(&ast.BreakStmt{Token: tok, Label: label})
}

func (p *Parser) parseContinueStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	var label *token.Identifier
	if p.is(token.IDENT) {
		label = p.intern(p.cur())
		p.advance()
	}
	p.eat(token.SEMICOLON)
	return p.ctx.Builder.MakeNode(&ast.ContinueStmt{Token: tok, Label: label})
}

func (p *Parser) parseGotoStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	switch {
	case p.is(token.DEFAULT):
		p.advance()
		p.eat(token.SEMICOLON)
		return p.ctx.Builder.MakeNode(&ast.GotoStmt{Token: tok, IsDefault: true})
	case p.is(token.CASE):
		p.advance()
		expr := ast.NilID
		if !p.is(token.SEMICOLON) {
			expr = p.parseExpression()
		}
		p.eat(token.SEMICOLON)
		return p.ctx.Builder.MakeNode(&ast.GotoStmt{Token: tok, IsCase: true, CaseExpr: expr})
	default:
		label := p.intern(p.cur())
		p.eat(token.IDENT)
		p.eat(token.SEMICOLON)
		return p.ctx.Builder.MakeNode(&ast.GotoStmt{Token: tok, Label: label})
	}
}

func (p *Parser) parseReturnStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	value := ast.NilID
	if !p.is(token.SEMICOLON) {
		value = p.parseExpression()
	}
	p.eat(token.SEMICOLON)
	return p.ctx.Builder.MakeNode(&ast.ReturnStmt{Token: tok, Value: value})
}

func (p *Parser) parseTryStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	body := p.parseStatement()
	var catches []ast.NodeID
	for p.is(token.CATCH) {
		catches = append(catches, p.parseCatchClause())
	}
	finally := ast.NilID
	if p.is(token.FINALLY) {
		p.advance()
		finally = p.parseStatement()
	}
	return p.ctx.Builder.MakeNode(&ast.TryStmt{Token: tok, Body: body, Catches: catches, Finally: finally})
}

func (p *Parser) parseCatchClause() ast.NodeID {
	tok := p.cur()
	p.advance()
	typ := ast.NilID
	var name *token.Identifier
	if p.is(token.LPAREN) {
		p.advance()
		typ = p.parseType()
		if p.is(token.IDENT) {
			name = p.intern(p.cur())
			p.advance()
		}
		p.eat(token.RPAREN)
	}
	body := p.parseStatement()
	return p.ctx.Builder.MakeNode(&ast.CatchClause{Token: tok, Type: typ, Name: name, Body: body})
}

func (p *Parser) parseThrowStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	value := p.parseExpression()
	p.eat(token.SEMICOLON)
	return p.ctx.Builder.MakeNode(&ast.ThrowStmt{Token: tok, Value: value})
}

func (p *Parser) parseWithStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	p.eat(token.LPAREN)
	expr := p.parseExpression()
	p.eat(token.RPAREN)
	body := p.parseStatement()
	return p.ctx.Builder.MakeNode(&ast.WithStmt{Token: tok, Expr: expr, Body: body})
}

func (p *Parser) parseSynchronizedStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	lock := ast.NilID
	if p.is(token.LPAREN) {
		p.advance()
		lock = p.parseExpression()
		p.eat(token.RPAREN)
	}
	body := p.parseStatement()
	return p.ctx.Builder.MakeNode(&ast.SynchronizedStmt{Token: tok, Lock: lock, Body: body})
}

func (p *Parser) parseScopeGuardStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	p.eat(token.LPAREN)
	which := ast.ScopeExit
	switch p.cur().Lexeme {
	case "failure":
		which = ast.ScopeFailure
	case "success":
		which = ast.ScopeSuccess
	}
	p.advance() // exit/failure/success identifier
	p.eat(token.RPAREN)
	body := p.parseStatement()
	return p.ctx.Builder.MakeNode(&ast.ScopeGuardStmt{Token: tok, Which: which, Body: body})
}

// parseAsmStmt does not interpret assembly syntax: it tokenises
// `;`-separated instruction lines while tracking nested braces, per
// spec.md §4.5's "opaque token sequence" note.
func (p *Parser) parseAsmStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	p.eat(token.LBRACE)
	var instrs []ast.AsmInstruction
	var cur []token.Token
	depth := 0
	for !(p.is(token.RBRACE) && depth == 0) && !p.is(token.EOF) {
		if p.is(token.LBRACE) {
			depth++
		}
		if p.is(token.RBRACE) {
			depth--
		}
		if p.is(token.SEMICOLON) && depth == 0 {
			instrs = append(instrs, ast.AsmInstruction{Tokens: cur})
			cur = nil
			p.advance()
			continue
		}
		cur = append(cur, p.cur())
		p.advance()
	}
	if len(cur) > 0 {
		instrs = append(instrs, ast.AsmInstruction{Tokens: cur})
	}
	p.eat(token.RBRACE)
	return p.ctx.Builder.MakeNode(&ast.AsmStmt{Token: tok, Instructions: instrs})
}

func (p *Parser) parsePragmaStmt() ast.NodeID {
	tok := p.cur()
	p.advance()
	p.eat(token.LPAREN)
	name := p.intern(p.cur())
	p.eat(token.IDENT)
	var args []ast.NodeID
	for p.is(token.COMMA) {
		p.advance()
		args = append(args, p.parseAssignExpr())
	}
	p.eat(token.RPAREN)
	body := ast.NilID
	if p.is(token.SEMICOLON) {
		p.advance()
	} else {
		body = p.parseStatement()
	}
	return p.ctx.Builder.MakeNode(&ast.PragmaStmt{Token: tok, Name: name, Args: args, Body: body})
}

func (p *Parser) parseStaticIfStmt() ast.NodeID {
	tok := p.cur()
	p.advance() // static
	p.advance() // if
	p.eat(token.LPAREN)
	cond := p.parseExpression()
	p.eat(token.RPAREN)
	then := p.parseStatement()
	els := ast.NilID
	if p.is(token.ELSE) {
		p.advance()
		els = p.parseStatement()
	}
	return p.ctx.Builder.MakeNode(&ast.StaticIfStmt{Token: tok, Cond: cond, Then: then, Else: els})
}

func (p *Parser) parseStaticAssertStmt() ast.NodeID {
	tok := p.cur()
	p.advance() // assert
	p.eat(token.LPAREN)
	cond := p.parseAssignExpr()
	msg := ast.NilID
	if p.is(token.COMMA) {
		p.advance()
		msg = p.parseAssignExpr()
	}
	p.eat(token.RPAREN)
	p.eat(token.SEMICOLON)
	return p.ctx.Builder.MakeNode(&ast.StaticAssertStmt{Token: tok, Cond: cond, Message: msg})
}

func (p *Parser) parseStaticForeachStmt() ast.NodeID {
	tok := p.cur()
	p.advance() // static
	reverse := p.is(token.FOREACH_REVERSE)
	p.advance() // foreach[_reverse]
	p.eat(token.LPAREN)
	var params []ast.NodeID
	for {
		params = append(params, p.parseForeachParameter())
		if p.is(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.eat(token.SEMICOLON)
	aggregate := p.parseExpression()
	upper := ast.NilID
	if p.is(token.DOTDOT) {
		p.advance()
		upper = p.parseExpression()
	}
	p.eat(token.RPAREN)
	body := p.parseStatement()
	return p.ctx.Builder.MakeNode(&ast.StaticForeachStmt{
		Token: tok, Reverse: reverse, Params: params, Aggregate: aggregate,
		UpperBound: upper, Body: body,
	})
}

func (p *Parser) parseConditionalStmt(isDebug bool) ast.NodeID {
	tok := p.cur()
	p.advance()
	var ident *token.Identifier
	var level ast.NodeID = ast.NilID
	if p.is(token.LPAREN) {
		p.advance()
		if p.is(token.INT_LITERAL) {
			level = p.parsePrimary()
		} else if p.is(token.IDENT) {
			ident = p.intern(p.cur())
			p.advance()
		}
		p.eat(token.RPAREN)
	}
	then := p.parseStatement()
	els := ast.NilID
	if p.is(token.ELSE) {
		p.advance()
		els = p.parseStatement()
	}
	return p.ctx.Builder.MakeNode(&ast.ConditionalStmt{
		Token: tok, IsDebug: isDebug, Ident: ident, Level: level, Then: then, Else: els,
	})
}
