package parser

import (
	"github.com/mcgru/dparse/internal/ast"
	"github.com/mcgru/dparse/internal/config"
	"github.com/mcgru/dparse/internal/token"
)

// atSafetyStorageClass holds the keywords that only ever appear spelled
// with a leading `@` (`@safe`, `@nogc`, ...) rather than as generic
// user-defined attributes; parseDeclDef folds them straight into the
// storage-class set instead of recording them as UDAs through parseUDA.
var atSafetyStorageClass = map[token.Kind]config.StorageClass{
	token.DISABLE:  config.SCDisable,
	token.PROPERTY: config.SCProperty,
	token.NOGC:     config.SCNogc,
	token.SAFE:     config.SCSafe,
	token.TRUSTED:  config.SCTrusted,
	token.SYSTEM:   config.SCSystem,
	token.LIVE:     config.SCLive,
	token.FUTURE:   config.SCFuture,
}

// parseDeclDef is the central declaration dispatcher: it folds any run
// of attribute/storage-class/linkage/protection/alignment/deprecated/
// UDA prefixes into attrs (threaded by value, per ast.PrefixAttributes'
// doc comment) before committing to a concrete declaration kind.
func (p *Parser) parseDeclDef(attrs ast.PrefixAttributes) ast.NodeID {
	for {
		switch p.cur().Kind {
		case token.SEMICOLON:
			p.advance()
			return ast.NilID

		case token.AT:
			if sc, ok := atSafetyStorageClass[p.peek(1).Kind]; ok {
				p.advance() // @
				p.advance() // safety keyword
				merged, existing, conflict := attrs.AppendStorageClass(sc)
				if conflict {
					p.warnf(p.cur().Loc, "storage class conflicts with %v", existing)
				}
				attrs = merged
				continue
			}
			attrs.UDAs = append(attrs.UDAs, p.parseUDA())
			continue

		case token.DEPRECATED:
			p.advance()
			attrs.HasDeprecated = true
			if p.is(token.LPAREN) {
				p.advance()
				attrs.DeprecatedMessage = p.parseAssignExpr()
				p.eat(token.RPAREN)
			}
			continue

		case token.EXTERN:
			p.advance()
			attrs.Linkage = p.parseLinkageClause()
			attrs.HasLinkage = true
			continue

		case token.ALIGN:
			p.advance()
			attrs.HasAlignment = true
			attrs.AlignmentExpr = ast.NilID
			if p.is(token.LPAREN) {
				p.advance()
				attrs.AlignmentExpr = p.parseAssignExpr()
				p.eat(token.RPAREN)
			}
			continue

		case token.PRIVATE, token.PROTECTED, token.PUBLIC, token.EXPORT:
			attrs.Protection, attrs.HasProtection = p.parseProtection(), true
			continue

		case token.PACKAGE_KW:
			attrs.Protection, attrs.HasProtection = p.parseProtection(), true
			continue

		case token.CONST, token.IMMUTABLE, token.SHARED, token.INOUT:
			if p.peek(1).Kind == token.LPAREN {
				break
			}
			sc := config.KindToStorageClass[p.cur().Kind]
			merged, existing, conflict := attrs.AppendStorageClass(sc)
			if conflict {
				p.warnf(p.cur().Loc, "storage class conflicts with %v", existing)
			}
			attrs = merged
			p.advance()
			continue

		case token.STATIC:
			if p.peek(1).Kind == token.THIS {
				break
			}
			if p.peek(1).Kind == token.TILDE {
				break
			}
			if p.peek(1).Kind == token.IF || p.peek(1).Kind == token.ASSERT ||
				p.peek(1).Kind == token.FOREACH || p.peek(1).Kind == token.FOREACH_REVERSE {
				break
			}
			sc := config.KindToStorageClass[token.STATIC]
			merged, _, _ := attrs.AppendStorageClass(sc)
			attrs = merged
			p.advance()
			continue

		case token.FINAL, token.AUTO, token.OVERRIDE, token.ABSTRACT, token.SYNCHRONIZED,
			token.NOTHROW, token.PURE, token.REF, token.GSHARED, token.SCOPE,
			token.DISABLE, token.PROPERTY, token.NOGC, token.SAFE, token.TRUSTED,
			token.SYSTEM, token.LIVE:
			sc, known := config.KindToStorageClass[p.cur().Kind]
			if !known {
				break
			}
			merged, existing, conflict := attrs.AppendStorageClass(sc)
			if conflict {
				p.warnf(p.cur().Loc, "storage class conflicts with %v", existing)
			}
			attrs = merged
			p.advance()
			continue
		}
		break
	}

	if p.is(token.LBRACE) {
		return p.parseAttributedBlock(attrs)
	}
	if p.is(token.COLON) {
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.StorageClassWrapperDecl{Token: p.cur(), StorageClass: attrs})
	}

	return p.parseDeclDefCore(attrs)
}

// parseAttributedBlock handles `attr { decl decl ... }`, wrapping the
// contained declarations in whichever wrapper kinds attrs populated,
// applied outside-in (storage class innermost, UDA outermost) as
// SPEC_FULL §9 prescribes.
func (p *Parser) parseAttributedBlock(attrs ast.PrefixAttributes) ast.NodeID {
	tok := p.cur()
	p.advance()
	var decls []ast.NodeID
	for !p.is(token.RBRACE) && !p.is(token.EOF) {
		if p.is(token.SEMICOLON) {
			p.advance()
			continue
		}
		id := p.parseDeclDef(ast.PrefixAttributes{})
		if id != ast.NilID {
			decls = append(decls, id)
		}
	}
	p.eat(token.RBRACE)
	return p.wrapDecls(tok, attrs, decls)
}

func (p *Parser) wrapDecls(tok token.Token, attrs ast.PrefixAttributes, decls []ast.NodeID) ast.NodeID {
	result := decls
	var id ast.NodeID
	if attrs.HasStorageClass {
		id = p.ctx.Builder.MakeNode(&ast.StorageClassWrapperDecl{Token: tok, StorageClass: attrs, Decls: result})
		result = []ast.NodeID{id}
	}
	if attrs.HasLinkage {
		id = p.ctx.Builder.MakeNode(&ast.LinkageWrapperDecl{Token: tok, Linkage: attrs.Linkage, Decls: result})
		result = []ast.NodeID{id}
	}
	if attrs.HasProtection {
		id = p.ctx.Builder.MakeNode(&ast.ProtectionWrapperDecl{Token: tok, Protection: attrs.Protection, Decls: result})
		result = []ast.NodeID{id}
	}
	if attrs.HasAlignment {
		id = p.ctx.Builder.MakeNode(&ast.AlignWrapperDecl{Token: tok, Expr: attrs.AlignmentExpr, Decls: result})
		result = []ast.NodeID{id}
	}
	if attrs.HasDeprecated {
		id = p.ctx.Builder.MakeNode(&ast.DeprecatedWrapperDecl{Token: tok, Message: attrs.DeprecatedMessage, Decls: result})
		result = []ast.NodeID{id}
	}
	if len(attrs.UDAs) > 0 {
		id = p.ctx.Builder.MakeNode(&ast.UDAWrapperDecl{Token: tok, UDAs: attrs.UDAs, Decls: result})
		result = []ast.NodeID{id}
	}
	if len(result) == 1 {
		return result[0]
	}
	return p.ctx.Builder.MakeNode(&ast.DeclBlock{Token: tok, Decls: result})
}

func (p *Parser) parseLinkageClause() ast.LinkageInfo {
	info := ast.LinkageInfo{Kind: ast.LinkageD}
	if !p.is(token.LPAREN) {
		return info
	}
	p.advance()
	name := p.cur().Lexeme
	switch name {
	case "C":
		p.advance()
		if p.is(token.INC) {
			// `C++` lexes as IDENT "C" immediately followed by INC "++".
			p.advance()
			info.Kind = ast.LinkageCpp
		} else {
			info.Kind = ast.LinkageC
		}
	case "D":
		p.advance()
		info.Kind = ast.LinkageD
	case "Windows":
		p.advance()
		info.Kind = ast.LinkageWindows
	case "Pascal":
		p.advance()
		info.Kind = ast.LinkagePascal
	case "Objective":
		p.advance()
		if p.is(token.MINUS) {
			p.advance()
		}
		if p.cur().Lexeme == "C" {
			p.advance()
		}
		info.Kind = ast.LinkageObjC
	case "System":
		p.advance()
		info.Kind = ast.LinkageSystem
	default:
		p.advance()
	}
	if info.Kind == ast.LinkageCpp && p.is(token.COMMA) {
		p.advance()
		switch p.cur().Lexeme {
		case "class":
			info.CppMangle = ast.CppMangleClass
			p.advance()
		case "struct":
			info.CppMangle = ast.CppMangleStruct
			p.advance()
		default:
			for !p.is(token.RPAREN) && !p.is(token.EOF) {
				if p.is(token.IDENT) {
					info.Namespaces = append(info.Namespaces, p.intern(p.cur()))
					p.advance()
					if p.is(token.DOT) {
						p.advance()
						continue
					}
				} else {
					info.NamespaceExprs = append(info.NamespaceExprs, p.parseAssignExpr())
				}
				if p.is(token.COMMA) {
					p.advance()
					continue
				}
				break
			}
		}
	}
	p.eat(token.RPAREN)
	return info
}

func (p *Parser) parseProtection() ast.ProtectionInfo {
	info := ast.ProtectionInfo{}
	switch p.cur().Kind {
	case token.PRIVATE:
		info.Level = ast.ProtPrivate
	case token.PROTECTED:
		info.Level = ast.ProtProtected
	case token.PUBLIC:
		info.Level = ast.ProtPublic
	case token.EXPORT:
		info.Level = ast.ProtExport
	case token.PACKAGE_KW:
		info.Level = ast.ProtPackage
	}
	p.advance()
	if info.Level == ast.ProtPackage && p.is(token.LPAREN) {
		p.advance()
		for !p.is(token.RPAREN) && !p.is(token.EOF) {
			info.Path = append(info.Path, p.intern(p.cur()))
			p.advance()
			if p.is(token.DOT) {
				p.advance()
				continue
			}
			break
		}
		p.eat(token.RPAREN)
	}
	return info
}

// parseDeclDefCore dispatches on a keyword once the attribute-prefix
// loop has been exhausted and neither `{` nor `:` followed. This is
// where template-ness is detected and folded into a TemplateDecl
// wrapper around whatever concrete declaration follows.
func (p *Parser) parseDeclDefCore(attrs ast.PrefixAttributes) ast.NodeID {
	tok := p.cur()

	switch tok.Kind {
	case token.IMPORT:
		return p.parseImportDecl()

	case token.STRUCT, token.UNION, token.CLASS, token.INTERFACE:
		return p.wrapIfAttributed(tok, attrs, p.parseAggregateDecl())

	case token.ENUM:
		return p.wrapIfAttributed(tok, attrs, p.parseEnumDecl())

	case token.TEMPLATE:
		return p.wrapIfAttributed(tok, attrs, p.parseTemplateDecl())

	case token.MIXIN:
		if p.peek(1).Kind == token.TEMPLATE {
			return p.wrapIfAttributed(tok, attrs, p.parseMixinTemplateDecl())
		}
		if p.peek(1).Kind == token.LPAREN {
			return p.wrapIfAttributed(tok, attrs, p.parseMixinDeclSplice())
		}
		return p.wrapIfAttributed(tok, attrs, p.parseTemplateInstanceDecl())

	case token.ALIAS:
		return p.wrapIfAttributed(tok, attrs, p.parseAliasDecl())

	case token.THIS:
		if p.peek(1).Kind == token.THIS {
			return p.wrapIfAttributed(tok, attrs, p.parsePostblitDecl())
		}
		return p.wrapIfAttributed(tok, attrs, p.parseCtorDecl())

	case token.TILDE:
		if p.peek(1).Kind == token.THIS {
			return p.wrapIfAttributed(tok, attrs, p.parseDtorDecl())
		}

	case token.NEW:
		return p.wrapIfAttributed(tok, attrs, p.parseNewDecl())

	case token.INVARIANT:
		return p.wrapIfAttributed(tok, attrs, p.parseInvariantDecl())

	case token.UNITTEST:
		return p.wrapIfAttributed(tok, attrs, p.parseUnittestDecl())

	case token.DEBUG:
		return p.parseConditionalDecl(true)

	case token.VERSION:
		return p.parseConditionalDecl(false)
	}

	if tok.Kind == token.STATIC && p.peek(1).Kind == token.THIS {
		p.advance()
		return p.wrapIfAttributed(tok, attrs, p.parseStaticCtorDecl())
	}
	if tok.Kind == token.STATIC && p.peek(1).Kind == token.TILDE {
		p.advance()
		return p.wrapIfAttributed(tok, attrs, p.parseStaticDtorDecl())
	}
	if tok.Kind == token.SHARED && p.peek(1).Kind == token.STATIC {
		p.advance()
		p.advance()
		if p.is(token.THIS) {
			return p.wrapIfAttributed(tok, attrs, p.parseSharedStaticCtorDecl())
		}
		return p.wrapIfAttributed(tok, attrs, p.parseSharedStaticDtorDecl())
	}
	if tok.Kind == token.STATIC && p.peek(1).Kind == token.IF {
		p.advance()
		return p.parseStaticIfDecl()
	}
	if tok.Kind == token.STATIC && p.peek(1).Kind == token.ASSERT {
		p.advance()
		return p.wrapIfAttributed(tok, attrs, p.parseStaticAssertDecl())
	}
	if tok.Kind == token.STATIC && (p.peek(1).Kind == token.FOREACH || p.peek(1).Kind == token.FOREACH_REVERSE) {
		p.advance()
		return p.wrapIfAttributed(tok, attrs, p.parseStaticForeachDecl())
	}

	return p.parseFuncOrVarDecl(attrs)
}

func (p *Parser) wrapIfAttributed(tok token.Token, attrs ast.PrefixAttributes, decl ast.NodeID) ast.NodeID {
	if attrs.Empty() {
		return decl
	}
	return p.wrapDecls(tok, attrs, []ast.NodeID{decl})
}

func (p *Parser) parseImportDecl() ast.NodeID {
	tok := p.cur()
	p.advance()
	isStatic := false
	if p.is(token.STATIC) {
		isStatic = true
		p.advance()
	}
	var decls []ast.NodeID
	for {
		decls = append(decls, p.parseSingleImport(tok, isStatic))
		if p.is(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.eat(token.SEMICOLON)
	if len(decls) == 1 {
		return decls[0]
	}
	return p.ctx.Builder.MakeNode(&ast.DeclBlock{Token: tok, Decls: decls})
}

func (p *Parser) parseSingleImport(tok token.Token, isStatic bool) ast.NodeID {
	decl := &ast.ImportDecl{Token: tok, IsStatic: isStatic}
	first := p.intern(p.cur())
	p.eat(token.IDENT)
	if p.is(token.ASSIGN) {
		p.advance()
		decl.ModAlias = first
		decl.Name = p.intern(p.cur())
		p.eat(token.IDENT)
		for p.is(token.DOT) {
			p.advance()
			decl.Packages = append(decl.Packages, decl.Name)
			decl.Name = p.intern(p.cur())
			p.eat(token.IDENT)
		}
	} else {
		decl.Name = first
		for p.is(token.DOT) {
			p.advance()
			decl.Packages = append(decl.Packages, decl.Name)
			decl.Name = p.intern(p.cur())
			p.eat(token.IDENT)
		}
	}
	if p.is(token.COLON) {
		p.advance()
		for {
			name := p.intern(p.cur())
			p.eat(token.IDENT)
			bind := ast.ImportBind{Name: name}
			if p.is(token.ASSIGN) {
				p.advance()
				bind.Alias = bind.Name
				bind.Name = p.intern(p.cur())
				p.eat(token.IDENT)
			}
			decl.Selective = append(decl.Selective, bind)
			if p.is(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	return p.ctx.Builder.MakeImportDecl(decl)
}

var aggregateTagOf = map[token.Kind]ast.AggregateTag{
	token.STRUCT: ast.TagStruct, token.UNION: ast.TagUnion,
	token.CLASS: ast.TagClass, token.INTERFACE: ast.TagInterface,
}

func (p *Parser) parseAggregateDecl() ast.NodeID {
	tok := p.cur()
	tag := aggregateTagOf[tok.Kind]
	p.advance()

	var name *token.Identifier
	if p.is(token.IDENT) {
		name = p.intern(p.cur())
		p.advance()
	}

	if name != nil && p.is(token.LPAREN) {
		return p.parseTemplatedAggregate(tok, tag, name)
	}

	var bases []ast.NodeID
	if p.is(token.COLON) {
		p.advance()
		bases = p.parseBaseClassList()
	}

	if p.is(token.SEMICOLON) {
		p.advance()
		return p.ctx.Builder.MakeAggregateDecl(&ast.AggregateDecl{Token: tok, Tag: tag, Name: name, Bases: bases})
	}

	members := p.parseAggregateBody()
	return p.ctx.Builder.MakeAggregateDecl(&ast.AggregateDecl{
		Token: tok, Tag: tag, Name: name, Bases: bases, Members: members, IsAnon: name == nil,
	})
}

func (p *Parser) parseBaseClassList() []ast.NodeID {
	var bases []ast.NodeID
	for {
		bases = append(bases, p.parseIdentifierType())
		if p.is(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	return bases
}

func (p *Parser) parseAggregateBody() []ast.NodeID {
	p.eat(token.LBRACE)
	var members []ast.NodeID
	for !p.is(token.RBRACE) && !p.is(token.EOF) {
		if p.is(token.SEMICOLON) {
			p.advance()
			continue
		}
		id := p.parseDeclDef(ast.PrefixAttributes{})
		if id != ast.NilID {
			members = append(members, id)
		}
	}
	p.eat(token.RBRACE)
	return members
}

// parseTemplatedAggregate handles `struct S(params) [if (cond)] { ... }`,
// wrapping the AggregateDecl in a TemplateDecl, grounded on the same
// outside-in wrapping the attribute prefixes use.
func (p *Parser) parseTemplatedAggregate(tok token.Token, tag ast.AggregateTag, name *token.Identifier) ast.NodeID {
	params := p.parseTemplateParamList()
	constraint := ast.NilID
	if p.is(token.IF) {
		p.advance()
		p.eat(token.LPAREN)
		constraint = p.parseExpression()
		p.eat(token.RPAREN)
	}
	var bases []ast.NodeID
	if p.is(token.COLON) {
		p.advance()
		bases = p.parseBaseClassList()
	}
	var agg ast.NodeID
	if p.is(token.SEMICOLON) {
		p.advance()
		agg = p.ctx.Builder.MakeAggregateDecl(&ast.AggregateDecl{Token: tok, Tag: tag, Name: name, Bases: bases})
	} else {
		members := p.parseAggregateBody()
		agg = p.ctx.Builder.MakeAggregateDecl(&ast.AggregateDecl{Token: tok, Tag: tag, Name: name, Bases: bases, Members: members})
	}
	return p.ctx.Builder.MakeTemplateDecl(&ast.TemplateDecl{
		Token: tok, Name: name, Params: params, Constraint: constraint, Body: []ast.NodeID{agg},
	})
}

func (p *Parser) parseTemplateParamList() []ast.NodeID {
	p.eat(token.LPAREN)
	var params []ast.NodeID
	for !p.is(token.RPAREN) && !p.is(token.EOF) {
		params = append(params, p.parseTemplateParameter())
		if p.is(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.eat(token.RPAREN)
	return params
}

func (p *Parser) parseEnumDecl() ast.NodeID {
	tok := p.cur()
	p.advance()
	var name *token.Identifier
	if p.is(token.IDENT) {
		name = p.intern(p.cur())
		p.advance()
	}

	if name != nil && p.is(token.ASSIGN) {
		p.advance()
		val := p.parseAssignExpr()
		p.eat(token.SEMICOLON)
		return p.ctx.Builder.MakeEnumDecl(&ast.EnumDecl{Token: tok, Name: name, ManifestVal: val})
	}

	baseType := ast.NilID
	if p.is(token.COLON) {
		p.advance()
		baseType = p.parseType()
	}

	if p.is(token.SEMICOLON) {
		p.advance()
		return p.ctx.Builder.MakeEnumDecl(&ast.EnumDecl{Token: tok, Name: name, BaseType: baseType})
	}

	p.eat(token.LBRACE)
	var members []ast.NodeID
	for !p.is(token.RBRACE) && !p.is(token.EOF) {
		members = append(members, p.parseEnumMember())
		if p.is(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.eat(token.RBRACE)
	return p.ctx.Builder.MakeEnumDecl(&ast.EnumDecl{Token: tok, Name: name, BaseType: baseType, Members: members})
}

func (p *Parser) parseEnumMember() ast.NodeID {
	tok := p.cur()
	var udas []ast.NodeID
	for p.is(token.AT) {
		udas = append(udas, p.parseUDA())
	}
	_ = udas
	name := p.intern(p.cur())
	p.eat(token.IDENT)
	typ := ast.NilID
	if p.is(token.COLON) {
		p.advance()
		typ = p.parseType()
	}
	value := ast.NilID
	if p.is(token.ASSIGN) {
		p.advance()
		value = p.parseAssignExpr()
	}
	return p.ctx.Builder.MakeNode(&ast.EnumMember{Token: tok, Name: name, Type: typ, Value: value})
}

// parseTemplateDecl handles the explicit `template Name(params) [if
// (cond)] { decls }` form, distinct from the implicit template-ness
// folded into struct/class/function declarations.
func (p *Parser) parseTemplateDecl() ast.NodeID {
	tok := p.cur()
	p.advance()
	name := p.intern(p.cur())
	p.eat(token.IDENT)
	params := p.parseTemplateParamList()
	constraint := ast.NilID
	if p.is(token.IF) {
		p.advance()
		p.eat(token.LPAREN)
		constraint = p.parseExpression()
		p.eat(token.RPAREN)
	}
	body := p.parseAggregateBody()
	return p.ctx.Builder.MakeTemplateDecl(&ast.TemplateDecl{
		Token: tok, Name: name, Params: params, Constraint: constraint, Body: body,
	})
}

func (p *Parser) parseMixinTemplateDecl() ast.NodeID {
	tok := p.cur()
	p.advance() // mixin
	p.advance() // template
	name := p.intern(p.cur())
	p.eat(token.IDENT)
	params := p.parseTemplateParamList()
	constraint := ast.NilID
	if p.is(token.IF) {
		p.advance()
		p.eat(token.LPAREN)
		constraint = p.parseExpression()
		p.eat(token.RPAREN)
	}
	body := p.parseAggregateBody()
	return p.ctx.Builder.MakeTemplateDecl(&ast.TemplateDecl{
		Token: tok, Name: name, Params: params, Constraint: constraint, Body: body, IsMixin: true,
	})
}

// parseMixinDeclSplice handles `mixin(args);` string-mixin splices in
// declaration position.
func (p *Parser) parseMixinDeclSplice() ast.NodeID {
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
	p.eat(token.SEMICOLON)
	return p.ctx.Builder.MakeMixinDecl(&ast.MixinDecl{Token: tok, Form: ast.MixinDecl_, Args: args})
}

// parseTemplateInstanceDecl handles `mixin M!(args) [name];`.
func (p *Parser) parseTemplateInstanceDecl() ast.NodeID {
	tok := p.cur()
	p.advance() // mixin
	name := p.intern(p.cur())
	p.eat(token.IDENT)
	var args []ast.NodeID
	if p.is(token.BANG) {
		args = p.parseTemplateArgs()
	}
	var bindName *token.Identifier
	if p.is(token.IDENT) {
		bindName = p.intern(p.cur())
		p.advance()
	}
	p.eat(token.SEMICOLON)
	return p.ctx.Builder.MakeNode(&ast.TemplateInstanceDecl{Token: tok, Template: name, Args: args, BindName: bindName})
}

// parseAliasDecl handles `alias id [(tpl)] = Type|FuncLiteral;` and the
// `alias id this;` base-conversion form.
func (p *Parser) parseAliasDecl() ast.NodeID {
	tok := p.cur()
	p.advance()

	if p.is(token.IDENT) && p.peek(1).Kind == token.THIS {
		name := p.intern(p.cur())
		p.advance()
		p.advance()
		p.eat(token.SEMICOLON)
		return p.ctx.Builder.MakeNode(&ast.AliasThisDecl{Token: tok, Name: name})
	}

	name := p.intern(p.cur())
	p.eat(token.IDENT)
	var params []ast.NodeID
	if p.is(token.LPAREN) {
		params = p.parseTemplateParamList()
	}
	p.eat(token.ASSIGN)
	target := p.parseType()
	p.eat(token.SEMICOLON)
	return p.ctx.Builder.MakeAliasDecl(&ast.AliasDecl{Token: tok, Name: name, Params: params, Target: target})
}

func (p *Parser) parseCtorDecl() ast.NodeID {
	tok := p.cur()
	p.advance()
	params := p.parseParameterList()
	requires, ensures := p.parseContracts()
	body := ast.NilID
	if p.is(token.LBRACE) {
		body = p.parseBlockStmt()
	} else {
		p.eat(token.SEMICOLON)
	}
	return p.ctx.Builder.MakeNode(&ast.CtorDecl{Token: tok, Params: params, Requires: requires, Ensures: ensures, Body: body})
}

func (p *Parser) parsePostblitDecl() ast.NodeID {
	tok := p.cur()
	p.advance() // this
	p.advance() // (
	p.advance() // this
	p.eat(token.RPAREN)
	body := ast.NilID
	if p.is(token.LBRACE) {
		body = p.parseBlockStmt()
	} else {
		p.eat(token.SEMICOLON)
	}
	return p.ctx.Builder.MakeNode(&ast.PostblitDecl{Token: tok, Body: body})
}

func (p *Parser) parseDtorDecl() ast.NodeID {
	tok := p.cur()
	p.advance() // ~
	p.advance() // this
	p.eat(token.LPAREN)
	p.eat(token.RPAREN)
	body := ast.NilID
	if p.is(token.LBRACE) {
		body = p.parseBlockStmt()
	} else {
		p.eat(token.SEMICOLON)
	}
	return p.ctx.Builder.MakeNode(&ast.DtorDecl{Token: tok, Body: body})
}

func (p *Parser) parseStaticCtorDecl() ast.NodeID {
	tok := p.cur()
	p.advance() // this
	p.eat(token.LPAREN)
	p.eat(token.RPAREN)
	body := p.parseBlockStmt()
	return p.ctx.Builder.MakeNode(&ast.StaticCtorDecl{Token: tok, Body: body})
}

func (p *Parser) parseStaticDtorDecl() ast.NodeID {
	tok := p.cur()
	p.advance() // ~
	p.advance() // this
	p.eat(token.LPAREN)
	p.eat(token.RPAREN)
	body := p.parseBlockStmt()
	return p.ctx.Builder.MakeNode(&ast.StaticDtorDecl{Token: tok, Body: body})
}

func (p *Parser) parseSharedStaticCtorDecl() ast.NodeID {
	tok := p.cur()
	p.advance() // this
	p.eat(token.LPAREN)
	p.eat(token.RPAREN)
	body := p.parseBlockStmt()
	return p.ctx.Builder.MakeNode(&ast.SharedStaticCtorDecl{Token: tok, Body: body})
}

func (p *Parser) parseSharedStaticDtorDecl() ast.NodeID {
	tok := p.cur()
	p.advance() // ~
	p.advance() // this
	p.eat(token.LPAREN)
	p.eat(token.RPAREN)
	body := p.parseBlockStmt()
	return p.ctx.Builder.MakeNode(&ast.SharedStaticDtorDecl{Token: tok, Body: body})
}

func (p *Parser) parseNewDecl() ast.NodeID {
	tok := p.cur()
	p.advance()
	params := p.parseParameterList()
	body := p.parseBlockStmt()
	return p.ctx.Builder.MakeNode(&ast.NewDecl{Token: tok, Params: params, Body: body})
}

func (p *Parser) parseInvariantDecl() ast.NodeID {
	tok := p.cur()
	p.advance()
	if p.is(token.LPAREN) {
		p.advance()
		p.eat(token.RPAREN)
	}
	body := p.parseBlockStmt()
	return p.ctx.Builder.MakeNode(&ast.InvariantDecl{Token: tok, Body: body})
}

func (p *Parser) parseUnittestDecl() ast.NodeID {
	tok := p.cur()
	p.advance()
	body := p.parseBlockStmt()
	return p.ctx.Builder.MakeNode(&ast.UnittestDecl{Token: tok, Body: body})
}

func (p *Parser) parseStaticIfDecl() ast.NodeID {
	tok := p.cur()
	p.advance() // if
	p.eat(token.LPAREN)
	cond := p.parseExpression()
	p.eat(token.RPAREN)
	then := p.ctx.Builder.MakeNode(&ast.DeclBlock{Token: tok, Decls: p.parseConditionalDeclBranch()})
	els := ast.NilID
	if p.is(token.ELSE) {
		p.advance()
		els = p.ctx.Builder.MakeNode(&ast.DeclBlock{Token: tok, Decls: p.parseConditionalDeclBranch()})
	}
	return p.ctx.Builder.MakeNode(&ast.StaticIfStmt{Token: tok, Cond: cond, Then: then, Else: els})
}

func (p *Parser) parseStaticAssertDecl() ast.NodeID {
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

func (p *Parser) parseStaticForeachDecl() ast.NodeID {
	tok := p.cur()
	reverse := p.is(token.FOREACH_REVERSE)
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
	decls := p.parseConditionalDeclBranch()
	return p.ctx.Builder.MakeNode(&ast.ForeachStmt{
		Token: tok, Reverse: reverse, IsStatic: true, Params: params,
		Aggregate: aggregate, UpperBound: upper, Decls: decls,
	})
}

func (p *Parser) parseConditionalDecl(isDebug bool) ast.NodeID {
	tok := p.cur()
	p.advance()
	var ident *token.Identifier
	level := ast.NilID
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
	then := p.parseConditionalDeclBranch()
	var els []ast.NodeID
	if p.is(token.ELSE) {
		p.advance()
		els = p.parseConditionalDeclBranch()
	}
	return p.ctx.Builder.MakeNode(&ast.ConditionalDecl{
		Token: tok, IsDebug: isDebug, Ident: ident, Level: level, Then: then, Else: els,
	})
}

func (p *Parser) parseConditionalDeclBranch() []ast.NodeID {
	if p.is(token.LBRACE) {
		return p.parseAggregateBody()
	}
	id := p.parseDeclDef(ast.PrefixAttributes{})
	if id == ast.NilID {
		return nil
	}
	return []ast.NodeID{id}
}

// parseContracts parses the `in`/`out` contract clauses that can
// precede a function body, tracking the start/seen-in/seen-out states
// spec.md §4.5 names; the `do`/`body` keyword that follows is consumed
// by the caller once contracts are exhausted.
func (p *Parser) parseContracts() (requires, ensures []ast.Contract) {
	const (
		start = iota
		seenIn
		seenOut
	)
	state := start
	for {
		switch {
		case p.is(token.IN) && (state == start || state == seenOut):
			requires = append(requires, p.parseContractClause())
			if state == start {
				state = seenIn
			}
		case p.is(token.OUT) && (state == start || state == seenIn):
			ensures = append(ensures, p.parseContractClause())
			state = seenOut
		default:
			return
		}
	}
}

func (p *Parser) parseContractClause() ast.Contract {
	isOut := p.is(token.OUT)
	p.advance()
	c := ast.Contract{}
	if isOut {
		if p.is(token.LPAREN) {
			p.advance()
			if p.is(token.IDENT) {
				c.OutIdent = p.intern(p.cur())
				p.advance()
			}
			p.eat(token.RPAREN)
		}
	}
	if p.is(token.LPAREN) {
		p.advance()
		c.Kind = ast.ContractExpr
		c.Expr = p.parseAssignExpr()
		if p.is(token.COMMA) {
			p.advance()
			c.Message = p.parseAssignExpr()
		}
		p.eat(token.RPAREN)
	} else {
		c.Kind = ast.ContractBlock
		c.Body = p.parseBlockStmt()
	}
	if p.is(token.SEMICOLON) {
		p.advance()
	}
	return c
}

// parseFuncOrVarDecl parses the common BasicType Declarator(s) shape
// shared by function declarations and comma-joined variable
// declarations.
func (p *Parser) parseFuncOrVarDecl(attrs ast.PrefixAttributes) ast.NodeID {
	tok := p.cur()
	if (attrs.HasStorageClass || len(attrs.UDAs) > 0) && p.is(token.IDENT) && p.peek(1).Kind == token.ASSIGN {
		name := p.intern(p.cur())
		p.advance()
		return p.wrapIfAttributed(tok, attrs, p.parseVarDeclTail(tok, ast.NilID, name))
	}
	baseType := p.parseType()

	if !p.is(token.IDENT) {
		p.errorf("expected declarator name, found %s", p.cur())
		p.resync(token.SEMICOLON, token.RBRACE)
		return p.wrapIfAttributed(tok, attrs, p.ctx.Builder.MakeNode(&ast.ErrorDecl{Token: tok}))
	}

	name := p.intern(p.cur())
	p.advance()

	if p.is(token.LPAREN) {
		return p.wrapIfAttributed(tok, attrs, p.parseFuncDeclTail(tok, baseType, name))
	}

	return p.wrapIfAttributed(tok, attrs, p.parseVarDeclTail(tok, baseType, name))
}

func (p *Parser) parseFuncDeclTail(tok token.Token, retType ast.NodeID, name *token.Identifier) ast.NodeID {
	params := p.parseParameterList()
	for paramStorageKeywords[p.cur().Kind] && !p.is(token.IN) && !p.is(token.OUT) {
		p.advance() // trailing member-function qualifiers (const, scope, return, ...)
	}
	requires, ensures := p.parseContracts()
	body := ast.NilID
	if p.is(token.BODY_KW) {
		p.deprecatedf(p.cur().Loc, "the `body` contract keyword is deprecated; use `do` instead")
		p.advance()
	}
	if p.is(token.DO) {
		p.advance()
		body = p.parseBlockStmt()
	} else if p.is(token.LBRACE) {
		body = p.parseBlockStmt()
	} else if p.is(token.ARROW) {
		p.advance()
		expr := p.parseAssignExpr()
		p.eat(token.SEMICOLON)
		body = p.ctx.Builder.MakeNode(&ast.ReturnStmt{Token: tok, Value: expr})
	} else {
		p.eat(token.SEMICOLON)
	}
	return p.ctx.Builder.MakeFuncDecl(&ast.FuncDecl{
		Token: tok, Name: name, ReturnType: retType, Params: params,
		Requires: requires, Ensures: ensures, Body: body,
	})
}

// parseVarDeclTail parses the (possibly comma-joined) declarator-init
// list that follows a bare `Type name`, including the three-way
// initializer disambiguation — `= expr`, `= void`, or bare
// default-initialization.
func (p *Parser) parseVarDeclTail(tok token.Token, baseType ast.NodeID, name *token.Identifier) ast.NodeID {
	var decls []ast.NodeID
	decls = append(decls, p.finishOneVarDecl(tok, baseType, name))
	for p.is(token.COMMA) {
		p.advance()
		dtok := p.cur()
		dname := p.intern(p.cur())
		p.eat(token.IDENT)
		dtype := p.parseTypeSuffixes(baseType)
		decls = append(decls, p.finishOneVarDecl(dtok, dtype, dname))
	}
	p.eat(token.SEMICOLON)
	if len(decls) == 1 {
		return decls[0]
	}
	return p.ctx.Builder.MakeNode(&ast.DeclBlock{Token: tok, Decls: decls})
}

func (p *Parser) finishOneVarDecl(tok token.Token, typ ast.NodeID, name *token.Identifier) ast.NodeID {
	typ = p.parseTypeSuffixes(typ)
	init := ast.NilID
	if p.is(token.ASSIGN) {
		p.advance()
		init = p.parseInitializer()
	}
	return p.ctx.Builder.MakeVarDecl(&ast.VarDecl{Token: tok, Type: typ, Name: name, Init: init})
}

// parseInitializer parses the right-hand side of a var declarator's
// `=`: a `void` placeholder, an array/struct literal-shaped
// initializer, or a plain AssignExpression.
func (p *Parser) parseInitializer() ast.NodeID {
	tok := p.cur()
	if p.is(token.VOID_T) && (p.peek(1).Kind == token.SEMICOLON || p.peek(1).Kind == token.COMMA) {
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.VoidInitializer{Token: tok})
	}
	if p.is(token.LBRACE) {
		if statementStartKeywords[p.peek(1).Kind] {
			body := p.parseBlockStmt()
			return p.ctx.Builder.MakeNode(&ast.FunctionLiteralExpr{Token: tok, LitKind: ast.FLBlock, Body: body})
		}
		return p.parseStructInitializer()
	}
	return p.parseAssignExpr()
}

// parseStructInitializer parses `{ [id :] Initializer, ... }`, the one
// place a bare `{` is not a block-lambda: a variable initializer's
// brace form.
func (p *Parser) parseStructInitializer() ast.NodeID {
	tok := p.cur()
	p.advance()
	var entries []ast.StructInitializerEntry
	for !p.is(token.RBRACE) && !p.is(token.EOF) {
		var name *token.Identifier
		if p.is(token.IDENT) && p.peek(1).Kind == token.COLON {
			name = p.intern(p.cur())
			p.advance()
			p.advance()
		}
		entries = append(entries, ast.StructInitializerEntry{Name: name, Initializer: p.parseInitializer()})
		if p.is(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.eat(token.RBRACE)
	return p.ctx.Builder.MakeNode(&ast.StructInitializer{Token: tok, Entries: entries})
}
