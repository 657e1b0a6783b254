package parser

import (
	"github.com/mcgru/dparse/internal/ast"
	"github.com/mcgru/dparse/internal/config"
	"github.com/mcgru/dparse/internal/token"
)

var basicTypeKeywords = map[token.Kind]bool{
	token.VOID_T: true, token.BOOL_T: true, token.BYTE_T: true, token.UBYTE_T: true,
	token.SHORT_T: true, token.USHORT_T: true, token.INT_T: true, token.UINT_T: true,
	token.LONG_T: true, token.ULONG_T: true, token.CHAR_T: true, token.WCHAR_T: true,
	token.DCHAR_T: true, token.FLOAT_T: true, token.DOUBLE_T: true, token.REAL_T: true,
	token.IFLOAT_T: true, token.IDOUBLE_T: true, token.IREAL_T: true,
	token.CFLOAT_T: true, token.CDOUBLE_T: true, token.CREAL_T: true,
}

// parseType parses a BasicOrIdentifierType followed by the chain of
// pointer/array/function-or-delegate suffixes the declarator grammar
// allows, per spec.md §4.4's Type production.
func (p *Parser) parseType() ast.NodeID {
	base := p.parseTypeBase()
	return p.parseTypeSuffixes(base)
}

func (p *Parser) parseTypeBase() ast.NodeID {
	tok := p.cur()
	switch {
	case basicTypeKeywords[tok.Kind]:
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.BasicType{Token: tok, Kind_: tok.Kind})

	case qualifierOnly[tok.Kind] && p.peek(1).Kind == token.LPAREN:
		p.advance()
		p.advance()
		inner := p.parseType()
		p.eat(token.RPAREN)
		return p.ctx.Builder.MakeNode(&ast.TypeConstructorType{Token: tok, Qualifier: tok.Kind, Inner: inner})

	case tok.Kind == token.TYPEOF:
		p.advance()
		p.eat(token.LPAREN)
		if p.is(token.RETURN_ATTR) {
			p.advance()
			p.eat(token.RPAREN)
			return p.ctx.Builder.MakeNode(&ast.TypeofType{Token: tok, Expr: ast.NilID, IsReturn: true})
		}
		e := p.parseExpression()
		p.eat(token.RPAREN)
		return p.ctx.Builder.MakeNode(&ast.TypeofType{Token: tok, Expr: e})

	case tok.Kind == token.VECTOR:
		p.advance()
		p.eat(token.LPAREN)
		inner := p.parseType()
		p.eat(token.RPAREN)
		return p.ctx.Builder.MakeNode(&ast.VectorType{Token: tok, Elem: inner})

	case tok.Kind == token.TRAITS:
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
		return p.ctx.Builder.MakeNode(&ast.TraitsType{Token: tok, Name: name, Args: args})

	case tok.Kind == token.IDENT:
		return p.parseIdentifierType()

	default:
		p.errorf("expected type, found %s", tok)
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.ErrorType{Token: tok})
	}
}

func (p *Parser) parseIdentifierType() ast.NodeID {
	tok := p.cur()
	var pkgs []*token.Identifier
	name := p.intern(p.cur())
	p.eat(token.IDENT)
	var args []ast.NodeID
	if p.is(token.BANG) {
		args = p.parseTemplateArgs()
	}
	for p.is(token.DOT) {
		p.advance()
		pkgs = append(pkgs, name)
		name = p.intern(p.cur())
		if _, ok := p.eat(token.IDENT); !ok {
			break
		}
		if p.is(token.BANG) {
			args = p.parseTemplateArgs()
		} else {
			args = nil
		}
	}
	return p.ctx.Builder.MakeNode(&ast.IdentifierType{Token: tok, Packages: pkgs, Name: name, Args: args})
}

// parseTypeSuffixes folds pointer/array/function-delegate suffixes onto
// base. The static-array-vs-associative-array ambiguity inside `[...]`
// is resolved by a pragmatic heuristic (a leading basic-type keyword
// reads as the key type of an associative array; anything else parses
// as the static array's length expression) rather than the full
// backtracking the grammar technically permits.
func (p *Parser) parseTypeSuffixes(base ast.NodeID) ast.NodeID {
	for {
		switch p.cur().Kind {
		case token.STAR:
			tok := p.cur()
			p.advance()
			base = p.ctx.Builder.MakeNode(&ast.PointerType{Token: tok, Elem: base})

		case token.LBRACKET:
			tok := p.cur()
			p.advance()
			if p.is(token.RBRACKET) {
				p.advance()
				base = p.ctx.Builder.MakeNode(&ast.DynamicArrayType{Token: tok, Elem: base})
				continue
			}
			if basicTypeKeywords[p.cur().Kind] {
				key := p.parseType()
				p.eat(token.RBRACKET)
				base = p.ctx.Builder.MakeNode(&ast.AssociativeArrayType{Token: tok, Elem: base, Key: key})
			} else {
				length := p.parseAssignExpr()
				p.eat(token.RBRACKET)
				base = p.ctx.Builder.MakeNode(&ast.StaticArrayType{Token: tok, Elem: base, Length: length})
			}

		case token.FUNCTION, token.DELEGATE:
			tok := p.cur()
			isFunc := tok.Kind == token.FUNCTION
			p.advance()
			params := p.parseParameterList()
			if isFunc {
				base = p.ctx.Builder.MakeNode(&ast.FunctionType{Token: tok, ReturnType: base, Params: params})
			} else {
				base = p.ctx.Builder.MakeNode(&ast.DelegateType{Token: tok, ReturnType: base, Params: params})
			}

		default:
			return base
		}
	}
}

var paramStorageKeywords = map[token.Kind]bool{
	token.IN: true, token.OUT: true, token.REF: true, token.LAZY: true, token.SCOPE: true,
	token.CONST: true, token.IMMUTABLE: true, token.SHARED: true, token.INOUT: true,
	token.RETURN_ATTR: true,
}

func (p *Parser) parseParameterList() []ast.NodeID {
	p.eat(token.LPAREN)
	p.inBrackets++
	defer func() { p.inBrackets-- }()
	var params []ast.NodeID
	for !p.is(token.RPAREN) && !p.is(token.EOF) {
		params = append(params, p.parseParameter())
		if p.is(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.eat(token.RPAREN)
	return params
}

func (p *Parser) parseParameter() ast.NodeID {
	tok := p.cur()
	udas := p.parseUDAList()
	var sc ast.ParamStorageClass
	for paramStorageKeywords[p.cur().Kind] {
		if qualifierOnly[p.cur().Kind] && p.peek(1).Kind == token.LPAREN {
			break // it's a type constructor, not a storage class
		}
		sc |= ast.ParamStorageClass(config.KindToStorageClass[p.cur().Kind])
		p.advance()
	}
	if p.is(token.ELLIPSIS) {
		p.advance()
		return p.ctx.Builder.MakeNode(&ast.Parameter{Token: tok, UDAs: udas, StorageClass: sc, Type: ast.NilID, Variadic: ast.VariadicUntyped})
	}
	typ := p.parseType()
	var name *token.Identifier
	if p.is(token.IDENT) {
		name = p.intern(p.cur())
		p.advance()
	}
	variadic := ast.VariadicNone
	if p.is(token.ELLIPSIS) {
		p.advance()
		variadic = ast.VariadicTypesafe
	}
	def := ast.NilID
	if p.is(token.ASSIGN) {
		p.advance()
		def = p.parseAssignExpr()
	}
	ignored := name != nil && name.Name == "_"
	return p.ctx.Builder.MakeNode(&ast.Parameter{
		Token: tok, UDAs: udas, StorageClass: sc, Type: typ, Name: name, Default: def,
		Variadic: variadic, Ignored: ignored,
	})
}

func (p *Parser) parseTemplateParameter() ast.NodeID {
	tok := p.cur()
	switch tok.Kind {
	case token.ALIAS:
		p.advance()
		name := p.intern(p.cur())
		p.eat(token.IDENT)
		tp := &ast.TemplateParameter{Token: tok, Kind_: ast.TPAlias, Name: name}
		p.parseTemplateParamTail(tp)
		return p.ctx.Builder.MakeNode(tp)
	case token.THIS:
		p.advance()
		name := p.intern(p.cur())
		p.eat(token.IDENT)
		return p.ctx.Builder.MakeNode(&ast.TemplateParameter{Token: tok, Kind_: ast.TPThis, Name: name})
	case token.IDENT:
		if p.peek(1).Kind == token.ELLIPSIS {
			name := p.intern(tok)
			p.advance()
			p.advance()
			return p.ctx.Builder.MakeNode(&ast.TemplateParameter{Token: tok, Kind_: ast.TPTuple, Name: name})
		}
		if p.peek(1).Kind == token.COLON || p.peek(1).Kind == token.ASSIGN ||
			p.peek(1).Kind == token.COMMA || p.peek(1).Kind == token.RPAREN {
			name := p.intern(tok)
			p.advance()
			tp := &ast.TemplateParameter{Token: tok, Kind_: ast.TPType, Name: name}
			p.parseTemplateParamTail(tp)
			return p.ctx.Builder.MakeNode(tp)
		}
		valType := p.parseType()
		name := p.intern(p.cur())
		p.eat(token.IDENT)
		tp := &ast.TemplateParameter{Token: tok, Kind_: ast.TPValue, Name: name, ValueType: valType}
		p.parseTemplateParamTail(tp)
		return p.ctx.Builder.MakeNode(tp)
	default:
		valType := p.parseType()
		name := p.intern(p.cur())
		p.eat(token.IDENT)
		tp := &ast.TemplateParameter{Token: tok, Kind_: ast.TPValue, Name: name, ValueType: valType}
		p.parseTemplateParamTail(tp)
		return p.ctx.Builder.MakeNode(tp)
	}
}

func (p *Parser) parseTemplateParamTail(tp *ast.TemplateParameter) {
	if p.is(token.COLON) {
		p.advance()
		if tp.Kind_ == ast.TPValue {
			tp.Bound = p.parseAssignExpr()
		} else {
			tp.Bound = p.parseType()
		}
	}
	if p.is(token.ASSIGN) {
		p.advance()
		if tp.Kind_ == ast.TPValue {
			tp.Default = p.parseAssignExpr()
		} else {
			tp.Default = p.parseType()
		}
	}
}
