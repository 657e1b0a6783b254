package parser

import (
	"github.com/mcgru/dparse/internal/ast"
	"github.com/mcgru/dparse/internal/diagnostics"
	"github.com/mcgru/dparse/internal/probe"
	"github.com/mcgru/dparse/internal/token"
)

// Parser walks a token.Source and builds nodes through a Context's
// Builder. Scoped flags (linkage, lookingForElse, inBrackets) are saved
// and restored by their owning productions rather than living behind a
// stack, mirroring how small the teacher keeps Parser's own state.
type Parser struct {
	src token.Source
	ctx *Context

	linkage        ast.LinkageInfo
	hasLinkage     bool
	lookingForElse bool
	inBrackets     int
}

// New returns a Parser reading from src and reporting through ctx.
func New(src token.Source, ctx *Context) *Parser {
	return &Parser{src: src, ctx: ctx}
}

func (p *Parser) cur() token.Token  { return p.src.Current() }
func (p *Parser) peek(k int) token.Token { return p.src.Peek(k) }
func (p *Parser) cursor() probe.Cursor   { return probe.NewCursor(p.src) }

func (p *Parser) is(k token.Kind) bool { return p.cur().Kind == k }

func (p *Parser) advance() token.Token { return p.src.Advance() }

// eat consumes the current token if it has kind k, returning (token,
// true); otherwise reports an expected-X-got-Y diagnostic and returns
// the current token unconsumed with false, letting callers decide
// whether to resync.
func (p *Parser) eat(k token.Kind) (token.Token, bool) {
	t := p.cur()
	if t.Kind == k {
		p.advance()
		return t, true
	}
	p.errorf("expected %s, found %s", k, t)
	return t, false
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.ctx.Handler.Handle(p.cur().Loc, diagnostics.Error, false, format, args...)
}

func (p *Parser) warnf(loc token.Location, format string, args ...interface{}) {
	p.ctx.Handler.Handle(loc, diagnostics.Warning, false, format, args...)
}

func (p *Parser) deprecatedf(loc token.Location, format string, args ...interface{}) {
	p.ctx.Handler.Handle(loc, diagnostics.Deprecation, false, format, args...)
}

// resync advances past tokens until it reaches one of the given
// terminator kinds or EOF, then — if it stopped on SEMICOLON — consumes
// it too. This is the parser's sole error-recovery strategy (spec.md
// §7): resume at the next statement/declaration boundary rather than
// aborting the whole parse.
func (p *Parser) resync(terminators ...token.Kind) {
	for {
		t := p.cur()
		if t.Kind == token.EOF {
			return
		}
		for _, term := range terminators {
			if t.Kind == term {
				if t.Kind == token.SEMICOLON {
					p.advance()
				}
				return
			}
		}
		p.advance()
	}
}

func (p *Parser) intern(t token.Token) *token.Identifier {
	return p.ctx.Interner.Intern(t.Lexeme)
}

// ParseModule is the parser's top-level entry point: an optional
// `module` header (itself optionally preceded by module-level UDAs),
// then parseDeclDefs until EOF.
func ParseModule(src token.Source, ctx *Context) *ast.Module {
	p := New(src, ctx)
	mod := &ast.Module{Arena: ctx.arena(), ModuleDecl: ast.NilID}

	for p.is(token.SEMICOLON) {
		p.advance()
	}

	if p.is(token.AT) {
		cur := p.cursor()
		after := probe.SkipAttributes(cur)
		if after.Is(token.MODULE) {
			udas := p.parseUDAList()
			mod.UserAttributes = udas
		}
	}

	if p.is(token.MODULE) {
		mod.ModuleDecl = p.parseModuleDecl()
	}

	for !p.is(token.EOF) {
		if p.is(token.SEMICOLON) {
			p.advance()
			continue
		}
		id := p.parseDeclDef(ast.PrefixAttributes{})
		if id != ast.NilID {
			mod.Decls = append(mod.Decls, id)
		}
	}
	return mod
}

func (p *Parser) parseModuleDecl() ast.NodeID {
	tok := p.cur()
	p.advance() // `module`
	var pkgs []*token.Identifier
	name := p.intern(p.cur())
	if _, ok := p.eat(token.IDENT); !ok {
		p.resync(token.SEMICOLON)
		return p.ctx.Builder.MakeModuleDecl(&ast.ModuleDecl{Token: tok})
	}
	for p.is(token.DOT) {
		p.advance()
		pkgs = append(pkgs, name)
		name = p.intern(p.cur())
		if _, ok := p.eat(token.IDENT); !ok {
			break
		}
	}
	p.eat(token.SEMICOLON)
	return p.ctx.Builder.MakeModuleDecl(&ast.ModuleDecl{Token: tok, Packages: pkgs, Name: name})
}

func (p *Parser) parseUDAList() []ast.NodeID {
	var udas []ast.NodeID
	for p.is(token.AT) {
		udas = append(udas, p.parseUDA())
	}
	return udas
}

// parseUDA parses one `@id`, `@id!arg`, `@id!(args)`, `@id(args)`, or
// `@(args)` attribute, returning it as a call-shaped expression node.
func (p *Parser) parseUDA() ast.NodeID {
	tok := p.cur()
	p.advance() // @
	if p.is(token.LPAREN) {
		args := p.parseArgumentList()
		return p.ctx.Builder.MakeNode(&ast.CallExpr{Token: tok, Callee: ast.NilID, Args: args})
	}
	name := p.intern(p.cur())
	if _, ok := atSafetyStorageClass[p.cur().Kind]; ok {
		p.advance()
	} else {
		p.eat(token.IDENT)
	}
	callee := p.ctx.Builder.MakeNode(&ast.IdentifierExpr{Token: tok, Name: name})
	if p.is(token.BANG) {
		callee = p.finishTemplateScope(tok, name)
	}
	if p.is(token.LPAREN) {
		args := p.parseArgumentList()
		return p.ctx.Builder.MakeNode(&ast.CallExpr{Token: tok, Callee: callee, Args: args})
	}
	return callee
}

func (p *Parser) finishTemplateScope(tok token.Token, name *token.Identifier) ast.NodeID {
	p.advance() // !
	var args []ast.NodeID
	if p.is(token.LPAREN) {
		p.advance()
		for !p.is(token.RPAREN) && !p.is(token.EOF) {
			args = append(args, p.parseAssignExpr())
			if p.is(token.COMMA) {
				p.advance()
				continue
			}
			break
		}
		p.eat(token.RPAREN)
	} else {
		arg := p.parseTemplateArg()
		if scope, ok := p.ctx.arena().Get(arg).(*ast.ScopeExpr); ok {
			p.errorf("%s!%s!... is ambiguous; parenthesize the inner template instance", name.Name, scope.Name.Name)
		}
		args = append(args, arg)
	}
	return p.ctx.Builder.MakeNode(&ast.ScopeExpr{Token: tok, Name: name, Args: args})
}

func (p *Parser) parseArgumentList() []ast.Argument {
	p.eat(token.LPAREN)
	var args []ast.Argument
	p.inBrackets++
	defer func() { p.inBrackets-- }()
	for !p.is(token.RPAREN) && !p.is(token.EOF) {
		args = append(args, p.parseArgument())
		if p.is(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.eat(token.RPAREN)
	return args
}

func (p *Parser) parseArgument() ast.Argument {
	if p.is(token.ELLIPSIS) {
		p.advance()
		return ast.Argument{Value: p.parseAssignExpr(), Spread: true}
	}
	if p.is(token.IDENT) && p.peek(1).Kind == token.COLON {
		name := p.intern(p.cur())
		p.advance()
		p.advance() // :
		return ast.Argument{Name: name, Value: p.parseAssignExpr()}
	}
	return ast.Argument{Value: p.parseAssignExpr()}
}
