package probe

import (
	"github.com/mcgru/dparse/internal/config"
	"github.com/mcgru/dparse/internal/token"
)

// SkipParens requires c to sit on '(' and walks matched '('/')' pairs
// until depth returns to 0, returning the cursor just past the matching
// ')'. It fails on EOF.
func SkipParens(c Cursor) (Cursor, bool) {
	if !c.Is(token.LPAREN) {
		return c, false
	}
	depth := 0
	for {
		switch c.Tok().Kind {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				return c.Next(), true
			}
		case token.EOF:
			return c, false
		}
		c = c.Next()
	}
}

// skipBalanced walks matched open/close token kinds, used by
// SkipAttributes for the `@id!(args)` and `@(args)` forms.
func skipBalanced(c Cursor, open, close token.Kind) (Cursor, bool) {
	if !c.Is(open) {
		return c, false
	}
	depth := 0
	for {
		switch c.Tok().Kind {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return c.Next(), true
			}
		case token.EOF:
			return c, false
		}
		c = c.Next()
	}
}

var attributeKeywords = map[token.Kind]bool{
	token.CONST: true, token.IMMUTABLE: true, token.SHARED: true, token.INOUT: true,
	token.FINAL: true, token.AUTO: true, token.SCOPE: true, token.OVERRIDE: true,
	token.ABSTRACT: true, token.SYNCHRONIZED: true, token.NOTHROW: true, token.PURE: true,
	token.REF: true, token.GSHARED: true, token.RETURN_ATTR: true,
}

// SkipAttributes skips a run of storage-class keywords, `deprecated(…)`,
// and `@` attribute forms (`@id`, `@id!arg`, `@id!(args)` optionally
// followed by `(args)`, and `@(args)`), returning the cursor past the
// last one recognised. It always succeeds (zero attributes is a valid
// skip of length zero).
func SkipAttributes(c Cursor) Cursor {
	for {
		switch {
		case attributeKeywords[c.Tok().Kind]:
			c = c.Next()
		case c.Is(token.DEPRECATED) && c.Next().Is(token.LPAREN):
			if next, ok := SkipParens(c.Next()); ok {
				c = next
				continue
			}
			return c
		case c.Is(token.AT):
			next := c.Next()
			switch {
			case next.Is(token.LPAREN):
				if after, ok := SkipParens(next); ok {
					c = after
					continue
				}
				return c
			case next.Is(token.IDENT):
				after := next.Next()
				if after.Is(token.BANG) {
					argc := after.Next()
					if argc.Is(token.LPAREN) {
						if past, ok := SkipParens(argc); ok {
							after = past
						} else {
							return c
						}
					} else {
						after = argc.Next()
					}
				}
				if after.Is(token.LPAREN) {
					if past, ok := SkipParens(after); ok {
						after = past
					}
				}
				c = after
			default:
				return c
			}
		default:
			return c
		}
	}
}

var basicTypeKeywords = map[token.Kind]bool{
	token.VOID_T: true, token.BOOL_T: true, token.BYTE_T: true, token.UBYTE_T: true,
	token.SHORT_T: true, token.USHORT_T: true, token.INT_T: true, token.UINT_T: true,
	token.LONG_T: true, token.ULONG_T: true, token.CHAR_T: true, token.WCHAR_T: true,
	token.DCHAR_T: true, token.FLOAT_T: true, token.DOUBLE_T: true, token.REAL_T: true,
	token.IFLOAT_T: true, token.IDOUBLE_T: true, token.IREAL_T: true,
	token.CFLOAT_T: true, token.CDOUBLE_T: true, token.CREAL_T: true,
}

// IsBasicType recognises a type prefix: a basic type keyword, a
// (possibly dotted, possibly template-applied) identifier `a.b!c.d`,
// `typeof(e)`, `__vector(…)`, `__traits(getMember, …)`, or a
// type-constructor-with-parens form `const(T)` et al.
func IsBasicType(c Cursor) (Cursor, bool) {
	switch {
	case basicTypeKeywords[c.Tok().Kind]:
		return c.Next(), true

	case c.Tok().Kind == token.CONST || c.Tok().Kind == token.IMMUTABLE ||
		c.Tok().Kind == token.SHARED || c.Tok().Kind == token.INOUT:
		if c.Next().Is(token.LPAREN) {
			return SkipParens(c.Next())
		}
		return c, false

	case c.Is(token.TYPEOF):
		if !c.Next().Is(token.LPAREN) {
			return c, false
		}
		return SkipParens(c.Next())

	case c.Is(token.VECTOR):
		if !c.Next().Is(token.LPAREN) {
			return c, false
		}
		return SkipParens(c.Next())

	case c.Is(token.TRAITS):
		if !c.Next().Is(token.LPAREN) {
			return c, false
		}
		return SkipParens(c.Next())

	case c.Is(token.IDENT):
		cur := c.Next()
		for {
			if cur.Is(token.BANG) {
				after := cur.Next()
				if after.Is(token.LPAREN) {
					next, ok := SkipParens(after)
					if !ok {
						return c, false
					}
					cur = next
				} else if after.Is(token.IDENT) {
					cur = after.Next()
				} else {
					return c, false
				}
			}
			if cur.Is(token.DOT) && cur.Next().Is(token.IDENT) {
				cur = cur.Next().Next()
				continue
			}
			break
		}
		return cur, true

	default:
		return c, false
	}
}

// IsParameters recognises a complete parameter list starting at an
// LPAREN: variadic, parameter storage classes, default arguments, and
// nested parentheses (the type of each parameter may itself contain
// balanced parens, e.g. function-pointer parameter types).
func IsParameters(c Cursor) (Cursor, bool) {
	if !c.Is(token.LPAREN) {
		return c, false
	}
	return SkipParens(c)
}

// IsExpression scans until an unbalanced bracket/paren/brace closes or
// a ',' appears at depth 0, treating ';' outside braces and EOF as
// failure. It is deliberately
// permissive: callers use it as "is there at least one well-formed
// expression-shaped run of tokens here", not a full expression parse.
func IsExpression(c Cursor) (Cursor, bool) {
	depth, braces := 0, 0
	start := c
	any := false
	for {
		tok := c.Tok()
		switch tok.Kind {
		case token.LPAREN, token.LBRACKET, token.LBRACE:
			depth++
			if tok.Kind == token.LBRACE {
				braces++
			}
		case token.RPAREN, token.RBRACKET, token.RBRACE:
			if depth == 0 {
				if !any {
					return start, false
				}
				return c, true
			}
			depth--
			if tok.Kind == token.RBRACE {
				braces--
			}
		case token.SEMICOLON:
			if braces == 0 {
				return start, false
			}
		case token.COMMA:
			if depth == 0 {
				if !any {
					return start, false
				}
				return c, true
			}
		case token.EOF:
			return start, false
		}
		any = true
		c = c.Next()
	}
}

// DeclaratorEndTokens is the valid-terminator set for is_declarator:
// `) ] = , ... ; { in out do`. `if` terminates only when a template
// parameter list was seen (IsDeclarator passes that distinction to
// isDeclaratorEnd as allowIf).
var DeclaratorEndTokens = []token.Kind{
	token.RPAREN, token.RBRACKET, token.ASSIGN, token.COMMA, token.ELLIPSIS,
	token.SEMICOLON, token.LBRACE, token.IN, token.OUT, token.DO,
}

func isDeclaratorEnd(k token.Kind, allowIf bool) bool {
	for _, e := range DeclaratorEndTokens {
		if e == k {
			return true
		}
	}
	return allowIf && k == token.IF
}

// IsDeclarator extends past pointer suffixes, C-array postfix (gated by
// config.AllowCArrayPostfix), `(` parenthesised sub-declarators (gated
// by config.AllowAltSyntax), function/delegate-type suffixes, then
// DeclaratorSuffixes (a template parameter list, a function parameter
// list, an attribute postfix). Reports whether an identifier and/or a
// template-parameter list were seen, and whether the scan reached one
// of the valid terminators.
func IsDeclarator(c Cursor) (next Cursor, haveID bool, haveTemplateID bool, ok bool) {
	for c.Is(token.STAR) {
		c = c.Next()
	}
	for c.Is(token.FUNCTION) || c.Is(token.DELEGATE) {
		inner, got := IsParameters(c.Next())
		if !got {
			return c, false, false, false
		}
		c = SkipAttributes(inner)
		for c.Is(token.STAR) {
			c = c.Next()
		}
	}
	if config.AllowAltSyntax && c.Is(token.LPAREN) {
		inner, got := SkipParens(c)
		if !got {
			return c, false, false, false
		}
		c = inner
	}
	if c.Is(token.IDENT) {
		haveID = true
		c = c.Next()
	}
	if c.Is(token.BANG) {
		after := c.Next()
		if after.Is(token.LPAREN) {
			inner, got := SkipParens(after)
			if got {
				haveTemplateID = true
				c = inner
			}
		}
	}
	for config.AllowCArrayPostfix && c.Is(token.LBRACKET) {
		inner, got := skipBalanced(c, token.LBRACKET, token.RBRACKET)
		if !got {
			break
		}
		c = inner
	}
	if c.Is(token.LPAREN) {
		inner, got := IsParameters(c)
		if got {
			c = inner
		}
	}
	c = SkipAttributes(c)
	return c, haveID, haveTemplateID, isDeclaratorEnd(c.Tok().Kind, haveTemplateID)
}
