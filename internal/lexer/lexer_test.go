package lexer

import (
	"testing"

	"github.com/mcgru/dparse/internal/diagnostics"
	"github.com/mcgru/dparse/internal/intern"
	"github.com/mcgru/dparse/internal/token"
)

// scan runs the lexer to EOF, returning every token (EOF included) and
// whatever diagnostics were raised along the way.
func scan(t *testing.T, src string) ([]token.Token, *diagnostics.Set) {
	t.Helper()
	set := &diagnostics.Set{}
	handler := diagnostics.NewCollectHandler(set)
	l := New("test.d", src, intern.New(), handler)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, set
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	toks, set := scan(t, "struct Foo { int x; }")
	if set.Len() != 0 {
		t.Fatalf("want no diagnostics, got %v", set.All())
	}
	want := []token.Kind{token.STRUCT, token.IDENT, token.LBRACE, token.INT_T, token.IDENT, token.SEMICOLON, token.RBRACE, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("want %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("token %d: want %v, got %v", i, k, got[i])
		}
	}
	if toks[1].Ident.Name != "Foo" {
		t.Fatalf("want interned identifier Foo, got %q", toks[1].Ident.Name)
	}
}

func TestLexSafetyWordsAreDedicatedKeywords(t *testing.T) {
	toks, set := scan(t, "@safe @nogc @trusted")
	if set.Len() != 0 {
		t.Fatalf("want no diagnostics, got %v", set.All())
	}
	want := []token.Kind{token.AT, token.SAFE, token.AT, token.NOGC, token.AT, token.TRUSTED, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("want %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("token %d: want %v, got %v", i, k, got[i])
		}
	}
}

func TestLexThreeCharOperatorsPreferLongestMatch(t *testing.T) {
	toks, _ := scan(t, "a >>>= b ... c ^^= d")
	got := kinds(toks)
	want := []token.Kind{
		token.IDENT, token.USHR_ASSIGN, token.IDENT, token.ELLIPSIS,
		token.IDENT, token.POW_ASSIGN, token.IDENT, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("want %d tokens, got %d: %v", len(want), len(got), got)
	}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("token %d: want %v, got %v", i, k, got[i])
		}
	}
}

func TestLexIntAndFloatLiterals(t *testing.T) {
	toks, set := scan(t, "42 3.14 1_000")
	if set.Len() != 0 {
		t.Fatalf("want no diagnostics, got %v", set.All())
	}
	if toks[0].Kind != token.INT_LITERAL || toks[0].IntValue != 42 {
		t.Fatalf("want int literal 42, got %#v", toks[0])
	}
	if toks[1].Kind != token.FLOAT_LITERAL || toks[1].FloatValue != 3.14 {
		t.Fatalf("want float literal 3.14, got %#v", toks[1])
	}
	if toks[2].Kind != token.INT_LITERAL || toks[2].IntValue != 1000 {
		t.Fatalf("want underscore-separated int 1000, got %#v", toks[2])
	}
}

func TestLexStringEscapesAndPostfix(t *testing.T) {
	toks, set := scan(t, `"a\nb"c`)
	if set.Len() != 0 {
		t.Fatalf("want no diagnostics, got %v", set.All())
	}
	if toks[0].Kind != token.STRING_LITERAL {
		t.Fatalf("want string literal, got %v", toks[0].Kind)
	}
	if string(toks[0].StringVal) != "a\nb" {
		t.Fatalf("want unescaped a\\nb, got %q", toks[0].StringVal)
	}
	if toks[0].Postfix != 'c' {
		t.Fatalf("want postfix c, got %q", toks[0].Postfix)
	}
}

func TestLexUnterminatedStringReportsError(t *testing.T) {
	_, set := scan(t, `"unterminated`)
	if !set.HasErrors() {
		t.Fatalf("want an error diagnostic for the unterminated string")
	}
}

func TestLexDocCommentAttachesToNextToken(t *testing.T) {
	toks, _ := scan(t, "/// returns x\nint f;")
	if toks[0].LineComment == "" {
		t.Fatalf("want the doc comment attached to the following token, got none")
	}
}

func TestLexIllegalCharacterReportsError(t *testing.T) {
	toks, set := scan(t, "a # b")
	if !set.HasErrors() {
		t.Fatalf("want an error diagnostic for the illegal character")
	}
	found := false
	for _, tok := range toks {
		if tok.Kind == token.ILLEGAL {
			found = true
		}
	}
	if !found {
		t.Fatalf("want an ILLEGAL token in the stream, got %v", kinds(toks))
	}
}
