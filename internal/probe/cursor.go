// Package probe implements the lookahead probes: pure predicates over
// the token stream that classify a position as basic-type / declarator
// / parameters / expression / attributes, plus a matching-paren/bracket
// skipper. Every probe takes a Cursor by value and never mutates the
// parser's live cursor, per spec.md §4.3.
package probe

import "github.com/mcgru/dparse/internal/token"

// Cursor is a restartable position in a token.Source: an offset ahead
// of the source's live current token. Cursor is a plain value — copying
// it and advancing the copy never touches the source's real cursor.
type Cursor struct {
	src token.Source
	at  int // 0 == src.Current(); k>0 == src.Peek(k)
}

// NewCursor returns a Cursor sitting on src's current token.
func NewCursor(src token.Source) Cursor {
	return Cursor{src: src, at: 0}
}

// Tok returns the token the cursor currently sits on.
func (c Cursor) Tok() token.Token {
	if c.at == 0 {
		return c.src.Current()
	}
	return c.src.Peek(c.at)
}

// Next returns a new Cursor advanced one token past c.
func (c Cursor) Next() Cursor {
	return Cursor{src: c.src, at: c.at + 1}
}

// Is reports whether c's token has kind k.
func (c Cursor) Is(k token.Kind) bool { return c.Tok().Kind == k }
