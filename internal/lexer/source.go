package lexer

import "github.com/mcgru/dparse/internal/token"

const lookaheadBufferSize = 16

// bufferedSource adapts a Lexer to the token.Source contract, buffering
// ahead as far as any Peek(k) call requires and trimming the buffer
// once the cursor has moved well past its front — the same shape as
// mcgru-funxy's internal/lexer/processor.go bufferedLexer, generalized
// from a slice-returning Peek(n) to the single-token Peek(k) contract
// spec.md §4.2 specifies.
type bufferedSource struct {
	l      *Lexer
	buffer []token.Token
	pos    int
}

// NewSource returns a token.Source reading from l.
func NewSource(l *Lexer) token.Source {
	bs := &bufferedSource{l: l}
	bs.fill(1)
	return bs
}

func (bs *bufferedSource) fill(n int) {
	for len(bs.buffer)-bs.pos < n {
		tok := bs.l.NextToken()
		bs.buffer = append(bs.buffer, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
}

func (bs *bufferedSource) Current() token.Token {
	bs.fill(1)
	return bs.buffer[bs.pos]
}

// Advance consumes the current token and returns the new current token.
// Diagnostics produced while scanning are delivered synchronously by
// Lexer.NextToken through the handler, so by the time Advance returns
// the handler has already seen everything produced while lexing the
// token just consumed — the ordering guarantee spec.md §4.2 requires.
func (bs *bufferedSource) Advance() token.Token {
	if bs.buffer[bs.pos].Kind != token.EOF {
		bs.pos++
	}
	if bs.pos > lookaheadBufferSize {
		bs.buffer = bs.buffer[bs.pos:]
		bs.pos = 0
	}
	return bs.Current()
}

func (bs *bufferedSource) Peek(k int) token.Token {
	bs.fill(k + 1)
	idx := bs.pos + k
	if idx >= len(bs.buffer) {
		return bs.buffer[len(bs.buffer)-1]
	}
	return bs.buffer[idx]
}

var _ token.Source = (*bufferedSource)(nil)
