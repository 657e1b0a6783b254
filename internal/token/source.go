package token

// Source is the contract the parser requires from whatever produces its
// token stream. The lexer hands a diagnostic to the configured handler
// when it scans the offending token, and the buffered implementation
// scans ahead to serve Current and Peek, so a token's diagnostics can
// reach the handler before Advance consumes it. After Advance returns,
// the handler has seen every diagnostic produced while lexing the token
// that was just consumed.
type Source interface {
	// Current returns the token the cursor currently sits on without
	// consuming it.
	Current() Token

	// Advance consumes the current token and returns the new current
	// token.
	Advance() Token

	// Peek returns the token k places ahead of the current one (k>=1)
	// without moving the cursor. It is restartable: repeated calls return
	// the same token.
	Peek(k int) Token
}

// PeekPastParen returns the token immediately following the matching
// ')' for a '(' sitting at src's current position. It is a convenience
// built on top of a balanced-paren scan and does not move src's cursor;
// callers pass the opening '(' token itself (normally src.Current()).
func PeekPastParen(src Source, open Token) Token {
	if open.Kind != LPAREN {
		return open
	}
	depth := 0
	for k := 0; ; k++ {
		var tok Token
		if k == 0 {
			tok = open
		} else {
			tok = src.Peek(k)
		}
		switch tok.Kind {
		case LPAREN:
			depth++
		case RPAREN:
			depth--
			if depth == 0 {
				return src.Peek(k + 1)
			}
		case EOF:
			return tok
		}
	}
}
