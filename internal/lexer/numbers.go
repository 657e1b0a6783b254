package lexer

import (
	"strconv"

	"github.com/mcgru/dparse/internal/diagnostics"
	"github.com/mcgru/dparse/internal/token"
)

// fitInt parses lit into tok.IntValue, falling back to an unsigned
// reading (and setting tok.UintValue) when the literal does not fit a
// signed int64.
func fitInt(tok *token.Token, lit string, l *Lexer) {
	if v, err := strconv.ParseInt(lit, 10, 64); err == nil {
		tok.IntValue = v
		return
	}
	if v, err := strconv.ParseUint(lit, 10, 64); err == nil {
		tok.UintValue = v
		return
	}
	if l.handler != nil {
		l.handler.Handle(tok.Loc, diagnostics.Error, false, "could not parse %q as an integer", lit)
	}
}

// fitFloat parses lit into tok.FloatValue.
func fitFloat(tok *token.Token, lit string, l *Lexer) {
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		if l.handler != nil {
			l.handler.Handle(tok.Loc, diagnostics.Error, false, "could not parse %q as a float", lit)
		}
		return
	}
	tok.FloatValue = v
}
