package parser

import (
	"github.com/mcgru/dparse/internal/ast"
	"github.com/mcgru/dparse/internal/lexer"
	"github.com/mcgru/dparse/internal/token"
)

// ParseExpressionFromString re-lexes and re-parses text as a standalone
// AssignExpression, sharing this parse's Context (and therefore its
// Builder/Arena and Interner) so the resulting NodeIDs resolve in the
// same arena as the rest of the module. Used for string-mixin splices
// (`mixin(expr)` where expr evaluates to source text at a later compile
// phase this parser does not perform) — grounded on the teacher's parseEmbeddedExpression, generalized from a fresh
// per-call *pipeline.PipelineContext to this parser's shared *Context.
//
// The embedded lexer reports through a synthesized pseudo-filename
// (`<origfile>-mixin-<uuid>`) rather than loc.File directly, so a
// diagnostic produced while scanning the spliced text can't be
// confused with one at the same line/column in the real file it was
// spliced into.
func ParseExpressionFromString(ctx *Context, loc token.Location, text string) ast.NodeID {
	file := ctx.Interner.GenerateID(loc.File + "-mixin").Name
	l := lexer.New(file, text, ctx.Interner, ctx.Handler)
	src := lexer.NewSource(l)
	embedded := New(src, ctx)
	return embedded.parseAssignExpr()
}
