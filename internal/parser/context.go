// Package parser implements the recursive-descent parser: module and
// declaration parsing, the 17-level Pratt expression parser, and the
// statement grammar, all built on the token.Source/probe.Cursor
// lookahead contract instead of the teacher's curToken/peekToken pair.
package parser

import (
	"github.com/mcgru/dparse/internal/ast"
	"github.com/mcgru/dparse/internal/diagnostics"
	"github.com/mcgru/dparse/internal/intern"
)

// Context bundles the capabilities a parse needs beyond the token
// stream itself: where to report diagnostics, where to build nodes,
// and the interner backing identifier identity. It replaces the
// teacher's *pipeline.PipelineContext — the same role, generalized
// from an error-accumulating slice to the Handler seam spec.md §7
// requires.
type Context struct {
	Handler  diagnostics.Handler
	Builder  ast.Builder
	Interner *intern.Interner
}

// NewContext wires a fresh ArenaBuilder and Interner behind handler.
func NewContext(handler diagnostics.Handler) *Context {
	return &Context{
		Handler:  handler,
		Builder:  ast.NewArenaBuilder(),
		Interner: intern.New(),
	}
}

func (c *Context) arena() *ast.Arena { return c.Builder.Arena() }
