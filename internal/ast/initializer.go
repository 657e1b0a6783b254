package ast

import "github.com/mcgru/dparse/internal/token"

// VoidInitializer is the bare `void` initializer.
type VoidInitializer struct{ Token token.Token }

func (*VoidInitializer) Kind() NodeKind          { return KVoidInitializer }
func (d *VoidInitializer) GetToken() token.Token { return d.Token }

// ExprInitializer wraps a plain expression used to initialize a
// variable.
type ExprInitializer struct {
	Token token.Token
	Expr  NodeID
}

func (*ExprInitializer) Kind() NodeKind          { return KExprInitializer }
func (d *ExprInitializer) GetToken() token.Token { return d.Token }

// StructInitializerEntry is one `[id :] Initializer` entry.
type StructInitializerEntry struct {
	Name        *token.Identifier // nil for a positional entry
	Initializer NodeID
}

// StructInitializer is `{ [id :] Initializer, ... }`.
type StructInitializer struct {
	Token   token.Token
	Entries []StructInitializerEntry
}

func (*StructInitializer) Kind() NodeKind          { return KStructInitializer }
func (d *StructInitializer) GetToken() token.Token { return d.Token }

// ArrayInitializerEntry is one `[Expr :] Initializer` entry.
type ArrayInitializerEntry struct {
	Index       NodeID // NilID for a positional entry
	Initializer NodeID
}

// ArrayInitializer is `[ [Expr :] Initializer, ... ]`.
type ArrayInitializer struct {
	Token   token.Token
	Entries []ArrayInitializerEntry
}

func (*ArrayInitializer) Kind() NodeKind          { return KArrayInitializer }
func (d *ArrayInitializer) GetToken() token.Token { return d.Token }
