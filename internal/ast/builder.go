package ast

// Builder is the "templated-on-AST parser" trait from SPEC_FULL §9: the
// parser calls builder.MakeFoo(...) instead of touching a concrete
// constructor or the Arena directly, so a future re-implementation could
// swap in a builder that constructs a stripped header-only AST without
// touching parser.go. Node families spec.md names explicitly each get a
// dedicated method; every other family goes through the generic MakeNode,
// which still routes through the same Builder seam.
type Builder interface {
	MakeModuleDecl(n *ModuleDecl) NodeID
	MakeImportDecl(n *ImportDecl) NodeID
	MakeAggregateDecl(n *AggregateDecl) NodeID
	MakeEnumDecl(n *EnumDecl) NodeID
	MakeTemplateDecl(n *TemplateDecl) NodeID
	MakeMixinDecl(n *MixinDecl) NodeID
	MakeFuncDecl(n *FuncDecl) NodeID
	MakeVarDecl(n *VarDecl) NodeID
	MakeAliasDecl(n *AliasDecl) NodeID

	// MakeNode is the generic escape hatch for every node family not
	// named above; it still goes through the Builder seam rather than
	// calling Arena.add directly from parser code.
	MakeNode(n Node) NodeID

	// Arena returns the arena this builder writes into, so the parser
	// can resolve NodeIDs it receives back for lookahead/disambiguation
	// decisions.
	Arena() *Arena
}

// ArenaBuilder is the default Builder: every Make call appends straight
// to one Arena. It is the only Builder implementation this repo ships,
// but the parser is written against the interface, not this type.
type ArenaBuilder struct {
	arena *Arena
}

// NewArenaBuilder returns a Builder backed by a fresh Arena.
func NewArenaBuilder() *ArenaBuilder {
	return &ArenaBuilder{arena: NewArena()}
}

func (b *ArenaBuilder) Arena() *Arena { return b.arena }

func (b *ArenaBuilder) MakeModuleDecl(n *ModuleDecl) NodeID       { return b.arena.add(n) }
func (b *ArenaBuilder) MakeImportDecl(n *ImportDecl) NodeID       { return b.arena.add(n) }
func (b *ArenaBuilder) MakeAggregateDecl(n *AggregateDecl) NodeID { return b.arena.add(n) }
func (b *ArenaBuilder) MakeEnumDecl(n *EnumDecl) NodeID           { return b.arena.add(n) }
func (b *ArenaBuilder) MakeTemplateDecl(n *TemplateDecl) NodeID   { return b.arena.add(n) }
func (b *ArenaBuilder) MakeMixinDecl(n *MixinDecl) NodeID         { return b.arena.add(n) }
func (b *ArenaBuilder) MakeFuncDecl(n *FuncDecl) NodeID           { return b.arena.add(n) }
func (b *ArenaBuilder) MakeVarDecl(n *VarDecl) NodeID             { return b.arena.add(n) }
func (b *ArenaBuilder) MakeAliasDecl(n *AliasDecl) NodeID         { return b.arena.add(n) }
func (b *ArenaBuilder) MakeNode(n Node) NodeID                    { return b.arena.add(n) }
