package ast

import "github.com/mcgru/dparse/internal/token"

// AggregateTag distinguishes struct/union/class/interface, which share
// one parse path and one node shape (declarator folding never needs to
// tell them apart except for this tag and the keyword that introduced
// them).
type AggregateTag int

const (
	TagStruct AggregateTag = iota
	TagUnion
	TagClass
	TagInterface
)

// Module is the parser's output handle: the root declaration list plus
// the module_declaration / user_attribute_declaration side-effects
// spec.md §6 describes.
type Module struct {
	Arena          *Arena
	ModuleDecl     NodeID // KModuleDecl, or NilID if no `module` header
	UserAttributes []NodeID
	Decls          []NodeID
}

// ModuleDecl represents `module a.b.c;`.
type ModuleDecl struct {
	Token      token.Token
	Packages   []*token.Identifier
	Name       *token.Identifier
	Deprecated NodeID // expression, or NilID
	UDAs       []NodeID
}

func (*ModuleDecl) Kind() NodeKind          { return KModuleDecl }
func (d *ModuleDecl) GetToken() token.Token { return d.Token }

// ImportBind is one `orig = alias` or bare `name` binding inside an
// import's selective-import list.
type ImportBind struct {
	Name  *token.Identifier
	Alias *token.Identifier // nil if not renamed
}

// ImportDecl represents `import [static] a.b.c [: binds] ;` and its
// module-alias form `import x = a.b.c;`.
type ImportDecl struct {
	Token     token.Token
	IsStatic  bool
	Packages  []*token.Identifier
	Name      *token.Identifier
	ModAlias  *token.Identifier // `import alias = path`
	Selective []ImportBind      // `import std.stdio : writeln, write = writeImpl;`
}

func (*ImportDecl) Kind() NodeKind          { return KImportDecl }
func (d *ImportDecl) GetToken() token.Token { return d.Token }

// AggregateDecl represents a struct/union/class/interface declaration,
// with optional base-class/interface list and optional template
// parameters folded in by the surrounding TemplateDecl wrapper.
type AggregateDecl struct {
	Token   token.Token
	Tag     AggregateTag
	Name    *token.Identifier // nil for anonymous aggregates
	Bases   []NodeID          // KIdentifierType entries
	Members []NodeID
	IsAnon  bool
}

func (*AggregateDecl) Kind() NodeKind          { return KAggregateDecl }
func (d *AggregateDecl) GetToken() token.Token { return d.Token }

// EnumMember is one `id [: Type] [= Value]` entry of an enum body.
type EnumMember struct {
	Token token.Token
	Name  *token.Identifier // nil for anonymous-member (rare)
	Type  NodeID            // NilID if not given
	Value NodeID            // NilID if not given
}

func (*EnumMember) Kind() NodeKind          { return KEnumMember }
func (d *EnumMember) GetToken() token.Token { return d.Token }

// EnumDecl represents `enum [Name] [: BaseType] { Members }` or the
// manifest-constant form `enum name = expr;`.
type EnumDecl struct {
	Token       token.Token
	Name        *token.Identifier // nil for anonymous enum
	BaseType    NodeID            // NilID if omitted
	Members     []NodeID          // KEnumMember
	ManifestVal NodeID            // set instead of Members for `enum x = 1;`
}

func (*EnumDecl) Kind() NodeKind          { return KEnumDecl }
func (d *EnumDecl) GetToken() token.Token { return d.Token }

// TemplateParamKind distinguishes the several template parameter forms.
type TemplateParamKind int

const (
	TPType TemplateParamKind = iota
	TPValue
	TPAlias
	TPTuple
	TPThis
)

// TemplateParameter is one entry of a template's parameter list.
type TemplateParameter struct {
	Token        token.Token
	Kind_        TemplateParamKind
	Name         *token.Identifier
	Bound        NodeID // `: Bound` specialization/constraint, NilID if none
	Default      NodeID // `= Default`, NilID if none
	ValueType    NodeID // for TPValue: the parameter's type
}

func (*TemplateParameter) Kind() NodeKind          { return KTemplateParameter }
func (d *TemplateParameter) GetToken() token.Token { return d.Token }

// TemplateDecl wraps a single aggregate/function/alias/mixin declaration
// together with its template parameter list and optional `if (...)`
// constraint, per the `struct S(T) if (is(T == int)) {...}` shape.
type TemplateDecl struct {
	Token      token.Token
	Name       *token.Identifier
	Params     []NodeID // KTemplateParameter
	Constraint NodeID   // KIsExpr or general expression, NilID if absent
	Body       []NodeID // wrapped declarations (usually exactly one)
	IsMixin    bool     // `mixin template M() {...}`
}

func (*TemplateDecl) Kind() NodeKind          { return KTemplateDecl }
func (d *TemplateDecl) GetToken() token.Token { return d.Token }

// TemplateInstanceDecl represents `mixin M!(args) [name];` — a template
// mixin instantiation bound (optionally) to a symbol.
type TemplateInstanceDecl struct {
	Token     token.Token
	Template  *token.Identifier
	Args      []NodeID
	BindName  *token.Identifier // nil if not bound to a name
}

func (*TemplateInstanceDecl) Kind() NodeKind          { return KTemplateInstanceDecl }
func (d *TemplateInstanceDecl) GetToken() token.Token { return d.Token }

// MixinForm distinguishes the four mixin declaration/statement/
// expression/type splice forms.
type MixinForm int

const (
	MixinExpr_ MixinForm = iota
	MixinType_
	MixinDecl_
	MixinStmt_
)

// MixinDecl represents a `mixin(args);` string-mixin splice appearing
// in declaration position.
type MixinDecl struct {
	Token token.Token
	Form  MixinForm
	Args  []NodeID
}

func (*MixinDecl) Kind() NodeKind          { return KMixinDecl }
func (d *MixinDecl) GetToken() token.Token { return d.Token }

// ParamStorageClass mirrors config.StorageClass but scoped to the
// subset valid on a function parameter (in/out/ref/lazy/scope/const/
// immutable/shared/inout/return).
type ParamStorageClass = uint32

// VariadicKind classifies a parameter list's trailing variadic marker.
type VariadicKind int

const (
	VariadicNone VariadicKind = iota
	VariadicUntyped            // `...` alone
	VariadicTypesafe           // `Type id ...`
)

// Parameter is one entry of a function parameter list.
type Parameter struct {
	Token        token.Token
	UDAs         []NodeID // leading `@uda` attributes; spec.md §4.5 rejects postfix placement
	StorageClass ParamStorageClass
	Type         NodeID // NilID when inferred via an implicit template type param
	Name         *token.Identifier
	Default      NodeID // NilID if none
	Variadic     VariadicKind
	Ignored      bool // underscore-named parameter
}

func (*Parameter) Kind() NodeKind          { return KParameter }
func (d *Parameter) GetToken() token.Token { return d.Token }

// ContractKind distinguishes an in/out contract's expression-form from
// its block-form.
type ContractKind int

const (
	ContractBlock ContractKind = iota
	ContractExpr
)

// Contract is one `in`/`out` clause attached to a function.
type Contract struct {
	Kind     ContractKind
	OutIdent *token.Identifier // `out(result)` binding, nil if none
	Expr     NodeID            // ContractExpr form: the asserted expression
	Message  NodeID            // optional `, msg` expression, NilID if none
	Body     NodeID            // ContractBlock form: KBlockStmt
}

// FuncDecl represents a function declaration, including contracts.
type FuncDecl struct {
	Token      token.Token
	Name       *token.Identifier
	ReturnType NodeID // NilID for `auto`-inferred
	Params     []NodeID
	Requires   []Contract
	Ensures    []Contract
	Body       NodeID // KBlockStmt, or NilID for a contract-only/forward decl
}

func (*FuncDecl) Kind() NodeKind          { return KFuncDecl }
func (d *FuncDecl) GetToken() token.Token { return d.Token }

// CtorDecl represents `this(params) {...}`.
type CtorDecl struct {
	Token    token.Token
	Params   []NodeID
	Requires []Contract
	Ensures  []Contract
	Body     NodeID
}

func (*CtorDecl) Kind() NodeKind          { return KCtorDecl }
func (d *CtorDecl) GetToken() token.Token { return d.Token }

// DtorDecl represents `~this() {...}`.
type DtorDecl struct {
	Token token.Token
	Body  NodeID
}

func (*DtorDecl) Kind() NodeKind          { return KDtorDecl }
func (d *DtorDecl) GetToken() token.Token { return d.Token }

// PostblitDecl represents `this(this) {...}`.
type PostblitDecl struct {
	Token token.Token
	Body  NodeID
}

func (*PostblitDecl) Kind() NodeKind          { return KPostblitDecl }
func (d *PostblitDecl) GetToken() token.Token { return d.Token }

// StaticCtorDecl represents `static this() {...}`.
type StaticCtorDecl struct {
	Token token.Token
	Body  NodeID
}

func (*StaticCtorDecl) Kind() NodeKind          { return KStaticCtorDecl }
func (d *StaticCtorDecl) GetToken() token.Token { return d.Token }

// SharedStaticCtorDecl represents `shared static this() {...}`.
type SharedStaticCtorDecl struct {
	Token token.Token
	Body  NodeID
}

func (*SharedStaticCtorDecl) Kind() NodeKind          { return KSharedStaticCtorDecl }
func (d *SharedStaticCtorDecl) GetToken() token.Token { return d.Token }

// StaticDtorDecl represents `static ~this() {...}`.
type StaticDtorDecl struct {
	Token token.Token
	Body  NodeID
}

func (*StaticDtorDecl) Kind() NodeKind          { return KStaticDtorDecl }
func (d *StaticDtorDecl) GetToken() token.Token { return d.Token }

// SharedStaticDtorDecl represents `shared static ~this() {...}`.
type SharedStaticDtorDecl struct {
	Token token.Token
	Body  NodeID
}

func (*SharedStaticDtorDecl) Kind() NodeKind          { return KSharedStaticDtorDecl }
func (d *SharedStaticDtorDecl) GetToken() token.Token { return d.Token }

// NewDecl represents a class-level `new(params) {...}` allocator.
type NewDecl struct {
	Token  token.Token
	Params []NodeID
	Body   NodeID
}

func (*NewDecl) Kind() NodeKind          { return KNewDecl }
func (d *NewDecl) GetToken() token.Token { return d.Token }

// InvariantDecl represents `invariant [(]) {...}`.
type InvariantDecl struct {
	Token token.Token
	Body  NodeID
}

func (*InvariantDecl) Kind() NodeKind          { return KInvariantDecl }
func (d *InvariantDecl) GetToken() token.Token { return d.Token }

// UnittestDecl represents `unittest {...}`.
type UnittestDecl struct {
	Token token.Token
	Body  NodeID
}

func (*UnittestDecl) Kind() NodeKind          { return KUnittestDecl }
func (d *UnittestDecl) GetToken() token.Token { return d.Token }

// VarDecl represents one declarator of a (possibly comma-joined)
// variable declaration sharing a base type.
type VarDecl struct {
	Token   token.Token
	Type    NodeID
	Name    *token.Identifier
	Init    NodeID // NilID if uninitialized
}

func (*VarDecl) Kind() NodeKind          { return KVarDecl }
func (d *VarDecl) GetToken() token.Token { return d.Token }

// AliasDecl represents `alias id [(tpl)] = Type|FunctionType|FuncLiteral;`.
type AliasDecl struct {
	Token  token.Token
	Name   *token.Identifier
	Params []NodeID // template parameters on the alias itself, may be empty
	Target NodeID   // KType or an expression node for alias-to-function-literal
}

func (*AliasDecl) Kind() NodeKind          { return KAliasDecl }
func (d *AliasDecl) GetToken() token.Token { return d.Token }

// AliasThisDecl represents `alias id this;`.
type AliasThisDecl struct {
	Token token.Token
	Name  *token.Identifier
}

func (*AliasThisDecl) Kind() NodeKind          { return KAliasThisDecl }
func (d *AliasThisDecl) GetToken() token.Token { return d.Token }

// StorageClassWrapperDecl wraps one or more declarations with a storage
// class set, constructed outside-in as spec.md §4.5 describes: the
// attribute applied last is the outermost wrapper.
type StorageClassWrapperDecl struct {
	Token        token.Token
	StorageClass PrefixAttributes
	Decls        []NodeID
}

func (*StorageClassWrapperDecl) Kind() NodeKind          { return KStorageClassWrapperDecl }
func (d *StorageClassWrapperDecl) GetToken() token.Token { return d.Token }

// LinkageWrapperDecl wraps declarations with an `extern(...)` linkage.
type LinkageWrapperDecl struct {
	Token   token.Token
	Linkage LinkageInfo
	Decls   []NodeID
}

func (*LinkageWrapperDecl) Kind() NodeKind          { return KLinkageWrapperDecl }
func (d *LinkageWrapperDecl) GetToken() token.Token { return d.Token }

// ProtectionWrapperDecl wraps declarations with a protection level.
type ProtectionWrapperDecl struct {
	Token      token.Token
	Protection ProtectionInfo
	Decls      []NodeID
}

func (*ProtectionWrapperDecl) Kind() NodeKind          { return KProtectionWrapperDecl }
func (d *ProtectionWrapperDecl) GetToken() token.Token { return d.Token }

// AlignWrapperDecl wraps declarations with an `align[(expr)]` clause.
type AlignWrapperDecl struct {
	Token token.Token
	Expr  NodeID // NilID for a bare `align` (target default alignment)
	Decls []NodeID
}

func (*AlignWrapperDecl) Kind() NodeKind          { return KAlignWrapperDecl }
func (d *AlignWrapperDecl) GetToken() token.Token { return d.Token }

// DeprecatedWrapperDecl wraps declarations with `deprecated[(msg)]`.
type DeprecatedWrapperDecl struct {
	Token   token.Token
	Message NodeID // NilID for bare `deprecated`
	Decls   []NodeID
}

func (*DeprecatedWrapperDecl) Kind() NodeKind          { return KDeprecatedWrapperDecl }
func (d *DeprecatedWrapperDecl) GetToken() token.Token { return d.Token }

// UDAWrapperDecl wraps declarations with one or more `@uda` attributes.
type UDAWrapperDecl struct {
	Token token.Token
	UDAs  []NodeID
	Decls []NodeID
}

func (*UDAWrapperDecl) Kind() NodeKind          { return KUDAWrapperDecl }
func (d *UDAWrapperDecl) GetToken() token.Token { return d.Token }

// UserAttributeDecl represents module-level UDAs attached before a
// `module` header (spec.md §4.5 "UDAs before module attach as module
// UDAs"), surfaced on the Module handle rather than the declaration
// list.
type UserAttributeDecl struct {
	Token token.Token
	UDAs  []NodeID
}

func (*UserAttributeDecl) Kind() NodeKind          { return KUserAttributeDecl }
func (d *UserAttributeDecl) GetToken() token.Token { return d.Token }

// DeclBlock groups `{ decl decl ... }` — a braced run of declarations
// sharing one attribute prefix, as opposed to one that applies to every
// following top-level DeclDef until the next attribute change.
type DeclBlock struct {
	Token token.Token
	Decls []NodeID
}

func (*DeclBlock) Kind() NodeKind          { return KDeclBlock }
func (d *DeclBlock) GetToken() token.Token { return d.Token }

// ConditionalDecl represents a `debug`/`version` conditional compilation
// declaration: `debug { A } else { B }` or `version(X) A; else B;`.
type ConditionalDecl struct {
	Token     token.Token
	IsDebug   bool // false means version
	Ident     *token.Identifier // debug(ident) / version(ident), nil if bare
	Level     NodeID            // debug(1) / version(1) numeric level, NilID if absent
	Then      []NodeID
	Else      []NodeID
}

func (*ConditionalDecl) Kind() NodeKind          { return KConditionalDecl }
func (d *ConditionalDecl) GetToken() token.Token { return d.Token }

// EmptyDecl represents a bare `;` at declaration scope.
type EmptyDecl struct {
	Token token.Token
}

func (*EmptyDecl) Kind() NodeKind          { return KEmptyDecl }
func (d *EmptyDecl) GetToken() token.Token { return d.Token }

// ErrorDecl is the sentinel every declaration production falls back to
// on an unrecoverable local failure, per spec.md §4.6 "never a null
// into a required slot".
type ErrorDecl struct {
	Token token.Token
}

func (*ErrorDecl) Kind() NodeKind          { return KError }
func (d *ErrorDecl) GetToken() token.Token { return d.Token }
