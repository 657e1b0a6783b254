package ast

import (
	"github.com/mcgru/dparse/internal/config"
	"github.com/mcgru/dparse/internal/token"
)

// BlockStmt is a `{ ... }` compound statement. Scope pushes a
// "looking-for-else" context on entry and restores it on exit, per
// spec.md §3's invariant.
type BlockStmt struct {
	Token token.Token
	Stmts []NodeID
}

func (*BlockStmt) Kind() NodeKind          { return KBlockStmt }
func (d *BlockStmt) GetToken() token.Token { return d.Token }

// ExprStmt is a bare expression used as a statement.
type ExprStmt struct {
	Token token.Token
	Expr  NodeID
}

func (*ExprStmt) Kind() NodeKind          { return KExprStmt }
func (d *ExprStmt) GetToken() token.Token { return d.Token }

// DeclStmt wraps a declaration that was recognised in statement
// position (the `must_if_d_style` declarator probe's outcome).
type DeclStmt struct {
	Token token.Token
	Decl  NodeID
}

func (*DeclStmt) Kind() NodeKind          { return KDeclStmt }
func (d *DeclStmt) GetToken() token.Token { return d.Token }

// IfStmt represents `if ([storage-class] [Type] id = expr | expr)
// then [else else]`, covering both the plain-condition and the
// `if (auto p = f())` pattern-binding forms.
type IfStmt struct {
	Token       token.Token
	CondStorage config.Set
	CondType    NodeID            // NilID unless a typed condition binding
	CondName    *token.Identifier // non-nil for the binding form
	Cond        NodeID
	Then        NodeID
	Else        NodeID // NilID if absent
}

func (*IfStmt) Kind() NodeKind          { return KIfStmt }
func (d *IfStmt) GetToken() token.Token { return d.Token }

// WhileStmt represents `while (cond) body`.
type WhileStmt struct {
	Token token.Token
	Cond  NodeID
	Body  NodeID
}

func (*WhileStmt) Kind() NodeKind          { return KWhileStmt }
func (d *WhileStmt) GetToken() token.Token { return d.Token }

// DoStmt represents `do body while (cond);`.
type DoStmt struct {
	Token token.Token
	Body  NodeID
	Cond  NodeID
}

func (*DoStmt) Kind() NodeKind          { return KDoStmt }
func (d *DoStmt) GetToken() token.Token { return d.Token }

// ForStmt represents `for (init; cond; incr) body`.
type ForStmt struct {
	Token token.Token
	Init  NodeID // NilID if omitted
	Cond  NodeID // NilID if omitted
	Incr  NodeID // NilID if omitted
	Body  NodeID
}

func (*ForStmt) Kind() NodeKind          { return KForStmt }
func (d *ForStmt) GetToken() token.Token { return d.Token }

// ForeachParameter is one parameter of a foreach parameter list.
type ForeachParameter struct {
	Token        token.Token
	StorageClass ParamStorageClass // ref, const, etc.
	IsAlias      bool
	IsEnum       bool
	Type         NodeID // NilID when inferred
	Name         *token.Identifier
}

func (*ForeachParameter) Kind() NodeKind          { return KForeachParameter }
func (d *ForeachParameter) GetToken() token.Token { return d.Token }

// ForeachStmt covers all four foreach variants (is_static × is_decl),
// parameterised by the two flags on the struct rather than by separate
// node types, matching the shared-core design spec.md §4.5 prescribes.
type ForeachStmt struct {
	Token      token.Token
	Reverse    bool
	IsStatic   bool
	Params     []NodeID // KForeachParameter
	Aggregate  NodeID
	UpperBound NodeID // NilID unless this is the range form `; upr)`
	Body       NodeID // KBlockStmt for a statement variant
	Decls      []NodeID // populated instead of Body for `static foreach` declaration variant
}

func (*ForeachStmt) Kind() NodeKind          { return KForeachStmt }
func (d *ForeachStmt) GetToken() token.Token { return d.Token }

// CaseLabel is one `case expr` or `case lo: .. case hi:` label.
type CaseLabel struct {
	Low  NodeID
	High NodeID // NilID unless this is a case-range label
}

// SwitchStmt represents `[final] switch (cond) { cases }`.
type SwitchStmt struct {
	Token token.Token
	Final bool
	Cond  NodeID
	Body  NodeID // KBlockStmt containing KCaseStmt/KDefaultStmt/other statements
}

func (*SwitchStmt) Kind() NodeKind          { return KSwitchStmt }
func (d *SwitchStmt) GetToken() token.Token { return d.Token }

// CaseStmt represents a `case label(s):` marker within a switch body.
type CaseStmt struct {
	Token  token.Token
	Labels []CaseLabel
}

func (*CaseStmt) Kind() NodeKind          { return KCaseStmt }
func (d *CaseStmt) GetToken() token.Token { return d.Token }

// DefaultStmt represents `default:`.
type DefaultStmt struct {
	Token token.Token
}

func (*DefaultStmt) Kind() NodeKind          { return KDefaultStmt }
func (d *DefaultStmt) GetToken() token.Token { return d.Token }

// BreakStmt represents `break [id];`.
type BreakStmt struct {
	Token token.Token
	Label *token.Identifier
}

func (*BreakStmt) Kind() NodeKind          { return KBreakStmt }
func (d *BreakStmt) GetToken() token.Token { return d.Token }

// ContinueStmt represents `continue [id];`.
type ContinueStmt struct {
	Token token.Token
	Label *token.Identifier
}

func (*ContinueStmt) Kind() NodeKind          { return KContinueStmt }
func (d *ContinueStmt) GetToken() token.Token { return d.Token }

// GotoStmt represents `goto default;`, `goto case [expr];`, or
// `goto id;`.
type GotoStmt struct {
	Token      token.Token
	IsDefault  bool
	IsCase     bool
	CaseExpr   NodeID // NilID for bare `goto case;`
	Label      *token.Identifier
}

func (*GotoStmt) Kind() NodeKind          { return KGotoStmt }
func (d *GotoStmt) GetToken() token.Token { return d.Token }

// ReturnStmt represents `return [expr];`.
type ReturnStmt struct {
	Token token.Token
	Value NodeID // NilID for bare `return;`
}

func (*ReturnStmt) Kind() NodeKind          { return KReturnStmt }
func (d *ReturnStmt) GetToken() token.Token { return d.Token }

// LabeledStmt represents `ident: stmt`.
type LabeledStmt struct {
	Token token.Token
	Label *token.Identifier
	Stmt  NodeID
}

func (*LabeledStmt) Kind() NodeKind          { return KLabeledStmt }
func (d *LabeledStmt) GetToken() token.Token { return d.Token }

// ScopeGuardKind distinguishes scope(exit|failure|success).
type ScopeGuardKind int

const (
	ScopeExit ScopeGuardKind = iota
	ScopeFailure
	ScopeSuccess
)

// ScopeGuardStmt represents `scope(exit|failure|success) stmt`.
type ScopeGuardStmt struct {
	Token token.Token
	Which ScopeGuardKind
	Body  NodeID
}

func (*ScopeGuardStmt) Kind() NodeKind          { return KScopeGuardStmt }
func (d *ScopeGuardStmt) GetToken() token.Token { return d.Token }

// CatchClause is one `catch (T [id]) body` clause of a try statement.
type CatchClause struct {
	Token token.Token
	Type  NodeID // NilID for a bare `catch body` clause
	Name  *token.Identifier
	Body  NodeID
}

func (*CatchClause) Kind() NodeKind          { return KCatchClause }
func (d *CatchClause) GetToken() token.Token { return d.Token }

// TryStmt represents `try body [catch...] [finally body]`.
type TryStmt struct {
	Token     token.Token
	Body      NodeID
	Catches   []NodeID // KCatchClause
	Finally   NodeID   // NilID if absent
}

func (*TryStmt) Kind() NodeKind          { return KTryStmt }
func (d *TryStmt) GetToken() token.Token { return d.Token }

// ThrowStmt represents `throw expr;`.
type ThrowStmt struct {
	Token token.Token
	Value NodeID
}

func (*ThrowStmt) Kind() NodeKind          { return KThrowStmt }
func (d *ThrowStmt) GetToken() token.Token { return d.Token }

// WithStmt represents `with(expr) body`.
type WithStmt struct {
	Token token.Token
	Expr  NodeID
	Body  NodeID
}

func (*WithStmt) Kind() NodeKind          { return KWithStmt }
func (d *WithStmt) GetToken() token.Token { return d.Token }

// SynchronizedStmt represents `synchronized [(expr)] body`.
type SynchronizedStmt struct {
	Token token.Token
	Lock  NodeID // NilID for bare `synchronized`
	Body  NodeID
}

func (*SynchronizedStmt) Kind() NodeKind          { return KSynchronizedStmt }
func (d *SynchronizedStmt) GetToken() token.Token { return d.Token }

// AsmInstruction is one `;`-separated raw instruction line inside an
// asm block; the parser does not interpret assembly syntax, it only
// tokenises instructions while tracking nested braces.
type AsmInstruction struct {
	Tokens []token.Token
}

// AsmStmt represents `asm { instructions }`.
type AsmStmt struct {
	Token        token.Token
	Instructions []AsmInstruction
}

func (*AsmStmt) Kind() NodeKind          { return KAsmStmt }
func (d *AsmStmt) GetToken() token.Token { return d.Token }

// PragmaStmt represents `pragma(id[, args]) stmt|;`.
type PragmaStmt struct {
	Token token.Token
	Name  *token.Identifier
	Args  []NodeID
	Body  NodeID // NilID for `pragma(id, args);`
}

func (*PragmaStmt) Kind() NodeKind          { return KPragmaStmt }
func (d *PragmaStmt) GetToken() token.Token { return d.Token }

// StaticIfStmt represents `static if (cond) then [else else]` at
// statement scope.
type StaticIfStmt struct {
	Token token.Token
	Cond  NodeID
	Then  NodeID
	Else  NodeID // NilID if absent
}

func (*StaticIfStmt) Kind() NodeKind          { return KStaticIfStmt }
func (d *StaticIfStmt) GetToken() token.Token { return d.Token }

// StaticAssertStmt represents `static assert(cond [, msg]);`.
type StaticAssertStmt struct {
	Token   token.Token
	Cond    NodeID
	Message NodeID // NilID if absent
}

func (*StaticAssertStmt) Kind() NodeKind          { return KStaticAssertStmt }
func (d *StaticAssertStmt) GetToken() token.Token { return d.Token }

// StaticForeachStmt is the statement-scope counterpart of
// ForeachStmt's IsStatic=true variant, kept as a distinct node so
// `static foreach` at statement scope (which parses a following
// *statement*, not a block-or-decl-list) is unambiguous.
type StaticForeachStmt struct {
	Token      token.Token
	Reverse    bool
	Params     []NodeID
	Aggregate  NodeID
	UpperBound NodeID
	Body       NodeID
}

func (*StaticForeachStmt) Kind() NodeKind          { return KStaticForeachStmt }
func (d *StaticForeachStmt) GetToken() token.Token { return d.Token }

// ConditionalStmt represents `debug`/`version` conditional compilation
// at statement scope.
type ConditionalStmt struct {
	Token   token.Token
	IsDebug bool
	Ident   *token.Identifier
	Level   NodeID
	Then    NodeID
	Else    NodeID
}

func (*ConditionalStmt) Kind() NodeKind          { return KConditionalStmt }
func (d *ConditionalStmt) GetToken() token.Token { return d.Token }

// EmptyStmt represents a bare `;`.
type EmptyStmt struct {
	Token token.Token
}

func (*EmptyStmt) Kind() NodeKind          { return KEmptyStmt }
func (d *EmptyStmt) GetToken() token.Token { return d.Token }

// ErrorStmt is the sentinel statement productions fall back to on an
// unrecoverable local failure.
type ErrorStmt struct {
	Token token.Token
}

func (*ErrorStmt) Kind() NodeKind          { return KError }
func (d *ErrorStmt) GetToken() token.Token { return d.Token }
