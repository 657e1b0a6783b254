package ast

import (
	"math/big"

	"github.com/mcgru/dparse/internal/token"
)

// IdentifierExpr is a bare name reference.
type IdentifierExpr struct {
	Token token.Token
	Name  *token.Identifier
}

func (*IdentifierExpr) Kind() NodeKind          { return KIdentifierExpr }
func (d *IdentifierExpr) GetToken() token.Token { return d.Token }

// ScopeExpr represents `ident!(args)` / `ident!arg`, a template
// instantiation used in expression position.
type ScopeExpr struct {
	Token token.Token
	Name  *token.Identifier
	Args  []NodeID
}

func (*ScopeExpr) Kind() NodeKind          { return KScopeExpr }
func (d *ScopeExpr) GetToken() token.Token { return d.Token }

// BinaryExpr is a binary operator application.
type BinaryExpr struct {
	Token    token.Token
	Operator token.Kind
	Left     NodeID
	Right    NodeID
}

func (*BinaryExpr) Kind() NodeKind          { return KBinaryExpr }
func (d *BinaryExpr) GetToken() token.Token { return d.Token }

// UnaryExpr is a prefix operator application: `-e`, `!e`, `~e`, `*e`,
// `&e`, `++e`, `--e`, or the `!is`/`!in` reclassified forms.
type UnaryExpr struct {
	Token    token.Token
	Operator token.Kind
	Operand  NodeID
}

func (*UnaryExpr) Kind() NodeKind          { return KUnaryExpr }
func (d *UnaryExpr) GetToken() token.Token { return d.Token }

// PostfixExpr is `e++` / `e--`.
type PostfixExpr struct {
	Token    token.Token
	Operator token.Kind
	Operand  NodeID
}

func (*PostfixExpr) Kind() NodeKind          { return KPostfixExpr }
func (d *PostfixExpr) GetToken() token.Token { return d.Token }

// AssignExpr is `lhs op= rhs` for every assignment operator including
// plain `=`; right-associative.
type AssignExpr struct {
	Token    token.Token
	Operator token.Kind
	Target   NodeID
	Value    NodeID
}

func (*AssignExpr) Kind() NodeKind          { return KAssignExpr }
func (d *AssignExpr) GetToken() token.Token { return d.Token }

// ConditionalExpr is `cond ? then : else`.
type ConditionalExpr struct {
	Token token.Token
	Cond  NodeID
	Then  NodeID
	Else  NodeID
}

func (*ConditionalExpr) Kind() NodeKind          { return KConditionalExpr }
func (d *ConditionalExpr) GetToken() token.Token { return d.Token }

// Argument is one call/index argument, optionally named (`name: expr`).
type Argument struct {
	Name   *token.Identifier // nil if positional
	Value  NodeID
	Spread bool // `...expr`
}

// CallExpr is `callee(args)`.
type CallExpr struct {
	Token  token.Token
	Callee NodeID
	Args   []Argument
}

func (*CallExpr) Kind() NodeKind          { return KCallExpr }
func (d *CallExpr) GetToken() token.Token { return d.Token }

// IndexExpr is `e[i]` (possibly multiple comma-separated indices for a
// multi-dimensional array).
type IndexExpr struct {
	Token   token.Token
	Operand NodeID
	Indices []NodeID
}

func (*IndexExpr) Kind() NodeKind          { return KIndexExpr }
func (d *IndexExpr) GetToken() token.Token { return d.Token }

// SliceExpr is `e[lo..hi]` or the whole-slice `e[]`.
type SliceExpr struct {
	Token   token.Token
	Operand NodeID
	Low     NodeID // NilID for `e[]` or `e[..hi]`
	High    NodeID // NilID for `e[lo..]`
}

func (*SliceExpr) Kind() NodeKind          { return KSliceExpr }
func (d *SliceExpr) GetToken() token.Token { return d.Token }

// MemberExpr is `e.id`, `e.id!(args)`, or the optional-chaining form.
type MemberExpr struct {
	Token    token.Token
	Operand  NodeID
	Name     *token.Identifier
	TplArgs  []NodeID // non-nil only for `.id!(args)`
	Optional bool     // `?.` form
}

func (*MemberExpr) Kind() NodeKind          { return KMemberExpr }
func (d *MemberExpr) GetToken() token.Token { return d.Token }

// CastForm distinguishes `cast(T)e` from the qualifier-only
// `cast(const)e` form, which updates the MOD bits without changing the
// target type.
type CastForm int

const (
	CastToType CastForm = iota
	CastQualifierOnly
)

// CastExpr is `cast(T)e` or `cast(const|immutable|shared|inout)e`.
type CastExpr struct {
	Token     token.Token
	Form      CastForm
	Type      NodeID     // set for CastToType
	Qualifier token.Kind // set for CastQualifierOnly
	Operand   NodeID
}

func (*CastExpr) Kind() NodeKind          { return KCastExpr }
func (d *CastExpr) GetToken() token.Token { return d.Token }

// NewExpr is `new Type(args)` or `new Type[len]`.
type NewExpr struct {
	Token     token.Token
	Type      NodeID
	Args      []Argument
	ArrayLen  NodeID // NilID unless this is `new T[len]`
}

func (*NewExpr) Kind() NodeKind          { return KNewExpr }
func (d *NewExpr) GetToken() token.Token { return d.Token }

// TypeidExpr is `typeid(Type|Expr)`.
type TypeidExpr struct {
	Token token.Token
	Type  NodeID // set if the argument parsed as a type
	Expr  NodeID // set if the argument parsed as an expression
}

func (*TypeidExpr) Kind() NodeKind          { return KTypeidExpr }
func (d *TypeidExpr) GetToken() token.Token { return d.Token }

// TraitsExpr is `__traits(id, args...)`.
type TraitsExpr struct {
	Token token.Token
	Name  *token.Identifier
	Args  []NodeID
}

func (*TraitsExpr) Kind() NodeKind          { return KTraitsExpr }
func (d *TraitsExpr) GetToken() token.Token { return d.Token }

// IsSpecKind is the `(: | ==) Spec` half of an is-expression.
type IsSpecKind int

const (
	IsSpecNone IsSpecKind = iota
	IsSpecColon           // `is(T : Spec)`
	IsSpecEquals          // `is(T == Spec)`
)

// IsExpr is `is(T [id] [(: | ==) Spec] [, TemplateParams])`, parsed by
// the state machine spec.md §4.4 describes (start, seen-type,
// seen-colon-or-eq, seen-spec-keyword).
type IsExpr struct {
	Token       token.Token
	Type        NodeID
	Ident       *token.Identifier // optional bound name, nil if absent
	SpecKind    IsSpecKind
	SpecKeyword token.Kind // set when Spec is one of the reserved spec keywords, else ILLEGAL
	SpecType    NodeID     // set when Spec is a type, NilID otherwise
	TemplateParams []NodeID
}

func (*IsExpr) Kind() NodeKind          { return KIsExpr }
func (d *IsExpr) GetToken() token.Token { return d.Token }

// AssertExpr is `assert(cond [, msg])`.
type AssertExpr struct {
	Token   token.Token
	Cond    NodeID
	Message NodeID // NilID if absent
}

func (*AssertExpr) Kind() NodeKind          { return KAssertExpr }
func (d *AssertExpr) GetToken() token.Token { return d.Token }

// MixinExpr is `mixin(args)` used in expression position. Resolved
// holds the re-parsed expression when the sole argument is a plain
// string literal (the only case this syntax-only frontend can splice
// without evaluating a compile-time expression first); NilID
// otherwise.
type MixinExpr struct {
	Token    token.Token
	Args     []NodeID
	Resolved NodeID
}

func (*MixinExpr) Kind() NodeKind          { return KMixinExpr }
func (d *MixinExpr) GetToken() token.Token { return d.Token }

// ImportExpr is `import(e)` (runtime module-path import expression).
type ImportExpr struct {
	Token token.Token
	Path  NodeID
}

func (*ImportExpr) Kind() NodeKind          { return KImportExpr }
func (d *ImportExpr) GetToken() token.Token { return d.Token }

// ArrayLiteralExpr is `[elements]`, covering both plain array literals
// and the associative-array form when every element is a Pair.
type ArrayLiteralExpr struct {
	Token    token.Token
	Elements []NodeID
}

func (*ArrayLiteralExpr) Kind() NodeKind          { return KArrayLiteralExpr }
func (d *ArrayLiteralExpr) GetToken() token.Token { return d.Token }

// AssocEntry is one `key: value` pair in an associative-array literal.
type AssocEntry struct {
	Key   NodeID
	Value NodeID
}

// AssocArrayLiteralExpr is `[key: value, ...]`.
type AssocArrayLiteralExpr struct {
	Token   token.Token
	Entries []AssocEntry
}

func (*AssocArrayLiteralExpr) Kind() NodeKind          { return KAssocArrayLiteralExpr }
func (d *AssocArrayLiteralExpr) GetToken() token.Token { return d.Token }

// FunctionLiteralKind distinguishes the several lambda/function-literal
// spellings spec.md §4.4 lists.
type FunctionLiteralKind int

const (
	FLBlock        FunctionLiteralKind = iota // `function/delegate? (params) {...}` or bare `{...}`
	FLExprArrow                               // `ref? (params) => e`
	FLIdentArrow                              // `ident => e`
)

// FunctionLiteralExpr is any of the lambda forms.
type FunctionLiteralExpr struct {
	Token      token.Token
	LitKind    FunctionLiteralKind
	IsFunction bool // `function` keyword explicitly used (vs `delegate`/inferred)
	IsRef      bool
	ReturnType NodeID // NilID when inferred/absent
	Params     []NodeID
	Body       NodeID // KBlockStmt for FLBlock
	Expr       NodeID // expression body for FLExprArrow / FLIdentArrow
}

func (*FunctionLiteralExpr) Kind() NodeKind          { return KFunctionLiteralExpr }
func (d *FunctionLiteralExpr) GetToken() token.Token { return d.Token }

// ThisExpr / SuperExpr / DollarExpr are the bare keyword primaries.
type ThisExpr struct{ Token token.Token }

func (*ThisExpr) Kind() NodeKind          { return KThisExpr }
func (d *ThisExpr) GetToken() token.Token { return d.Token }

type SuperExpr struct{ Token token.Token }

func (*SuperExpr) Kind() NodeKind          { return KSuperExpr }
func (d *SuperExpr) GetToken() token.Token { return d.Token }

type DollarExpr struct{ Token token.Token }

func (*DollarExpr) Kind() NodeKind          { return KDollarExpr }
func (d *DollarExpr) GetToken() token.Token { return d.Token }

// TypeExpr wraps a Type used in expression position: a basic type
// keyword followed by `(` (constructor call) or `.id` (property
// access), e.g. `int.max`, `float(x)`.
type TypeExpr struct {
	Token token.Token
	Type  NodeID
}

func (*TypeExpr) Kind() NodeKind          { return KTypeExpr }
func (d *TypeExpr) GetToken() token.Token { return d.Token }

// IntLiteralExpr covers int/uint/long/ulong literals (BigInt handled by
// falling back to *big.Int when the literal overflows int64, mirroring
// the teacher's math/big-backed BigIntLiteral approach).
type IntLiteralExpr struct {
	Token    token.Token
	Value    int64
	Unsigned bool
	Big      *big.Int // non-nil only when the literal does not fit int64
}

func (*IntLiteralExpr) Kind() NodeKind          { return KIntLiteralExpr }
func (d *IntLiteralExpr) GetToken() token.Token { return d.Token }

// FloatLiteralExpr covers float/double/real literals.
type FloatLiteralExpr struct {
	Token token.Token
	Value float64
}

func (*FloatLiteralExpr) Kind() NodeKind          { return KFloatLiteralExpr }
func (d *FloatLiteralExpr) GetToken() token.Token { return d.Token }

// CharLiteralExpr is a single-quoted character literal.
type CharLiteralExpr struct {
	Token token.Token
	Value rune
}

func (*CharLiteralExpr) Kind() NodeKind          { return KCharLiteralExpr }
func (d *CharLiteralExpr) GetToken() token.Token { return d.Token }

// StringLiteralExpr is a (possibly postfix-qualified) string literal.
// Adjacent string literals are concatenated into Parts during parsing,
// emitting the deprecation spec.md §4.4 names if postfix characters
// mismatch.
type StringLiteralExpr struct {
	Token   token.Token
	Parts   []string
	Postfix byte // 'c', 'w', 'd', or 0
}

func (*StringLiteralExpr) Kind() NodeKind          { return KStringLiteralExpr }
func (d *StringLiteralExpr) GetToken() token.Token { return d.Token }

// BoolLiteralExpr is `true`/`false`.
type BoolLiteralExpr struct {
	Token token.Token
	Value bool
}

func (*BoolLiteralExpr) Kind() NodeKind          { return KBoolLiteralExpr }
func (d *BoolLiteralExpr) GetToken() token.Token { return d.Token }

// NullLiteralExpr is `null`.
type NullLiteralExpr struct{ Token token.Token }

func (*NullLiteralExpr) Kind() NodeKind          { return KNullLiteralExpr }
func (d *NullLiteralExpr) GetToken() token.Token { return d.Token }

// SpecialTokenExpr covers `__FILE__`, `__FILE_FULL_PATH__`, `__LINE__`,
// `__MODULE__`, `__FUNCTION__`, `__PRETTY_FUNCTION__` — resolved at a
// later phase, the parser only records which one appeared.
type SpecialTokenExpr struct {
	Token token.Token
	Which token.Kind
}

func (*SpecialTokenExpr) Kind() NodeKind          { return KSpecialTokenExpr }
func (d *SpecialTokenExpr) GetToken() token.Token { return d.Token }

// ErrorExpr is the sentinel expression productions fall back to.
type ErrorExpr struct{ Token token.Token }

func (*ErrorExpr) Kind() NodeKind          { return KError }
func (d *ErrorExpr) GetToken() token.Token { return d.Token }
