package ast

import "github.com/mcgru/dparse/internal/token"

// BasicType is one of the predefined basic type keywords (`int`,
// `float`, `void`, ...).
type BasicType struct {
	Token token.Token
	Kind_ token.Kind
}

func (*BasicType) Kind() NodeKind          { return KBasicType }
func (d *BasicType) GetToken() token.Token { return d.Token }

// IdentifierType is a (possibly dotted, possibly template-applied) named
// type: `a.b!c.d`.
type IdentifierType struct {
	Token    token.Token
	Packages []*token.Identifier // qualifying prefix, may be empty
	Name     *token.Identifier
	Args     []NodeID // template arguments, may be empty
}

func (*IdentifierType) Kind() NodeKind          { return KIdentifierType }
func (d *IdentifierType) GetToken() token.Token { return d.Token }

// PointerType is `T*`.
type PointerType struct {
	Token token.Token
	Elem  NodeID
}

func (*PointerType) Kind() NodeKind          { return KPointerType }
func (d *PointerType) GetToken() token.Token { return d.Token }

// StaticArrayType is `T[N]`.
type StaticArrayType struct {
	Token  token.Token
	Elem   NodeID
	Length NodeID
}

func (*StaticArrayType) Kind() NodeKind          { return KStaticArrayType }
func (d *StaticArrayType) GetToken() token.Token { return d.Token }

// DynamicArrayType is `T[]`.
type DynamicArrayType struct {
	Token token.Token
	Elem  NodeID
}

func (*DynamicArrayType) Kind() NodeKind          { return KDynamicArrayType }
func (d *DynamicArrayType) GetToken() token.Token { return d.Token }

// AssociativeArrayType is `T[K]` where K is itself a type.
type AssociativeArrayType struct {
	Token token.Token
	Elem  NodeID
	Key   NodeID
}

func (*AssociativeArrayType) Kind() NodeKind          { return KAssociativeArrayType }
func (d *AssociativeArrayType) GetToken() token.Token { return d.Token }

// FunctionType is `RetType function(Params)`.
type FunctionType struct {
	Token      token.Token
	ReturnType NodeID
	Params     []NodeID
}

func (*FunctionType) Kind() NodeKind          { return KFunctionType }
func (d *FunctionType) GetToken() token.Token { return d.Token }

// DelegateType is `RetType delegate(Params)`.
type DelegateType struct {
	Token      token.Token
	ReturnType NodeID
	Params     []NodeID
}

func (*DelegateType) Kind() NodeKind          { return KDelegateType }
func (d *DelegateType) GetToken() token.Token { return d.Token }

// VectorType is `__vector(T[N])`.
type VectorType struct {
	Token token.Token
	Elem  NodeID
}

func (*VectorType) Kind() NodeKind          { return KVectorType }
func (d *VectorType) GetToken() token.Token { return d.Token }

// TypeofType is `typeof(expr)` or `typeof(return)` used as a type.
type TypeofType struct {
	Token      token.Token
	Expr       NodeID // NilID for `typeof(return)`
	IsReturn   bool
}

func (*TypeofType) Kind() NodeKind          { return KTypeofType }
func (d *TypeofType) GetToken() token.Token { return d.Token }

// TypeConstructorType is `const(T)` / `immutable(T)` / `shared(T)` /
// `inout(T)` — a type-constructor application, not a storage class,
// per spec.md's boundary behaviour note.
type TypeConstructorType struct {
	Token     token.Token
	Qualifier token.Kind // one of CONST, IMMUTABLE, SHARED, INOUT
	Inner     NodeID
}

func (*TypeConstructorType) Kind() NodeKind          { return KTypeConstructorType }
func (d *TypeConstructorType) GetToken() token.Token { return d.Token }

// TraitsType is `__traits(getMember, ...)` used in type position.
type TraitsType struct {
	Token token.Token
	Name  *token.Identifier
	Args  []NodeID
}

func (*TraitsType) Kind() NodeKind          { return KTraitsType }
func (d *TraitsType) GetToken() token.Token { return d.Token }

// ErrorType is the sentinel type productions fall back to: `Type.terror`
// in spec.md's vocabulary.
type ErrorType struct{ Token token.Token }

func (*ErrorType) Kind() NodeKind          { return KError }
func (d *ErrorType) GetToken() token.Token { return d.Token }
