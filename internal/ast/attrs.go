package ast

import (
	"github.com/mcgru/dparse/internal/config"
	"github.com/mcgru/dparse/internal/token"
)

// Linkage identifies a linkage clause `extern(...)`.
type Linkage int

const (
	LinkageDefault Linkage = iota
	LinkageD
	LinkageC
	LinkageCpp
	LinkageWindows
	LinkagePascal
	LinkageObjC
	LinkageSystem
)

// CppMangleStyle qualifies extern(C++, class|struct|default).
type CppMangleStyle int

const (
	CppMangleDefault CppMangleStyle = iota
	CppMangleClass
	CppMangleStruct
)

// LinkageInfo carries a full linkage clause, including the optional
// C++-mangling style and an optional namespace list.
type LinkageInfo struct {
	Kind       Linkage
	CppMangle  CppMangleStyle
	Namespaces []*token.Identifier
	// NamespaceExprs supports extern(C++, someExpr) where the namespace
	// is itself a (template) expression rather than a plain identifier
	// list.
	NamespaceExprs []NodeID
}

// Protection is a visibility level.
type Protection int

const (
	ProtUndefined Protection = iota
	ProtPrivate
	ProtPackage
	ProtProtected
	ProtPublic
	ProtExport
)

// ProtectionInfo carries a protection level plus the optional qualified
// path of `package(a.b)`.
type ProtectionInfo struct {
	Level Protection
	Path  []*token.Identifier
}

// PrefixAttributes is the scratch bundle threaded while parsing a run of
// attributed declarations. Per SPEC_FULL §9 this is passed BY VALUE with
// the residual returned to the caller — there is no shared mutable
// attribute field anywhere on Parser.
type PrefixAttributes struct {
	StorageClass       config.Set
	HasStorageClass    bool
	HasDeprecated      bool
	DeprecatedMessage  NodeID // expression, or NilID
	Linkage            LinkageInfo
	HasLinkage         bool
	Protection         ProtectionInfo
	HasProtection      bool
	HasAlignment       bool
	AlignmentExpr      NodeID // NilID means "align" with no explicit expr
	UDAs               []NodeID
	LeadingDocComment  string
}

// AppendStorageClass merges sc into attrs.StorageClass, mirroring the
// documented add-then-detect-conflict ordering quirk of
// config.Set.Append: the returned bundle always carries the union, even
// when conflict is true.
func (attrs PrefixAttributes) AppendStorageClass(sc config.StorageClass) (result PrefixAttributes, conflictWith config.StorageClass, conflict bool) {
	merged, existing, hasConflict := attrs.StorageClass.Append(sc)
	attrs.StorageClass = merged
	attrs.HasStorageClass = true
	return attrs, existing, hasConflict
}

// Empty reports whether no attribute has been recorded yet.
func (attrs PrefixAttributes) Empty() bool {
	return !attrs.HasStorageClass && !attrs.HasLinkage && !attrs.HasProtection &&
		!attrs.HasAlignment && len(attrs.UDAs) == 0 && !attrs.HasDeprecated
}
