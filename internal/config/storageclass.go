package config

import "github.com/mcgru/dparse/internal/token"

// StorageClass is a single bit in a StorageClassSet.
type StorageClass uint64

const (
	SCConst StorageClass = 1 << iota
	SCImmutable
	SCShared
	SCInout
	SCStatic
	SCFinal
	SCAuto
	SCScope
	SCOverride
	SCAbstract
	SCSynchronized
	SCDeprecated
	SCNothrow
	SCPure
	SCRef
	SCGshared
	SCManifest
	SCReturn
	SCIn
	SCOut
	SCLazy
	SCAlias
	SCDisable
	SCProperty
	SCNogc
	SCSafe
	SCTrusted
	SCSystem
	SCLive
	SCFuture
	SCTls // implicit third member of the gshared/shared exclusive group
)

// KindToStorageClass maps the storage-class keyword token kinds to their
// bit. Tokens not present are not storage classes.
var KindToStorageClass = map[token.Kind]StorageClass{
	token.CONST:         SCConst,
	token.IMMUTABLE:     SCImmutable,
	token.SHARED:        SCShared,
	token.INOUT:         SCInout,
	token.STATIC:        SCStatic,
	token.FINAL:         SCFinal,
	token.AUTO:          SCAuto,
	token.SCOPE:         SCScope,
	token.OVERRIDE:      SCOverride,
	token.ABSTRACT:      SCAbstract,
	token.SYNCHRONIZED:  SCSynchronized,
	token.DEPRECATED:    SCDeprecated,
	token.NOTHROW:       SCNothrow,
	token.PURE:          SCPure,
	token.REF:           SCRef,
	token.GSHARED:       SCGshared,
	token.MANIFEST:      SCManifest,
	token.RETURN_ATTR:   SCReturn,
	token.IN:            SCIn,
	token.OUT:           SCOut,
	token.LAZY:          SCLazy,
	token.ALIAS:         SCAlias,
	token.DISABLE:       SCDisable,
	token.PROPERTY:      SCProperty,
	token.NOGC:          SCNogc,
	token.SAFE:          SCSafe,
	token.TRUSTED:       SCTrusted,
	token.SYSTEM:        SCSystem,
	token.LIVE:          SCLive,
	token.FUTURE:        SCFuture,
}

// ExclusiveGroups lists the closed sets spec.md §3 requires to collapse
// to at most one member: {const, immutable, manifest}, {gshared, shared,
// tls}, and the @safe/@trusted/@system/@live safety group.
var ExclusiveGroups = []StorageClass{
	SCConst | SCImmutable | SCManifest,
	SCGshared | SCShared | SCTls,
	SCSafe | SCTrusted | SCSystem | SCLive,
}

// LegacyConflictPairs captures the one cross-group conflict spec.md §3
// calls out separately: `in` combined with either `const` or `scope`.
var LegacyConflictPairs = [][2]StorageClass{
	{SCIn, SCConst},
	{SCIn, SCScope},
}

// Set is a StorageClassSet: a bitset over the closed flag space above.
type Set StorageClass

// Has reports whether sc is present in s.
func (s Set) Has(sc StorageClass) bool { return StorageClass(s)&sc != 0 }

// Append adds sc to s and reports whether doing so created a conflict
// within any exclusive group or legacy pair.
//
// This mirrors the teacher's appendStorageClass ordering quirk
// documented in spec.md §9: the bit is ORed into the set BEFORE the
// conflict check runs, so the returned set is the union even when a
// conflict is reported — callers must not assume the returned Set is
// conflict-free.
func (s Set) Append(sc StorageClass) (result Set, conflictWith StorageClass, conflict bool) {
	merged := StorageClass(s) | sc
	for _, group := range ExclusiveGroups {
		if group&sc == 0 {
			continue
		}
		existing := StorageClass(s) & group
		if existing != 0 && existing != sc {
			return Set(merged), existing, true
		}
	}
	for _, pair := range LegacyConflictPairs {
		a, b := pair[0], pair[1]
		if sc == a && StorageClass(s)&b != 0 {
			return Set(merged), b, true
		}
		if sc == b && StorageClass(s)&a != 0 {
			return Set(merged), a, true
		}
	}
	return Set(merged), 0, false
}
