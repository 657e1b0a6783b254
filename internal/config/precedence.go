// Package config centralizes the parser's well-known tables: operator
// precedence, storage-class exclusive groups, well-known identifiers,
// and compile-time behavior flags — the single-source-of-truth idiom
// the teacher uses for its operator table, generalized to the full
// 17-level precedence ladder this grammar requires.
package config

import "github.com/mcgru/dparse/internal/token"

// Associativity of a binary operator.
type Associativity int

const (
	LeftAssoc Associativity = iota
	RightAssoc
)

// Precedence levels, lowest to highest, matching spec.md §4.4 exactly.
const (
	PrecLowest Precedence = iota
	PrecComma
	PrecAssign
	PrecConditional
	PrecOrOr
	PrecAndAnd
	PrecOr
	PrecXor
	PrecAnd
	PrecEquality // ==, !=, is, !is, in, !in, identity
	PrecRelational
	PrecShift
	PrecAdditive
	PrecMultiplicative
	PrecPower
	PrecUnary
	PrecPostfix
	PrecPrimary
)

type Precedence int

// OperatorInfo is one row of the precedence table, grounded on the
// teacher's config.OperatorInfo / AllOperators idiom.
type OperatorInfo struct {
	Kind       token.Kind
	Precedence Precedence
	Assoc      Associativity
	Category   string
}

// PrecedenceTable is the single source of truth consulted both to drive
// the Pratt loop and to decide when checkParens should warn about an
// ambiguous mixed-precedence expression.
var PrecedenceTable = []OperatorInfo{
	{token.COMMA, PrecComma, LeftAssoc, "sequence"},

	{token.ASSIGN, PrecAssign, RightAssoc, "assign"},
	{token.PLUS_ASSIGN, PrecAssign, RightAssoc, "assign"},
	{token.MINUS_ASSIGN, PrecAssign, RightAssoc, "assign"},
	{token.STAR_ASSIGN, PrecAssign, RightAssoc, "assign"},
	{token.SLASH_ASSIGN, PrecAssign, RightAssoc, "assign"},
	{token.PERCENT_ASSIGN, PrecAssign, RightAssoc, "assign"},
	{token.AND_ASSIGN, PrecAssign, RightAssoc, "assign"},
	{token.OR_ASSIGN, PrecAssign, RightAssoc, "assign"},
	{token.XOR_ASSIGN, PrecAssign, RightAssoc, "assign"},
	{token.TILDE_ASSIGN, PrecAssign, RightAssoc, "assign"},
	{token.SHL_ASSIGN, PrecAssign, RightAssoc, "assign"},
	{token.SHR_ASSIGN, PrecAssign, RightAssoc, "assign"},
	{token.USHR_ASSIGN, PrecAssign, RightAssoc, "assign"},
	{token.POW_ASSIGN, PrecAssign, RightAssoc, "assign"},
	{token.QUESTION, PrecConditional, RightAssoc, "conditional"},

	{token.OROR, PrecOrOr, LeftAssoc, "logical"},
	{token.ANDAND, PrecAndAnd, LeftAssoc, "logical"},
	{token.PIPE, PrecOr, LeftAssoc, "bitwise"},
	{token.CARET, PrecXor, LeftAssoc, "bitwise"},
	{token.AMP, PrecAnd, LeftAssoc, "bitwise"},

	{token.EQ, PrecEquality, LeftAssoc, "equality"},
	{token.NE, PrecEquality, LeftAssoc, "equality"},
	{token.IS, PrecEquality, LeftAssoc, "identity"},
	{token.IN, PrecEquality, LeftAssoc, "in"},

	// == and < live at the same precedence level by design (spec.md §4.4).
	{token.LT, PrecEquality, LeftAssoc, "relational"},
	{token.GT, PrecRelational, LeftAssoc, "relational"},
	{token.LE, PrecRelational, LeftAssoc, "relational"},
	{token.GE, PrecRelational, LeftAssoc, "relational"},
	{token.UNORD, PrecRelational, LeftAssoc, "relational"},

	{token.SHL, PrecShift, LeftAssoc, "shift"},
	{token.SHR, PrecShift, LeftAssoc, "shift"},
	{token.USHR, PrecShift, LeftAssoc, "shift"},

	{token.PLUS, PrecAdditive, LeftAssoc, "additive"},
	{token.MINUS, PrecAdditive, LeftAssoc, "additive"},
	{token.TILDE, PrecAdditive, LeftAssoc, "concat"},

	{token.STAR, PrecMultiplicative, LeftAssoc, "multiplicative"},
	{token.SLASH, PrecMultiplicative, LeftAssoc, "multiplicative"},
	{token.PERCENT, PrecMultiplicative, LeftAssoc, "multiplicative"},

	// ^^ binds tighter than unary and is right-associative, so
	// `-a^^b` parses as `-(a^^b)`.
	{token.POW, PrecPower, RightAssoc, "power"},
}

var (
	precByKind  = map[token.Kind]Precedence{}
	assocByKind = map[token.Kind]Associativity{}
)

func init() {
	for _, op := range PrecedenceTable {
		precByKind[op.Kind] = op.Precedence
		assocByKind[op.Kind] = op.Assoc
	}
}

// LookupPrecedence returns the infix/conditional precedence of k, or
// PrecLowest if k is not an infix operator.
func LookupPrecedence(k token.Kind) Precedence {
	if p, ok := precByKind[k]; ok {
		return p
	}
	return PrecLowest
}

// Associativity returns the associativity registered for k.
func AssociativityOf(k token.Kind) Associativity {
	return assocByKind[k]
}

// SamePrecedenceAmbiguous reports whether mixing outer and inner without
// parentheses should raise the checkParens ambiguity warning: true only
// when both operators share a precedence level but the grammar actually
// drew a semantic line between them (the == / < collision, as in
// "a < b == c"). Mixes across two levels, such as "a & b == c", are
// not covered here; the parser checks those separately.
func SamePrecedenceAmbiguous(outer, inner token.Kind) bool {
	if outer == inner {
		return false
	}
	p1, ok1 := precByKind[outer]
	p2, ok2 := precByKind[inner]
	if !ok1 || !ok2 || p1 != p2 {
		return false
	}
	return p1 == PrecEquality || p1 == PrecAnd
}
