package config

// WellKnownNames lists spellings with a conventional special meaning:
// `__traits` member names, and `@` attribute spellings such as
// `property`, `nogc`, `safe`. The first nine entries (body through
// future) are reserved words in the lexer and arrive as their own
// keyword Kinds, never as IDENT. The parser does not consult this list.
var WellKnownNames = []string{
	"body", "property", "nogc", "safe", "trusted", "system", "live",
	"disable", "future", "getMember", "getAttributes", "allMembers",
	"compiles", "hasMember", "identifier", "isSame", "parent",
}

// Behavior flags gating legacy/alternate syntax forms, mirroring
// spec.md §4.3's "(gated by a compile-time flag)" / "(gated by
// allow_alt_syntax)" notes on is_declarator.
var (
	// AllowCArrayPostfix enables recognising C-style array declarator
	// suffixes (`int a[3]`) during is_declarator probing.
	AllowCArrayPostfix = true

	// AllowAltSyntax enables the parenthesised sub-declarator form
	// `int (*f)(int)` during is_declarator probing.
	AllowAltSyntax = true
)
