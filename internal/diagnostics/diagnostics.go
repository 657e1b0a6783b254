// Package diagnostics implements the diagnostic subsystem: a severity
// taxonomy, a diagnostic value carrying location, message, severity and
// supplementals, an ordered diagnostic set, and pluggable handlers.
package diagnostics

import (
	"fmt"

	"github.com/mcgru/dparse/internal/token"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	Error Severity = iota
	Warning
	Deprecation
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Deprecation:
		return "deprecation"
	default:
		return "unknown"
	}
}

// Diagnostic is one reported message. Supplementals share the severity
// of their parent by construction — AddSupplemental enforces this.
type Diagnostic struct {
	Location      token.Location
	Message       string
	Severity      Severity
	Supplementals []Diagnostic
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Location, d.Severity, d.Message)
}

// New formats a primary diagnostic. Formatting errors (a bad verb, a
// missing argument) are never fatal: fmt.Sprintf degrades to an inline
// "%!" marker rather than panicking, which is the silent-truncation
// behavior spec.md requires of Handler formatting failures.
func New(loc token.Location, sev Severity, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Location: loc, Message: fmt.Sprintf(format, args...), Severity: sev}
}

// AddSupplemental appends a supplemental diagnostic to d, forcing its
// severity to match the parent's regardless of what the caller passed.
func (d *Diagnostic) AddSupplemental(loc token.Location, format string, args ...interface{}) {
	supp := New(loc, d.Severity, format, args...)
	d.Supplementals = append(d.Supplementals, supp)
}

// Set is an append-ordered, indexable collection of diagnostics.
type Set struct {
	entries []Diagnostic
}

// Len returns the number of primary diagnostics in the set.
func (s *Set) Len() int { return len(s.entries) }

// At returns the i'th diagnostic.
func (s *Set) At(i int) Diagnostic { return s.entries[i] }

// All returns every diagnostic in append order.
func (s *Set) All() []Diagnostic { return s.entries }

// Add appends a new primary diagnostic and returns its index.
func (s *Set) Add(d Diagnostic) int {
	s.entries = append(s.entries, d)
	return len(s.entries) - 1
}

// AddSupplementalToLast attaches a supplemental diagnostic to whichever
// entry was most recently added. It is a no-op on an empty set.
func (s *Set) AddSupplementalToLast(loc token.Location, format string, args ...interface{}) {
	if len(s.entries) == 0 {
		return
	}
	s.entries[len(s.entries)-1].AddSupplemental(loc, format, args...)
}

// HasErrors reports whether any entry (or supplemental) carries
// Error severity — "no error-severity diagnostics produced" is spec.md's
// externally observable definition of a successful parse.
func (s *Set) HasErrors() bool {
	for _, d := range s.entries {
		if d.Severity == Error {
			return true
		}
		for _, sup := range d.Supplementals {
			if sup.Severity == Error {
				return true
			}
		}
	}
	return false
}
