package token

import "fmt"

// Location identifies a point in a source buffer. The zero value is the
// "uninitialized" sentinel: File == "" and Offset == 0.
type Location struct {
	File   string
	Line   int
	Column int
	Offset int
}

// IsValid reports whether l carries a real source position.
func (l Location) IsValid() bool {
	return l.File != ""
}

func (l Location) String() string {
	if !l.IsValid() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}
