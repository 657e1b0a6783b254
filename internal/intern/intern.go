// Package intern implements the identifier-interning service the parser
// treats as an external collaborator: an append-only pool keyed by
// spelling that hands out pointer-identical *token.Identifier values for
// equal spellings, plus a generator for synthetic names.
package intern

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/mcgru/dparse/internal/token"
)

// Interner is safe for concurrent use by multiple parser instances that
// share one interner, guarding its pool with a mutex as spec.md's
// concurrency model requires of any shared identifier interner.
type Interner struct {
	mu   sync.Mutex
	pool map[string]*token.Identifier
}

// New returns an empty Interner.
func New() *Interner {
	return &Interner{pool: make(map[string]*token.Identifier)}
}

// Intern returns the unique *token.Identifier for name, creating it on
// first use.
func (in *Interner) Intern(name string) *token.Identifier {
	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.pool[name]; ok {
		return id
	}
	id := &token.Identifier{Name: name}
	in.pool[name] = id
	return id
}

// GenerateID mints a synthetic identifier that cannot collide with any
// source spelling: a mixin pseudo-filename (`<origfile>-mixin-<uuid>`)
// or a template type parameter invented for a lambda-from-identifier
// conversion. The uuid suffix is what keeps two mixins expanded on the
// same source line from ever sharing a generated name.
func (in *Interner) GenerateID(prefix string) *token.Identifier {
	name := fmt.Sprintf("%s-%s", prefix, uuid.New().String())
	in.mu.Lock()
	defer in.mu.Unlock()
	id := &token.Identifier{Name: name}
	in.pool[name] = id
	return id
}
