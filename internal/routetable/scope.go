package routetable

import "errors"

// Scope selects the protected or public half of the table.
type Scope string

const (
	ScopeProtected Scope = "protected"
	ScopePublic    Scope = "public"
)

// ErrUnknownScope indicates a scope other than protected or public.
var ErrUnknownScope = errors.New("unknown route scope")

// ParseScope converts a query value into a Scope.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeProtected, ScopePublic:
		return Scope(s), nil
	default:
		return "", ErrUnknownScope
	}
}
