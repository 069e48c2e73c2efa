// Package routetable assembles the console's protected and public route groups.
// The table is built once at startup by Compose and handed to its consumers;
// accessors return copies so the composed table stays immutable.
package routetable

import "github.com/JaimeStill/registry-admin/pkg/navigation"

// Table holds the grouped route trees used for menu rendering and their
// flattened forms used for router registration.
type Table struct {
	protectedGroups []navigation.Descriptor
	publicGroups    []navigation.Descriptor
	protectedFlat   []navigation.Descriptor
	publicFlat      []navigation.Descriptor
}

// Compose builds the route table from the hand-authored group lists.
// Group order is menu order.
func Compose() Table {
	return New(protectedGroups(), publicGroups())
}

// New builds a table from arbitrary protected and public trees.
func New(protected, public []navigation.Descriptor) Table {
	protected = navigation.Clone(protected)
	public = navigation.Clone(public)

	return Table{
		protectedGroups: protected,
		publicGroups:    public,
		protectedFlat:   navigation.Flatten(protected),
		publicFlat:      navigation.Flatten(public),
	}
}

// ProtectedGroups returns the authenticated navigation tree.
func (t Table) ProtectedGroups() []navigation.Descriptor {
	return navigation.Clone(t.protectedGroups)
}

// PublicGroups returns the public navigation tree.
func (t Table) PublicGroups() []navigation.Descriptor {
	return navigation.Clone(t.publicGroups)
}

// ProtectedFlat returns every protected descriptor in pre-order.
func (t Table) ProtectedFlat() []navigation.Descriptor {
	return navigation.Clone(t.protectedFlat)
}

// PublicFlat returns every public descriptor in pre-order.
func (t Table) PublicFlat() []navigation.Descriptor {
	return navigation.Clone(t.publicFlat)
}

// Flat returns the flattened list for the given scope.
// Returns ErrUnknownScope for anything other than ScopeProtected or ScopePublic.
func (t Table) Flat(scope Scope) ([]navigation.Descriptor, error) {
	switch scope {
	case ScopeProtected:
		return t.ProtectedFlat(), nil
	case ScopePublic:
		return t.PublicFlat(), nil
	default:
		return nil, ErrUnknownScope
	}
}

// Duplicates reports paths registered more than once per scope.
// Empty scopes are omitted.
func (t Table) Duplicates() map[Scope][]string {
	dups := make(map[Scope][]string)
	if d := navigation.Duplicates(t.protectedFlat); len(d) > 0 {
		dups[ScopeProtected] = d
	}
	if d := navigation.Duplicates(t.publicFlat); len(d) > 0 {
		dups[ScopePublic] = d
	}
	return dups
}
