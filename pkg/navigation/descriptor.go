// Package navigation describes the console's client-side route tree.
// Descriptors are pure data: component and guard references are opaque keys
// resolved by the front end, never constructed or invoked here.
package navigation

// ComponentKey identifies a renderable page in the front-end component registry.
type ComponentKey string

// Guard identifies the access-control wrapper applied to a route.
type Guard string

const (
	// GuardAuthenticated requires an authenticated session.
	GuardAuthenticated Guard = "authenticated"

	// GuardPublic renders without a session.
	GuardPublic Guard = "public"
)

// Descriptor is a single node in the route tree. A descriptor with Children
// is a navigation group; its own Path and Component may or may not be a
// registrable route.
type Descriptor struct {
	Path      string       `json:"path" yaml:"path"`
	Name      string       `json:"name,omitempty" yaml:"name,omitempty"`
	Component ComponentKey `json:"component,omitempty" yaml:"component,omitempty"`
	Guard     Guard        `json:"guard,omitempty" yaml:"guard,omitempty"`
	Icon      string       `json:"icon,omitempty" yaml:"icon,omitempty"`
	Header    string       `json:"header,omitempty" yaml:"header,omitempty"`
	Children  []Descriptor `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsGroup reports whether the descriptor carries children.
func (d Descriptor) IsGroup() bool {
	return len(d.Children) > 0
}

// Entry is the registration view of a descriptor: the fields a router needs,
// without the subtree.
type Entry struct {
	Path      string       `json:"path" yaml:"path"`
	Name      string       `json:"name,omitempty" yaml:"name,omitempty"`
	Component ComponentKey `json:"component,omitempty" yaml:"component,omitempty"`
	Guard     Guard        `json:"guard,omitempty" yaml:"guard,omitempty"`
}

// Entry returns the registration view of d.
func (d Descriptor) Entry() Entry {
	return Entry{
		Path:      d.Path,
		Name:      d.Name,
		Component: d.Component,
		Guard:     d.Guard,
	}
}
