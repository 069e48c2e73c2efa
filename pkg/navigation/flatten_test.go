package navigation_test

import (
	"slices"
	"testing"

	"github.com/JaimeStill/registry-admin/pkg/navigation"
)

func sampleTree() []navigation.Descriptor {
	return []navigation.Descriptor{
		{
			Path: "/a",
			Name: "A",
			Children: []navigation.Descriptor{
				{Path: "/a/1"},
				{
					Path: "/a/2",
					Children: []navigation.Descriptor{
						{Path: "/a/2/x"},
					},
				},
			},
		},
		{Path: "/b"},
		{
			Path: "/c",
			Children: []navigation.Descriptor{
				{Path: "/b"},
			},
		},
	}
}

func paths(flat []navigation.Descriptor) []string {
	out := make([]string, len(flat))
	for i, d := range flat {
		out[i] = d.Path
	}
	return out
}

func TestFlatten_PreOrder(t *testing.T) {
	flat := navigation.Flatten(sampleTree())

	want := []string{"/a", "/a/1", "/a/2", "/a/2/x", "/b", "/c", "/b"}
	if got := paths(flat); !slices.Equal(got, want) {
		t.Errorf("Flatten() paths = %v, want %v", got, want)
	}
}

func TestFlatten_LengthMatchesCount(t *testing.T) {
	tree := sampleTree()
	flat := navigation.Flatten(tree)

	if len(flat) != navigation.Count(tree) {
		t.Errorf("len(Flatten()) = %d, want %d", len(flat), navigation.Count(tree))
	}

	if navigation.Count(tree) != 7 {
		t.Errorf("Count() = %d, want 7", navigation.Count(tree))
	}
}

func TestFlatten_Empty(t *testing.T) {
	tests := []struct {
		name string
		tree []navigation.Descriptor
	}{
		{"nil", nil},
		{"empty", []navigation.Descriptor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flat := navigation.Flatten(tt.tree)
			if flat == nil {
				t.Fatal("Flatten() returned nil, want empty slice")
			}
			if len(flat) != 0 {
				t.Errorf("len(Flatten()) = %d, want 0", len(flat))
			}
		})
	}
}

func TestFlatten_PassesNodesThroughUnchanged(t *testing.T) {
	tree := sampleTree()
	flat := navigation.Flatten(tree)

	if flat[0].Name != "A" {
		t.Errorf("Name = %q, want %q", flat[0].Name, "A")
	}

	if len(flat[0].Children) != 2 {
		t.Errorf("len(Children) = %d, want 2 (group retains its children)", len(flat[0].Children))
	}
}

func TestFlatten_MissingPath(t *testing.T) {
	tree := []navigation.Descriptor{
		{Name: "no path", Children: []navigation.Descriptor{{Path: "/x"}}},
	}

	flat := navigation.Flatten(tree)

	if len(flat) != 2 {
		t.Fatalf("len(Flatten()) = %d, want 2", len(flat))
	}

	if flat[0].Path != "" {
		t.Errorf("Path = %q, want empty", flat[0].Path)
	}
}

func TestDuplicates(t *testing.T) {
	flat := navigation.Flatten(sampleTree())

	dups := navigation.Duplicates(flat)

	if !slices.Equal(dups, []string{"/b"}) {
		t.Errorf("Duplicates() = %v, want [/b]", dups)
	}
}

func TestDuplicates_None(t *testing.T) {
	flat := []navigation.Descriptor{{Path: "/a"}, {Path: "/b"}}

	if dups := navigation.Duplicates(flat); len(dups) != 0 {
		t.Errorf("Duplicates() = %v, want none", dups)
	}
}

func TestEntries(t *testing.T) {
	flat := []navigation.Descriptor{
		{
			Path:      "/a",
			Name:      "A",
			Component: "pages.A",
			Guard:     navigation.GuardAuthenticated,
			Icon:      "home",
			Children:  []navigation.Descriptor{{Path: "/a/1"}},
		},
	}

	entries := navigation.Entries(flat)

	if len(entries) != 1 {
		t.Fatalf("len(Entries()) = %d, want 1", len(entries))
	}

	want := navigation.Entry{
		Path:      "/a",
		Name:      "A",
		Component: "pages.A",
		Guard:     navigation.GuardAuthenticated,
	}
	if entries[0] != want {
		t.Errorf("Entries()[0] = %+v, want %+v", entries[0], want)
	}
}

func TestClone_IsDeep(t *testing.T) {
	tree := sampleTree()
	cloned := navigation.Clone(tree)

	cloned[0].Children[1].Children[0].Path = "/mutated"

	if tree[0].Children[1].Children[0].Path != "/a/2/x" {
		t.Error("mutating clone changed the original tree")
	}
}

func TestDescriptor_IsGroup(t *testing.T) {
	tree := sampleTree()

	if !tree[0].IsGroup() {
		t.Error("IsGroup() = false for descriptor with children")
	}

	if tree[1].IsGroup() {
		t.Error("IsGroup() = true for leaf descriptor")
	}
}
