package navigation

// Flatten returns every node of tree in pre-order: each descriptor, followed
// immediately by the flattened sequence of its children. Nodes are appended
// unchanged and duplicate paths are kept. A nil tree yields an empty slice.
func Flatten(tree []Descriptor) []Descriptor {
	flat := make([]Descriptor, 0, Count(tree))
	return appendFlat(flat, tree)
}

func appendFlat(dst []Descriptor, tree []Descriptor) []Descriptor {
	for _, d := range tree {
		dst = append(dst, d)
		if d.Children != nil {
			dst = appendFlat(dst, d.Children)
		}
	}
	return dst
}

// Count returns the total number of nodes in tree, groups included.
func Count(tree []Descriptor) int {
	n := 0
	for _, d := range tree {
		n += 1 + Count(d.Children)
	}
	return n
}

// Entries projects a flat list into its registration view, preserving order.
func Entries(flat []Descriptor) []Entry {
	entries := make([]Entry, len(flat))
	for i, d := range flat {
		entries[i] = d.Entry()
	}
	return entries
}

// Duplicates returns the paths that occur more than once in flat, in order of
// first occurrence. Flatten never removes them; callers decide how to report.
func Duplicates(flat []Descriptor) []string {
	seen := make(map[string]int, len(flat))
	var dups []string
	for _, d := range flat {
		seen[d.Path]++
		if seen[d.Path] == 2 {
			dups = append(dups, d.Path)
		}
	}
	return dups
}

// Clone returns a deep copy of tree.
func Clone(tree []Descriptor) []Descriptor {
	if tree == nil {
		return nil
	}
	out := make([]Descriptor, len(tree))
	for i, d := range tree {
		d.Children = Clone(d.Children)
		out[i] = d
	}
	return out
}
