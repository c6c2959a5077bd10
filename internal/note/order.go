package note

import "slices"

// Compare orders notes for display: pinned notes first, then the most
// recently modified. It returns a negative number when a sorts before b,
// a positive number when b sorts before a and zero for a tie.
func Compare(a, b *Note) int {
	if a.Pinned != b.Pinned {
		if a.Pinned {
			return -1
		}
		return 1
	}
	return b.ModifiedAt.Compare(a.ModifiedAt)
}

// Less reports whether a sorts strictly before b.
func Less(a, b *Note) bool {
	return Compare(a, b) < 0
}

// Sort orders notes in place by Compare. Ties keep their relative order.
func Sort(notes []*Note) {
	slices.SortStableFunc(notes, Compare)
}

// IsSorted reports whether notes are already in display order.
func IsSorted(notes []*Note) bool {
	return slices.IsSortedFunc(notes, Compare)
}

// IndexOf returns the position of the note with the given ID, or -1.
func IndexOf(notes []*Note, id int64) int {
	return slices.IndexFunc(notes, func(n *Note) bool { return n.ID == id })
}
