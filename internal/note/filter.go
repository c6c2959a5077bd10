package note

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// searchable adapts a note slice to fuzzy.Source.
type searchable []*Note

func (s searchable) String(i int) string {
	return s[i].Title + " " + s[i].Text
}

func (s searchable) Len() int {
	return len(s)
}

// Filter returns the notes whose title or text fuzzily matches query.
// Matches keep the order of the input rather than match score, so a sorted
// list stays sorted. An empty query returns notes unchanged.
func Filter(notes []*Note, query string) []*Note {
	query = strings.TrimSpace(query)
	if query == "" {
		return notes
	}

	matches := fuzzy.FindFrom(query, searchable(notes))
	indexes := make([]int, 0, len(matches))
	for _, m := range matches {
		indexes = append(indexes, m.Index)
	}
	sort.Ints(indexes)

	out := make([]*Note, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, notes[i])
	}
	return out
}

// Pinned returns only the pinned notes, preserving order.
func Pinned(notes []*Note) []*Note {
	var out []*Note
	for _, n := range notes {
		if n.Pinned {
			out = append(out, n)
		}
	}
	return out
}

// CountMatches counts case-insensitive, non-overlapping occurrences of
// keyword in text.
func CountMatches(text, keyword string) int {
	if keyword == "" {
		return 0
	}
	return strings.Count(strings.ToLower(text), strings.ToLower(keyword))
}
