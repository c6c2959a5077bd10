package note

import (
	"slices"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func at(sec int) time.Time {
	return epoch.Add(time.Duration(sec) * time.Second)
}

func ids(notes []*Note) []int64 {
	out := make([]int64, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func TestSort_PinnedThenRecent(t *testing.T) {
	notes := []*Note{
		{ID: 1, Pinned: false, ModifiedAt: at(1)},
		{ID: 2, Pinned: true, ModifiedAt: at(0)},
		{ID: 3, Pinned: false, ModifiedAt: at(2)},
	}

	Sort(notes)

	if got, want := ids(notes), []int64{2, 3, 1}; !slices.Equal(got, want) {
		t.Errorf("got order %v, want %v", got, want)
	}
}

func TestSort_Stable(t *testing.T) {
	notes := []*Note{
		{ID: 1, ModifiedAt: at(5)},
		{ID: 2, ModifiedAt: at(5)},
		{ID: 3, Pinned: true, ModifiedAt: at(1)},
		{ID: 4, ModifiedAt: at(5)},
		{ID: 5, Pinned: true, ModifiedAt: at(1)},
	}

	Sort(notes)

	if got, want := ids(notes), []int64{3, 5, 1, 2, 4}; !slices.Equal(got, want) {
		t.Errorf("got order %v, want %v", got, want)
	}

	Sort(notes)
	if got, want := ids(notes), []int64{3, 5, 1, 2, 4}; !slices.Equal(got, want) {
		t.Errorf("re-sort changed order: got %v, want %v", got, want)
	}
}

func TestCompare(t *testing.T) {
	pinnedOld := &Note{Pinned: true, ModifiedAt: at(0)}
	pinnedNew := &Note{Pinned: true, ModifiedAt: at(10)}
	plainOld := &Note{ModifiedAt: at(0)}
	plainNew := &Note{ModifiedAt: at(10)}

	tests := []struct {
		name string
		a, b *Note
		want int
	}{
		{"pinned before plain even if older", pinnedOld, plainNew, -1},
		{"plain after pinned", plainNew, pinnedOld, 1},
		{"newer first among pinned", pinnedNew, pinnedOld, -1},
		{"older after newer", plainOld, plainNew, 1},
		{"tie", plainOld, &Note{ModifiedAt: at(0)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.a, tt.b)
			if sign(got) != tt.want {
				t.Errorf("Compare = %d, want sign %d", got, tt.want)
			}
			if Less(tt.a, tt.b) != (tt.want < 0) {
				t.Errorf("Less = %v, want %v", Less(tt.a, tt.b), tt.want < 0)
			}
		})
	}
}

func TestIsSorted(t *testing.T) {
	notes := []*Note{
		{ID: 1, ModifiedAt: at(1)},
		{ID: 2, Pinned: true, ModifiedAt: at(0)},
	}
	if IsSorted(notes) {
		t.Error("expected unsorted")
	}
	Sort(notes)
	if !IsSorted(notes) {
		t.Error("expected sorted")
	}
}

func TestIndexOf(t *testing.T) {
	notes := []*Note{{ID: 7}, {ID: 9}}
	if got := IndexOf(notes, 9); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	if got := IndexOf(notes, 3); got != -1 {
		t.Errorf("got %d, want -1", got)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

type seed struct {
	Pinned bool
	Sec    int
}

func genSeeds() gopter.Gen {
	return gen.SliceOf(gopter.CombineGens(gen.Bool(), gen.IntRange(0, 5)).Map(func(v []interface{}) seed {
		return seed{Pinned: v[0].(bool), Sec: v[1].(int)}
	}))
}

func build(seeds []seed) []*Note {
	notes := make([]*Note, len(seeds))
	for i, s := range seeds {
		notes[i] = &Note{ID: int64(i), Pinned: s.Pinned, ModifiedAt: at(s.Sec)}
	}
	return notes
}

func TestOrderingProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("sorted output satisfies the policy", prop.ForAll(
		func(seeds []seed) bool {
			notes := build(seeds)
			Sort(notes)
			return IsSorted(notes)
		},
		genSeeds(),
	))

	properties.Property("ties keep insertion order", prop.ForAll(
		func(seeds []seed) bool {
			notes := build(seeds)
			Sort(notes)
			for i := 1; i < len(notes); i++ {
				if Compare(notes[i-1], notes[i]) == 0 && notes[i-1].ID > notes[i].ID {
					return false
				}
			}
			return true
		},
		genSeeds(),
	))

	properties.Property("re-sorting is a no-op", prop.ForAll(
		func(seeds []seed) bool {
			notes := build(seeds)
			Sort(notes)
			first := ids(notes)
			Sort(notes)
			return slices.Equal(first, ids(notes))
		},
		genSeeds(),
	))

	properties.TestingRun(t)
}
