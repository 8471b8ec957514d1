package candidates

import "github.com/swapnilsaysloud/hireai-outreach/internal/types"

// BulkSelectOptions are the top-N sizes offered by the bulk select control;
// 0 clears the selection.
var BulkSelectOptions = []int{0, 10, 20, 50}

// Selection is the set of candidate ids currently chosen for outreach, scoped
// to one search result set. Every mutation returns a fresh value and leaves
// the receiver untouched, so a view holding the old set never observes a
// half-updated collection.
type Selection map[string]struct{}

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return Selection{}
}

// Has reports whether id is selected.
func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of selected ids.
func (s Selection) Len() int {
	return len(s)
}

// Toggle flips membership of id and returns the resulting selection.
func (s Selection) Toggle(id string) Selection {
	next := make(Selection, len(s)+1)
	for k := range s {
		next[k] = struct{}{}
	}
	if next.Has(id) {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return next
}

// Clear returns an empty selection. Called on new search submission.
func (s Selection) Clear() Selection {
	return NewSelection()
}

// SelectTopN returns a selection holding the first n ids from orderedIDs,
// replacing rather than extending any prior selection. n == 0 clears;
// n beyond the available ids selects everything that exists.
func SelectTopN(n int, orderedIDs []string) Selection {
	next := NewSelection()
	if n <= 0 {
		return next
	}
	if n > len(orderedIDs) {
		n = len(orderedIDs)
	}
	for _, id := range orderedIDs[:n] {
		next[id] = struct{}{}
	}
	return next
}

// Materialize projects the selection back to full Candidate records, keeping
// the candidates' original relative order.
func (s Selection) Materialize(list []types.Candidate) []types.Candidate {
	out := make([]types.Candidate, 0, len(s))
	for _, c := range list {
		if s.Has(c.ID) {
			out = append(out, c)
		}
	}
	return out
}
