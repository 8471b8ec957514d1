package candidates

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swapnilsaysloud/hireai-outreach/internal/types"
)

func candidateList(n int) []types.Candidate {
	out := make([]types.Candidate, n)
	for i := range out {
		out[i] = types.Candidate{ID: fmt.Sprintf("candidate-%d", i+1)}
	}
	return out
}

func TestTotalPages(t *testing.T) {
	p := NewPaginator(6)

	tests := []struct {
		total int
		want  int
	}{
		{0, 0},
		{1, 1},
		{6, 1},
		{7, 2},
		{20, 4},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, p.TotalPages(tt.total), "total=%d", tt.total)
	}
}

func TestSlice(t *testing.T) {
	p := NewPaginator(6)
	list := candidateList(20)

	first := p.Slice(list, 1)
	require.Len(t, first, 6)
	assert.Equal(t, "candidate-1", first[0].ID)

	last := p.Slice(list, 4)
	require.Len(t, last, 2)
	assert.Equal(t, "candidate-19", last[0].ID)
	assert.Equal(t, "candidate-20", last[1].ID)

	assert.Empty(t, p.Slice(list, 5))
}

func TestNewPaginatorDefaultSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NewPaginator(0).PageSize)
	assert.Equal(t, 10, NewPaginator(10).PageSize)
}

// entries is shorthand for expected pager sequences: positive values are page
// numbers, zero is an ellipsis gap.
func entries(values ...int) []PageEntry {
	out := make([]PageEntry, len(values))
	for i, v := range values {
		if v == 0 {
			out[i] = Gap
		} else {
			out[i] = PageEntry{Number: v}
		}
	}
	return out
}

func TestPageNumbers(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		totalPages  int
		want        []PageEntry
	}{
		{"single page", 1, 1, entries(1)},
		{"all pages shown when short", 3, 5, entries(1, 2, 3, 4, 5)},
		{"first page of many", 1, 10, entries(1, 2, 3, 0, 10)},
		{"second page of many", 2, 10, entries(1, 2, 3, 0, 10)},
		{"window adjacent to first page", 3, 10, entries(1, 2, 3, 4, 0, 10)},
		{"window in the middle", 5, 20, entries(1, 0, 4, 5, 6, 0, 20)},
		{"window adjacent to last page", 8, 10, entries(1, 0, 7, 8, 9, 10)},
		{"last page of many", 10, 10, entries(1, 0, 8, 9, 10)},
		{"just over the short threshold", 1, 6, entries(1, 2, 3, 0, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageNumbers(tt.currentPage, tt.totalPages)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPageNumbersNeverRepeats(t *testing.T) {
	for totalPages := 1; totalPages <= 30; totalPages++ {
		for currentPage := 1; currentPage <= totalPages; currentPage++ {
			got := PageNumbers(currentPage, totalPages)

			lastNumber := 0
			lastWasGap := false
			for _, e := range got {
				if e.Gap {
					assert.False(t, lastWasGap, "consecutive gaps at page %d/%d", currentPage, totalPages)
					lastWasGap = true
					continue
				}
				assert.Greater(t, e.Number, lastNumber, "non-increasing page at %d/%d", currentPage, totalPages)
				lastNumber = e.Number
				lastWasGap = false
			}

			require.NotEmpty(t, got)
			assert.Equal(t, 1, got[0].Number)
			assert.Equal(t, totalPages, got[len(got)-1].Number)
		}
	}
}
