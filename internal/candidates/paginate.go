package candidates

import "github.com/swapnilsaysloud/hireai-outreach/internal/types"

// DefaultPageSize is the number of candidate cards shown per page.
const DefaultPageSize = 6

// Pager widget shape: at most maxPagesToShow entries between the bookend
// pages, with ellipsis gaps on either side of the middle window.
const (
	maxPagesToShow = 5
	halfMax        = maxPagesToShow / 2
)

// Paginator slices an ordered candidate list into fixed-size pages.
type Paginator struct {
	PageSize int
}

// NewPaginator returns a Paginator; size <= 0 falls back to DefaultPageSize.
func NewPaginator(size int) Paginator {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Paginator{PageSize: size}
}

// TotalPages returns ceil(total / PageSize).
func (p Paginator) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}

// Slice returns the candidates on the given 1-based page. Callers clamp page
// to [1, TotalPages]; a page past the end yields an empty slice.
func (p Paginator) Slice(list []types.Candidate, page int) []types.Candidate {
	start := (page - 1) * p.PageSize
	if start < 0 || start >= len(list) {
		return []types.Candidate{}
	}
	end := start + p.PageSize
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

// PageEntry is one entry in the compact pager widget: either a page number
// or an ellipsis gap.
type PageEntry struct {
	Number int
	Gap    bool
}

func page(n int) PageEntry { return PageEntry{Number: n} }

// Gap is the ellipsis entry.
var Gap = PageEntry{Gap: true}

// PageNumbers computes the compact page-number display for the pager widget.
// Short lists show every page. Longer lists always show the first and last
// page, a contiguous middle window around currentPage clamped to the interior
// pages, and ellipsis gaps where the window does not touch the bookends.
// Sequences look like [1 ... 4 5 6 ... 20] for currentPage=5, totalPages=20.
func PageNumbers(currentPage, totalPages int) []PageEntry {
	if totalPages <= 0 {
		return []PageEntry{}
	}

	var entries []PageEntry
	if totalPages <= maxPagesToShow {
		for i := 1; i <= totalPages; i++ {
			entries = append(entries, page(i))
		}
		return entries
	}

	entries = append(entries, page(1))
	if currentPage > halfMax+1 {
		entries = append(entries, Gap)
	}

	// Middle window: center on currentPage clamped into the interior, then
	// extend halfMax-1 to each side, excluding the bookend pages.
	center := clamp(currentPage, 2, totalPages-1)
	start := clamp(center-(halfMax-1), 2, totalPages-1)
	end := clamp(center+(halfMax-1), 2, totalPages-1)
	for i := start; i <= end; i++ {
		entries = append(entries, page(i))
	}

	if end < totalPages-1 {
		entries = append(entries, Gap)
	}
	entries = append(entries, page(totalPages))

	return dedupeEntries(entries)
}

// dedupeEntries drops consecutive gaps and any numeric entry that does not
// strictly increase over the previously emitted number.
func dedupeEntries(entries []PageEntry) []PageEntry {
	out := make([]PageEntry, 0, len(entries))
	lastNumber := 0
	lastWasGap := false
	for _, e := range entries {
		if e.Gap {
			if lastWasGap {
				continue
			}
			out = append(out, e)
			lastWasGap = true
			continue
		}
		if e.Number <= lastNumber {
			continue
		}
		out = append(out, e)
		lastNumber = e.Number
		lastWasGap = false
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
