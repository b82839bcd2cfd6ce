package tableview

import "fmt"

// Header describes one column header of a Snapshot
// including its sort affordance and indicator.
type Header struct {
	Key      string
	Title    string
	Sortable bool
	// Sorted is true when this column is the active sort column.
	Sorted bool
	// Descending is only meaningful when Sorted is true.
	Descending bool
}

// Snapshot is the fully derived, render-ready output of one
// Table state transition. It is a pure data structure consumed
// by a Renderer and must not be mutated.
type Snapshot struct {
	// Title is the optional table title from the Options.
	Title string

	Headers []Header

	// Rows holds the pre-rendered cell strings of the current page,
	// one slice per record in Headers order.
	Rows [][]string

	// Empty is true when no records survived filtering.
	// Renderers must show a placeholder instead of a table.
	Empty bool

	// TotalItems is the number of records after filtering.
	TotalItems int
	// RangeStart and RangeEnd are the 1-based positions of the
	// first and last row of the current page within the filtered
	// records, both 0 when the page is empty.
	RangeStart int
	RangeEnd   int

	CurrentPage int
	TotalPages  int

	// Tokens is the pagination window, empty with one page or less.
	Tokens []PageToken
	Prev   PageControl
	Next   PageControl

	ShowSearch bool
	SearchTerm string
}

// RangeCaption returns the item-count caption of the snapshot,
// like "1 to 10 of 25" or "no entries".
func (s *Snapshot) RangeCaption() string {
	if s.TotalItems == 0 {
		return "no entries"
	}
	return fmt.Sprintf("%d to %d of %d", s.RangeStart, s.RangeEnd, s.TotalItems)
}
