package tableview

// DefaultWindowRadius is the number of pages shown on each side
// of the current page in a pagination window.
const DefaultWindowRadius = 2

// PageToken is one element of a pagination window:
// either a page number or an ellipsis gap marker.
type PageToken struct {
	// Page is the 1-based page number, 0 for an ellipsis.
	Page int
	// Ellipsis marks a gap between page numbers.
	Ellipsis bool
}

// PageControl is a previous/next boundary control
// outside the numbered pagination window.
type PageControl struct {
	// Page is the target page of the control.
	Page int
	// Disabled is true when the control points outside [1, totalPages].
	Disabled bool
}

// PageWindow returns the page tokens to display around currentPage:
// the first and last page, the pages within radius of currentPage,
// and ellipses for the gaps in between.
//
// A gap of exactly one page collapses to that page number instead of
// an ellipsis, so two ellipses never appear back to back.
// With one page or less no window is shown at all.
func PageWindow(currentPage, totalPages, radius int) []PageToken {
	if totalPages <= 1 {
		return nil
	}
	surroundStart := max(1, currentPage-radius)
	surroundEnd := min(totalPages, currentPage+radius)

	var tokens []PageToken
	switch {
	case surroundStart > 2:
		tokens = append(tokens, PageToken{Page: 1}, PageToken{Ellipsis: true})
	case surroundStart > 1:
		tokens = append(tokens, PageToken{Page: 1})
	}
	for page := surroundStart; page <= surroundEnd; page++ {
		tokens = append(tokens, PageToken{Page: page})
	}
	switch {
	case surroundEnd < totalPages-1:
		tokens = append(tokens, PageToken{Ellipsis: true}, PageToken{Page: totalPages})
	case surroundEnd < totalPages:
		tokens = append(tokens, PageToken{Page: totalPages})
	}
	return tokens
}

// PrevNext returns the previous and next page controls for currentPage.
func PrevNext(currentPage, totalPages int) (prev, next PageControl) {
	prev = PageControl{Page: currentPage - 1, Disabled: currentPage <= 1}
	next = PageControl{Page: currentPage + 1, Disabled: currentPage >= totalPages}
	return prev, next
}
