package view

// Pagination is the view model for the pagination bar: a sliding window of
// up to five page buttons centered on the current page and clamped to
// [1, TotalPages], plus prev/next state.
type Pagination struct {
	Page       int
	TotalPages int
	Buttons    []int
	HasPrev    bool
	HasNext    bool
}

// PageWindow computes the pagination view model. With one page or fewer
// there is nothing to navigate and Buttons is empty.
func PageWindow(page, totalPages int) Pagination {
	p := Pagination{Page: page, TotalPages: totalPages}
	if totalPages <= 1 {
		return p
	}

	start := page - 2
	if start < 1 {
		start = 1
	}
	end := page + 2
	if end > totalPages {
		end = totalPages
	}

	for n := start; n <= end; n++ {
		p.Buttons = append(p.Buttons, n)
	}
	p.HasPrev = page > 1
	p.HasNext = page < totalPages
	return p
}
