package domain

// PageParams carries page/limit values from the command layer to result lists.
// Page is 1-indexed. Limit is capped at 100 by NewPageParams.
type PageParams struct {
	// Page is the current page number, starting at 1.
	Page int
	// Limit is the maximum number of items to return.
	Limit int
}

// NewPageParams builds a PageParams from optional flag values.
// Nil pointers fall back to page=1, limit=20; the limit is capped at 100.
func NewPageParams(page, limit *int) PageParams {
	p := PageParams{Page: 1, Limit: 20}
	if page != nil && *page >= 1 {
		p.Page = *page
	}
	if limit != nil && *limit >= 1 {
		p.Limit = *limit
		if p.Limit > 100 {
			p.Limit = 100
		}
	}
	return p
}

// Offset returns the zero-based index of the first item on the page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Paginate returns the slice of items on page p. Pages past the end are empty,
// as is any page of a PageParams with a non-positive Page or Limit.
func Paginate[T any](items []T, p PageParams) []T {
	if p.Page < 1 || p.Limit < 1 {
		return []T{}
	}
	// Compare page counts before multiplying so huge pages cannot overflow.
	if pages := (len(items) + p.Limit - 1) / p.Limit; p.Page-1 >= pages {
		return []T{}
	}
	start := p.Offset()
	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
