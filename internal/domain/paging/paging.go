package paging

// Pagination represents pagination information for list responses.
type Pagination struct {
	Total      int64 // Total number of records
	Page       int64 // Current page number (1-based)
	PageSize   int64 // Number of records per page
	TotalPages int64 // Total number of pages
}

// New creates a new Pagination instance with calculated total pages.
func New(total, page, pageSize int64) *Pagination {
	var totalPages int64
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return &Pagination{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// HasPrev reports whether there is a page before the current one.
func (p *Pagination) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether there is a page after the current one.
func (p *Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}

// PrevPage returns the previous page number, clamped to 1.
func (p *Pagination) PrevPage() int64 {
	if p.Page <= 1 {
		return 1
	}
	return p.Page - 1
}

// NextPage returns the next page number, clamped to the last page.
func (p *Pagination) NextPage() int64 {
	if p.Page >= p.TotalPages {
		return p.TotalPages
	}
	return p.Page + 1
}

// Normalize clamps page and pageSize to valid values. Non-positive or missing
// values fall back to page 1 and defaultSize; pageSize is capped at maxSize.
func Normalize(page, pageSize, defaultSize, maxSize int64) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if maxSize > 0 && pageSize > maxSize {
		pageSize = maxSize
	}
	return page, pageSize
}
