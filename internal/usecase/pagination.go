package usecase

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	// MaxLimit caps result windows so a single request cannot drag the
	// whole table across the wire.
	MaxLimit = 100
)

// Pagination describes one result window. The same shape is returned by
// book listing, book detail (for its reviews) and search.
type Pagination struct {
	Total       int `json:"total"`
	Pages       int `json:"pages"`
	CurrentPage int `json:"currentPage"`
	Limit       int `json:"limit"`
}

// ParsePage coerces any non-numeric or non-positive input to the default.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return DefaultPage
	}
	return page
}

// ParseLimit coerces like ParsePage and additionally clamps to MaxLimit.
func ParseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func Offset(page, limit int) int {
	return (page - 1) * limit
}

// NewPagination computes the metadata once the total count is known.
// Pages is a ceiling division, so zero rows means zero pages.
func NewPagination(total, page, limit int) Pagination {
	return Pagination{
		Total:       total,
		Pages:       (total + limit - 1) / limit,
		CurrentPage: page,
		Limit:       limit,
	}
}
