package models

// Page size limits for list endpoints
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginationResult holds pagination metadata
type PaginationResult struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	TotalPages int `json:"totalPages"`
}

// NewPaginationResult creates a pagination result
func NewPaginationResult(page, pageSize, totalCount int) PaginationResult {
	totalPages := totalCount / pageSize
	if totalCount%pageSize > 0 {
		totalPages++
	}

	return PaginationResult{
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

// NormalizePage clamps page and pageSize to usable values
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// Paginate returns the slice of items on the given 1-based page.
// Pages past the end are empty.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 || len(items) == 0 {
		return []T{}
	}
	// compare page numbers before multiplying so huge pages cannot overflow
	if page-1 > (len(items)-1)/pageSize {
		return []T{}
	}
	offset := (page - 1) * pageSize
	end := min(offset+pageSize, len(items))
	return items[offset:end]
}
