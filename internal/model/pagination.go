package model

// Pagination is the envelope attached to every paginated response.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// Paginate slices items for a 1-indexed page. Pages past the end yield an
// empty slice with Total unchanged. Non-positive page or pageSize fall back
// to 1 and defaultSize.
func Paginate[T any](items []T, page, pageSize, defaultSize int) ([]T, Pagination) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultSize
	}
	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	out := make([]T, end-start)
	copy(out, items[start:end])

	return out, Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
