package dto

// PaginationInfo is the pagination block returned with every list response.
type PaginationInfo struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// NewPaginationInfo computes the page count for a total row count. An empty
// result set still reports one page.
func NewPaginationInfo(total, page, limit int) PaginationInfo {
	pages := 1
	if total > 0 {
		pages = (total + limit - 1) / limit
	}
	return PaginationInfo{
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: pages,
	}
}
