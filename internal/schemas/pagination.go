package schemas

// PaginationResponse is one page of a filtered listing. Total counts every
// row matching the filters, not just the returned page.
type PaginationResponse[T any] struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
	Items  []T   `json:"items"`
}
