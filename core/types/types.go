package types

// ErrorResponse is the JSON body returned for failed requests
type ErrorResponse struct {
	Error string `json:"error"`
}

// Pagination describes the page returned in a PaginatedResponse
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// PaginatedResponse wraps a page of items
type PaginatedResponse struct {
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
