package search

// SearchResponse is returned by the global search endpoint
type SearchResponse struct {
	Query    string                    `json:"query"`    // search text as received
	Total    int                       `json:"total"`    // Total results across all modules
	Results  map[string][]SearchResult `json:"results"`  // Results grouped by module
	Modules  []string                  `json:"modules"`  // Modules that returned results
	Duration string                    `json:"duration"` // Search duration
}

type SearchResult struct {
	Id          uint   `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Metadata    any    `json:"metadata"`
}

// SearchRequest is decoded from the query string. Every other query
// parameter is handed to the models as match filters.
type SearchRequest struct {
	Search  string `schema:"search"`  // Search text (minimum 2 characters)
	Modules string `schema:"modules"` // Comma-separated modules to search
	Limit   int    `schema:"limit"`   // Results per module (default: 10)
}
