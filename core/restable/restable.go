package restable

import (
	"gorm.io/gorm"
)

// Request parameters read by the adapter
const (
	ParamSearch  = "search"
	ParamPerPage = "perPage"
	ParamPage    = "page"
	ParamSort    = "sort"
)

// DefaultPerPage is the page size models usually return from PerPage
const DefaultPerPage = 15

// Restable is the contract a model implements to be listed through the adapter
type Restable interface {
	// Searchables returns the fields the free-text search runs against, in order
	Searchables() []Searchable

	// CollectMatches returns the exact filters for this request
	CollectMatches(req Request, model Restable) Matcher

	// RestableQuery shapes the final query (default ordering, scopes...)
	RestableQuery(query *gorm.DB) *gorm.DB

	// PerPage returns the default page size
	PerPage() int
}

// Sortable lets a model accept the sort parameter for the listed columns
type Sortable interface {
	Sortables() []string
}

// Matcher applies exact constraints taken from the request
type Matcher interface {
	Apply(req Request, query *gorm.DB) *gorm.DB
}

// MatcherFunc adapts a function to Matcher
type MatcherFunc func(req Request, query *gorm.DB) *gorm.DB

func (f MatcherFunc) Apply(req Request, query *gorm.DB) *gorm.DB {
	return f(req, query)
}

// Identity is the RestableQuery of models that need no final shaping
func Identity(query *gorm.DB) *gorm.DB {
	return query
}
