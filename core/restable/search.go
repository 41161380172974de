package restable

import (
	"math"
	"strconv"
	"strings"

	"restable/core/types"

	"gorm.io/gorm"
)

// Search applies one request to one query. It is built per call and holds no
// state beyond the request, the shaped builder and the model.
type Search struct {
	request Request
	builder *gorm.DB
	model   Restable
}

// Apply scopes db to model and applies the request to it. model is a zero
// value such as &models.Post{}; db is not touched when model is not Restable.
func Apply(req Request, db *gorm.DB, model any) (*gorm.DB, error) {
	s, err := FromModel(req, db, model)
	if err != nil {
		return nil, err
	}
	return s.Builder(), nil
}

// Query applies the request to a builder already scoped to a model
func Query(req Request, builder *gorm.DB) (*gorm.DB, error) {
	s, err := New(req, builder)
	if err != nil {
		return nil, err
	}
	return s.Builder(), nil
}

// ApplyFor is Apply with the contract checked at compile time:
//
//	query := restable.ApplyFor[models.Post](req, db)
func ApplyFor[T any, PT interface {
	*T
	Restable
}](req Request, db *gorm.DB) *gorm.DB {
	return For[T, PT](req, db).Builder()
}

// For returns the Search behind ApplyFor, for pagination
func For[T any, PT interface {
	*T
	Restable
}](req Request, db *gorm.DB) *Search {
	model := PT(new(T))
	return newSearch(req, db.Model(model), model)
}

// FromModel returns the Search behind Apply
func FromModel(req Request, db *gorm.DB, model any) (*Search, error) {
	restable, err := capability(model)
	if err != nil {
		return nil, err
	}
	return newSearch(req, db.Model(model), restable), nil
}

// New returns the Search behind Query
func New(req Request, builder *gorm.DB) (*Search, error) {
	var model any
	if builder != nil && builder.Statement != nil {
		model = builder.Statement.Model
	}
	restable, err := capability(model)
	if err != nil {
		return nil, err
	}
	return newSearch(req, builder, restable), nil
}

func newSearch(req Request, builder *gorm.DB, model Restable) *Search {
	s := &Search{request: req, model: model}

	query := s.search(s.match(builder))
	if sortable, ok := model.(Sortable); ok {
		query = applySort(req, query, sortable)
	}
	s.builder = model.RestableQuery(query)

	return s
}

// match runs whether or not a search term is present
func (s *Search) match(query *gorm.DB) *gorm.DB {
	matcher := s.model.CollectMatches(s.request, s.model)
	if matcher == nil {
		return query
	}
	return matcher.Apply(s.request, query)
}

func (s *Search) search(query *gorm.DB) *gorm.DB {
	search, ok := s.request.Input(ParamSearch)
	if !ok || search == "" {
		return query
	}

	return Searchables(s.model.Searchables()...).
		MapIntoFilter(s.model).
		Apply(s.request, query, search)
}

// Builder returns the shaped query
func (s *Search) Builder() *gorm.DB {
	return s.builder
}

// Model returns the model the query is scoped to
func (s *Search) Model() Restable {
	return s.model
}

// PerPage is the perPage parameter when it parses as an integer, otherwise
// the model default. The value is not bounds checked.
func (s *Search) PerPage() int {
	if raw, ok := s.request.Input(ParamPerPage); ok {
		if perPage, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			return perPage
		}
	}
	return s.model.PerPage()
}

// Page is the page parameter, 1 when missing or invalid
func (s *Search) Page() int {
	if raw, ok := s.request.Input(ParamPage); ok {
		if page, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && page > 0 {
			return page
		}
	}
	return 1
}

// Paginate counts the shaped query and loads the requested page into dest,
// a pointer to a slice of the model. A page size below 1 falls back to the
// model default. dest is left untouched for a page past the last one.
func (s *Search) Paginate(dest any) (*types.PaginatedResponse, error) {
	perPage := s.PerPage()
	if perPage < 1 {
		perPage = s.model.PerPage()
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	page := s.Page()

	query := s.builder.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	// pages past the last one are empty; the offset of a huge page would overflow
	if page <= totalPages {
		if err := query.Offset((page - 1) * perPage).Limit(perPage).Find(dest).Error; err != nil {
			return nil, err
		}
	}

	return &types.PaginatedResponse{
		Data: dest,
		Pagination: types.Pagination{
			Total:      int(total),
			Page:       page,
			PageSize:   perPage,
			TotalPages: totalPages,
		},
	}, nil
}
