package search

import (
	"fmt"
	"reflect"
	"strings"

	"restable/core/logger"
	"restable/core/restable"

	"gorm.io/gorm"
)

const defaultLimit = 10

type SearchService struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Registry *SearchRegistry
}

func NewSearchService(db *gorm.DB, logger logger.Logger, registry *SearchRegistry) *SearchService {
	return &SearchService{
		DB:       db,
		Logger:   logger,
		Registry: registry,
	}
}

// GlobalSearch runs the request against every selected module. A module that
// fails is logged and left out of the response.
func (s *SearchService) GlobalSearch(req restable.Request, modules string, limit int) (*SearchResponse, error) {
	query, _ := req.Input(restable.ParamSearch)
	response := &SearchResponse{
		Query:   query,
		Results: make(map[string][]SearchResult),
		Modules: []string{},
	}

	if limit <= 0 {
		limit = defaultLimit
	}

	var modulesToSearch []string
	if modules == "" {
		modulesToSearch = s.Registry.GetNames()
	} else {
		for _, module := range strings.Split(modules, ",") {
			if module = strings.TrimSpace(module); module != "" {
				modulesToSearch = append(modulesToSearch, module)
			}
		}
	}

	for _, moduleName := range modulesToSearch {
		config, exists := s.Registry.Get(moduleName)
		if !exists {
			s.Logger.Warn("Search module not registered",
				logger.String("module", moduleName))
			continue
		}

		results, err := s.searchModule(config, req, limit)
		if err != nil {
			s.Logger.Error("Failed to search module",
				logger.String("module", moduleName),
				logger.Error(err))
			continue
		}

		if len(results) > 0 {
			response.Results[moduleName] = results
			response.Modules = append(response.Modules, moduleName)
			response.Total += len(results)
		}
	}

	return response, nil
}

// searchModule loads up to limit rows of the module's model through the
// restable adapter and converts them to search results
func (s *SearchService) searchModule(config *SearchConfig, req restable.Request, limit int) ([]SearchResult, error) {
	query, err := restable.Apply(req, s.DB, config.Model)
	if err != nil {
		return nil, err
	}

	rows := reflect.New(reflect.SliceOf(reflect.TypeOf(config.Model)))
	if err := query.Limit(limit).Find(rows.Interface()).Error; err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", config.Name, err)
	}

	items := rows.Elem()
	results := make([]SearchResult, 0, items.Len())
	for i := 0; i < items.Len(); i++ {
		item, ok := items.Index(i).Interface().(SearchableModel)
		if !ok {
			continue
		}
		results = append(results, item.ToSearchResult())
	}
	return results, nil
}
