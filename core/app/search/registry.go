package search

import (
	"sort"

	"restable/core/restable"

	"github.com/gertd/go-pluralize"
)

// SearchableModel is a restable model that can appear in the global search
type SearchableModel interface {
	restable.Restable

	// GetModelName returns the singular model name (e.g. "post")
	GetModelName() string

	// ToSearchResult converts the model instance to a SearchResult
	ToSearchResult() SearchResult
}

// SearchConfig is one registered module
type SearchConfig struct {
	// Model is a zero value of the model, used to scope the query
	Model SearchableModel

	// Name is the module name (e.g. "posts")
	Name string
}

// SearchRegistry holds all registered searchable models
type SearchRegistry struct {
	configs   map[string]*SearchConfig
	pluralize *pluralize.Client
}

// NewSearchRegistry creates a new search registry
func NewSearchRegistry() *SearchRegistry {
	return &SearchRegistry{
		configs:   make(map[string]*SearchConfig),
		pluralize: pluralize.NewClient(),
	}
}

// Register adds a model under the plural of its model name:
//
//	registry.Register(&models.Post{}) // "posts"
func (r *SearchRegistry) Register(model SearchableModel) string {
	name := r.pluralize.Plural(model.GetModelName())
	r.RegisterAs(name, model)
	return name
}

// RegisterAs adds a model under an explicit module name
func (r *SearchRegistry) RegisterAs(name string, model SearchableModel) {
	r.configs[name] = &SearchConfig{Model: model, Name: name}
}

// Get retrieves a search config by name
func (r *SearchRegistry) Get(name string) (*SearchConfig, bool) {
	config, exists := r.configs[name]
	return config, exists
}

// GetAll returns all registered search configs
func (r *SearchRegistry) GetAll() map[string]*SearchConfig {
	return r.configs
}

// GetNames returns all registered module names, sorted
func (r *SearchRegistry) GetNames() []string {
	names := make([]string, 0, len(r.configs))
	for name := range r.configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
