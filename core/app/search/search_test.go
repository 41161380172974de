package search

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"restable/core/logger"
	"restable/core/module"
	"restable/core/restable"
	"restable/core/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type note struct {
	ID     uint
	Title  string
	Status string
}

func (n *note) Searchables() []restable.Searchable { return restable.Fields("title") }

func (n *note) CollectMatches(req restable.Request, model restable.Restable) restable.Matcher {
	return restable.Matches{restable.Text("status")}
}

func (n *note) RestableQuery(query *gorm.DB) *gorm.DB { return query.Order("id") }

func (n *note) PerPage() int { return restable.DefaultPerPage }

func (n *note) GetModelName() string { return "note" }

func (n *note) ToSearchResult() SearchResult {
	return SearchResult{Id: n.ID, Type: "note", Title: n.Title, URL: fmt.Sprintf("/app/notes/%d", n.ID)}
}

type category struct {
	ID   uint
	Name string
}

func (c *category) Searchables() []restable.Searchable { return restable.Fields("name") }

func (c *category) CollectMatches(req restable.Request, model restable.Restable) restable.Matcher {
	return restable.NoMatches
}

func (c *category) RestableQuery(query *gorm.DB) *gorm.DB { return query }

func (c *category) PerPage() int { return restable.DefaultPerPage }

func (c *category) GetModelName() string { return "category" }

func (c *category) ToSearchResult() SearchResult {
	return SearchResult{Id: c.ID, Type: "category", Title: c.Name}
}

func newTestService(t *testing.T) *SearchService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&note{}, &category{}))
	require.NoError(t, db.Create(&[]note{
		{Title: "golang tips", Status: "active"},
		{Title: "gold prices", Status: "draft"},
		{Title: "rust", Status: "active"},
		{Title: "go modules", Status: "active"},
	}).Error)
	require.NoError(t, db.Create(&[]category{{Name: "golf"}, {Name: "tennis"}}).Error)

	registry := NewSearchRegistry()
	registry.Register(&note{})
	registry.Register(&category{})

	return NewSearchService(db, logger.NewNop(), registry)
}

func TestRegistryNames(t *testing.T) {
	registry := NewSearchRegistry()

	assert.Equal(t, "notes", registry.Register(&note{}))
	assert.Equal(t, "categories", registry.Register(&category{}))
	registry.RegisterAs("archive", &note{})

	assert.Equal(t, []string{"archive", "categories", "notes"}, registry.GetNames())
	_, ok := registry.Get("notes")
	assert.True(t, ok)
	assert.Len(t, registry.GetAll(), 3)
}

func TestGlobalSearchAllModules(t *testing.T) {
	service := newTestService(t)

	response, err := service.GlobalSearch(restable.Map{"search": "go"}, "", 0)
	require.NoError(t, err)

	assert.Equal(t, "go", response.Query)
	assert.Equal(t, []string{"categories", "notes"}, response.Modules)
	assert.Equal(t, 4, response.Total)
	require.Len(t, response.Results["notes"], 3)
	assert.Equal(t, "golang tips", response.Results["notes"][0].Title)
	assert.Equal(t, "/app/notes/1", response.Results["notes"][0].URL)
	assert.Equal(t, "golf", response.Results["categories"][0].Title)
}

func TestGlobalSearchAppliesMatchesAndLimit(t *testing.T) {
	service := newTestService(t)

	response, err := service.GlobalSearch(restable.Map{"search": "go", "status": "active"}, "notes, unknown", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"notes"}, response.Modules)
	require.Len(t, response.Results["notes"], 1)
	assert.Equal(t, "golang tips", response.Results["notes"][0].Title)
}

// ghost has no table
type ghost struct {
	note
}

func (ghost) TableName() string { return "ghosts" }

func TestGlobalSearchSkipsFailingModules(t *testing.T) {
	service := newTestService(t)
	service.Registry.RegisterAs("ghosts", &ghost{})

	response, err := service.GlobalSearch(restable.Map{"search": "go", "status": "active"}, "", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"categories", "notes"}, response.Modules)
	assert.Equal(t, 3, response.Total)

	response, err = service.GlobalSearch(restable.Map{"search": "zzz"}, "", 10)
	require.NoError(t, err)
	assert.Empty(t, response.Modules)
	assert.Zero(t, response.Total)
}

func TestSearchController(t *testing.T) {
	service := newTestService(t)
	r := router.New()

	mod := Init(module.Dependencies{DB: service.DB, Logger: service.Logger}, service.Registry)
	mod.(*Module).Routes(r.Group("/api"))

	tests := []struct {
		name  string
		query string
		code  int
		total int
	}{
		{name: "missing search", query: "", code: http.StatusBadRequest},
		{name: "too short", query: "?search=g", code: http.StatusBadRequest},
		{name: "invalid limit", query: "?search=go&limit=many", code: http.StatusBadRequest},
		{name: "ok", query: "?search=go&modules=categories", code: http.StatusOK, total: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search"+tt.query, nil))

			require.Equal(t, tt.code, w.Code, w.Body.String())
			if tt.code != http.StatusOK {
				return
			}
			var response SearchResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.total, response.Total)
			assert.NotEmpty(t, response.Duration)
		})
	}
}
