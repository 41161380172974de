package restable

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Article is exported: gorm only reads the fields of exported embedded structs
type Article struct {
	ID        uint
	Title     string
	Body      string
	Status    string
	Views     int
	Published bool
}

func (a *Article) Searchables() []Searchable { return Fields("title", "Body") }

func (a *Article) CollectMatches(req Request, model Restable) Matcher {
	return Matches{Text("status"), Int("views"), Bool("published"), Text("state").On("status")}
}

func (a *Article) RestableQuery(query *gorm.DB) *gorm.DB { return query }

func (a *Article) PerPage() int { return DefaultPerPage }

func (a *Article) Sortables() []string { return []string{"title", "views"} }

// publishedArticle shares the articles table and shapes the query in its hook
type publishedArticle struct {
	Article
}

func (publishedArticle) TableName() string { return "articles" }

func (a *publishedArticle) RestableQuery(query *gorm.DB) *gorm.DB {
	return query.Where("published = ?", true).Order(clause.OrderByColumn{
		Column: clause.Column{Table: clause.CurrentTable, Name: "id"},
		Desc:   true,
	})
}

func (a *publishedArticle) PerPage() int { return 2 }

// user always matches active users and searches one field
type user struct {
	ID     uint
	Name   string
	Status string
}

func (u *user) Searchables() []Searchable { return Fields("name") }

func (u *user) CollectMatches(req Request, model Restable) Matcher {
	return MatcherFunc(func(req Request, query *gorm.DB) *gorm.DB {
		return query.Where("status = ?", "active")
	})
}

func (u *user) RestableQuery(query *gorm.DB) *gorm.DB { return Identity(query) }

func (u *user) PerPage() int { return 15 }

// tag declares a field it does not have
type tag struct {
	ID   uint
	Name string
}

func (t *tag) Searchables() []Searchable { return Fields("label") }

func (t *tag) CollectMatches(req Request, model Restable) Matcher { return NoMatches }

func (t *tag) RestableQuery(query *gorm.DB) *gorm.DB { return query }

func (t *tag) PerPage() int { return 0 }

// plain does not implement Restable
type plain struct {
	ID   uint
	Name string
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&Article{}, &user{}, &tag{}, &plain{}))
	return db
}

func seedArticles(t *testing.T, db *gorm.DB) {
	t.Helper()

	articles := []Article{
		{Title: "Go generics", Body: "type parameters", Status: "active", Views: 10, Published: true},
		{Title: "Gorm scopes", Body: "query building", Status: "active", Views: 20, Published: true},
		{Title: "Draft notes", Body: "about go", Status: "draft", Views: 0, Published: false},
		{Title: "Archived", Body: "old", Status: "archived", Views: 5, Published: true},
		{Title: "Rust tips", Body: "ownership", Status: "active", Views: 30, Published: false},
	}
	require.NoError(t, db.Create(&articles).Error)
}

// sqlFor renders the SELECT produced by applying req to model
func sqlFor(t *testing.T, db *gorm.DB, req Request, model any, dest any) string {
	t.Helper()

	return db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		query, err := Query(req, tx.Model(model))
		require.NoError(t, err)
		return query.Find(dest)
	})
}
