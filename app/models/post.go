package models

import (
	"fmt"
	"time"

	"restable/core/app/search"
	"restable/core/restable"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Post represents a post entity
type Post struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Title       string         `json:"title"`
	Slug        string         `json:"slug" gorm:"size:255;uniqueIndex"`
	Content     string         `json:"content"`
	Excerpt     string         `json:"excerpt"`
	AuthorId    uint           `json:"author_id"`
	Status      string         `json:"status" gorm:"size:32;index"`
	Category    string         `json:"category"`
	Published   bool           `json:"published"`
	Featured    bool           `json:"featured"`
	ViewCount   int            `json:"view_count"`
	PublishedAt *time.Time     `json:"published_at"`
}

// TableName returns the table name for the Post model
func (m *Post) TableName() string {
	return "posts"
}

// GetId returns the Id of the model
func (m *Post) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Post) GetModelName() string {
	return "post"
}

// Searchables are the columns ?search= runs against
func (m *Post) Searchables() []restable.Searchable {
	return []restable.Searchable{
		restable.Like("title"),
		restable.Like("excerpt"),
		restable.Like("content"),
		restable.Prefix("slug"),
	}
}

// CollectMatches maps ?status=, ?category=, ?author_id=, ?published= and ?featured=
func (m *Post) CollectMatches(req restable.Request, model restable.Restable) restable.Matcher {
	return restable.Matches{
		restable.Text("status"),
		restable.Text("category"),
		restable.Int("author_id"),
		restable.Bool("published"),
		restable.Bool("featured"),
	}
}

// RestableQuery lists the newest posts first
func (m *Post) RestableQuery(query *gorm.DB) *gorm.DB {
	return query.Order(clause.OrderByColumn{
		Column: clause.Column{Table: clause.CurrentTable, Name: "id"},
		Desc:   true,
	})
}

func (m *Post) PerPage() int {
	return restable.DefaultPerPage
}

// Sortables are the columns accepted by ?sort=
func (m *Post) Sortables() []string {
	return []string{"id", "created_at", "updated_at", "title", "status", "category", "view_count", "published_at"}
}

// ToSearchResult converts the post for the global search
func (m *Post) ToSearchResult() search.SearchResult {
	return search.SearchResult{
		Id:          m.Id,
		Type:        "post",
		Title:       m.Title,
		Subtitle:    m.Category,
		Description: m.Excerpt,
		URL:         fmt.Sprintf("/app/posts/%d", m.Id),
		Metadata:    m.ToListResponse(),
	}
}

// CreatePostRequest represents the request payload for creating a Post
type CreatePostRequest struct {
	Title     string `json:"title" validate:"required,max=255"`
	Slug      string `json:"slug" validate:"omitempty,max=255"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt" validate:"max=500"`
	AuthorId  uint   `json:"author_id"`
	Status    string `json:"status" validate:"omitempty,oneof=draft active archived"`
	Category  string `json:"category"`
	Published bool   `json:"published"`
	Featured  bool   `json:"featured"`
}

// PostResponse represents the API response for Post
type PostResponse struct {
	Id          uint       `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	AuthorId    uint       `json:"author_id"`
	Status      string     `json:"status"`
	Category    string     `json:"category"`
	Published   bool       `json:"published"`
	Featured    bool       `json:"featured"`
	ViewCount   int        `json:"view_count"`
	PublishedAt *time.Time `json:"published_at"`
}

// PostListResponse represents the response for list operations (no content body)
type PostListResponse struct {
	Id          uint       `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	AuthorId    uint       `json:"author_id"`
	Status      string     `json:"status"`
	Category    string     `json:"category"`
	Published   bool       `json:"published"`
	Featured    bool       `json:"featured"`
	ViewCount   int        `json:"view_count"`
	PublishedAt *time.Time `json:"published_at"`
}

// ToResponse converts the model to an API response
func (m *Post) ToResponse() *PostResponse {
	if m == nil {
		return nil
	}
	return &PostResponse{
		Id:          m.Id,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Title:       m.Title,
		Slug:        m.Slug,
		Content:     m.Content,
		Excerpt:     m.Excerpt,
		AuthorId:    m.AuthorId,
		Status:      m.Status,
		Category:    m.Category,
		Published:   m.Published,
		Featured:    m.Featured,
		ViewCount:   m.ViewCount,
		PublishedAt: m.PublishedAt,
	}
}

// ToListResponse converts the model to a list response
func (m *Post) ToListResponse() *PostListResponse {
	if m == nil {
		return nil
	}
	return &PostListResponse{
		Id:          m.Id,
		CreatedAt:   m.CreatedAt,
		Title:       m.Title,
		Slug:        m.Slug,
		Excerpt:     m.Excerpt,
		AuthorId:    m.AuthorId,
		Status:      m.Status,
		Category:    m.Category,
		Published:   m.Published,
		Featured:    m.Featured,
		ViewCount:   m.ViewCount,
		PublishedAt: m.PublishedAt,
	}
}
