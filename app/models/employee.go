package models

import (
	"fmt"
	"time"

	"restable/core/app/search"
	"restable/core/restable"

	"gorm.io/gorm"
)

// Employee represents a employee entity
type Employee struct {
	Id        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	FirstName string         `json:"first_name"`
	LastName  string         `json:"last_name"`
	Username  string         `json:"username" gorm:"size:255;unique;not null"`
	Phone     string         `json:"phone" gorm:"size:255"`
	Email     string         `json:"email" gorm:"size:255;unique;not null"`
	RoleId    uint           `json:"role_id"`
	Active    bool           `json:"active"`
}

// TableName returns the table name for the Employee model
func (m *Employee) TableName() string {
	return "users"
}

// GetId returns the Id of the model
func (m *Employee) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Employee) GetModelName() string {
	return "employee"
}

func (m *Employee) Searchables() []restable.Searchable {
	return restable.Fields("first_name", "last_name", "email", "username")
}

func (m *Employee) CollectMatches(req restable.Request, model restable.Restable) restable.Matcher {
	return restable.Matches{
		restable.Int("role_id"),
		restable.Int("role").On("role_id"),
		restable.Bool("active"),
	}
}

// RestableQuery sorts employees by name
func (m *Employee) RestableQuery(query *gorm.DB) *gorm.DB {
	return query.Order("first_name ASC").Order("last_name ASC")
}

func (m *Employee) PerPage() int {
	return 25
}

func (m *Employee) Sortables() []string {
	return []string{"id", "created_at", "first_name", "last_name", "username", "email"}
}

// ToSearchResult converts the employee for the global search
func (m *Employee) ToSearchResult() search.SearchResult {
	return search.SearchResult{
		Id:          m.Id,
		Type:        "employee",
		Title:       m.DisplayName(),
		Subtitle:    m.Email,
		Description: "Username: " + m.Username,
		URL:         fmt.Sprintf("/app/employees/%d", m.Id),
		Metadata:    m.ToListResponse(),
	}
}

// DisplayName builds the name shown in lists with proper fallbacks
func (m *Employee) DisplayName() string {
	switch {
	case m.FirstName != "" && m.LastName != "":
		return m.FirstName + " " + m.LastName
	case m.FirstName != "":
		return m.FirstName
	case m.LastName != "":
		return m.LastName
	case m.Username != "":
		return m.Username
	case m.Email != "":
		return m.Email
	default:
		return fmt.Sprintf("Employee #%d", m.Id)
	}
}

// EmployeeListResponse represents the response for list operations
type EmployeeListResponse struct {
	Id        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	RoleId    uint      `json:"role_id"`
	Active    bool      `json:"active"`
}

// ToListResponse converts the model to a list response
func (m *Employee) ToListResponse() *EmployeeListResponse {
	if m == nil {
		return nil
	}
	return &EmployeeListResponse{
		Id:        m.Id,
		CreatedAt: m.CreatedAt,
		Name:      m.DisplayName(),
		Username:  m.Username,
		Phone:     m.Phone,
		Email:     m.Email,
		RoleId:    m.RoleId,
		Active:    m.Active,
	}
}
