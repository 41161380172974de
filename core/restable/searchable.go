package restable

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Searchable is one field taking part in the free-text search
type Searchable interface {
	// Column is the Go field name or the column name of the field
	Column() string

	// Condition builds the constraint for column and the search text
	Condition(column clause.Column, search string) clause.Expression
}

type likeSearchable struct {
	column string
	prefix bool
}

func (s likeSearchable) Column() string { return s.column }

func (s likeSearchable) Condition(column clause.Column, search string) clause.Expression {
	if s.prefix {
		return clause.Like{Column: column, Value: search + "%"}
	}
	return clause.Like{Column: column, Value: "%" + search + "%"}
}

type exactSearchable struct {
	column string
}

func (s exactSearchable) Column() string { return s.column }

func (s exactSearchable) Condition(column clause.Column, search string) clause.Expression {
	return clause.Eq{Column: column, Value: search}
}

// Like matches rows where column contains the search text
func Like(column string) Searchable {
	return likeSearchable{column: column}
}

// Prefix matches rows where column starts with the search text
func Prefix(column string) Searchable {
	return likeSearchable{column: column, prefix: true}
}

// Exact matches rows where column equals the search text
func Exact(column string) Searchable {
	return exactSearchable{column: column}
}

// Fields declares Like searchables for each column
func Fields(columns ...string) []Searchable {
	searchables := make([]Searchable, len(columns))
	for i, column := range columns {
		searchables[i] = Like(column)
	}
	return searchables
}

// SearchableCollection is the ordered set of searchables declared by a model
type SearchableCollection []Searchable

// Searchables makes a collection
func Searchables(searchables ...Searchable) SearchableCollection {
	return SearchableCollection(searchables)
}

// MapIntoFilter binds the collection to the model its columns belong to
func (c SearchableCollection) MapIntoFilter(model any) *SearchFilter {
	return &SearchFilter{model: model, searchables: c}
}

// SearchFilter is a SearchableCollection bound to a model
type SearchFilter struct {
	model       any
	searchables SearchableCollection
}

// Conditions resolves each searchable against the model schema and returns
// one condition per field. Unknown fields are recorded on query.
func (f *SearchFilter) Conditions(req Request, query *gorm.DB, search string) []clause.Expression {
	if len(f.searchables) == 0 {
		return nil
	}

	stmt := query.Statement
	if err := stmt.Parse(f.model); err != nil {
		_ = query.AddError(err)
		return nil
	}

	conditions := make([]clause.Expression, 0, len(f.searchables))
	for _, searchable := range f.searchables {
		field := stmt.Schema.LookUpField(searchable.Column())
		if field == nil || field.DBName == "" {
			_ = query.AddError(fmt.Errorf("%w: %s on %s", ErrUnknownSearchable, searchable.Column(), stmt.Schema.Name))
			continue
		}
		column := clause.Column{Table: clause.CurrentTable, Name: field.DBName}
		conditions = append(conditions, searchable.Condition(column, search))
	}
	return conditions
}

// Apply adds the search conditions to query as a single OR group
func (f *SearchFilter) Apply(req Request, query *gorm.DB, search string) *gorm.DB {
	conditions := f.Conditions(req, query, search)
	if len(conditions) == 0 {
		return query
	}
	return query.Where(orGroup{exprs: conditions})
}

// orGroup renders its expressions joined by OR inside one pair of parentheses
type orGroup struct {
	exprs []clause.Expression
}

func (g orGroup) Build(builder clause.Builder) {
	builder.WriteByte('(')
	for i, expr := range g.exprs {
		if i > 0 {
			builder.WriteString(" OR ")
		}
		expr.Build(builder)
	}
	builder.WriteByte(')')
}
