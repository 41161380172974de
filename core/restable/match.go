package restable

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchType tells how a match value is parsed
type MatchType int

const (
	TypeText MatchType = iota
	TypeInt
	TypeBool
)

func (t MatchType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	default:
		return "text"
	}
}

// Match is an exact filter driven by one request key.
//
//	?status=active        status = 'active'
//	?status=active,draft  status IN ('active','draft')
//	?-status=draft        status <> 'draft'
type Match struct {
	Key    string
	Column string
	Type   MatchType
}

// Text matches key against the column of the same name
func Text(key string) Match { return Match{Key: key, Type: TypeText} }

// Int matches key as an integer
func Int(key string) Match { return Match{Key: key, Type: TypeInt} }

// Bool matches key as a boolean
func Bool(key string) Match { return Match{Key: key, Type: TypeBool} }

// On sets the column the match is applied to
func (m Match) On(column string) Match {
	m.Column = column
	return m
}

func (m Match) column() string {
	if m.Column != "" {
		return m.Column
	}
	return m.Key
}

// Apply adds the constraint when the request carries the key or its negation
func (m Match) Apply(req Request, query *gorm.DB) *gorm.DB {
	if raw, ok := req.Input(m.Key); ok && raw != "" {
		query = m.where(query, raw, false)
	}
	if raw, ok := req.Input("-" + m.Key); ok && raw != "" {
		query = m.where(query, raw, true)
	}
	return query
}

func (m Match) where(query *gorm.DB, raw string, negate bool) *gorm.DB {
	var values []any
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := m.parse(part)
		if err != nil {
			_ = query.AddError(fmt.Errorf("restable: invalid %s value %q for %s: %w", m.Type, part, m.Key, err))
			return query
		}
		values = append(values, value)
	}

	column := clause.Column{Table: clause.CurrentTable, Name: m.column()}
	switch {
	case len(values) == 0:
		return query
	case len(values) == 1 && negate:
		return query.Where(clause.Neq{Column: column, Value: values[0]})
	case len(values) == 1:
		return query.Where(clause.Eq{Column: column, Value: values[0]})
	case negate:
		return query.Where(clause.Not(clause.IN{Column: column, Values: values}))
	default:
		return query.Where(clause.IN{Column: column, Values: values})
	}
}

func (m Match) parse(raw string) (any, error) {
	switch m.Type {
	case TypeInt:
		return strconv.ParseInt(raw, 10, 64)
	case TypeBool:
		return strconv.ParseBool(raw)
	default:
		return raw, nil
	}
}

// Matches applies every match in order
type Matches []Match

func (ms Matches) Apply(req Request, query *gorm.DB) *gorm.DB {
	for _, m := range ms {
		query = m.Apply(req, query)
	}
	return query
}

// NoMatches is the Matcher of models without exact filters
var NoMatches Matcher = Matches(nil)
