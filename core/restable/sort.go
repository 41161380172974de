package restable

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// applySort orders query by the whitelisted columns of the sort parameter.
// "-created_at,title" sorts by created_at descending then title ascending.
// Columns outside the whitelist are ignored.
func applySort(req Request, query *gorm.DB, sortable Sortable) *gorm.DB {
	raw, ok := req.Input(ParamSort)
	if !ok || raw == "" {
		return query
	}

	allowed := make(map[string]struct{})
	for _, column := range sortable.Sortables() {
		allowed[column] = struct{}{}
	}

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		name := strings.TrimLeft(part, "-+")
		if _, ok := allowed[name]; !ok {
			continue
		}
		query = query.Order(clause.OrderByColumn{
			Column: clause.Column{Table: clause.CurrentTable, Name: name},
			Desc:   desc,
		})
	}
	return query
}
