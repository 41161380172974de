package restable

import (
	"net/http"
	"net/url"
)

// Request exposes the inbound parameters by key
type Request interface {
	Input(key string) (string, bool)
}

// Values adapts url.Values. The first value of a key wins.
type Values url.Values

func (v Values) Input(key string) (string, bool) {
	values, ok := v[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// FromHTTP reads parameters from the query string of r
func FromHTTP(r *http.Request) Request {
	return Values(r.URL.Query())
}

// Map is a Request built in code
type Map map[string]string

func (m Map) Input(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}
