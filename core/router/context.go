package router

import (
	"encoding/json"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
)

// ResponseWriter records the status code written to the client
type ResponseWriter interface {
	http.ResponseWriter
	Status() int
	Written() bool
}

type responseWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func (w *responseWriter) WriteHeader(code int) {
	if w.written {
		return
	}
	w.status = code
	w.written = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.written {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) Status() int   { return w.status }
func (w *responseWriter) Written() bool { return w.written }

// Context carries the request and response of a single HTTP call
type Context struct {
	Writer  ResponseWriter
	Request *http.Request

	query url.Values
	keys  map[string]any
}

func newContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{
		Writer:  &responseWriter{ResponseWriter: w, status: http.StatusOK},
		Request: r,
	}
}

// Param returns a path parameter
func (c *Context) Param(key string) string {
	return mux.Vars(c.Request)[key]
}

// Query returns a query string value or "" when it is missing
func (c *Context) Query(key string) string {
	return c.queryValues().Get(key)
}

// Input reports whether the query string carries key, and its value
func (c *Context) Input(key string) (string, bool) {
	values, ok := c.queryValues()[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// QueryValues returns the parsed query string
func (c *Context) QueryValues() url.Values {
	return c.queryValues()
}

func (c *Context) queryValues() url.Values {
	if c.query == nil {
		c.query = c.Request.URL.Query()
	}
	return c.query
}

func (c *Context) Set(key string, value any) {
	if c.keys == nil {
		c.keys = make(map[string]any)
	}
	c.keys[key] = value
}

func (c *Context) Get(key string) (any, bool) {
	value, ok := c.keys[key]
	return value, ok
}

// ShouldBindJSON decodes the request body into obj
func (c *Context) ShouldBindJSON(obj any) error {
	if c.Request.Body == nil {
		return errEmptyBody
	}
	return json.NewDecoder(c.Request.Body).Decode(obj)
}

// JSON writes obj with the given status code
func (c *Context) JSON(code int, obj any) error {
	c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.Writer.WriteHeader(code)
	return json.NewEncoder(c.Writer).Encode(obj)
}

func (c *Context) Redirect(code int, location string) error {
	http.Redirect(c.Writer, c.Request, location, code)
	return nil
}

// ClientIP prefers X-Forwarded-For over the remote address
func (c *Context) ClientIP() string {
	if forwarded := c.Request.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
