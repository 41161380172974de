package router

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

var errEmptyBody = errors.New("request body is empty")

// HandlerFunc handles a request and returns an error it could not answer itself
type HandlerFunc func(*Context) error

// MiddlewareFunc wraps a HandlerFunc
type MiddlewareFunc func(HandlerFunc) HandlerFunc

// Router dispatches requests through gorilla/mux
type Router struct {
	mux        *mux.Router
	middleware []MiddlewareFunc
	wrappers   []func(http.Handler) http.Handler
	notFound   HandlerFunc
}

// New creates a router
func New() *Router {
	r := &Router{mux: mux.NewRouter()}
	r.mux.NotFoundHandler = http.HandlerFunc(r.serveNotFound)
	return r
}

// Use adds middleware that runs for every route, including routes registered earlier
func (r *Router) Use(middleware ...MiddlewareFunc) {
	r.middleware = append(r.middleware, middleware...)
}

// Wrap adds a plain net/http middleware around the whole router
func (r *Router) Wrap(wrapper func(http.Handler) http.Handler) {
	r.wrappers = append(r.wrappers, wrapper)
}

// Group creates a route group below prefix
func (r *Router) Group(prefix string) *RouterGroup {
	return &RouterGroup{router: r, prefix: prefix}
}

func (r *Router) GET(path string, handler HandlerFunc)    { r.handle(http.MethodGet, path, handler, nil) }
func (r *Router) POST(path string, handler HandlerFunc)   { r.handle(http.MethodPost, path, handler, nil) }
func (r *Router) PUT(path string, handler HandlerFunc)    { r.handle(http.MethodPut, path, handler, nil) }
func (r *Router) DELETE(path string, handler HandlerFunc) { r.handle(http.MethodDelete, path, handler, nil) }

// NotFound sets the handler for unmatched routes
func (r *Router) NotFound(handler HandlerFunc) {
	r.notFound = handler
}

// Handler returns the router wrapped in every registered net/http middleware
func (r *Router) Handler() http.Handler {
	var handler http.Handler = r.mux
	for i := len(r.wrappers) - 1; i >= 0; i-- {
		handler = r.wrappers[i](handler)
	}
	return handler
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.Handler().ServeHTTP(w, req)
}

// Run starts the HTTP server on addr
func (r *Router) Run(addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}
	return server.ListenAndServe()
}

func (r *Router) handle(method, path string, handler HandlerFunc, group *RouterGroup) {
	r.mux.HandleFunc(muxPath(path), func(w http.ResponseWriter, req *http.Request) {
		r.dispatch(newContext(w, req), handler, group)
	}).Methods(method)
}

func (r *Router) dispatch(c *Context, handler HandlerFunc, group *RouterGroup) {
	chain := append([]MiddlewareFunc{}, r.middleware...)
	if group != nil {
		chain = append(chain, group.chain()...)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		handler = chain[i](handler)
	}

	if err := handler(c); err != nil && !c.Writer.Written() {
		_ = c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
	}
}

func (r *Router) serveNotFound(w http.ResponseWriter, req *http.Request) {
	handler := r.notFound
	if handler == nil {
		handler = func(c *Context) error {
			return c.JSON(http.StatusNotFound, map[string]any{"error": "Not found"})
		}
	}
	r.dispatch(newContext(w, req), handler, nil)
}

// muxPath converts ":id" and "*path" segments into gorilla/mux variables
func muxPath(path string) string {
	if path == "" {
		return "/"
	}
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		switch {
		case strings.HasPrefix(segment, ":"):
			segments[i] = "{" + segment[1:] + "}"
		case strings.HasPrefix(segment, "*"):
			segments[i] = "{" + segment[1:] + ":.*}"
		}
	}
	return strings.Join(segments, "/")
}

// RouterGroup registers routes below a common prefix and middleware
type RouterGroup struct {
	router     *Router
	parent     *RouterGroup
	prefix     string
	middleware []MiddlewareFunc
}

// Group creates a nested group
func (g *RouterGroup) Group(prefix string) *RouterGroup {
	return &RouterGroup{router: g.router, parent: g, prefix: g.prefix + prefix}
}

// Use adds middleware for the routes of this group
func (g *RouterGroup) Use(middleware ...MiddlewareFunc) {
	g.middleware = append(g.middleware, middleware...)
}

func (g *RouterGroup) GET(path string, handler HandlerFunc)    { g.handle(http.MethodGet, path, handler) }
func (g *RouterGroup) POST(path string, handler HandlerFunc)   { g.handle(http.MethodPost, path, handler) }
func (g *RouterGroup) PUT(path string, handler HandlerFunc)    { g.handle(http.MethodPut, path, handler) }
func (g *RouterGroup) DELETE(path string, handler HandlerFunc) { g.handle(http.MethodDelete, path, handler) }

func (g *RouterGroup) handle(method, path string, handler HandlerFunc) {
	g.router.handle(method, g.prefix+path, handler, g)
}

func (g *RouterGroup) chain() []MiddlewareFunc {
	var chain []MiddlewareFunc
	if g.parent != nil {
		chain = append(chain, g.parent.chain()...)
	}
	return append(chain, g.middleware...)
}
