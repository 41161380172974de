package search

import (
	"net/http"
	"time"

	"restable/core/router"
	"restable/core/types"

	"github.com/gorilla/schema"
)

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

type SearchController struct {
	Service *SearchService
}

func NewSearchController(service *SearchService) *SearchController {
	return &SearchController{
		Service: service,
	}
}

func (c *SearchController) Routes(router *router.RouterGroup) {
	router.GET("/search", c.Search)
}

// Search runs the global search. search is required and at least 2
// characters; modules narrows the registered modules and limit caps the
// results per module.
func (c *SearchController) Search(ctx *router.Context) error {
	startTime := time.Now()

	var req SearchRequest
	if err := decoder.Decode(&req, ctx.QueryValues()); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid search parameters: " + err.Error()})
	}
	if req.Search == "" {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Search query (search) is required"})
	}
	if len([]rune(req.Search)) < 2 {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Search query must be at least 2 characters"})
	}

	response, err := c.Service.GlobalSearch(ctx, req.Modules, req.Limit)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Search failed: " + err.Error()})
	}

	response.Duration = time.Since(startTime).String()

	return ctx.JSON(http.StatusOK, response)
}
