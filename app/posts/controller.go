package posts

import (
	"errors"
	"net/http"
	"strconv"

	"restable/app/models"
	"restable/core/router"
	"restable/core/types"

	"gorm.io/gorm"
)

type PostController struct {
	Service *PostService
}

func NewPostController(service *PostService) *PostController {
	return &PostController{
		Service: service,
	}
}

func (c *PostController) Routes(router *router.RouterGroup) {
	router.GET("/posts", c.List)
	router.POST("/posts", c.Create)
	router.GET("/posts/:id", c.Get)
}

// Create validates the JSON body and stores a new post. Validation failures
// answer 400.
func (c *PostController) Create(ctx *router.Context) error {
	var req models.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}

	item, err := c.Service.Create(&req)
	if errors.Is(err, ErrInvalidPost) {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to create item: " + err.Error()})
	}

	return ctx.JSON(http.StatusCreated, item.ToResponse())
}

// Get returns one post, 404 when it does not exist
func (c *PostController) Get(ctx *router.Context) error {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid id format"})
	}

	item, err := c.Service.GetById(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ctx.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Item not found"})
	}
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch item: " + err.Error()})
	}

	return ctx.JSON(http.StatusOK, item.ToResponse())
}

// List returns posts shaped by the request: search, perPage, page, sort and
// the match keys status, category, author_id, published and featured.
// A match value that does not parse answers 400.
func (c *PostController) List(ctx *router.Context) error {
	paginatedResponse, err := c.Service.GetAll(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Failed to fetch items: " + err.Error()})
	}

	return ctx.JSON(http.StatusOK, paginatedResponse)
}
