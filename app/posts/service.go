package posts

import (
	"errors"
	"fmt"
	"time"

	"restable/app/models"
	"restable/core/logger"
	"restable/core/restable"
	"restable/core/types"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// ErrInvalidPost wraps validation failures of a create request
var ErrInvalidPost = errors.New("invalid post")

type PostService struct {
	DB       *gorm.DB
	Logger   logger.Logger
	validate *validator.Validate
}

func NewPostService(db *gorm.DB, logger logger.Logger) *PostService {
	return &PostService{
		DB:       db,
		Logger:   logger,
		validate: validator.New(),
	}
}

// GetAll lists posts filtered, searched, sorted and paginated by the request
func (s *PostService) GetAll(req restable.Request) (*types.PaginatedResponse, error) {
	search := restable.For[models.Post](req, s.DB)

	var items []*models.Post
	result, err := search.Paginate(&items)
	if err != nil {
		s.Logger.Error("failed to list posts",
			logger.String("error", err.Error()))
		return nil, err
	}

	responses := make([]*models.PostListResponse, len(items))
	for i, item := range items {
		responses[i] = item.ToListResponse()
	}
	result.Data = responses

	return result, nil
}

func (s *PostService) GetById(id uint) (*models.Post, error) {
	item := &models.Post{}
	if err := s.DB.First(item, id).Error; err != nil {
		s.Logger.Error("failed to get post",
			logger.String("error", err.Error()),
			logger.Uint("id", id))
		return nil, err
	}

	return item, nil
}

func (s *PostService) Create(req *models.CreatePostRequest) (*models.Post, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPost, err.Error())
	}

	item := &models.Post{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		AuthorId:  req.AuthorId,
		Status:    req.Status,
		Category:  req.Category,
		Published: req.Published,
		Featured:  req.Featured,
	}
	if item.Slug == "" {
		item.Slug = slug.Make(req.Title)
	} else {
		item.Slug = slug.Make(item.Slug)
	}
	if item.Status == "" {
		item.Status = "draft"
	}
	if item.Published {
		now := time.Now()
		item.PublishedAt = &now
	}

	if err := s.DB.Create(item).Error; err != nil {
		s.Logger.Error("failed to create post", logger.String("error", err.Error()))
		return nil, err
	}

	return s.GetById(item.Id)
}
