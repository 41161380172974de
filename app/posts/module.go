package posts

import (
	"restable/app/models"
	"restable/core/module"
	"restable/core/router"

	"gorm.io/gorm"
)

type Module struct {
	module.DefaultModule
	DB         *gorm.DB
	Service    *PostService
	Controller *PostController
}

// Init creates and initializes the Post module with all dependencies
func Init(deps module.Dependencies) module.Module {
	service := NewPostService(deps.DB, deps.Logger)

	return &Module{
		DB:         deps.DB,
		Service:    service,
		Controller: NewPostController(service),
	}
}

// Routes registers the module routes
func (m *Module) Routes(router *router.RouterGroup) {
	m.Controller.Routes(router)
}

func (m *Module) Migrate() error {
	return m.DB.AutoMigrate(&models.Post{})
}

func (m *Module) GetModels() []any {
	return []any{
		&models.Post{},
	}
}
