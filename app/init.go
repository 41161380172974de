package app

import (
	"restable/app/employees"
	"restable/app/models"
	"restable/app/posts"
	"restable/core/app/search"
	"restable/core/module"
)

// AppModules implements module.AppModuleProvider interface
type AppModules struct{}

// GetAppModules returns the list of app modules to initialize.
// Add new application modules here.
func (am *AppModules) GetAppModules(deps module.Dependencies) map[string]module.Module {
	modules := make(map[string]module.Module)

	modules["posts"] = posts.Init(deps)
	modules["employees"] = employees.Init(deps)

	return modules
}

// NewAppModules creates a new app modules provider
func NewAppModules() *AppModules {
	return &AppModules{}
}

// GetSearchRegistry returns the models available to the global search
func GetSearchRegistry() *search.SearchRegistry {
	registry := search.NewSearchRegistry()

	registry.Register(&models.Post{})
	registry.Register(&models.Employee{})

	return registry
}
