package search

import (
	"restable/core/module"
	"restable/core/router"
)

type Module struct {
	module.DefaultModule
	Service    *SearchService
	Controller *SearchController
	Registry   *SearchRegistry
}

// Init creates the search module. Pass the registry built in app/init.go;
// nil gives an empty registry.
func Init(deps module.Dependencies, registry *SearchRegistry) module.Module {
	if registry == nil {
		registry = NewSearchRegistry()
	}

	service := NewSearchService(deps.DB, deps.Logger, registry)

	return &Module{
		Service:    service,
		Controller: NewSearchController(service),
		Registry:   registry,
	}
}

// Routes registers the module routes
func (m *Module) Routes(router *router.RouterGroup) {
	m.Controller.Routes(router)
}
