package app

import (
	"restable/core/app/search"
	"restable/core/module"
)

// CoreModules implements module.CoreModuleProvider interface
type CoreModules struct {
	SearchRegistry *search.SearchRegistry
}

// GetCoreModules returns the list of core modules to initialize
func (cm *CoreModules) GetCoreModules(deps module.Dependencies) map[string]module.Module {
	modules := make(map[string]module.Module)

	// nil registry gives an empty search
	modules["search"] = search.Init(deps, cm.SearchRegistry)

	return modules
}

// NewCoreModules creates a new core modules provider
func NewCoreModules(searchRegistry *search.SearchRegistry) *CoreModules {
	return &CoreModules{
		SearchRegistry: searchRegistry,
	}
}
