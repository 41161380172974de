package module

import (
	"fmt"
	"sync"

	"restable/core/config"
	"restable/core/logger"
	"restable/core/router"

	"gorm.io/gorm"
)

// Module is the unit the application is assembled from. Modules may also
// implement Init() error, Migrate() error and Routes(*router.RouterGroup).
type Module interface {
	GetModels() []any
}

// DefaultModule gives modules an empty model list
type DefaultModule struct{}

func (DefaultModule) GetModels() []any { return nil }

// Dependencies are handed to every module on creation
type Dependencies struct {
	DB     *gorm.DB
	Router *router.RouterGroup
	Logger logger.Logger
	Config *config.Config
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Module)
)

// RegisterModule records a module under name
func RegisterModule(name string, mod Module) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		return fmt.Errorf("module %s already registered", name)
	}
	registry[name] = mod
	return nil
}

// GetModule returns a registered module
func GetModule(name string) (Module, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	mod, ok := registry[name]
	return mod, ok
}

// Reset clears the module registry
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()

	registry = make(map[string]Module)
}

// Initializer registers, initializes, migrates and routes modules
type Initializer struct {
	logger logger.Logger
}

// NewInitializer creates a new module initializer
func NewInitializer(logger logger.Logger) *Initializer {
	return &Initializer{logger: logger}
}

// Initialize sets up every module and returns the ones that succeeded
func (i *Initializer) Initialize(modules map[string]Module, deps Dependencies) []Module {
	var initialized []Module

	for name, mod := range modules {
		if err := i.initialize(name, mod, deps); err != nil {
			i.logger.Error("Failed to initialize module",
				logger.String("module", name),
				logger.String("error", err.Error()))
			continue
		}
		initialized = append(initialized, mod)
	}

	return initialized
}

func (i *Initializer) initialize(name string, mod Module, deps Dependencies) error {
	if err := RegisterModule(name, mod); err != nil {
		return err
	}

	if initModule, ok := mod.(interface{ Init() error }); ok {
		if err := initModule.Init(); err != nil {
			return fmt.Errorf("init: %w", err)
		}
	}

	if migrator, ok := mod.(interface{ Migrate() error }); ok {
		if err := migrator.Migrate(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	if routeModule, ok := mod.(interface{ Routes(*router.RouterGroup) }); ok && deps.Router != nil {
		routeModule.Routes(deps.Router)
	}

	return nil
}
