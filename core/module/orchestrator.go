package module

// CoreModuleProvider supplies framework modules such as global search
type CoreModuleProvider interface {
	GetCoreModules(deps Dependencies) map[string]Module
}

// AppModuleProvider supplies the application modules from app/init.go
type AppModuleProvider interface {
	GetAppModules(deps Dependencies) map[string]Module
}

// CoreOrchestrator initializes the core modules
type CoreOrchestrator struct {
	initializer *Initializer
	provider    CoreModuleProvider
}

func NewCoreOrchestrator(initializer *Initializer, provider CoreModuleProvider) *CoreOrchestrator {
	return &CoreOrchestrator{initializer: initializer, provider: provider}
}

func (co *CoreOrchestrator) InitializeCoreModules(deps Dependencies) ([]Module, error) {
	return initializeAll(co.initializer, co.provider.GetCoreModules(deps), deps), nil
}

// AppOrchestrator initializes the application modules
type AppOrchestrator struct {
	initializer *Initializer
	provider    AppModuleProvider
}

func NewAppOrchestrator(initializer *Initializer, provider AppModuleProvider) *AppOrchestrator {
	return &AppOrchestrator{initializer: initializer, provider: provider}
}

func (ao *AppOrchestrator) InitializeAppModules(deps Dependencies) ([]Module, error) {
	return initializeAll(ao.initializer, ao.provider.GetAppModules(deps), deps), nil
}

func initializeAll(initializer *Initializer, modules map[string]Module, deps Dependencies) []Module {
	if len(modules) == 0 {
		return []Module{}
	}
	return initializer.Initialize(modules, deps)
}
