package employees

import (
	"restable/app/models"
	"restable/core/module"
	"restable/core/router"

	"gorm.io/gorm"
)

type Module struct {
	module.DefaultModule
	DB         *gorm.DB
	Service    *EmployeeService
	Controller *EmployeeController
}

// Init creates and initializes the Employee module with all dependencies
func Init(deps module.Dependencies) module.Module {
	service := NewEmployeeService(deps.DB, deps.Logger)

	return &Module{
		DB:         deps.DB,
		Service:    service,
		Controller: NewEmployeeController(service),
	}
}

func (m *Module) Routes(router *router.RouterGroup) {
	m.Controller.Routes(router)
}

func (m *Module) Migrate() error {
	return m.DB.AutoMigrate(&models.Employee{})
}

func (m *Module) GetModels() []any {
	return []any{&models.Employee{}}
}
