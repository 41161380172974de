package employees

import (
	"errors"
	"net/http"

	"restable/core/restable"
	"restable/core/router"
	"restable/core/types"
)

type EmployeeController struct {
	Service *EmployeeService
}

func NewEmployeeController(service *EmployeeService) *EmployeeController {
	return &EmployeeController{
		Service: service,
	}
}

func (c *EmployeeController) Routes(router *router.RouterGroup) {
	employeeGroup := router.Group("/employees")

	// /all MUST be registered before any parameterized route
	employeeGroup.GET("", c.List)
	employeeGroup.GET("/all", c.ListAll)
}

// List returns employees shaped by the request. Match keys are role_id, role
// and active.
func (c *EmployeeController) List(ctx *router.Context) error {
	paginatedResponse, err := c.Service.GetAll(ctx)
	if errors.Is(err, restable.ErrTypeMismatch) {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Failed to fetch items: " + err.Error()})
	}

	return ctx.JSON(http.StatusOK, paginatedResponse)
}

// ListAll returns id and name of every matching employee for select boxes
func (c *EmployeeController) ListAll(ctx *router.Context) error {
	items, err := c.Service.GetAllForSelect(ctx)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Failed to fetch select options: " + err.Error()})
	}

	return ctx.JSON(http.StatusOK, items)
}
