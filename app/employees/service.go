package employees

import (
	"restable/app/models"
	"restable/core/logger"
	"restable/core/restable"
	"restable/core/types"

	"gorm.io/gorm"
)

type EmployeeService struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewEmployeeService(db *gorm.DB, logger logger.Logger) *EmployeeService {
	return &EmployeeService{
		DB:     db,
		Logger: logger,
	}
}

// GetAll lists employees. Only non-deleted users are visible because the
// builder is scoped to the Employee model before the request is applied.
func (s *EmployeeService) GetAll(req restable.Request) (*types.PaginatedResponse, error) {
	search, err := restable.New(req, s.DB.Model(&models.Employee{}))
	if err != nil {
		s.Logger.Error("employee model is not restable", logger.String("error", err.Error()))
		return nil, err
	}

	var items []*models.Employee
	result, err := search.Paginate(&items)
	if err != nil {
		s.Logger.Error("failed to list employees",
			logger.String("error", err.Error()))
		return nil, err
	}

	responses := make([]*models.EmployeeListResponse, len(items))
	for i, item := range items {
		responses[i] = item.ToListResponse()
	}
	result.Data = responses

	return result, nil
}

// GetAllForSelect returns id and display name of the matching employees
func (s *EmployeeService) GetAllForSelect(req restable.Request) ([]*EmployeeSelectOption, error) {
	query, err := restable.Query(req, s.DB.Model(&models.Employee{}).
		Select("id, first_name, last_name, username, email"))
	if err != nil {
		return nil, err
	}

	var items []*models.Employee
	if err := query.Find(&items).Error; err != nil {
		s.Logger.Error("Failed to fetch items for select", logger.String("error", err.Error()))
		return nil, err
	}

	options := make([]*EmployeeSelectOption, len(items))
	for i, item := range items {
		options[i] = &EmployeeSelectOption{Id: item.Id, Name: item.DisplayName()}
	}
	return options, nil
}

// EmployeeSelectOption represents a simplified response for select boxes and dropdowns
type EmployeeSelectOption struct {
	Id   uint   `json:"id"`
	Name string `json:"name"`
}
