package service

import (
	"context"

	"escala-equipe/internal/domain"
	"escala-equipe/internal/store"
)

// EmployeeService manages the roster. Adding an employee creates a fully
// pre-filled schedule row for the active month; changing a default shift
// code back-fills the unset days of the active month.
type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int) (*domain.Employee, error)
	Add(ctx context.Context, input domain.CreateEmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, employee domain.Employee) (*domain.Employee, error)
	SetActive(ctx context.Context, id int, active bool) (*domain.Employee, error)
	SetDefaultShift(ctx context.Context, id int, code string) (*domain.Employee, error)
}

type employeeService struct {
	employees store.EmployeeStore
	schedule  store.ScheduleStore
	catalog   store.CatalogStore
}

func NewEmployeeService(employees store.EmployeeStore, schedule store.ScheduleStore, catalog store.CatalogStore) EmployeeService {
	return &employeeService{employees: employees, schedule: schedule, catalog: catalog}
}

func (s *employeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

func (s *employeeService) GetByID(ctx context.Context, id int) (*domain.Employee, error) {
	employee, err := s.employees.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return employee, nil
}

func (s *employeeService) Add(ctx context.Context, input domain.CreateEmployeeInput) (*domain.Employee, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireCode(ctx, input.DefaultShiftCode); err != nil {
		return nil, err
	}

	employee, err := s.employees.Add(ctx, input)
	if err != nil {
		return nil, err
	}

	if err := s.schedule.CreateForEmployee(ctx, employee.ID, employee.Name, employee.DefaultShiftCode); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) Update(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	if err := (domain.CreateEmployeeInput{Name: employee.Name}).Validate(); err != nil {
		return nil, err
	}
	if err := s.requireCode(ctx, employee.DefaultShiftCode); err != nil {
		return nil, err
	}

	current, err := s.employees.GetByID(ctx, employee.ID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.ErrEmployeeNotFound
	}

	if err := s.employees.Update(ctx, employee); err != nil {
		return nil, err
	}

	// Default-shift changes back-fill the unset days of the active month;
	// explicit assignments are never overwritten.
	if current.DefaultShiftCode != employee.DefaultShiftCode {
		if err := s.schedule.BackfillDefault(ctx, employee.ID, employee.Name, employee.DefaultShiftCode); err != nil {
			return nil, err
		}
	}
	return &employee, nil
}

func (s *employeeService) SetActive(ctx context.Context, id int, active bool) (*domain.Employee, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *current
	updated.IsActive = active
	return s.Update(ctx, updated)
}

func (s *employeeService) SetDefaultShift(ctx context.Context, id int, code string) (*domain.Employee, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := *current
	updated.DefaultShiftCode = code
	return s.Update(ctx, updated)
}

func (s *employeeService) requireCode(ctx context.Context, code string) error {
	found, err := s.catalog.Lookup(ctx, code)
	if err != nil {
		return err
	}
	if found == nil {
		return domain.ErrUnknownShiftCode
	}
	return nil
}
