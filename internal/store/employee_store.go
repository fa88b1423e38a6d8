package store

import (
	"context"
	"sync"

	"escala-equipe/internal/domain"
)

// EmployeeStore is the employee registry. Employees are never hard-deleted;
// deactivation flips IsActive instead.
type EmployeeStore interface {
	List(ctx context.Context) ([]domain.Employee, error)
	GetByID(ctx context.Context, id int) (*domain.Employee, error)
	Add(ctx context.Context, input domain.CreateEmployeeInput) (*domain.Employee, error)
	Update(ctx context.Context, employee domain.Employee) error
}

type employeeStore struct {
	mu        sync.RWMutex
	employees []domain.Employee
	index     map[int]int
}

func NewEmployeeStore(employees []domain.Employee) EmployeeStore {
	s := &employeeStore{
		employees: make([]domain.Employee, len(employees)),
		index:     make(map[int]int, len(employees)),
	}
	copy(s.employees, employees)
	for i, e := range s.employees {
		s.index[e.ID] = i
	}
	return s
}

func (s *employeeStore) List(ctx context.Context) ([]domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Employee, len(s.employees))
	copy(out, s.employees)
	return out, nil
}

func (s *employeeStore) GetByID(ctx context.Context, id int) (*domain.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, nil
	}
	found := s.employees[i]
	return &found, nil
}

func (s *employeeStore) Add(ctx context.Context, input domain.CreateEmployeeInput) (*domain.Employee, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, e := range s.employees {
		if e.ID > maxID {
			maxID = e.ID
		}
	}

	employee := domain.Employee{
		ID:               maxID + 1,
		Name:             input.Name,
		DefaultShiftCode: input.DefaultShiftCode,
		IsActive:         input.IsActive,
	}
	s.employees = append(s.employees, employee)
	s.index[employee.ID] = len(s.employees) - 1
	return &employee, nil
}

func (s *employeeStore) Update(ctx context.Context, employee domain.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[employee.ID]
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	s.employees[i] = employee
	return nil
}
