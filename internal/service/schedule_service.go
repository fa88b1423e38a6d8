package service

import (
	"context"
	"time"

	"escala-equipe/internal/domain"
	"escala-equipe/internal/store"
)

// ScheduleGrid is the presentation view of the active window: the month,
// its calendar days and one row per employee.
type ScheduleGrid struct {
	Month     time.Month                `json:"month"`
	Year      int                       `json:"year"`
	Dates     []domain.Date             `json:"dates"`
	Schedules []domain.EmployeeSchedule `json:"schedules"`
}

// ScheduleService fronts the schedule store. It validates codes against
// the catalog and dates against the active window before any write reaches
// the store; the store itself accepts whatever it is handed.
type ScheduleService interface {
	Grid(ctx context.Context) (*ScheduleGrid, error)
	EmployeeRow(ctx context.Context, employeeID int) (*domain.EmployeeSchedule, error)
	ChangeMonth(ctx context.Context, month time.Month, year int) error
	SetCell(ctx context.Context, employeeID int, date domain.Date, code string) (domain.WriteResult, error)
	SetCellsBulk(ctx context.Context, employeeIDs []int, dates []domain.Date, code string) (domain.BulkWriteReport, error)
}

type scheduleService struct {
	schedule  store.ScheduleStore
	catalog   store.CatalogStore
	employees store.EmployeeStore
	policy    domain.PopulationPolicy
}

func NewScheduleService(schedule store.ScheduleStore, catalog store.CatalogStore, employees store.EmployeeStore, policy domain.PopulationPolicy) ScheduleService {
	return &scheduleService{
		schedule:  schedule,
		catalog:   catalog,
		employees: employees,
		policy:    policy,
	}
}

func (s *scheduleService) Grid(ctx context.Context) (*ScheduleGrid, error) {
	month, year, err := s.schedule.ActiveMonth(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.schedule.Grid(ctx)
	if err != nil {
		return nil, err
	}
	return &ScheduleGrid{
		Month:     month,
		Year:      year,
		Dates:     domain.MonthDates(month, year),
		Schedules: rows,
	}, nil
}

func (s *scheduleService) EmployeeRow(ctx context.Context, employeeID int) (*domain.EmployeeSchedule, error) {
	row, err := s.schedule.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	return row, nil
}

// ChangeMonth switches the active window and applies the configured
// population policy: under PopulateDefaults an empty month is generated on
// demand from each employee's default code, under PopulateNone it stays
// empty (the seeded month is the only one with data).
func (s *scheduleService) ChangeMonth(ctx context.Context, month time.Month, year int) error {
	if err := s.schedule.ChangeMonth(ctx, month, year); err != nil {
		return err
	}

	if s.policy != domain.PopulateDefaults {
		return nil
	}

	empty, err := s.schedule.MonthIsEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	employees, err := s.employees.List(ctx)
	if err != nil {
		return err
	}
	for _, employee := range employees {
		if err := s.schedule.BackfillDefault(ctx, employee.ID, employee.Name, employee.DefaultShiftCode); err != nil {
			return err
		}
	}
	return nil
}

func (s *scheduleService) SetCell(ctx context.Context, employeeID int, date domain.Date, code string) (domain.WriteResult, error) {
	if err := s.validateWrite(ctx, []domain.Date{date}, code); err != nil {
		return "", err
	}
	return s.schedule.SetCell(ctx, employeeID, date, code)
}

func (s *scheduleService) SetCellsBulk(ctx context.Context, employeeIDs []int, dates []domain.Date, code string) (domain.BulkWriteReport, error) {
	if err := s.validateWrite(ctx, dates, code); err != nil {
		return domain.BulkWriteReport{}, err
	}
	return s.schedule.SetCellsBulk(ctx, employeeIDs, dates, code)
}

func (s *scheduleService) validateWrite(ctx context.Context, dates []domain.Date, code string) error {
	found, err := s.catalog.Lookup(ctx, code)
	if err != nil {
		return err
	}
	if found == nil {
		return domain.ErrUnknownShiftCode
	}

	month, year, err := s.schedule.ActiveMonth(ctx)
	if err != nil {
		return err
	}
	for _, date := range dates {
		if !date.InMonth(month, year) {
			return domain.ErrDateOutsideMonth
		}
	}
	return nil
}
