package store

import (
	"context"
	"sync"
	"time"

	"escala-equipe/internal/domain"
)

// ScheduleStore owns the canonical employee x date -> shift code mapping.
// All writes address the currently active month window; a schedule row is
// only ever created by CreateForEmployee or BackfillDefault, never by a
// plain cell write. Every mutation is a single visible state transition.
type ScheduleStore interface {
	// ActiveMonth returns the month window subsequent reads and writes
	// address.
	ActiveMonth(ctx context.Context) (time.Month, int, error)
	// ChangeMonth switches the active window. It does not generate or
	// clear any data; population of empty months is the caller's policy.
	ChangeMonth(ctx context.Context, month time.Month, year int) error

	// Get reads a single cell of the active window.
	Get(ctx context.Context, employeeID int, date domain.Date) (string, bool, error)
	// GetByEmployee returns one employee's row restricted to the active
	// window, or nil when the employee has no row at all.
	GetByEmployee(ctx context.Context, employeeID int) (*domain.EmployeeSchedule, error)
	// Grid snapshots all rows restricted to the active window. Rows and
	// day maps are deep copies; mutating them never touches the store.
	Grid(ctx context.Context) ([]domain.EmployeeSchedule, error)
	// MonthIsEmpty reports whether the active window has no assignments.
	MonthIsEmpty(ctx context.Context) (bool, error)

	// SetCell overwrites one cell. Writes addressing an employee without
	// a schedule row report WriteNoSchedule and change nothing.
	SetCell(ctx context.Context, employeeID int, date domain.Date, code string) (domain.WriteResult, error)
	// SetCellsBulk overwrites the full cartesian product of employeeIDs
	// and dates with code, atomically, last-writer-wins.
	SetCellsBulk(ctx context.Context, employeeIDs []int, dates []domain.Date, code string) (domain.BulkWriteReport, error)
	// BackfillDefault fills every unassigned day of the active month with
	// code, preserving all existing assignments. A missing row is created
	// and comes out fully filled.
	BackfillDefault(ctx context.Context, employeeID int, employeeName, code string) error
	// CreateForEmployee creates a row pre-filled with defaultCode on every
	// day of the active month.
	CreateForEmployee(ctx context.Context, employeeID int, employeeName, defaultCode string) error
}

type scheduleStore struct {
	mu        sync.RWMutex
	month     time.Month
	year      int
	schedules []*domain.EmployeeSchedule
	index     map[int]*domain.EmployeeSchedule
}

func NewScheduleStore(month time.Month, year int, seed []domain.EmployeeSchedule) ScheduleStore {
	s := &scheduleStore{
		month: month,
		year:  year,
		index: make(map[int]*domain.EmployeeSchedule, len(seed)),
	}
	for _, row := range seed {
		cloned := row.Clone()
		if cloned.Days == nil {
			cloned.Days = make(map[domain.Date]string)
		}
		s.schedules = append(s.schedules, &cloned)
		s.index[cloned.EmployeeID] = &cloned
	}
	return s
}

func (s *scheduleStore) ActiveMonth(ctx context.Context) (time.Month, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.month, s.year, nil
}

func (s *scheduleStore) ChangeMonth(ctx context.Context, month time.Month, year int) error {
	if month < time.January || month > time.December {
		return domain.ErrInvalidMonth
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.month = month
	s.year = year
	return nil
}

func (s *scheduleStore) Get(ctx context.Context, employeeID int, date domain.Date) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.index[employeeID]
	if !ok {
		return "", false, nil
	}
	code, ok := row.Days[date]
	return code, ok, nil
}

func (s *scheduleStore) GetByEmployee(ctx context.Context, employeeID int) (*domain.EmployeeSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.index[employeeID]
	if !ok {
		return nil, nil
	}
	windowed := s.windowed(row)
	return &windowed, nil
}

func (s *scheduleStore) Grid(ctx context.Context) ([]domain.EmployeeSchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grid := make([]domain.EmployeeSchedule, 0, len(s.schedules))
	for _, row := range s.schedules {
		grid = append(grid, s.windowed(row))
	}
	return grid, nil
}

func (s *scheduleStore) MonthIsEmpty(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, row := range s.schedules {
		for date := range row.Days {
			if date.InMonth(s.month, s.year) {
				return false, nil
			}
		}
	}
	return true, nil
}

func (s *scheduleStore) SetCell(ctx context.Context, employeeID int, date domain.Date, code string) (domain.WriteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setCellLocked(employeeID, date, code), nil
}

func (s *scheduleStore) SetCellsBulk(ctx context.Context, employeeIDs []int, dates []domain.Date, code string) (domain.BulkWriteReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var report domain.BulkWriteReport
	for _, id := range employeeIDs {
		if _, ok := s.index[id]; !ok {
			report.MissingIDs = append(report.MissingIDs, id)
			continue
		}
		for _, date := range dates {
			if s.setCellLocked(id, date, code) == domain.WriteApplied {
				report.CellsWritten++
			}
		}
	}
	return report, nil
}

func (s *scheduleStore) BackfillDefault(ctx context.Context, employeeID int, employeeName, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.index[employeeID]
	if !ok {
		row = &domain.EmployeeSchedule{
			EmployeeID:   employeeID,
			EmployeeName: employeeName,
			Days:         make(map[domain.Date]string),
		}
		s.schedules = append(s.schedules, row)
		s.index[employeeID] = row
	}

	for _, date := range domain.MonthDates(s.month, s.year) {
		if _, assigned := row.Days[date]; !assigned {
			row.Days[date] = code
		}
	}
	return nil
}

func (s *scheduleStore) CreateForEmployee(ctx context.Context, employeeID int, employeeName, defaultCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	days := make(map[domain.Date]string)
	for _, date := range domain.MonthDates(s.month, s.year) {
		days[date] = defaultCode
	}

	if row, ok := s.index[employeeID]; ok {
		row.EmployeeName = employeeName
		row.Days = days
		return nil
	}

	row := &domain.EmployeeSchedule{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Days:         days,
	}
	s.schedules = append(s.schedules, row)
	s.index[employeeID] = row
	return nil
}

func (s *scheduleStore) setCellLocked(employeeID int, date domain.Date, code string) domain.WriteResult {
	row, ok := s.index[employeeID]
	if !ok {
		return domain.WriteNoSchedule
	}
	row.Days[date] = code
	return domain.WriteApplied
}

// windowed copies a row with its days restricted to the active month.
func (s *scheduleStore) windowed(row *domain.EmployeeSchedule) domain.EmployeeSchedule {
	days := make(map[domain.Date]string)
	for date, code := range row.Days {
		if date.InMonth(s.month, s.year) {
			days[date] = code
		}
	}
	return domain.EmployeeSchedule{
		EmployeeID:   row.EmployeeID,
		EmployeeName: row.EmployeeName,
		Days:         days,
	}
}
