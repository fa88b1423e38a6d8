package service

import (
	"context"

	"escala-equipe/internal/domain"
	"escala-equipe/internal/store"
)

// SummaryService derives per-employee work-hour summaries from a schedule
// snapshot plus the catalog. Pure read: nothing is cached, every call
// recomputes from current state.
type SummaryService interface {
	// Summaries aggregates the active month. standardHours <= 0 falls
	// back to the configured default threshold.
	Summaries(ctx context.Context, standardHours float64) ([]domain.WorkHourSummary, error)
}

type summaryService struct {
	schedule        store.ScheduleStore
	catalog         store.CatalogStore
	employees       store.EmployeeStore
	defaultStandard float64
	breakDeduction  float64 // hours
}

func NewSummaryService(schedule store.ScheduleStore, catalog store.CatalogStore, employees store.EmployeeStore, defaultStandardHours, breakDeductionHours float64) SummaryService {
	return &summaryService{
		schedule:        schedule,
		catalog:         catalog,
		employees:       employees,
		defaultStandard: defaultStandardHours,
		breakDeduction:  breakDeductionHours,
	}
}

func (s *summaryService) Summaries(ctx context.Context, standardHours float64) ([]domain.WorkHourSummary, error) {
	if standardHours <= 0 {
		standardHours = s.defaultStandard
	}

	codes, err := s.catalog.All(ctx)
	if err != nil {
		return nil, err
	}

	// Per-code daily hours: clock span minus the flat break deduction for
	// codes with a working span, zero for everything else. The catalog's
	// BreakTime value is display-only and deliberately not parsed here.
	hoursPerCode := make(map[string]float64, len(codes))
	categoryPerCode := make(map[string]domain.ShiftCategory, len(codes))
	for _, code := range codes {
		categoryPerCode[code.Code] = code.Category
		if span, ok := code.Span(); ok {
			hours := span.Hours() - s.breakDeduction
			if hours < 0 {
				hours = 0
			}
			hoursPerCode[code.Code] = hours
		}
	}

	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.schedule.Grid(ctx)
	if err != nil {
		return nil, err
	}
	rowByEmployee := make(map[int]domain.EmployeeSchedule, len(rows))
	for _, row := range rows {
		rowByEmployee[row.EmployeeID] = row
	}

	summaries := make([]domain.WorkHourSummary, 0, len(employees))
	for _, employee := range employees {
		row, ok := rowByEmployee[employee.ID]
		if !ok {
			continue
		}

		summary := domain.WorkHourSummary{
			EmployeeID:       employee.ID,
			EmployeeName:     employee.Name,
			DefaultShiftCode: employee.DefaultShiftCode,
			TotalDays:        len(row.Days),
		}

		for _, code := range row.Days {
			// Codes missing from the catalog count as Other and
			// contribute no hours.
			switch categoryPerCode[code] {
			case domain.CategoryWork:
				summary.WorkDays++
			case domain.CategoryRest:
				summary.RestDays++
			case domain.CategoryVacation:
				summary.VacationDays++
			default:
				summary.OtherDays++
			}
			summary.EstimatedHours += hoursPerCode[code]
		}

		summary.ExcessHours = summary.EstimatedHours - standardHours
		summaries = append(summaries, summary)
	}
	return summaries, nil
}
