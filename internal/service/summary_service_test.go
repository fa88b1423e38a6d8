package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escala-equipe/internal/domain"
	"escala-equipe/internal/service"
	"escala-equipe/internal/store"
)

func strPtr(s string) *string { return &s }

func testCatalog() store.CatalogStore {
	return store.NewCatalogStore([]domain.ShiftCode{
		{Code: "A", Name: "Jornada A", StartTime: strPtr("08:15"), BreakTime: strPtr("12:45"), EndTime: strPtr("18:00"), Color: "shift-a", Category: domain.CategoryWork},
		{Code: "DSR", Name: "Descanso", Color: "shift-dsr", Category: domain.CategoryRest},
		{Code: "V", Name: "Férias", Color: "shift-v", Category: domain.CategoryVacation},
	})
}

func decDate(day int) domain.Date {
	return domain.NewDate(2024, time.December, day)
}

func TestSummaryService_Summaries(t *testing.T) {
	ctx := context.Background()

	// 22 workdays of Jornada A and 8 rest days over a 30-day stretch.
	days := make(map[domain.Date]string)
	for day := 1; day <= 30; day++ {
		if day <= 22 {
			days[decDate(day)] = "A"
		} else {
			days[decDate(day)] = "DSR"
		}
	}

	restDays := make(map[domain.Date]string)
	for day := 1; day <= 10; day++ {
		restDays[decDate(day)] = "DSR"
	}

	schedule := store.NewScheduleStore(time.December, 2024, []domain.EmployeeSchedule{
		{EmployeeID: 1, EmployeeName: "Leandro", Days: days},
		{EmployeeID: 2, EmployeeName: "Hailton", Days: restDays},
	})
	employees := store.NewEmployeeStore([]domain.Employee{
		{ID: 1, Name: "Leandro", DefaultShiftCode: "A", IsActive: true},
		{ID: 2, Name: "Hailton", DefaultShiftCode: "B", IsActive: true},
	})

	svc := service.NewSummaryService(schedule, testCatalog(), employees, 176, 1)

	summaries, err := svc.Summaries(ctx, 0)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	t.Run("Worked Month", func(t *testing.T) {
		summary := summaries[0]
		assert.Equal(t, 1, summary.EmployeeID)
		assert.Equal(t, 30, summary.TotalDays)
		assert.Equal(t, 22, summary.WorkDays)
		assert.Equal(t, 8, summary.RestDays)
		assert.Equal(t, 0, summary.VacationDays)
		// Jornada A: (18:00 - 08:15) - 1h break = 8.75h per day.
		assert.InDelta(t, 192.5, summary.EstimatedHours, 1e-9)
		assert.InDelta(t, 16.5, summary.ExcessHours, 1e-9)
	})

	t.Run("All Rest Days", func(t *testing.T) {
		summary := summaries[1]
		assert.Equal(t, 2, summary.EmployeeID)
		assert.Equal(t, 10, summary.RestDays)
		assert.Zero(t, summary.EstimatedHours)
		assert.InDelta(t, -176, summary.ExcessHours, 1e-9)
	})
}

func TestSummaryService_StandardHoursOverride(t *testing.T) {
	ctx := context.Background()

	schedule := store.NewScheduleStore(time.December, 2024, []domain.EmployeeSchedule{
		{EmployeeID: 1, EmployeeName: "Leandro", Days: map[domain.Date]string{decDate(2): "A"}},
	})
	employees := store.NewEmployeeStore([]domain.Employee{
		{ID: 1, Name: "Leandro", DefaultShiftCode: "A", IsActive: true},
	})

	svc := service.NewSummaryService(schedule, testCatalog(), employees, 176, 1)

	summaries, err := svc.Summaries(ctx, 8)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.InDelta(t, 0.75, summaries[0].ExcessHours, 1e-9)
}

func TestSummaryService_UnknownCodeCountsAsOther(t *testing.T) {
	ctx := context.Background()

	schedule := store.NewScheduleStore(time.December, 2024, []domain.EmployeeSchedule{
		{EmployeeID: 1, EmployeeName: "Leandro", Days: map[domain.Date]string{
			decDate(2): "ZZZ",
			decDate(3): "V",
		}},
	})
	employees := store.NewEmployeeStore([]domain.Employee{
		{ID: 1, Name: "Leandro", DefaultShiftCode: "A", IsActive: true},
	})

	svc := service.NewSummaryService(schedule, testCatalog(), employees, 176, 1)

	summaries, err := svc.Summaries(ctx, 176)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].OtherDays)
	assert.Equal(t, 1, summaries[0].VacationDays)
	assert.Zero(t, summaries[0].EstimatedHours)
}
