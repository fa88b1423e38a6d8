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

func employeeFixture() (service.EmployeeService, store.ScheduleStore, store.EmployeeStore) {
	schedule := store.NewScheduleStore(time.December, 2024, []domain.EmployeeSchedule{
		{EmployeeID: 1, EmployeeName: "Leandro", Days: map[domain.Date]string{
			decDate(1): "DSR",
			decDate(2): "A",
		}},
	})
	employees := store.NewEmployeeStore([]domain.Employee{
		{ID: 1, Name: "Leandro", DefaultShiftCode: "A", IsActive: true},
	})
	svc := service.NewEmployeeService(employees, schedule, testCatalog())
	return svc, schedule, employees
}

func TestEmployeeService_Add(t *testing.T) {
	ctx := context.Background()
	svc, schedule, _ := employeeFixture()

	added, err := svc.Add(ctx, domain.CreateEmployeeInput{Name: "Nova", DefaultShiftCode: "A", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, 2, added.ID)

	// A new employee gets a schedule row pre-filled for the whole month.
	row, err := schedule.GetByEmployee(ctx, added.ID)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Len(t, row.Days, 31)
	code, _, _ := schedule.Get(ctx, added.ID, decDate(10))
	assert.Equal(t, "A", code)

	t.Run("Empty Name", func(t *testing.T) {
		_, err := svc.Add(ctx, domain.CreateEmployeeInput{Name: "", DefaultShiftCode: "A"})
		assert.ErrorIs(t, err, domain.ErrEmptyEmployeeName)
	})

	t.Run("Unknown Default Code", func(t *testing.T) {
		_, err := svc.Add(ctx, domain.CreateEmployeeInput{Name: "Outra", DefaultShiftCode: "X"})
		assert.ErrorIs(t, err, domain.ErrUnknownShiftCode)
	})
}

func TestEmployeeService_DefaultShiftChangeBackfills(t *testing.T) {
	ctx := context.Background()
	svc, schedule, _ := employeeFixture()

	updated, err := svc.SetDefaultShift(ctx, 1, "DSR")
	require.NoError(t, err)
	assert.Equal(t, "DSR", updated.DefaultShiftCode)

	// Explicit assignments survive the back-fill.
	code, _, _ := schedule.Get(ctx, 1, decDate(2))
	assert.Equal(t, "A", code)

	// Previously empty days carry the new default.
	code, ok, _ := schedule.Get(ctx, 1, decDate(20))
	assert.True(t, ok)
	assert.Equal(t, "DSR", code)

	row, err := schedule.GetByEmployee(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, row.Days, 31)
}

func TestEmployeeService_UpdateWithoutShiftChangeDoesNotBackfill(t *testing.T) {
	ctx := context.Background()
	svc, schedule, _ := employeeFixture()

	_, err := svc.SetActive(ctx, 1, false)
	require.NoError(t, err)

	row, err := schedule.GetByEmployee(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, row.Days, 2, "deactivation alone must not touch the schedule")
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := employeeFixture()

	t.Run("Unknown Employee", func(t *testing.T) {
		_, err := svc.Update(ctx, domain.Employee{ID: 9, Name: "Ghost", DefaultShiftCode: "A"})
		assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
	})

	t.Run("Unknown Code", func(t *testing.T) {
		_, err := svc.Update(ctx, domain.Employee{ID: 1, Name: "Leandro", DefaultShiftCode: "nope"})
		assert.ErrorIs(t, err, domain.ErrUnknownShiftCode)
	})
}
