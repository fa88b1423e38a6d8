package seed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escala-equipe/internal/domain"
	"escala-equipe/internal/seed"
)

func TestEmployees(t *testing.T) {
	employees := seed.Employees()
	require.Len(t, employees, 39)
	assert.Equal(t, 1, employees[0].ID)
	assert.Equal(t, "Leandro", employees[0].Name)
	assert.Equal(t, 39, employees[38].ID)

	codes := seed.ShiftCodes()
	byCode := make(map[string]domain.ShiftCode, len(codes))
	for _, c := range codes {
		byCode[c.Code] = c
	}
	for _, e := range employees {
		_, ok := byCode[e.DefaultShiftCode]
		assert.True(t, ok, "employee %s has default code %s outside the catalog", e.Name, e.DefaultShiftCode)
	}
}

func TestGenerateSchedules(t *testing.T) {
	employees := seed.Employees()
	schedules := seed.GenerateSchedules(employees, time.December, 2024)
	require.Len(t, schedules, len(employees))

	for _, schedule := range schedules {
		assert.Len(t, schedule.Days, 31, "every day of the month is assigned")
		for date, code := range schedule.Days {
			onVacation := schedule.EmployeeID%10 == 0 && date.Day >= 15
			if date.Weekday() == time.Sunday && !onVacation {
				assert.Equal(t, "DSR", code, "employee %d on %s", schedule.EmployeeID, date)
			}
		}
	}

	t.Run("Vacation Tail", func(t *testing.T) {
		// Every tenth employee is on vacation from the 15th onward.
		for _, schedule := range schedules {
			if schedule.EmployeeID%10 != 0 {
				continue
			}
			for date, code := range schedule.Days {
				if date.Day >= 15 {
					assert.Equal(t, "V", code)
				}
			}
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		again := seed.GenerateSchedules(employees, time.December, 2024)
		assert.Equal(t, schedules, again)
	})
}

func TestSnapshot(t *testing.T) {
	snap, err := seed.Snapshot(time.December, 2024)
	require.NoError(t, err)

	assert.Len(t, snap.ShiftCodes, 8)
	assert.Len(t, snap.Employees, 39)
	assert.Len(t, snap.Schedules, 39)
	assert.Len(t, snap.Notifications, 3)
	require.Len(t, snap.Users, 5)
	assert.Equal(t, domain.RoleAdmin, snap.Users[0].Role)
	assert.Equal(t, time.December, snap.Month)
}
