// Package seed is the startup data source: it produces the shift catalog,
// the employee roster, one generated month of schedule data, the initial
// notification list and the mock user accounts. The rest of the system
// treats its output as an opaque snapshot.
package seed

import (
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"

	"escala-equipe/internal/domain"
	"escala-equipe/internal/store"
)

func strPtr(s string) *string { return &s }

// ShiftCodes returns the fixed shift catalog in display order.
func ShiftCodes() []domain.ShiftCode {
	return []domain.ShiftCode{
		{Code: "A", Name: "Jornada A", StartTime: strPtr("08:15"), BreakTime: strPtr("12:45"), EndTime: strPtr("18:00"), Color: "shift-a", Category: domain.CategoryWork},
		{Code: "B", Name: "Jornada B", StartTime: strPtr("07:45"), BreakTime: strPtr("11:00"), EndTime: strPtr("17:30"), Color: "shift-b", Category: domain.CategoryWork},
		{Code: "C", Name: "Jornada C", StartTime: strPtr("07:45"), EndTime: strPtr("14:05"), Color: "shift-c", Category: domain.CategoryWork},
		{Code: "DSR", Name: "Descanso", Color: "shift-dsr", Category: domain.CategoryRest},
		{Code: "F", Name: "Folga", Color: "shift-f", Category: domain.CategoryRest},
		{Code: "Fo", Name: "Folga Out", Color: "shift-fo", Category: domain.CategoryRest},
		{Code: "U", Name: "Universidade", Color: "shift-u", Category: domain.CategoryOther},
		{Code: "V", Name: "Férias", Color: "shift-v", Category: domain.CategoryVacation},
	}
}

var employeeRoster = []struct {
	name        string
	defaultCode string
}{
	{"Leandro", "A"}, {"Hailton", "B"}, {"Karla", "A"}, {"Everton", "C"},
	{"Wellington", "A"}, {"Leonardo", "B"}, {"Johnny", "A"}, {"Abreu", "C"},
	{"Tiago Balbino", "B"}, {"Gabriela", "A"}, {"Evellyn", "B"}, {"Sabrina", "C"},
	{"Bruna", "A"}, {"Rafael", "B"}, {"Tatiane", "A"}, {"Diego", "C"},
	{"Ingrid", "B"}, {"Flavia", "A"}, {"Geovana", "B"}, {"Thiago", "C"},
	{"Danilo", "A"}, {"Tatiane L.", "B"}, {"Elaine", "A"}, {"Aline", "C"},
	{"Evelyn A.", "B"}, {"Lucas", "A"}, {"Gabriel", "B"}, {"João Paulo", "C"},
	{"Gabriele", "A"}, {"Rayane", "B"}, {"Gustavo", "A"}, {"Joyce", "C"},
	{"Carolina", "B"}, {"Priscila", "A"}, {"Valéria", "B"}, {"Duda", "C"},
	{"Sara", "A"}, {"Alysson", "B"}, {"Márcia", "A"},
}

// Employees returns the roster with sequential ids starting at 1.
func Employees() []domain.Employee {
	employees := make([]domain.Employee, 0, len(employeeRoster))
	for i, e := range employeeRoster {
		employees = append(employees, domain.Employee{
			ID:               i + 1,
			Name:             e.name,
			DefaultShiftCode: e.defaultCode,
			IsActive:         true,
		})
	}
	return employees
}

// GenerateSchedules fills one month for every employee: Sundays are DSR,
// Saturdays and the Christmas window lean towards folga, a small share of
// weekdays gets a non-default code, and every tenth employee spends the
// back half of the month on vacation. The rng is fixed-seeded so restarts
// produce the same grid.
func GenerateSchedules(employees []domain.Employee, month time.Month, year int) []domain.EmployeeSchedule {
	rng := rand.New(rand.NewSource(int64(year)*100 + int64(month)))
	schedules := make([]domain.EmployeeSchedule, 0, len(employees))

	for _, employee := range employees {
		days := make(map[domain.Date]string)

		for _, date := range domain.MonthDates(month, year) {
			switch {
			case date.Weekday() == time.Sunday:
				days[date] = "DSR"
			case date.Weekday() == time.Saturday:
				if rng.Float64() > 0.7 {
					days[date] = "F"
				} else {
					days[date] = employee.DefaultShiftCode
				}
			case date.Day >= 24 && date.Day <= 26:
				if rng.Float64() > 0.5 {
					days[date] = "F"
				} else {
					days[date] = employee.DefaultShiftCode
				}
			default:
				if rng.Float64() > 0.9 {
					options := []string{"F", "U", "Fo"}
					days[date] = options[rng.Intn(len(options))]
				} else {
					days[date] = employee.DefaultShiftCode
				}
			}

			if employee.ID%10 == 0 && date.Day >= 15 {
				days[date] = "V"
			}
		}

		schedules = append(schedules, domain.EmployeeSchedule{
			EmployeeID:   employee.ID,
			EmployeeName: employee.Name,
			Days:         days,
		})
	}
	return schedules
}

// Notifications returns the initial advisory alerts. Conflict detection
// itself lives outside this service.
func Notifications() []domain.Notification {
	return []domain.Notification{
		{
			ID:        1,
			Type:      domain.NotifConsecutiveSundays,
			Message:   "Leandro está escalado para dois domingos consecutivos",
			Details:   "Domingos 08/12 e 15/12",
			CreatedAt: time.Date(2024, time.December, 1, 10, 30, 0, 0, time.UTC),
			Resolved:  false,
		},
		{
			ID:        2,
			Type:      domain.NotifSingleEmployeeShift,
			Message:   "Apenas uma pessoa escalada no turno A no dia 24/12",
			Details:   "Verificar se é suficiente para a demanda",
			CreatedAt: time.Date(2024, time.December, 10, 15, 45, 0, 0, time.UTC),
			Resolved:  false,
		},
		{
			ID:        3,
			Type:      domain.NotifConsecutiveAbsences,
			Message:   "Karla com 3 faltas consecutivas",
			Details:   "Dias 05/12, 06/12 e 07/12",
			CreatedAt: time.Date(2024, time.December, 7, 9, 15, 0, 0, time.UTC),
			Resolved:  true,
		},
	}
}

var mockAccounts = []struct {
	id          int
	name        string
	username    string
	password    string
	role        string
	employeeID  int
	defaultCode string
}{
	{1, "Admin User", "admin", "admin123", domain.RoleAdmin, 0, ""},
	{2, "Leandro", "leandro", "employee123", domain.RoleEmployee, 1, "A"},
	{3, "Hailton", "hailton", "employee123", domain.RoleEmployee, 2, "B"},
	{4, "Karla", "karla", "employee123", domain.RoleEmployee, 3, "A"},
	{5, "Everton", "everton", "employee123", domain.RoleEmployee, 4, "C"},
}

// Users returns the mock accounts with freshly hashed passwords.
func Users() ([]domain.User, error) {
	users := make([]domain.User, 0, len(mockAccounts))
	for _, a := range mockAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.MinCost)
		if err != nil {
			return nil, err
		}
		user := domain.User{
			ID:           a.id,
			Username:     a.username,
			Name:         a.name,
			PasswordHash: string(hash),
			Role:         a.role,
		}
		if a.role == domain.RoleEmployee {
			employeeID := a.employeeID
			code := a.defaultCode
			user.EmployeeID = &employeeID
			user.DefaultShiftCode = &code
		}
		users = append(users, user)
	}
	return users, nil
}

// Snapshot assembles the full startup state for the given month window.
func Snapshot(month time.Month, year int) (store.Snapshot, error) {
	users, err := Users()
	if err != nil {
		return store.Snapshot{}, err
	}

	employees := Employees()
	return store.Snapshot{
		ShiftCodes:    ShiftCodes(),
		Employees:     employees,
		Schedules:     GenerateSchedules(employees, month, year),
		Notifications: Notifications(),
		Users:         users,
		Month:         month,
		Year:          year,
	}, nil
}
