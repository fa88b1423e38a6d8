// Package store holds the in-memory canonical state of the scheduling
// dashboard. Each store guards its state with a single mutex so the model
// stays single-writer under Fiber's concurrent handlers; there is no other
// synchronization and no background work.
package store

import (
	"time"

	"escala-equipe/internal/domain"
)

type Stores struct {
	Catalog      CatalogStore
	Employee     EmployeeStore
	Schedule     ScheduleStore
	Notification NotificationStore
	User         UserStore
}

// Snapshot is the seed shape handed over by the data source at startup.
type Snapshot struct {
	ShiftCodes    []domain.ShiftCode
	Employees     []domain.Employee
	Schedules     []domain.EmployeeSchedule
	Notifications []domain.Notification
	Users         []domain.User
	Month         time.Month
	Year          int
}

func NewStores(snap Snapshot) *Stores {
	return &Stores{
		Catalog:      NewCatalogStore(snap.ShiftCodes),
		Employee:     NewEmployeeStore(snap.Employees),
		Schedule:     NewScheduleStore(snap.Month, snap.Year, snap.Schedules),
		Notification: NewNotificationStore(snap.Notifications),
		User:         NewUserStore(snap.Users),
	}
}
