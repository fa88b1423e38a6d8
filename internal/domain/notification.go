package domain

import "time"

type NotificationType string

const (
	NotifConsecutiveSundays  NotificationType = "consecutive_sundays"
	NotifSingleEmployeeShift NotificationType = "single_employee_shift"
	NotifConsecutiveAbsences NotificationType = "consecutive_absences"
)

// Notification is an advisory alert about a scheduling conflict. Detection
// lives outside this service; entries arrive seeded and only ever move from
// unresolved to resolved.
type Notification struct {
	ID        int              `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Details   string           `json:"details"`
	CreatedAt time.Time        `json:"created_at"`
	Resolved  bool             `json:"resolved"`
}
