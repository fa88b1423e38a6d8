package domain

// WorkHourSummary is the per-employee aggregation shown on the hours
// calculator: day counts by category plus estimated hours against a
// standard monthly threshold. Derived on demand, never stored.
type WorkHourSummary struct {
	EmployeeID       int     `json:"employee_id"`
	EmployeeName     string  `json:"employee_name"`
	DefaultShiftCode string  `json:"default_shift_code"`
	TotalDays        int     `json:"total_days"`
	WorkDays         int     `json:"work_days"`
	RestDays         int     `json:"rest_days"`
	VacationDays     int     `json:"vacation_days"`
	OtherDays        int     `json:"other_days"`
	EstimatedHours   float64 `json:"estimated_hours"`
	ExcessHours      float64 `json:"excess_hours"`
}
