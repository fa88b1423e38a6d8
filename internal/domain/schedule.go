package domain

// EmployeeSchedule is one employee's row of the calendar grid for a single
// month window. Days maps each assigned date to a shift code; unset days
// simply have no key. EmployeeName is denormalized for grid rendering.
type EmployeeSchedule struct {
	EmployeeID   int             `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Days         map[Date]string `json:"days"`
}

// Clone returns a deep copy so readers never alias store-owned maps.
func (s EmployeeSchedule) Clone() EmployeeSchedule {
	days := make(map[Date]string, len(s.Days))
	for d, code := range s.Days {
		days[d] = code
	}
	return EmployeeSchedule{
		EmployeeID:   s.EmployeeID,
		EmployeeName: s.EmployeeName,
		Days:         days,
	}
}

// WriteResult reports the outcome of a single-cell schedule write.
// Addressing an employee without a schedule row is a documented non-event,
// not an error, but callers get to observe it.
type WriteResult string

const (
	WriteApplied    WriteResult = "APPLIED"
	WriteNoSchedule WriteResult = "NO_SCHEDULE"
)

// BulkWriteReport summarizes one atomic bulk edit: how many cells were
// written and which addressed employees had no schedule row.
type BulkWriteReport struct {
	CellsWritten int   `json:"cells_written"`
	MissingIDs   []int `json:"missing_employee_ids,omitempty"`
}

// PopulationPolicy is the explicit contract for what ChangeMonth does to a
// month that has no data yet.
type PopulationPolicy string

const (
	// PopulateNone leaves non-seeded months empty; reads return no rows.
	PopulateNone PopulationPolicy = "none"
	// PopulateDefaults generates a month on demand, filling every day of
	// every known employee with that employee's default shift code.
	PopulateDefaults PopulationPolicy = "defaults"
)
