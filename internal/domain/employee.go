package domain

import "strings"

type Employee struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	DefaultShiftCode string `json:"default_shift_code"`
	IsActive         bool   `json:"is_active"`
}

type CreateEmployeeInput struct {
	Name             string `json:"name"`
	DefaultShiftCode string `json:"default_shift_code"`
	IsActive         bool   `json:"is_active"`
}

func (in CreateEmployeeInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrEmptyEmployeeName
	}
	return nil
}
