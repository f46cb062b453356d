package dto

import "github.com/shopspring/decimal"

// CreateStudentRequest represents student registration data.
// There is intentionally no isPlaced field anywhere in this file:
// the flag is derived from placements and not client-settable.
type CreateStudentRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	Email        string          `json:"email" binding:"required,email"`
	Phone        *string         `json:"phone,omitempty" binding:"omitempty,max=20"`
	DepartmentID int64           `json:"departmentId" binding:"required,gt=0"`
	CGPA         decimal.Decimal `json:"cgpa"`
}

// UpdateStudentRequest represents student update data (full replace)
type UpdateStudentRequest struct {
	Name         string          `json:"name" binding:"required,max=100"`
	Email        string          `json:"email" binding:"required,email"`
	Phone        *string         `json:"phone,omitempty" binding:"omitempty,max=20"`
	DepartmentID int64           `json:"departmentId" binding:"required,gt=0"`
	CGPA         decimal.Decimal `json:"cgpa"`
}
