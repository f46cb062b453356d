package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Student defines the student model based on the 'students' table.
// IsPlaced is derived state owned by the placement write path: it is
// recomputed inside the same transaction as every placement insert or
// delete and is never writable through the API.
type Student struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        *string         `json:"phone,omitempty"`
	DepartmentID int64           `json:"departmentId"`
	CGPA         decimal.Decimal `json:"cgpa"`
	IsPlaced     bool            `json:"isPlaced"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`
}

// IsEligibleFor reports whether the student's CGPA meets the
// company's cutoff.
func (s *Student) IsEligibleFor(company *Company) bool {
	return s.CGPA.GreaterThanOrEqual(company.MinCGPA)
}
