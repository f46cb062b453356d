package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Placement records a student being placed at a company. At most one
// row exists per (student, company) pair. StudentID and CompanyID are
// immutable after insert; only salary and placement date can change.
type Placement struct {
	ID        int64           `json:"id"`
	StudentID int64           `json:"studentId"`
	CompanyID int64           `json:"companyId"`
	Salary    decimal.Decimal `json:"salary"`
	PlacedOn  time.Time       `json:"placedOn"`
	CreatedAt time.Time       `json:"createdAt"`
}
