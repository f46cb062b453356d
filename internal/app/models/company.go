package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company represents a recruiting company.
// MinCGPA is the company's eligibility cutoff; stored as NUMERIC(4,2)
// so comparisons against student CGPAs stay exact.
type Company struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	IndustryID    int64           `json:"industryId"`
	ContactPerson *string         `json:"contactPerson,omitempty"`
	ContactEmail  *string         `json:"contactEmail,omitempty"`
	ContactPhone  *string         `json:"contactPhone,omitempty"`
	MinCGPA       decimal.Decimal `json:"minCgpa"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`

	// Relations (populated when needed)
	Industry *Industry `json:"industry,omitempty"`
}
