package dto

import "github.com/shopspring/decimal"

// CreateCompanyRequest represents company creation data.
// MinCGPA is a pointer so an omitted cutoff falls back to the 8.00
// default; range is checked in the service because validator tags
// don't reach into decimal values.
type CreateCompanyRequest struct {
	Name          string           `json:"name" binding:"required,max=150"`
	IndustryID    int64            `json:"industryId" binding:"required,gt=0"`
	ContactPerson *string          `json:"contactPerson,omitempty" binding:"omitempty,max=100"`
	ContactEmail  *string          `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactPhone  *string          `json:"contactPhone,omitempty" binding:"omitempty,max=20"`
	MinCGPA       *decimal.Decimal `json:"minCgpa,omitempty"`
}

// UpdateCompanyRequest represents company update data (full replace)
type UpdateCompanyRequest struct {
	Name          string           `json:"name" binding:"required,max=150"`
	IndustryID    int64            `json:"industryId" binding:"required,gt=0"`
	ContactPerson *string          `json:"contactPerson,omitempty" binding:"omitempty,max=100"`
	ContactEmail  *string          `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactPhone  *string          `json:"contactPhone,omitempty" binding:"omitempty,max=20"`
	MinCGPA       *decimal.Decimal `json:"minCgpa,omitempty"`
}
