package dto

import "github.com/shopspring/decimal"

// PlacedOnLayout is the wire format for placement dates (date only,
// no time component).
const PlacedOnLayout = "2006-01-02"

// CreatePlacementRequest represents placement recording data
type CreatePlacementRequest struct {
	StudentID int64           `json:"studentId" binding:"required,gt=0"`
	CompanyID int64           `json:"companyId" binding:"required,gt=0"`
	Salary    decimal.Decimal `json:"salary"`
	PlacedOn  string          `json:"placedOn" binding:"required"`
}

// UpdatePlacementRequest represents placement update data. The
// student and company of a placement are immutable after insert, so
// only salary and date can be replaced.
type UpdatePlacementRequest struct {
	Salary   decimal.Decimal `json:"salary"`
	PlacedOn string          `json:"placedOn" binding:"required"`
}
