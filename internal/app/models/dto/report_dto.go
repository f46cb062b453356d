package dto

// PlacementDetailsFilter carries optional query filters for the
// placement details report.
type PlacementDetailsFilter struct {
	DepartmentID int64 `form:"departmentId" binding:"omitempty,gt=0"`
	IndustryID   int64 `form:"industryId" binding:"omitempty,gt=0"`
}

// EligibilityFilter carries optional query filters for the
// student x company eligibility matrix.
type EligibilityFilter struct {
	StudentID int64 `form:"studentId" binding:"omitempty,gt=0"`
	CompanyID int64 `form:"companyId" binding:"omitempty,gt=0"`
	Eligible  *bool `form:"eligible"`
}

// PlacementListFilter carries optional query filters for placements
type PlacementListFilter struct {
	StudentID int64 `form:"studentId" binding:"omitempty,gt=0"`
	CompanyID int64 `form:"companyId" binding:"omitempty,gt=0"`
}
