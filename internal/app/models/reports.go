package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlacementDetail is one denormalized placement row: names joined in
// for the student, department, company and industry.
type PlacementDetail struct {
	PlacementID    int64           `json:"placementId"`
	StudentName    string          `json:"studentName"`
	DepartmentName string          `json:"departmentName"`
	CompanyName    string          `json:"companyName"`
	IndustryName   string          `json:"industryName"`
	Salary         decimal.Decimal `json:"salary"`
	PlacedOn       time.Time       `json:"placedOn"`
}

// DepartmentPlacementCount reports how many placements a department's
// students have. Departments with no students or no placements appear
// with a zero count rather than being omitted.
type DepartmentPlacementCount struct {
	DepartmentID   int64  `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
	PlacementCount int64  `json:"placementCount"`
}

// EligibilityRow is one cell of the students x companies eligibility
// matrix, computed per query.
type EligibilityRow struct {
	StudentID   int64           `json:"studentId"`
	StudentName string          `json:"studentName"`
	CGPA        decimal.Decimal `json:"cgpa"`
	CompanyID   int64           `json:"companyId"`
	CompanyName string          `json:"companyName"`
	MinCGPA     decimal.Decimal `json:"minCgpa"`
	IsEligible  bool            `json:"isEligible"`
}

// EligibleCompany is one company a given student meets the cutoff for
type EligibleCompany struct {
	CompanyID   int64           `json:"companyId"`
	CompanyName string          `json:"companyName"`
	MinCGPA     decimal.Decimal `json:"minCgpa"`
}
