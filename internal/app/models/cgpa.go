package models

import "github.com/shopspring/decimal"

// CGPA bounds on the usual 10-point scale, and the cutoff applied to
// companies that don't specify one.
var (
	CGPAMin        = decimal.Zero
	CGPAMax        = decimal.NewFromInt(10)
	DefaultMinCGPA = decimal.RequireFromString("8.00")
)

// ValidCGPA reports whether v lies within the CGPA scale
func ValidCGPA(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(CGPAMin) && v.LessThanOrEqual(CGPAMax)
}
