package apperrors

import (
	"errors"
	"fmt"
)

// Taxonomy roots. Every domain error wraps exactly one of these so
// callers can branch on the class without knowing the entity.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrValidationFailed    = errors.New("validation failed")
)

// Department errors
var (
	ErrDepartmentNotFound      = fmt.Errorf("department %w", ErrNotFound)
	ErrDepartmentAlreadyExists = fmt.Errorf("department with this name already exists: %w", ErrUniqueViolation)
	ErrDepartmentInUse         = fmt.Errorf("department is still referenced by students: %w", ErrForeignKeyViolation)
)

// Industry errors
var (
	ErrIndustryNotFound      = fmt.Errorf("industry %w", ErrNotFound)
	ErrIndustryAlreadyExists = fmt.Errorf("industry with this name already exists: %w", ErrUniqueViolation)
	ErrIndustryInUse         = fmt.Errorf("industry is still referenced by companies: %w", ErrForeignKeyViolation)
)

// Company errors
var (
	ErrCompanyNotFound      = fmt.Errorf("company %w", ErrNotFound)
	ErrCompanyAlreadyExists = fmt.Errorf("company with this name already exists: %w", ErrUniqueViolation)
	ErrCompanyInUse         = fmt.Errorf("company is still referenced by placements: %w", ErrForeignKeyViolation)
)

// Student errors
var (
	ErrStudentNotFound    = fmt.Errorf("student %w", ErrNotFound)
	ErrEmailAlreadyExists = fmt.Errorf("student with this email already exists: %w", ErrUniqueViolation)
)

// Placement errors
var (
	ErrPlacementNotFound       = fmt.Errorf("placement %w", ErrNotFound)
	ErrPlacementAlreadyExists  = fmt.Errorf("student is already placed at this company: %w", ErrUniqueViolation)
	ErrPlacementStudentMissing = fmt.Errorf("placement references a nonexistent student: %w", ErrForeignKeyViolation)
	ErrPlacementCompanyMissing = fmt.Errorf("placement references a nonexistent company: %w", ErrForeignKeyViolation)
)

// CustomError carries additional context alongside a wrapped sentinel
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}
