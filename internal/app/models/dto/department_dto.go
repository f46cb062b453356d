package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateDepartmentRequest represents department update data.
// Updates are full-record replacement, not partial patch.
type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}
