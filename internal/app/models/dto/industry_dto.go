package dto

// CreateIndustryRequest represents industry creation data
type CreateIndustryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateIndustryRequest represents industry update data
type UpdateIndustryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}
