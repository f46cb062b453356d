package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"placementhub/internal/app/models"
	"placementhub/internal/app/models/dto"
	"placementhub/internal/app/services"
	"placementhub/internal/middleware"
)

// IndustryController handles industry-related endpoints
type IndustryController struct {
	industryService services.IndustryService
}

// NewIndustryController creates a new IndustryController
func NewIndustryController(industryService services.IndustryService) *IndustryController {
	return &IndustryController{
		industryService: industryService,
	}
}

// CreateIndustry handles industry creation
// @Summary Create a new industry
// @Description Creates a new industry with the provided name
// @Tags industries
// @Accept json
// @Produce json
// @Param request body dto.CreateIndustryRequest true "Industry information"
// @Success 201 {object} dto.APIResponse{data=models.Industry} "Industry created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Industry already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /industries [post]
func (c *IndustryController) CreateIndustry(ctx *gin.Context) {
	var req dto.CreateIndustryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err, "Invalid industry data")
		return
	}

	industry := models.Industry{Name: req.Name}
	if err := c.industryService.CreateIndustry(ctx, &industry); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      industry,
		Timestamp: time.Now(),
	})
}

// GetIndustryByID retrieves an industry by ID
// @Summary Get industry by ID
// @Description Retrieves a specific industry by its ID
// @Tags industries
// @Produce json
// @Param id path int true "Industry ID"
// @Success 200 {object} dto.APIResponse{data=models.Industry} "Industry retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid industry ID"
// @Failure 404 {object} dto.ErrorResponse "Industry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /industries/{id} [get]
func (c *IndustryController) GetIndustryByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	industry, err := c.industryService.GetIndustryByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      industry,
		Timestamp: time.Now(),
	})
}

// GetAllIndustries retrieves all industries
// @Summary Get all industries
// @Description Retrieves a list of all industries
// @Tags industries
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Industry} "Industries retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /industries [get]
func (c *IndustryController) GetAllIndustries(ctx *gin.Context) {
	industries, err := c.industryService.GetAllIndustries(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      industries,
		Timestamp: time.Now(),
	})
}

// UpdateIndustry updates an existing industry
// @Summary Update an industry
// @Description Replaces an existing industry's data
// @Tags industries
// @Accept json
// @Produce json
// @Param id path int true "Industry ID"
// @Param request body dto.UpdateIndustryRequest true "Updated industry information"
// @Success 200 {object} dto.APIResponse{data=models.Industry} "Industry updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Industry not found"
// @Failure 409 {object} dto.ErrorResponse "Industry name already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /industries/{id} [put]
func (c *IndustryController) UpdateIndustry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateIndustryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err, "Invalid industry data")
		return
	}

	industry := models.Industry{ID: id, Name: req.Name}
	if err := c.industryService.UpdateIndustry(ctx, &industry); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      industry,
		Timestamp: time.Now(),
	})
}

// DeleteIndustry deletes an industry
// @Summary Delete an industry
// @Description Deletes an industry that no company references
// @Tags industries
// @Produce json
// @Param id path int true "Industry ID"
// @Success 204 "Industry deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid industry ID"
// @Failure 404 {object} dto.ErrorResponse "Industry not found"
// @Failure 409 {object} dto.ErrorResponse "Industry still referenced by companies"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /industries/{id} [delete]
func (c *IndustryController) DeleteIndustry(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.industryService.DeleteIndustry(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
