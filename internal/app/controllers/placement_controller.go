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

// PlacementController handles placement-related endpoints
type PlacementController struct {
	placementService services.PlacementService
}

// NewPlacementController creates a new PlacementController
func NewPlacementController(placementService services.PlacementService) *PlacementController {
	return &PlacementController{
		placementService: placementService,
	}
}

// parsePlacedOn parses the date-only wire format, writing the 400
// response itself on failure.
func parsePlacedOn(ctx *gin.Context, raw string) (time.Time, bool) {
	placedOn, err := time.Parse(dto.PlacedOnLayout, raw)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid placement date")
		errorDetail = errorDetail.WithDetails("placedOn must be formatted as " + dto.PlacedOnLayout)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return time.Time{}, false
	}
	return placedOn, true
}

// CreatePlacement records a new placement
// @Summary Record a placement
// @Description Records a student's placement at a company and marks the student placed in the same transaction
// @Tags placements
// @Accept json
// @Produce json
// @Param request body dto.CreatePlacementRequest true "Placement information"
// @Success 201 {object} dto.APIResponse{data=models.Placement} "Placement recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Duplicate placement, or unknown student/company"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements [post]
func (c *PlacementController) CreatePlacement(ctx *gin.Context) {
	var req dto.CreatePlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err, "Invalid placement data")
		return
	}

	placedOn, ok := parsePlacedOn(ctx, req.PlacedOn)
	if !ok {
		return
	}

	placement := models.Placement{
		StudentID: req.StudentID,
		CompanyID: req.CompanyID,
		Salary:    req.Salary,
		PlacedOn:  placedOn,
	}
	if err := c.placementService.CreatePlacement(ctx, &placement); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      placement,
		Timestamp: time.Now(),
	})
}

// GetPlacementByID retrieves a placement by ID
// @Summary Get placement by ID
// @Description Retrieves a specific placement by its ID
// @Tags placements
// @Produce json
// @Param id path int true "Placement ID"
// @Success 200 {object} dto.APIResponse{data=models.Placement} "Placement retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid placement ID"
// @Failure 404 {object} dto.ErrorResponse "Placement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/{id} [get]
func (c *PlacementController) GetPlacementByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	placement, err := c.placementService.GetPlacementByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      placement,
		Timestamp: time.Now(),
	})
}

// GetAllPlacements retrieves placements
// @Summary Get all placements
// @Description Retrieves placements, optionally filtered by student and/or company
// @Tags placements
// @Produce json
// @Param studentId query int false "Filter by student ID"
// @Param companyId query int false "Filter by company ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Placement} "Placements retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements [get]
func (c *PlacementController) GetAllPlacements(ctx *gin.Context) {
	var filter dto.PlacementListFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		bindingError(ctx, err, "Invalid filter parameters")
		return
	}

	placements, err := c.placementService.GetAllPlacements(ctx, filter.StudentID, filter.CompanyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      placements,
		Timestamp: time.Now(),
	})
}

// UpdatePlacement updates an existing placement
// @Summary Update a placement
// @Description Replaces a placement's salary and date; student and company are immutable
// @Tags placements
// @Accept json
// @Produce json
// @Param id path int true "Placement ID"
// @Param request body dto.UpdatePlacementRequest true "Updated placement information"
// @Success 200 {object} dto.APIResponse{data=models.Placement} "Placement updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Placement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/{id} [put]
func (c *PlacementController) UpdatePlacement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePlacementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err, "Invalid placement data")
		return
	}

	placedOn, ok := parsePlacedOn(ctx, req.PlacedOn)
	if !ok {
		return
	}

	placement := models.Placement{
		ID:       id,
		Salary:   req.Salary,
		PlacedOn: placedOn,
	}
	if err := c.placementService.UpdatePlacement(ctx, &placement); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      placement,
		Timestamp: time.Now(),
	})
}

// DeletePlacement deletes a placement
// @Summary Delete a placement
// @Description Removes a placement and recomputes the student's placement flag in the same transaction
// @Tags placements
// @Produce json
// @Param id path int true "Placement ID"
// @Success 204 "Placement deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid placement ID"
// @Failure 404 {object} dto.ErrorResponse "Placement not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /placements/{id} [delete]
func (c *PlacementController) DeletePlacement(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.placementService.DeletePlacement(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
