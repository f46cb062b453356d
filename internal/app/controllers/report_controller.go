package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"placementhub/internal/app/models/dto"
	"placementhub/internal/app/services"
	"placementhub/internal/middleware"
)

// ReportController handles the read-only reporting endpoints
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetPlacementDetails returns the denormalized placement report
// @Summary Placement details report
// @Description One row per placement with student, department, company and industry names joined in
// @Tags reports
// @Produce json
// @Param departmentId query int false "Filter by department ID"
// @Param industryId query int false "Filter by industry ID"
// @Success 200 {object} dto.APIResponse{data=[]models.PlacementDetail} "Report retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/placements [get]
func (c *ReportController) GetPlacementDetails(ctx *gin.Context) {
	var filter dto.PlacementDetailsFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		bindingError(ctx, err, "Invalid filter parameters")
		return
	}

	details, err := c.reportService.GetPlacementDetails(ctx, filter.DepartmentID, filter.IndustryID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      details,
		Timestamp: time.Now(),
	})
}

// GetDepartmentPlacementCounts returns per-department placement counts
// @Summary Department placement counts
// @Description Placement count for every department; departments without placements report zero
// @Tags reports
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.DepartmentPlacementCount} "Report retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/department-placements [get]
func (c *ReportController) GetDepartmentPlacementCounts(ctx *gin.Context) {
	counts, err := c.reportService.GetDepartmentPlacementCounts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      counts,
		Timestamp: time.Now(),
	})
}

// GetEligibilityMatrix returns the student x company eligibility rows
// @Summary Student eligibility matrix
// @Description Students crossed with companies, each row flagged with whether the student meets the cutoff
// @Tags reports
// @Produce json
// @Param studentId query int false "Filter by student ID"
// @Param companyId query int false "Filter by company ID"
// @Param eligible query bool false "Filter by eligibility"
// @Success 200 {object} dto.APIResponse{data=[]models.EligibilityRow} "Report retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/eligibility [get]
func (c *ReportController) GetEligibilityMatrix(ctx *gin.Context) {
	var filter dto.EligibilityFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		bindingError(ctx, err, "Invalid filter parameters")
		return
	}

	matrix, err := c.reportService.GetEligibilityMatrix(ctx, filter.StudentID, filter.CompanyID, filter.Eligible)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      matrix,
		Timestamp: time.Now(),
	})
}
