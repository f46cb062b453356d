package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"placementhub/internal/app/models"
	"placementhub/internal/app/models/dto"
	"placementhub/internal/app/services"
	"placementhub/internal/middleware"
)

// CompanyController handles company-related endpoints
type CompanyController struct {
	companyService services.CompanyService
}

// NewCompanyController creates a new CompanyController
func NewCompanyController(companyService services.CompanyService) *CompanyController {
	return &CompanyController{
		companyService: companyService,
	}
}

// companyFromCreateRequest maps a create request onto the model,
// applying the default cutoff when none was supplied.
func companyFromCreateRequest(req *dto.CreateCompanyRequest) models.Company {
	company := models.Company{
		Name:          req.Name,
		IndustryID:    req.IndustryID,
		ContactPerson: req.ContactPerson,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		MinCGPA:       models.DefaultMinCGPA,
	}
	if req.MinCGPA != nil {
		company.MinCGPA = *req.MinCGPA
	}
	return company
}

// CreateCompany handles company creation
// @Summary Create a new company
// @Description Creates a new company with contact details and an optional CGPA cutoff (defaults to 8.00)
// @Tags companies
// @Accept json
// @Produce json
// @Param request body dto.CreateCompanyRequest true "Company information"
// @Success 201 {object} dto.APIResponse{data=models.Company} "Company created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Industry not found"
// @Failure 409 {object} dto.ErrorResponse "Company already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [post]
func (c *CompanyController) CreateCompany(ctx *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err, "Invalid company data")
		return
	}

	company := companyFromCreateRequest(&req)
	if err := c.companyService.CreateCompany(ctx, &company); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      company,
		Timestamp: time.Now(),
	})
}

// GetCompanyByID retrieves a company by ID
// @Summary Get company by ID
// @Description Retrieves a specific company by its ID, industry attached
// @Tags companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} dto.APIResponse{data=models.Company} "Company retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid company ID"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [get]
func (c *CompanyController) GetCompanyByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	company, err := c.companyService.GetCompanyByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      company,
		Timestamp: time.Now(),
	})
}

// GetAllCompanies retrieves all companies
// @Summary Get all companies
// @Description Retrieves a list of all companies, optionally filtered by industry
// @Tags companies
// @Produce json
// @Param industryId query int false "Filter by industry ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Company} "Companies retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid industry ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies [get]
func (c *CompanyController) GetAllCompanies(ctx *gin.Context) {
	var industryID int64
	if raw := ctx.Query("industryId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid industry ID")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		industryID = parsed
	}

	companies, err := c.companyService.GetAllCompanies(ctx, industryID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      companies,
		Timestamp: time.Now(),
	})
}

// UpdateCompany updates an existing company
// @Summary Update a company
// @Description Replaces an existing company's data, contact fields included
// @Tags companies
// @Accept json
// @Produce json
// @Param id path int true "Company ID"
// @Param request body dto.UpdateCompanyRequest true "Updated company information"
// @Success 200 {object} dto.APIResponse{data=models.Company} "Company updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Company or industry not found"
// @Failure 409 {object} dto.ErrorResponse "Company name already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [put]
func (c *CompanyController) UpdateCompany(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, err, "Invalid company data")
		return
	}

	company := models.Company{
		ID:            id,
		Name:          req.Name,
		IndustryID:    req.IndustryID,
		ContactPerson: req.ContactPerson,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		MinCGPA:       models.DefaultMinCGPA,
	}
	if req.MinCGPA != nil {
		company.MinCGPA = *req.MinCGPA
	}

	if err := c.companyService.UpdateCompany(ctx, &company); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      company,
		Timestamp: time.Now(),
	})
}

// DeleteCompany deletes a company
// @Summary Delete a company
// @Description Deletes a company that no placement references
// @Tags companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 204 "Company deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid company ID"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Failure 409 {object} dto.ErrorResponse "Company still referenced by placements"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /companies/{id} [delete]
func (c *CompanyController) DeleteCompany(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.companyService.DeleteCompany(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
