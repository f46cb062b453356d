package routes

import (
	"github.com/gin-gonic/gin"

	"placementhub/internal/app/controllers"
	"placementhub/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	departmentController *controllers.DepartmentController,
	industryController *controllers.IndustryController,
	companyController *controllers.CompanyController,
	studentController *controllers.StudentController,
	placementController *controllers.PlacementController,
	reportController *controllers.ReportController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	departments := v1.Group("/departments")
	{
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id", departmentController.GetDepartmentByID)
		departments.POST("", departmentController.CreateDepartment)
		departments.PUT("/:id", departmentController.UpdateDepartment)
		departments.DELETE("/:id", departmentController.DeleteDepartment)
	}

	industries := v1.Group("/industries")
	{
		industries.GET("", industryController.GetAllIndustries)
		industries.GET("/:id", industryController.GetIndustryByID)
		industries.POST("", industryController.CreateIndustry)
		industries.PUT("/:id", industryController.UpdateIndustry)
		industries.DELETE("/:id", industryController.DeleteIndustry)
	}

	companies := v1.Group("/companies")
	{
		companies.GET("", companyController.GetAllCompanies)
		companies.GET("/:id", companyController.GetCompanyByID)
		companies.POST("", companyController.CreateCompany)
		companies.PUT("/:id", companyController.UpdateCompany)
		companies.DELETE("/:id", companyController.DeleteCompany)
	}

	students := v1.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/:id", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:id", studentController.UpdateStudent)
		students.DELETE("/:id", studentController.DeleteStudent)
		students.GET("/:id/eligible-companies", studentController.GetEligibleCompanies)
	}

	placements := v1.Group("/placements")
	{
		placements.GET("", placementController.GetAllPlacements)
		placements.GET("/:id", placementController.GetPlacementByID)
		placements.POST("", placementController.CreatePlacement)
		placements.PUT("/:id", placementController.UpdatePlacement)
		placements.DELETE("/:id", placementController.DeletePlacement)
	}

	reports := v1.Group("/reports")
	{
		reports.GET("/placements", reportController.GetPlacementDetails)
		reports.GET("/department-placements", reportController.GetDepartmentPlacementCounts)
		reports.GET("/eligibility", reportController.GetEligibilityMatrix)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
