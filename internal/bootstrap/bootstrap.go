package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "placementhub/docs" // Import generated swagger docs
	appControllers "placementhub/internal/app/controllers"
	appMigrations "placementhub/internal/app/migrations"
	appRepos "placementhub/internal/app/repositories"
	appRoutes "placementhub/internal/app/routes"
	appServices "placementhub/internal/app/services"
	"placementhub/internal/config"
	"placementhub/internal/db"
	appMiddleware "placementhub/internal/middleware"
	"placementhub/internal/pkg/logger"
	"placementhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	DepartmentService    appServices.DepartmentService
	IndustryService      appServices.IndustryService
	CompanyService       appServices.CompanyService
	StudentService       appServices.StudentService
	PlacementService     appServices.PlacementService
	ReportService        appServices.ReportService
	DepartmentController *appControllers.DepartmentController
	IndustryController   *appControllers.IndustryController
	CompanyController    *appControllers.CompanyController
	StudentController    *appControllers.StudentController
	PlacementController  *appControllers.PlacementController
	ReportController     *appControllers.ReportController
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Create default data (after migrations)
	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), database, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	// Initialize services
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.IndustryService = appServices.NewIndustryService(deps.Repos.IndustryRepository)
	deps.CompanyService = appServices.NewCompanyService(deps.Repos.CompanyRepository, deps.Repos.IndustryRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.Repos.DepartmentRepository)
	deps.PlacementService = appServices.NewPlacementService(deps.Repos.PlacementRepository)
	deps.ReportService = appServices.NewReportService(deps.Repos.ReportRepository, deps.Repos.StudentRepository)

	// Initialize controllers
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.IndustryController = appControllers.NewIndustryController(deps.IndustryService)
	deps.CompanyController = appControllers.NewCompanyController(deps.CompanyService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.ReportService)
	deps.PlacementController = appControllers.NewPlacementController(deps.PlacementService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(appMiddleware.RequestID())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.DepartmentController,
		deps.IndustryController,
		deps.CompanyController,
		deps.StudentController,
		deps.PlacementController,
		deps.ReportController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
