// Package router assembles the gin engine: middleware, handlers and the
// /api/v1 route table.
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	apperrors "smartguider/internal/errors"
	"smartguider/internal/finance"
	"smartguider/internal/handlers"
	"smartguider/internal/middleware"
	"smartguider/internal/services"

	_ "smartguider/internal/docs" // Import swagger docs
)

// Services are the business services the routes are served from.
type Services struct {
	User       services.UserServicer
	Expense    services.ExpenseServicer
	Goal       services.GoalServicer
	Investment services.InvestmentServicer
	Dashboard  services.DashboardServicer
	Insight    services.InsightServicer
	Audit      services.AuditServicer
}

// Options configures the engine.
type Options struct {
	// CORSOrigin is the web origin allowed to call the API.
	CORSOrigin string
	// Location is the calendar plain dates are read in.
	Location *time.Location
	// Clock names export files; nil reads the wall clock in Location.
	Clock finance.Clock
	// HealthCheck, when set, is run by /api/health.
	HealthCheck func(ctx context.Context) error
	// Swagger mounts the API docs under /swagger.
	Swagger bool
}

// New builds the engine with every route registered.
func New(svc Services, opts Options) *gin.Engine {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	origin := opts.CORSOrigin
	if origin == "" {
		origin = "*"
	}

	authHandler := handlers.NewAuthHandler(svc.User, svc.Audit)
	settingsHandler := handlers.NewSettingsHandler(svc.User, svc.Audit)
	expenseHandler := handlers.NewExpenseHandler(svc.Expense, svc.Audit, loc, opts.Clock)
	goalHandler := handlers.NewGoalHandler(svc.Goal, svc.Audit, loc)
	investmentHandler := handlers.NewInvestmentHandler(svc.Investment, svc.Audit, loc)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard)
	insightHandler := handlers.NewInsightHandler(svc.Insight)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(origin))

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/api/health", func(c *gin.Context) {
		if opts.HealthCheck != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := opts.HealthCheck(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)
	protected.GET("/settings", settingsHandler.GetSettings)
	protected.PUT("/settings", settingsHandler.UpdateSettings)

	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetUserExpenses)
	expenses.GET("/categories", expenseHandler.GetCategoryBreakdown)
	expenses.GET("/export", expenseHandler.ExportExpenses)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetUserGoals)
	goals.GET("/:id", goalHandler.GetGoalByID)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	investments := protected.Group("/investments")
	investments.POST("", investmentHandler.AddInvestment)
	investments.GET("", investmentHandler.GetUserInvestments)
	investments.GET("/portfolio", investmentHandler.GetPortfolio)
	investments.GET("/:id", investmentHandler.GetInvestmentByID)
	investments.PUT("/:id", investmentHandler.UpdateInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	dashboard := protected.Group("/dashboard")
	dashboard.GET("", dashboardHandler.GetDashboard)
	dashboard.GET("/history", dashboardHandler.GetHistory)

	insights := protected.Group("/insights")
	insights.GET("", insightHandler.ListInsights)
	insights.POST("/analyze", insightHandler.AnalyzeSpending)
	insights.POST("/summary", insightHandler.SummarizeMonth)
	insights.POST("/parse-expense", insightHandler.ParseExpense)
	insights.POST("/advice", insightHandler.SuggestAdvice)

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	})

	return router
}
