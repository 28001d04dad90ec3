package api

import (
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/salesops/sales-portal/docs"
)

// SetupRoutes sets up the API routes
func SetupRoutes(handler *Handler, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(Recovery())
	router.Use(CORS(allowedOrigins))
	router.Use(gin.Logger())
	router.Use(Throttle(300, time.Minute))

	// Health check
	router.GET("/health", handler.HealthCheck)

	// API docs
	router.GET("/swagger/*any", gin.WrapH(httpSwagger.WrapHandler))

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Reporting
		v1.GET("/reporting/summary", handler.GetDashboardSummary)

		// Users
		users := v1.Group("/users")
		{
			users.POST("", handler.CreateUser)
			users.GET("", handler.GetUsers)
			users.GET("/count/employees", handler.CountEmployees)
			users.GET("/check", handler.CheckUserByEmail)
			users.PUT("/:id", handler.UpdateUser)
			users.DELETE("/:id", handler.DeleteUser)
		}

		// Leads
		leads := v1.Group("/leads")
		{
			leads.GET("", handler.GetLeads)
			leads.GET("/follow-ups", handler.GetFollowUpLeads)
			leads.GET("/assigned/:email", handler.GetLeadsByAssignee)
			leads.POST("", handler.CreateLead)
			leads.PUT("/:id", handler.UpdateLead)
			leads.DELETE("/:id", handler.DeleteLead)
		}

		// Tasks
		tasks := v1.Group("/tasks")
		{
			tasks.GET("", handler.GetTasks)
			tasks.POST("", handler.CreateTask)
			tasks.PUT("/:id", handler.UpdateTask)
			tasks.DELETE("/:id", handler.DeleteTask)
		}

		// Projects
		projects := v1.Group("/projects")
		{
			projects.GET("", handler.GetProjects)
			projects.POST("", handler.CreateProject)
			projects.PUT("/:id", handler.UpdateProject)
			projects.DELETE("/:id", handler.DeleteProject)
		}

		// Allocations
		allocations := v1.Group("/allocations")
		{
			allocations.GET("", handler.GetAllocations)
			allocations.POST("", handler.CreateAllocation)
			allocations.PUT("/:id", handler.UpdateAllocation)
			allocations.DELETE("/:id", handler.DeleteAllocation)
		}
	}

	return router
}
