package routes

import (
	"time"

	"github.com/Eswar-Mukku/food-intake-tracker/controllers"
	"github.com/Eswar-Mukku/food-intake-tracker/middlewares"
	"github.com/Eswar-Mukku/food-intake-tracker/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	// Public auth routes, rate limited per client IP
	auth := r.Group("/auth")
	auth.Use(middlewares.RateLimit(10, time.Minute))
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/mfa/verify", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.GET("/bmi", controllers.GetBMI)
	}

	// Food catalog
	foods := r.Group("/foods")
	foods.Use(middlewares.AuthMiddleware())
	{
		foods.GET("", controllers.SearchFoods)
		foods.GET("/categories", controllers.ListFoodCategories)
		foods.GET("/:id", controllers.GetFood)
	}

	// Daily logs
	logs := r.Group("/logs")
	logs.Use(middlewares.AuthMiddleware())
	{
		logs.POST("/food", controllers.AddFoodLog)
		logs.GET("/food", controllers.ListFoodLogs)
		logs.DELETE("/food/:id", controllers.DeleteFoodLog)

		logs.POST("/water", controllers.AddWaterLog)
		logs.GET("/water", controllers.ListWaterLogs)
		logs.DELETE("/water/latest", controllers.RemoveLatestWaterLog)

		logs.POST("/exercise", controllers.AddExerciseLog)
		logs.GET("/exercise", controllers.ListExerciseLogs)
		logs.DELETE("/exercise/:id", controllers.DeleteExerciseLog)

		logs.POST("/weight", controllers.AddWeightLog)
		logs.GET("/weight", controllers.ListWeightLogs)
	}

	// Derived views
	summary := r.Group("/summary")
	summary.Use(middlewares.AuthMiddleware())
	{
		summary.GET("/daily", controllers.GetDailySummary)
		summary.GET("/streak", controllers.GetStreak)
	}

	// Realtime refresh events
	rt := controllers.NewRealtimeController(hub)
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/events", rt.EventsWS)
	}

	return r
}
