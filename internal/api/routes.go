package api

import (
	"net/http"

	"alcyxob/training-client/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	sync *service.SyncOrchestrator,
	notifications *service.NotificationQueue,
	navigation *service.RouteTracker,
) {
	authHandler := NewAuthHandler(authService)
	calendarHandler := NewCalendarHandler(sync)
	planningHandler := NewPlanningHandler(sync)
	coachHandler := NewCoachHandler(sync)

	router.Use(RequestIDMiddleware())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		// --- UI capabilities, available before sign-in ---
		apiV1.GET("/notifications", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"notifications": notifications.Drain()})
		})
		apiV1.GET("/navigation", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"screen": navigation.Current()})
		})

		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
		}
	}

	protected := apiV1.Group("")
	protected.Use(SessionMiddleware(authService))
	{
		protected.GET("/me", authHandler.Me)
		protected.POST("/auth/password", authHandler.ChangePassword)

		// --- Calendar ---
		calendarGroup := protected.Group("/calendar")
		{
			calendarGroup.GET("", calendarHandler.Get)
			// month and year navigation stay available while blocked
			calendarGroup.POST("/month", calendarHandler.NavigateMonth)
			calendarGroup.POST("/jump", calendarHandler.Jump)

			pointer := calendarGroup.Group("")
			pointer.Use(PointerGuard(sync))
			{
				pointer.POST("/select", calendarHandler.Select)
				pointer.POST("/scroll", calendarHandler.Scroll)
				pointer.POST("/momentum-end", calendarHandler.MomentumEnd)
				pointer.POST("/end-reached", calendarHandler.EndReached)
			}
		}

		// --- Planning ---
		planningGroup := protected.Group("/planning")
		{
			planningGroup.GET("", planningHandler.Get)
			planningGroup.POST("/refresh", planningHandler.Refresh)
			planningGroup.POST("/filter", planningHandler.Filter)
			planningGroup.POST("/:planId/columns/:columnId/toggle", planningHandler.Toggle)
			planningGroup.PUT("/:planId/columns/:columnId/record", planningHandler.UpdateRecord)
		}

		// --- Coaches ---
		coachGroup := protected.Group("/coaches")
		{
			coachGroup.GET("", coachHandler.List)
			coachGroup.POST("/refresh", coachHandler.Refresh)
			coachGroup.POST("/select", coachHandler.Select)
			coachGroup.GET("/:coachId/photo", coachHandler.Photo)
		}
	}
}
