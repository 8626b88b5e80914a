package app

import (
	"cs_hub_backend/internal/config"
	"cs_hub_backend/internal/middleware"
	"cs_hub_backend/internal/model"
	"cs_hub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.POST("/register", c.auth.Register)
		api.POST("/login", c.auth.Login)

		api.GET("/subjects", c.subject.GetSubjects)
		api.GET("/subjects/:slug", c.subject.GetSubject)
		api.GET("/subjects/:slug/chapters", c.exercise.GetChapters)
		api.GET("/subjects/:slug/exercises", c.exercise.GetExercises)
		api.GET("/exercises/:slug", c.exercise.GetExercise)
		api.GET("/documents", c.document.GetDocuments)
		api.GET("/documents/:id", c.document.GetDocument)
		api.POST("/documents/:id/download", c.document.DownloadDocument)
	}

	authed := router.Group("/api")
	authed.Use(middleware.AuthMiddleware(cfg))
	{
		authed.GET("/profile", c.auth.GetProfile)
		authed.GET("/progress", c.exercise.GetProgress)
		authed.GET("/subjects/:slug/progress", c.exercise.GetChapterSummaries)
		authed.POST("/exercises/:slug/submit", c.exercise.Submit)

		authed.POST("/documents", c.document.UploadDocument)

		authed.GET("/messages/conversations", c.message.GetConversations)
		authed.POST("/messages/conversations", c.message.CreateConversation)
		authed.GET("/messages/conversations/:id/messages", c.message.GetMessages)
		authed.POST("/messages/conversations/:id/messages", c.message.SendMessage)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.POST("/subjects", c.subject.CreateSubject)
		admin.GET("/exercises/subjects", c.adminExercise.ListSubjects)
		admin.POST("/exercises", c.adminExercise.CreateExercise)
		admin.POST("/exercises/sync", c.adminExercise.TriggerSync)
	}
}
