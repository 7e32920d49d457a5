package app

import (
	"quiz_backend/docs"
	"quiz_backend/internal/middleware"
	"quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 题目模块
		questions := api.Group("/questions")
		{
			questions.GET("", c.question.ListQuestions)
			questions.GET("/list", c.question.CompactList)
			questions.GET("/search", c.question.SearchQuestions)
			questions.GET("/:id", c.question.GetQuestion)
			questions.POST("", middleware.ValidateQuestion(), c.question.CreateQuestion)
			questions.DELETE("/all", c.question.DeleteAllQuestions)
			questions.DELETE("/:id", c.question.DeleteQuestion)
		}

		// 结果模块
		result := api.Group("/result")
		{
			result.GET("", c.result.ListResults)
			result.POST("", middleware.ValidateResult(), c.result.StoreResult)
			result.DELETE("/all", c.result.DeleteAllResults)
			result.DELETE("/:id", c.result.DeleteResult)
		}
	}
}
