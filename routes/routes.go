package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nishantjoshi-007/NutriScan/controllers"
	"github.com/nishantjoshi-007/NutriScan/middlewares"
	"github.com/nishantjoshi-007/NutriScan/services"
)

type Deps struct {
	Analysis *services.AnalysisService
	History  *services.HistoryService
	DailyLog *services.DailyLogService
	Hub      *services.RealtimeHub
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	analysisCtl := controllers.NewAnalysisController(d.Analysis)
	recipeCtl := controllers.NewRecipeController(d.Analysis)
	limitsCtl := controllers.NewLimitsController(d.Analysis)
	historyCtl := controllers.NewHistoryController(d.History)
	logCtl := controllers.NewDailyLogController(d.DailyLog)
	realtimeCtl := controllers.NewRealtimeController(d.Hub)

	// Public
	r.POST("/auth/device", controllers.RegisterDevice)

	// Everything else needs a device token
	api := r.Group("")
	api.Use(middlewares.AuthMiddleware())
	{
		analysis := api.Group("/analysis")
		{
			analysis.POST("/image", analysisCtl.AnalyzeImage)
			analysis.POST("/text", analysisCtl.AnalyzeText)
			analysis.POST("/weight", analysisCtl.EstimateWeight)
		}

		recipes := api.Group("/recipes")
		{
			recipes.GET("/search", recipeCtl.Search)
			recipes.GET("/details", recipeCtl.Details)
		}

		limits := api.Group("/limits")
		{
			limits.GET("", limitsCtl.Get)
			limits.PUT("", limitsCtl.Update)
			limits.GET("/context", limitsCtl.Context)
		}

		history := api.Group("/history")
		{
			history.POST("", historyCtl.Save)
			history.GET("", historyCtl.GetAll)
			history.GET("/stats", historyCtl.Stats)
			history.DELETE("/:id", historyCtl.DeleteOne)
			history.DELETE("", historyCtl.ClearAll)
		}

		logs := api.Group("/logs")
		{
			logs.POST("", logCtl.Add)
			logs.GET("", logCtl.GetAll)
			logs.GET("/aggregates", logCtl.Aggregates)
			logs.GET("/date/:date", logCtl.ForDate)
			logs.PATCH("/:id", logCtl.Update)
			logs.DELETE("/:id", logCtl.Delete)
			logs.DELETE("", logCtl.ClearAll)
			logs.GET("/:id/nutrition", logCtl.Nutrition)
		}

		api.POST("/uploads", controllers.UploadImage)
		api.GET("/ws", realtimeCtl.NoticesWS)
	}

	return r
}
