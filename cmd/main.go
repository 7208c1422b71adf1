package main

import (
	"github.com/nishantjoshi-007/NutriScan/config"
	"github.com/nishantjoshi-007/NutriScan/routes"
	"github.com/nishantjoshi-007/NutriScan/services"
	"github.com/nishantjoshi-007/NutriScan/storage"
	"github.com/nishantjoshi-007/NutriScan/utils"
)

func main() {
	config.LoadEnv()
	config.InitDB()
	utils.InitS3()

	store := storage.NewGormStore(config.DB)
	hub := services.NewRealtimeHub()
	bus := services.NewNoticeBus(hub)

	history := services.NewHistoryService(store, bus)
	dailyLog := services.NewDailyLogService(store, history, bus)
	model := services.NewGeminiClient(config.ModelEndpoint(), config.ModelAPIKey())
	analysis := services.NewAnalysisService(model, dailyLog)

	r := routes.SetupRouter(routes.Deps{
		Analysis: analysis,
		History:  history,
		DailyLog: dailyLog,
		Hub:      hub,
	})
	r.Run(":8080")
}
