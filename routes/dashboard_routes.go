package routes

import (
	"dealer-app/config"
	"dealer-app/controllers"
	"dealer-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App, dashboardController *controllers.DashboardController) {
	api := app.Group(config.MAIN_ROUTES+"/dashboard", middleware.AuthMiddleware)

	api.Get("/", dashboardController.GetDashboard)
	api.Get("/trend", dashboardController.GetTrend)
	api.Get("/targets", dashboardController.GetTargets)
	api.Get("/report", dashboardController.ExportReport)
}
