package routes

import (
	"dealer-app/config"
	"dealer-app/controllers"
	"dealer-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App, notificationController *controllers.NotificationController) {
	api := app.Group(config.MAIN_ROUTES+"/notifications", middleware.AuthMiddleware)

	api.Post("/follow-ups", notificationController.SendFollowUpReminders)
}
