package routes

import (
	"dealer-app/config"
	"dealer-app/controllers"
	"dealer-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupInventoryRoutes(app *fiber.App, inventoryController *controllers.InventoryController) {
	api := app.Group(config.MAIN_ROUTES+"/inventory", middleware.AuthMiddleware)

	api.Get("/", inventoryController.GetAllInventory)
	api.Post("/", inventoryController.CreateInventoryItem)
	api.Get("/available", inventoryController.GetAvailableInventory)
	api.Get("/search", inventoryController.SearchInventory)
	api.Get("/vin/:vin", inventoryController.GetInventoryByVin)
	api.Get("/:id", inventoryController.GetInventoryByID)
	api.Put("/:id", inventoryController.UpdateInventoryItem)
	api.Delete("/:id", inventoryController.DeleteInventoryItem)
	api.Post("/:id/release", inventoryController.ReleaseInventoryItem)
}
