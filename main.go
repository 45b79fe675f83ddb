package main

import (
	"fmt"
	"log"

	"dealer-app/config"
	"dealer-app/controllers"
	"dealer-app/controllers/idgen"
	"dealer-app/database"
	"dealer-app/repositories"
	"dealer-app/routes"
	"dealer-app/services"

	"github.com/gofiber/fiber/v2"
)

func main() {

	app := fiber.New()

	config.LoadConfig()

	// Connect to database
	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	store := database.NewGormStore(db)
	customerRepo := repositories.NewCustomerRepository(store)
	inventoryRepo := repositories.NewInventoryRepository(store)
	syncService := services.NewSyncService(customerRepo, inventoryRepo)
	mailService := services.NewMailService()

	// Setup CORS middleware
	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, controllers.NewAuthController(db, store))
	routes.SetupCustomerRoutes(app, controllers.NewCustomerController(customerRepo, syncService))
	routes.SetupInventoryRoutes(app, controllers.NewInventoryController(inventoryRepo, syncService))
	routes.SetupDashboardRoutes(app, controllers.NewDashboardController(customerRepo))
	routes.SetupNotificationRoutes(app, controllers.NewNotificationController(customerRepo, mailService))

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
