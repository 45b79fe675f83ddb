package controllers

import (
	"dealer-app/models"
	"dealer-app/repositories"
	"dealer-app/services"

	"github.com/gofiber/fiber/v2"
)

type InventoryController struct {
	Repo *repositories.InventoryRepository
	Sync *services.SyncService
}

func NewInventoryController(repo *repositories.InventoryRepository, sync *services.SyncService) *InventoryController {
	return &InventoryController{Repo: repo, Sync: sync}
}

func (c *InventoryController) GetAllInventory(ctx *fiber.Ctx) error {
	items := c.Repo.All()
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inventory found", "data": items})
}

func (c *InventoryController) GetAvailableInventory(ctx *fiber.Ctx) error {
	items := c.Repo.Available()
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Available inventory found", "data": items})
}

func (c *InventoryController) SearchInventory(ctx *fiber.Ctx) error {
	items := c.Repo.Search(ctx.Query("q"))
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inventory found", "data": items})
}

func (c *InventoryController) GetInventoryByID(ctx *fiber.Ctx) error {
	item, err := c.Repo.GetByID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inventory item not found"})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inventory item found", "data": item})
}

// GetInventoryByVin serves the VIN auto-complete: the full item plus a deal
// snapshot the form can merge. The binding itself only happens at save.
func (c *InventoryController) GetInventoryByVin(ctx *fiber.Ctx) error {
	item, ok := c.Repo.FindByVin(ctx.Params("vin"))
	if !ok {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No inventory for VIN"})
	}

	snapshot := services.VehicleSnapshot(models.DealInfo{}, item)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Inventory item found",
		"data":    fiber.Map{"item": item, "dealInfo": snapshot},
	})
}

func (c *InventoryController) CreateInventoryItem(ctx *fiber.Ctx) error {
	var input models.InventoryItem
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item, err := c.Repo.Create(input)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inventory item created successfully", "data": item})
}

func (c *InventoryController) UpdateInventoryItem(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input models.InventoryItem
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item, err := c.Repo.Update(id, input)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inventory item not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inventory item updated successfully", "data": item})
}

func (c *InventoryController) DeleteInventoryItem(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	item, err := c.Repo.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inventory item not found"})
	}

	// Clear the VIN link on the bound customer before the item disappears.
	c.Sync.ReleaseCustomerBinding(item)

	if err := c.Repo.Delete(id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inventory item deleted successfully", "data": item})
}

// ReleaseInventoryItem puts an item back to available explicitly.
func (c *InventoryController) ReleaseInventoryItem(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	item, err := c.Repo.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inventory item not found"})
	}

	c.Sync.ReleaseInventory(item.VehicleInfo.VinNumber)

	item, _ = c.Repo.GetByID(id)
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Inventory item released", "data": item})
}
