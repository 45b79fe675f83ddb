package controllers

import (
	"dealer-app/controllers/idgen"
	"dealer-app/models"
	"dealer-app/repositories"
	"dealer-app/services"
	"dealer-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CustomerController struct {
	Repo *repositories.CustomerRepository
	Sync *services.SyncService
}

func NewCustomerController(repo *repositories.CustomerRepository, sync *services.SyncService) *CustomerController {
	return &CustomerController{Repo: repo, Sync: sync}
}

func (c *CustomerController) GetAllCustomers(ctx *fiber.Ctx) error {
	customers := c.Repo.All()
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Customers found", "data": customers})
}

func (c *CustomerController) GetCustomerByID(ctx *fiber.Ctx) error {
	customer, err := c.Repo.GetByID(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Customer found", "data": customer})
}

func (c *CustomerController) CreateCustomer(ctx *fiber.Ctx) error {
	var input models.Customer
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	customer, err := c.Repo.Create(input)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Reconcile the inventory side of the binding after every save.
	c.Sync.ApplyCustomerBinding(customer, "")

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Customer created successfully", "data": customer})
}

func (c *CustomerController) UpdateCustomer(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	existing, err := c.Repo.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	var input models.Customer
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	customer, err := c.Repo.Update(id, input)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// The previous VIN decides whether an old binding has to be released.
	c.Sync.ApplyCustomerBinding(customer, existing.VinNumber)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Customer updated successfully", "data": customer})
}

func (c *CustomerController) DeleteCustomer(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	customer, err := c.Repo.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	if customer.VinNumber != "" {
		c.Sync.ReleaseInventory(customer.VinNumber)
	}

	if err := c.Repo.Delete(id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Customer deleted successfully", "data": customer})
}

// AddDealMemo appends a timestamped memo to the customer's deal. Memos are
// append-only.
func (c *CustomerController) AddDealMemo(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var input struct {
		Content string `json:"content" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	customer, err := c.Repo.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	memo := models.DealMemo{
		ID:      idgen.GenerateStringID(),
		Date:    utils.Today(),
		Content: input.Content,
	}
	customer.DealInfo.DealMemos = append(customer.DealInfo.DealMemos, memo)

	customer, err = c.Repo.Update(id, customer)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Memo added successfully", "data": customer})
}

// UpdateDealStatus checks or unchecks one milestone. Checking without an
// explicit date stamps today.
func (c *CustomerController) UpdateDealStatus(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	key := ctx.Params("key")

	var input struct {
		Checked bool   `json:"checked"`
		Date    string `json:"date"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	customer, err := c.Repo.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
	}

	status := customer.DealInfo.Statuses.Get(key)
	if status == nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown status key"})
	}

	status.Checked = input.Checked
	if input.Checked {
		if input.Date != "" {
			status.Date = input.Date
		} else {
			status.Date = utils.Today()
		}
	} else if input.Date != "" {
		status.Date = input.Date
	}

	customer, err = c.Repo.Update(id, customer)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// A milestone change can move the derived inventory status too.
	c.Sync.ApplyCustomerBinding(customer, customer.VinNumber)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Status updated successfully", "data": customer})
}
