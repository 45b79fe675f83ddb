package controllers

import (
	"errors"

	"dealer-app/repositories"
	"dealer-app/services"

	"github.com/gofiber/fiber/v2"
)

type NotificationController struct {
	Repo *repositories.CustomerRepository
	Mail *services.MailService
}

func NewNotificationController(repo *repositories.CustomerRepository, mail *services.MailService) *NotificationController {
	return &NotificationController{Repo: repo, Mail: mail}
}

// SendFollowUpReminders mails the pending follow-up list to the requested
// recipients.
func (c *NotificationController) SendFollowUpReminders(ctx *fiber.Ctx) error {
	var input struct {
		ToEmails []string `json:"to_emails" validate:"required,min=1"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	count, err := c.Mail.SendFollowUpReminders(c.Repo.All(), input.ToEmails)
	if err != nil {
		if errors.Is(err, services.ErrMailNotConfigured) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Follow-up reminders sent",
		"data":    fiber.Map{"pending_count": count},
	})
}
