package controllers

import (
	"encoding/json"
	"errors"
	"time"

	"dealer-app/config"
	"dealer-app/database"
	"dealer-app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB    *gorm.DB
	Store database.RecordStore
}

func NewAuthController(db *gorm.DB, store database.RecordStore) *AuthController {
	return &AuthController{DB: db, Store: store}
}

// Login checks the credentials against the seeded allow-list, issues a JWT
// and writes the currentUser record the shell reads for identity.
func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		ID       string `json:"id"`
		Password string `json:"password"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
		})
	}

	if input.ID == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing required fields",
		})
	}

	var mUser models.User
	result := c.DB.Where("username = ?", input.ID).First(&mUser)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid username or password",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": result.Error.Error(),
		})
	}

	if bcrypt.CompareHashAndPassword([]byte(mUser.Password), []byte(input.Password)) != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	sessionID := uuid.New().String()
	claims := jwt.MapClaims{
		"user_id":    mUser.Username,
		"name":       mUser.Name,
		"role":       mUser.Role,
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Duration(config.JWTExpiration) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.JWTSecret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to sign token",
		})
	}

	sessionUser := models.SessionUser{ID: mUser.Username, Name: mUser.Name, Role: mUser.Role}
	data, _ := json.Marshal(sessionUser)
	if err := c.Store.Save(database.KeyCurrentUser, data); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to save session",
		})
	}

	ctx.Cookie(config.GetTokenCookie(signed))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   signed,
		"data":    sessionUser,
	})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	if err := c.Store.Delete(database.KeyCurrentUser); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to clear session",
		})
	}

	ctx.Cookie(config.GetTokenCookie(""))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}

// Me returns the currentUser record; its absence means logged out and the
// shell redirects to the login flow.
func (c *AuthController) Me(ctx *fiber.Ctx) error {
	data, ok := c.Store.Load(database.KeyCurrentUser)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Not logged in",
		})
	}

	var sessionUser models.SessionUser
	if err := json.Unmarshal(data, &sessionUser); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Not logged in",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "User found", "data": sessionUser})
}
