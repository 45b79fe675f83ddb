package database

import (
	"errors"
	"log"

	"dealer-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedUsers(db)
}

// SeedUsers creates the static login allow-list. Existing users are left
// untouched.
func SeedUsers(db *gorm.DB) {
	users := []models.User{
		{Username: "admin", Password: "password123", Name: "Taro Sato", Role: "admin"},
		{Username: "takahashi", Password: "test123", Name: "Jiro Takahashi", Role: "user"},
		{Username: "suzuki", Password: "test123", Name: "Hanako Suzuki", Role: "user"},
	}

	for _, user := range users {
		var existing models.User
		err := db.Where("username = ?", user.Username).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Unexpected DB error: %v", err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		user.Password = string(hashed)

		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to seed user %s: %v", user.Username, err)
		}
	}
}
