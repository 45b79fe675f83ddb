package models

import "gorm.io/gorm"

// User is a row in the static login allow-list.
type User struct {
	gorm.Model
	Username string `json:"username" gorm:"unique"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// SessionUser is the `currentUser` record persisted at login and read by the
// shell to gate access and display identity.
type SessionUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
