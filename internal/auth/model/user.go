// Package model provides domain models and DTOs for the auth module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Roles known to the route guard.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// User represents an account in the system.
// Matches the users table schema.
type User struct {
	ID           string    `gorm:"primaryKey;column:id;type:varchar(64)"               json:"id"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"     json:"-"`
	Role         string    `gorm:"column:role;type:varchar(32);not null;default:viewer" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"                          json:"-"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null"                          json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}

// Public returns the user record safe to hand to clients.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Role: u.Role}
}
