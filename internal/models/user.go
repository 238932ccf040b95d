// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents an account that owns blog and camping entries.
// The email address is the login identity. Password holds the bcrypt
// hash and is never serialized.
type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"`
	Name        string    `gorm:"size:255" json:"name"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	IsStaff     bool      `gorm:"default:false" json:"is_staff"`
	IsSuperuser bool      `gorm:"default:false" json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
