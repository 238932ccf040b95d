package models

import (
	"time"
)

// Camping is a camping-site review entry owned by exactly one user.
type Camping struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;index" json:"user_id"`
	User      User         `gorm:"foreignKey:UserID" json:"user"`
	Title     string       `gorm:"size:255;not null" json:"title"`
	Review    string       `gorm:"type:text" json:"review"`
	Tags      []CampingTag `gorm:"many2many:camping_entry_tags" json:"tags"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
