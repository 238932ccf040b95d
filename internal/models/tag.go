package models

import (
	"time"
)

// BlogTag and CampingTag are structurally identical but live in separate
// tables: blog tags and camping tags are disjoint namespaces and a tag of
// one kind can never label an entry of the other.
//
// Slug is derived from Name on every write and is read-only to API
// callers. There is no uniqueness constraint on (user, slug); two tags
// with colliding slugs may coexist as distinct records.

// BlogTag labels blog entries, many-to-many.
type BlogTag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Slug      string    `gorm:"size:255;not null;index" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CampingTag labels camping entries, many-to-many.
type CampingTag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Slug      string    `gorm:"size:255;not null;index" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
