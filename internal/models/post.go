// Package models contains data structures for the application's domain models.
package models

import "time"

// Post represents a top-level board entry. Password holds a bcrypt hash of
// the author's secret and is never serialized to clients.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	AuthorID  string    `gorm:"not null;index" json:"authorId"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
