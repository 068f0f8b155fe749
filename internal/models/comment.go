package models

import "time"

// PostComment represents a reply attached to exactly one Post. The parent
// reference (PostID) is immutable after creation.
//
// Post is not a stored relation: the service layer fetches the parent and
// attaches it whenever a comment is surfaced externally.
type PostComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  string    `gorm:"not null;index" json:"authorId"`
	Password  string    `gorm:"not null" json:"-"`
	PostID    uint      `gorm:"not null;index" json:"postId"`
	Post      *Post     `gorm:"-" json:"post,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
