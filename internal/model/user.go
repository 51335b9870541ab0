package model

import "time"

// User represents a member of the user directory.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:80;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	CreatedAt time.Time `json:"created_at"`
}
