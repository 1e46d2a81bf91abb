package model

import "time"

// WaitlistEntry is a pre-launch registration expressing interest in the
// marketplace. Email is unique case-insensitively.
type WaitlistEntry struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	FullName        string    `json:"full_name" gorm:"size:255;not null"`
	Email           string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	UserType        UserType  `json:"user_type" gorm:"type:varchar(20);not null"`
	ReceivesUpdates bool      `json:"receives_updates" gorm:"not null;default:true"`
	CreatedAt       time.Time `json:"created_at"`
}
