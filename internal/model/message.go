package model

import "time"

// Message is a direct message between two users, optionally tied to a
// booking. Messages are immutable after creation.
type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	BookingID  uint      `json:"booking_id,omitempty" gorm:"index"` // 0 when not tied to a booking
	SenderID   uint      `json:"sender_id" gorm:"not null;index"`
	ReceiverID uint      `json:"receiver_id" gorm:"not null;index"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	IsRead     bool      `json:"is_read" gorm:"not null;default:false"`
	SentAt     time.Time `json:"sent_at"`
}
