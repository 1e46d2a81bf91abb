package model

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking is a customer's request for a business to perform a service on a
// date. Bookings are never deleted; the status field encodes the lifecycle.
type Booking struct {
	ID         uint          `json:"id" gorm:"primaryKey"`
	CustomerID uint          `json:"customer_id" gorm:"not null;index"`
	BusinessID uint          `json:"business_id" gorm:"not null;index"`
	EventDate  time.Time     `json:"event_date" gorm:"not null"`
	Status     BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Details    string        `json:"details,omitempty" gorm:"type:text"`
	CreatedAt  time.Time     `json:"created_at"`
}
