package model

// UserType classifies how an account uses the marketplace.
type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeProvider UserType = "provider"
	UserTypeBoth     UserType = "both"
)

// User represents a registered customer or service provider.
// Email and username are unique case-insensitively.
type User struct {
	ID             uint     `json:"id" gorm:"primaryKey"`
	Email          string   `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username       string   `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Password       string   `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FullName       string   `json:"full_name" gorm:"size:255;not null"`
	UserType       UserType `json:"user_type" gorm:"type:varchar(20);not null"`
	ExternalAuthID string   `json:"external_auth_id,omitempty" gorm:"size:255"`
}
