package model

// Business represents a provider's service profile (photography, catering,
// venues and so on). Many businesses may reference one user, although the
// UI assumes one per provider.
type Business struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	UserID       uint     `json:"user_id" gorm:"not null;index"`
	Name         string   `json:"name" gorm:"size:255;not null"`
	Description  string   `json:"description" gorm:"type:text;not null"`
	Category     string   `json:"category" gorm:"size:100;not null;index"` // matched case-insensitively
	Location     string   `json:"location" gorm:"size:255;not null"`
	ContactEmail string   `json:"contact_email" gorm:"size:255;not null"`
	ContactPhone string   `json:"contact_phone,omitempty" gorm:"size:50"`
	Portfolio    []string `json:"portfolio,omitempty" gorm:"serializer:json"`
	Pricing      string   `json:"pricing,omitempty" gorm:"type:text"`
	Rating       int      `json:"rating,omitempty"` // 1-5, 0 when unrated
}
