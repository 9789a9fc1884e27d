package models

import "time"

// UserDevice is one push target (an SNS platform endpoint) of a user.
type UserDevice struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"index" json:"user_id"`
	Platform    string `gorm:"size:16" json:"platform"` // "android" | "ios" | "web"
	TokenHash   string `gorm:"size:64" json:"-"`
	EndpointARN string `gorm:"size:256" json:"-"`
	Enabled     bool   `gorm:"default:true" json:"enabled"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
