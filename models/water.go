package models

import "gorm.io/gorm"

type WaterIntake struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null"`
	Glasses      int    `gorm:"default:1"`
	ConsumedTime string `gorm:"size:5"`        // HH:MM
	ConsumedDate string `gorm:"size:10;index"` // YYYY-MM-DD
}
