package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name            string  `gorm:"uniqueIndex;not null" json:"name"`
	Age             int     `gorm:"not null" json:"age"`
	Weight          float64 `gorm:"not null" json:"weight"`
	Height          float64 `gorm:"not null" json:"height"`
	HealthCondition string  `gorm:"default:'normal'" json:"health_condition"`
	DietPreference  string  `gorm:"default:'veg'" json:"diet_preference"`
	Email           string  `gorm:"default:''" json:"email"`
	Password        string  `gorm:"not null" json:"-"`
}
