package models

import "gorm.io/gorm"

// ConsumptionRecord snapshots one food of a consumed meal slot.
// The whole set for (user, date, slot) is deleted when the slot is toggled
// back to not-consumed; presence of rows is the consumed signal.
type ConsumptionRecord struct {
	gorm.Model
	UserID   uint     `gorm:"index;not null"`
	Date     string   `gorm:"size:10;index;not null"` // YYYY-MM-DD
	Slot     MealSlot `gorm:"size:16;not null"`
	FoodName string   `gorm:"not null"`
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}
