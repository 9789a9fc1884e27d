package models

import (
	"strings"

	"gorm.io/gorm"
)

// MealSlot is one of the three fixed meal periods per day.
type MealSlot string

const (
	SlotMorning   MealSlot = "morning"
	SlotAfternoon MealSlot = "afternoon"
	SlotDinner    MealSlot = "dinner"
)

// MealSlots in grid order.
var MealSlots = []MealSlot{SlotMorning, SlotAfternoon, SlotDinner}

func ParseMealSlot(s string) (MealSlot, bool) {
	switch MealSlot(strings.ToLower(strings.TrimSpace(s))) {
	case SlotMorning:
		return SlotMorning, true
	case SlotAfternoon:
		return SlotAfternoon, true
	case SlotDinner:
		return SlotDinner, true
	}
	return "", false
}

type VegType string

const (
	Veg    VegType = "veg"
	NonVeg VegType = "non-veg"
)

// A catalog entry from the curated food dataset
type FoodItem struct {
	gorm.Model
	Name     string   `gorm:"uniqueIndex;not null" json:"food"`
	Calories float64  `json:"calories"`
	Protein  float64  `json:"protein"`
	Carbs    float64  `json:"carbs"`
	Fat      float64  `json:"fat"`
	VegType  VegType  `gorm:"size:16;default:'veg'" json:"veg_type"`
	SafeFor  string   `gorm:"type:text" json:"safe_for"` // comma-separated conditions
	Slot     MealSlot `gorm:"size:16;index" json:"meal"`
	Position int      `gorm:"index" json:"-"` // catalog order, tie-break for rotation
}

// SafeForCondition reports whether the item's safe_for tags contain the condition.
func (f FoodItem) SafeForCondition(condition string) bool {
	for _, tag := range strings.Split(f.SafeFor, ",") {
		if strings.EqualFold(strings.TrimSpace(tag), condition) {
			return true
		}
	}
	return false
}
