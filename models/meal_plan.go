package models

import (
	"gorm.io/gorm"
)

// Weekdays in grid order. Sunday is index 0 everywhere (plan grid,
// pinned-item rotation, dashboard week window).
var Weekdays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// PlannedFood is one recommended (or user-pinned) item inside a plan slot.
type PlannedFood struct {
	Food           string  `json:"food"`
	Calories       float64 `json:"calories"`
	Protein        float64 `json:"protein"`
	Carbs          float64 `json:"carbs"`
	Fat            float64 `json:"fat"`
	VegType        VegType `json:"veg_type"`
	IsUserSelected bool    `json:"isUserSelected"`
}

// DayPlan maps each meal slot to its chosen foods for one day.
type DayPlan map[MealSlot][]PlannedFood

// WeeklyPlan is the full day x slot grid, keyed by weekday name.
// Immutable once built; superseded plans are deactivated, never mutated.
type WeeklyPlan map[string]DayPlan

// SelectedFoods holds the user-pinned items per slot, supplied with a plan.
type SelectedFoods map[MealSlot][]PlannedFood

// SavedMealPlan persists a built WeeklyPlan as JSON, one active per user.
type SavedMealPlan struct {
	gorm.Model
	UserID        uint   `gorm:"index;not null"`
	PlanData      string `gorm:"type:text"` // JSON WeeklyPlan
	SelectedFoods string `gorm:"type:text"` // JSON SelectedFoods
	WeekStartDate string `gorm:"size:10"`
	WeekEndDate   string `gorm:"size:10"`
	IsActive      bool   `gorm:"index;default:true"`
}
