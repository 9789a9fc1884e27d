package services

import (
	"encoding/json"
	"time"

	"github.com/Bharathihub/AI-powered-diet-planner/config"
	"github.com/Bharathihub/AI-powered-diet-planner/models"

	"gorm.io/gorm"
)

// weekBounds returns the Sunday..Saturday window containing t.
func weekBounds(t time.Time) (start, end time.Time) {
	start = t.AddDate(0, 0, -int(t.Weekday())) // Sunday is index 0
	end = start.AddDate(0, 0, 6)
	return start, end
}

// SaveActivePlan persists a built plan and deactivates the prior one inside
// a single transaction, so a concurrent read observes either the fully-old
// or fully-new state and exactly one plan stays active per user.
func SaveActivePlan(userID uint, plan models.WeeklyPlan, selected models.SelectedFoods) error {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	selectedJSON, err := json.Marshal(selected)
	if err != nil {
		return err
	}

	weekStart, weekEnd := weekBounds(time.Now())

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.SavedMealPlan{}).
			Where("user_id = ? AND is_active = ?", userID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&models.SavedMealPlan{
			UserID:        userID,
			PlanData:      string(planJSON),
			SelectedFoods: string(selectedJSON),
			WeekStartDate: weekStart.Format("2006-01-02"),
			WeekEndDate:   weekEnd.Format("2006-01-02"),
			IsActive:      true,
		}).Error
	})
}

// LoadActivePlan returns the single active plan of a user.
// gorm.ErrRecordNotFound propagates for the empty state.
func LoadActivePlan(userID uint) (models.WeeklyPlan, *models.SavedMealPlan, error) {
	var saved models.SavedMealPlan
	err := config.DB.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		First(&saved).Error
	if err != nil {
		return nil, nil, err
	}

	var plan models.WeeklyPlan
	if err := json.Unmarshal([]byte(saved.PlanData), &plan); err != nil {
		return nil, nil, err
	}
	return plan, &saved, nil
}

// PlanIsCurrent reports whether a plan still covers this week.
func PlanIsCurrent(createdAt, now time.Time) bool {
	days := int(now.Sub(createdAt).Hours() / 24)
	return days <= 7
}
