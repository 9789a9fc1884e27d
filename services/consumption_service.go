package services

import (
	"time"

	"github.com/Bharathihub/AI-powered-diet-planner/config"
	"github.com/Bharathihub/AI-powered-diet-planner/models"

	"gorm.io/gorm"
)

// NutrientTotals sums the nutrient snapshot of one consumed slot.
type NutrientTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func sumNutrients(foods []models.PlannedFood) NutrientTotals {
	var t NutrientTotals
	for _, f := range foods {
		t.Calories += f.Calories
		t.Protein += f.Protein
		t.Carbs += f.Carbs
		t.Fat += f.Fat
	}
	return t
}

type toggleAction int

const (
	toggleDelete toggleAction = iota
	toggleInsert
)

// toggleTransition decides what a toggle does given the current record count
// for (user, date, slot). Nonzero count means the slot was consumed, so the
// toggle deletes; zero means it inserts one record per food with its nutrient
// snapshot. Applying the transition twice from any state always ends at zero
// records.
func toggleTransition(existing int64, userID uint, date string, slot models.MealSlot, foods []models.PlannedFood) (toggleAction, []models.ConsumptionRecord, NutrientTotals) {
	if existing > 0 {
		return toggleDelete, nil, NutrientTotals{}
	}
	records := make([]models.ConsumptionRecord, 0, len(foods))
	for _, f := range foods {
		records = append(records, models.ConsumptionRecord{
			UserID:   userID,
			Date:     date,
			Slot:     slot,
			FoodName: f.Food,
			Calories: f.Calories,
			Protein:  f.Protein,
			Carbs:    f.Carbs,
			Fat:      f.Fat,
		})
	}
	return toggleInsert, records, sumNutrients(foods)
}

// ToggleConsumption flips the consumed state of (user, date, slot).
// The whole toggle runs in one transaction; toggling twice leaves zero
// residual records.
func ToggleConsumption(userID uint, date string, slot models.MealSlot, foods []models.PlannedFood) (consumed bool, totals NutrientTotals, err error) {
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.ConsumptionRecord{}).
			Where("user_id = ? AND date = ? AND slot = ?", userID, date, slot).
			Count(&count).Error; err != nil {
			return err
		}

		action, records, t := toggleTransition(count, userID, date, slot, foods)
		if action == toggleDelete {
			consumed = false
			return tx.
				Where("user_id = ? AND date = ? AND slot = ?", userID, date, slot).
				Delete(&models.ConsumptionRecord{}).Error
		}

		for i := range records {
			if err := tx.Create(&records[i]).Error; err != nil {
				return err
			}
		}
		consumed = true
		totals = t
		return nil
	})
	if err != nil {
		return false, NutrientTotals{}, err
	}
	return consumed, totals, nil
}

// ClearConsumption wipes all consumption records of a user, used when a
// plan is regenerated.
func ClearConsumption(userID uint) error {
	return config.DB.
		Where("user_id = ?", userID).
		Delete(&models.ConsumptionRecord{}).Error
}

// ConsumptionStatus returns which slots were consumed per date over the
// last 7 days.
func ConsumptionStatus(userID uint) (map[string]map[models.MealSlot]bool, error) {
	rows, err := recentRecords(userID)
	if err != nil {
		return nil, err
	}
	status := map[string]map[models.MealSlot]bool{}
	for _, r := range rows {
		if status[r.Date] == nil {
			status[r.Date] = map[models.MealSlot]bool{}
		}
		status[r.Date][r.Slot] = true
	}
	return status, nil
}

// DayCompletion summarizes one day of the completion view.
type DayCompletion struct {
	IsComplete    bool `json:"is_complete"`
	ConsumedMeals int  `json:"consumed_meals"`
	TotalFoods    int  `json:"total_foods"`
}

// DayCompletionStatus reports per date whether all three distinct slots were
// touched, regardless of how many foods were logged per slot.
func DayCompletionStatus(userID uint) (map[string]DayCompletion, error) {
	rows, err := recentRecords(userID)
	if err != nil {
		return nil, err
	}
	return completionByDate(rows), nil
}

func completionByDate(rows []models.ConsumptionRecord) map[string]DayCompletion {
	slots := map[string]map[models.MealSlot]bool{}
	foods := map[string]int{}
	for _, r := range rows {
		if slots[r.Date] == nil {
			slots[r.Date] = map[models.MealSlot]bool{}
		}
		slots[r.Date][r.Slot] = true
		foods[r.Date]++
	}

	out := map[string]DayCompletion{}
	for date, s := range slots {
		out[date] = DayCompletion{
			IsComplete:    len(s) >= len(models.MealSlots),
			ConsumedMeals: len(s),
			TotalFoods:    foods[date],
		}
	}
	return out
}

func recentRecords(userID uint) ([]models.ConsumptionRecord, error) {
	since := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	var rows []models.ConsumptionRecord
	err := config.DB.
		Where("user_id = ? AND date >= ?", userID, since).
		Find(&rows).Error
	return rows, err
}
