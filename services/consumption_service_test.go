package services

import (
	"testing"

	"github.com/Bharathihub/AI-powered-diet-planner/models"
)

func TestSumNutrients(t *testing.T) {
	foods := []models.PlannedFood{
		{Food: "idli", Calories: 120, Protein: 4, Carbs: 24, Fat: 0.5},
		{Food: "sambar", Calories: 90, Protein: 5, Carbs: 12, Fat: 2.5},
		{Food: "chutney", Calories: 60, Protein: 1, Carbs: 4, Fat: 4},
	}
	got := sumNutrients(foods)
	if got.Calories != 270 {
		t.Errorf("Calories = %v, want 270", got.Calories)
	}
	if got.Protein != 10 {
		t.Errorf("Protein = %v, want 10", got.Protein)
	}
	if got.Carbs != 40 {
		t.Errorf("Carbs = %v, want 40", got.Carbs)
	}
	if got.Fat != 7 {
		t.Errorf("Fat = %v, want 7", got.Fat)
	}
}

func TestSumNutrientsEmpty(t *testing.T) {
	if got := sumNutrients(nil); got != (NutrientTotals{}) {
		t.Errorf("Empty slice must sum to zero, got %+v", got)
	}
}

func TestToggleTransitionIsItsOwnInverse(t *testing.T) {
	foods := []models.PlannedFood{
		{Food: "idli", Calories: 120, Protein: 4},
		{Food: "sambar", Calories: 90, Protein: 5},
	}

	// empty state -> insert one record per food, totals summed
	action, records, totals := toggleTransition(0, 1, "2024-07-08", models.SlotMorning, foods)
	if action != toggleInsert {
		t.Fatalf("Empty state must insert")
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].FoodName != "idli" || records[0].Slot != models.SlotMorning {
		t.Errorf("First record = %+v", records[0])
	}
	if totals.Calories != 210 {
		t.Errorf("Totals.Calories = %v, want 210", totals.Calories)
	}

	// consumed state -> delete everything, nothing inserted
	action, records, totals = toggleTransition(int64(len(records)), 1, "2024-07-08", models.SlotMorning, foods)
	if action != toggleDelete {
		t.Fatalf("Consumed state must delete")
	}
	if len(records) != 0 || totals != (NutrientTotals{}) {
		t.Errorf("Delete transition must carry no records or totals: %d, %+v", len(records), totals)
	}
}

func TestToggleTwiceLeavesNoRecords(t *testing.T) {
	db := newTestDB(t)

	foods := []models.PlannedFood{
		{Food: "idli", Calories: 120},
		{Food: "dosa", Calories: 180},
	}

	consumed, totals, err := ToggleConsumption(1, "2024-07-08", models.SlotMorning, foods)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !consumed || totals.Calories != 300 {
		t.Errorf("First toggle: consumed=%v calories=%v, want true/300", consumed, totals.Calories)
	}

	var count int64
	db.Model(&models.ConsumptionRecord{}).Where("user_id = ?", 1).Count(&count)
	if count != 2 {
		t.Fatalf("Records after first toggle = %d, want 2", count)
	}

	consumed, _, err = ToggleConsumption(1, "2024-07-08", models.SlotMorning, foods)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if consumed {
		t.Errorf("Second toggle must flip back to not-consumed")
	}

	db.Model(&models.ConsumptionRecord{}).Where("user_id = ?", 1).Count(&count)
	if count != 0 {
		t.Errorf("Residual records after double toggle = %d, want 0", count)
	}
}

func TestToggleScopedToSlot(t *testing.T) {
	db := newTestDB(t)

	breakfast := []models.PlannedFood{{Food: "idli", Calories: 120}}
	dinner := []models.PlannedFood{{Food: "soup", Calories: 90}}

	if _, _, err := ToggleConsumption(1, "2024-07-08", models.SlotMorning, breakfast); err != nil {
		t.Fatalf("morning toggle failed: %v", err)
	}
	if _, _, err := ToggleConsumption(1, "2024-07-08", models.SlotDinner, dinner); err != nil {
		t.Fatalf("dinner toggle failed: %v", err)
	}

	// toggling morning off must not touch dinner
	if _, _, err := ToggleConsumption(1, "2024-07-08", models.SlotMorning, breakfast); err != nil {
		t.Fatalf("morning untoggle failed: %v", err)
	}

	var count int64
	db.Model(&models.ConsumptionRecord{}).
		Where("user_id = ? AND slot = ?", 1, models.SlotDinner).
		Count(&count)
	if count != 1 {
		t.Errorf("Dinner records = %d, want 1 untouched", count)
	}
}

func TestCompletionNeedsAllThreeSlots(t *testing.T) {
	// one food in each of the three slots -> complete
	rows := []models.ConsumptionRecord{
		{Date: "2024-07-08", Slot: models.SlotMorning, FoodName: "idli"},
		{Date: "2024-07-08", Slot: models.SlotAfternoon, FoodName: "rice"},
		{Date: "2024-07-08", Slot: models.SlotDinner, FoodName: "dosa"},
	}
	out := completionByDate(rows)
	day := out["2024-07-08"]
	if !day.IsComplete {
		t.Errorf("Three distinct slots must be complete: %+v", day)
	}
	if day.ConsumedMeals != 3 || day.TotalFoods != 3 {
		t.Errorf("ConsumedMeals/TotalFoods = %d/%d, want 3/3", day.ConsumedMeals, day.TotalFoods)
	}
}

func TestCompletionCountsSlotsNotFoods(t *testing.T) {
	// five foods but only two slots -> not complete
	rows := []models.ConsumptionRecord{
		{Date: "2024-07-09", Slot: models.SlotMorning, FoodName: "idli"},
		{Date: "2024-07-09", Slot: models.SlotMorning, FoodName: "vada"},
		{Date: "2024-07-09", Slot: models.SlotMorning, FoodName: "upma"},
		{Date: "2024-07-09", Slot: models.SlotDinner, FoodName: "dosa"},
		{Date: "2024-07-09", Slot: models.SlotDinner, FoodName: "curd rice"},
	}
	out := completionByDate(rows)
	day := out["2024-07-09"]
	if day.IsComplete {
		t.Errorf("Two slots must not be complete: %+v", day)
	}
	if day.ConsumedMeals != 2 {
		t.Errorf("ConsumedMeals = %d, want 2", day.ConsumedMeals)
	}
	if day.TotalFoods != 5 {
		t.Errorf("TotalFoods = %d, want 5", day.TotalFoods)
	}
}

func TestCompletionGroupsByDate(t *testing.T) {
	rows := []models.ConsumptionRecord{
		{Date: "2024-07-08", Slot: models.SlotMorning, FoodName: "idli"},
		{Date: "2024-07-09", Slot: models.SlotMorning, FoodName: "dosa"},
		{Date: "2024-07-09", Slot: models.SlotAfternoon, FoodName: "rice"},
	}
	out := completionByDate(rows)
	if len(out) != 2 {
		t.Fatalf("Expected 2 dates, got %d", len(out))
	}
	if out["2024-07-08"].ConsumedMeals != 1 {
		t.Errorf("2024-07-08 meals = %d, want 1", out["2024-07-08"].ConsumedMeals)
	}
	if out["2024-07-09"].ConsumedMeals != 2 {
		t.Errorf("2024-07-09 meals = %d, want 2", out["2024-07-09"].ConsumedMeals)
	}
}
