package services

import (
	"testing"
	"time"

	"github.com/Bharathihub/AI-powered-diet-planner/models"
)

func TestWeeklyStatsWindowStartsSunday(t *testing.T) {
	// Wednesday 2024-07-10 -> week runs Sunday 2024-07-07 .. Saturday 2024-07-13
	now := time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)
	stats := buildWeeklyStats(nil, now)

	if got := stats.DailyBreakdown["Sunday"].Date; got != "2024-07-07" {
		t.Errorf("Sunday date = %s, want 2024-07-07", got)
	}
	if got := stats.DailyBreakdown["Saturday"].Date; got != "2024-07-13" {
		t.Errorf("Saturday date = %s, want 2024-07-13", got)
	}
	if len(stats.DailyBreakdown) != 7 {
		t.Errorf("DailyBreakdown has %d days, want 7", len(stats.DailyBreakdown))
	}
	if stats.TotalPossibleMeals != 21 {
		t.Errorf("TotalPossibleMeals = %d, want 21", stats.TotalPossibleMeals)
	}
}

func TestWeeklyStatsCountsDistinctSlotsAsMeals(t *testing.T) {
	now := time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)
	rows := []models.ConsumptionRecord{
		// Monday: two foods in morning is still a single meal
		{Date: "2024-07-08", Slot: models.SlotMorning, FoodName: "idli", Calories: 120},
		{Date: "2024-07-08", Slot: models.SlotMorning, FoodName: "vada", Calories: 150},
		{Date: "2024-07-08", Slot: models.SlotDinner, FoodName: "dosa", Calories: 200},
		// Wednesday: one slot
		{Date: "2024-07-10", Slot: models.SlotAfternoon, FoodName: "rice", Calories: 300},
	}
	stats := buildWeeklyStats(rows, now)

	if stats.TotalMealsConsumed != 3 {
		t.Errorf("TotalMealsConsumed = %d, want 3", stats.TotalMealsConsumed)
	}
	if stats.TotalCaloriesConsumed != 770 {
		t.Errorf("TotalCaloriesConsumed = %v, want 770", stats.TotalCaloriesConsumed)
	}

	monday := stats.DailyBreakdown["Monday"]
	if monday.MealsConsumed != 2 {
		t.Errorf("Monday meals = %d, want 2", monday.MealsConsumed)
	}
	if monday.Calories != 470 {
		t.Errorf("Monday calories = %v, want 470", monday.Calories)
	}
	if monday.IsComplete {
		t.Errorf("Two slots must not mark the day complete")
	}
}

func TestWeeklyStatsIgnoresRecordsOutsideWeek(t *testing.T) {
	now := time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)
	rows := []models.ConsumptionRecord{
		{Date: "2024-07-06", Slot: models.SlotMorning, FoodName: "idli", Calories: 120}, // previous Saturday
		{Date: "2024-07-07", Slot: models.SlotMorning, FoodName: "dosa", Calories: 180},
	}
	stats := buildWeeklyStats(rows, now)

	if stats.TotalMealsConsumed != 1 {
		t.Errorf("TotalMealsConsumed = %d, want 1", stats.TotalMealsConsumed)
	}
	if stats.TotalCaloriesConsumed != 180 {
		t.Errorf("TotalCaloriesConsumed = %v, want 180", stats.TotalCaloriesConsumed)
	}
}

func TestWeeklyStatsDayCompleteAtThreeSlots(t *testing.T) {
	now := time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)
	rows := []models.ConsumptionRecord{
		{Date: "2024-07-09", Slot: models.SlotMorning, FoodName: "idli", Calories: 120},
		{Date: "2024-07-09", Slot: models.SlotAfternoon, FoodName: "rice", Calories: 300},
		{Date: "2024-07-09", Slot: models.SlotDinner, FoodName: "roti", Calories: 250},
	}
	stats := buildWeeklyStats(rows, now)

	tuesday := stats.DailyBreakdown["Tuesday"]
	if !tuesday.IsComplete {
		t.Errorf("All three slots consumed must complete the day: %+v", tuesday)
	}
	if stats.GoalPercentage != 14 { // round(3/21*100)
		t.Errorf("GoalPercentage = %d, want 14", stats.GoalPercentage)
	}
	if stats.CaloriePercentage != 10 { // round(670/6537*100)
		t.Errorf("CaloriePercentage = %d, want 10", stats.CaloriePercentage)
	}
}
