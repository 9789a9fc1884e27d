package services

import (
	"testing"
	"time"

	"github.com/Bharathihub/AI-powered-diet-planner/config"
	"github.com/Bharathihub/AI-powered-diet-planner/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// newTestDB swaps config.DB for an in-memory sqlite handle for one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1) // :memory: is per-connection

	if err := db.AutoMigrate(
		&models.ConsumptionRecord{},
		&models.SavedMealPlan{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
	return db
}

func TestSaveActivePlanKeepsSingleActive(t *testing.T) {
	db := newTestDB(t)

	plan := models.WeeklyPlan{
		"Sunday": {models.SlotMorning: {{Food: "idli", Calories: 120}}},
	}
	if err := SaveActivePlan(1, plan, nil); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := SaveActivePlan(1, plan, nil); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	var active int64
	if err := db.Model(&models.SavedMealPlan{}).
		Where("user_id = ? AND is_active = ?", 1, true).
		Count(&active).Error; err != nil {
		t.Fatalf("count active: %v", err)
	}
	if active != 1 {
		t.Errorf("Active plans = %d, want exactly 1 after re-save", active)
	}

	var total int64
	if err := db.Model(&models.SavedMealPlan{}).
		Where("user_id = ?", 1).
		Count(&total).Error; err != nil {
		t.Fatalf("count all: %v", err)
	}
	if total != 2 {
		t.Errorf("Total plans = %d, want 2 (old one deactivated, not deleted)", total)
	}
}

func TestLoadActivePlanRoundTrip(t *testing.T) {
	newTestDB(t)

	plan := models.WeeklyPlan{
		"Monday": {models.SlotDinner: {{Food: "soup", Calories: 90}}},
	}
	if err := SaveActivePlan(2, plan, nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, saved, err := LoadActivePlan(2)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !saved.IsActive {
		t.Errorf("Loaded plan is not active")
	}
	meals := loaded["Monday"][models.SlotDinner]
	if len(meals) != 1 || meals[0].Food != "soup" {
		t.Errorf("Loaded Monday dinner = %+v, want soup", meals)
	}
}

func TestLoadActivePlanEmptyState(t *testing.T) {
	newTestDB(t)

	if _, _, err := LoadActivePlan(99); err != gorm.ErrRecordNotFound {
		t.Fatalf("Expected ErrRecordNotFound for a user with no plan, got %v", err)
	}
}

func TestPlanIsCurrent(t *testing.T) {
	now := time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)
	if !PlanIsCurrent(now.AddDate(0, 0, -3), now) {
		t.Errorf("Plan created 3 days ago must be current")
	}
	if PlanIsCurrent(now.AddDate(0, 0, -8), now) {
		t.Errorf("Plan created 8 days ago must be stale")
	}
}
