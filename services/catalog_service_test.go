package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/Bharathihub/AI-powered-diet-planner/models"
)

func TestParseCatalog(t *testing.T) {
	csv := strings.Join([]string{
		"user_id,age,bmi,condition,budget,food,calories,protein,carbs,fat,safe_for,meal,veg_type,price,rating",
		"1,30,22.5,normal,300,idli,39,2,8,0.2,\"diabetes, hypertension\",morning,veg,25,4",
		"1,30,22.5,normal,300,chicken curry,240,27,6,11,hypertension,dinner,non-veg,80,5",
		"2,41,27.1,diabetes,250,idli,39,2,8,0.2,\"diabetes, hypertension\",morning,veg,25,3",
		"2,41,27.1,diabetes,250,weird row,100,1,1,1,normal,brunch,veg,10,1",
	}, "\n")

	items, err := parseCatalog(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parseCatalog failed: %v", err)
	}

	// duplicate "idli" collapsed, unknown meal "brunch" skipped
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d: %+v", len(items), items)
	}
	if items[0].Name != "idli" || items[0].Slot != models.SlotMorning {
		t.Errorf("First item = %q/%s, want idli/morning", items[0].Name, items[0].Slot)
	}
	if items[0].Calories != 39 || items[0].Protein != 2 {
		t.Errorf("idli nutrients = %v/%v, want 39/2", items[0].Calories, items[0].Protein)
	}
	if items[1].VegType != models.NonVeg {
		t.Errorf("chicken curry veg_type = %q, want non-veg", items[1].VegType)
	}
	if items[0].Position != 0 || items[1].Position != 1 {
		t.Errorf("Catalog positions not preserved: %d, %d", items[0].Position, items[1].Position)
	}
}

func TestParseCatalogMissingColumn(t *testing.T) {
	_, err := parseCatalog(strings.NewReader("food,calories\nidli,39"))
	if err == nil {
		t.Fatal("Expected error for missing columns")
	}
}

func TestEligibleFilters(t *testing.T) {
	snap := CatalogSnapshot{Items: []models.FoodItem{
		{Name: "idli", Slot: models.SlotMorning, VegType: models.Veg, SafeFor: "diabetes, hypertension"},
		{Name: "poori", Slot: models.SlotMorning, VegType: models.Veg, SafeFor: "normal"},
		{Name: "egg bhurji", Slot: models.SlotMorning, VegType: models.NonVeg, SafeFor: "diabetes"},
		{Name: "rice", Slot: models.SlotAfternoon, VegType: models.Veg, SafeFor: "diabetes"},
	}}

	got, err := Eligible(snap, "diabetes", "veg", models.SlotMorning)
	if err != nil {
		t.Fatalf("Eligible failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "idli" {
		t.Fatalf("Expected only idli, got %+v", got)
	}

	// non-veg preference places no diet constraint
	got, err = Eligible(snap, "diabetes", "non-veg", models.SlotMorning)
	if err != nil {
		t.Fatalf("Eligible failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Expected idli and egg bhurji, got %+v", got)
	}
}

func TestEligibleNormalConditionSkipsHealthFilter(t *testing.T) {
	snap := CatalogSnapshot{Items: []models.FoodItem{
		{Name: "idli", Slot: models.SlotMorning, VegType: models.Veg, SafeFor: "diabetes"},
		{Name: "poori", Slot: models.SlotMorning, VegType: models.Veg, SafeFor: ""},
	}}

	got, err := Eligible(snap, "normal", "veg", models.SlotMorning)
	if err != nil {
		t.Fatalf("Eligible failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Normal condition must skip the safe_for filter, got %+v", got)
	}
}

func TestEligibleEmptySnapshot(t *testing.T) {
	_, err := Eligible(CatalogSnapshot{}, "normal", "veg", models.SlotMorning)
	if !errors.Is(err, ErrCatalogUnavailable) {
		t.Fatalf("Expected ErrCatalogUnavailable, got %v", err)
	}
}

func TestSafeForConditionMatching(t *testing.T) {
	f := models.FoodItem{SafeFor: "diabetes, hypertension"}
	if !f.SafeForCondition("diabetes") {
		t.Error("diabetes should match")
	}
	if !f.SafeForCondition("Hypertension") {
		t.Error("matching must be case-insensitive")
	}
	if f.SafeForCondition("obesity") {
		t.Error("obesity should not match")
	}
}
