package services

import (
	"sort"

	"github.com/Bharathihub/AI-powered-diet-planner/models"
)

// SlotCapacity is the fixed number of foods per meal slot per day.
const SlotCapacity = 3

// PlannerService builds weekly meal plans by rotating eligible catalog foods
// through the 7x3 grid with minimal repetition.
type PlannerService struct{}

func NewPlannerService() *PlannerService { return &PlannerService{} }

// BuildWeeklyPlan drives the rotation selector across Sunday..Saturday and
// all three slots. Usage counts persist for the whole week; that is what
// spreads variety across days. Fails all-or-nothing when the catalog has no
// eligible data for any slot.
func (p *PlannerService) BuildWeeklyPlan(
	snap CatalogSnapshot,
	user *models.User,
	selected models.SelectedFoods,
) (models.WeeklyPlan, error) {
	used := map[models.MealSlot]map[string]int{}
	for _, slot := range models.MealSlots {
		used[slot] = map[string]int{}
	}

	plan := models.WeeklyPlan{}
	for dayIndex, day := range models.Weekdays {
		daily := models.DayPlan{}
		for _, slot := range models.MealSlots {
			candidates, err := Eligible(snap, user.HealthCondition, user.DietPreference, slot)
			if err != nil {
				return nil, err
			}
			daily[slot] = selectSlotMeals(candidates, selected[slot], dayIndex, used[slot])
		}
		plan[day] = daily
	}
	return plan, nil
}

// selectSlotMeals fills one slot for one day:
//  1. today's pinned item (rotated by dayIndex over the pinned list) goes
//     first, never counted against usage
//  2. any food pinned anywhere in the week is excluded from recommendations
//  3. remaining candidates are sorted by how often they were already used
//     this week (stable, so catalog order breaks ties) and taken greedily
//
// A pool smaller than the remaining capacity yields a partially filled slot,
// which is valid.
func selectSlotMeals(
	candidates []models.FoodItem,
	pinned []models.PlannedFood,
	dayIndex int,
	used map[string]int,
) []models.PlannedFood {
	meals := make([]models.PlannedFood, 0, SlotCapacity)

	pinnedNames := map[string]bool{}
	for _, f := range pinned {
		pinnedNames[f.Food] = true
	}

	if len(pinned) > 0 {
		today := pinned[dayIndex%len(pinned)]
		today.IsUserSelected = true
		meals = append(meals, today)
	}

	pool := make([]models.FoodItem, 0, len(candidates))
	for _, f := range candidates {
		if !pinnedNames[f.Name] {
			pool = append(pool, f)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return used[pool[i].Name] < used[pool[j].Name]
	})

	needed := SlotCapacity - len(meals)
	for i := 0; i < needed && i < len(pool); i++ {
		f := pool[i]
		meals = append(meals, models.PlannedFood{
			Food:     f.Name,
			Calories: f.Calories,
			Protein:  f.Protein,
			Carbs:    f.Carbs,
			Fat:      f.Fat,
			VegType:  f.VegType,
		})
		used[f.Name]++
	}
	return meals
}
