package services

import (
	"math"
	"time"

	"github.com/Bharathihub/AI-powered-diet-planner/models"

	"gorm.io/gorm"
)

const (
	totalPossibleMeals  = 21   // 7 days x 3 slots
	weeklyCalorieTarget = 6537 // kcal, frontend target line
)

type DashboardService struct{ db *gorm.DB }

func NewDashboardService(db *gorm.DB) *DashboardService { return &DashboardService{db: db} }

type DayBreakdown struct {
	Date          string  `json:"date"`
	MealsConsumed int     `json:"meals_consumed"`
	TotalMeals    int     `json:"total_meals"`
	Calories      float64 `json:"calories"`
	IsComplete    bool    `json:"is_complete"`
}

type WeeklyStats struct {
	TotalCaloriesConsumed float64                 `json:"total_calories_consumed"`
	TotalMealsConsumed    int                     `json:"total_meals_consumed"`
	TotalPossibleMeals    int                     `json:"total_possible_meals"`
	DailyBreakdown        map[string]DayBreakdown `json:"daily_breakdown"`
	GoalPercentage        int                     `json:"goal_percentage"`
	TargetCalories        float64                 `json:"target_calories"`
	CaloriePercentage     int                     `json:"calorie_percentage"`
}

type ChartRow struct {
	Day                  string  `json:"day"`
	MealsConsumed        int     `json:"meals_consumed"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

type HealthWeekly struct {
	MealCompletionPercentage float64    `json:"meal_completion_percentage"`
	TotalCalories            float64    `json:"total_calories"`
	TotalPlannedCalories     float64    `json:"total_planned_calories"`
	MealsConsumed            int        `json:"meals_consumed"`
	TotalPossibleMeals       int        `json:"total_possible_meals"`
	ChartData                []ChartRow `json:"chart_data"`
}

// WeeklyDashboard aggregates the current Sunday..Saturday week of the
// consumption ledger into the meal-progress view.
func (s *DashboardService) WeeklyDashboard(userID uint, now time.Time) (*WeeklyStats, error) {
	rows, err := s.weekRecords(userID)
	if err != nil {
		return nil, err
	}
	return buildWeeklyStats(rows, now), nil
}

// HealthDashboard reshapes the same aggregation for the chart frontend.
func (s *DashboardService) HealthDashboard(userID uint, now time.Time) (*HealthWeekly, error) {
	stats, err := s.WeeklyDashboard(userID, now)
	if err != nil {
		return nil, err
	}

	weekly := &HealthWeekly{
		MealCompletionPercentage: float64(stats.TotalMealsConsumed) / totalPossibleMeals * 100,
		TotalCalories:            stats.TotalCaloriesConsumed,
		TotalPlannedCalories:     weeklyCalorieTarget,
		MealsConsumed:            stats.TotalMealsConsumed,
		TotalPossibleMeals:       totalPossibleMeals,
	}
	for _, day := range models.Weekdays {
		d := stats.DailyBreakdown[day]
		var pct float64
		if d.MealsConsumed > 0 {
			pct = float64(d.MealsConsumed) / 3 * 100
		}
		weekly.ChartData = append(weekly.ChartData, ChartRow{
			Day:                  day[:3],
			MealsConsumed:        d.MealsConsumed,
			CompletionPercentage: pct,
		})
	}
	return weekly, nil
}

func (s *DashboardService) weekRecords(userID uint) ([]models.ConsumptionRecord, error) {
	since := time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	var rows []models.ConsumptionRecord
	err := s.db.
		Where("user_id = ? AND date >= ?", userID, since).
		Find(&rows).Error
	return rows, err
}

// buildWeeklyStats is the pure aggregation: each (date, slot) pair counts as
// one meal, calories sum per day, a day is complete at all three slots.
func buildWeeklyStats(rows []models.ConsumptionRecord, now time.Time) *WeeklyStats {
	stats := &WeeklyStats{
		TotalPossibleMeals: totalPossibleMeals,
		TargetCalories:     weeklyCalorieTarget,
		DailyBreakdown:     map[string]DayBreakdown{},
	}

	weekStart, _ := weekBounds(now)
	dateToDay := map[string]string{}
	for i, day := range models.Weekdays {
		date := weekStart.AddDate(0, 0, i).Format("2006-01-02")
		dateToDay[date] = day
		stats.DailyBreakdown[day] = DayBreakdown{Date: date, TotalMeals: 3}
	}

	slotSeen := map[string]map[models.MealSlot]bool{}
	for _, r := range rows {
		day, ok := dateToDay[r.Date]
		if !ok {
			continue // outside this week's window
		}
		d := stats.DailyBreakdown[day]
		d.Calories += r.Calories
		stats.TotalCaloriesConsumed += r.Calories

		if slotSeen[r.Date] == nil {
			slotSeen[r.Date] = map[models.MealSlot]bool{}
		}
		if !slotSeen[r.Date][r.Slot] {
			slotSeen[r.Date][r.Slot] = true
			d.MealsConsumed++
			stats.TotalMealsConsumed++
		}
		d.IsComplete = d.MealsConsumed >= 3
		stats.DailyBreakdown[day] = d
	}

	stats.GoalPercentage = int(math.Round(float64(stats.TotalMealsConsumed) / totalPossibleMeals * 100))
	stats.CaloriePercentage = int(math.Round(stats.TotalCaloriesConsumed / weeklyCalorieTarget * 100))
	return stats
}
