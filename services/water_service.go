package services

import (
	"github.com/Bharathihub/AI-powered-diet-planner/config"
	"github.com/Bharathihub/AI-powered-diet-planner/models"
)

// DailyWaterGoal is the daily hydration target in glasses.
const DailyWaterGoal = 8

// WaterProgressPercentage maps a running glass count to a 0-100 progress
// value against the daily goal, clamped at 100.
func WaterProgressPercentage(glasses int) float64 {
	pct := float64(glasses) / DailyWaterGoal * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// MarkWaterConsumed logs glasses of water and returns the day's running total.
func MarkWaterConsumed(userID uint, glasses int, consumedTime, consumedDate string) (totalToday int, err error) {
	if glasses <= 0 {
		glasses = 1
	}
	intake := models.WaterIntake{
		UserID:       userID,
		Glasses:      glasses,
		ConsumedTime: consumedTime,
		ConsumedDate: consumedDate,
	}
	if err := config.DB.Create(&intake).Error; err != nil {
		return 0, err
	}

	var total int64
	err = config.DB.Model(&models.WaterIntake{}).
		Where("user_id = ? AND consumed_date = ?", userID, consumedDate).
		Select("COALESCE(SUM(glasses), 0)").
		Scan(&total).Error
	return int(total), err
}

type WaterProgress struct {
	Date               string        `json:"date"`
	TotalGlasses       int           `json:"total_glasses"`
	DailyGoal          int           `json:"daily_goal"`
	ProgressPercentage float64       `json:"progress_percentage"`
	ConsumptionCount   int           `json:"consumption_count"`
	HourlyBreakdown    []HourlyWater `json:"hourly_breakdown"`
	Status             string        `json:"status"`
}

type HourlyWater struct {
	Time    string `json:"time"`
	Glasses int    `json:"glasses"`
}

// GetWaterProgress summarizes a day's hydration against the 8-glass goal.
func GetWaterProgress(userID uint, date string) (*WaterProgress, error) {
	var rows []models.WaterIntake
	if err := config.DB.
		Where("user_id = ? AND consumed_date = ?", userID, date).
		Order("consumed_time ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	p := &WaterProgress{Date: date, DailyGoal: DailyWaterGoal}
	byTime := map[string]int{}
	var times []string
	for _, r := range rows {
		p.TotalGlasses += r.Glasses
		p.ConsumptionCount++
		if _, ok := byTime[r.ConsumedTime]; !ok {
			times = append(times, r.ConsumedTime)
		}
		byTime[r.ConsumedTime] += r.Glasses
	}
	for _, t := range times {
		p.HourlyBreakdown = append(p.HourlyBreakdown, HourlyWater{Time: t, Glasses: byTime[t]})
	}

	p.ProgressPercentage = WaterProgressPercentage(p.TotalGlasses)
	p.Status = waterStatus(p.TotalGlasses)
	return p, nil
}

func waterStatus(glasses int) string {
	switch {
	case glasses >= DailyWaterGoal:
		return "excellent"
	case glasses >= 6:
		return "good"
	default:
		return "needs_improvement"
	}
}
