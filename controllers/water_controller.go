package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Bharathihub/AI-powered-diet-planner/services"

	"github.com/gin-gonic/gin"
)

// POST /water/consume
func MarkWaterConsumed(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Glasses      int    `json:"glasses"`
		ConsumedTime string `json:"consumed_time"`
		ConsumedDate string `json:"consumed_date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if body.Glasses == 0 {
		body.Glasses = 1
	}
	if body.ConsumedTime == "" {
		body.ConsumedTime = time.Now().Format("15:04")
	}
	if body.ConsumedDate == "" {
		body.ConsumedDate = time.Now().Format("2006-01-02")
	}

	total, err := services.MarkWaterConsumed(uid, body.Glasses, body.ConsumedTime, body.ConsumedDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"message":             fmt.Sprintf("%d glass(es) of water marked as consumed!", body.Glasses),
		"glasses_consumed":    body.Glasses,
		"total_today":         total,
		"daily_goal":          services.DailyWaterGoal,
		"progress_percentage": services.WaterProgressPercentage(total),
	})
}

// GET /water/progress
func GetWaterProgress(c *gin.Context) {
	uid := c.GetUint("userID")

	progress, err := services.GetWaterProgress(uid, time.Now().Format("2006-01-02"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}
