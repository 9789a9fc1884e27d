package controllers

import (
	"net/http"
	"strings"

	"github.com/Bharathihub/AI-powered-diet-planner/models"
	"github.com/Bharathihub/AI-powered-diet-planner/services"

	"github.com/gin-gonic/gin"
)

type ConsumptionController struct {
	Hub *services.RealtimeHub
}

func NewConsumptionController(hub *services.RealtimeHub) *ConsumptionController {
	return &ConsumptionController{Hub: hub}
}

// POST /consumption/toggle — strict toggle of one (date, slot).
func (cc *ConsumptionController) MarkConsumed(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		MealType string               `json:"meal_type" binding:"required"`
		Date     string               `json:"date" binding:"required"`
		Foods    []models.PlannedFood `json:"foods"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	slot, ok := models.ParseMealSlot(body.MealType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal_type"})
		return
	}

	consumed, totals, err := services.ToggleConsumption(uid, body.Date, slot, body.Foods)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if cc.Hub != nil {
		cc.Hub.BroadcastConsumption(uid, body.Date, slot, consumed)
	}

	verb := "not consumed"
	if consumed {
		verb = "consumed"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        titleCase(body.MealType) + " marked as " + verb,
		"consumed":       consumed,
		"total_calories": totals.Calories,
	})
}

// GET /consumption/status — consumed slots per date, last 7 days.
func (cc *ConsumptionController) ConsumptionStatus(c *gin.Context) {
	uid := c.GetUint("userID")

	status, err := services.ConsumptionStatus(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"consumption_status": status})
}

// GET /consumption/day-completion — green-day indicator data.
func (cc *ConsumptionController) DayCompletion(c *gin.Context) {
	uid := c.GetUint("userID")

	completion, err := services.DayCompletionStatus(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"day_completion": completion})
}

// POST /consumption/clear — wipe the ledger when a plan is regenerated.
func (cc *ConsumptionController) ClearConsumption(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := services.ClearConsumption(uid); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Consumption status cleared"})
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
