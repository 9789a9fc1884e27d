package controllers

import (
	"errors"
	"net/http"

	"github.com/Bharathihub/AI-powered-diet-planner/models"
	"github.com/Bharathihub/AI-powered-diet-planner/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlanController struct {
	Catalog *services.CatalogService
	Planner *services.PlannerService
}

func NewPlanController(cat *services.CatalogService, planner *services.PlannerService) *PlanController {
	return &PlanController{Catalog: cat, Planner: planner}
}

// POST /plan/generate — build the 7-day rotation plan around the user's
// pinned foods. Nothing is persisted; the client saves explicitly.
func (pc *PlanController) GenerateWeeklyPlan(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		SelectedFoods models.SelectedFoods `json:"selected_foods"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.FindUser(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	snap, err := pc.Catalog.LoadSnapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	plan, err := pc.Planner.BuildWeeklyPlan(snap, user, body.SelectedFoods)
	if err != nil {
		if errors.Is(err, services.ErrCatalogUnavailable) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Dataset not available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_plan": plan})
}

// POST /plan/save — persist the plan, superseding the previous active one.
func (pc *PlanController) SavePlan(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		MealPlan      models.WeeklyPlan    `json:"meal_plan" binding:"required"`
		SelectedFoods models.SelectedFoods `json:"selected_foods"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID and meal plan are required"})
		return
	}

	if err := services.SaveActivePlan(uid, body.MealPlan, body.SelectedFoods); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Meal plan saved successfully"})
}

// GET /plan — the active plan, 404 as the empty state.
func (pc *PlanController) GetSavedPlan(c *gin.Context) {
	uid := c.GetUint("userID")

	plan, _, err := services.LoadActivePlan(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active meal plan found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal_plan": plan})
}
