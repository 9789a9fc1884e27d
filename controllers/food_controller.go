package controllers

import (
	"errors"
	"net/http"

	"github.com/Bharathihub/AI-powered-diet-planner/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Catalog *services.CatalogService
}

func NewFoodController(cat *services.CatalogService) *FoodController {
	return &FoodController{Catalog: cat}
}

// GET /foods/available — eligible foods for the user's profile, grouped by slot
func (fc *FoodController) AvailableFoods(c *gin.Context) {
	uid := c.GetUint("userID")
	user, err := services.FindUser(uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	snap, err := fc.Catalog.LoadSnapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	grouped, err := services.EligibleBySlot(snap, user.HealthCondition, user.DietPreference)
	if err != nil {
		if errors.Is(err, services.ErrCatalogUnavailable) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Dataset not available"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"foods_by_meal": grouped})
}
