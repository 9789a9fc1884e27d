package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Bharathihub/AI-powered-diet-planner/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Register(c *gin.Context) {
	var input services.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	if err := services.RegisterUser(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

type LoginInput struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates and tells the client whether a current-week plan
// exists, so it can land on the plan page instead of the dashboard.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and password are required"})
		return
	}

	user, token, err := services.AuthenticateUser(input.Name, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	hasActivePlan := false
	planIsCurrentWeek := false
	_, saved, err := services.LoadActivePlan(user.ID)
	if err == nil {
		hasActivePlan = true
		planIsCurrentWeek = services.PlanIsCurrent(saved.CreatedAt, time.Now())
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	redirect := "dashboard"
	if hasActivePlan && planIsCurrentWeek {
		redirect = "weeklyPlan"
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":              user.ID,
		"name":                 user.Name,
		"token":                token,
		"has_active_plan":      hasActivePlan,
		"plan_is_current_week": planIsCurrentWeek,
		"redirect_to":          redirect,
	})
}
