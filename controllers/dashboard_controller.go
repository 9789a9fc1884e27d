package controllers

import (
	"net/http"
	"time"

	"github.com/Bharathihub/AI-powered-diet-planner/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dash *services.DashboardService
}

func NewDashboardController(d *services.DashboardService) *DashboardController {
	return &DashboardController{Dash: d}
}

// GET /dashboard/weekly
func (dc *DashboardController) WeeklyDashboard(c *gin.Context) {
	uid := c.GetUint("userID")

	stats, err := dc.Dash.WeeklyDashboard(uid, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"weekly_dashboard": stats})
}

// GET /dashboard/health
func (dc *DashboardController) HealthDashboard(c *gin.Context) {
	uid := c.GetUint("userID")

	weekly, err := dc.Dash.HealthDashboard(uid, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"weekly": weekly})
}
