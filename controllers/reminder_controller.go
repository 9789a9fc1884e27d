package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Bharathihub/AI-powered-diet-planner/models"
	"github.com/Bharathihub/AI-powered-diet-planner/services"

	"github.com/gin-gonic/gin"
)

type ReminderController struct {
	Rem *services.ReminderService
}

func NewReminderController(rem *services.ReminderService) *ReminderController {
	return &ReminderController{Rem: rem}
}

// POST /reminders/setup — replace the user's standing meal/water rules
// with the defaults.
func (rc *ReminderController) SetupReminders(c *gin.Context) {
	uid := c.GetUint("userID")

	mealCount, waterCount, err := rc.Rem.SetupReminders(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Smart reminders with push notifications enabled successfully!",
		"meal_reminders":  mealCount,
		"water_reminders": waterCount,
		"total_reminders": mealCount + waterCount,
	})
}

// GET /reminders/check?current_time=HH:MM&current_date=YYYY-MM-DD&force_check=bool
// The clock defaults to server time; the client may pass its own for
// timezone-correct ticks.
func (rc *ReminderController) CheckReminders(c *gin.Context) {
	uid := c.GetUint("userID")

	now := time.Now()
	currentTime := c.DefaultQuery("current_time", now.Format("15:04"))
	currentDate := c.DefaultQuery("current_date", now.Format("2006-01-02"))
	force := c.Query("force_check") == "true"

	fired, err := rc.Rem.CheckReminders(uid, currentDate, currentTime, force)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                 true,
		"current_time":            currentTime,
		"current_date":            currentDate,
		"reminders":               fired,
		"push_notifications_sent": len(fired),
		"force_check":             force,
	})
}

// POST /reminders/trigger-all — manual test path, fires everything now.
func (rc *ReminderController) TriggerAllReminders(c *gin.Context) {
	uid := c.GetUint("userID")

	fired, err := rc.Rem.TriggerAllReminders(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                   true,
		"total_reminders_triggered": len(fired),
		"reminders":                 fired,
		"note":                      "All active reminders were sent as test notifications with [TEST] prefix",
	})
}

// POST /reminders/doctor — register (or replace) the doctor checkup reminder.
func (rc *ReminderController) SetupDoctorReminder(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		DoctorType    string `json:"doctor_type"`
		LastVisitDate string `json:"last_visit_date" binding:"required"`
		Frequency     string `json:"frequency"`
		ReminderTime  string `json:"reminder_time"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID and last visit date are required"})
		return
	}
	if body.DoctorType == "" {
		body.DoctorType = "General Checkup"
	}
	if body.Frequency == "" {
		body.Frequency = string(models.Monthly)
	}
	if body.ReminderTime == "" {
		body.ReminderTime = "10:00"
	}

	result, err := rc.Rem.SetupDoctorReminder(uid, body.DoctorType, body.LastVisitDate, models.CheckupFrequency(body.Frequency), body.ReminderTime)
	if err != nil {
		var parseErr *time.ParseError
		if errors.Is(err, services.ErrInvalidFrequency) || errors.As(err, &parseErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       result.DoctorType + " reminder set successfully!",
		"doctor_type":   result.DoctorType,
		"last_visit":    result.LastVisit,
		"next_checkup":  result.NextCheckup,
		"next_reminder": result.NextReminder,
		"frequency":     result.Frequency,
		"reminder_time": result.ReminderTime,
	})
}
