package routes

import (
	"log"

	"github.com/Bharathihub/AI-powered-diet-planner/config"
	"github.com/Bharathihub/AI-powered-diet-planner/controllers"
	"github.com/Bharathihub/AI-powered-diet-planner/middlewares"
	"github.com/Bharathihub/AI-powered-diet-planner/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	catalog, err := services.NewCatalogService()
	if err != nil {
		log.Fatalf("catalog service init failed: %v", err)
	}
	planner := services.NewPlannerService()

	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable, continuing without: %v", err)
		push = nil
	}
	reminders := services.NewReminderService(config.DB, push, hub)
	dashboards := services.NewDashboardService(config.DB)

	foodCtl := controllers.NewFoodController(catalog)
	planCtl := controllers.NewPlanController(catalog, planner)
	consumptionCtl := controllers.NewConsumptionController(hub)
	reminderCtl := controllers.NewReminderController(reminders)
	dashboardCtl := controllers.NewDashboardController(dashboards)
	realtimeCtl := controllers.NewRealtimeController(hub, reminders)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	protected := r.Group("/")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/foods/available", foodCtl.AvailableFoods)

		protected.POST("/plan/generate", planCtl.GenerateWeeklyPlan)
		protected.POST("/plan/save", planCtl.SavePlan)
		protected.GET("/plan", planCtl.GetSavedPlan)

		protected.POST("/consumption/toggle", consumptionCtl.MarkConsumed)
		protected.GET("/consumption/status", consumptionCtl.ConsumptionStatus)
		protected.GET("/consumption/day-completion", consumptionCtl.DayCompletion)
		protected.POST("/consumption/clear", consumptionCtl.ClearConsumption)

		protected.POST("/water/consume", controllers.MarkWaterConsumed)
		protected.GET("/water/progress", controllers.GetWaterProgress)

		protected.POST("/reminders/setup", reminderCtl.SetupReminders)
		protected.GET("/reminders/check", reminderCtl.CheckReminders)
		protected.POST("/reminders/trigger-all", reminderCtl.TriggerAllReminders)
		protected.POST("/reminders/doctor", reminderCtl.SetupDoctorReminder)

		protected.GET("/dashboard/weekly", dashboardCtl.WeeklyDashboard)
		protected.GET("/dashboard/health", dashboardCtl.HealthDashboard)

		protected.GET("/ws/reminders", realtimeCtl.RemindersWS)

		if push != nil {
			deviceCtl := controllers.NewDeviceController(push)
			devCtl := controllers.NewDevController(push)
			protected.POST("/devices/register", deviceCtl.Register)
			protected.POST("/devices/toggle", deviceCtl.ToggleNotifications)
			protected.POST("/dev/push-test", devCtl.PushTest)
		}
	}

	return r
}
