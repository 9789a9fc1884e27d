package main

import (
	"github.com/Bharathihub/AI-powered-diet-planner/config"
	"github.com/Bharathihub/AI-powered-diet-planner/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()
	r.Run(":8080")
}
