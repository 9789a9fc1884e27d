package services

import (
	"errors"

	"github.com/Bharathihub/AI-powered-diet-planner/config"
	"github.com/Bharathihub/AI-powered-diet-planner/models"
	"github.com/Bharathihub/AI-powered-diet-planner/utils"
)

type RegisterInput struct {
	Name            string  `json:"name" binding:"required"`
	Age             int     `json:"age" binding:"required"`
	Weight          float64 `json:"weight" binding:"required"`
	Height          float64 `json:"height" binding:"required"`
	HealthCondition string  `json:"health_conditions"`
	DietPreference  string  `json:"diet_preference"`
	Email           string  `json:"email"`
	Password        string  `json:"password" binding:"required"`
}

func RegisterUser(input RegisterInput) error {
	var existing models.User
	if err := config.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		return errors.New("user already exists")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return err
	}

	if input.HealthCondition == "" {
		input.HealthCondition = "normal"
	}
	if input.DietPreference == "" {
		input.DietPreference = "veg"
	}

	user := models.User{
		Name:            input.Name,
		Age:             input.Age,
		Weight:          input.Weight,
		Height:          input.Height,
		HealthCondition: input.HealthCondition,
		DietPreference:  input.DietPreference,
		Email:           input.Email,
		Password:        hashed,
	}
	return config.DB.Create(&user).Error
}

func AuthenticateUser(name, password string) (*models.User, string, error) {
	var user models.User
	if err := config.DB.Where("name = ?", name).First(&user).Error; err != nil {
		return nil, "", errors.New("invalid credentials")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", errors.New("invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID, user.Name)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func FindUser(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
