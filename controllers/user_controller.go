package controllers

import (
	"net/http"

	"github.com/Eswar-Mukku/food-intake-tracker/services"
	"github.com/Eswar-Mukku/food-intake-tracker/utils"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	email := c.GetString("email")

	profile, err := services.GetUserProfile(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	email := c.GetString("email")

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateUserProfile(email, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	services.EmitDataUpdated(user.ID, "profile")

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated",
		"goals": gin.H{
			"calories": user.DailyCalorieGoal,
			"protein":  user.DailyProteinGoal,
			"carbs":    user.DailyCarbsGoal,
			"fat":      user.DailyFatGoal,
			"water":    user.DailyWaterGoal,
		},
	})
}

// GET /user/bmi returns BMI from the profile's height and current weight.
func GetBMI(c *gin.Context) {
	email := c.GetString("email")

	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	bmi, err := utils.CalculateBMI(user.Height, user.CurrentWeight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bmi":      bmi,
		"category": utils.BMICategory(bmi),
	})
}
