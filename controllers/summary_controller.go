package controllers

import (
	"net/http"

	"github.com/Eswar-Mukku/food-intake-tracker/config"
	"github.com/Eswar-Mukku/food-intake-tracker/services"
	"github.com/Eswar-Mukku/food-intake-tracker/utils"

	"github.com/gin-gonic/gin"
)

// GET /summary/daily?date=2026-08-29 returns totals for one day, computed on read.
func GetDailySummary(c *gin.Context) {
	uid := c.GetUint("userID")

	date := c.Query("date")
	if date == "" {
		date = utils.Today()
	} else if _, err := utils.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	svc := services.NewSummaryService(config.DB)
	summary, err := svc.DailyFor(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GET /summary/streak counts consecutive days with at least one food log.
func GetStreak(c *gin.Context) {
	uid := c.GetUint("userID")

	svc := services.NewStreakService(config.DB)
	streak, err := svc.CurrentStreak(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"streak": streak})
}
