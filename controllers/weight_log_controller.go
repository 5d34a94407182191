package controllers

import (
	"net/http"

	"github.com/Eswar-Mukku/food-intake-tracker/config"
	"github.com/Eswar-Mukku/food-intake-tracker/services"

	"github.com/gin-gonic/gin"
)

// POST /logs/weight
func AddWeightLog(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		Weight float64 `json:"weight" binding:"required"`
		Date   string  `json:"date"`
		Note   string  `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewWeightLogService(config.DB)
	log, err := svc.Add(uid, req.Weight, req.Date, req.Note)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Keep the profile's current weight and derived targets in step with the
	// latest entry.
	if err := svc.SyncCurrentWeight(uid, req.Weight); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.EmitDataUpdated(uid, "weight")

	c.JSON(http.StatusCreated, log)
}

// GET /logs/weight
func ListWeightLogs(c *gin.Context) {
	uid := c.GetUint("userID")

	svc := services.NewWeightLogService(config.DB)
	logs, err := svc.List(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
