package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Eswar-Mukku/food-intake-tracker/config"
	"github.com/Eswar-Mukku/food-intake-tracker/services"

	"github.com/gin-gonic/gin"
)

// POST /logs/water
func AddWaterLog(c *gin.Context) {
	uid := c.GetUint("userID")

	var req struct {
		Amount float64 `json:"amount" binding:"required"`
		Date   string  `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewActivityLogService(config.DB)
	log, err := svc.AddWater(uid, req.Amount, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	services.EmitDataUpdated(uid, "water")

	c.JSON(http.StatusCreated, log)
}

// GET /logs/water?date=2026-08-29
func ListWaterLogs(c *gin.Context) {
	uid := c.GetUint("userID")

	svc := services.NewActivityLogService(config.DB)
	logs, err := svc.ListWater(uid, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// DELETE /logs/water/latest?date=2026-08-29 undoes the most recent glass.
func RemoveLatestWaterLog(c *gin.Context) {
	uid := c.GetUint("userID")

	svc := services.NewActivityLogService(config.DB)
	if err := svc.RemoveLatestWater(uid, c.Query("date")); err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.EmitDataUpdated(uid, "water")

	c.JSON(http.StatusOK, gin.H{"message": "log removed"})
}

// POST /logs/exercise
func AddExerciseLog(c *gin.Context) {
	uid := c.GetUint("userID")

	var req services.ExerciseLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewActivityLogService(config.DB)
	log, err := svc.AddExercise(uid, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	services.EmitDataUpdated(uid, "exercise")

	c.JSON(http.StatusCreated, log)
}

// GET /logs/exercise?date=2026-08-29
func ListExerciseLogs(c *gin.Context) {
	uid := c.GetUint("userID")

	svc := services.NewActivityLogService(config.DB)
	logs, err := svc.ListExercise(uid, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// DELETE /logs/exercise/:id
func DeleteExerciseLog(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	svc := services.NewActivityLogService(config.DB)
	if err := svc.DeleteExercise(uid, uint(id)); err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.EmitDataUpdated(uid, "exercise")

	c.JSON(http.StatusOK, gin.H{"message": "log deleted"})
}
