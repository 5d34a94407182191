package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Eswar-Mukku/food-intake-tracker/config"
	"github.com/Eswar-Mukku/food-intake-tracker/services"

	"github.com/gin-gonic/gin"
)

// POST /logs/food
func AddFoodLog(c *gin.Context) {
	uid := c.GetUint("userID")

	var req services.FoodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewFoodLogService(config.DB)
	log, err := svc.Add(uid, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownMealType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrFoodNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	services.EmitDataUpdated(uid, "food")

	c.JSON(http.StatusCreated, log)
}

// GET /logs/food?date=2026-08-29
func ListFoodLogs(c *gin.Context) {
	uid := c.GetUint("userID")

	svc := services.NewFoodLogService(config.DB)
	logs, err := svc.List(uid, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// DELETE /logs/food/:id
func DeleteFoodLog(c *gin.Context) {
	uid := c.GetUint("userID")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid log id"})
		return
	}

	svc := services.NewFoodLogService(config.DB)
	if err := svc.Delete(uid, uint(id)); err != nil {
		if errors.Is(err, services.ErrLogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	services.EmitDataUpdated(uid, "food")

	c.JSON(http.StatusOK, gin.H{"message": "log deleted"})
}
