package controllers

import (
	"net/http"
	"strconv"

	"github.com/Eswar-Mukku/food-intake-tracker/config"
	"github.com/Eswar-Mukku/food-intake-tracker/services"

	"github.com/gin-gonic/gin"
)

// GET /foods?query=rice&category=Grains
func SearchFoods(c *gin.Context) {
	svc := services.NewFoodService(config.DB)

	items, err := svc.Search(c.Query("query"), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"foods": items})
}

// GET /foods/categories
func ListFoodCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": services.FoodCategories})
}

// GET /foods/:id
func GetFood(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	svc := services.NewFoodService(config.DB)
	item, err := svc.Get(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}
