package main

import (
	"log"

	"github.com/Eswar-Mukku/food-intake-tracker/config"
	"github.com/Eswar-Mukku/food-intake-tracker/routes"
	"github.com/Eswar-Mukku/food-intake-tracker/services"
	"github.com/Eswar-Mukku/food-intake-tracker/utils"
)

func main() {
	config.InitDB()
	config.InitRedis()
	utils.InitMailer()
	utils.InitS3()

	if err := services.NewFoodService(config.DB).Seed(); err != nil {
		log.Fatalf("failed to seed food catalog: %v", err)
	}

	hub := services.NewRealtimeHub()
	services.InitEventHub(hub)

	r := routes.SetupRouter(hub)
	r.Run(":8080")
}
