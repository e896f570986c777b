package main

import (
	"log"

	"hargeisa_vibes/config"
	"hargeisa_vibes/database"
	"hargeisa_vibes/handler"
	"hargeisa_vibes/helper"
	"hargeisa_vibes/router"
	"hargeisa_vibes/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	utils.InitializeLogger()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	helper.InitRedis()
	helper.InitCloudinary()

	handler.StartBookingFeed()
	handler.StartDealExpiryWorker()
	defer handler.StopDealExpiryWorker()
	handler.StartCleanupScheduler()
	defer handler.StopCleanupScheduler()

	router.SetupRoutes(app)

	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8000")))
}
