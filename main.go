package main

import (
	"fmt"
	"root/config"
	colorController "root/controllers/color"
	healthController "root/controllers/health"
	"root/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.InitConfig()

	r := gin.Default()

	// Cors
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = config.GetAllowedOrigins()
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	r.Use(cors.New(corsConfig))

	r.Use(middleware.RequestIdMiddleware())

	// Static frontend
	r.StaticFile("/", "./static/index.html")
	r.Static("/static", "./static")

	// API Routes
	api := r.Group("/api")
	{
		api.GET("/health", healthController.HandleHealthCheck)

		api.GET("/color", colorController.HandleGetRandomColor)
		api.GET("/color/:hex", colorController.HandleConvertColor)
	}

	address := config.GetServerAddress()
	fmt.Printf("Starting color service on %s\n", address)
	r.Run(address)
}
