package main

import (
	"log"

	"mublog/internal/config"
	"mublog/internal/db"
	"mublog/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	// 配置只在启动时加载一次（含 JWT 密钥）
	config.Load()

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	router.RegisterRoutes(r)

	port := config.Get().Port
	log.Printf("mublog server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
