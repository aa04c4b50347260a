package main

import (
	"log"

	"internal-task-api/internal/auth"
	"internal-task-api/internal/config"
	"internal-task-api/internal/database"
	"internal-task-api/internal/routes"
)

func main() {
	cfg := config.Load()

	auth.Configure(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)
	database.InitDB(cfg)

	router := routes.SetupRoutes()

	log.Printf("Server starting on %s", cfg.Addr)
	log.Println("API endpoints:")
	log.Println("  POST   /token")
	log.Println("  POST   /users")
	log.Println("  GET    /users/me")
	log.Println("  GET    /users")
	log.Println("  POST   /tasks")
	log.Println("  GET    /tasks")
	log.Println("  PUT    /tasks/:id")
	log.Println("  POST   /reports")
	log.Println("  GET    /reports")
	log.Println("  GET    /stats/dashboard")
	log.Println("  GET    /ws")
	log.Println("  GET    /health")

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
