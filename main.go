// main.go - Entry point for the e-commerce backend server

package main

import (
	"log"

	"go-ecommerce-backend/config"
	"go-ecommerce-backend/database"
	"go-ecommerce-backend/handlers"
)

func main() {
	cfg := config.Load()

	// An empty signing secret would make every token forgeable; refuse
	// to start rather than fall back to a default.
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set in environment")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("DB connection error: ", err)
	}
	defer database.Close(db)

	r := handlers.NewRouter(db, cfg)

	log.Printf("Server listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server error: ", err)
	}
}
