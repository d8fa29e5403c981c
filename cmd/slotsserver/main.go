package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-slot-loader/internal/config"
	infraRepo "github.com/BruksfildServices01/barber-slot-loader/internal/infra/repository"
	"github.com/BruksfildServices01/barber-slot-loader/internal/routes"
)

func main() {

	cfg := config.Load()

	repo, err := infraRepo.ParseBooked(cfg.Booked)
	if err != nil {
		log.Fatalf("failed to parse SLOTS_BOOKED: %v", err)
	}

	r := gin.Default()

	routes.RegisterRoutes(r, repo, cfg)

	log.Printf("Slots server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
