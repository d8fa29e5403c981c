package routes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-slot-loader/internal/config"
	"github.com/BruksfildServices01/barber-slot-loader/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barber-slot-loader/internal/infra/repository"
	"github.com/BruksfildServices01/barber-slot-loader/internal/middleware"
	ucSlots "github.com/BruksfildServices01/barber-slot-loader/internal/usecase/slots"
)

func RegisterRoutes(r *gin.Engine, repo *infraRepo.BookingMemoryRepository, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// USE CASES
	// ======================================================
	getAvailableUC := ucSlots.NewGetAvailable(repo, cfg.DayGrid, cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	slotsHandler := handlers.NewSlotsHandler(getAvailableUC, cfg.ResponseShape == config.ShapeBare)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/slots", slotsHandler.Available)

	log.Printf("slots routes registered (shape=%s, grid=%v)", cfg.ResponseShape, cfg.DayGrid)
}
