package main // Entry point package

import (
	"context"
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/parking-admin/internal/config"  // Internal config loader
	"github.com/iliyamo/parking-admin/internal/handler" // HTTP handlers
	"github.com/iliyamo/parking-admin/internal/router"  // Internal router setup
	"github.com/iliyamo/parking-admin/internal/session" // active session slot
	"github.com/iliyamo/parking-admin/internal/store"   // in-memory domain stores
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	// Build the domain stores, seeded with the demo dataset.  The stores
	// are owned here and handed to handlers explicitly; nothing reaches
	// them except through the operations they expose.
	users := store.NewUserStore(store.SeedUsers())
	spots := store.NewSpotStore(store.SeedSpots())
	vehicles := store.NewVehicleStore(store.SeedVehicles())
	payments := store.NewPaymentStore(store.SeedPayments())

	// The session slot persists the active user to redis when one is
	// reachable; otherwise it lives in memory only.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, session persistence disabled")
	}
	sess := session.New(rdb)
	if sess.Restore(context.Background()) {
		if u, ok := sess.Current(); ok {
			log.Printf("restored session for %s", u.Email)
		}
	}

	e := echo.New() // Create Echo instance
	authH := handler.NewAuthHandler(cfg, users, sess)
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH)
	router.RegisterAPI(e,
		authH,
		handler.NewSpotHandler(spots),
		handler.NewVehicleHandler(vehicles),
		handler.NewPaymentHandler(payments),
		handler.NewUserHandler(users),
		handler.NewDashboardHandler(spots, vehicles, payments),
		cfg.JWTSecret,
	)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
