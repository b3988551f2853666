package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/filmrental/reports-api/internal/config"
	"github.com/filmrental/reports-api/internal/database"
	"github.com/filmrental/reports-api/internal/handler"
	"github.com/filmrental/reports-api/internal/middleware"
	"github.com/filmrental/reports-api/internal/queue"
	"github.com/filmrental/reports-api/internal/repository"
	"github.com/filmrental/reports-api/internal/router"
)

func main() {
	// Load .env when present; real deployments set the variables directly.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Repositories share the single pooled DB handle.
	reportRepo := repository.NewReportRepo(db)
	actorRepo := repository.NewActorRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	rentalRepo := repository.NewRentalRepo(db)

	e := echo.New() // Create Echo instance

	// Redis-backed rate limiting; degrades to a no-op when Redis is down.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterReports(e, &handler.ReportHandler{Reports: reportRepo})
	router.RegisterActors(e, &handler.ActorHandler{Actors: actorRepo})
	router.RegisterCustomers(e, &handler.CustomerHandler{Customers: customerRepo, Reports: reportRepo})
	router.RegisterRentals(e, &handler.RentalHandler{
		Rentals:   rentalRepo,
		Inventory: inventoryRepo,
		Customers: customerRepo,
	})

	// Background consumer appends rental events to logs/rental.log.
	go func() {
		if err := queue.StartRentalConsumer(); err != nil {
			log.Printf("rental consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
