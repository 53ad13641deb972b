package main // Entry point package

import (
	"log" // Logging library
	"os"

	"github.com/joho/godotenv"    // Loads .env files into the environment
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/campspot-dev/campspot/internal/config"
	"github.com/campspot-dev/campspot/internal/database"
	"github.com/campspot-dev/campspot/internal/handler"
	"github.com/campspot-dev/campspot/internal/middleware"
	"github.com/campspot-dev/campspot/internal/queue"
	"github.com/campspot-dev/campspot/internal/repository"
	"github.com/campspot-dev/campspot/internal/router"
	queue_publisher "github.com/campspot-dev/campspot/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional: without it the cache and rate limiter no-op.
	rdb := config.NewRedisClient()
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	// The event publisher is wired only when a broker is configured.
	var events handler.ReservationEventPublisher
	if os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != "" {
		events = queue_publisher.Publisher{}
		go func() {
			if err := queue.StartReservationConsumer(); err != nil {
				log.Printf("reservation consumer stopped: %v", err)
			}
		}()
	}

	spots := handler.NewSpotHandler(repository.NewSpotRepo(db))
	users := handler.NewUserHandler(repository.NewUserRepo(db))
	reservations := handler.NewReservationHandler(repository.NewReservationRepo(db), events)
	reviews := handler.NewReviewHandler(repository.NewReviewRepo(db))
	amenities := handler.NewAmenityHandler(repository.NewAmenityRepo(db))
	locations := handler.NewLocationHandler(repository.NewLocationRepo(db))

	e := echo.New()
	router.RegisterRoutes(e, cfg)
	router.RegisterAPI(e, spots, users, reservations, reviews, amenities, locations,
		middleware.NewTokenBucket(rlCfg, rdb),
		middleware.NewRedisCache(cacheCfg, rdb),
		middleware.NewCacheInvalidator(cacheCfg, rdb),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
