package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/travel-reservation/internal/booking"
	"github.com/iliyamo/travel-reservation/internal/catalog"
	"github.com/iliyamo/travel-reservation/internal/config"
	"github.com/iliyamo/travel-reservation/internal/database"
	"github.com/iliyamo/travel-reservation/internal/handler"
	"github.com/iliyamo/travel-reservation/internal/logger"
	"github.com/iliyamo/travel-reservation/internal/middleware"
	"github.com/iliyamo/travel-reservation/internal/model"
	"github.com/iliyamo/travel-reservation/internal/queue"
	"github.com/iliyamo/travel-reservation/internal/repository"
	"github.com/iliyamo/travel-reservation/internal/router"
	queuepublisher "github.com/iliyamo/travel-reservation/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	logger.InitLoggers()
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestLogger())
	router.RegisterRoutes(e)

	// Redis backs the catalog cache and the submission rate limiter.
	// Both degrade to no-ops when it is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.InfoLogger.Warn("redis unavailable, cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	rateMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Without database settings the storefront runs in demo mode:
	// catalog reads come from the built-in dataset and submissions
	// report the service unavailable.  The back office needs real
	// storage, so its routes are only mounted when a DB is present.
	var provider catalog.Provider = catalog.NewFallback(nil)
	var store booking.Store
	var reader handler.ReservationReader

	if cfg.HasDatabase() {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("database: %v", err)
		}

		pkgRepo := repository.NewPackageRepo(db)
		resRepo := repository.NewReservationRepo(db)
		provider = catalog.NewFallback(pkgRepo)
		store = resRepo
		reader = resRepo

		props := map[model.PropertyType]*repository.PropertyRepo{
			model.PropertyHotel:  repository.NewPropertyRepo(db, model.PropertyHotel),
			model.PropertyResort: repository.NewPropertyRepo(db, model.PropertyResort),
			model.PropertyVilla:  repository.NewPropertyRepo(db, model.PropertyVilla),
		}
		admin := handler.NewAdminHandler(pkgRepo, resRepo, props)
		router.RegisterAdmin(e, admin, cfg.JWTSecret)

		auth := handler.NewAuthHandler(cfg, repository.NewUserRepo(db))
		router.RegisterAuth(e, auth, cfg.JWTSecret)

		// consume reservation.created in the background; the consumer
		// reconnects on its own when the broker drops
		go func() {
			if err := queue.StartReservationConsumer(); err != nil {
				logger.ErrorLogger.WithError(err).Error("reservation consumer stopped")
			}
		}()
	} else {
		logger.InfoLogger.Warn("no database configured, serving demo catalog only")
	}

	public := handler.NewPublicHandler(provider)
	bookingH := handler.NewBookingHandler(provider, store, reader)
	bookingH.Publish = queuepublisher.PublishReservationCreated
	router.RegisterPublic(e, public, bookingH, cacheMW, rateMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
