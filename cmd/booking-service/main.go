package main // Entry point for the booking service

import (
    "context"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/movie-booking/internal/config"
    "github.com/iliyamo/movie-booking/internal/database"
    "github.com/iliyamo/movie-booking/internal/handler"
    "github.com/iliyamo/movie-booking/internal/middleware"
    "github.com/iliyamo/movie-booking/internal/queue"
    "github.com/iliyamo/movie-booking/internal/repository"
    "github.com/iliyamo/movie-booking/internal/router"
    "github.com/iliyamo/movie-booking/internal/service"
)

func main() {
    _ = godotenv.Load() // optional .env for local development
    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    schemaCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    if err := database.EnsureBookingSchema(schemaCtx, db); err != nil {
        cancel()
        log.Fatalf("schema: %v", err)
    }
    cancel()

    rdb := config.NewRedisClient() // nil disables caching and rate limiting
    if rdb == nil {
        log.Printf("redis unavailable; running without cache and rate limiting")
    }

    // Background consumer that appends booking events to logs/booking.log.
    go func() {
        if err := queue.StartBookingConsumer(); err != nil {
            log.Printf("booking-consumer stopped: %v", err)
        }
    }()

    e := echo.New()
    e.HideBanner = true
    e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
    e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

    bookings := service.NewBookingService(repository.NewBookingRepo(db), queue.NewPublisher())
    router.RegisterRoutes(e)
    router.RegisterBookingRoutes(e, handler.NewBookingHandler(bookings))

    addr := ":" + cfg.Port
    log.Printf("booking-service listening on %s (env=%s)", addr, cfg.Env)

    go func() {
        if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
            log.Fatalf("server: %v", err)
        }
    }()

    quit := make(chan os.Signal, 1)
    signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
    <-quit

    ctx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancelShutdown()
    if err := e.Shutdown(ctx); err != nil {
        log.Fatalf("shutdown: %v", err)
    }
}
