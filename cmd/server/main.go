package main // Entry point package

import (
	"log" // Logging library

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/arefins/consultation-booking/internal/config"     // Internal config loader
	"github.com/arefins/consultation-booking/internal/database"   // MySQL pool setup
	"github.com/arefins/consultation-booking/internal/handler"    // HTTP handlers
	"github.com/arefins/consultation-booking/internal/mailer"     // SMTP sender for booking mail
	"github.com/arefins/consultation-booking/internal/middleware" // cache and rate-limit middleware
	"github.com/arefins/consultation-booking/internal/queue"      // booking event consumer
	"github.com/arefins/consultation-booking/internal/repository" // DB repositories
	"github.com/arefins/consultation-booking/internal/router"     // route registration
)

func main() {
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the public response cache and the booking rate limiter.
	// A nil client degrades both to pass-through, so Redis being down
	// never takes the service down with it.
	rdb := config.NewRedisClient()

	slotRepo := repository.NewSlotRepo(db)
	bookingRepo := repository.NewBookingRepo(db)
	contentRepo := repository.NewContentRepo(db)
	reviewRepo := repository.NewReviewRepo(db)
	projectRepo := repository.NewProjectRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	authH := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	publicH := handler.NewPublicHandler(slotRepo, contentRepo, reviewRepo, projectRepo)
	bookingH := handler.NewBookingHandler(slotRepo, bookingRepo)
	adminH := handler.NewAdminHandler(slotRepo, bookingRepo, contentRepo, reviewRepo, projectRepo)

	// The consumer drains booking.events and sends the confirmation and
	// notification mail.  It reconnects on broker failures; a send
	// failure never blocks or requeues the event.
	sender := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.MailFrom)
	go func() {
		if err := queue.StartBookingConsumer(sender, cfg.OperatorEmail); err != nil {
			log.Printf("[queue] consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterPublic(e, publicH, bookingH,
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb),
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	router.RegisterAdmin(e, adminH, cfg.JWTSecret)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
