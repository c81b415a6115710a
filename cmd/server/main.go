// Package main Legal Club API
//
// @title           Legal Club API
// @version         1.0
// @description     Backend for the student legal club: events, team registrations, content, and the contact form.
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"legalclub/config"
	_ "legalclub/docs"
	"legalclub/internal/adapters/auth"
	"legalclub/internal/adapters/email"
	httpdelivery "legalclub/internal/delivery/http"
	"legalclub/internal/delivery/http/controllers"
	"legalclub/internal/delivery/http/middleware"
	"legalclub/internal/lib/clubtime"
	"legalclub/internal/repository/postgres"
	"legalclub/internal/services"
)

const serviceTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	logger.Info("starting legalclub", "env", cfg.Environment, "port", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, serviceTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	userRepo := postgres.NewUserRepository(db)
	contentRepo := postgres.NewContentRepository(db)
	contactRepo := postgres.NewContactMessageRepository(db)

	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	tokenMaker := auth.NewJWTMaker(cfg.JWTSecret)
	clock := clubtime.ZoneClock{}

	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	}, logger)
	renderer := email.NewTemplateRenderer()

	authService := services.NewAuthService(userRepo, hasher, tokenMaker, clock, cfg.JWTExpiry, serviceTimeout)
	eventService := services.NewEventService(eventRepo, clock, serviceTimeout)
	registrationService := services.NewRegistrationService(registrationRepo, eventRepo, clock, serviceTimeout)
	contentService := services.NewContentService(contentRepo, serviceTimeout)
	emailService := services.NewEmailService(mailer, renderer, cfg.ContactInbox)
	contactService := services.NewContactService(contactRepo, emailService, logger, serviceTimeout)

	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Auth:         controllers.NewAuthController(logger, authService),
		Event:        controllers.NewEventController(logger, eventService),
		Registration: controllers.NewRegistrationController(logger, registrationService),
		Content:      controllers.NewContentController(logger, contentService),
		Contact:      controllers.NewContactController(logger, contactService),
	}, tokenMaker, logger)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped with error", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", "err", err)
			os.Exit(1)
		}
	}

	logger.Info("legalclub stopped gracefully")
}
