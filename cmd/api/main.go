package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kashf-health/kashf/internal/api"
	"github.com/kashf-health/kashf/internal/api/handlers"
	"github.com/kashf-health/kashf/internal/repository"
	"github.com/kashf-health/kashf/internal/services"
	"github.com/kashf-health/kashf/internal/token"
	"github.com/kashf-health/kashf/pkg/config"
	"github.com/kashf-health/kashf/pkg/database"
	"github.com/kashf-health/kashf/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting kashf api",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	log.Info("database connected")

	secret := cfg.JWTSecret
	if secret == "" {
		log.Warn("JWT_SECRET not set, using development fallback (INSECURE)")
		secret = "dev-secret"
	}
	issuer := token.NewIssuer([]byte(secret), token.DefaultTTL)

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	authSvc := services.NewAuthService(userRepo, issuer)
	directorySvc := services.NewDirectoryService(profileRepo, userRepo)
	messagingSvc := services.NewMessagingService(messageRepo)
	appointmentSvc := services.NewAppointmentService(appointmentRepo, userRepo, cfg.DemoEmailDomain)

	router := api.NewRouter(api.Dependencies{
		DB:                  db,
		Verifier:            issuer,
		AuthHandler:         handlers.NewAuthHandler(authSvc),
		ProfilesHandler:     handlers.NewProfilesHandler(directorySvc),
		MessagesHandler:     handlers.NewMessagesHandler(messagingSvc),
		AppointmentsHandler: handlers.NewAppointmentsHandler(appointmentSvc),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
