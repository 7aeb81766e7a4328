package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/octobees/user-registry/internal/config"
	"github.com/octobees/user-registry/internal/database"
	"github.com/octobees/user-registry/internal/handler"
	"github.com/octobees/user-registry/internal/mailer"
	middlewarepkg "github.com/octobees/user-registry/internal/middleware"
	"github.com/octobees/user-registry/internal/repository"
	"github.com/octobees/user-registry/internal/router"
	"github.com/octobees/user-registry/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := database.Connect(ctx, cfg.ProjectID, cfg.CredentialsFile)
	if err != nil {
		log.Fatalf("failed to connect firestore: %v", err)
	}
	defer store.Close()

	usersRepo := repository.NewFirestoreUsersRepository(store, cfg.UsersCollection)
	userService := service.NewUserService(usersRepo)
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)

	usersHandler := handler.NewUsersHandler(userService)
	inviteHandler := handler.NewInviteHandler(smtpMailer)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, router.Handlers{Users: usersHandler, Invite: inviteHandler})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
