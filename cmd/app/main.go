package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fastfeet/cmd"
	"fastfeet/internal/adapters/out/notify"
	"fastfeet/internal/adapters/out/postgres/courierrepo"
	"fastfeet/internal/adapters/out/postgres/eventrepo"
	"fastfeet/internal/adapters/out/postgres/orderrepo"
	"fastfeet/internal/adapters/out/postgres/recipientrepo"
	"fastfeet/internal/adapters/out/postgres/userrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load(".env")

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	gormDB, err := gorm.Open(postgres.Open(config.DatabaseURL), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err = migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	root, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		return err
	}
	defer root.Notifier().Close()

	if err = root.SeedAdmin(context.Background()); err != nil {
		return err
	}

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"component", "http",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
				logger.Error("Request failed", attrs...)
				return nil
			}
			logger.Info("Request", attrs...)
			return nil
		},
	}))
	root.CreateHTTPServer().RegisterRoutes(e)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort))
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err = <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-stop:
		logger.Info("Shutting down", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err = e.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	return nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&courierrepo.CourierDTO{},
		&recipientrepo.RecipientDTO{},
		&orderrepo.OrderDTO{},
		&eventrepo.DeliveryEventDTO{},
		&notify.NotificationDTO{},
	)
}
