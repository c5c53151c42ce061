// @title			Errand API
// @version		1.0
// @description	Order lifecycle service: order creation, fulfilment stages, escrow and pickup reminders.
// @BasePath		/
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"errand/cmd"
	_ "errand/docs"
	"errand/internal/adapters/in/http"
	"errand/internal/adapters/out/postgres"
	"errand/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Error building application: %v", err)
	}

	sweepHandler := app.CreateSweepPickupRemindersCommandHandler()
	jobManager := jobs.NewJobManager(&sweepHandler, configs.SweepCron, logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
	if err = serve(ctx, newWebServer(app), addr, jobManager, logger); err != nil {
		stop()
		log.Fatalf("Web server stopped: %v", err)
	}
}

// serve runs the web server until ctx is canceled or the server fails, then shuts the
// server down and stops the scheduled jobs, which waits for a running sweep.
func serve(ctx context.Context, e *echo.Echo, addr string, jobManager interface{ StopAll() }, logger *slog.Logger) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- e.Start(addr)
	}()

	var err error
	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err = <-serveErr:
		if errors.Is(err, nethttp.ErrServerClosed) {
			err = nil
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("Web server shutdown failed", "error", shutdownErr)
	}
	jobManager.StopAll()

	return err
}

func getConfigs() cmd.Config {
	err := godotenv.Load(".env")
	if err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	config := cmd.Config{
		HTTPPort:         envVariable("HTTP_PORT"),
		DBHost:           envVariable("DB_HOST"),
		DBPort:           envVariable("DB_PORT"),
		DBUser:           envVariable("DB_USER"),
		DBPassword:       envVariable("DB_PASSWORD"),
		DBName:           envVariable("DB_NAME"),
		DBSslMode:        envVariable("DB_SSLMODE"),
		SweepCron:        envVariable("SWEEP_CRON"),
		RemindAfter:      durationVariable("PICKUP_REMIND_AFTER", 24*time.Hour),
		ExpireAfter:      durationVariable("PICKUP_EXPIRE_AFTER", 7*24*time.Hour),
		SweepMinInterval: durationVariable("SWEEP_MIN_INTERVAL", time.Minute),
	}
	return config
}

func envVariable(key string) string {
	return os.Getenv(key)
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return d
}

func newWebServer(app cmd.CompositionRoot) *echo.Echo {
	createOrder := app.CreateCreateOrderCommandHandler()
	submitOrder := app.CreateSubmitOrderCommandHandler()
	confirmPayment := app.CreateConfirmPaymentCommandHandler()
	advanceOrder := app.CreateAdvanceOrderCommandHandler()
	cancelOrder := app.CreateCancelOrderCommandHandler()
	settleEscrow := app.CreateSettleEscrowCommandHandler()
	sweep := app.CreateSweepPickupRemindersCommandHandler()
	openDraft := app.CreateOpenDraftSessionCommandHandler()
	saveDraft := app.CreateSaveDraftSessionCommandHandler()
	discardDraft := app.CreateDiscardDraftSessionCommandHandler()
	submitDraft := app.CreateSubmitDraftSessionCommandHandler()

	server := http.NewServer(http.Handlers{
		CreateOrder:        &createOrder,
		SubmitOrder:        &submitOrder,
		ConfirmPayment:     &confirmPayment,
		AdvanceOrder:       &advanceOrder,
		CancelOrder:        &cancelOrder,
		SettleEscrow:       &settleEscrow,
		Sweep:              &sweep,
		OpenDraft:          &openDraft,
		SaveDraft:          &saveDraft,
		DiscardDraft:       &discardDraft,
		SubmitDraft:        &submitDraft,
		GetOrder:           app.CreateGetOrderQueryHandler(),
		ListCustomerOrders: app.CreateListCustomerOrdersQueryHandler(),
		GetDraft:           app.CreateGetDraftSessionQueryHandler(),
	})

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	server.RegisterRoutes(e)

	return e
}
