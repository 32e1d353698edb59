package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mehanizm/airtable"
	"github.com/pixelplot/ShootBooker/internal/config"
	"github.com/pixelplot/ShootBooker/internal/copygen"
	"github.com/pixelplot/ShootBooker/internal/geo"
	"github.com/pixelplot/ShootBooker/internal/handler"
	"github.com/pixelplot/ShootBooker/internal/middleware"
	"github.com/pixelplot/ShootBooker/internal/notification"
	"github.com/pixelplot/ShootBooker/internal/payment"
	"github.com/pixelplot/ShootBooker/internal/repository"
	"github.com/pixelplot/ShootBooker/internal/router"
	"github.com/pixelplot/ShootBooker/internal/scheduler"
	"github.com/pixelplot/ShootBooker/internal/service"
	"github.com/pixelplot/ShootBooker/internal/storage"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	loc        *time.Location
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"ShootBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	loc, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Booking.Timezone, err)
	}
	app.loc = loc

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	recordClient := airtable.NewClient(a.cfg.RecordStore.APIKey)
	retryStrategy := retry.Strategy{
		Attempts: a.cfg.RecordStore.RetryAttempts,
		Delay:    a.cfg.RecordStore.RetryDelay,
		Backoff:  2,
	}

	bookingRepo := repository.NewBookingRepo(
		recordClient,
		a.cfg.RecordStore.BaseID,
		a.cfg.RecordStore.BookingsTable,
		a.loc,
		retryStrategy,
	)
	userRepo := repository.NewUserRepo(
		recordClient,
		a.cfg.RecordStore.BaseID,
		a.cfg.RecordStore.UsersTable,
		retryStrategy,
	)

	payments := payment.NewStripeProvider(
		a.cfg.Stripe.SecretKey,
		a.cfg.Stripe.Currency,
		a.cfg.Stripe.SuccessURL,
		a.cfg.Stripe.CancelURL,
	)

	notifier := notification.NewEmailNotifier(a.cfg.Email, a.log)
	files := storage.NewDropbox(a.cfg.Storage, a.log)
	lookup := geo.NewAddressLookup(a.cfg.Geo)
	copyGen := copygen.New(a.cfg.Copy.APIKey, a.cfg.Copy.Model)

	bookingService := service.NewBookingService(bookingRepo, userRepo, payments, notifier, a.log)
	userService := service.NewUserService(userRepo, a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL, a.log)

	a.scheduler = scheduler.New(
		bookingService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(bookingService, userService, lookup, files, copyGen, a.loc)
	wh := handler.NewWebhookHandler(
		bookingService,
		a.cfg.Stripe.WebhookSecret,
		a.cfg.Stripe.CancellationWebhookSecret,
		a.log,
	)

	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		wh,
		middleware.AdminAuth(a.cfg.Auth.JWTSecret),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.CORS(a.cfg.CORS.AllowedOrigins),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
