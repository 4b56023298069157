package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/storefront/gen/oas"
	"github.com/xenking/storefront/internal/delivery"
	"github.com/xenking/storefront/internal/domain/auth"
	"github.com/xenking/storefront/internal/domain/cart"
	"github.com/xenking/storefront/internal/domain/coupon"
	"github.com/xenking/storefront/internal/domain/notify"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/handler"
	"github.com/xenking/storefront/internal/outbox"
	"github.com/xenking/storefront/internal/storage/postgres"
	"github.com/xenking/storefront/pkg/health"
	"github.com/xenking/storefront/pkg/httpmiddleware"
)

// exposedHeaders are response headers browsers may read cross-origin.
var exposedHeaders = []string{
	httpmiddleware.RequestIDHeader,
	"Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset",
}

// Run creates all dependencies, starts the HTTP server and the order event
// dispatcher, and handles graceful shutdown. It is the single wiring point
// for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr))

	// PostgreSQL pool + migrations.
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	// Repositories.
	productRepo := postgres.NewProductRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	couponStore := postgres.NewCouponStore(pool)
	orderStore := postgres.NewOrderStore(pool)
	outboxStore := postgres.NewOutboxStore(pool)
	apikeyRepo := postgres.NewAPIKeyRepository(pool)

	// Health check service.
	healthSvc := health.New()
	healthSvc.AddReadinessCheck("postgres", 5*time.Second, func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	healthSvc.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))
	healthSvc.AddLivenessCheck("gc_pause", time.Second, health.GCMaxPauseCheck(time.Second))
	// A dispatcher that stopped claiming events lets the backlog age.
	healthSvc.AddLivenessCheck("outbox", 5*time.Second,
		health.BacklogAgeCheck(cfg.Outbox.MaxBacklogAge, outboxStore.OldestPending),
		health.WithThresholds(1, 1),
	)
	healthSvc.Start(ctx, 10*time.Second)

	// Delivery channels.
	notifier, mailer, closeChannels, err := newChannels(cfg, lg)
	if err != nil {
		return err
	}
	defer closeChannels()

	dispatcher := outbox.NewDispatcher(outboxStore, userRepo, notifier, mailer, outbox.Config{
		PollInterval: cfg.Outbox.PollInterval,
		BatchSize:    cfg.Outbox.BatchSize,
		ClaimTimeout: cfg.Outbox.ClaimTimeout,
	}, lg.Named("outbox"))

	// Domain services.
	orderService, err := order.NewService(orderStore, dispatcher,
		order.WithTracerProvider(m.TracerProvider()),
		order.WithMeterProvider(m.MeterProvider()),
	)
	if err != nil {
		return errors.Wrap(err, "create order service")
	}
	couponService := coupon.NewService(couponStore)
	cartService := cart.NewService(cartRepo, productRepo)

	// HTTP handlers.
	h := handler.New(
		handler.Config{ImageBaseURL: cfg.ImageBaseURL},
		productRepo,
		cartService,
		orderService,
		couponService,
	)
	securityHandler := handler.NewSecurityHandler(auth.NewAuthenticator(apikeyRepo, []byte(cfg.APIKeyPepper)))

	oasServer, err := oas.NewServer(h, securityHandler,
		oas.WithPathPrefix("/api"),
		oas.WithTracerProvider(m.TracerProvider()),
		oas.WithMeterProvider(m.MeterProvider()),
		oas.WithErrorHandler(handler.HandleError),
		oas.WithNotFound(handler.NotFound),
	)
	if err != nil {
		return errors.Wrap(err, "create oas server")
	}

	// Mux: health endpoints + ogen API routes on one server.
	mux := http.NewServeMux()
	mux.HandleFunc("GET /livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("GET /readyz", healthSvc.ReadyEndpoint)
	mux.Handle("/api/", oasServer)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins:     cfg.CORS.Origins,
				AllowHeaders:     []string{"Content-Type", "Authorization", handler.APIKeyHeader},
				ExposeHeaders:    exposedHeaders,
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           86400,
			}),
			httpmiddleware.RateLimit(ctx, httpmiddleware.RateLimitConfig{
				Max:     cfg.RateLimit.Max,
				Window:  cfg.RateLimit.Window,
				KeyFunc: httpmiddleware.APIKeyOrIP(handler.APIKeyHeader),
				Routes: []httpmiddleware.RouteLimit{
					{Name: "checkout", Method: http.MethodPost, Path: "/api/orders", Max: cfg.RateLimit.CheckoutMax},
				},
			}),
			httpmiddleware.RequestID(),
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.Instrument("storefront-api", m),
			httpmiddleware.LogRequests(),
		),
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// The log channels take their logger from ctx.
		return dispatcher.Run(zctx.Base(gCtx, lg.Named("outbox")))
	})
	g.Go(func() error {
		<-gCtx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		healthSvc.Stop()
		return nil
	})
	g.Go(func() error {
		healthSvc.SetReady(true)
		lg.Info("Server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server")
		}
		return nil
	})
	return g.Wait()
}

// newChannels picks Kafka and SMTP when configured and falls back to
// logging otherwise.
func newChannels(cfg *Config, lg *zap.Logger) (notify.Notifier, notify.Mailer, func(), error) {
	var (
		notifier notify.Notifier = delivery.LogNotifier{}
		mailer   notify.Mailer   = delivery.LogMailer{}
		closer                   = func() {}
	)
	if len(cfg.Kafka.Brokers) > 0 {
		kn := delivery.NewKafkaNotifier(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		notifier = kn
		closer = func() {
			if err := kn.Close(); err != nil {
				lg.Warn("Close kafka writer", zap.Error(err))
			}
		}
		lg.Info("Notifications via Kafka",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic),
		)
	}
	if cfg.SMTP.Host != "" {
		sm, err := delivery.NewSMTPMailer(delivery.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			User:     cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			SSL:      cfg.SMTP.SSL,
		})
		if err != nil {
			closer()
			return nil, nil, nil, errors.Wrap(err, "create smtp mailer")
		}
		mailer = sm
		lg.Info("Emails via SMTP", zap.String("host", cfg.SMTP.Host), zap.Int("port", cfg.SMTP.Port))
	}
	return notifier, mailer, closer, nil
}
