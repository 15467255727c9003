package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	attendanceapp "github.com/culturehub/backend/internal/application/attendance"
	clientapp "github.com/culturehub/backend/internal/application/client"
	financeapp "github.com/culturehub/backend/internal/application/finance"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/culturehub/backend/internal/infrastructure/auth"
	"github.com/culturehub/backend/internal/infrastructure/cache"
	"github.com/culturehub/backend/internal/infrastructure/config"
	"github.com/culturehub/backend/internal/infrastructure/event"
	"github.com/culturehub/backend/internal/infrastructure/logger"
	"github.com/culturehub/backend/internal/infrastructure/migration"
	"github.com/culturehub/backend/internal/infrastructure/persistence"
	"github.com/culturehub/backend/internal/infrastructure/scheduler"
	"github.com/culturehub/backend/internal/infrastructure/telemetry"
	"github.com/culturehub/backend/internal/interfaces/http/handler"
	"github.com/culturehub/backend/internal/interfaces/http/middleware"
	"github.com/culturehub/backend/internal/interfaces/http/router"
	"github.com/culturehub/backend/migrations"
	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

//go:generate swag init -d ../.. -g cmd/server/main.go -o ../../docs --v3.1

//	@title			Cultural Center CRM API
//	@version		1.0
//	@description	Attendance, subscription and invoice reconciliation for a cultural center

//	@contact.name	API Support

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	baseLog, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel := setupTelemetry(ctx, cfg, baseLog)
	log := tel.logger
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting culture center CRM backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.Database.AutoMigrate {
		if err := applyMigrations(&cfg.Database, log); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	db, err := persistence.NewDatabase(ctx, &cfg.Database, log, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if cfg.Telemetry.DBTraceEnabled {
		plugin := telemetry.NewDBTracingPlugin(telemetry.DBTracingConfig{
			Enabled:    true,
			LogFullSQL: cfg.Telemetry.DBLogFullSQL,
			DBSystem:   "postgresql",
		}, log)
		if err := plugin.Register(db.DB); err != nil {
			log.Warn("Database tracing disabled", zap.Error(err))
		}
	}
	if tel.meter != nil {
		dbMetricsCfg := telemetry.DefaultDBMetricsConfig()
		if cfg.Telemetry.DBSlowQueryThresh > 0 {
			dbMetricsCfg.SlowQueryThreshold = cfg.Telemetry.DBSlowQueryThresh
		}
		dbMetrics, err := telemetry.RegisterDBMetrics(ctx, db.DB, tel.meter, dbMetricsCfg, log)
		if err != nil {
			log.Warn("Database metrics disabled", zap.Error(err))
		} else if dbMetrics != nil {
			defer dbMetrics.Stop()
		}
	}

	// Repositories and services
	clientRepo := persistence.NewGormClientRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	attendanceService := attendanceapp.NewService(txScope.AttendanceScope(), clientRepo, log)
	paymentService := financeapp.NewPaymentService(txScope.FinanceScope(), clientRepo, log)
	invoiceService := financeapp.NewInvoiceService(txScope.FinanceScope(), log)
	activityService := clientapp.NewActivityService(clientRepo, log)

	// Event bus
	var busOpts []event.BusOption
	if cfg.Event.Async {
		busOpts = append(busOpts, event.WithAsyncWorkers(cfg.Event.Workers, cfg.Event.QueueSize))
	}
	bus := event.NewInMemoryEventBus(log, busOpts...)

	var activityHandler shared.EventHandler = clientapp.NewClientActivityHandler(activityService, log)
	if !cfg.Event.IdempotencyDisabled {
		store, err := cache.NewStoreFactory(cfg.Event, cfg.Redis,
			cache.WithLogger(log),
			cache.WithMemoryFallback(true),
		).Create(ctx)
		if err != nil {
			log.Fatal("Failed to create idempotency store", zap.Error(err))
		}
		activityHandler = event.NewIdempotentHandler(activityHandler, store, log,
			event.WithIdempotencyConfig(shared.IdempotencyConfig{TTL: cfg.Event.IdempotencyTTL, Enabled: true}))
	}
	bus.Subscribe(activityHandler, activityHandler.EventTypes()...)

	if tel.meter != nil {
		reconciliationMetrics, err := telemetry.NewReconciliationMetrics(tel.meter)
		if err != nil {
			log.Warn("Reconciliation metrics disabled", zap.Error(err))
		} else {
			bus.Subscribe(reconciliationMetrics, reconciliationMetrics.EventTypes()...)
		}
	}

	attendanceService.SetEventPublisher(bus)
	paymentService.SetEventPublisher(bus)
	invoiceService.SetEventPublisher(bus)

	if err := bus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// Daily deactivation of dormant clients
	var trigger *scheduler.DailyTrigger
	if cfg.Activity.Enabled {
		triggerCfg := scheduler.DefaultDailyTriggerConfig()
		triggerCfg.Hour = cfg.Activity.CheckHour
		triggerCfg.Minute = cfg.Activity.CheckMinute
		if cfg.Activity.JobTimeout > 0 {
			triggerCfg.JobTimeout = cfg.Activity.JobTimeout
		}
		job := scheduler.NewDeactivationJob(activityService, cfg.Activity.InactivityThreshold(), log)
		trigger, err = scheduler.NewDailyTrigger(triggerCfg, job, log)
		if err != nil {
			log.Fatal("Invalid activity schedule", zap.Error(err))
		}
		if err := trigger.Start(ctx); err != nil {
			log.Fatal("Failed to start deactivation trigger", zap.Error(err))
		}
	}

	var limiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		go limiter.Run(ctx)
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatal("Failed to get underlying sql.DB", zap.Error(err))
	}

	engine := router.NewEngine(router.EngineConfig{
		HTTP:           cfg.HTTP,
		ServiceName:    cfg.Telemetry.ServiceName,
		TracingEnabled: cfg.Telemetry.Enabled,
		Meter:          tel.meter,
		Verifier:       auth.NewTokenVerifier(cfg.JWT),
		AuthRequired:   cfg.JWT.Required,
		RateLimiter:    limiter,
		Swagger:        cfg.Swagger,
	}, router.Handlers{
		Attendance: handler.NewAttendanceHandler(attendanceService),
		Finance:    handler.NewFinanceHandler(paymentService, invoiceService),
		System:     handler.NewSystemHandler(sqlDB, cfg.App.Name),
	}, log)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownTimeout := cfg.HTTP.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if trigger != nil {
		if err := trigger.Stop(shutdownCtx); err != nil {
			log.Warn("Deactivation trigger did not stop cleanly", zap.Error(err))
		}
	}
	if err := bus.Stop(shutdownCtx); err != nil {
		log.Warn("Event bus did not drain", zap.Error(err))
	}
	tel.shutdown(shutdownCtx)

	log.Info("Server exited gracefully")
}

// applyMigrations runs the embedded migrations on a dedicated connection;
// closing the migrator closes the connection it was given.
func applyMigrations(cfg *config.DatabaseConfig, log *zap.Logger) error {
	conn, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return err
	}
	m, err := migration.NewFromFS(conn, migrations.FS, log)
	if err != nil {
		_ = conn.Close()
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("Failed to close migrator", zap.Error(err))
		}
	}()
	return m.Up()
}

type telemetryStack struct {
	logger    *zap.Logger
	meter     metric.Meter
	shutdowns []func(context.Context) error
}

func (t *telemetryStack) shutdown(ctx context.Context) {
	for i := len(t.shutdowns) - 1; i >= 0; i-- {
		if err := t.shutdowns[i](ctx); err != nil {
			t.logger.Warn("Telemetry shutdown failed", zap.Error(err))
		}
	}
}

// setupTelemetry starts the OTEL providers enabled in cfg. Failures are logged
// and leave the corresponding signal disabled.
func setupTelemetry(ctx context.Context, cfg *config.Config, log *zap.Logger) *telemetryStack {
	t := &telemetryStack{logger: log}
	if !cfg.Telemetry.Enabled {
		return t
	}

	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{
		Enabled:           true,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Warn("Tracing disabled", zap.Error(err))
	} else {
		t.shutdowns = append(t.shutdowns, tp.Shutdown)
	}

	if cfg.Telemetry.MetricsEnabled {
		mp, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
			Enabled:           true,
			CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
			ExportInterval:    cfg.Telemetry.MetricsExportInterval,
			ServiceName:       cfg.Telemetry.ServiceName,
			Insecure:          cfg.Telemetry.Insecure,
		}, log)
		if err != nil {
			log.Warn("Metrics disabled", zap.Error(err))
		} else {
			t.meter = mp.Meter(cfg.Telemetry.ServiceName)
			t.shutdowns = append(t.shutdowns, mp.Shutdown)
		}
	}

	if cfg.Telemetry.LogsEnabled {
		lp, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{
			Enabled:           true,
			CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
			ServiceName:       cfg.Telemetry.ServiceName,
			Insecure:          cfg.Telemetry.Insecure,
		}, log)
		if err != nil {
			log.Warn("Log export disabled", zap.Error(err))
		} else {
			core := telemetry.NewZapOTELCore(cfg.Telemetry.ServiceName, lp, logger.ParseLevel(cfg.Log.Level))
			t.logger = telemetry.NewBridgedLogger(log, core)
			t.shutdowns = append(t.shutdowns, lp.Shutdown)
		}
	}
	return t
}
