package router

import (
	_ "github.com/culturehub/backend/docs"
	"github.com/culturehub/backend/internal/infrastructure/auth"
	"github.com/culturehub/backend/internal/infrastructure/config"
	"github.com/culturehub/backend/internal/infrastructure/logger"
	"github.com/culturehub/backend/internal/interfaces/http/dto"
	"github.com/culturehub/backend/internal/interfaces/http/handler"
	"github.com/culturehub/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// EngineConfig selects the optional parts of the middleware chain
type EngineConfig struct {
	HTTP           config.HTTPConfig
	ServiceName    string
	TracingEnabled bool
	// Meter enables HTTP metrics when set
	Meter        metric.Meter
	Verifier     *auth.TokenVerifier
	AuthRequired bool
	// RateLimiter enables per-IP limiting of API routes when set
	RateLimiter *middleware.RateLimiter
	Swagger     config.SwaggerConfig
}

// Handlers are the HTTP handlers mounted by NewEngine
type Handlers struct {
	Attendance *handler.AttendanceHandler
	Finance    *handler.FinanceHandler
	System     *handler.SystemHandler
}

// NewEngine builds the gin engine. Middleware order:
// request id, recovery, access log, tracing, security headers, CORS,
// body limit, metrics; API routes add rate limiting and staff auth.
func NewEngine(cfg EngineConfig, h Handlers, log *zap.Logger) *gin.Engine {
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.TracingWithConfig(middleware.TracingConfig{
			ServiceName: cfg.ServiceName,
			Enabled:     cfg.TracingEnabled,
		}),
		middleware.SpanErrorMarker(),
		middleware.Secure(),
		middleware.CORSWithConfig(middleware.CORSConfigFromHTTP(cfg.HTTP)),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)
	if cfg.Meter != nil {
		mw, err := middleware.HTTPMetrics(cfg.Meter)
		if err != nil {
			log.Warn("HTTP metrics disabled", zap.Error(err))
		} else {
			engine.Use(mw)
		}
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(dto.GetHTTPStatus(dto.ErrCodeRouteNotFound), dto.NewErrorResponseWithRequestID(
			dto.ErrCodeRouteNotFound, "Route not found", middleware.GetRequestID(c)))
	})

	engine.GET("/health", h.System.Health)

	// Docs auth demands a token even when API auth is optional
	var docsAuth gin.HandlerFunc
	if cfg.Verifier != nil {
		docsAuth = middleware.StaffAuth(middleware.DefaultJWTConfig(cfg.Verifier, true))
	}
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(cfg.Swagger, docsAuth),
		ginSwagger.WrapHandler(swaggerFiles.Handler))

	var apiMiddleware []gin.HandlerFunc
	if cfg.RateLimiter != nil {
		apiMiddleware = append(apiMiddleware, middleware.RateLimit(cfg.RateLimiter))
	}
	authCfg := middleware.DefaultJWTConfig(cfg.Verifier, cfg.AuthRequired)
	authCfg.Logger = log
	apiMiddleware = append(apiMiddleware,
		middleware.StaffAuth(authCfg),
		middleware.TracingAttributeInjector(),
	)

	r := NewRouter(engine, WithAPIMiddleware(apiMiddleware...))
	r.Register(AttendanceRoutes(h.Attendance)).
		Register(PaymentRoutes(h.Finance)).
		Register(InvoiceRoutes(h.Finance))
	r.Setup()

	return engine
}
