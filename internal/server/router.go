package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"receipt-ledger/internal/config"
	"receipt-ledger/internal/handlers"
	"receipt-ledger/internal/middleware"
	"receipt-ledger/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Dependencies are the constructed components the routes delegate to
type Dependencies struct {
	Config    *config.Config
	DB        *gorm.DB
	Gatherer  prometheus.Gatherer
	Verifier  services.IdentityVerifierInterface
	Audit     services.AuditLoggerInterface
	Metrics   services.MetricsRecorderInterface
	Receipts  services.ReceiptServiceInterface
	Expenses  services.ExpenseServiceInterface
	Dashboard services.DashboardServiceInterface
}

// NewRouter assembles the echo instance. Background work started here
// (rate limiter cleanup) stops when ctx is cancelled.
func NewRouter(ctx context.Context, deps Dependencies) *echo.Echo {
	cfg := deps.Config
	env := cfg.Server.Environment

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.IPExtractor = ipExtractor(cfg.Server.TrustedProxies)
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler(env, deps.Metrics)

	e.Use(middleware.RequestID())
	e.Use(requestLogger())
	e.Use(middleware.ErrorMetrics(deps.Metrics))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.Server.CORSAllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.TraceIDHeader},
		ExposeHeaders:    []string{middleware.TraceIDHeader},
		AllowCredentials: true,
	}))
	e.Use(echomw.BodyLimit(cfg.Server.BodyLimit))
	e.Use(echomw.Gzip())

	health := handlers.NewHealthCheckHandler(deps.DB, env)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	api := e.Group(cfg.Server.APIPrefix,
		middleware.RateLimiter(ctx, cfg.Security.RateLimitRequests, cfg.Security.RateLimitWindow),
	)

	// per-route gate so unknown /api paths still 404
	requireAuth := middleware.RequireAuth(deps.Verifier, deps.Audit, deps.Metrics)

	authHandler := handlers.NewAuthHandler()
	api.GET("/auth/profile", authHandler.Profile, requireAuth)

	expenseHandler := handlers.NewExpenseHandler(deps.Expenses, deps.Dashboard, env)
	api.GET("/expenses", expenseHandler.ListExpenses, requireAuth)
	api.GET("/expenses/flagged", expenseHandler.ListFlagged, requireAuth)
	api.GET("/expenses/dashboard", expenseHandler.Dashboard, requireAuth)
	api.DELETE("/expenses/:id", expenseHandler.DeleteExpense, requireAuth)

	receiptHandler := handlers.NewReceiptHandler(deps.Receipts, env)
	api.POST("/process-receipt", receiptHandler.ProcessReceipt, requireAuth)

	return e
}

// ipExtractor reads X-Forwarded-For only behind configured proxies; otherwise the socket address is the client
func ipExtractor(trusted []*net.IPNet) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}

	options := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, network := range trusted {
		options = append(options, echo.TrustIPRange(network))
	}
	return echo.ExtractIPFromXFFHeader(options...)
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,

		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.LogAttrs(c.Request().Context(), level, "request",
				slog.String("trace_id", middleware.GetTraceID(c)),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			)
			return nil
		},
	})
}
