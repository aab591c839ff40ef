package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/nyumbani/rentals/internal/app/api/handlers"
	mw "github.com/nyumbani/rentals/internal/app/api/middleware"
	"github.com/nyumbani/rentals/internal/app/service/account"
	"github.com/nyumbani/rentals/internal/app/service/booking"
	"github.com/nyumbani/rentals/internal/app/service/payment"
	"github.com/nyumbani/rentals/internal/app/service/property"
	"github.com/nyumbani/rentals/internal/app/service/tenant"
	cfgpkg "github.com/nyumbani/rentals/pkg/config"
	"github.com/nyumbani/rentals/pkg/metrics"
)

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Request tracing only; request logger & access log are attached per group in registerRoutes
	r.Use(mw.TraceMiddleware())
	return r
}

func registerRoutes(
	r *gin.Engine,
	log *zap.SugaredLogger,
	cfg *cfgpkg.Config,
	accounts account.Manager,
	props property.Manager,
	bookings booking.Manager,
	tenants tenant.Manager,
	payments payment.Manager,
) {
	// Prometheus metrics
	if cfg != nil && cfg.MetricsAddr != "" {
		p := metrics.NewPrometheus(metrics.NewPrometheusOptions{
			Subsystem: "rentals",
			ReqCntURLLabelMappingFn: func(c *gin.Context) string {
				if fp := c.FullPath(); fp != "" {
					return fp
				}
				return c.Request.URL.Path
			},
			Logger: log,
		})
		p.SetListenAddress(cfg.MetricsAddr)
		p.Use(r)

		log.Infow("metrics started", "addr", cfg.MetricsAddr)
	}

	// Public group: request logger + access log
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)

	apiV1 := r.Group("/api/v1")
	apiV1.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware())

	landlord := apiV1.Group("/landlord")
	landlord.Use(mw.Authenticate(accounts), mw.RequireLandlord())

	admin := apiV1.Group("/admin")
	admin.Use(mw.Authenticate(accounts), mw.RequireAdmin())

	handlers.RegisterAuthRoutes(apiV1, accounts)
	handlers.RegisterPropertyRoutes(apiV1, landlord, admin, props)
	handlers.RegisterBookingRoutes(apiV1, landlord, admin, bookings)
	handlers.RegisterTenantRoutes(apiV1, tenants)
	handlers.RegisterPaymentRoutes(apiV1, payments, cfg, log)
}

func runServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Errorf("server error: %v", err)
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)
