package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tikitihq/tikiti/internal/config"
	"github.com/tikitihq/tikiti/internal/event"
	eventdomain "github.com/tikitihq/tikiti/internal/event/domain"
	"github.com/tikitihq/tikiti/internal/observability"
	obsmiddleware "github.com/tikitihq/tikiti/internal/observability/logger"
	obsmetrics "github.com/tikitihq/tikiti/internal/observability/metrics"
	obstracing "github.com/tikitihq/tikiti/internal/observability/tracing"
	"github.com/tikitihq/tikiti/internal/order"
	orderdomain "github.com/tikitihq/tikiti/internal/order/domain"
	"github.com/tikitihq/tikiti/internal/pricing"
	pricingdomain "github.com/tikitihq/tikiti/internal/pricing/domain"
	"github.com/tikitihq/tikiti/internal/ratelimit"
	"github.com/tikitihq/tikiti/internal/reference"
	referencedomain "github.com/tikitihq/tikiti/internal/reference/domain"
	"github.com/tikitihq/tikiti/internal/settings"
	settingsdomain "github.com/tikitihq/tikiti/internal/settings/domain"
	"github.com/tikitihq/tikiti/internal/ticket"
	ticketdomain "github.com/tikitihq/tikiti/internal/ticket/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	settings.Module,
	pricing.Module,
	event.Module,
	order.Module,
	ticket.Module,
	reference.Module,
	ratelimit.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	db              *gorm.DB
	settingsSvc     settingsdomain.Service
	pricingSvc      pricingdomain.Service
	eventSvc        eventdomain.Service
	orderSvc        orderdomain.Service
	ticketSvc       ticketdomain.Service
	refrepo         referencedomain.Repository
	settingsLimiter *ratelimit.TokenBucket
	obsMetrics      *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	DB              *gorm.DB
	SettingsSvc     settingsdomain.Service
	PricingSvc      pricingdomain.Service
	EventSvc        eventdomain.Service
	OrderSvc        orderdomain.Service
	TicketSvc       ticketdomain.Service
	Refrepo         referencedomain.Repository
	SettingsLimiter *ratelimit.TokenBucket `optional:"true"`
	ObsMetrics      *obsmetrics.Metrics    `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		db:              p.DB,
		settingsSvc:     p.SettingsSvc,
		pricingSvc:      p.PricingSvc,
		eventSvc:        p.EventSvc,
		orderSvc:        p.OrderSvc,
		ticketSvc:       p.TicketSvc,
		refrepo:         p.Refrepo,
		settingsLimiter: p.SettingsLimiter,
		obsMetrics:      p.ObsMetrics,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.GET("/calculator-settings", s.GetCalculatorSettings)
	api.PUT("/calculator-settings", s.UpdateCalculatorSettings)

	api.POST("/pricing/estimate", s.EstimatePricing)

	api.GET("/events", s.ListEvents)
	api.GET("/events/:id", s.GetEvent)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/tickets", s.ListOrderTickets)

	api.GET("/tickets/:id", s.GetTicket)

	api.GET("/categories", s.ListCategories)
	api.GET("/regions", s.ListRegions)
}
