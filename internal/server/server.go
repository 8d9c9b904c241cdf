package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/leadflow/internal/bot"
	"github.com/smallbiznis/leadflow/internal/config"
	convdomain "github.com/smallbiznis/leadflow/internal/conversation/domain"
	invoicedomain "github.com/smallbiznis/leadflow/internal/invoice/domain"
	leaddomain "github.com/smallbiznis/leadflow/internal/lead/domain"
	"github.com/smallbiznis/leadflow/internal/observability"
	obslogger "github.com/smallbiznis/leadflow/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/leadflow/internal/observability/metrics"
	obstracing "github.com/smallbiznis/leadflow/internal/observability/tracing"
	"github.com/smallbiznis/leadflow/internal/ratelimit"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, log *zap.Logger, metrics *obsmetrics.Metrics) *gin.Engine {
	if !obsCfg.Debug() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log, obslogger.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(metrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, srv *Server, log *zap.Logger) {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", httpServer.Addr))
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	log             *zap.Logger
	invoiceSvc      invoicedomain.Service
	leadSvc         leaddomain.Service
	conversationSvc convdomain.Service
	bot             *bot.Bot
	limiter         *ratelimit.Limiter
	metrics         *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	Log             *zap.Logger
	InvoiceSvc      invoicedomain.Service
	LeadSvc         leaddomain.Service
	ConversationSvc convdomain.Service
	Bot             *bot.Bot
	Limiter         *ratelimit.Limiter  `optional:"true"`
	Metrics         *obsmetrics.Metrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		log:             p.Log.Named("http.server"),
		invoiceSvc:      p.InvoiceSvc,
		leadSvc:         p.LeadSvc,
		conversationSvc: p.ConversationSvc,
		bot:             p.Bot,
		limiter:         p.Limiter,
		metrics:         p.Metrics,
	}

	svc.registerHealthRoutes()
	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerHealthRoutes() {
	s.engine.GET("/health", s.Health)
	s.engine.GET("/health/live", s.Live)
	s.engine.GET("/health/ready", s.Ready)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Invoices --------
	api.POST("/generate-invoice", s.RateLimit(scopeInvoice), s.GenerateInvoice)
	api.GET("/generate-invoice", s.GetInvoiceTemplate)

	// -------- Leads --------
	api.POST("/generate-leads", s.RateLimit(scopeLeads), s.GenerateLeads)
	api.GET("/generate-leads", s.ListLeads)

	// -------- Messages --------
	api.POST("/send-message", s.RateLimit(scopeMessages), s.SendMessage)
	api.GET("/send-message", s.GetConversation)

	// -------- Telegram --------
	api.POST("/telegram", s.TelegramSecret(), s.TelegramWebhook)
	api.GET("/telegram", s.TelegramInfo)
}
