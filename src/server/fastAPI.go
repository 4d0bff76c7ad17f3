package server

import (
	"fmt"
	"time"

	"market-streamer/src/interfaces"
	"market-streamer/src/logger"
	"market-streamer/src/models"
	"market-streamer/src/streaming"
	"market-streamer/src/utils"

	"github.com/gin-gonic/gin"
)

// -----------------------------------------------------------------------------
// FastAPIServer
// -----------------------------------------------------------------------------

// FastAPIServer is the HTTP/WebSocket front: the one-shot REST query surface
// plus the /ws endpoint where the subscription protocol lives.
type FastAPIServer struct {
	Config *models.MConfig
	Logger *logger.Logger
	engine *gin.Engine

	Manager   *streaming.ConnectionManager
	Streams   *streaming.Engine
	Source    interfaces.IMarketDataSource
	Cache     interfaces.ICache // optional
	Scheduler *utils.MarketScheduler

	startedAt time.Time
}

// -----------------------------------------------------------------------------
// Constructor
// -----------------------------------------------------------------------------

func NewFastAPIServer(
	cfg *models.MConfig,
	log *logger.Logger,
	manager *streaming.ConnectionManager,
	streams *streaming.Engine,
	source interfaces.IMarketDataSource,
	cache interfaces.ICache,
) *FastAPIServer {
	// Set Gin mode
	if cfg.LogLevel != "DEBUG" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &FastAPIServer{
		Config:    cfg,
		Logger:    log,
		engine:    gin.Default(),
		Manager:   manager,
		Streams:   streams,
		Source:    source,
		Cache:     cache,
		Scheduler: utils.NewMarketScheduler(logger.NewLogger(cfg.LogLevel, "MarketScheduler")),
		startedAt: time.Now().UTC(),
	}

	// Add CORS Middleware (open, like the original API)
	s.engine.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// setup web routes
	s.setupRoutes()
	return s
}

// -----------------------------------------------------------------------------
// Route Setup
// -----------------------------------------------------------------------------

func (s *FastAPIServer) setupRoutes() {
	// REST API endpoints
	s.engine.GET("/", s.getHome)
	s.engine.GET("/fetch_data", s.fetchData)
	s.engine.GET("/api/health", s.getHealth)
	s.engine.GET("/api/intervals", s.getIntervals)
	s.engine.GET("/api/latest", s.getLatest)
	s.engine.GET("/api/market_status", s.getMarketStatus)

	// WebSocket endpoint
	s.engine.GET("/ws", s.handleWebSocket)
}

// -----------------------------------------------------------------------------
// Server Lifecycle
// -----------------------------------------------------------------------------

func (s *FastAPIServer) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Config.Host, s.Config.Port)
	s.Logger.Info("Starting server on %s", addr)

	return s.engine.Run(addr)
}

// -----------------------------------------------------------------------------

// Uptime returns how long the server has been serving.
func (s *FastAPIServer) Uptime() time.Duration {
	return time.Since(s.startedAt)
}
