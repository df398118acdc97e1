package demoserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"agentverse-browser/internal/config"
)

// Server is the embedded stub of the catalog API. It serves the read
// endpoints over a seeded in-memory catalog so the browser can run without
// a remote service.
type Server struct {
	config     *config.DemoConfig
	catalog    *Catalog
	log        zerolog.Logger
	httpServer *http.Server
}

// New creates a demo server over the given catalog.
func New(cfg *config.DemoConfig, catalog *Catalog, log zerolog.Logger) *Server {
	return &Server{
		config:  cfg,
		catalog: catalog,
		log:     log,
	}
}

// Start begins serving in the background.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Port),
		Handler: router,
	}

	go func() {
		s.log.Info().Int("port", s.config.Port).Msg("demo catalog server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal().Err(err).Msg("demo server failed")
		}
	}()

	return nil
}

// Shutdown stops the server, waiting briefly for in-flight requests.
func (s *Server) Shutdown() {
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(ctx)
	}
}

// NewTestHandler returns the stub API over the seeded catalog as a plain
// http.Handler, for tests that mount it in httptest.
func NewTestHandler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	srv := New(&config.DemoConfig{}, NewCatalog(Seed()), zerolog.Nop())
	return srv.setupRouter()
}

// setupRouter wires the middleware and the catalog routes.
func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())
	r.Use(s.loggerMiddleware())

	api := r.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/search", s.handleSearch)
		api.GET("/content/:id", s.handleContent)
		api.GET("/stats", s.handleStats)
		api.GET("/recent", s.handleRecent)
		api.GET("/featured", s.handleFeatured)
		api.GET("/platforms", s.handlePlatforms)
		api.GET("/agent-types", s.handleAgentTypes)
		api.GET("/content-types", s.handleContentTypes)
		api.GET("/tags", s.handleTags)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func (s *Server) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := uuid.NewString()
		c.Writer.Header().Set("X-Request-ID", reqID)

		c.Next()

		s.log.Debug().
			Str("request_id", reqID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("demo request")
	}
}
