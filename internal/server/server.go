// Package server hosts the live preview: a JSON API over the editing store
// plus the rendered preview page and its assets. One server wraps one store;
// every mutation endpoint answers with the post-render state so clients
// never need a follow-up read.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/goliatone/go-readmegen/pkg/logger"
	"github.com/goliatone/go-readmegen/pkg/renderers/markdown"
	"github.com/goliatone/go-readmegen/pkg/renderers/preview"
	"github.com/goliatone/go-readmegen/pkg/store"
	"github.com/goliatone/go-readmegen/pkg/template"
	"github.com/goliatone/go-readmegen/pkg/theme"
)

// Server owns the HTTP surface around a store.
type Server struct {
	store   *store.Store
	log     logger.Logger
	preview *preview.Renderer
	themes  *theme.Resolver
	mdOpts  markdown.Options
}

// Option configures a Server.
type Option func(*Server)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log logger.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMarkdownOptions sets the options for the /api/markdown export.
func WithMarkdownOptions(opts markdown.Options) Option {
	return func(s *Server) {
		s.mdOpts = opts
	}
}

// WithThemes replaces the resolver backing /api/themes and the preview page
// CSS variables.
func WithThemes(resolver *theme.Resolver) Option {
	return func(s *Server) {
		if resolver != nil {
			s.themes = resolver
		}
	}
}

// New builds a server around the store.
func New(st *store.Store, opts ...Option) (*Server, error) {
	if st == nil {
		return nil, errors.New("server: store is required")
	}

	s := &Server{
		store:  st,
		log:    logger.NewNop(),
		themes: theme.NewResolver(),
		mdOpts: markdown.Options{Attribution: true},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	prev, err := preview.New()
	if err != nil {
		return nil, err
	}
	s.preview = prev
	return s, nil
}

// Router assembles the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())

	r.GET("/", s.handlePreviewPage)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.StaticFS("/assets", http.FS(preview.AssetsFS()))

	api := r.Group("/api")
	{
		api.GET("/state", s.handleState)
		api.GET("/output", s.handleOutput)
		api.GET("/markdown", s.handleMarkdown)
		api.GET("/events", s.handleEvents)

		api.GET("/themes", s.handleThemes)
		api.PUT("/theme", s.handleSetTheme)

		api.GET("/templates", s.handleTemplates)
		api.PUT("/template", s.handleSetTemplate)
		api.PUT("/profile", s.handleSetProfile)

		sections := api.Group("/sections")
		{
			sections.POST("", s.handleAddSection)
			sections.PATCH("/:id", s.handleUpdateSection)
			sections.POST("/:id/move", s.handleMoveSection)
			sections.DELETE("/:id", s.handleRemoveSection)
		}
	}
	return r
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.log.Info("server: listening", zap.String("addr", addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("server: request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("took", time.Since(start)),
		)
	}
}

// mutationError maps a store rejection onto a client-facing status. Store
// rejections are user mistakes, not server faults, so the default is 400.
func (s *Server) mutationError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, template.ErrSectionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrClosed):
		status = http.StatusServiceUnavailable
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func (s *Server) internalError(c *gin.Context, err error) {
	s.log.Error("server: request failed", err, zap.String("path", c.Request.URL.Path))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
