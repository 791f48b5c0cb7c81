package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/headlines"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// ShutdownTimeout is how long Serve waits for in-flight requests after
// its context is canceled.
const ShutdownTimeout = 5 * time.Second

// Server exposes articles, notes and the scrape trigger over HTTP.
type Server struct {
	router *gin.Engine
	logger *slog.Logger

	Articles  headlines.ArticleService
	Annotator headlines.Annotator
	Scraper   headlines.Scraper
}

// NewServer creates a Server and registers its routes.
// Set gin's mode before calling NewServer.
func NewServer(articles headlines.ArticleService, annotator headlines.Annotator, scraper headlines.Scraper, logger *slog.Logger) *Server {
	s := &Server{
		router:    gin.New(),
		logger:    logger,
		Articles:  articles,
		Annotator: annotator,
		Scraper:   scraper,
	}

	s.router.Use(requestLogger(logger))
	s.router.Use(gin.Recovery())

	s.router.GET("/", s.handleIndex)
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/scrape", s.handleScrape)

	articleRoutes := s.router.Group("/articles")
	articleRoutes.GET("", s.handleArticleIndex)
	articleRoutes.GET("/:id", s.handleArticleView)
	articleRoutes.POST("/:id", s.handleArticleNote)

	return s
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve listens on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"endpoints": []string{
			"GET /articles",
			"GET /articles/:id",
			"POST /articles/:id",
			"GET /scrape",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleScrape(c *gin.Context) {
	result, err := s.Scraper.Scrape(c.Request.Context())
	if err != nil {
		if result != nil {
			s.writeErrorWith(c, err, gin.H{"result": result})
			return
		}
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Scrape complete",
		"result":  result,
	})
}

func (s *Server) handleArticleIndex(c *gin.Context) {
	var filter headlines.ArticleFilter
	if fp, ok := c.GetQuery("fingerprint"); ok {
		filter.Fingerprint = &fp
	}

	articles, err := s.Articles.FindArticles(c.Request.Context(), filter)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (s *Server) handleArticleView(c *gin.Context) {
	article, err := s.Articles.FindArticleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// noteRequest is the body of POST /articles/:id, sent as JSON or a form.
type noteRequest struct {
	Title string `json:"title" form:"title"`
	Body  string `json:"body" form:"body"`
}

func (s *Server) handleArticleNote(c *gin.Context) {
	var req noteRequest
	if err := c.ShouldBind(&req); err != nil {
		s.writeError(c, headlines.Errorf(headlines.EINVALID, "invalid note: %v", err))
		return
	}

	article, err := s.Annotator.SaveNote(c.Request.Context(), c.Param("id"), req.Title, req.Body)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	headlines.EINVALID:   http.StatusBadRequest,
	headlines.ENOTFOUND:  http.StatusNotFound,
	headlines.ERATELIMIT: http.StatusTooManyRequests,
	headlines.EFETCH:     http.StatusBadGateway,
	headlines.EINTERNAL:  http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// writeError writes err as a JSON error payload. The message is passed
// through as-is, including for internal errors.
func (s *Server) writeError(c *gin.Context, err error) {
	s.writeErrorWith(c, err, nil)
}

// writeErrorWith writes err like writeError, adding extra fields to the payload.
func (s *Server) writeErrorWith(c *gin.Context, err error, extra gin.H) {
	code := headlines.ErrorCode(err)
	if code == headlines.EINTERNAL {
		s.logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"err", err,
		)
	}
	body := gin.H{"error": headlines.ErrorMessage(err)}
	for k, v := range extra {
		body[k] = v
	}
	c.AbortWithStatusJSON(ErrorStatusCode(code), body)
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Info("http request",
			"method", method,
			"path", path,
			"status", c.Writer.Status(),
			"client_ip", c.ClientIP(),
			"duration", time.Since(start),
		)
	}
}
