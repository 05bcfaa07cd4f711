// Package web serves the article analysis over HTTP, as an HTML page
// and as a JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Semior001/newspos/app/pos"
	"github.com/Semior001/newspos/app/report"
	"github.com/Semior001/newspos/app/service"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templates embed.FS

//go:generate moq -out mock_analyzer.go . Analyzer

// Analyzer makes a report about the article by its URL.
type Analyzer interface {
	Analyze(ctx context.Context, url string) (report.Report, error)
}

// Server is a web frontend for the analyzer.
type Server struct {
	Addr    string
	Logger  *slog.Logger
	Service Analyzer
	// Timeout bounds a single analysis, zero means no limit.
	Timeout time.Duration
}

// Run starts the server and blocks until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.Logger.WarnContext(ctx, "failed to shutdown http server", slog.Any("err", err))
		}
	}()

	s.Logger.InfoContext(ctx, "starting http server", slog.String("addr", s.Addr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	return nil
}

// Router returns the handler with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(s.Logger))

	r.SetHTMLTemplate(template.Must(template.New("web").
		Funcs(template.FuncMap{"pct": percent, "join": strings.Join}).
		ParseFS(templates, "templates/*.html")))

	r.GET("/", s.index)
	r.GET("/analyze", s.page)
	r.GET("/api/analyze", s.api)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	return r
}

type indexData struct {
	URL   string
	Error string
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", indexData{})
}

func (s *Server) page(c *gin.Context) {
	u := strings.TrimSpace(c.Query("url"))

	rep, err := s.analyze(c.Request.Context(), u)
	if err != nil {
		c.HTML(status(err), "index.html", indexData{URL: u, Error: service.UserMessage(err)})
		return
	}

	c.HTML(http.StatusOK, "report.html", rep)
}

func (s *Server) api(c *gin.Context) {
	u := strings.TrimSpace(c.Query("url"))

	rep, err := s.analyze(c.Request.Context(), u)
	if err != nil {
		c.JSON(status(err), gin.H{"error": service.UserMessage(err)})
		return
	}

	c.JSON(http.StatusOK, rep)
}

func (s *Server) analyze(ctx context.Context, u string) (report.Report, error) {
	if err := service.ValidateURL(u); err != nil {
		return report.Report{}, err
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	rep, err := s.Service.Analyze(ctx, u)
	if err != nil {
		s.Logger.WarnContext(ctx, "article not analyzed", slog.String("url", u), slog.Any("err", err))
		return report.Report{}, err
	}

	return rep, nil
}

func status(err error) int {
	var analysisErr *pos.AnalysisError

	switch {
	case errors.Is(err, service.ErrInvalidURL):
		return http.StatusBadRequest
	case service.IsFetchError(err):
		return http.StatusBadGateway
	case errors.Is(err, service.ErrEmptyText):
		return http.StatusUnprocessableEntity
	case errors.As(err, &analysisErr):
		return http.StatusInternalServerError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// percent returns count as a share of peak, in whole percents.
func percent(count, peak int) int {
	if count <= 0 || peak <= 0 {
		return 0
	}
	return max(1, count*100/peak)
}
