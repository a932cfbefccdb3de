// Package server serves the rendered features section and its assets over
// HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/goliatone/go-featuregrid/pkg/icon"
	"github.com/goliatone/go-featuregrid/pkg/orchestrator"
	"github.com/goliatone/go-featuregrid/pkg/render"
	htmlrenderer "github.com/goliatone/go-featuregrid/pkg/renderers/html"
)

const shutdownTimeout = 5 * time.Second

// Config describes the HTTP server.
type Config struct {
	Addr         string
	AssetPrefix  string
	Title        string
	ThemeName    string
	ThemeVariant string
	HeadingLevel render.HeadingLevel
	Orchestrator *orchestrator.Orchestrator
	Logger       *log.Logger
}

// Server wires routes onto an http.ServeMux.
type Server struct {
	cfg    Config
	mux    *http.ServeMux
	logger *log.Logger
}

// New validates cfg and registers routes.
func New(cfg Config) (*Server, error) {
	if cfg.Orchestrator == nil {
		return nil, errors.New("server: orchestrator is required")
	}
	cfg.AssetPrefix = "/" + strings.Trim(strings.TrimSpace(cfg.AssetPrefix), "/")
	if cfg.AssetPrefix == "/" {
		cfg.AssetPrefix = "/assets"
	}
	if strings.TrimSpace(cfg.Title) == "" {
		cfg.Title = "Features"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{cfg: cfg, mux: http.NewServeMux(), logger: logger}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.mux.Handle("GET /{$}", templ.Handler(s.page()))
	s.mux.HandleFunc("GET /features", s.handleFeatures)

	css := s.cfg.AssetPrefix + "/css/"
	img := s.cfg.AssetPrefix + "/img/"
	s.mux.Handle("GET "+css, http.StripPrefix(css, http.FileServerFS(htmlrenderer.AssetsFS())))
	s.mux.Handle("GET "+img, http.StripPrefix(img, http.FileServerFS(icon.EmbeddedFS())))
}

// Handler returns the routed handler wrapped with request logging.
func (s *Server) Handler() http.Handler {
	return s.logRequests(s.mux)
}

// StylesheetURL is the URL of the bundled stylesheet.
func (s *Server) StylesheetURL() string {
	return s.cfg.AssetPrefix + "/css/" + htmlrenderer.StylesheetName
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Printf("listening on %s", s.cfg.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server: shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) request(renderer string) orchestrator.Request {
	return orchestrator.Request{
		Renderer:      renderer,
		ThemeName:     s.cfg.ThemeName,
		ThemeVariant:  s.cfg.ThemeVariant,
		RenderOptions: render.RenderOptions{HeadingLevel: s.cfg.HeadingLevel},
	}
}

func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("renderer"))
	result, err := s.cfg.Orchestrator.Render(r.Context(), s.request(name))
	if err != nil {
		if errors.Is(err, render.ErrRendererNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.logger.Printf("render features: %v", err)
		http.Error(w, "failed to render features", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", result.ContentType)
	_, _ = w.Write(result.Body)
}

// page renders a minimal HTML document around the features section. A theme
// stylesheet, when the selected theme declares one, is linked after the
// bundled stylesheet so it can override it.
func (s *Server) page() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		result, err := s.cfg.Orchestrator.Render(ctx, s.request(htmlrenderer.Name))
		if err != nil {
			return err
		}

		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
		fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(s.cfg.Title))
		for _, href := range s.stylesheets(result.Theme) {
			fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n", html.EscapeString(href))
		}
		b.WriteString("</head>\n<body>\n<main>\n")
		b.Write(result.Body)
		b.WriteString("\n</main>\n</body>\n</html>\n")

		_, err = io.WriteString(w, b.String())
		return err
	})
}

func (s *Server) stylesheets(theme *render.ThemeConfig) []string {
	hrefs := []string{s.StylesheetURL()}
	if themed := theme.Asset(htmlrenderer.AssetStylesheet); themed != "" {
		hrefs = append(hrefs, themed)
	}
	return hrefs
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Printf("%s %s %d %s", r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
	})
}
