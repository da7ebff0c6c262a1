// Package httpapi exposes the comment classification service over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/routegroup"
	"go.uber.org/zap"

	appconfig "github.com/commentguard/commentguard/internal/config"
	"github.com/commentguard/commentguard/internal/core"
)

// Classifier is the subset of the classification service the API consumes.
type Classifier interface {
	Classify(ctx context.Context, comment string) (*core.ClassificationResult, error)
	LookupFingerprint(fingerprint string) (*core.ClassificationResult, bool)
}

// Server is the comment analysis web API.
type Server struct {
	Config
}

// Config defines server parameters
type Config struct {
	ListenAddr    string     // listen address
	AllowedOrigin string     // origin allowed to call the API from a browser
	Version       string     // version to report in app-info headers
	Classifier    Classifier // classification service
	Logger        *zap.Logger
}

// NewServer creates a new web API server wired to the classification service.
func NewServer(cfg *appconfig.Config, classifier *core.ClassifierService, logger *zap.Logger) *Server {
	srvCfg := cfg.GetServer()
	return &Server{Config: Config{
		ListenAddr:    srvCfg.ListenAddress,
		AllowedOrigin: srvCfg.AllowedOrigin,
		Version:       "1.0",
		Classifier:    classifier,
		Logger:        logger,
	}}
}

// Run starts the server and blocks until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.ListenAddr,
		Handler:      s.routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.Logger.Warn("failed to shutdown server", zap.Error(err))
		}
	}()

	s.Logger.Info("starting web API", zap.String("address", s.ListenAddr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to run server: %w", err)
	}
	return nil
}

func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())
	router.Use(rest.Recoverer(lgr.Default()))
	router.Use(rest.AppInfo("commentguard", "commentguard", s.Version), rest.Ping)
	router.Use(tollbooth.HTTPMiddleware(tollbooth.NewLimiter(50, nil)))
	router.Use(rest.SizeLimit(64 * 1024))

	router.HandleFunc("GET /{$}", s.helloHandler)
	router.HandleFunc("POST /analyze", s.analyzeHandler)
	router.HandleFunc("GET /health", s.healthHandler)
	router.HandleFunc("GET /cache/{fingerprint}", s.cacheHandler)

	// cors wraps the whole router so preflight requests are answered even
	// for method/path combinations with no registered handler
	return s.corsMiddleware(router)
}

// corsMiddleware applies the browser policy: one allowed origin, GET/POST,
// Content-Type only, preflight cached for an hour.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin != "" && origin == s.AllowedOrigin {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "3600")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) helloHandler(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("commentguard " + s.Version))
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	rest.RenderJSON(w, rest.JSON{"status": "ok"})
}

// analyzeHandler classifies a single comment.
// POST /analyze {"comment": "..."}
func (s *Server) analyzeHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, http.StatusBadRequest, fmt.Errorf("failed to decode request: %w", err))
		return
	}
	if req.Comment == "" {
		s.sendError(w, http.StatusBadRequest, errors.New("comment is required"))
		return
	}

	result, err := s.Classifier.Classify(r.Context(), req.Comment)
	if err != nil {
		s.Logger.Error("classification failed", zap.Error(err))
		s.sendError(w, http.StatusInternalServerError, err)
		return
	}
	rest.RenderJSON(w, result)
}

// cacheHandler looks up a cached result by fingerprint.
// GET /cache/{fingerprint}
func (s *Server) cacheHandler(w http.ResponseWriter, r *http.Request) {
	fingerprint := r.PathValue("fingerprint")
	result, ok := s.Classifier.LookupFingerprint(fingerprint)
	if !ok {
		s.sendError(w, http.StatusNotFound, errors.New("cache miss"))
		return
	}
	rest.RenderJSON(w, result)
}

func (s *Server) sendError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(rest.JSON{"error": err.Error()})
}
