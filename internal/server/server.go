package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tradi3/chatquest/internal/boss"
	"github.com/tradi3/chatquest/internal/economy"
	"github.com/tradi3/chatquest/internal/gamble"
	"github.com/tradi3/chatquest/internal/handler"
	"github.com/tradi3/chatquest/internal/logger"
	"github.com/tradi3/chatquest/internal/medic"
	"github.com/tradi3/chatquest/internal/metrics"
	"github.com/tradi3/chatquest/internal/quest"
	"github.com/tradi3/chatquest/internal/stats"
	"github.com/tradi3/chatquest/internal/storage"
)

// Services bundles everything the router dispatches to.
type Services struct {
	Quest   quest.Service
	Boss    boss.Service
	Gamble  gamble.Service
	Economy economy.Service
	Medic   medic.Service
	Stats   stats.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer wires the command routes. Every game endpoint is a GET that
// returns a single chat line; only the shop routes carry a throttle.
func NewServer(port int, store *storage.FileStore, svcs Services) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(RequestSizeLimitMiddleware(MaxRequestBody))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/", handler.HandleRoot())
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	questHandler := handler.NewQuestHandler(svcs.Quest)
	bossHandler := handler.NewBossHandler(svcs.Boss)
	gambleHandler := handler.NewGambleHandler(svcs.Gamble)
	medicHandler := handler.NewMedicHandler(svcs.Medic)
	statsHandler := handler.NewStatsHandler(svcs.Stats)
	shopHandler := handler.NewShopHandler(svcs.Economy)

	r.Route("/api", func(r chi.Router) {
		r.Get("/quest", questHandler.HandleQuest)
		r.Get("/daily", questHandler.HandleDaily)
		r.Get("/boss", bossHandler.HandleBoss)
		r.Get("/gamble", gambleHandler.HandleGamble)
		r.Get("/stats", statsHandler.HandleStats)
		r.Get("/top", statsHandler.HandleTop)
		r.Get("/inventory", statsHandler.HandleInventory)
		r.Get("/heal", medicHandler.HandleHeal)
		r.Get("/rest", medicHandler.HandleRest)

		throttle := NewShopThrottle(ShopThrottleInterval)
		r.Route("/shop", func(r chi.Router) {
			r.Use(throttle.Middleware)
			r.Get("/buy", shopHandler.HandleBuy)
			r.Get("/sell", shopHandler.HandleSell)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// RequestSizeLimitMiddleware caps request body size.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
