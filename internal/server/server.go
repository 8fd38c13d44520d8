// Package server exposes the item economy over HTTP.
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

	"github.com/osse101/lootforge/internal/catalog"
	"github.com/osse101/lootforge/internal/database"
	"github.com/osse101/lootforge/internal/handler"
	"github.com/osse101/lootforge/internal/logger"
	"github.com/osse101/lootforge/internal/metrics"
	"github.com/osse101/lootforge/internal/sse"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64
}

// Dependencies are the services behind the routes. DBPool may be nil when
// saves are kept in memory.
type Dependencies struct {
	Sessions handler.SessionRunner
	Catalog  *catalog.Catalog
	Hub      *sse.Hub
	DBPool   database.Pool
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Dependencies) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	handler.InitValidator()

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree with its middleware stack
func NewRouter(opts Options, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))
	r.Handle("/metrics", promhttp.Handler())
	if deps.Hub != nil {
		r.Get("/events", sse.Handler(deps.Hub))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog/recipes", handler.HandleListRecipes(deps.Catalog))
		r.Get("/loot/odds", handler.HandleLootOdds())

		r.Route("/players/{"+handler.ParamPlayerID+"}", func(r chi.Router) {
			sessions := deps.Sessions

			r.Get("/inventory", handler.HandleGetInventory(sessions))
			r.Get("/wallet", handler.HandleGetWallet(sessions))
			r.Get("/notifications", handler.HandleGetNotifications(sessions))
			r.Post("/loot", handler.HandleRollLoot(sessions))
			r.Post("/craft", handler.HandleCraftItem(sessions))

			r.Route("/items", func(r chi.Router) {
				r.Post("/sell-below", handler.HandleSellAllBelow(sessions))
				r.Post("/salvage-below", handler.HandleSalvageAllBelow(sessions))

				r.Route("/{"+handler.ParamInstanceID+"}", func(r chi.Router) {
					r.Post("/sell", handler.HandleSellItem(sessions))
					r.Post("/salvage", handler.HandleSalvageItem(sessions))
					r.Get("/upgrade-cost", handler.HandleUpgradeCost(sessions))
					r.Post("/upgrade", handler.HandleUpgradeItem(sessions))
				})
			})

			r.Route("/party", func(r chi.Router) {
				r.Get("/", handler.HandleGetParty(sessions))
				r.Post("/{"+handler.ParamMemberID+"}/equip", handler.HandleEquipItem(sessions))
				r.Post("/{"+handler.ParamMemberID+"}/unequip", handler.HandleUnequipItem(sessions))
			})
		})
	})

	return r
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

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for probes and scrapes
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
