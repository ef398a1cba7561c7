package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/blogicum/blogicum"
	"github.com/blogicum/blogicum/api"
	"github.com/blogicum/blogicum/internal/config"
	"github.com/blogicum/blogicum/sudoapi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var requestCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "blogicum_http_requests_total",
	Help: "HTTP requests served, by method and status class.",
}, []string{"method", "code"})

func serve(ctx context.Context) error {
	slog.InfoContext(ctx, "Starting blogicum", slog.String("version", blogicum.Version))
	if config.Common.Debug {
		slog.WarnContext(ctx, "Debug mode activated, expect worse performance")
	}

	if err := os.MkdirAll(config.Common.DataDir, 0755); err != nil {
		return fmt.Errorf("could not create data dir: %w", err)
	}

	base, err := sudoapi.InitializeBaseAPI(ctx)
	if err != nil {
		return err
	}
	defer base.Close()

	go sessionJanitor(ctx, base)

	r := chi.NewRouter()

	corsConfig := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(corsConfig.Handler)

	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(20 * time.Second))
	r.Use(countRequests)

	r.Mount("/api", api.New(base).Handler())
	r.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    net.JoinHostPort(config.Server.Host, strconv.Itoa(config.Server.Port)),
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	slog.InfoContext(ctx, "Successfully started", slog.String("addr", server.Addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutCtx); err != nil {
		return fmt.Errorf("could not shut down cleanly: %w", err)
	}
	return nil
}

// sessionJanitor prunes expired sessions once an hour.
func sessionJanitor(ctx context.Context, base *sudoapi.BaseAPI) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			base.CleanupSessions(ctx)
		}
	}
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

func countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		requestCount.WithLabelValues(r.Method, strconv.Itoa(ww.Status())).Inc()
	})
}
