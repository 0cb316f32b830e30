package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/fachrifaul/paysheet/internal/auth"
	"github.com/fachrifaul/paysheet/internal/config"
	"github.com/fachrifaul/paysheet/internal/middleware"
	"github.com/fachrifaul/paysheet/internal/service"
	"github.com/fachrifaul/paysheet/internal/storage/sqlite"
	"github.com/fachrifaul/paysheet/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.AppEnv)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	authSvc := service.NewAuthService(authenticator, jwtManager, slog.Default())
	summarySvc := service.NewSummaryService(store, slog.Default())

	requireAuth := middleware.RequireAuth(jwtManager)

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /v1/auth/register", authSvc.HandleRegister)
	mux.HandleFunc("POST /v1/auth/login", authSvc.HandleLogin)
	mux.Handle("POST /v1/summaries", requireAuth(http.HandlerFunc(summarySvc.HandleCreate)))
	mux.Handle("GET /v1/summaries", requireAuth(http.HandlerFunc(summarySvc.HandleList)))
	mux.Handle("GET /v1/summaries/{id}", requireAuth(http.HandlerFunc(summarySvc.HandleGet)))
	mux.Handle("DELETE /v1/summaries/{id}", requireAuth(http.HandlerFunc(summarySvc.HandleDelete)))

	handler := middleware.Logging(middleware.Metrics(corsMiddleware(mux)))

	// HTTP/2 without TLS so gRPC-style and browser clients both work behind
	// a TLS-terminating proxy.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := ":" + cfg.Port
	slog.Info("Server starting", "address", addr, "env", cfg.AppEnv)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
