package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/card-dashboard/internal/handlers/v1/apierrors"
	"github.com/carson-networks/card-dashboard/internal/handlers/v1/card"
	"github.com/carson-networks/card-dashboard/internal/handlers/v1/dashboard"
	"github.com/carson-networks/card-dashboard/internal/handlers/v1/health"
	"github.com/carson-networks/card-dashboard/internal/handlers/v1/transactions"
	"github.com/carson-networks/card-dashboard/internal/logging"
	"github.com/carson-networks/card-dashboard/internal/service"
)

type Rest struct {
	Logger        *logrus.Logger
	Port          string
	Service       *service.Service
	AllowedOrigin string
}

// Serve registers every endpoint and blocks until the listener fails or ctx
// is cancelled, at which point the server drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	apierrors.Install()

	mux := http.NewServeMux()
	api := humago.New(mux, huma.DefaultConfig("Card Dashboard API", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	health.NewHandler().Register(api)
	dashboard.NewGetDashboardHandler(r.Service.Dashboard).Register(api)
	dashboard.NewSelectCompanyHandler(r.Service.Dashboard).Register(api)
	transactions.NewListTransactionsHandler(r.Service.Dashboard).Register(api)
	card.NewActivateCardHandler(r.Service.Dashboard).Register(api)
	card.NewDeactivateCardHandler(r.Service.Dashboard).Register(api)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           withCORS(r.AllowedOrigin, mux),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
	return nil
}

// withCORS mirrors the local frontend setup: a single allowed origin and a
// preflight short-circuit.
func withCORS(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, req)
	})
}
