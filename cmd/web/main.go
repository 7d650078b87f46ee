package main

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	server "property_search/internal/adapters/http_server"
	"property_search/internal/adapters/listings"
	"property_search/internal/adapters/observability"
	"property_search/internal/shared"
	"property_search/internal/web"
)

func main() {
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, "web")

	client, err := listings.New(cfg.APIBaseURL, cfg.APIRPS)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize query service client")
	}
	src := web.NewCachedSource(client, cfg.ResultCacheTTL)
	defer src.Stop()

	srv := server.New(30 * time.Second)
	srv.Mount("/metrics", observability.MetricsHandler(observability.InitRegistry()))
	srv.Router().Get("/healthz", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	web.NewHandlers(src).Register(srv.Router())

	log.Info().
		Str("addr", cfg.WebAddr).
		Str("api", cfg.APIBaseURL).
		Dur("result_cache_ttl", cfg.ResultCacheTTL).
		Msg("web frontend listening")
	httpSrv := &http.Server{Addr: cfg.WebAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
