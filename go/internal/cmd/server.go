package main

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/zodiarena/go/internal/gateway"
)

func setupServer(services *Services, config *Config) *http.Server {
	mux := http.NewServeMux()

	api := NewAPI(services)
	api.RegisterRoutes(mux)

	services.WSHandler.RegisterRoutes(mux)

	setupHealthCheck(mux)

	handler := gateway.NewCORS(config.Server.AllowedOrigins).Handler(mux)

	return &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Server.Port),
		Handler: handler,
	}
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}
