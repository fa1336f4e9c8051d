package main

import (
	"context"
	"log"
	"net/http"

	"github.com/rs/cors"

	"portfolio-api/api/router"
	"portfolio-api/config"
	"portfolio-api/db"
	"portfolio-api/internal/logger"
)

func main() {
	config.InitApp()
	logger.Init(config.GetConfig().Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}
	r := router.New()

	// The site frontend is served from a different origin, so wrap the
	// engine with permissive CORS for the read/write API.
	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-Id"},
	}).Handler(r)

	addr := config.GetConfig().Server.Addr
	logger.Log.Infof("listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
