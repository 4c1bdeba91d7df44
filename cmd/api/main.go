package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"syncsolved/backend-go/internal/config"
	"syncsolved/backend-go/internal/handlers"
	internalhttp "syncsolved/backend-go/internal/http"
	"syncsolved/backend-go/internal/metrics"
	"syncsolved/backend-go/internal/services"
)

func main() {
	_ = godotenv.Load(".env", ".env.local")
	cfg := config.Load()
	configureLogging()

	cache := services.NewCache(cfg)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	engine := services.NewDataEngine(cfg, cache, m, services.DefaultSources(cfg)...)
	mailer := services.NewMailer(cfg)

	api := handlers.New(cfg, engine, mailer)
	h := internalhttp.NewRouter(cfg, api, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logrus.WithField("addr", srv.Addr).Info("syncsolved backend listening")
	if err := srv.ListenAndServe(); err != nil {
		logrus.Fatal(err)
	}
}

func configureLogging() {
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(lvl)
	}
	if os.Getenv("LOG_FORMAT") == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}
}
