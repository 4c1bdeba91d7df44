package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"syncsolved/backend-go/internal/config"
	"syncsolved/backend-go/internal/services"
)

type API struct {
	cfg    config.Config
	engine *services.DataEngine
	mailer *services.Mailer
}

func New(cfg config.Config, engine *services.DataEngine, mailer *services.Mailer) *API {
	return &API{
		cfg:    cfg,
		engine: engine,
		mailer: mailer,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
