package handlers

import (
	"net/http"
	"os"

	"syncsolved/backend-go/internal/models"
)

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Ok:      true,
		TsISO:   nowISO(),
		Service: "backend-go",
		Version: os.Getenv("SERVICE_VERSION"),
		Env: map[string]bool{
			"EIA_API_KEY":    os.Getenv("EIA_API_KEY") != "",
			"RESEND_API_KEY": os.Getenv("RESEND_API_KEY") != "",
			"REDIS_URL":      os.Getenv("REDIS_URL") != "",
			"CACHE_DB_PATH":  os.Getenv("CACHE_DB_PATH") != "",
		},
	}
	writeJSON(w, http.StatusOK, resp)
}
