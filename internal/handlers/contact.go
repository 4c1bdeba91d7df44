package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"syncsolved/backend-go/internal/models"
	"syncsolved/backend-go/internal/services"
)

// Contact validates a contact form submission and relays it to the mail
// provider. Validation failures are the caller's problem; relay failures are
// logged but reported generically.
func (a *API) Contact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid JSON body"})
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "Missing required fields"})
		return
	}

	if err := a.mailer.Send(r.Context(), req); err != nil {
		if errors.Is(err, services.ErrMailNotConfigured) {
			logrus.Error("RESEND_API_KEY not configured")
			writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Mail service not configured"})
			return
		}
		logrus.WithError(err).Error("contact relay failed")
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Failed to send email"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
