package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strings"

	"syncsolved/backend-go/internal/config"
	"syncsolved/backend-go/internal/models"
)

var ErrMailNotConfigured = errors.New("mail service not configured")

// Mailer relays contact form submissions through the Resend API.
type Mailer struct {
	baseURL string
	apiKey  string
	from    string
	to      string
	hc      *http.Client
}

func NewMailer(cfg config.Config) *Mailer {
	return &Mailer{
		baseURL: cfg.ResendBaseURL,
		apiKey:  cfg.ResendAPIKey,
		from:    cfg.ContactFrom,
		to:      cfg.ContactTo,
		hc:      &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (m *Mailer) Send(ctx context.Context, msg models.ContactRequest) error {
	if m.apiKey == "" {
		return ErrMailNotConfigured
	}

	subject := "New inquiry from " + msg.Name
	if msg.Company != "" {
		subject += " at " + msg.Company
	}

	payload, err := json.Marshal(map[string]any{
		"from":     m.from,
		"to":       []string{m.to},
		"reply_to": msg.Email,
		"subject":  subject,
		"html":     contactHTML(msg),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	res, err := m.hc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return fmt.Errorf("resend: %s", res.Status)
	}
	return nil
}

func contactHTML(msg models.ContactRequest) string {
	var b strings.Builder
	b.WriteString("<h2>New contact form submission</h2>")
	b.WriteString("<p><strong>Name:</strong> " + html.EscapeString(msg.Name) + "</p>")
	b.WriteString("<p><strong>Email:</strong> " + html.EscapeString(msg.Email) + "</p>")
	if msg.Company != "" {
		b.WriteString("<p><strong>Company:</strong> " + html.EscapeString(msg.Company) + "</p>")
	}
	if msg.Interest != "" {
		b.WriteString("<p><strong>Interest:</strong> " + html.EscapeString(msg.Interest) + "</p>")
	}
	b.WriteString("<p><strong>Message:</strong></p>")
	b.WriteString("<p>" + strings.ReplaceAll(html.EscapeString(msg.Message), "\n", "<br>") + "</p>")
	return b.String()
}
