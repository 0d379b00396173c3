package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "github.com/rohmon/backend/internal/errors"
)

// MailClient sends HTML mail through a Resend-style HTTP API.
type MailClient struct {
	apiKey     string
	baseURL    string
	from       string
	httpClient *http.Client
}

func NewMailClient(baseURL, apiKey, from string) *MailClient {
	return &MailClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		from:       from,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type sendMailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send posts one HTML email. A missing API key is a configuration error, not
// a transport failure.
func (c *MailClient) Send(ctx context.Context, to, subject, html string) error {
	if c.apiKey == "" {
		return fmt.Errorf("mail API key not configured")
	}

	body, err := json.Marshal(sendMailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("encode mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return &apperrors.TransportError{Source: "mail", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperrors.TransportError{Source: "mail", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &apperrors.TransportError{Source: "mail", Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	return nil
}
