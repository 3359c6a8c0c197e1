// Package notify pushes payment reminders to an external webhook. The ledger
// does not care who listens on the other side; any chat or messaging bridge
// accepting a small JSON payload works.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mvalderrama/ventas/internal/config"
)

// Client exposes the reminder delivery operation used by the scheduler.
type Client interface {
	SendReminder(ctx context.Context, message string) error
}

// WebhookClient is a resty-backed implementation of Client.
type WebhookClient struct {
	httpClient *resty.Client
}

// NewClient builds a webhook notifier from configuration.
func NewClient(cfg config.NotifyConfig) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(cfg.WebhookURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	if cfg.Token != "" {
		restyClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Token))
	}

	return &WebhookClient{httpClient: restyClient}
}

type reminderPayload struct {
	Message string `json:"message"`
}

type webhookError struct {
	Error string `json:"error"`
}

// SendReminder posts one reminder message to the configured webhook.
func (c *WebhookClient) SendReminder(ctx context.Context, message string) error {
	apiErr := new(webhookError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(reminderPayload{Message: message}).
		SetError(apiErr).
		Post("")
	if err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		detail := apiErr.Error
		if detail == "" {
			detail = resp.Status()
		}
		return fmt.Errorf("webhook error: code=%d, message=%s", resp.StatusCode(), detail)
	}

	return nil
}
