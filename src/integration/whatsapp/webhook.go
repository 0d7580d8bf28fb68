package whatsapp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pterm/pterm"
)

// RegisterWebhook asks the bot to call webhookURL on eventType. An empty
// eventType means EventMessageReceived.
func (p *Proxy) RegisterWebhook(ctx context.Context, lawyer, webhookURL, eventType string) RegisterWebhookResult {
	apiKey, ok := p.apiKey(ctx, lawyer, "register webhook")
	if !ok {
		return RegisterWebhookResult{Success: false}
	}

	if eventType == "" {
		eventType = EventMessageReceived
	}

	var resp registerWebhookResponse
	err := p.do(ctx, apiKey, http.MethodPost, "/webhooks", nil, registerWebhookRequest{
		URL:       webhookURL,
		EventType: eventType,
	}, &resp)
	if err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Failed to register webhook: %s", err),
		)
		return RegisterWebhookResult{Success: false}
	}

	pterm.DefaultLogger.Info(
		fmt.Sprintf("Webhook registered for %s: %s", lawyer, webhookURL),
	)
	return RegisterWebhookResult{Success: true, WebhookID: resp.WebhookID}
}

// ListWebhooks returns the lawyer's active webhooks, empty on any failure.
func (p *Proxy) ListWebhooks(ctx context.Context, lawyer string) []Webhook {
	apiKey, ok := p.apiKey(ctx, lawyer, "list webhooks")
	if !ok {
		return []Webhook{}
	}

	var resp webhooksResponse
	if err := p.do(ctx, apiKey, http.MethodGet, "/webhooks", nil, nil, &resp); err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Failed to list webhooks: %s", err),
		)
		return []Webhook{}
	}

	if resp.Webhooks == nil {
		return []Webhook{}
	}
	return resp.Webhooks
}
