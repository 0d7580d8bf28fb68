package whatsapp_handler

import (
	"context"

	"github.com/ainsongjog/whatsapp-bridge/src/integration/whatsapp"
)

// Proxy is the part of the bot client used by the routes.
type Proxy interface {
	SendMessage(ctx context.Context, lawyer string, msg whatsapp.OutboundMessage) whatsapp.SendResult
	GetConversationHistory(ctx context.Context, lawyer, clientPhoneNumber string, count int) whatsapp.ConversationHistory
	GetLawyerClients(ctx context.Context, lawyer string) []whatsapp.LawyerClient
	AddClient(ctx context.Context, lawyer string, client whatsapp.NewClient) whatsapp.AddClientResult
	RegisterWebhook(ctx context.Context, lawyer, webhookURL, eventType string) whatsapp.RegisterWebhookResult
	ListWebhooks(ctx context.Context, lawyer string) []whatsapp.Webhook
	GetProfile(ctx context.Context, lawyer string) whatsapp.ProfileResult
}

type Handler struct {
	Proxy Proxy
}

func New(proxy Proxy) *Handler {
	return &Handler{Proxy: proxy}
}
