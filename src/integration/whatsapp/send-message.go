package whatsapp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pterm/pterm"
)

const (
	msgDisabled      = "WhatsApp integration is disabled"
	msgNotConfigured = "Lawyer not configured for WhatsApp"
	msgEmptyMessage  = "Message must include text or a file path"
	msgSent          = "Message sent successfully"
	msgSendFailed    = "Failed to send message"
)

// SendMessage sends text and/or a file to a client on behalf of the lawyer.
func (p *Proxy) SendMessage(ctx context.Context, lawyer string, msg OutboundMessage) SendResult {
	if !p.enabled {
		pterm.DefaultLogger.Warn("WhatsApp integration is disabled")
		return SendResult{Success: false, Message: msgDisabled}
	}

	apiKey, ok := p.apiKey(ctx, lawyer, "send message")
	if !ok {
		return SendResult{Success: false, Message: msgNotConfigured}
	}

	if msg.Text == "" && msg.FilePath == "" {
		return SendResult{Success: false, Message: msgEmptyMessage}
	}

	err := p.do(ctx, apiKey, http.MethodPost, "/messages/send", nil, sendMessageRequest{
		ClientPhoneNumber: msg.ClientPhoneNumber,
		Text:              msg.Text,
		FilePath:          msg.FilePath,
	}, nil)
	if err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Failed to send WhatsApp message: %s", err),
		)
		return SendResult{Success: false, Message: msgSendFailed}
	}

	pterm.DefaultLogger.Info(
		fmt.Sprintf("Message sent to %s from %s", msg.ClientPhoneNumber, lawyer),
	)
	return SendResult{Success: true, Message: msgSent}
}
