package whatsapp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pterm/pterm"
)

const DefaultConversationCount = 50

func emptyConversation() ConversationHistory {
	return ConversationHistory{Messages: []map[string]any{}}
}

// GetConversationHistory returns the last count messages exchanged with a
// client. Failures yield an empty message list.
func (p *Proxy) GetConversationHistory(ctx context.Context, lawyer, clientPhoneNumber string, count int) ConversationHistory {
	apiKey, ok := p.apiKey(ctx, lawyer, "get conversation history")
	if !ok {
		return emptyConversation()
	}

	if count <= 0 {
		count = DefaultConversationCount
	}

	var history ConversationHistory
	err := p.do(
		ctx,
		apiKey,
		http.MethodGet,
		"/conversations/"+url.PathEscape(clientPhoneNumber),
		url.Values{"count": {strconv.Itoa(count)}},
		nil,
		&history,
	)
	if err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Failed to get conversation history: %s", err),
		)
		return emptyConversation()
	}

	if history.Messages == nil {
		history.Messages = []map[string]any{}
	}
	return history
}
