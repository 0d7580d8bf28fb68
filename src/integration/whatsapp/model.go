package whatsapp

import "encoding/json"

const (
	EventMessageReceived = "message_received"
	EventMessageSent     = "message_sent"
)

type OutboundMessage struct {
	ClientPhoneNumber string
	Text              string
	FilePath          string
}

type SendResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ConversationHistory is the bot's conversation payload. Fields not modeled
// here are kept in Extra and written back unchanged.
type ConversationHistory struct {
	Status      string           `json:"status,omitempty"`
	PhoneNumber string           `json:"phone_number,omitempty"`
	ContactName string           `json:"contact_name,omitempty"`
	Messages    []map[string]any `json:"messages"`
	Count       int              `json:"count,omitempty"`

	Extra map[string]json.RawMessage `json:"-" swaggerignore:"true"`
}

type conversationFields ConversationHistory

var conversationKeys = []string{"status", "phone_number", "contact_name", "messages", "count"}

func (h *ConversationHistory) UnmarshalJSON(data []byte) error {
	var fields conversationFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, key := range conversationKeys {
		delete(all, key)
	}
	if len(all) > 0 {
		fields.Extra = all
	}

	*h = ConversationHistory(fields)
	return nil
}

func (h ConversationHistory) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(conversationFields(h))
	if err != nil || len(h.Extra) == 0 {
		return known, err
	}

	var out map[string]json.RawMessage
	if err := json.Unmarshal(known, &out); err != nil {
		return nil, err
	}
	for key, value := range h.Extra {
		if _, modeled := out[key]; !modeled {
			out[key] = value
		}
	}
	return json.Marshal(out)
}

// LawyerClient is a client linked to the lawyer on the bot side.
type LawyerClient struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	PhoneNumber     string  `json:"phone_number"`
	Email           *string `json:"email"`
	ConversationID  *int64  `json:"conversation_id"`
	Status          string  `json:"status"`
	Title           *string `json:"title"`
	LastMessageTime *string `json:"last_message_time"`
	MessageCount    int     `json:"message_count"`
}

type NewClient struct {
	Name        string
	PhoneNumber string
	Email       string
}

type AddClientResult struct {
	Success  bool   `json:"success"`
	ClientID *int64 `json:"clientId,omitempty"`
}

type RegisterWebhookResult struct {
	Success   bool   `json:"success"`
	WebhookID *int64 `json:"webhookId,omitempty"`
}

type Webhook struct {
	ID        int64  `json:"id"`
	LawyerID  int64  `json:"lawyer_id"`
	URL       string `json:"url"`
	EventType string `json:"event_type"`
	IsActive  int    `json:"is_active"`
	Created   string `json:"created"`
}

type LawyerProfile struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	PhoneNumber  string  `json:"phone_number"`
	WhatsAppName string  `json:"whatsapp_name"`
	ProfilePath  *string `json:"profile_path"`
	IsActive     int     `json:"is_active"`
	Created      string  `json:"created"`
	Updated      string  `json:"updated"`
}

type ProfileResult struct {
	Success bool           `json:"success"`
	Lawyer  *LawyerProfile `json:"lawyer,omitempty"`
}

// Request and response bodies of the bot API.

type sendMessageRequest struct {
	ClientPhoneNumber string `json:"client_phone_number"`
	Text              string `json:"text,omitempty"`
	FilePath          string `json:"file_path,omitempty"`
}

type addClientRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email,omitempty"`
}

type addClientResponse struct {
	ClientID *int64 `json:"client_id"`
}

type registerWebhookRequest struct {
	URL       string `json:"url"`
	EventType string `json:"event_type"`
}

type registerWebhookResponse struct {
	WebhookID *int64 `json:"webhook_id"`
}

type clientsResponse struct {
	Clients []LawyerClient `json:"clients"`
}

type webhooksResponse struct {
	Webhooks []Webhook `json:"webhooks"`
}

type profileResponse struct {
	Lawyer *LawyerProfile `json:"lawyer"`
}
