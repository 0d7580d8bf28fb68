package webhook_in_model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

type EventType string

const (
	MessageReceived EventType = "message_received"
	MessageSent     EventType = "message_sent"
)

// WebhookEvent is the body the bot posts to /webhooks/whatsapp.
type WebhookEvent struct {
	EventType EventType  `json:"event_type"`
	Data      *EventData `json:"data"`
	LawyerID  LawyerID   `json:"lawyer_id"`
}

type EventData struct {
	ClientPhoneNumber string `json:"client_phone_number"`
	Message           string `json:"message"`
	Timestamp         string `json:"timestamp"`
}

// LawyerID is the bot's identifier for a lawyer. The bot sends an integer
// but strings and any other JSON number are accepted too.
type LawyerID string

func (id *LawyerID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = LawyerID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("lawyer_id must be a number or a string: %w", err)
	}
	*id = LawyerID(normalizeNumber(n))
	return nil
}

// normalizeNumber writes integral values like 5.0 or 5e0 as 5 so they match
// the id the bot uses elsewhere. Other numbers are kept as sent.
func normalizeNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := n.Float64()
	if err == nil && f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return n.String()
}

func (id LawyerID) String() string {
	return string(id)
}
