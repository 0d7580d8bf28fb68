package webhook_in_config

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	webhook_in_service "github.com/ainsongjog/whatsapp-bridge/src/webhook-in/service"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spySink struct {
	mu       sync.Mutex
	incoming []webhook_in_service.MessageEvent
	sent     []webhook_in_service.MessageEvent
	err      error
}

func (s *spySink) OnIncomingMessage(_ context.Context, event webhook_in_service.MessageEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incoming = append(s.incoming, event)
	return s.err
}

func (s *spySink) OnMessageSent(_ context.Context, event webhook_in_service.MessageEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, event)
	return s.err
}

func (s *spySink) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.incoming) + len(s.sent)
}

const receivedBody = `{
	"event_type": "message_received",
	"data": {"client_phone_number": "+111", "message": "hello", "timestamp": "2024-05-01T10:00:00"},
	"lawyer_id": 5
}`

func newApp(cfg Config) *fiber.App {
	app := fiber.New()
	ServeWebhook(app, cfg)
	return app
}

func deliver(t *testing.T, app *fiber.App, body, secret string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, Path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set("x-webhook-secret", secret)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestSecretMismatchRejected(t *testing.T) {
	sink := &spySink{}
	app := newApp(Config{Secret: "S", Sink: sink})

	status, _ := deliver(t, app, receivedBody, "T")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = deliver(t, app, receivedBody, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	assert.Zero(t, sink.calls())
}

func TestIncomingMessageDispatchedOnce(t *testing.T) {
	sink := &spySink{}
	app := newApp(Config{Secret: "S", Sink: sink})

	status, body := deliver(t, app, receivedBody, "S")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	require.Len(t, sink.incoming, 1)
	assert.Empty(t, sink.sent)
	assert.Equal(t, webhook_in_service.MessageEvent{
		LawyerID:          "5",
		ClientPhoneNumber: "+111",
		Message:           "hello",
		Timestamp:         "2024-05-01T10:00:00",
	}, sink.incoming[0])
}

func TestSentMessageDispatched(t *testing.T) {
	sink := &spySink{}
	app := newApp(Config{Sink: sink})

	body := strings.Replace(receivedBody, "message_received", "message_sent", 1)
	status, ack := deliver(t, app, body, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", ack["status"])

	assert.Empty(t, sink.incoming)
	require.Len(t, sink.sent, 1)
	assert.Equal(t, "+111", sink.sent[0].ClientPhoneNumber)
}

func TestFractionalLawyerIDAcknowledged(t *testing.T) {
	sink := &spySink{}
	app := newApp(Config{Secret: "S", Sink: sink})

	body := strings.Replace(receivedBody, `"lawyer_id": 5`, `"lawyer_id": 5.0`, 1)
	status, ack := deliver(t, app, body, "S")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", ack["status"])

	require.Len(t, sink.incoming, 1)
	assert.Equal(t, "5", sink.incoming[0].LawyerID)
}

func TestUnknownEventAcknowledged(t *testing.T) {
	sink := &spySink{}
	app := newApp(Config{Sink: sink})

	status, ack := deliver(t, app, `{"event_type":"typing","lawyer_id":"5"}`, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", ack["status"])
	assert.Zero(t, sink.calls())
}

func TestNoSecretConfigured(t *testing.T) {
	sink := &spySink{}

	status, _ := deliver(t, newApp(Config{Sink: sink}), receivedBody, "anything")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 1, sink.calls())

	status, _ = deliver(t, newApp(Config{Sink: sink, RequireSecret: true}), receivedBody, "anything")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, 1, sink.calls())
}

func TestSinkErrorAcknowledgedAsError(t *testing.T) {
	sink := &spySink{err: errors.New("db down")}
	app := newApp(Config{Sink: sink})

	status, ack := deliver(t, app, receivedBody, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "error", ack["status"])
	assert.NotContains(t, ack["message"], "db down")
	assert.Equal(t, 1, sink.calls())
}

func TestMissingDataAcknowledgedAsError(t *testing.T) {
	sink := &spySink{}
	app := newApp(Config{Sink: sink})

	status, ack := deliver(t, app, `{"event_type":"message_received","lawyer_id":1}`, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "error", ack["status"])
	assert.Zero(t, sink.calls())
}

func TestMalformedBody(t *testing.T) {
	sink := &spySink{}
	app := newApp(Config{Sink: sink})

	status, _ := deliver(t, app, `{"event_type":`, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Zero(t, sink.calls())
}
