package whatsapp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	credential_service "github.com/ainsongjog/whatsapp-bridge/src/credential/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	APIKey string
	Body   map[string]any
}

// fakeBot records every request and answers with the configured status and body.
type fakeBot struct {
	server *httptest.Server
	calls  atomic.Int32

	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func newFakeBot(t *testing.T, status int, body string) *fakeBot {
	t.Helper()

	bot := &fakeBot{status: status, body: body}
	bot.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bot.calls.Add(1)

		raw, _ := io.ReadAll(r.Body)
		var decoded map[string]any
		if len(raw) > 0 {
			json.Unmarshal(raw, &decoded)
		}

		bot.mu.Lock()
		bot.requests = append(bot.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			APIKey: r.Header.Get("X-API-Key"),
			Body:   decoded,
		})
		bot.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(bot.status)
		io.WriteString(w, bot.body)
	}))
	t.Cleanup(bot.server.Close)
	return bot
}

func (b *fakeBot) last(t *testing.T) recordedRequest {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	require.NotEmpty(t, b.requests)
	return b.requests[len(b.requests)-1]
}

func newTestProxy(t *testing.T, baseURL string, enabled bool) *Proxy {
	t.Helper()

	store := credential_service.NewMemoryStore()
	require.NoError(t, store.Register(context.Background(), "lawyer@x.com", "K1"))

	return NewProxy(Config{BaseURL: baseURL, Enabled: enabled}, store)
}

func TestSendMessageEndToEnd(t *testing.T) {
	bot := newFakeBot(t, http.StatusOK, `{"status":"success","message":"Message sending task has been initiated."}`)
	proxy := newTestProxy(t, bot.server.URL, true)

	result := proxy.SendMessage(context.Background(), "lawyer@x.com", OutboundMessage{
		ClientPhoneNumber: "+111",
		Text:              "hi",
	})

	assert.Equal(t, SendResult{Success: true, Message: "Message sent successfully"}, result)
	assert.EqualValues(t, 1, bot.calls.Load())

	req := bot.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/lawyer/messages/send", req.Path)
	assert.Equal(t, "K1", req.APIKey)
	assert.Equal(t, map[string]any{"client_phone_number": "+111", "text": "hi"}, req.Body)
	assert.NotContains(t, req.Body, "file_path")
}

func TestSendMessageRemoteFailure(t *testing.T) {
	bot := newFakeBot(t, http.StatusInternalServerError, `{"status":"error","message":"selenium exploded"}`)
	proxy := newTestProxy(t, bot.server.URL, true)

	result := proxy.SendMessage(context.Background(), "lawyer@x.com", OutboundMessage{
		ClientPhoneNumber: "+111",
		Text:              "hi",
	})

	assert.Equal(t, SendResult{Success: false, Message: "Failed to send message"}, result)
	assert.EqualValues(t, 1, bot.calls.Load())
}

func TestSendMessageNetworkError(t *testing.T) {
	bot := newFakeBot(t, http.StatusOK, `{}`)
	bot.server.Close()
	proxy := newTestProxy(t, bot.server.URL, true)

	result := proxy.SendMessage(context.Background(), "lawyer@x.com", OutboundMessage{
		ClientPhoneNumber: "+111",
		Text:              "hi",
	})

	assert.Equal(t, SendResult{Success: false, Message: "Failed to send message"}, result)
}

func TestSendMessageTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	store := credential_service.NewMemoryStore()
	store.Register(context.Background(), "lawyer@x.com", "K1")
	proxy := NewProxy(Config{BaseURL: server.URL, Enabled: true, Timeout: 50 * time.Millisecond}, store)

	result := proxy.SendMessage(context.Background(), "lawyer@x.com", OutboundMessage{
		ClientPhoneNumber: "+111",
		Text:              "hi",
	})
	assert.False(t, result.Success)
	assert.Equal(t, "Failed to send message", result.Message)
}

func TestSendMessageRequiresTextOrFile(t *testing.T) {
	bot := newFakeBot(t, http.StatusOK, `{}`)
	proxy := newTestProxy(t, bot.server.URL, true)

	result := proxy.SendMessage(context.Background(), "lawyer@x.com", OutboundMessage{ClientPhoneNumber: "+111"})

	assert.False(t, result.Success)
	assert.Zero(t, bot.calls.Load())

	result = proxy.SendMessage(context.Background(), "lawyer@x.com", OutboundMessage{
		ClientPhoneNumber: "+111",
		FilePath:          "/tmp/contract.pdf",
	})
	assert.True(t, result.Success)
	assert.Equal(t, map[string]any{"client_phone_number": "+111", "file_path": "/tmp/contract.pdf"}, bot.last(t).Body)
}

func TestUnknownLawyerMakesNoNetworkCall(t *testing.T) {
	bot := newFakeBot(t, http.StatusOK, `{}`)
	proxy := newTestProxy(t, bot.server.URL, true)
	ctx := context.Background()

	send := proxy.SendMessage(ctx, "nobody@x.com", OutboundMessage{ClientPhoneNumber: "+111", Text: "hi"})
	assert.Equal(t, SendResult{Success: false, Message: "Lawyer not configured for WhatsApp"}, send)

	history := proxy.GetConversationHistory(ctx, "nobody@x.com", "+111", 10)
	assert.NotNil(t, history.Messages)
	assert.Empty(t, history.Messages)

	assert.Empty(t, proxy.GetLawyerClients(ctx, "nobody@x.com"))
	assert.Equal(t, AddClientResult{Success: false}, proxy.AddClient(ctx, "nobody@x.com", NewClient{Name: "Jane", PhoneNumber: "+222"}))
	assert.Equal(t, RegisterWebhookResult{Success: false}, proxy.RegisterWebhook(ctx, "nobody@x.com", "https://x.com/hook", ""))
	assert.Empty(t, proxy.ListWebhooks(ctx, "nobody@x.com"))
	assert.Equal(t, ProfileResult{Success: false}, proxy.GetProfile(ctx, "nobody@x.com"))

	assert.Zero(t, bot.calls.Load())
}

func TestDisabledIntegrationMakesNoNetworkCall(t *testing.T) {
	bot := newFakeBot(t, http.StatusOK, `{"clients":[{"id":1,"name":"Jane"}]}`)
	proxy := newTestProxy(t, bot.server.URL, false)
	ctx := context.Background()

	clients := proxy.GetLawyerClients(ctx, "lawyer@x.com")
	assert.NotNil(t, clients)
	assert.Empty(t, clients)

	send := proxy.SendMessage(ctx, "lawyer@x.com", OutboundMessage{ClientPhoneNumber: "+111", Text: "hi"})
	assert.Equal(t, SendResult{Success: false, Message: "WhatsApp integration is disabled"}, send)

	assert.Empty(t, proxy.GetConversationHistory(ctx, "lawyer@x.com", "+111", 0).Messages)
	assert.False(t, proxy.AddClient(ctx, "lawyer@x.com", NewClient{Name: "Jane", PhoneNumber: "+222"}).Success)
	assert.False(t, proxy.RegisterWebhook(ctx, "lawyer@x.com", "https://x.com/hook", "").Success)

	assert.Zero(t, bot.calls.Load())
}

func TestGetConversationHistory(t *testing.T) {
	bot := newFakeBot(t, http.StatusOK, `{
		"status": "success",
		"phone_number": "+111",
		"contact_name": "Jane",
		"messages": [{"sender": "Jane", "content": "hello"}],
		"count": 1
	}`)
	proxy := newTestProxy(t, bot.server.URL, true)

	history := proxy.GetConversationHistory(context.Background(), "lawyer@x.com", "+111", 0)

	assert.Equal(t, "Jane", history.ContactName)
	assert.Equal(t, 1, history.Count)
	require.Len(t, history.Messages, 1)
	assert.Equal(t, "hello", history.Messages[0]["content"])

	req := bot.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/lawyer/conversations/+111", req.Path)
	assert.Equal(t, "count=50", req.Query)
	assert.Equal(t, "K1", req.APIKey)
}

func TestGetConversationHistoryKeepsUnknownFields(t *testing.T) {
	bot := newFakeBot(t, http.StatusOK, `{
		"status": "success",
		"phone_number": "+111",
		"messages": [],
		"count": 0,
		"conversation_id": 12,
		"client": {"name": "Jane"}
	}`)
	proxy := newTestProxy(t, bot.server.URL, true)

	history := proxy.GetConversationHistory(context.Background(), "lawyer@x.com", "+111", 0)

	raw, err := json.Marshal(history)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": "success",
		"phone_number": "+111",
		"messages": [],
		"conversation_id": 12,
		"client": {"name": "Jane"}
	}`, string(raw))
}

func TestGetConversationHistoryNotFound(t *testing.T) {
	bot := newFakeBot(t, http.StatusNotFound, `{"status":"error","message":"No conversation found with this phone number"}`)
	proxy := newTestProxy(t, bot.server.URL, true)

	history := proxy.GetConversationHistory(context.Background(), "lawyer@x.com", "+111", 5)

	assert.Equal(t, emptyConversation(), history)
	assert.Equal(t, "count=5", bot.last(t).Query)
}

func TestGetLawyerClients(t *testing.T) {
	bot := newFakeBot(t, http.StatusOK, `{"status":"success","clients":[{"id":7,"name":"Jane","phone_number":"+222","email":null,"status":"active","message_count":3}],"count":1}`)
	proxy := newTestProxy(t, bot.server.URL, true)

	clients := proxy.GetLawyerClients(context.Background(), "lawyer@x.com")

	require.Len(t, clients, 1)
	assert.Equal(t, int64(7), clients[0].ID)
	assert.Equal(t, "+222", clients[0].PhoneNumber)
	assert.Nil(t, clients[0].Email)
	assert.Equal(t, 3, clients[0].MessageCount)
	assert.Equal(t, "/api/lawyer/clients", bot.last(t).Path)
}

func TestGetLawyerClientsFailureIsEmpty(t *testing.T) {
	bot := newFakeBot(t, http.StatusUnauthorized, `{"status":"error"}`)
	proxy := newTestProxy(t, bot.server.URL, true)

	clients := proxy.GetLawyerClients(context.Background(), "lawyer@x.com")
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}

func TestAddClient(t *testing.T) {
	bot := newFakeBot(t, http.StatusCreated, `{"status":"success","client_id":42,"relationship_id":3}`)
	proxy := newTestProxy(t, bot.server.URL, true)

	result := proxy.AddClient(context.Background(), "lawyer@x.com", NewClient{
		Name:        "Jane",
		PhoneNumber: "+222",
		Email:       "jane@y.com",
	})

	require.True(t, result.Success)
	require.NotNil(t, result.ClientID)
	assert.Equal(t, int64(42), *result.ClientID)

	req := bot.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/lawyer/clients", req.Path)
	assert.Equal(t, map[string]any{"name": "Jane", "phone_number": "+222", "email": "jane@y.com"}, req.Body)
}

func TestRegisterWebhookDefaultsEventType(t *testing.T) {
	bot := newFakeBot(t, http.StatusCreated, `{"status":"success","webhook_id":9}`)
	proxy := newTestProxy(t, bot.server.URL, true)

	result := proxy.RegisterWebhook(context.Background(), "lawyer@x.com", "https://x.com/hook", "")

	require.True(t, result.Success)
	assert.Equal(t, int64(9), *result.WebhookID)

	req := bot.last(t)
	assert.Equal(t, "/api/lawyer/webhooks", req.Path)
	assert.Equal(t, map[string]any{"url": "https://x.com/hook", "event_type": "message_received"}, req.Body)

	proxy.RegisterWebhook(context.Background(), "lawyer@x.com", "https://x.com/hook", EventMessageSent)
	assert.Equal(t, "message_sent", bot.last(t).Body["event_type"])
}

func TestListWebhooksAndProfile(t *testing.T) {
	bot := newFakeBot(t, http.StatusOK, `{
		"status": "success",
		"webhooks": [{"id": 1, "lawyer_id": 2, "url": "https://x.com/hook", "event_type": "message_received", "is_active": 1}],
		"lawyer": {"id": 2, "name": "John", "email": "lawyer@x.com", "whatsapp_name": "John"}
	}`)
	proxy := newTestProxy(t, bot.server.URL, true)
	ctx := context.Background()

	webhooks := proxy.ListWebhooks(ctx, "lawyer@x.com")
	require.Len(t, webhooks, 1)
	assert.Equal(t, "https://x.com/hook", webhooks[0].URL)
	assert.Equal(t, http.MethodGet, bot.last(t).Method)

	profile := proxy.GetProfile(ctx, "lawyer@x.com")
	require.True(t, profile.Success)
	assert.Equal(t, "John", profile.Lawyer.Name)
	assert.Equal(t, "/api/lawyer/lawyers/me", bot.last(t).Path)
}

func TestNewProxyDefaults(t *testing.T) {
	proxy := NewProxy(Config{Enabled: true}, credential_service.NewMemoryStore())

	assert.Equal(t, "http://localhost:5001/api/lawyer", proxy.baseURL)
	assert.Equal(t, 30*time.Second, proxy.httpClient.Timeout)
	assert.True(t, proxy.Enabled())

	proxy = NewProxy(Config{BaseURL: "http://bot:5001/"}, credential_service.NewMemoryStore())
	assert.Equal(t, "http://bot:5001/api/lawyer", proxy.baseURL)
}
