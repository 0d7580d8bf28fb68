package whatsapp_router

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	auth_middleware "github.com/ainsongjog/whatsapp-bridge/src/auth/middleware"
	credential_service "github.com/ainsongjog/whatsapp-bridge/src/credential/service"
	"github.com/ainsongjog/whatsapp-bridge/src/integration/whatsapp"
	whatsapp_handler "github.com/ainsongjog/whatsapp-bridge/src/whatsapp/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lawyer = "lawyer@x.com"

type call struct {
	op     string
	args   []any
	lawyer string
}

type fakeProxy struct {
	mu    sync.Mutex
	calls []call
}

func (f *fakeProxy) record(op, lawyer string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{op: op, lawyer: lawyer, args: args})
}

func (f *fakeProxy) SendMessage(_ context.Context, lawyer string, msg whatsapp.OutboundMessage) whatsapp.SendResult {
	f.record("send", lawyer, msg)
	return whatsapp.SendResult{Success: true, Message: "Message sent successfully"}
}

func (f *fakeProxy) GetConversationHistory(_ context.Context, lawyer, phone string, count int) whatsapp.ConversationHistory {
	f.record("conversation", lawyer, phone, count)
	return whatsapp.ConversationHistory{Messages: []map[string]any{}}
}

func (f *fakeProxy) GetLawyerClients(_ context.Context, lawyer string) []whatsapp.LawyerClient {
	f.record("clients", lawyer)
	return []whatsapp.LawyerClient{{ID: 1, Name: "Ana", PhoneNumber: "+111"}}
}

func (f *fakeProxy) AddClient(_ context.Context, lawyer string, client whatsapp.NewClient) whatsapp.AddClientResult {
	f.record("addClient", lawyer, client)
	id := int64(9)
	return whatsapp.AddClientResult{Success: true, ClientID: &id}
}

func (f *fakeProxy) RegisterWebhook(_ context.Context, lawyer, url, eventType string) whatsapp.RegisterWebhookResult {
	f.record("registerWebhook", lawyer, url, eventType)
	return whatsapp.RegisterWebhookResult{Success: true}
}

func (f *fakeProxy) ListWebhooks(_ context.Context, lawyer string) []whatsapp.Webhook {
	f.record("webhooks", lawyer)
	return []whatsapp.Webhook{}
}

func (f *fakeProxy) GetProfile(_ context.Context, lawyer string) whatsapp.ProfileResult {
	f.record("profile", lawyer)
	return whatsapp.ProfileResult{Success: false}
}

func newApp(proxy whatsapp_handler.Proxy) *fiber.App {
	app := fiber.New()
	Route(app, auth_middleware.NewLawyerMiddleware(""), whatsapp_handler.New(proxy))
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string, authenticated bool) (int, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.Header.Set(auth_middleware.LawyerHeader, lawyer)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestSendMessage(t *testing.T) {
	proxy := &fakeProxy{}
	app := newApp(proxy)

	status, body := do(t, app, http.MethodPost, "/whatsapp/send", `{"clientPhoneNumber":"+111","text":"hi"}`, true)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"success":true,"message":"Message sent successfully"}`, body)

	require.Len(t, proxy.calls, 1)
	assert.Equal(t, lawyer, proxy.calls[0].lawyer)
	assert.Equal(t, whatsapp.OutboundMessage{ClientPhoneNumber: "+111", Text: "hi"}, proxy.calls[0].args[0])
}

func TestSendMessageRejectsInvalidBodies(t *testing.T) {
	proxy := &fakeProxy{}
	app := newApp(proxy)

	for _, body := range []string{
		`{"clientPhoneNumber":"+111"}`,
		`{"text":"hi"}`,
		`{"clientPhoneNumber":"call me","text":"hi"}`,
		`{"clientPhoneNumber":`,
	} {
		status, _ := do(t, app, http.MethodPost, "/whatsapp/send", body, true)
		assert.Equal(t, fiber.StatusBadRequest, status, body)
	}
	assert.Empty(t, proxy.calls)
}

func TestFileOnlyMessageAccepted(t *testing.T) {
	proxy := &fakeProxy{}
	app := newApp(proxy)

	status, _ := do(t, app, http.MethodPost, "/whatsapp/send", `{"clientPhoneNumber":"+111","filePath":"/tmp/a.pdf"}`, true)
	assert.Equal(t, fiber.StatusOK, status)
	require.Len(t, proxy.calls, 1)
	assert.Equal(t, "/tmp/a.pdf", proxy.calls[0].args[0].(whatsapp.OutboundMessage).FilePath)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	proxy := &fakeProxy{}
	app := newApp(proxy)

	status, _ := do(t, app, http.MethodGet, "/whatsapp/clients", "", false)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Empty(t, proxy.calls)
}

func TestConversationCount(t *testing.T) {
	proxy := &fakeProxy{}
	app := newApp(proxy)

	status, body := do(t, app, http.MethodGet, "/whatsapp/conversations/%2B111", "", true)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"messages":[]}`, body)

	status, _ = do(t, app, http.MethodGet, "/whatsapp/conversations/%2B111?count=10", "", true)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, app, http.MethodGet, "/whatsapp/conversations/%2B111?count=0", "", true)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = do(t, app, http.MethodGet, "/whatsapp/conversations/%2B111?count=abc", "", true)
	assert.Equal(t, fiber.StatusOK, status)

	require.Len(t, proxy.calls, 4)
	assert.Equal(t, []any{"+111", 50}, proxy.calls[0].args)
	assert.Equal(t, []any{"+111", 10}, proxy.calls[1].args)
	assert.Equal(t, []any{"+111", 50}, proxy.calls[2].args)
	assert.Equal(t, []any{"+111", 50}, proxy.calls[3].args)
}

func TestClients(t *testing.T) {
	proxy := &fakeProxy{}
	app := newApp(proxy)

	status, body := do(t, app, http.MethodGet, "/whatsapp/clients", "", true)
	assert.Equal(t, fiber.StatusOK, status)

	var clients []whatsapp.LawyerClient
	require.NoError(t, json.Unmarshal([]byte(body), &clients))
	require.Len(t, clients, 1)
	assert.Equal(t, "Ana", clients[0].Name)

	status, body = do(t, app, http.MethodPost, "/whatsapp/clients", `{"name":"Bo","phoneNumber":"+222","email":"bo@x.com"}`, true)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"success":true,"clientId":9}`, body)
	assert.Equal(t, whatsapp.NewClient{Name: "Bo", PhoneNumber: "+222", Email: "bo@x.com"}, proxy.calls[1].args[0])

	status, _ = do(t, app, http.MethodPost, "/whatsapp/clients", `{"name":"Bo","phoneNumber":"+222","email":"not-an-email"}`, true)
	assert.Equal(t, fiber.StatusBadRequest, status)
	status, _ = do(t, app, http.MethodPost, "/whatsapp/clients", `{"phoneNumber":"+222"}`, true)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Len(t, proxy.calls, 2)
}

func TestRegisterWebhookDefaultsEventType(t *testing.T) {
	proxy := &fakeProxy{}
	app := newApp(proxy)

	status, body := do(t, app, http.MethodPost, "/whatsapp/webhook", `{"url":"https://crm.example.com/hook"}`, true)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"success":true}`, body)
	assert.Equal(t, []any{"https://crm.example.com/hook", "message_received"}, proxy.calls[0].args)

	status, _ = do(t, app, http.MethodPost, "/whatsapp/webhook", `{"url":"https://crm.example.com/hook","eventType":"message_sent"}`, true)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "message_sent", proxy.calls[1].args[1])

	status, _ = do(t, app, http.MethodPost, "/whatsapp/webhook", `{"url":"https://crm.example.com/hook","eventType":"typing"}`, true)
	assert.Equal(t, fiber.StatusBadRequest, status)
	status, _ = do(t, app, http.MethodPost, "/whatsapp/webhook", `{"url":"not a url"}`, true)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Len(t, proxy.calls, 2)
}

func TestWebhooksAndProfile(t *testing.T) {
	proxy := &fakeProxy{}
	app := newApp(proxy)

	status, body := do(t, app, http.MethodGet, "/whatsapp/webhooks", "", true)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[]`, body)

	status, body = do(t, app, http.MethodGet, "/whatsapp/profile", "", true)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"success":false}`, body)
}

func TestSendThroughBot(t *testing.T) {
	var gotKey string
	var gotBody map[string]any
	bot := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/lawyer/messages/send", r.URL.Path)
		gotKey = r.Header.Get("X-API-Key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"sent"}`))
	}))
	defer bot.Close()

	store := credential_service.NewMemoryStore()
	require.NoError(t, store.Register(context.Background(), lawyer, "K1"))
	proxy := whatsapp.NewProxy(whatsapp.Config{BaseURL: bot.URL, Enabled: true}, store)

	status, body := do(t, newApp(proxy), http.MethodPost, "/whatsapp/send", `{"clientPhoneNumber":"+111","text":"hi"}`, true)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"success":true,"message":"Message sent successfully"}`, body)
	assert.Equal(t, "K1", gotKey)
	assert.Equal(t, map[string]any{"client_phone_number": "+111", "text": "hi"}, gotBody)
}
