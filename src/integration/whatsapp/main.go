package whatsapp

import (
	"net/http"
	"strings"
	"time"

	"github.com/ainsongjog/whatsapp-bridge/src/config/env"
	credential_service "github.com/ainsongjog/whatsapp-bridge/src/credential/service"
	"github.com/pterm/pterm"
)

const (
	DefaultBaseURL = "http://localhost:5001"
	DefaultTimeout = 30 * time.Second
	apiPrefix      = "/api/lawyer"
	apiKeyHeader   = "X-API-Key"
)

type Config struct {
	BaseURL string
	Enabled bool
	Timeout time.Duration

	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// Proxy issues lawyer operations against the bot REST API. Every operation
// makes at most one request and reports failures through its result.
type Proxy struct {
	baseURL    string
	enabled    bool
	httpClient *http.Client
	store      credential_service.Store
}

func NewProxy(cfg Config, store credential_service.Store) *Proxy {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Proxy{
		baseURL:    strings.TrimRight(baseURL, "/") + apiPrefix,
		enabled:    cfg.Enabled,
		httpClient: httpClient,
		store:      store,
	}
}

// Load builds the proxy from the environment.
func Load(store credential_service.Store) *Proxy {
	pterm.DefaultLogger.Info("Loading WhatsApp bot integration...")

	proxy := NewProxy(Config{
		BaseURL: env.BotURL,
		Enabled: env.BotEnabled,
		Timeout: env.BotTimeout,
	}, store)

	pterm.DefaultLogger.Info("WhatsApp bot integration loaded")
	return proxy
}

func (p *Proxy) Enabled() bool {
	return p.enabled
}
