package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pterm/pterm"
)

// Bot error bodies are only logged, keep them short.
const maxErrorBody = 4 * 1024

// apiKey resolves the lawyer's key. It reports false, after logging why, when
// the integration is disabled or the lawyer has no key.
func (p *Proxy) apiKey(ctx context.Context, lawyer, operation string) (string, bool) {
	if !p.enabled {
		pterm.DefaultLogger.Warn(
			fmt.Sprintf("WhatsApp integration is disabled, skipping %s", operation),
		)
		return "", false
	}

	key, ok, err := p.store.Lookup(ctx, lawyer)
	if err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Unable to look up API key for lawyer %s: %s", lawyer, err),
		)
		return "", false
	}
	if !ok {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("No API key found for lawyer: %s", lawyer),
		)
		return "", false
	}
	return key, true
}

// do sends one request to the bot and decodes a 2xx body into out.
func (p *Proxy) do(
	ctx context.Context,
	apiKey string,
	method string,
	path string,
	query url.Values,
	body any,
	out any,
) error {
	target := p.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// StatusError is returned by do for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bot API error (status %d): %s", e.StatusCode, e.Body)
}
