package whatsapp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pterm/pterm"
)

// GetProfile fetches the lawyer account the API key belongs to.
func (p *Proxy) GetProfile(ctx context.Context, lawyer string) ProfileResult {
	apiKey, ok := p.apiKey(ctx, lawyer, "get profile")
	if !ok {
		return ProfileResult{Success: false}
	}

	var resp profileResponse
	if err := p.do(ctx, apiKey, http.MethodGet, "/lawyers/me", nil, nil, &resp); err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Failed to get lawyer profile: %s", err),
		)
		return ProfileResult{Success: false}
	}

	return ProfileResult{Success: resp.Lawyer != nil, Lawyer: resp.Lawyer}
}
