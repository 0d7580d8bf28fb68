package whatsapp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pterm/pterm"
)

// GetLawyerClients lists the lawyer's clients, empty on any failure.
func (p *Proxy) GetLawyerClients(ctx context.Context, lawyer string) []LawyerClient {
	apiKey, ok := p.apiKey(ctx, lawyer, "get lawyer clients")
	if !ok {
		return []LawyerClient{}
	}

	var resp clientsResponse
	if err := p.do(ctx, apiKey, http.MethodGet, "/clients", nil, nil, &resp); err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Failed to get lawyer clients: %s", err),
		)
		return []LawyerClient{}
	}

	if resp.Clients == nil {
		return []LawyerClient{}
	}
	return resp.Clients
}

// AddClient creates (or reuses) a client on the bot and links it to the lawyer.
func (p *Proxy) AddClient(ctx context.Context, lawyer string, client NewClient) AddClientResult {
	apiKey, ok := p.apiKey(ctx, lawyer, "add client")
	if !ok {
		return AddClientResult{Success: false}
	}

	var resp addClientResponse
	err := p.do(ctx, apiKey, http.MethodPost, "/clients", nil, addClientRequest{
		Name:        client.Name,
		PhoneNumber: client.PhoneNumber,
		Email:       client.Email,
	}, &resp)
	if err != nil {
		pterm.DefaultLogger.Error(
			fmt.Sprintf("Failed to add client: %s", err),
		)
		return AddClientResult{Success: false}
	}

	return AddClientResult{Success: true, ClientID: resp.ClientID}
}
