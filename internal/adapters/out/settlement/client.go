// Package settlement is the outbound adapter for the settlement endpoint.
// It submits the full line item collection in one exchange and maps the
// outcome to the gateway's sentinel errors.
package settlement

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/ports"
)

// Client implements ports.SettlementGateway over HTTP.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a settlement client for the given endpoint URL.
// The timeout bounds the whole exchange; there is no retry.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// settleItem is the wire form of one submitted line item.
type settleItem struct {
	Key         string  `json:"key"`
	ProductID   string  `json:"productId"`
	Variant     string  `json:"variant"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	DisplayName string  `json:"displayName"`
}

type settleRequest struct {
	Cart     []settleItem `json:"cart"`
	Customer struct {
		Name string `json:"name"`
	} `json:"customer"`
}

type settleResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

// Settle submits the cart to the settlement endpoint.
// A response that is not parseable, or a transport failure, maps to
// ErrSettlementUnavailable. A parseable decline, whether a non-OK status or
// success=false, maps to ErrSettlementRejected.
func (c *Client) Settle(ctx context.Context, items []*cart.LineItem, customer ports.Customer) (string, error) {
	request := settleRequest{
		Cart: make([]settleItem, 0, len(items)),
	}
	request.Customer.Name = customer.Name

	for _, item := range items {
		request.Cart = append(request.Cart, settleItem{
			Key:         item.Key().String(),
			ProductID:   item.ProductID(),
			Variant:     item.Variant(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().Float64(),
			DisplayName: item.DisplayName(),
		})
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ports.ErrSettlementUnavailable, err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ports.ErrSettlementUnavailable, err)
	}
	httpRequest.Header.Set("Content-Type", "application/json")

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ports.ErrSettlementUnavailable, err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ports.ErrSettlementRejected, httpResponse.StatusCode)
	}

	var response settleResponse
	if err = json.NewDecoder(httpResponse.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("%w: %w", ports.ErrSettlementUnavailable, err)
	}

	if !response.Success {
		return "", ports.ErrSettlementRejected
	}

	return response.OrderID, nil
}
