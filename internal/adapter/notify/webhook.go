package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/allmart/backoffice/internal/domain/model"
)

// TooManyRequestsError signals the receiving end asked us to back off.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Sender announces a newly placed order to an external channel.
type Sender interface {
	Send(ctx context.Context, order model.Order) error
}

// Webhook implements Sender by POSTing an order summary as JSON. The store
// owner points it at whatever relay feeds their phone; the payload is
// structured data, message rendering happens on the receiving side.
type Webhook struct {
	endpoint   *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type orderPayload struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	Customer  customerInfo  `json:"customer"`
	Items     []itemPayload `json:"items"`
	Total     float64       `json:"total"`
	Status    string        `json:"status"`
}

type customerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type itemPayload struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// NewWebhook creates a webhook sender with default timeout.
func NewWebhook(endpoint string, logger *slog.Logger) (*Webhook, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse webhook url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("webhook url must be absolute")
	}
	return &Webhook{
		endpoint: parsed,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Send delivers the order summary. Non-2xx responses are errors; 429 carries
// the server-requested backoff.
func (w *Webhook) Send(ctx context.Context, order model.Order) error {
	payload := orderPayload{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Customer: customerInfo{
			FirstName: order.Customer.FirstName,
			LastName:  order.Customer.LastName,
			Email:     order.Customer.Email,
		},
		Total:  order.Total,
		Status: string(order.Status),
	}
	for _, item := range order.Items {
		payload.Items = append(payload.Items, itemPayload{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return TooManyRequestsError{RetryAfter: retryAfter}
	default:
		respBody, _ := io.ReadAll(resp.Body)
		w.logger.Error("webhook request failed",
			slog.Int("status", resp.StatusCode), slog.String("body", string(respBody)))
		return fmt.Errorf("webhook error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
