package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/allmart/backoffice/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func sampleOrder() model.Order {
	return model.Order{
		ID:        "ord-hook",
		CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Customer:  model.Customer{FirstName: "Ana", LastName: "Prueba", Email: "ana@ejemplo.com"},
		Items: []model.OrderItem{
			{ProductName: "Molinillo", Quantity: 2, UnitPrice: 24990},
		},
		Total:  49980,
		Status: model.OrderStatusPending,
	}
}

func TestNewWebhookValidatesURL(t *testing.T) {
	if _, err := NewWebhook("://bad", testLogger()); err == nil {
		t.Fatal("expected error for malformed url")
	}
	if _, err := NewWebhook("/relative/path", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
	if _, err := NewWebhook("https://hooks.example.com/orders", testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWebhookSendPayload(t *testing.T) {
	var got orderPayload
	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	hook, err := NewWebhook(server.URL, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := hook.Send(context.Background(), sampleOrder()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if contentType != "application/json" {
		t.Fatalf("unexpected content type %q", contentType)
	}
	if got.ID != "ord-hook" || got.Status != "pendiente" || got.Total != 49980 {
		t.Fatalf("unexpected payload %+v", got)
	}
	if got.Customer.Email != "ana@ejemplo.com" {
		t.Fatalf("unexpected customer %+v", got.Customer)
	}
	if len(got.Items) != 1 || got.Items[0].ProductName != "Molinillo" || got.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", got.Items)
	}
}

func TestWebhookSendTooManyRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	hook, err := NewWebhook(server.URL, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sendErr := hook.Send(context.Background(), sampleOrder())
	var tooMany TooManyRequestsError
	if !errors.As(sendErr, &tooMany) {
		t.Fatalf("expected rate limit error, got %v", sendErr)
	}
	if tooMany.RetryAfter != 7*time.Second {
		t.Fatalf("unexpected retry after %v", tooMany.RetryAfter)
	}
}

func TestWebhookSendServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "kaput", http.StatusInternalServerError)
	}))
	defer server.Close()

	hook, err := NewWebhook(server.URL, testLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := hook.Send(context.Background(), sampleOrder()); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := parseRetryAfter(""); got != 5*time.Second {
		t.Fatalf("empty header: got %v", got)
	}
	if got := parseRetryAfter("12"); got != 12*time.Second {
		t.Fatalf("seconds header: got %v", got)
	}
	if got := parseRetryAfter("not-a-number"); got != 5*time.Second {
		t.Fatalf("garbage header: got %v", got)
	}
	httpDate := time.Now().Add(30 * time.Second).UTC().Format(http.TimeFormat)
	if got := parseRetryAfter(httpDate); got <= 0 || got > 30*time.Second {
		t.Fatalf("http date header: got %v", got)
	}
}
