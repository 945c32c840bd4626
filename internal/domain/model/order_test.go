package model

import (
	"strings"
	"testing"
)

func TestOrderStatusValid(t *testing.T) {
	for _, status := range OrderStatuses() {
		if !status.Valid() {
			t.Fatalf("status %q should be valid", status)
		}
	}
	for _, value := range []string{"", "pending", "PENDIENTE", "despachado"} {
		if OrderStatus(value).Valid() {
			t.Fatalf("status %q should be invalid", value)
		}
	}
}

func TestOrderActive(t *testing.T) {
	order := Order{Status: OrderStatusCancelled}
	if order.Active() {
		t.Fatal("cancelled order must not be active")
	}
	for _, status := range OrderStatuses() {
		if status == OrderStatusCancelled {
			continue
		}
		order.Status = status
		if !order.Active() {
			t.Fatalf("order with status %q must be active", status)
		}
	}
}

func TestOrderPaid(t *testing.T) {
	order := Order{}
	if order.Paid() {
		t.Fatal("order without payment status must not be paid")
	}
	order.PaymentStatus = PaymentStatusUnpaid
	if order.Paid() {
		t.Fatal("unpaid order must not be paid")
	}
	order.PaymentStatus = PaymentStatusPaid
	if !order.Paid() {
		t.Fatal("paid order must be paid")
	}
}

func TestNewIDPrefixes(t *testing.T) {
	cases := map[string]func() string{
		"ord":  NewOrderID,
		"cat":  NewCategoryID,
		"prod": NewProductID,
		"var":  NewVariantGroupID,
	}
	for prefix, gen := range cases {
		id := gen()
		if !strings.HasPrefix(id, prefix+"-") {
			t.Fatalf("expected prefix %q, got %q", prefix, id)
		}
		if parts := strings.Split(id, "-"); len(parts) != 3 {
			t.Fatalf("expected three dash-separated segments, got %q", id)
		}
	}
	if NewOrderID() == NewOrderID() {
		t.Fatal("consecutive ids must differ")
	}
}
