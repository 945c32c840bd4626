package test

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/allmart/backoffice/internal/domain/model"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}

// RandomEmail returns a unique-enough test email address.
func RandomEmail() string {
	return fmt.Sprintf("cliente%d@ejemplo.com", randomIntn(1_000_000))
}

// SampleOrder builds a one-item pending order created at the given time.
func SampleOrder(id string, createdAt time.Time) model.Order {
	return model.Order{
		ID:        id,
		CreatedAt: createdAt,
		Customer:  model.Customer{FirstName: "Ana", LastName: "Prueba", Email: RandomEmail()},
		Items: []model.OrderItem{
			{ProductID: "prod-1", ProductName: "Molinillo de Café Premium", Quantity: 1, UnitPrice: 24990},
		},
		Total:  24990,
		Status: model.OrderStatusPending,
		StatusHistory: []model.StatusChange{
			{Status: model.OrderStatusPending, ChangedAt: createdAt, Note: "order received"},
		},
		Version: 1,
	}
}
