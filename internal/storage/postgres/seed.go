package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/allmart/backoffice/internal/domain/model"
)

// SeedDemoData inserts the canned demo dataset when the database holds no
// data yet. An empty store is treated as "no data yet", never as an error,
// so a fresh deployment always has something to show.
func (s *Storage) SeedDemoData(ctx context.Context) error {
	if err := s.seedCatalog(ctx); err != nil {
		return err
	}
	return s.seedOrders(ctx)
}

func (s *Storage) seedOrders(ctx context.Context) error {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	orders := demoOrders(now)
	repo := s.Orders()
	for i := range orders {
		if err := repo.Create(ctx, &orders[i]); err != nil {
			return err
		}
	}
	s.logger.Info("seeded demo orders", slog.Int("count", len(orders)))
	return nil
}

func (s *Storage) seedCatalog(ctx context.Context) error {
	var count int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := demoCategories()
	catRepo := s.Categories()
	for i := range categories {
		if err := catRepo.Create(ctx, &categories[i]); err != nil {
			return err
		}
	}

	products := demoProducts(categories)
	prodRepo := s.Products()
	for i := range products {
		if err := prodRepo.Create(ctx, &products[i]); err != nil {
			return err
		}
	}
	s.logger.Info("seeded demo catalog",
		slog.Int("categories", len(categories)), slog.Int("products", len(products)))
	return nil
}

func demoCategories() []model.Category {
	return []model.Category{
		{ID: "cat-1", Name: "Cocina", Slug: "cocina", Description: "Todo para tu cocina"},
		{ID: "cat-2", Name: "Baño", Slug: "bao", Description: "Accesorios y textiles de baño"},
		{ID: "cat-3", Name: "Dormitorio", Slug: "dormitorio", Description: "Ropa de cama y deco"},
		{ID: "cat-4", Name: "Living", Slug: "living", Description: "Ambientá tu living"},
	}
}

func demoProducts(categories []model.Category) []model.Product {
	cocina := categories[0]
	bano := categories[1]
	return []model.Product{
		{
			ID: "prod-1", Name: "Batería de Cocina Granito 5 Piezas", Slug: "batera-de-cocina-granito-5-piezas",
			ShortDescription: "Set antiadherente de granito", Price: 89990,
			Category: cocina, InStock: true, SKU: "ALM-COC-001", Stock: 10,
			Variants: []model.VariantGroup{{ID: "var-1", Name: "Color", Values: []string{"Rojo", "Negro"}}},
		},
		{
			ID: "prod-2", Name: "Molinillo de Café Premium", Slug: "molinillo-de-caf-premium",
			ShortDescription: "Molido uniforme, cuerpo de acero", Price: 24990,
			Category: cocina, InStock: true, SKU: "ALM-COC-002", Stock: 10,
		},
		{
			ID: "prod-3", Name: "Set Cuchillos Design con Soporte", Slug: "set-cuchillos-design-con-soporte",
			ShortDescription: "Seis piezas con taco de madera", Price: 48990,
			Category: cocina, InStock: true, SKU: "ALM-COC-003", Stock: 10,
		},
		{
			ID: "prod-4", Name: "Set Completo de Baño", Slug: "set-completo-de-bao",
			ShortDescription: "Toallas y accesorios coordinados", Price: 34990,
			Category: bano, InStock: true, SKU: "ALM-BAN-001", Stock: 10,
		},
	}
}

func demoOrders(now time.Time) []model.Order {
	seeded := func(daysAgo int, status model.OrderStatus) (time.Time, []model.StatusChange) {
		at := now.AddDate(0, 0, -daysAgo)
		return at, []model.StatusChange{{Status: status, ChangedAt: at, Note: "order received"}}
	}

	var orders []model.Order

	createdAt, history := seeded(1, model.OrderStatusPending)
	orders = append(orders, model.Order{
		ID: "ord-001", CreatedAt: createdAt, Version: 1, NotifiedAt: &createdAt,
		Customer: model.Customer{FirstName: "Lucía", LastName: "Fernández", Email: "lucia@ejemplo.com"},
		Items: []model.OrderItem{
			{ProductID: "prod-1", ProductName: "Batería de Cocina Granito 5 Piezas", Quantity: 1, UnitPrice: 89990},
			{ProductID: "prod-4", ProductName: "Set Completo de Baño", Quantity: 2, UnitPrice: 34990},
		},
		Total: 159970, Status: model.OrderStatusPending, StatusHistory: history,
	})

	createdAt, history = seeded(3, model.OrderStatusConfirmed)
	orders = append(orders, model.Order{
		ID: "ord-002", CreatedAt: createdAt, Version: 1, NotifiedAt: &createdAt,
		Customer: model.Customer{FirstName: "Martín", LastName: "Gómez", Email: "martin@ejemplo.com"},
		Items: []model.OrderItem{
			{ProductID: "prod-2", ProductName: "Molinillo de Café Premium", Quantity: 1, UnitPrice: 24990},
		},
		Total: 24990, Status: model.OrderStatusConfirmed, StatusHistory: history,
	})

	createdAt, history = seeded(5, model.OrderStatusShipped)
	orders = append(orders, model.Order{
		ID: "ord-003", CreatedAt: createdAt, Version: 1, NotifiedAt: &createdAt,
		Customer: model.Customer{FirstName: "Valentina", LastName: "Ruiz", Email: "vale@ejemplo.com"},
		Items: []model.OrderItem{
			{ProductID: "prod-3", ProductName: "Set Cuchillos Design con Soporte", Quantity: 1, UnitPrice: 48990},
		},
		Total: 48990, Status: model.OrderStatusShipped, StatusHistory: history,
	})

	createdAt, history = seeded(10, model.OrderStatusDelivered)
	orders = append(orders, model.Order{
		ID: "ord-004", CreatedAt: createdAt, Version: 1, NotifiedAt: &createdAt,
		Customer: model.Customer{FirstName: "Carlos", LastName: "Medina", Email: "carlos@ejemplo.com"},
		Items: []model.OrderItem{
			{ProductID: "prod-1", ProductName: "Batería de Cocina Granito 5 Piezas", Quantity: 2, UnitPrice: 89990},
		},
		Total: 179980, Status: model.OrderStatusDelivered, StatusHistory: history,
	})

	createdAt, history = seeded(15, model.OrderStatusCancelled)
	orders = append(orders, model.Order{
		ID: "ord-005", CreatedAt: createdAt, Version: 1, NotifiedAt: &createdAt,
		Customer: model.Customer{FirstName: "Sofía", LastName: "Herrera", Email: "sofia@ejemplo.com"},
		Items: []model.OrderItem{
			{ProductID: "prod-2", ProductName: "Molinillo de Café Premium", Quantity: 1, UnitPrice: 24990},
			{ProductID: "prod-3", ProductName: "Set Cuchillos Design con Soporte", Quantity: 1, UnitPrice: 48990},
		},
		Total: 73980, Status: model.OrderStatusCancelled,
		Notes: "Cliente solicitó cancelar por demora.", StatusHistory: history,
	})

	return orders
}
