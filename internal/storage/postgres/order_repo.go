package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/allmart/backoffice/internal/domain/errors"
	"github.com/allmart/backoffice/internal/domain/model"
)

const orderColumns = `id, created_at, first_name, last_name, email, total, status, payment_status, paid_at, notes, version, notified_at`

type orderRepository struct {
	storage *Storage
}

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertOrder = `INSERT INTO orders (id, created_at, first_name, last_name, email, total, status, payment_status, paid_at, notes, version)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
		var payment *string
		if order.PaymentStatus != "" {
			value := string(order.PaymentStatus)
			payment = &value
		}
		_, err := tx.Exec(ctx, insertOrder,
			order.ID, order.CreatedAt,
			order.Customer.FirstName, order.Customer.LastName, order.Customer.Email,
			order.Total, order.Status, payment, order.PaidAt, order.Notes, order.Version)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, position, product_id, product_name, product_image, quantity, unit_price)
                            VALUES ($1, $2, $3, $4, $5, $6, $7)`
		for i, item := range order.Items {
			if _, err := tx.Exec(ctx, insertItem,
				order.ID, i, item.ProductID, item.ProductName, item.ProductImage, item.Quantity, item.UnitPrice); err != nil {
				return err
			}
		}

		const insertHistory = `INSERT INTO order_status_history (order_id, status, changed_at, note) VALUES ($1, $2, $3, $4)`
		for _, entry := range order.StatusHistory {
			if _, err := tx.Exec(ctx, insertHistory, order.ID, entry.Status, entry.ChangedAt, entry.Note); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return getOrder(ctx, r.storage.pool, id)
}

func getOrder(ctx context.Context, q querier, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrderRow(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	if err := loadItems(ctx, q, []*model.Order{order}); err != nil {
		return nil, err
	}
	if err := loadHistory(ctx, q, []*model.Order{order}); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []*model.Order
	for rows.Next() {
		order, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		refs = append(refs, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := loadItems(ctx, r.storage.pool, refs); err != nil {
		return nil, err
	}
	if err := loadHistory(ctx, r.storage.pool, refs); err != nil {
		return nil, err
	}

	result := make([]model.Order, 0, len(refs))
	for _, ref := range refs {
		result = append(result, *ref)
	}
	return result, nil
}

func (r *orderRepository) ChangeStatus(ctx context.Context, id string, status model.OrderStatus, note string, at time.Time) (*model.Order, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const update = `UPDATE orders SET status=$1, version=version+1 WHERE id=$2`
		tag, err := tx.Exec(ctx, update, status, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}

		const insertHistory = `INSERT INTO order_status_history (order_id, status, changed_at, note) VALUES ($1, $2, $3, $4)`
		_, err = tx.Exec(ctx, insertHistory, id, status, at, note)
		return err
	})
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *orderRepository) Patch(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	set := []string{"version = version + 1"}
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if patch.Customer != nil {
		set = append(set,
			"first_name = "+arg(patch.Customer.FirstName),
			"last_name = "+arg(patch.Customer.LastName),
			"email = "+arg(patch.Customer.Email))
	}
	if patch.Notes != nil {
		set = append(set, "notes = "+arg(*patch.Notes))
	}
	if patch.Total != nil {
		set = append(set, "total = "+arg(*patch.Total))
	}

	query := "UPDATE orders SET " + strings.Join(set, ", ") + " WHERE id = " + arg(id)
	if patch.ExpectedVersion != nil {
		query += " AND version = " + arg(*patch.ExpectedVersion)
	}

	tag, err := r.storage.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		if patch.ExpectedVersion != nil {
			if _, err := r.GetByID(ctx, id); err == nil {
				return nil, domainErrors.ErrVersionConflict
			}
		}
		return nil, domainErrors.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	// items and history rows go with the order via ON DELETE CASCADE
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) MarkPaid(ctx context.Context, id string, at time.Time) (*model.Order, error) {
	const update = `UPDATE orders SET payment_status=$1, paid_at=$2, version=version+1 WHERE id=$3`
	tag, err := r.storage.pool.Exec(ctx, update, model.PaymentStatusPaid, at, id)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *orderRepository) SelectUnnotified(ctx context.Context, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE notified_at IS NULL ORDER BY created_at LIMIT $1`
	rows, err := r.storage.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []*model.Order
	for rows.Next() {
		order, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		refs = append(refs, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := loadItems(ctx, r.storage.pool, refs); err != nil {
		return nil, err
	}

	result := make([]model.Order, 0, len(refs))
	for _, ref := range refs {
		result = append(result, *ref)
	}
	return result, nil
}

func (r *orderRepository) MarkNotified(ctx context.Context, id string, at time.Time) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE orders SET notified_at=$1 WHERE id=$2`, at, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func scanOrderRow(row pgx.Row) (*model.Order, error) {
	var o model.Order
	var payment *string
	err := row.Scan(
		&o.ID, &o.CreatedAt,
		&o.Customer.FirstName, &o.Customer.LastName, &o.Customer.Email,
		&o.Total, &o.Status, &payment, &o.PaidAt, &o.Notes, &o.Version, &o.NotifiedAt)
	if err != nil {
		return nil, err
	}
	if payment != nil {
		o.PaymentStatus = model.PaymentStatus(*payment)
	}
	return &o, nil
}

func loadItems(ctx context.Context, q querier, orders []*model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[string]*model.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	const query = `SELECT order_id, product_id, product_name, product_image, quantity, unit_price
                   FROM order_items WHERE order_id = ANY($1) ORDER BY order_id, position`
	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var item model.OrderItem
		if err := rows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.ProductImage, &item.Quantity, &item.UnitPrice); err != nil {
			return err
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, item)
		}
	}
	return rows.Err()
}

func loadHistory(ctx context.Context, q querier, orders []*model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[string]*model.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	const query = `SELECT order_id, status, changed_at, note
                   FROM order_status_history WHERE order_id = ANY($1) ORDER BY order_id, changed_at, id`
	rows, err := q.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var entry model.StatusChange
		if err := rows.Scan(&orderID, &entry.Status, &entry.ChangedAt, &entry.Note); err != nil {
			return err
		}
		if o, ok := byID[orderID]; ok {
			o.StatusHistory = append(o.StatusHistory, entry)
		}
	}
	return rows.Err()
}
