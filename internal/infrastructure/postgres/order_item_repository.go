package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
	"github.com/tu-usuario/inventrack-api/internal/domain/repository"
)

var _ repository.OrderItemRepository = (*OrderItemRepo)(nil)

const orderItemColumns = `id, order_id, user_id, product_id, name, sku, quantity, price, total_amount, created_at`

// OrderItemRepo implementación de OrderItemRepository sobre PostgreSQL (usable con pool o tx).
type OrderItemRepo struct {
	q Querier
}

// NewOrderItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderItemRepository(q Querier) *OrderItemRepo {
	return &OrderItemRepo{q: q}
}

// Create inserta la línea y devuelve la fila creada vía RETURNING (nil si no retornó fila).
func (r *OrderItemRepo) Create(item *entity.OrderItem) (*entity.OrderItem, error) {
	query := `
		INSERT INTO order_items (id, order_id, user_id, product_id, name, sku, quantity, price, total_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + orderItemColumns
	row := r.q.QueryRow(context.Background(), query,
		item.ID, item.OrderID, item.UserID, item.ProductID, item.Name, item.SKU,
		item.Quantity, item.Price, item.TotalAmount, item.CreatedAt,
	)
	created, err := scanOrderItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("insert order item: %w", err)
	}
	return created, nil
}

// ListByOrder devuelve las líneas de una orden del usuario, en orden de inserción.
func (r *OrderItemRepo) ListByOrder(userID, orderID string) ([]*entity.OrderItem, error) {
	query := `SELECT ` + orderItemColumns + ` FROM order_items
		WHERE user_id = $1 AND order_id = $2 ORDER BY created_at, id`
	rows, err := r.q.Query(context.Background(), query, userID, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		it, err := scanOrderItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func scanOrderItem(row pgx.Row) (*entity.OrderItem, error) {
	var it entity.OrderItem
	err := row.Scan(
		&it.ID, &it.OrderID, &it.UserID, &it.ProductID, &it.Name, &it.SKU,
		&it.Quantity, &it.Price, &it.TotalAmount, &it.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
