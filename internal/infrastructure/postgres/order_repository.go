package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
	"github.com/tu-usuario/inventrack-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, order_code, user_id, type, status, customer_id, supplier_id,
		name, email, phone_number, address, total_amount, created_at, updated_at`

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la cabecera. order_code sale de la secuencia order_code_seq;
// la fila insertada se devuelve vía RETURNING (nil si no retornó fila).
func (r *OrderRepo) Create(order *entity.Order) (*entity.Order, error) {
	query := `
		INSERT INTO orders (id, order_code, user_id, type, status, customer_id, supplier_id,
			name, email, phone_number, address, total_amount, created_at, updated_at)
		VALUES ($1, nextval('order_code_seq'), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + orderColumns
	row := r.q.QueryRow(context.Background(), query,
		order.ID, order.UserID, order.Type, order.Status, order.CustomerID, order.SupplierID,
		order.Name, order.Email, order.PhoneNumber, order.Address, order.TotalAmount,
		order.CreatedAt, order.UpdatedAt,
	)
	created, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return created, nil
}

// GetByUserAndID obtiene la orden del usuario; nil si no existe.
func (r *OrderRepo) GetByUserAndID(userID, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 AND id = $2`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, userID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// ListByUser lista las órdenes del usuario, más reciente primero.
func (r *OrderRepo) ListByUser(userID string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// UpdateStatus sobrescribe el estado y devuelve la fila actualizada; nil si no existe.
func (r *OrderRepo) UpdateStatus(userID, id, status string) (*entity.Order, error) {
	query := `
		UPDATE orders SET status = $3, updated_at = now()
		WHERE user_id = $1 AND id = $2
		RETURNING ` + orderColumns
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, userID, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update order status: %w", err)
	}
	return o, nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.Code, &o.UserID, &o.Type, &o.Status, &o.CustomerID, &o.SupplierID,
		&o.Name, &o.Email, &o.PhoneNumber, &o.Address, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
