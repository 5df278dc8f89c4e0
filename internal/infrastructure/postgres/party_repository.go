package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/inventrack-api/internal/domain"
	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
	"github.com/tu-usuario/inventrack-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)
var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un cliente nuevo.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, user_id, name, email, phone_number, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.UserID, customer.Name, customer.Email,
		customer.PhoneNumber, customer.Address, customer.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByUserAndID obtiene un cliente del usuario con su total de órdenes
// de venta asociadas; nil si no existe.
func (r *CustomerRepo) GetByUserAndID(userID, id string) (*entity.Customer, error) {
	query := `
		SELECT c.id, c.user_id, c.name, c.email, c.phone_number, c.address, c.created_at,
		       (SELECT count(*) FROM orders o
		        WHERE o.user_id = c.user_id AND o.customer_id = c.id) AS total_orders
		FROM customers c WHERE c.user_id = $1 AND c.id = $2`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Email, &c.PhoneNumber, &c.Address, &c.CreatedAt, &c.TotalOrders,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ListByUser lista los clientes del usuario.
func (r *CustomerRepo) ListByUser(userID string) ([]*entity.Customer, error) {
	query := `
		SELECT id, user_id, name, email, phone_number, address, created_at
		FROM customers WHERE user_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.PhoneNumber, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cliente del usuario.
func (r *CustomerRepo) Delete(userID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM customers WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// SupplierRepo implementación de SupplierRepository (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor nuevo.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, user_id, name, email, phone_number, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.UserID, supplier.Name, supplier.Email,
		supplier.PhoneNumber, supplier.Address, supplier.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByUserAndID obtiene un proveedor del usuario con su total de órdenes
// de compra asociadas; nil si no existe.
func (r *SupplierRepo) GetByUserAndID(userID, id string) (*entity.Supplier, error) {
	query := `
		SELECT s.id, s.user_id, s.name, s.email, s.phone_number, s.address, s.created_at,
		       (SELECT count(*) FROM orders o
		        WHERE o.user_id = s.user_id AND o.supplier_id = s.id) AS total_orders
		FROM suppliers s WHERE s.user_id = $1 AND s.id = $2`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, userID, id).Scan(
		&s.ID, &s.UserID, &s.Name, &s.Email, &s.PhoneNumber, &s.Address, &s.CreatedAt, &s.TotalOrders,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// ListByUser lista los proveedores del usuario.
func (r *SupplierRepo) ListByUser(userID string) ([]*entity.Supplier, error) {
	query := `
		SELECT id, user_id, name, email, phone_number, address, created_at
		FROM suppliers WHERE user_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Email, &s.PhoneNumber, &s.Address, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un proveedor del usuario.
func (r *SupplierRepo) Delete(userID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM suppliers WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
