package entity

import "time"

// Customer representa un cliente (contraparte de órdenes de venta).
// TotalOrders se calcula sólo en la consulta de detalle; en listados queda en cero.
type Customer struct {
	ID          string
	UserID      string
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	TotalOrders int
	CreatedAt   time.Time
}

// Supplier representa un proveedor (contraparte de órdenes de compra).
// TotalOrders se calcula sólo en la consulta de detalle; en listados queda en cero.
type Supplier struct {
	ID          string
	UserID      string
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	TotalOrders int
	CreatedAt   time.Time
}
