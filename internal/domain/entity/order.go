package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de orden: venta (contraparte cliente) o compra (contraparte proveedor).
const (
	OrderTypeSales    = "Sales"
	OrderTypePurchase = "Purchase"
)

// Estados de orden. El modelo de datos no impone una máquina de estados:
// el estado se sobrescribe libremente (la UI asume Pending → terminal, el core no lo exige).
const (
	OrderStatusPending   = "Pending"
	OrderStatusCompleted = "Completed"
	OrderStatusCancelled = "Cancelled"
)

// ValidOrderStatus indica si s es un estado de orden conocido.
func ValidOrderStatus(s string) bool {
	return s == OrderStatusPending || s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Order representa la cabecera de una orden de venta o compra.
// Code es el consecutivo legible por humanos (se muestra como #<code>); ID es el UUID interno.
// Exactamente uno de CustomerID/SupplierID está presente, consistente con Type
// (Sales ⇒ cliente, Purchase ⇒ proveedor). Los campos Name/Email/PhoneNumber/Address
// son snapshot de la contraparte al momento de crear la orden.
type Order struct {
	ID          string
	Code        int64
	UserID      string
	Type        string
	Status      string
	CustomerID  *string
	SupplierID  *string
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem es una línea de producto dentro de una orden. Inmutable después de creada.
// Name/SKU/Price son snapshot del producto al momento de la orden, no referencias vivas.
// TotalAmount = Quantity × Price, calculado por el servidor.
type OrderItem struct {
	ID          string
	OrderID     string
	UserID      string
	ProductID   string
	Name        string
	SKU         string
	Quantity    int
	Price       decimal.Decimal
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
}
