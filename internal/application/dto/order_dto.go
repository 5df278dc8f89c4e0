package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
)

// PlaceOrderRequest cuerpo de POST /orders. Exactamente uno de customer_id/supplier_id,
// consistente con type ("Sales" ⇒ customer, "Purchase" ⇒ supplier).
// total_amount y los campos snapshot de la contraparte los aporta el caller y
// se persisten tal cual (frontera de confianza documentada).
type PlaceOrderRequest struct {
	CustomerID  *string            `json:"customer_id"`
	SupplierID  *string            `json:"supplier_id"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	Status      string             `json:"status"`
	Name        string             `json:"name"`
	Type        string             `json:"type"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phone_number"`
	Address     string             `json:"address"`
	Products    []OrderLineRequest `json:"products"`
}

// OrderLineRequest una línea de producto dentro del request de orden.
// name/sku/price son snapshot del producto al momento de ordenar.
type OrderLineRequest struct {
	ID       string          `json:"id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
}

// UpdateOrderStatusRequest cuerpo de PUT /orders/:id.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse cabecera de orden (todas las columnas).
type OrderResponse struct {
	ID          string          `json:"id"`
	OrderCode   int64           `json:"order_code"`
	UserID      string          `json:"user_id"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	CustomerID  *string         `json:"customer_id"`
	SupplierID  *string         `json:"supplier_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	Address     string          `json:"address"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderItemResponse línea de orden (todas las columnas).
type OrderItemResponse struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	UserID      string          `json:"user_id"`
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// FromOrder mapea la entidad a la respuesta HTTP.
func FromOrder(o *entity.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		OrderCode:   o.Code,
		UserID:      o.UserID,
		Type:        o.Type,
		Status:      o.Status,
		CustomerID:  o.CustomerID,
		SupplierID:  o.SupplierID,
		Name:        o.Name,
		Email:       o.Email,
		PhoneNumber: o.PhoneNumber,
		Address:     o.Address,
		TotalAmount: o.TotalAmount,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// FromOrderItem mapea la línea a la respuesta HTTP.
func FromOrderItem(it *entity.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ID:          it.ID,
		OrderID:     it.OrderID,
		UserID:      it.UserID,
		ProductID:   it.ProductID,
		Name:        it.Name,
		SKU:         it.SKU,
		Quantity:    it.Quantity,
		Price:       it.Price,
		TotalAmount: it.TotalAmount,
		CreatedAt:   it.CreatedAt,
	}
}
