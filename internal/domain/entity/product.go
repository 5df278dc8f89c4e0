package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. El stock vive en la misma fila
// (QuantityInStock); LowStock es el umbral por debajo o igual al cual se genera
// una alerta "Low Stock" en la actividad reciente.
type Product struct {
	ID              string
	UserID          string
	CategoryID      *string
	Name            string
	Description     string
	SKU             string // único por usuario
	Price           decimal.Decimal
	QuantityInStock int // nunca negativo; el core lo garantiza para ventas
	LowStock        int
	ImageURL        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BelowThreshold indica si el stock actual está en o por debajo del umbral de alerta.
func (p *Product) BelowThreshold() bool {
	return p.QuantityInStock <= p.LowStock
}
