package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
)

// CreateProductRequest cuerpo de POST /products.
type CreateProductRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	SKU             string          `json:"sku"`
	Price           decimal.Decimal `json:"price"`
	QuantityInStock int             `json:"quantity_in_stock"`
	LowStock        int             `json:"low_stock"`
	CategoryID      *string         `json:"category_id"`
	ImageURL        string          `json:"image_url"`
}

// UpdateProductRequest cuerpo de PUT /products/:id. Mismos campos que la creación.
type UpdateProductRequest = CreateProductRequest

// ProductResponse producto con todas las columnas.
type ProductResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	CategoryID      *string         `json:"category_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	SKU             string          `json:"sku"`
	Price           decimal.Decimal `json:"price"`
	QuantityInStock int             `json:"quantity_in_stock"`
	LowStock        int             `json:"low_stock"`
	ImageURL        string          `json:"image_url"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// FromProduct mapea la entidad a la respuesta HTTP.
func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:              p.ID,
		UserID:          p.UserID,
		CategoryID:      p.CategoryID,
		Name:            p.Name,
		Description:     p.Description,
		SKU:             p.SKU,
		Price:           p.Price,
		QuantityInStock: p.QuantityInStock,
		LowStock:        p.LowStock,
		ImageURL:        p.ImageURL,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
