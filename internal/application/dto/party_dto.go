package dto

import (
	"time"

	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
)

// CreatePartyRequest cuerpo de POST /customers y POST /suppliers.
type CreatePartyRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

// PartyResponse cliente o proveedor con todas las columnas. total_orders
// sólo se calcula en la consulta de detalle (GET por ID).
type PartyResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	TotalOrders int       `json:"total_orders"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromCustomer mapea la entidad a la respuesta HTTP.
func FromCustomer(c *entity.Customer) PartyResponse {
	return PartyResponse{
		ID: c.ID, UserID: c.UserID, Name: c.Name, Email: c.Email,
		PhoneNumber: c.PhoneNumber, Address: c.Address,
		TotalOrders: c.TotalOrders, CreatedAt: c.CreatedAt,
	}
}

// FromSupplier mapea la entidad a la respuesta HTTP.
func FromSupplier(s *entity.Supplier) PartyResponse {
	return PartyResponse{
		ID: s.ID, UserID: s.UserID, Name: s.Name, Email: s.Email,
		PhoneNumber: s.PhoneNumber, Address: s.Address,
		TotalOrders: s.TotalOrders, CreatedAt: s.CreatedAt,
	}
}

// CreateCategoryRequest cuerpo de POST /category.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryResponse categoría con todas las columnas.
type CategoryResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromCategory mapea la entidad a la respuesta HTTP.
func FromCategory(c *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID: c.ID, UserID: c.UserID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt,
	}
}
