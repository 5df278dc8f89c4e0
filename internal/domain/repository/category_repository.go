package repository

import "github.com/tu-usuario/inventrack-api/internal/domain/entity"

// CategoryRepository define el puerto para categorías de producto.
type CategoryRepository interface {
	Create(category *entity.Category) error
	ListByUser(userID string) ([]*entity.Category, error)
	Delete(userID, id string) error
}
