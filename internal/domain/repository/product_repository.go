package repository

import "github.com/tu-usuario/inventrack-api/internal/domain/entity"

// ProductRepository define el puerto para productos y su stock.
// GetForUpdate y AdjustStock se usan dentro de transacciones para garantizar
// que la verificación de suficiencia y la mutación de stock sean atómicas.
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByUserAndID obtiene el producto del usuario; nil si no existe.
	GetByUserAndID(userID, id string) (*entity.Product, error)
	ListByUser(userID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(userID, id string) error
	// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE); nil si no existe.
	GetForUpdate(id string) (*entity.Product, error)
	// AdjustStock suma delta (negativo para ventas) a quantity_in_stock y
	// devuelve la fila actualizada; nil si el producto no existe.
	AdjustStock(id string, delta int) (*entity.Product, error)
}
