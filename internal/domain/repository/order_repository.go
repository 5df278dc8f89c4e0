package repository

import "github.com/tu-usuario/inventrack-api/internal/domain/entity"

// OrderRepository define el puerto para cabeceras de orden.
// Create se usa dentro de la transacción de colocación de orden.
type OrderRepository interface {
	// Create inserta la cabecera y devuelve la fila creada (con Code generado por secuencia).
	// Devuelve nil si el INSERT no retornó fila.
	Create(order *entity.Order) (*entity.Order, error)
	// GetByUserAndID obtiene la orden del usuario; nil si no existe.
	GetByUserAndID(userID, id string) (*entity.Order, error)
	// ListByUser lista todas las órdenes del usuario.
	ListByUser(userID string) ([]*entity.Order, error)
	// UpdateStatus sobrescribe el estado y devuelve la fila actualizada; nil si no existe.
	UpdateStatus(userID, id, status string) (*entity.Order, error)
}

// OrderItemRepository define el puerto para líneas de orden.
type OrderItemRepository interface {
	// Create inserta la línea y devuelve la fila creada; nil si el INSERT no retornó fila.
	Create(item *entity.OrderItem) (*entity.OrderItem, error)
	// ListByOrder devuelve las líneas de una orden del usuario, en orden de inserción.
	ListByOrder(userID, orderID string) ([]*entity.OrderItem, error)
}
