package order

import (
	"context"

	"github.com/tu-usuario/inventrack-api/internal/domain"
	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
	"github.com/tu-usuario/inventrack-api/internal/domain/repository"
)

// QueryUseCase lecturas de órdenes y sus líneas (fuera de la transacción).
type QueryUseCase struct {
	orderRepo repository.OrderRepository
	itemRepo  repository.OrderItemRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(orderRepo repository.OrderRepository, itemRepo repository.OrderItemRepository) *QueryUseCase {
	return &QueryUseCase{orderRepo: orderRepo, itemRepo: itemRepo}
}

// Orders devuelve todas las órdenes del usuario.
func (uc *QueryUseCase) Orders(_ context.Context, userID string) ([]*entity.Order, error) {
	return uc.orderRepo.ListByUser(userID)
}

// Items devuelve las líneas de una orden del usuario, en orden de inserción.
// ErrNotFound si la orden no tiene líneas visibles para el usuario.
func (uc *QueryUseCase) Items(_ context.Context, userID, orderID string) ([]*entity.OrderItem, error) {
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.itemRepo.ListByOrder(userID, orderID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNotFound
	}
	return items, nil
}
