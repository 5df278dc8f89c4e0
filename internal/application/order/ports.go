package order

import (
	"context"

	"github.com/tu-usuario/inventrack-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para la colocación de órdenes: cualquier
// error dentro de fn hace rollback completo (cabecera, líneas y stock).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		itemRepo repository.OrderItemRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// CacheInvalidator invalida entradas cacheadas de productos después de mutar stock
// fuera del repositorio decorado (la tx usa repositorios directos).
type CacheInvalidator interface {
	InvalidateProducts(ctx context.Context, userID string, productIDs ...string)
}
