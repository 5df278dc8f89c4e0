package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrOrderCreateFailed  = errors.New("la creación de la orden no retornó fila")
	ErrItemCreateFailed   = errors.New("la creación del ítem de orden no retornó fila")
)

// InsufficientStockError identifica el producto sin stock suficiente dentro de una orden de venta.
// errors.Is(err, ErrInsufficientStock) == true.
type InsufficientStockError struct {
	ProductID string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para el producto %s", e.ProductID)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// ItemCreateError identifica el producto cuyo ítem de orden no pudo insertarse.
// errors.Is(err, ErrItemCreateFailed) == true.
type ItemCreateError struct {
	ProductID string
}

func (e *ItemCreateError) Error() string {
	return fmt.Sprintf("no se pudo crear el ítem de orden para el producto %s", e.ProductID)
}

func (e *ItemCreateError) Is(target error) bool {
	return target == ErrItemCreateFailed
}
