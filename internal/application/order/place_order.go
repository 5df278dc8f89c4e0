// Package order contiene el núcleo transaccional del sistema: la colocación de
// órdenes (cabecera + líneas + mutación de stock en una unidad atómica) y el
// cambio de estado de órdenes.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventrack-api/internal/application/activity"
	"github.com/tu-usuario/inventrack-api/internal/application/dto"
	"github.com/tu-usuario/inventrack-api/internal/domain"
	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
	"github.com/tu-usuario/inventrack-api/internal/domain/repository"
)

// PlaceOrderUseCase coordina la colocación de una orden: inserta la cabecera,
// las líneas en el orden recibido y la mutación de stock dentro de una sola
// transacción (Commit o Rollback total, nunca estado parcial). Las ventas
// verifican suficiencia de stock bajo bloqueo de fila; las compras incrementan
// sin verificación. La actividad ("New Order", "Low Stock") se escribe después
// del Commit, best-effort.
type PlaceOrderUseCase struct {
	txRunner TxRunner
	recorder *activity.Recorder
	cache    CacheInvalidator // opcional; nil = sin caché
}

// NewPlaceOrderUseCase construye el caso de uso. cache puede ser nil.
func NewPlaceOrderUseCase(txRunner TxRunner, recorder *activity.Recorder, cache CacheInvalidator) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{txRunner: txRunner, recorder: recorder, cache: cache}
}

// PlaceOrderInput entrada validada para colocar una orden.
// TotalAmount y los campos snapshot vienen del caller y se persisten tal cual;
// el total por línea sí se calcula en el servidor (quantity × price).
type PlaceOrderInput struct {
	UserID      string
	Type        string
	Status      string
	CustomerID  *string
	SupplierID  *string
	Name        string
	Email       string
	PhoneNumber string
	Address     string
	TotalAmount decimal.Decimal
	Products    []OrderLine
}

// OrderLine una línea de producto del request.
type OrderLine struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
	Name      string
	SKU       string
}

// PlaceOrderFromRequest adapta el request HTTP al caso de uso PlaceOrder.
func (uc *PlaceOrderUseCase) PlaceOrderFromRequest(ctx context.Context, userID string, in dto.PlaceOrderRequest) (*entity.Order, error) {
	lines := make([]OrderLine, 0, len(in.Products))
	for _, p := range in.Products {
		lines = append(lines, OrderLine{
			ProductID: p.ID,
			Quantity:  p.Quantity,
			Price:     p.Price,
			Name:      p.Name,
			SKU:       p.SKU,
		})
	}
	return uc.PlaceOrder(ctx, PlaceOrderInput{
		UserID:      userID,
		Type:        in.Type,
		Status:      in.Status,
		CustomerID:  in.CustomerID,
		SupplierID:  in.SupplierID,
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		TotalAmount: in.TotalAmount,
		Products:    lines,
	})
}

// PlaceOrder valida la entrada, ejecuta la transacción y escribe la actividad post-commit.
// Errores: domain.ErrInvalidInput (antes de cualquier escritura),
// domain.InsufficientStockError / domain.ItemCreateError / domain.ErrOrderCreateFailed
// (dentro de la tx, con rollback completo).
func (uc *PlaceOrderUseCase) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*entity.Order, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	status := input.Status
	if status == "" {
		status = entity.OrderStatusPending
	}

	now := time.Now()
	var created *entity.Order
	var lowStock []*entity.Product // alertas en cola; se escriben después del Commit
	touched := make([]string, 0, len(input.Products))

	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		itemRepo repository.OrderItemRepository,
		productRepo repository.ProductRepository,
	) error {
		header := &entity.Order{
			ID:          uuid.New().String(),
			UserID:      input.UserID,
			Type:        input.Type,
			Status:      status,
			CustomerID:  input.CustomerID,
			SupplierID:  input.SupplierID,
			Name:        input.Name,
			Email:       input.Email,
			PhoneNumber: input.PhoneNumber,
			Address:     input.Address,
			TotalAmount: input.TotalAmount,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		var err error
		created, err = orderRepo.Create(header)
		if err != nil {
			return err
		}
		if created == nil {
			return domain.ErrOrderCreateFailed
		}

		// Líneas en el orden del caller: un fallo en la línea k aborta también 1..k-1.
		for _, line := range input.Products {
			item := &entity.OrderItem{
				ID:          uuid.New().String(),
				OrderID:     created.ID,
				UserID:      input.UserID,
				ProductID:   line.ProductID,
				Name:        line.Name,
				SKU:         line.SKU,
				Quantity:    line.Quantity,
				Price:       line.Price,
				TotalAmount: line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))),
				CreatedAt:   now,
			}
			saved, err := itemRepo.Create(item)
			if err != nil {
				return err
			}
			if saved == nil {
				return &domain.ItemCreateError{ProductID: line.ProductID}
			}

			switch input.Type {
			case entity.OrderTypeSales:
				// Bloquea la fila del producto (SELECT FOR UPDATE): la verificación de
				// suficiencia y el decremento son una sola unidad read-modify-write.
				stock, err := productRepo.GetForUpdate(line.ProductID)
				if err != nil {
					return err
				}
				if stock == nil || stock.QuantityInStock < line.Quantity {
					return &domain.InsufficientStockError{ProductID: line.ProductID}
				}
				updated, err := productRepo.AdjustStock(line.ProductID, -line.Quantity)
				if err != nil {
					return err
				}
				if updated == nil {
					return domain.ErrNotFound
				}
				if updated.BelowThreshold() {
					lowStock = append(lowStock, updated)
				}
			case entity.OrderTypePurchase:
				// Las compras incrementan sin verificación de suficiencia.
				if _, err := productRepo.AdjustStock(line.ProductID, line.Quantity); err != nil {
					return err
				}
			}
			touched = append(touched, line.ProductID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Post-commit: actividad best-effort y caché. Un fallo aquí nunca revierte la orden.
	desc := fmt.Sprintf("New order - #%d", created.Code)
	if created.CustomerID != nil {
		desc = fmt.Sprintf("New order received - #%d", created.Code)
	}
	uc.recorder.Record(input.UserID, entity.ActivityNewOrder, created.ID, desc)
	for _, p := range lowStock {
		uc.recorder.Record(input.UserID, entity.ActivityLowStock, p.ID,
			fmt.Sprintf("Low stock alert - %s(SKU: %s)", p.Name, p.SKU))
	}
	if uc.cache != nil {
		uc.cache.InvalidateProducts(ctx, input.UserID, touched...)
	}

	return created, nil
}

func validateInput(input PlaceOrderInput) error {
	switch input.Type {
	case entity.OrderTypeSales:
		if input.CustomerID == nil || *input.CustomerID == "" || input.SupplierID != nil {
			return domain.ErrInvalidInput
		}
	case entity.OrderTypePurchase:
		if input.SupplierID == nil || *input.SupplierID == "" || input.CustomerID != nil {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	if input.Status != "" && !entity.ValidOrderStatus(input.Status) {
		return domain.ErrInvalidInput
	}
	if !input.TotalAmount.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if len(input.Products) == 0 {
		return domain.ErrInvalidInput
	}
	for _, line := range input.Products {
		if line.ProductID == "" || line.Quantity <= 0 || !line.Price.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
	}
	return nil
}
