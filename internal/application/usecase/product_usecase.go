package usecase

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

// ProductUseCase CRUD de productos. Al crear o actualizar con stock en o por
// debajo del umbral se registra una alerta "Low Stock" (best-effort).
// Las mutaciones de stock por órdenes NO pasan por aquí: las hace el
// coordinador de órdenes dentro de su transacción.
type ProductUseCase struct {
	repo     repository.ProductRepository
	recorder *activity.Recorder
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, recorder *activity.Recorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, recorder: recorder}
}

// Create valida y persiste un producto nuevo.
func (uc *ProductUseCase) Create(_ context.Context, userID string, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.SKU == "" || !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.QuantityInStock < 0 || in.LowStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Product{
		ID:              uuid.New().String(),
		UserID:          userID,
		CategoryID:      in.CategoryID,
		Name:            in.Name,
		Description:     in.Description,
		SKU:             in.SKU,
		Price:           in.Price,
		QuantityInStock: in.QuantityInStock,
		LowStock:        in.LowStock,
		ImageURL:        in.ImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	if p.BelowThreshold() {
		uc.recorder.Record(userID, entity.ActivityLowStock, p.ID,
			fmt.Sprintf("Low stock alert - %s (SKU: %s)", p.Name, p.SKU))
	}
	return p, nil
}

// GetByID obtiene un producto del usuario.
func (uc *ProductUseCase) GetByID(_ context.Context, userID, id string) (*entity.Product, error) {
	p, err := uc.repo.GetByUserAndID(userID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// List lista los productos del usuario.
func (uc *ProductUseCase) List(_ context.Context, userID string) ([]*entity.Product, error) {
	return uc.repo.ListByUser(userID)
}

// Update sobrescribe los campos del producto y re-evalúa la alerta de stock bajo.
func (uc *ProductUseCase) Update(_ context.Context, userID, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	if id == "" || in.Name == "" || in.SKU == "" || !in.Price.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.repo.GetByUserAndID(userID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	p.Name = in.Name
	p.Description = in.Description
	p.SKU = in.SKU
	p.Price = in.Price
	p.QuantityInStock = in.QuantityInStock
	p.LowStock = in.LowStock
	p.CategoryID = in.CategoryID
	p.ImageURL = in.ImageURL
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	if p.BelowThreshold() {
		uc.recorder.Record(userID, entity.ActivityLowStock, p.ID,
			fmt.Sprintf("Low stock alert - %s (SKU: %s)", p.Name, p.SKU))
	}
	return p, nil
}

// Delete elimina un producto del usuario.
func (uc *ProductUseCase) Delete(_ context.Context, userID, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(userID, id)
}
