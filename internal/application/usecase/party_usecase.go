package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventrack-api/internal/application/dto"
	"github.com/tu-usuario/inventrack-api/internal/domain"
	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
	"github.com/tu-usuario/inventrack-api/internal/domain/repository"
)

// CustomerUseCase CRUD de clientes (contrapartes de órdenes de venta).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create valida y persiste un cliente nuevo.
func (uc *CustomerUseCase) Create(_ context.Context, userID string, in dto.CreatePartyRequest) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Customer{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID obtiene un cliente del usuario.
func (uc *CustomerUseCase) GetByID(_ context.Context, userID, id string) (*entity.Customer, error) {
	c, err := uc.repo.GetByUserAndID(userID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// List lista los clientes del usuario.
func (uc *CustomerUseCase) List(_ context.Context, userID string) ([]*entity.Customer, error) {
	return uc.repo.ListByUser(userID)
}

// Delete elimina un cliente del usuario.
func (uc *CustomerUseCase) Delete(_ context.Context, userID, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(userID, id)
}

// SupplierUseCase CRUD de proveedores (contrapartes de órdenes de compra).
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create valida y persiste un proveedor nuevo.
func (uc *SupplierUseCase) Create(_ context.Context, userID string, in dto.CreatePartyRequest) (*entity.Supplier, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := &entity.Supplier{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID obtiene un proveedor del usuario.
func (uc *SupplierUseCase) GetByID(_ context.Context, userID, id string) (*entity.Supplier, error) {
	s, err := uc.repo.GetByUserAndID(userID, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

// List lista los proveedores del usuario.
func (uc *SupplierUseCase) List(_ context.Context, userID string) ([]*entity.Supplier, error) {
	return uc.repo.ListByUser(userID)
}

// Delete elimina un proveedor del usuario.
func (uc *SupplierUseCase) Delete(_ context.Context, userID, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(userID, id)
}

// CategoryUseCase CRUD de categorías de producto.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create valida y persiste una categoría nueva.
func (uc *CategoryUseCase) Create(_ context.Context, userID string, in dto.CreateCategoryRequest) (*entity.Category, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Category{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// List lista las categorías del usuario.
func (uc *CategoryUseCase) List(_ context.Context, userID string) ([]*entity.Category, error) {
	return uc.repo.ListByUser(userID)
}

// Delete elimina una categoría del usuario.
func (uc *CategoryUseCase) Delete(_ context.Context, userID, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(userID, id)
}
