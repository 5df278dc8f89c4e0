package repository

import "github.com/tu-usuario/inventrack-api/internal/domain/entity"

// CustomerRepository define el puerto para clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByUserAndID(userID, id string) (*entity.Customer, error)
	ListByUser(userID string) ([]*entity.Customer, error)
	Delete(userID, id string) error
}

// SupplierRepository define el puerto para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByUserAndID(userID, id string) (*entity.Supplier, error)
	ListByUser(userID string) ([]*entity.Supplier, error)
	Delete(userID, id string) error
}
