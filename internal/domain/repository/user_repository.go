package repository

import "github.com/tu-usuario/inventrack-api/internal/domain/entity"

// UserRepository define el puerto para usuarios (registro y login).
type UserRepository interface {
	Create(user *entity.User) error
	// GetByEmail obtiene el usuario por email; nil si no existe.
	GetByEmail(email string) (*entity.User, error)
	GetByID(id string) (*entity.User, error)
}
