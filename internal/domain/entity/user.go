package entity

import "time"

// User usuario de la aplicación. Todas las entidades de negocio se poseen por UserID.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
