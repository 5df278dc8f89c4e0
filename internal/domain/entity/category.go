package entity

import "time"

// Category agrupa productos del inventario de un usuario.
type Category struct {
	ID          string
	UserID      string
	Name        string
	Description string
	CreatedAt   time.Time
}
