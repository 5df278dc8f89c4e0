package entity

import (
	"fmt"
	"time"
)

// Tipos de actividad reciente. Los valores son los que consume el dashboard, no se traducen.
const (
	ActivityNewOrder = "New Order"
	ActivityLowStock = "Low Stock"
)

// ActivityOrderStatus construye el tipo de actividad para un cambio de estado ("Order Completed").
func ActivityOrderStatus(status string) string {
	return fmt.Sprintf("Order %s", status)
}

// Activity es un registro append-only de actividad reciente (feed del dashboard).
// Nunca se muta ni se borra desde el core; escribirlo es best-effort.
type Activity struct {
	ID           string
	UserID       string
	ActivityType string
	RelatedID    string
	Description  string
	CreatedAt    time.Time
}
