package repository

import "github.com/tu-usuario/inventrack-api/internal/domain/entity"

// ActivityRepository define el puerto append-only del feed de actividad reciente.
// El core lo consume vía el Recorder (best-effort); el dashboard lo lee.
type ActivityRepository interface {
	Create(activity *entity.Activity) error
	// ListByUser devuelve la actividad del usuario, más reciente primero.
	ListByUser(userID string) ([]*entity.Activity, error)
}
