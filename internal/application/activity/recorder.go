// Package activity contiene el feed de actividad reciente: el Recorder que
// escribe registros best-effort y el caso de uso de lectura para el dashboard.
package activity

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
	"github.com/tu-usuario/inventrack-api/internal/domain/repository"
	"github.com/tu-usuario/inventrack-api/pkg/logger"
)

// Recorder escribe registros de actividad best-effort, fuera de la transacción
// de la operación que los origina. Un fallo al escribir se registra en el log
// y nunca se propaga: el éxito de una orden no depende del éxito del feed.
type Recorder struct {
	repo repository.ActivityRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.ActivityRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log.Component("activity")}
}

// Record inserta un registro de actividad. No retorna error: el fallo se loggea y se descarta.
func (r *Recorder) Record(userID, activityType, relatedID, description string) {
	a := &entity.Activity{
		ID:           uuid.New().String(),
		UserID:       userID,
		ActivityType: activityType,
		RelatedID:    relatedID,
		Description:  description,
		CreatedAt:    time.Now(),
	}
	if err := r.repo.Create(a); err != nil {
		r.log.Error().Err(err).
			Str("user_id", userID).
			Str("activity_type", activityType).
			Str("related_id", relatedID).
			Msg("no se pudo escribir la actividad reciente")
	}
}
