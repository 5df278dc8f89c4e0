package order

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventrack-api/internal/application/activity"
	"github.com/tu-usuario/inventrack-api/internal/domain"
	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
	"github.com/tu-usuario/inventrack-api/internal/domain/repository"
)

// UpdateStatusUseCase sobrescribe el estado de una orden y registra la actividad.
// No impone una máquina de estados: cualquier estado válido puede sobrescribir a
// cualquier otro (la UI asume Pending → terminal; el core no lo exige). El stock
// no se toca: ya se ajustó al colocar la orden, y cancelar no lo restituye.
type UpdateStatusUseCase struct {
	orderRepo repository.OrderRepository
	recorder  *activity.Recorder
}

// NewUpdateStatusUseCase construye el caso de uso.
func NewUpdateStatusUseCase(orderRepo repository.OrderRepository, recorder *activity.Recorder) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{orderRepo: orderRepo, recorder: recorder}
}

// UpdateStatus valida, actualiza y registra "Order <Status>" best-effort.
// Errores: domain.ErrInvalidInput (id/estado faltante o estado desconocido),
// domain.ErrNotFound (la orden no existe o no es del usuario).
func (uc *UpdateStatusUseCase) UpdateStatus(_ context.Context, userID, orderID, status string) (*entity.Order, error) {
	if orderID == "" || status == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.orderRepo.GetByUserAndID(userID, orderID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}

	updated, err := uc.orderRepo.UpdateStatus(userID, orderID, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}

	// El fallo al escribir la actividad no deshace la actualización.
	uc.recorder.Record(userID, entity.ActivityOrderStatus(status), updated.ID,
		fmt.Sprintf("Order %s - #%d", status, updated.Code))

	return updated, nil
}
