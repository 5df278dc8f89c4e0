package activity

import (
	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
	"github.com/tu-usuario/inventrack-api/internal/domain/repository"
)

// FeedUseCase lee el feed de actividad reciente del usuario (dashboard).
type FeedUseCase struct {
	repo repository.ActivityRepository
}

// NewFeedUseCase construye el caso de uso.
func NewFeedUseCase(repo repository.ActivityRepository) *FeedUseCase {
	return &FeedUseCase{repo: repo}
}

// RecentActivity devuelve la actividad del usuario, más reciente primero.
func (uc *FeedUseCase) RecentActivity(userID string) ([]*entity.Activity, error) {
	return uc.repo.ListByUser(userID)
}
