package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
	"github.com/tu-usuario/inventrack-api/internal/domain/repository"
)

var _ repository.ActivityRepository = (*ActivityRepo)(nil)

// ActivityRepo implementación append-only de ActivityRepository sobre PostgreSQL.
type ActivityRepo struct {
	q Querier
}

// NewActivityRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityRepository(q Querier) *ActivityRepo {
	return &ActivityRepo{q: q}
}

// Create inserta un registro de actividad.
func (r *ActivityRepo) Create(activity *entity.Activity) error {
	query := `
		INSERT INTO recent_activity (id, user_id, activity_type, related_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		activity.ID, activity.UserID, activity.ActivityType, activity.RelatedID,
		activity.Description, activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// ListByUser devuelve la actividad del usuario, más reciente primero.
func (r *ActivityRepo) ListByUser(userID string) ([]*entity.Activity, error) {
	query := `
		SELECT id, user_id, activity_type, related_id, description, created_at
		FROM recent_activity WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()
	var list []*entity.Activity
	for rows.Next() {
		var a entity.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.ActivityType, &a.RelatedID, &a.Description, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
