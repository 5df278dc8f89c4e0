package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventrack-api/internal/application/activity"
	"github.com/tu-usuario/inventrack-api/internal/application/dto"
)

// AnalyticsHandler expone el feed de actividad reciente del dashboard (protegido).
type AnalyticsHandler struct {
	feed *activity.FeedUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(feed *activity.FeedUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{feed: feed}
}

// RecentActivity devuelve la actividad del usuario, más reciente primero.
func (h *AnalyticsHandler) RecentActivity(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	list, err := h.feed.RecentActivity(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error getting recent activity", Error: err.Error()})
	}
	out := make([]dto.ActivityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, dto.FromActivity(a))
	}
	return c.JSON(out)
}
