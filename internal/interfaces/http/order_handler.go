package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventrack-api/internal/application/dto"
	"github.com/tu-usuario/inventrack-api/internal/application/order"
	"github.com/tu-usuario/inventrack-api/internal/domain"
	"github.com/tu-usuario/inventrack-api/internal/domain/entity"
)

// OrderHandler maneja las peticiones HTTP de órdenes (protegido).
type OrderHandler struct {
	place  *order.PlaceOrderUseCase
	status *order.UpdateStatusUseCase
	query  *order.QueryUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(place *order.PlaceOrderUseCase, status *order.UpdateStatusUseCase, query *order.QueryUseCase) *OrderHandler {
	return &OrderHandler{place: place, status: status, query: query}
}

// PlaceOrder godoc
// @Summary      Colocar una orden de venta o compra
// @Description  Inserta cabecera, líneas y mutación de stock en una sola transacción.
//
//	Todo o nada: un fallo en cualquier línea revierte la orden completa.
//
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlaceOrderRequest  true  "type Sales|Purchase, exactamente uno de customer_id/supplier_id, products no vacío"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /orders [post]
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	start := time.Now()
	created, err := h.place.PlaceOrderFromRequest(c.Context(), userID, in)
	if err != nil {
		ordersPlacedTotal.WithLabelValues(typeLabel(in.Type), outcomeLabel(err)).Inc()
		return h.placeOrderError(c, in, err)
	}
	orderPlacementSeconds.Observe(time.Since(start).Seconds())
	ordersPlacedTotal.WithLabelValues(typeLabel(in.Type), "ok").Inc()

	return c.Status(fiber.StatusCreated).JSON(dto.FromOrder(created))
}

// placeOrderError mapea los errores del coordinador a 400 (validación) o 500
// (fallo dentro de la transacción, con el detalle del error subyacente).
func (h *OrderHandler) placeOrderError(c *fiber.Ctx, in dto.PlaceOrderRequest, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de orden inválidos"})
	}
	msg := "Error creating purchase order"
	if in.CustomerID != nil {
		msg = "Error creating sales order"
	}
	code := "ORDER_FAILED"
	if errors.Is(err, domain.ErrInsufficientStock) {
		code = "INSUFFICIENT_STOCK"
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    code,
		Message: msg,
		Error:   err.Error(),
	})
}

// typeLabel acota el tipo de orden a un conjunto cerrado de etiquetas:
// el valor viene del cuerpo de la petición y no puede alimentar la métrica
// tal cual (cardinalidad sin límite).
func typeLabel(orderType string) string {
	switch orderType {
	case entity.OrderTypeSales, entity.OrderTypePurchase:
		return orderType
	default:
		return "unknown"
	}
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	default:
		return "error"
	}
}

// UpdateStatus godoc
// @Summary      Actualizar el estado de una orden
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "status Pending|Completed|Cancelled"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /orders/{id} [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id := c.Params("id")
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	updated, err := h.status.UpdateStatus(c.Context(), userID, id, in.Status)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id y status son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error updating order", Error: err.Error()})
	}
	return c.JSON(dto.FromOrder(updated))
}

// List devuelve todas las órdenes del usuario.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	orders, err := h.query.Orders(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error getting orders", Error: err.Error()})
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.FromOrder(o))
	}
	return c.JSON(out)
}

// Items devuelve las líneas de una orden del usuario.
func (h *OrderHandler) Items(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	orderID := c.Params("order_id")
	items, err := h.query.Items(c.Context(), userID, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "order_id es requerido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Error getting order items", Error: err.Error()})
	}
	out := make([]dto.OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.FromOrderItem(it))
	}
	return c.JSON(out)
}
