package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/jet-charter-service/internal/pkg/errors"
	"github.com/jet-charter-service/internal/pkg/utils"
	"github.com/jet-charter-service/internal/usecase"
	"github.com/jet-charter-service/internal/usecase/dto"
)

// OrderHandler - приём заявок
type OrderHandler struct {
	orderUC *usecase.OrderUseCase
	logger  *zap.Logger
}

// NewOrderHandler - создание нового OrderHandler
func NewOrderHandler(orderUC *usecase.OrderUseCase, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderUC: orderUC,
		logger:  logger,
	}
}

// CreateOrder godoc
// @Summary Submit a charter request
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Order"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "invalid JSON",
		}))
	}

	order, err := h.orderUC.CreateOrder(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, dto.OrderResponse{
		ID:        order.ID.String(),
		Status:    order.Status,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
	})
}

// GetOrder godoc
// @Summary Charter request status
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"id": "must be a UUID",
		}))
	}

	order, err := h.orderUC.GetOrder(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.OrderResponse{
		ID:        order.ID.String(),
		Status:    order.Status,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
	}, nil)
}
