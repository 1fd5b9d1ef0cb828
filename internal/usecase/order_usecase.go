package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/domain/repository"
	apperrors "github.com/jet-charter-service/internal/pkg/errors"
	"github.com/jet-charter-service/internal/pkg/validator"
	"github.com/jet-charter-service/internal/usecase/dto"
)

// OrderUseCase - приём заявок на перелёт
type OrderUseCase struct {
	orderRepo  repository.OrderRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

// NewOrderUseCase - создание use case заявок
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:  orderRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// CreateOrder сохраняет заявку и публикует событие.
// Сбой публикации не отменяет заявку: она уже в БД.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	if err := validator.Validate(req); err != nil {
		return nil, apperrors.ErrInvalidRequest.WithDetails(validator.FieldErrors(err))
	}

	order := &domain.Order{
		ID:          uuid.New(),
		ListingType: req.ListingType,
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:       strings.TrimSpace(req.Phone),
		Passengers:  req.Passengers,
		FromCity:    strings.TrimSpace(req.From),
		ToCity:      strings.TrimSpace(req.To),
		Status:      domain.OrderStatusNew,
		CreatedAt:   time.Now().UTC(),
	}
	if req.ListingID != "" {
		order.ListingID = &req.ListingID
	}
	if req.DepartureDate != "" {
		order.DepartureDate = &req.DepartureDate
	}
	if msg := strings.TrimSpace(req.Message); msg != "" {
		order.Message = &msg
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, apperrors.ErrDatabaseError.Wrap(err)
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamOrdersCreated, domain.NewOrderCreatedEvent(order)); err != nil {
		uc.logger.Error("Failed to publish order event",
			zap.String("order_id", order.ID.String()),
			zap.Error(err),
		)
	}

	uc.logger.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("listing_type", order.ListingType),
	)

	return order, nil
}

// GetOrder возвращает заявку по id; ErrOrderNotFound, если её нет
func (uc *OrderUseCase) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrderNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		uc.logger.Error("Failed to load order", zap.String("order_id", id.String()), zap.Error(err))
		return nil, apperrors.ErrDatabaseError.Wrap(err)
	}
	return order, nil
}

// HandleOrderCreated обрабатывает событие из стрима: отмечает заявку как переданную менеджерам
func (uc *OrderUseCase) HandleOrderCreated(ctx context.Context, payload string) error {
	var event domain.OrderCreatedEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return fmt.Errorf("decode order event: %w", err)
	}

	order, err := uc.orderRepo.GetByID(ctx, event.OrderID)
	if err != nil {
		return fmt.Errorf("load order %s: %w", event.OrderID, err)
	}
	if order.Status == domain.OrderStatusNotified {
		return nil
	}

	uc.logger.Info("New charter request",
		zap.String("order_id", order.ID.String()),
		zap.String("name", order.Name),
		zap.String("email", order.Email),
		zap.String("route", order.FromCity+" - "+order.ToCity),
		zap.Int("passengers", order.Passengers),
	)

	if err := uc.orderRepo.UpdateStatus(ctx, order.ID, domain.OrderStatusNotified); err != nil {
		return fmt.Errorf("mark order notified: %w", err)
	}
	return nil
}
