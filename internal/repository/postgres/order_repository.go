package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/domain/repository"
	apperrors "github.com/jet-charter-service/internal/pkg/errors"
)

type orderRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewOrderRepository создает репозиторий заявок
func NewOrderRepository(db *DB, logger *zap.Logger) repository.OrderRepository {
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (
			id, listing_id, listing_type, name, email, phone, passengers,
			from_city, to_city, departure_date, message, status, created_at
		) VALUES (
			:id, :listing_id, :listing_type, :name, :email, :phone, :passengers,
			:from_city, :to_city, :departure_date, :message, :status, :created_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, order); err != nil {
		r.logger.Error("failed to create order", zap.String("order_id", order.ID.String()), zap.Error(err))
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order
	query := `
		SELECT id, listing_id, listing_type, name, email, phone, passengers,
		       from_city, to_city, departure_date, message, status, created_at
		FROM orders WHERE id = $1`

	err := r.db.GetContext(ctx, &order, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &order, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperrors.ErrOrderNotFound
	}
	return nil
}
